package main

import (
	"os"

	"github.com/ironsheep/image-processor/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	server.Version = Version
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
