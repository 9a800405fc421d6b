package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ironsheep/image-processor/internal/config"
)

// app carries state shared by the subcommands of one root command.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	logOut  io.Writer
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logOut: os.Stderr}

	root := &cobra.Command{
		Use:   "image-processor",
		Short: "Pixel-level image transformations over a named image registry",
		Long: `image-processor edits raster images with flips, brightness, color filters,
blur and sharpen kernels, masks, mosaics and downscaling.

Run "serve" to expose the tools over MCP on stdin/stdout, or "apply" to
transform a single file.`,
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initConfig()
		},
	}

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "",
		"config file (default: ~/.config/image-processor/config.yaml)")
	root.PersistentFlags().String("log-level", "",
		"log level: debug, info, warn or error")
	root.PersistentFlags().Int64("mosaic-seed", 0,
		"seed for mosaic placement (0 uses the clock)")

	// Bind flags to viper
	_ = a.v.BindPFlag("log_level", root.PersistentFlags().Lookup("log-level"))
	_ = a.v.BindPFlag("mosaic_seed", root.PersistentFlags().Lookup("mosaic-seed"))

	root.AddCommand(newServeCmd(a), newApplyCmd(a), newVersionCmd())
	return root
}

func (a *app) initConfig() error {
	config.SetDefaults(a.v)

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		home, _ := os.UserHomeDir()
		a.v.AddConfigPath(filepath.Join(home, ".config", "image-processor"))
		a.v.SetConfigName("config")
		a.v.SetConfigType("yaml")
	}

	if err := a.v.ReadInConfig(); err != nil {
		// A missing default config is fine; an explicit one must exist.
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(a.logOut)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if cfg.Debug() {
		log.Printf("image-processor %s (built %s, commit %s)", Version, BuildTime, GitCommit)
		if used := a.v.ConfigFileUsed(); used != "" {
			log.Printf("config: %s", used)
		}
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "image-processor %s\n", Version)
			fmt.Fprintf(out, "  Build time: %s\n", BuildTime)
			fmt.Fprintf(out, "  Git commit: %s\n", GitCommit)
		},
	}
}
