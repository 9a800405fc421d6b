package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/image-processor/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP tool server on stdin/stdout",
		Long: `Run the MCP tool server. Requests are read from stdin one per line and
responses written to stdout; logs go to stderr.

Set IMAGE_PROCESSOR_LOG_LEVEL=debug to log each request.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			srv := server.New(a.cfg)
			if err := srv.Serve(cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		},
	}
}
