// Package cli is the pagamentos command line: serve, initdb, export, version.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pagamentos/config"
	"pagamentos/logging"
)

// Version set at build time with -ldflags "-X pagamentos/cli.Version=..."
var Version = "1.0.0"

var configFile string

// NewRootCommand builds the command tree. Without a subcommand it serves.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "pagamentos",
		Short:         "Payment records per club and church",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			cfg, err := config.LoadConfig(configFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logging.Setup(cfg.Log)
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "external config file (optional)")

	serve := serveCmd()
	root.RunE = serve.RunE
	root.Flags().AddFlagSet(serve.Flags())

	root.AddCommand(serve)
	root.AddCommand(initDBCmd())
	root.AddCommand(exportCmd())
	root.AddCommand(versionCmd())
	return root
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pagamentos v%s\n", Version)
		},
	}
}
