// Package cli implements synctl, the operator command line of a sync node.
// Commands open the node's database directly and act through the service
// layer, so they work while the server is stopped.
package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-sync-keeper/models"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Verbose    bool
	Format     string // "json" | "text"

	open EnvOpener
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the synctl root command. open builds the services
// a command runs against; pass OpenEnv outside of tests.
func NewRootCommand(build models.AppBuildInfo, open EnvOpener) *cobra.Command {
	opts := &RootOptions{open: open}

	cmd := &cobra.Command{
		Use:   "synctl",
		Short: "Operate a go-sync-keeper node",
		Long: `synctl inspects and repairs the synchronization state of a node:
its peers, its outgoing queue and the delivery statistics per peer.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to a .json, .yaml or .yml config file")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewServersCommand(opts))
	cmd.AddCommand(NewQueueCommand(opts))
	cmd.AddCommand(NewRetryCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))
	cmd.AddCommand(NewStatusCommand(opts))
	cmd.AddCommand(NewSyncNowCommand(opts))
	cmd.AddCommand(NewRepairUUIDsCommand(opts))
	cmd.AddCommand(NewVersionCommand(opts, build))

	return cmd
}
