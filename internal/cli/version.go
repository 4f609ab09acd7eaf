package cli

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-sync-keeper/models"
)

// NewVersionCommand creates the version command. It needs no database.
func NewVersionCommand(rootOpts *RootOptions, build models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutputFormatter(rootOpts.Format, cmd.OutOrStdout())
			if out.IsJSON() {
				return out.JSON(map[string]string{
					"version": build.BuildVersion(),
					"date":    build.BuildDate(),
					"commit":  build.BuildCommit(),
				})
			}
			out.Printf("synctl %s (built %s, commit %s)\n", build.BuildVersion(), build.BuildDate(), build.BuildCommit())
			return nil
		},
	}
}
