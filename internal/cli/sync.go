package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-sync-keeper/models"
)

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show delivery statistics per peer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutputFormatter(rootOpts.Format, cmd.OutOrStdout())

			return withEnv(cmd, rootOpts, func(ctx context.Context, env *Env) error {
				stats, err := env.Services.SyncRecordService.GetSyncStatistics(ctx)
				if err != nil {
					return WrapExitError(ExitFailure, "cannot read statistics", err)
				}

				if out.IsJSON() {
					return out.JSON(stats)
				}

				rows := make([][]string, 0, len(stats))
				for _, s := range stats {
					rows = append(rows, []string{
						s.ServerUUID,
						s.Nickname,
						formatLastSync(s.LastSync),
						fmt.Sprint(s.PendingCount),
						fmt.Sprint(s.Stale),
					})
				}
				return out.Table([]string{"UUID", "NICKNAME", "LAST SYNC", "PENDING", "STALE"}, rows)
			})
		},
	}
}

// NewStatusCommand creates the status command.
func NewStatusCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status [new-status]",
		Short: "Show or change the synchronization status",
		Long: `Without an argument prints the current synchronization status.
With one, sets it to one of:
  DISABLED_SYNC_AND_HISTORY, ENABLED_STRICT, ENABLED_CONTINUE_ON_ERROR`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutputFormatter(rootOpts.Format, cmd.OutOrStdout())

			return withEnv(cmd, rootOpts, func(ctx context.Context, env *Env) error {
				properties := env.Services.PropertyService

				if len(args) == 1 {
					if err := properties.SetSyncStatus(ctx, models.SyncStatus(args[0])); err != nil {
						return WrapExitError(ExitCommandError, "cannot change status", err)
					}
				}

				status := properties.SyncStatus(ctx)
				if out.IsJSON() {
					return out.JSON(map[string]models.SyncStatus{"sync_status": status})
				}
				out.Println(status)
				return nil
			})
		},
	}
}

// NewSyncNowCommand creates the sync-now command.
func NewSyncNowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sync-now <server-uuid>",
		Short: "Send the queue of a peer immediately",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutputFormatter(rootOpts.Format, cmd.OutOrStdout())

			return withEnv(cmd, rootOpts, func(ctx context.Context, env *Env) error {
				response, err := env.Services.SyncJob.RunOnce(ctx, args[0])
				if err != nil {
					return WrapExitError(ExitFailure, "sync failed", err)
				}

				if out.IsJSON() {
					return out.JSON(response)
				}
				if response == nil {
					out.Println("nothing to send")
					return nil
				}
				out.Printf("transmission %s: %s, %d record(s) acknowledged\n",
					response.UUID, response.State, len(response.ImportRecords))
				return nil
			})
		},
	}
}

// NewRepairUUIDsCommand creates the repair-uuids command.
func NewRepairUUIDsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "repair-uuids <type>",
		Short: "Assign a uuid to every entity of a type that has none",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutputFormatter(rootOpts.Format, cmd.OutOrStdout())

			return withEnv(cmd, rootOpts, func(ctx context.Context, env *Env) error {
				count, err := env.Services.RepairService.RepairUUIDs(ctx, args[0])
				if err != nil {
					return WrapExitError(ExitFailure, "repair failed", err)
				}

				if out.IsJSON() {
					return out.JSON(map[string]int{"repaired": count})
				}
				out.Printf("%d %s entit(ies) repaired\n", count, args[0])
				return nil
			})
		},
	}
}

func formatLastSync(t *time.Time) string {
	if t == nil {
		return "never"
	}
	return t.Format(time.RFC3339)
}
