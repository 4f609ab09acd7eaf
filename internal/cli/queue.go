package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-sync-keeper/models"
)

type queueOptions struct {
	states []string
}

// queueEntry is one row of the queue listing, with the state that applies to
// the selected peer.
type queueEntry struct {
	UUID             string                 `json:"uuid"`
	OriginalUUID     string                 `json:"original_uuid"`
	Timestamp        time.Time              `json:"timestamp"`
	State            models.SyncRecordState `json:"state"`
	RetryCount       int                    `json:"retry_count"`
	ContainedClasses string                 `json:"contained_classes"`
}

// NewQueueCommand creates the queue command.
func NewQueueCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &queueOptions{}

	cmd := &cobra.Command{
		Use:   "queue <server-uuid>",
		Short: "Show the next batch of records waiting for a peer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			states := make([]models.SyncRecordState, 0, len(opts.states))
			for _, s := range opts.states {
				states = append(states, models.SyncRecordState(strings.ToUpper(s)))
			}

			out := NewOutputFormatter(rootOpts.Format, cmd.OutOrStdout())

			return withEnv(cmd, rootOpts, func(ctx context.Context, env *Env) error {
				server, err := env.Services.RemoteServerService.GetRemoteServer(ctx, args[0])
				if err != nil {
					return WrapExitError(ExitFailure, "cannot find server", err)
				}

				records, err := env.Services.SyncRecordService.GetSyncRecords(ctx, server, states...)
				if err != nil {
					return WrapExitError(ExitFailure, "cannot read queue", err)
				}

				entries := make([]queueEntry, 0, len(records))
				for i := range records {
					entries = append(entries, newQueueEntry(&records[i], server))
				}

				if out.IsJSON() {
					return out.JSON(entries)
				}

				rows := make([][]string, 0, len(entries))
				for _, e := range entries {
					rows = append(rows, []string{
						e.UUID,
						e.Timestamp.Format(time.RFC3339),
						string(e.State),
						fmt.Sprint(e.RetryCount),
						e.ContainedClasses,
					})
				}
				return out.Table([]string{"UUID", "TIMESTAMP", "STATE", "RETRIES", "CLASSES"}, rows)
			})
		},
	}

	cmd.Flags().StringSliceVar(&opts.states, "state", nil, "only records in these states (default: every state still to be sent)")

	return cmd
}

func newQueueEntry(record *models.SyncRecord, server *models.RemoteServer) queueEntry {
	entry := queueEntry{
		UUID:             record.UUID,
		OriginalUUID:     record.OriginalUUID,
		Timestamp:        record.Timestamp,
		State:            record.State,
		RetryCount:       record.RetryCount,
		ContainedClasses: record.ContainedClasses.String(),
	}
	if !server.IsParent() {
		if sr := record.ServerRecord(server.ServerID); sr != nil {
			entry.State = sr.State
			entry.RetryCount = sr.RetryCount
		}
	}
	return entry
}

// NewRetryCommand creates the retry command.
func NewRetryCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "retry <record-uuid> <server-uuid>",
		Short: "Put a failed record back in the queue of a peer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutputFormatter(rootOpts.Format, cmd.OutOrStdout())

			return withEnv(cmd, rootOpts, func(ctx context.Context, env *Env) error {
				server, err := env.Services.RemoteServerService.GetRemoteServer(ctx, args[1])
				if err != nil {
					return WrapExitError(ExitFailure, "cannot find server", err)
				}

				if err = env.Services.SyncRecordService.RetryRecord(ctx, args[0], server); err != nil {
					return WrapExitError(ExitFailure, "cannot retry record", err)
				}
				out.Printf("record %s queued again for %s\n", args[0], server.Nickname)
				return nil
			})
		},
	}
}
