package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-sync-keeper/models"
)

// NewServersCommand creates the servers command group.
func NewServersCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "servers",
		Short: "Manage the peers of this server",
	}

	cmd.AddCommand(newServersListCommand(rootOpts))
	cmd.AddCommand(newServersAddCommand(rootOpts))
	cmd.AddCommand(newServersRemoveCommand(rootOpts))

	return cmd
}

func newServersListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered peers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutputFormatter(rootOpts.Format, cmd.OutOrStdout())

			return withEnv(cmd, rootOpts, func(ctx context.Context, env *Env) error {
				servers, err := env.Services.RemoteServerService.GetRemoteServers(ctx)
				if err != nil {
					return WrapExitError(ExitFailure, "cannot list servers", err)
				}

				if out.IsJSON() {
					return out.JSON(servers)
				}

				rows := make([][]string, 0, len(servers))
				for _, s := range servers {
					rows = append(rows, []string{
						s.UUID,
						s.Nickname,
						string(s.Type),
						orDash(s.Address),
						formatLastSync(s.LastSync),
						fmt.Sprint(s.Disabled),
					})
				}
				return out.Table([]string{"UUID", "NICKNAME", "TYPE", "ADDRESS", "LAST SYNC", "DISABLED"}, rows)
			})
		},
	}
}

type serversAddOptions struct {
	nickname        string
	serverType      string
	address         string
	username        string
	password        string
	childUsername   string
	childPassword   string
	classesSent     string
	classesReceived string
	disabled        bool
}

func newServersAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &serversAddOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a parent or child server",
		Example: `  synctl servers add --nickname hq --type parent --address https://hq.example.org \
      --username clinic-a --password s3cret
  synctl servers add --nickname clinic-a --type child \
      --child-username clinic-a --child-password s3cret --classes-sent Patient,Encounter`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			serverType := models.RemoteServerType(strings.ToUpper(opts.serverType))
			if serverType != models.RemoteServerTypeParent && serverType != models.RemoteServerTypeChild {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid type %q: must be parent or child", opts.serverType))
			}

			server := models.RemoteServer{
				Nickname:        opts.nickname,
				Type:            serverType,
				Address:         opts.address,
				Username:        opts.username,
				Password:        opts.password,
				ChildUsername:   opts.childUsername,
				ClassesSent:     models.ParseContainedClasses(opts.classesSent),
				ClassesReceived: models.ParseContainedClasses(opts.classesReceived),
				Disabled:        opts.disabled,
			}

			out := NewOutputFormatter(rootOpts.Format, cmd.OutOrStdout())

			return withEnv(cmd, rootOpts, func(ctx context.Context, env *Env) error {
				created, err := env.Services.RemoteServerService.CreateRemoteServer(ctx, server, opts.childPassword)
				if err != nil {
					return WrapExitError(ExitFailure, "cannot add server", err)
				}

				if out.IsJSON() {
					return out.JSON(created)
				}
				out.Printf("added %s server %s (%s)\n", strings.ToLower(string(created.Type)), created.Nickname, created.UUID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&opts.nickname, "nickname", "", "display name of the peer")
	cmd.Flags().StringVar(&opts.serverType, "type", "", "parent or child")
	cmd.Flags().StringVar(&opts.address, "address", "", "base URL of the peer")
	cmd.Flags().StringVar(&opts.username, "username", "", "login presented to the peer")
	cmd.Flags().StringVar(&opts.password, "password", "", "password presented to the peer")
	cmd.Flags().StringVar(&opts.childUsername, "child-username", "", "login the peer presents to us")
	cmd.Flags().StringVar(&opts.childPassword, "child-password", "", "password the peer presents to us")
	cmd.Flags().StringVar(&opts.classesSent, "classes-sent", "", "comma separated entity types sent to the peer (default all)")
	cmd.Flags().StringVar(&opts.classesReceived, "classes-received", "", "comma separated entity types accepted from the peer (default all)")
	cmd.Flags().BoolVar(&opts.disabled, "disabled", false, "register the peer disabled")
	_ = cmd.MarkFlagRequired("nickname")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func newServersRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <server-uuid>",
		Short: "Remove a peer and its delivery state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutputFormatter(rootOpts.Format, cmd.OutOrStdout())

			return withEnv(cmd, rootOpts, func(ctx context.Context, env *Env) error {
				if err := env.Services.RemoteServerService.DeleteRemoteServer(ctx, args[0]); err != nil {
					return WrapExitError(ExitFailure, "cannot remove server", err)
				}
				out.Printf("removed server %s\n", args[0])
				return nil
			})
		},
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
