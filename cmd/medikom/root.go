package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/medikom/internal/cli"
	"github.com/dmitrijs2005/medikom/internal/config"
	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. Running medikom without a subcommand
// starts the interactive session.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "medikom",
		Short: "Tasks and information notes with file attachments",
		Long: `medikom keeps two lists, tasks and information, in a local SQLite file.
Entries whose title starts with "!" are shown as priority.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *cli.App) error {
				a.Run(ctx)
				return nil
			})
		},
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(newListCmd(), newShowCmd())
	return root
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the overview of tasks and information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *cli.App) error {
				return a.List(ctx)
			})
		},
	}
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print one entry with its attachments and notes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			return withApp(cmd, func(ctx context.Context, a *cli.App) error {
				return a.Show(ctx, id)
			})
		},
	}
}

// withApp loads the configuration from the command's flags, opens the App
// for the duration of fn and closes it afterwards.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *cli.App) error) (err error) {
	cfg, err := config.LoadConfig(cmd.Flags())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	app, err := cli.NewApp(ctx, cfg, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := app.Close(); err == nil {
			err = cerr
		}
	}()

	return fn(ctx, app)
}
