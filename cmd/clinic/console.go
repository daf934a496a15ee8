package main

import (
	"github.com/spf13/cobra"

	"clinic-record-service/internal/console"
)

func consoleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Run the interactive menu on stdin/stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			// Logs go to stderr so they do not interleave with the menu.
			rt, err := bootstrap(ctx, cmd, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer rt.Close()

			return console.New(rt.registry, cmd.InOrStdin(), cmd.OutOrStdout(), rt.logger).Run(ctx)
		},
	}
}
