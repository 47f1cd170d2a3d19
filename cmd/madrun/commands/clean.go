package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/madrun/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove the build output directory",
		Args:  rejectPositionalArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := runOptions(cmd)
			if err != nil {
				return err
			}

			return c.app.Clean(cmd.Context(), app.CleanOptions{
				ConfigPath: opts.ConfigPath,
				Verbose:    opts.Verbose,
				JSON:       opts.JSON,
			})
		},
	}
}
