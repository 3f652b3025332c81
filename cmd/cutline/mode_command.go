package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newModeCommand(ctx *commandContext) *cobra.Command {
	modeCmd := &cobra.Command{
		Use:   "mode",
		Short: "Inspect editing mode defaults",
	}

	modeCmd.AddCommand(newModeShowCommand(ctx))

	return modeCmd
}

func newModeShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the ripple defaults this session starts with",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			mode := ctx.rippleMode()

			if jsonOut {
				return writeJSON(cmd, map[string]any{
					"rippleEnabled":    mode.Enabled(),
					"allTracks":        mode.AllTracks(),
					"defaultTrackKind": cfg.Editor.DefaultTrackKind,
				})
			}

			rows := [][]string{
				{"Ripple edits", yesNo(mode.Enabled())},
				{"All tracks", yesNo(mode.AllTracks())},
				{"Default track kind", cfg.Editor.DefaultTrackKind},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Setting", "Value"},
				rows,
				[]columnAlignment{alignLeft, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	return cmd
}
