package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"cutline/internal/logging"
	"cutline/internal/project"
	"cutline/internal/timeline"
)

func newSequenceCommand(ctx *commandContext) *cobra.Command {
	sequenceCmd := &cobra.Command{
		Use:   "sequence",
		Short: "Create and inspect timeline sequences",
	}

	sequenceCmd.AddCommand(newSequenceCreateCommand(ctx))
	sequenceCmd.AddCommand(newSequenceListCommand(ctx))
	sequenceCmd.AddCommand(newSequenceShowCommand(ctx))
	sequenceCmd.AddCommand(newSequenceDeleteCommand(ctx))

	return sequenceCmd
}

func newSequenceCreateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create an empty sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := displayName(args[0])
			if name == "" {
				return errors.New("sequence name is required")
			}

			return ctx.withLockedStore(func(store *project.Store) error {
				existing, err := store.GetSequenceByName(cmd.Context(), name)
				if err != nil {
					return err
				}
				if existing != nil {
					return fmt.Errorf("sequence %q already exists (%s)", name, existing.ID)
				}

				seq := timeline.NewSequence(name)
				if err := store.SaveSequence(cmd.Context(), seq); err != nil {
					return err
				}

				logging.NewComponentLogger(ctx.logger(), "cli").Info(
					"sequence created",
					logging.Args(logging.String(logging.FieldSequenceID, seq.ID))...,
				)
				fmt.Fprintf(cmd.OutOrStdout(), "Created sequence %q (%s)\n", name, seq.ID)
				return nil
			})
		},
	}
}

func newSequenceListCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored sequences",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *project.Store) error {
				summaries, err := store.ListSequences(cmd.Context())
				if err != nil {
					return err
				}

				if jsonOut {
					if summaries == nil {
						summaries = []project.SequenceSummary{}
					}
					return writeJSON(cmd, summaries)
				}

				if len(summaries) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No sequences")
					return nil
				}

				rows := make([][]string, 0, len(summaries))
				for _, s := range summaries {
					rows = append(rows, []string{
						s.ID,
						s.Name,
						strconv.Itoa(s.TrackCount),
						strconv.Itoa(s.ClipCount),
						formatSeconds(s.DurationSec),
						s.UpdatedAt.Local().Format(time.DateTime),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"ID", "Name", "Tracks", "Clips", "Duration", "Updated"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newSequenceShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show <sequence>",
		Short: "Show a sequence's tracks and clips",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *project.Store) error {
				seq, err := resolveSequence(cmd, store, args[0])
				if err != nil {
					return err
				}

				if jsonOut {
					return writeJSON(cmd, seq)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Sequence %q (%s)\n", seq.Name, seq.ID)
				fmt.Fprintf(out, "Duration: %s across %d tracks, %d clips\n",
					formatSeconds(seq.Duration()), len(seq.Tracks), seq.ClipCount())

				if seq.ClipCount() == 0 {
					fmt.Fprintln(out, "No clips")
					return nil
				}

				var rows [][]string
				for i := range seq.Tracks {
					track := &seq.Tracks[i]
					for _, clip := range track.SortedClips() {
						label := clip.Label
						if label == "" {
							label = clip.ID
						}
						rows = append(rows, []string{
							track.Name,
							string(track.Kind),
							label,
							formatSeconds(clip.TimelineInSec),
							formatSeconds(clip.TimelineOutSec()),
							formatSeconds(clip.DurationSec),
						})
					}
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Track", "Kind", "Clip", "In", "Out", "Duration"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight},
				))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newSequenceDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <sequence>",
		Short: "Delete a sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLockedStore(func(store *project.Store) error {
				seq, err := resolveSequence(cmd, store, args[0])
				if err != nil {
					return err
				}

				removed, err := store.DeleteSequence(cmd.Context(), seq.ID)
				if err != nil {
					return err
				}
				if !removed {
					return fmt.Errorf("sequence %s disappeared before deletion", seq.ID)
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Deleted sequence %q (%s)\n", seq.Name, seq.ID)
				return nil
			})
		},
	}
}

// resolveSequence looks a sequence up by id or name, erroring when absent.
func resolveSequence(cmd *cobra.Command, store *project.Store, ref string) (*timeline.Sequence, error) {
	seq, err := store.ResolveSequence(cmd.Context(), ref)
	if err != nil {
		return nil, err
	}
	if seq == nil {
		return nil, fmt.Errorf("sequence %q not found", ref)
	}
	return seq, nil
}
