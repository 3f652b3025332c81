package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cutline/internal/logging"
	"cutline/internal/project"
	"cutline/internal/ripple"
	"cutline/internal/timeline"
)

// rippleReport is the JSON envelope for ripple command output.
type rippleReport struct {
	Operation  string        `json:"operation"`
	SequenceID string        `json:"sequenceId"`
	Applied    bool          `json:"applied"`
	Result     ripple.Result `json:"result"`
}

func newRippleCommand(ctx *commandContext) *cobra.Command {
	rippleCmd := &cobra.Command{
		Use:   "ripple",
		Short: "Preview or apply ripple edits",
		Long: `Ripple edits shift every clip downstream of an edit point by the
same amount, keeping clips in order without gaps or overlaps. Without
--apply the commands only print the clips that would move.`,
	}

	rippleCmd.AddCommand(newRippleDeleteCommand(ctx))
	rippleCmd.AddCommand(newRippleInsertCommand(ctx))
	rippleCmd.AddCommand(newRippleTrimCommand(ctx))
	rippleCmd.AddCommand(newRippleMoveCommand(ctx))

	return rippleCmd
}

// rippleFlags are the switches shared by every ripple subcommand.
type rippleFlags struct {
	allTracks bool
	apply     bool
	jsonOut   bool
}

func (f *rippleFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.allTracks, "all-tracks", false, "Ripple every track, not just the edited one")
	cmd.Flags().BoolVar(&f.apply, "apply", false, "Write the edit back to the project instead of previewing")
	cmd.Flags().BoolVar(&f.jsonOut, "json", false, "Emit JSON instead of a table")
}

func (f *rippleFlags) options(ctx *commandContext, cmd *cobra.Command) ripple.Options {
	mode := ctx.rippleMode()
	if cmd.Flags().Changed("all-tracks") {
		mode.SetAllTracks(f.allTracks)
	}
	return mode.Options()
}

// runRipple resolves the sequence, hands it to compute, and persists the
// returned snapshot when --apply is set. compute returns the calculator
// result plus the already-edited snapshot to save; a nil snapshot means the
// edit is a no-op.
func runRipple(
	ctx *commandContext,
	cmd *cobra.Command,
	flags *rippleFlags,
	operation string,
	ref string,
	compute func(seq *timeline.Sequence) (ripple.Result, *timeline.Sequence, error),
) error {
	run := func(store *project.Store) error {
		seq, err := resolveSequence(cmd, store, ref)
		if err != nil {
			return err
		}

		result, next, err := compute(seq)
		if err != nil {
			return err
		}

		applied := false
		if flags.apply && next != nil {
			if err := checkOverlaps(next); err != nil {
				return err
			}
			if err := store.SaveSequence(cmd.Context(), next); err != nil {
				return err
			}
			applied = true
		}

		logging.NewComponentLogger(ctx.logger(), "ripple").Info(
			"computed shift",
			logging.Args(
				logging.String(logging.FieldOperation, operation),
				logging.String(logging.FieldSequenceID, seq.ID),
				logging.Float64(logging.FieldDelta, result.TotalDelta),
				logging.Int("affected_clips", len(result.AffectedClips)),
				logging.Bool("applied", applied),
			)...,
		)

		return printRippleReport(cmd, flags, rippleReport{
			Operation:  operation,
			SequenceID: seq.ID,
			Applied:    applied,
			Result:     result,
		})
	}

	if flags.apply {
		return ctx.withLockedStore(run)
	}
	return ctx.withStore(run)
}

func printRippleReport(cmd *cobra.Command, flags *rippleFlags, report rippleReport) error {
	if flags.jsonOut {
		if report.Result.AffectedClips == nil {
			report.Result.AffectedClips = []ripple.AffectedClip{}
		}
		return writeJSON(cmd, report)
	}

	out := cmd.OutOrStdout()
	if len(report.Result.AffectedClips) == 0 {
		fmt.Fprintf(out, "No clips affected (shift %s)\n", formatSeconds(report.Result.TotalDelta))
	} else {
		rows := make([][]string, 0, len(report.Result.AffectedClips))
		for _, affected := range report.Result.AffectedClips {
			rows = append(rows, []string{
				affected.ClipID,
				formatSeconds(affected.OriginalTime),
				formatSeconds(affected.NewTime),
			})
		}
		fmt.Fprintln(out, renderTable(
			[]string{"Clip", "From", "To"},
			rows,
			[]columnAlignment{alignLeft, alignRight, alignRight},
		))
		fmt.Fprintf(out, "Shift: %s across %d clips\n", formatSeconds(report.Result.TotalDelta), len(report.Result.AffectedClips))
	}

	if report.Applied {
		fmt.Fprintln(out, "Applied")
	} else if interactiveOutput(cmd) {
		fmt.Fprintln(out, "Preview only; re-run with --apply to write the edit")
	}
	return nil
}

func newRippleDeleteCommand(ctx *commandContext) *cobra.Command {
	flags := &rippleFlags{}

	cmd := &cobra.Command{
		Use:   "delete <sequence> <clip-id>...",
		Short: "Remove clips and close the gap they leave",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, clipIDs := args[0], args[1:]
			opts := flags.options(ctx, cmd)

			return runRipple(ctx, cmd, flags, "delete", ref, func(seq *timeline.Sequence) (ripple.Result, *timeline.Sequence, error) {
				result := ripple.CalculateDeleteRipple(seq, opts, clipIDs)
				if result.TotalDelta == 0 && len(result.AffectedClips) == 0 {
					return result, nil, nil
				}
				next := ripple.Apply(ripple.RemoveClips(seq, clipIDs), result)
				return result, next, nil
			})
		},
	}

	flags.register(cmd)
	return cmd
}

func newRippleInsertCommand(ctx *commandContext) *cobra.Command {
	flags := &rippleFlags{}
	var trackFlag string
	var atFlag float64
	var durationFlag float64

	cmd := &cobra.Command{
		Use:   "insert <sequence>",
		Short: "Open a gap by shifting downstream clips right",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := flags.options(ctx, cmd)

			return runRipple(ctx, cmd, flags, "insert", args[0], func(seq *timeline.Sequence) (ripple.Result, *timeline.Sequence, error) {
				if trackFlag != "" && seq.Track(trackFlag) == nil {
					return ripple.Result{}, nil, fmt.Errorf("track %q not found in sequence %s", trackFlag, seq.ID)
				}
				result, err := ripple.CalculateInsertRipple(seq, opts, trackFlag, atFlag, durationFlag)
				if err != nil {
					return ripple.Result{}, nil, err
				}
				return result, ripple.Apply(seq, result), nil
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&trackFlag, "track", "t", "", "Track id the gap opens on")
	cmd.Flags().Float64Var(&atFlag, "at", 0, "Insertion point in seconds")
	cmd.Flags().Float64VarP(&durationFlag, "duration", "d", 0, "Gap length in seconds")
	_ = cmd.MarkFlagRequired("track")
	_ = cmd.MarkFlagRequired("duration")
	return cmd
}

func newRippleTrimCommand(ctx *commandContext) *cobra.Command {
	flags := &rippleFlags{}
	var durationFlag float64

	cmd := &cobra.Command{
		Use:   "trim <sequence> <clip-id>",
		Short: "Change a clip's duration and shift later clips by the difference",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, clipID := args[0], args[1]
			opts := flags.options(ctx, cmd)

			return runRipple(ctx, cmd, flags, "trim", ref, func(seq *timeline.Sequence) (ripple.Result, *timeline.Sequence, error) {
				_, clip := seq.FindClip(clipID)
				if clip == nil {
					return ripple.Result{}, nil, fmt.Errorf("clip %q not found in sequence %s", clipID, seq.ID)
				}

				result, err := ripple.CalculateTrimRipple(seq, opts, clipID, clip.DurationSec, durationFlag)
				if err != nil {
					return ripple.Result{}, nil, err
				}
				if result.TotalDelta == 0 {
					return result, nil, nil
				}

				next := ripple.Apply(seq, result)
				_, trimmed := next.FindClip(clipID)
				trimmed.DurationSec = durationFlag
				trimmed.SourceOutSec = trimmed.SourceInSec + durationFlag
				return result, next, nil
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().Float64VarP(&durationFlag, "duration", "d", 0, "New clip duration in seconds")
	_ = cmd.MarkFlagRequired("duration")
	return cmd
}

func newRippleMoveCommand(ctx *commandContext) *cobra.Command {
	flags := &rippleFlags{}
	var toFlag float64

	cmd := &cobra.Command{
		Use:   "move <sequence> <clip-id>",
		Short: "Relocate a clip and shift the clips around its old and new spots",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, clipID := args[0], args[1]
			opts := flags.options(ctx, cmd)

			return runRipple(ctx, cmd, flags, "move", ref, func(seq *timeline.Sequence) (ripple.Result, *timeline.Sequence, error) {
				_, clip := seq.FindClip(clipID)
				if clip == nil {
					return ripple.Result{}, nil, fmt.Errorf("clip %q not found in sequence %s", clipID, seq.ID)
				}

				result, err := ripple.CalculateMoveRipple(seq, opts, clipID, clip.TimelineInSec, toFlag)
				if err != nil {
					return ripple.Result{}, nil, err
				}
				if result.TotalDelta == 0 {
					return result, nil, nil
				}

				next := ripple.Apply(seq, result)
				_, moved := next.FindClip(clipID)
				moved.TimelineInSec = toFlag
				return result, next, nil
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().Float64Var(&toFlag, "to", 0, "New timeline position in seconds")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
