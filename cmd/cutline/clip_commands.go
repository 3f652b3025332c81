package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"cutline/internal/logging"
	"cutline/internal/project"
	"cutline/internal/ripple"
	"cutline/internal/timeline"
)

func newClipCommand(ctx *commandContext) *cobra.Command {
	clipCmd := &cobra.Command{
		Use:   "clip",
		Short: "Place and remove clips",
	}

	clipCmd.AddCommand(newClipAddCommand(ctx))
	clipCmd.AddCommand(newClipRemoveCommand(ctx))

	return clipCmd
}

func newClipAddCommand(ctx *commandContext) *cobra.Command {
	var (
		trackFlag    string
		atFlag       float64
		durationFlag float64
		sourceIn     float64
		sourceOut    float64
		assetFlag    string
		labelFlag    string
	)

	cmd := &cobra.Command{
		Use:   "add <sequence>",
		Short: "Place a clip on a track",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if trackFlag == "" {
				return errors.New("--track is required")
			}
			if durationFlag <= 0 {
				return errors.New("--duration must be greater than zero")
			}
			if sourceOut == 0 {
				sourceOut = sourceIn + durationFlag
			}
			if sourceOut <= sourceIn {
				return fmt.Errorf("source range [%v, %v) is empty", sourceIn, sourceOut)
			}

			return ctx.withLockedStore(func(store *project.Store) error {
				seq, err := resolveSequence(cmd, store, args[0])
				if err != nil {
					return err
				}
				track := seq.Track(trackFlag)
				if track == nil {
					return fmt.Errorf("track %q not found in sequence %s", trackFlag, seq.ID)
				}

				clip := timeline.NewClip(assetFlag, atFlag, durationFlag, sourceIn, sourceOut)
				clip.Label = labelFlag
				for _, existing := range track.Clips {
					if existing.Overlaps(clip) {
						return fmt.Errorf("clip would overlap %s at %s", existing.ID, formatSeconds(existing.TimelineInSec))
					}
				}

				track.Clips = append(track.Clips, clip)
				if err := store.SaveSequence(cmd.Context(), seq); err != nil {
					return err
				}

				logging.NewComponentLogger(ctx.logger(), "cli").Info(
					"clip placed",
					logging.Args(
						logging.String(logging.FieldSequenceID, seq.ID),
						logging.String(logging.FieldTrackID, track.ID),
						logging.String(logging.FieldClipID, clip.ID),
					)...,
				)
				fmt.Fprintf(cmd.OutOrStdout(), "Placed clip %s at %s on %q\n", clip.ID, formatSeconds(atFlag), track.Name)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&trackFlag, "track", "t", "", "Target track id")
	cmd.Flags().Float64Var(&atFlag, "at", 0, "Timeline position in seconds")
	cmd.Flags().Float64VarP(&durationFlag, "duration", "d", 0, "Clip duration in seconds")
	cmd.Flags().Float64Var(&sourceIn, "source-in", 0, "Source in point in seconds")
	cmd.Flags().Float64Var(&sourceOut, "source-out", 0, "Source out point in seconds (defaults to source-in + duration)")
	cmd.Flags().StringVar(&assetFlag, "asset", "", "Asset identifier the clip references")
	cmd.Flags().StringVar(&labelFlag, "label", "", "Clip display label")
	return cmd
}

func newClipRemoveCommand(ctx *commandContext) *cobra.Command {
	var rippleFlag bool
	var noRipple bool
	var allTracks bool

	cmd := &cobra.Command{
		Use:   "remove <sequence> <clip-id>...",
		Short: "Remove clips, rippling later clips left when ripple mode is on",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if rippleFlag && noRipple {
				return errors.New("specify only one of --ripple or --no-ripple")
			}

			mode := ctx.rippleMode()
			if rippleFlag {
				mode.SetEnabled(true)
			}
			if noRipple {
				mode.SetEnabled(false)
			}
			if cmd.Flags().Changed("all-tracks") {
				mode.SetAllTracks(allTracks)
			}

			ref, clipIDs := args[0], args[1:]
			return ctx.withLockedStore(func(store *project.Store) error {
				seq, err := resolveSequence(cmd, store, ref)
				if err != nil {
					return err
				}

				next := ripple.RemoveClips(seq, clipIDs)
				removed := seq.ClipCount() - next.ClipCount()
				if removed == 0 {
					return fmt.Errorf("no matching clips in sequence %s", seq.ID)
				}

				var result ripple.Result
				if mode.Enabled() {
					result = ripple.CalculateDeleteRipple(seq, mode.Options(), clipIDs)
					next = ripple.Apply(next, result)
				}
				if err := checkOverlaps(next); err != nil {
					return err
				}
				if err := store.SaveSequence(cmd.Context(), next); err != nil {
					return err
				}

				logging.NewComponentLogger(ctx.logger(), "cli").Info(
					"clips removed",
					logging.Args(
						logging.String(logging.FieldSequenceID, seq.ID),
						logging.Int("removed", removed),
						logging.Bool("ripple", mode.Enabled()),
						logging.Float64(logging.FieldDelta, result.TotalDelta),
					)...,
				)

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Removed %d clips from %q\n", removed, seq.Name)
				if mode.Enabled() {
					fmt.Fprintf(out, "Rippled %d clips by %s\n", len(result.AffectedClips), formatSeconds(result.TotalDelta))
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&rippleFlag, "ripple", false, "Force ripple mode on for this removal")
	cmd.Flags().BoolVar(&noRipple, "no-ripple", false, "Force ripple mode off for this removal")
	cmd.Flags().BoolVar(&allTracks, "all-tracks", false, "Ripple every track, not just the edited ones")
	return cmd
}

// checkOverlaps rejects a snapshot in which any track ended up with
// intersecting clips.
func checkOverlaps(seq *timeline.Sequence) error {
	for i := range seq.Tracks {
		if seq.Tracks[i].HasOverlap() {
			return fmt.Errorf("edit would overlap clips on track %q", seq.Tracks[i].Name)
		}
	}
	return nil
}
