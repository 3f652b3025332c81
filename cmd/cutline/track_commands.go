package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cutline/internal/logging"
	"cutline/internal/project"
	"cutline/internal/timeline"
)

func newTrackCommand(ctx *commandContext) *cobra.Command {
	trackCmd := &cobra.Command{
		Use:   "track",
		Short: "Manage sequence tracks",
	}

	trackCmd.AddCommand(newTrackAddCommand(ctx))

	return trackCmd
}

func newTrackAddCommand(ctx *commandContext) *cobra.Command {
	var kindFlag string
	var nameFlag string

	cmd := &cobra.Command{
		Use:   "add <sequence>",
		Short: "Add a track to a sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			kindValue := strings.TrimSpace(kindFlag)
			if kindValue == "" {
				kindValue = cfg.Editor.DefaultTrackKind
			}
			kind, ok := timeline.ParseTrackKind(kindValue)
			if !ok {
				return fmt.Errorf("unknown track kind %q", kindValue)
			}

			return ctx.withLockedStore(func(store *project.Store) error {
				seq, err := resolveSequence(cmd, store, args[0])
				if err != nil {
					return err
				}

				name := displayName(nameFlag)
				if name == "" {
					name = defaultTrackName(seq, kind)
				}

				track := timeline.NewTrack(name, kind)
				seq.AddTrack(track)
				if err := store.SaveSequence(cmd.Context(), seq); err != nil {
					return err
				}

				logging.NewComponentLogger(ctx.logger(), "cli").Info(
					"track added",
					logging.Args(
						logging.String(logging.FieldSequenceID, seq.ID),
						logging.String(logging.FieldTrackID, track.ID),
					)...,
				)
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s track %q (%s)\n", kind, name, track.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&kindFlag, "kind", "k", "", "Track kind: video, audio, caption, or overlay")
	cmd.Flags().StringVarP(&nameFlag, "name", "n", "", "Track display name")
	return cmd
}

// defaultTrackName numbers tracks per kind, so adding a second audio track to
// a sequence yields "Audio 2".
func defaultTrackName(seq *timeline.Sequence, kind timeline.TrackKind) string {
	count := 1
	for i := range seq.Tracks {
		if seq.Tracks[i].Kind == kind {
			count++
		}
	}
	return fmt.Sprintf("%s %d", titleCaser.String(string(kind)), count)
}
