package testsupport

import (
	"cutline/internal/timeline"
)

// ClipSpec describes one clip for NewSequence: id, start, and duration.
type ClipSpec struct {
	ID       string
	Start    float64
	Duration float64
}

// TrackSpec describes one track for NewSequence.
type TrackSpec struct {
	ID    string
	Kind  timeline.TrackKind
	Clips []ClipSpec
}

// NewSequence builds a sequence snapshot from declarative track specs. The
// source range of each clip mirrors its duration starting at zero.
func NewSequence(name string, tracks ...TrackSpec) *timeline.Sequence {
	seq := timeline.NewSequence(name)
	for _, ts := range tracks {
		kind := ts.Kind
		if kind == "" {
			kind = timeline.TrackVideo
		}
		track := timeline.Track{ID: ts.ID, Kind: kind, Name: ts.ID}
		for _, cs := range ts.Clips {
			track.Clips = append(track.Clips, timeline.Clip{
				ID:            cs.ID,
				TimelineInSec: cs.Start,
				DurationSec:   cs.Duration,
				SourceInSec:   0,
				SourceOutSec:  cs.Duration,
			})
		}
		seq.Tracks = append(seq.Tracks, track)
	}
	return seq
}
