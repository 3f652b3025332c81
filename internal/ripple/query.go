package ripple

import (
	"sort"

	"cutline/internal/timeline"
)

// IDSet is an explicit set of clip ids excluded from a downstream query.
type IDSet map[string]struct{}

// NewIDSet builds an IDSet from the given ids.
func NewIDSet(ids ...string) IDSet {
	set := make(IDSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Contains reports whether id is in the set. A nil set contains nothing.
func (s IDSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// TrackClip pairs a clip with the track it sits on, for cross-track queries.
type TrackClip struct {
	TrackID string
	Clip    timeline.Clip
}

// ClipsAfter returns the clips on the named track strictly after threshold,
// minus excluded ids, ordered ascending by timeline position. A clip
// starting exactly at the threshold is not downstream of it and is left out.
// An unknown track yields an empty result, not an error.
func ClipsAfter(seq *timeline.Sequence, trackID string, threshold float64, exclude IDSet) []timeline.Clip {
	track := seq.Track(trackID)
	if track == nil {
		return nil
	}
	var clips []timeline.Clip
	for _, clip := range track.Clips {
		if clip.TimelineInSec <= threshold || exclude.Contains(clip.ID) {
			continue
		}
		clips = append(clips, clip)
	}
	sort.SliceStable(clips, func(i, j int) bool {
		return clips[i].TimelineInSec < clips[j].TimelineInSec
	})
	return clips
}

// AllClipsAfter flattens ClipsAfter across every track in the sequence.
// Tracks are visited in sequence order, clips within a track ascending by
// timeline position, so results are deterministic for a given snapshot.
func AllClipsAfter(seq *timeline.Sequence, threshold float64, exclude IDSet) []TrackClip {
	var pairs []TrackClip
	for i := range seq.Tracks {
		for _, clip := range ClipsAfter(seq, seq.Tracks[i].ID, threshold, exclude) {
			pairs = append(pairs, TrackClip{TrackID: seq.Tracks[i].ID, Clip: clip})
		}
	}
	return pairs
}
