package ripple

import (
	"time"

	"cutline/internal/timeline"
)

// Apply builds a new sequence snapshot with the result's shifts in place.
// The input sequence is left untouched; clip ids the snapshot no longer
// contains are skipped. Apply carries no transactional guarantee: if the
// snapshot changed since the result was computed, the caller must recompute
// rather than apply a stale result.
func Apply(seq *timeline.Sequence, result Result) *timeline.Sequence {
	next := seq.Clone()
	if len(result.AffectedClips) == 0 {
		return next
	}

	newTimes := make(map[string]float64, len(result.AffectedClips))
	for _, affected := range result.AffectedClips {
		newTimes[affected.ClipID] = affected.NewTime
	}
	for i := range next.Tracks {
		track := &next.Tracks[i]
		for j := range track.Clips {
			if t, ok := newTimes[track.Clips[j].ID]; ok {
				track.Clips[j].TimelineInSec = t
			}
		}
	}
	next.ModifiedAt = time.Now().UTC()
	return next
}

// RemoveClips builds a new snapshot without the given clips. Combined with
// CalculateDeleteRipple and Apply it completes a ripple delete; the order is
// remove first, then apply the shifts.
func RemoveClips(seq *timeline.Sequence, clipIDs []string) *timeline.Sequence {
	next := seq.Clone()
	remove := NewIDSet(clipIDs...)
	changed := false
	for i := range next.Tracks {
		track := &next.Tracks[i]
		kept := track.Clips[:0]
		for _, clip := range track.Clips {
			if remove.Contains(clip.ID) {
				changed = true
				continue
			}
			kept = append(kept, clip)
		}
		track.Clips = kept
	}
	if changed {
		next.ModifiedAt = time.Now().UTC()
	}
	return next
}
