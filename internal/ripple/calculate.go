package ripple

import (
	"errors"
	"fmt"
	"math"

	"cutline/internal/timeline"
)

// ErrInvalidInput marks a calculator argument that is not a usable time
// value (NaN, infinite, or negative seconds).
var ErrInvalidInput = errors.New("ripple: invalid input")

// AffectedClip records one clip's position change within a ripple result.
type AffectedClip struct {
	ClipID       string  `json:"clipId"`
	OriginalTime float64 `json:"originalTime"`
	NewTime      float64 `json:"newTime"`
}

// Result is the computed outcome of one ripple edit: the clips that shift
// and the uniform signed delta applied to them. Results are ephemeral; the
// caller consumes them immediately to build a new sequence snapshot.
type Result struct {
	AffectedClips []AffectedClip `json:"affectedClips"`
	TotalDelta    float64        `json:"totalDelta"`
}

// Options selects the propagation scope for a single calculator call.
type Options struct {
	// AllTracks widens the downstream query from the edited track to every
	// track in the sequence.
	AllTracks bool
}

// CalculateDeleteRipple computes the leftward shift caused by removing the
// given clips. Durations of clips actually found are summed; unknown ids
// contribute nothing. Remaining clips strictly after the earliest removed
// position shift left by the summed duration, scoped to the tracks that
// lost material unless opts.AllTracks widens it. An empty or fully unknown
// id set yields a zero result.
func CalculateDeleteRipple(seq *timeline.Sequence, opts Options, clipIDs []string) Result {
	var (
		totalRemoved float64
		originPoint  float64
		found        bool
		trackIDs     []string
		seenTrack    = map[string]struct{}{}
	)
	removed := NewIDSet(clipIDs...)
	for _, id := range clipIDs {
		track, clip := seq.FindClip(id)
		if clip == nil {
			continue
		}
		totalRemoved += clip.DurationSec
		if !found || clip.TimelineInSec < originPoint {
			originPoint = clip.TimelineInSec
		}
		found = true
		if _, ok := seenTrack[track.ID]; !ok {
			seenTrack[track.ID] = struct{}{}
			trackIDs = append(trackIDs, track.ID)
		}
	}
	if !found {
		return Result{}
	}

	result := Result{TotalDelta: -totalRemoved}
	for _, pair := range scopedClipsAfter(seq, opts, trackIDs, originPoint, removed) {
		result.AffectedClips = append(result.AffectedClips, shifted(pair.Clip, -totalRemoved))
	}
	return result
}

// CalculateInsertRipple computes the rightward shift caused by splicing
// durationSec of new material into trackID at positionSec. Clips starting at
// or before the insertion point are untouched; the splice itself is the
// caller's responsibility.
func CalculateInsertRipple(seq *timeline.Sequence, opts Options, trackID string, positionSec, durationSec float64) (Result, error) {
	if err := validSeconds("insert position", positionSec); err != nil {
		return Result{}, err
	}
	if err := validSeconds("insert duration", durationSec); err != nil {
		return Result{}, err
	}
	if durationSec == 0 {
		return Result{}, fmt.Errorf("%w: insert duration must be greater than zero", ErrInvalidInput)
	}

	result := Result{TotalDelta: durationSec}
	for _, pair := range scopedClipsAfter(seq, opts, []string{trackID}, positionSec, nil) {
		result.AffectedClips = append(result.AffectedClips, shifted(pair.Clip, durationSec))
	}
	return result, nil
}

// CalculateTrimRipple computes the shift caused by changing a clip's
// duration from oldDurationSec to newDurationSec. The trimmed clip itself
// never moves; clips downstream of it shift by the duration delta. The
// downstream set is everything strictly after the trimmed clip's start with
// the clip itself excluded, so a clip abutting the old end still shifts.
// A missing clip or a zero delta yields a zero result.
func CalculateTrimRipple(seq *timeline.Sequence, opts Options, clipID string, oldDurationSec, newDurationSec float64) (Result, error) {
	if err := validSeconds("old duration", oldDurationSec); err != nil {
		return Result{}, err
	}
	if err := validSeconds("new duration", newDurationSec); err != nil {
		return Result{}, err
	}

	delta := newDurationSec - oldDurationSec
	if delta == 0 {
		return Result{}, nil
	}
	track, clip := seq.FindClip(clipID)
	if clip == nil {
		return Result{}, nil
	}

	result := Result{TotalDelta: delta}
	exclude := NewIDSet(clipID)
	for _, pair := range scopedClipsAfter(seq, opts, []string{track.ID}, clip.TimelineInSec, exclude) {
		result.AffectedClips = append(result.AffectedClips, shifted(pair.Clip, delta))
	}
	return result, nil
}

// CalculateMoveRipple computes the shift caused by relocating a clip from
// oldPositionSec to newPositionSec. TotalDelta is always the signed position
// change. The affected set is every other clip strictly after the earlier of
// the two positions; the moved clip is excluded so it never shifts itself.
// A missing clip or a zero position change yields a zero-clip result.
func CalculateMoveRipple(seq *timeline.Sequence, opts Options, clipID string, oldPositionSec, newPositionSec float64) (Result, error) {
	if err := validSeconds("old position", oldPositionSec); err != nil {
		return Result{}, err
	}
	if err := validSeconds("new position", newPositionSec); err != nil {
		return Result{}, err
	}

	delta := newPositionSec - oldPositionSec
	result := Result{TotalDelta: delta}
	if delta == 0 {
		return result, nil
	}
	track, clip := seq.FindClip(clipID)
	if clip == nil {
		return result, nil
	}

	threshold := math.Min(oldPositionSec, newPositionSec)
	exclude := NewIDSet(clipID)
	for _, pair := range scopedClipsAfter(seq, opts, []string{track.ID}, threshold, exclude) {
		result.AffectedClips = append(result.AffectedClips, shifted(pair.Clip, delta))
	}
	return result, nil
}

// scopedClipsAfter runs the downstream query over either the named tracks or
// the whole sequence, preserving sequence track order in the output.
func scopedClipsAfter(seq *timeline.Sequence, opts Options, trackIDs []string, threshold float64, exclude IDSet) []TrackClip {
	if opts.AllTracks {
		return AllClipsAfter(seq, threshold, exclude)
	}
	scope := NewIDSet(trackIDs...)
	var pairs []TrackClip
	for i := range seq.Tracks {
		if !scope.Contains(seq.Tracks[i].ID) {
			continue
		}
		for _, clip := range ClipsAfter(seq, seq.Tracks[i].ID, threshold, exclude) {
			pairs = append(pairs, TrackClip{TrackID: seq.Tracks[i].ID, Clip: clip})
		}
	}
	return pairs
}

func shifted(clip timeline.Clip, delta float64) AffectedClip {
	return AffectedClip{
		ClipID:       clip.ID,
		OriginalTime: clip.TimelineInSec,
		NewTime:      clip.TimelineInSec + delta,
	}
}

func validSeconds(what string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: %s is not a finite number", ErrInvalidInput, what)
	}
	if value < 0 {
		return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidInput, what, value)
	}
	return nil
}
