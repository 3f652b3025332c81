package ripple_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"cutline/internal/ripple"
	"cutline/internal/timeline"
)

func TestDeleteRippleShiftsDownstreamClips(t *testing.T) {
	seq := sequence(track("v1", clip("a", 0, 5), clip("b", 5, 3), clip("c", 8, 5)))

	result := ripple.CalculateDeleteRipple(seq, ripple.Options{}, []string{"a"})
	if result.TotalDelta != -5 {
		t.Fatalf("expected totalDelta -5, got %v", result.TotalDelta)
	}
	want := []ripple.AffectedClip{
		{ClipID: "b", OriginalTime: 5, NewTime: 0},
		{ClipID: "c", OriginalTime: 8, NewTime: 3},
	}
	if !reflect.DeepEqual(result.AffectedClips, want) {
		t.Fatalf("unexpected affected clips: %#v", result.AffectedClips)
	}
}

func TestDeleteRippleSumsRemovedDurations(t *testing.T) {
	seq := sequence(track("v1", clip("a", 0, 5), clip("b", 5, 3), clip("c", 8, 5), clip("d", 13, 2)))

	result := ripple.CalculateDeleteRipple(seq, ripple.Options{}, []string{"b", "c"})
	if result.TotalDelta != -8 {
		t.Fatalf("expected totalDelta -8, got %v", result.TotalDelta)
	}
	// Origin is the earliest removed position (5); only d remains downstream.
	want := []ripple.AffectedClip{{ClipID: "d", OriginalTime: 13, NewTime: 5}}
	if !reflect.DeepEqual(result.AffectedClips, want) {
		t.Fatalf("unexpected affected clips: %#v", result.AffectedClips)
	}
}

func TestDeleteRippleEmptyInput(t *testing.T) {
	seq := sequence(track("v1", clip("a", 0, 5)))

	result := ripple.CalculateDeleteRipple(seq, ripple.Options{}, nil)
	if result.TotalDelta != 0 || len(result.AffectedClips) != 0 {
		t.Fatalf("expected zero result, got %#v", result)
	}
}

func TestDeleteRippleUnknownIDsContributeNothing(t *testing.T) {
	seq := sequence(track("v1", clip("a", 0, 5), clip("b", 5, 3)))

	result := ripple.CalculateDeleteRipple(seq, ripple.Options{}, []string{"ghost", "a"})
	if result.TotalDelta != -5 {
		t.Fatalf("expected totalDelta -5, got %v", result.TotalDelta)
	}

	onlyGhosts := ripple.CalculateDeleteRipple(seq, ripple.Options{}, []string{"ghost"})
	if onlyGhosts.TotalDelta != 0 || len(onlyGhosts.AffectedClips) != 0 {
		t.Fatalf("expected zero result for unknown ids, got %#v", onlyGhosts)
	}
}

func TestDeleteRippleTrackScope(t *testing.T) {
	build := func() *timeline.Sequence {
		return sequence(
			track("v1", clip("a", 0, 5), clip("b", 5, 3)),
			track("a1", clip("x", 5, 4)),
		)
	}

	scoped := ripple.CalculateDeleteRipple(build(), ripple.Options{}, []string{"a"})
	for _, affected := range scoped.AffectedClips {
		if affected.ClipID == "x" {
			t.Fatal("track a1 must be untouched without all-tracks mode")
		}
	}

	fanned := ripple.CalculateDeleteRipple(build(), ripple.Options{AllTracks: true}, []string{"a"})
	var foundX bool
	for _, affected := range fanned.AffectedClips {
		if affected.ClipID == "x" {
			foundX = true
			if affected.NewTime != 0 {
				t.Fatalf("expected x to shift 5 -> 0, got %v", affected.NewTime)
			}
		}
	}
	if !foundX {
		t.Fatal("all-tracks mode must shift the co-located clip on track a1")
	}
}

func TestInsertRippleShiftsRight(t *testing.T) {
	seq := sequence(track("v1", clip("early", 0, 2), clip("late", 5, 5)))

	result, err := ripple.CalculateInsertRipple(seq, ripple.Options{}, "v1", 3, 4)
	if err != nil {
		t.Fatalf("CalculateInsertRipple failed: %v", err)
	}
	if result.TotalDelta != 4 {
		t.Fatalf("expected totalDelta 4, got %v", result.TotalDelta)
	}
	want := []ripple.AffectedClip{{ClipID: "late", OriginalTime: 5, NewTime: 9}}
	if !reflect.DeepEqual(result.AffectedClips, want) {
		t.Fatalf("unexpected affected clips: %#v", result.AffectedClips)
	}
}

func TestInsertRippleLeavesInsertionPointAlone(t *testing.T) {
	seq := sequence(track("v1", clip("at", 3, 2), clip("after", 6, 1)))

	result, err := ripple.CalculateInsertRipple(seq, ripple.Options{}, "v1", 3, 2)
	if err != nil {
		t.Fatalf("CalculateInsertRipple failed: %v", err)
	}
	if len(result.AffectedClips) != 1 || result.AffectedClips[0].ClipID != "after" {
		t.Fatalf("clip starting at the insertion point must not shift: %#v", result.AffectedClips)
	}
}

func TestInsertRippleUnknownTrack(t *testing.T) {
	seq := sequence(track("v1", clip("a", 0, 5)))

	result, err := ripple.CalculateInsertRipple(seq, ripple.Options{}, "missing", 0, 2)
	if err != nil {
		t.Fatalf("CalculateInsertRipple failed: %v", err)
	}
	if result.TotalDelta != 2 || len(result.AffectedClips) != 0 {
		t.Fatalf("expected empty shift for unknown track, got %#v", result)
	}
}

func TestInsertRippleRejectsInvalidInput(t *testing.T) {
	seq := sequence(track("v1", clip("a", 0, 5)))

	cases := []struct {
		name     string
		position float64
		duration float64
	}{
		{"zero duration", 0, 0},
		{"negative duration", 0, -1},
		{"nan duration", 0, math.NaN()},
		{"negative position", -1, 2},
		{"infinite position", math.Inf(1), 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ripple.CalculateInsertRipple(seq, ripple.Options{}, "v1", tc.position, tc.duration)
			if !errors.Is(err, ripple.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestTrimRippleExtension(t *testing.T) {
	seq := sequence(track("v1", clip("a", 0, 5), clip("b", 5, 3)))

	result, err := ripple.CalculateTrimRipple(seq, ripple.Options{}, "a", 5, 7)
	if err != nil {
		t.Fatalf("CalculateTrimRipple failed: %v", err)
	}
	if result.TotalDelta != 2 {
		t.Fatalf("expected totalDelta 2, got %v", result.TotalDelta)
	}
	want := []ripple.AffectedClip{{ClipID: "b", OriginalTime: 5, NewTime: 7}}
	if !reflect.DeepEqual(result.AffectedClips, want) {
		t.Fatalf("unexpected affected clips: %#v", result.AffectedClips)
	}
}

func TestTrimRippleShortening(t *testing.T) {
	seq := sequence(track("v1", clip("a", 0, 5), clip("b", 5, 3), clip("c", 8, 2)))

	result, err := ripple.CalculateTrimRipple(seq, ripple.Options{}, "a", 5, 3)
	if err != nil {
		t.Fatalf("CalculateTrimRipple failed: %v", err)
	}
	if result.TotalDelta != -2 {
		t.Fatalf("expected totalDelta -2, got %v", result.TotalDelta)
	}
	want := []ripple.AffectedClip{
		{ClipID: "b", OriginalTime: 5, NewTime: 3},
		{ClipID: "c", OriginalTime: 8, NewTime: 6},
	}
	if !reflect.DeepEqual(result.AffectedClips, want) {
		t.Fatalf("unexpected affected clips: %#v", result.AffectedClips)
	}
}

func TestTrimRippleNeverMovesTrimmedClip(t *testing.T) {
	seq := sequence(track("v1", clip("a", 0, 5), clip("b", 5, 3)))

	result, err := ripple.CalculateTrimRipple(seq, ripple.Options{}, "a", 5, 7)
	if err != nil {
		t.Fatalf("CalculateTrimRipple failed: %v", err)
	}
	for _, affected := range result.AffectedClips {
		if affected.ClipID == "a" {
			t.Fatal("the trimmed clip must not appear in the affected set")
		}
	}
}

func TestTrimRippleZeroDeltaAndMissingClip(t *testing.T) {
	seq := sequence(track("v1", clip("a", 0, 5), clip("b", 5, 3)))

	result, err := ripple.CalculateTrimRipple(seq, ripple.Options{}, "a", 5, 5)
	if err != nil {
		t.Fatalf("CalculateTrimRipple failed: %v", err)
	}
	if result.TotalDelta != 0 || len(result.AffectedClips) != 0 {
		t.Fatalf("expected zero result for zero delta, got %#v", result)
	}

	result, err = ripple.CalculateTrimRipple(seq, ripple.Options{}, "ghost", 5, 7)
	if err != nil {
		t.Fatalf("CalculateTrimRipple failed: %v", err)
	}
	if result.TotalDelta != 0 || len(result.AffectedClips) != 0 {
		t.Fatalf("expected zero result for unknown clip, got %#v", result)
	}
}

func TestTrimRippleRejectsInvalidInput(t *testing.T) {
	seq := sequence(track("v1", clip("a", 0, 5)))

	if _, err := ripple.CalculateTrimRipple(seq, ripple.Options{}, "a", -1, 5); !errors.Is(err, ripple.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative old duration, got %v", err)
	}
	if _, err := ripple.CalculateTrimRipple(seq, ripple.Options{}, "a", 5, math.NaN()); !errors.Is(err, ripple.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for NaN new duration, got %v", err)
	}
}

func TestMoveRippleDeltaContract(t *testing.T) {
	seq := sequence(track("v1", clip("a", 0, 5), clip("b", 5, 3), clip("c", 8, 2)))

	result, err := ripple.CalculateMoveRipple(seq, ripple.Options{}, "b", 5, 7)
	if err != nil {
		t.Fatalf("CalculateMoveRipple failed: %v", err)
	}
	if result.TotalDelta != 2 {
		t.Fatalf("expected totalDelta 2, got %v", result.TotalDelta)
	}
	for _, affected := range result.AffectedClips {
		if affected.ClipID == "b" {
			t.Fatal("the moved clip must not shift itself")
		}
		if affected.NewTime != affected.OriginalTime+2 {
			t.Fatalf("affected clip %s must shift by exactly the delta: %#v", affected.ClipID, affected)
		}
	}
}

func TestMoveRippleThresholdIsEarlierPosition(t *testing.T) {
	seq := sequence(track("v1", clip("a", 0, 2), clip("b", 4, 2), clip("c", 8, 2)))

	// Moving c left to 3: everything strictly after min(8, 3) = 3 shifts.
	result, err := ripple.CalculateMoveRipple(seq, ripple.Options{}, "c", 8, 3)
	if err != nil {
		t.Fatalf("CalculateMoveRipple failed: %v", err)
	}
	if result.TotalDelta != -5 {
		t.Fatalf("expected totalDelta -5, got %v", result.TotalDelta)
	}
	want := []ripple.AffectedClip{{ClipID: "b", OriginalTime: 4, NewTime: -1}}
	if !reflect.DeepEqual(result.AffectedClips, want) {
		t.Fatalf("unexpected affected clips: %#v", result.AffectedClips)
	}
}

func TestMoveRippleZeroMoveAndMissingClip(t *testing.T) {
	seq := sequence(track("v1", clip("a", 0, 5), clip("b", 5, 3)))

	result, err := ripple.CalculateMoveRipple(seq, ripple.Options{}, "a", 5, 5)
	if err != nil {
		t.Fatalf("CalculateMoveRipple failed: %v", err)
	}
	if result.TotalDelta != 0 || len(result.AffectedClips) != 0 {
		t.Fatalf("expected zero result for zero move, got %#v", result)
	}

	result, err = ripple.CalculateMoveRipple(seq, ripple.Options{}, "ghost", 2, 6)
	if err != nil {
		t.Fatalf("CalculateMoveRipple failed: %v", err)
	}
	if result.TotalDelta != 4 || len(result.AffectedClips) != 0 {
		t.Fatalf("expected delta-only result for unknown clip, got %#v", result)
	}
}

func TestMoveRippleRejectsInvalidInput(t *testing.T) {
	seq := sequence(track("v1", clip("a", 0, 5)))

	if _, err := ripple.CalculateMoveRipple(seq, ripple.Options{}, "a", math.Inf(-1), 2); !errors.Is(err, ripple.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for infinite position, got %v", err)
	}
	if _, err := ripple.CalculateMoveRipple(seq, ripple.Options{}, "a", 2, -3); !errors.Is(err, ripple.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative position, got %v", err)
	}
}

func TestCalculatorsAreIdempotentOverUnchangedSnapshot(t *testing.T) {
	seq := sequence(
		track("v1", clip("a", 0, 5), clip("b", 5, 3), clip("c", 8, 5)),
		track("a1", clip("x", 2, 4)),
	)
	opts := ripple.Options{AllTracks: true}

	first := ripple.CalculateDeleteRipple(seq, opts, []string{"a"})
	second := ripple.CalculateDeleteRipple(seq, opts, []string{"a"})
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("delete results differ across identical calls: %#v vs %#v", first, second)
	}

	insFirst, err := ripple.CalculateInsertRipple(seq, opts, "v1", 3, 4)
	if err != nil {
		t.Fatalf("CalculateInsertRipple failed: %v", err)
	}
	insSecond, _ := ripple.CalculateInsertRipple(seq, opts, "v1", 3, 4)
	if !reflect.DeepEqual(insFirst, insSecond) {
		t.Fatalf("insert results differ across identical calls")
	}
}

func TestCalculatorsDoNotMutateInput(t *testing.T) {
	seq := sequence(track("v1", clip("a", 0, 5), clip("b", 5, 3)))
	snapshot := seq.Clone()

	ripple.CalculateDeleteRipple(seq, ripple.Options{}, []string{"a"})
	if _, err := ripple.CalculateInsertRipple(seq, ripple.Options{}, "v1", 1, 2); err != nil {
		t.Fatalf("CalculateInsertRipple failed: %v", err)
	}
	if _, err := ripple.CalculateTrimRipple(seq, ripple.Options{}, "a", 5, 7); err != nil {
		t.Fatalf("CalculateTrimRipple failed: %v", err)
	}
	if _, err := ripple.CalculateMoveRipple(seq, ripple.Options{}, "b", 5, 9); err != nil {
		t.Fatalf("CalculateMoveRipple failed: %v", err)
	}

	if !reflect.DeepEqual(seq.Tracks, snapshot.Tracks) {
		t.Fatal("calculators must treat the sequence as immutable input")
	}
}
