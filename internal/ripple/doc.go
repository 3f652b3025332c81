// Package ripple computes position deltas for ripple edits over a sequence
// snapshot.
//
// A ripple edit cascades: when material is removed, inserted, trimmed, or
// moved, every clip downstream of the edit point shifts by the same signed
// delta so no gap or overlap results. The four calculators here are pure
// functions over a borrowed *timeline.Sequence; they allocate only their
// Result and never mutate their input, so callers may invoke them from any
// goroutine without coordination. Applying a Result to produce a new
// snapshot is the caller's job (see Apply); whether to ripple at all is
// decided by the caller via Mode, which the calculators never read.
//
// Missing track or clip ids degrade to empty results rather than errors:
// these are advisory computations and the command layer validates its own
// input. Malformed numbers (NaN, infinities, negative times) are rejected
// with ErrInvalidInput.
package ripple
