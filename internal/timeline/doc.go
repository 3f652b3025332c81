// Package timeline defines the sequence snapshot model the editing engine
// operates on.
//
// A Sequence owns an ordered set of Tracks; each Track owns Clips placed by
// absolute timeline position and duration, with an untouched source trim
// range. Clips on a track are not guaranteed to be stored in playback order;
// callers that need order use SortedClips. The ripple engine treats these
// structures as borrowed, immutable input and returns fresh snapshots instead
// of mutating them in place.
package timeline
