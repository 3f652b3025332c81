// Package project persists sequence snapshots in SQLite and guards editing
// sessions with a file lock.
//
// The Store keeps one row per sequence: the full snapshot as a JSON payload
// plus denormalized summary columns (track/clip counts, duration) for cheap
// listings. The ripple engine never touches the store; the CLI command layer
// loads a snapshot, computes against it, and saves the new snapshot it
// decides to keep.
//
// The SessionLock serializes compute+apply+save on one machine so a snapshot
// cannot change between computing a ripple and applying it. Schema changes
// bump the version in schema.go.
package project
