package main

import (
	"strings"
	"testing"
)

func TestSequenceLifecycle(t *testing.T) {
	env := setupCLITestEnv(t)

	out := mustRunCLI(t, env, "sequence", "create", "Feature Cut")
	requireContains(t, out, "Created sequence")
	seqID := extractParenID(t, strings.TrimSpace(out))

	out = mustRunCLI(t, env, "sequence", "list")
	requireContains(t, out, "Feature Cut")
	requireContains(t, out, seqID)

	_, _, err := runCLI(t, env, "sequence", "create", "Feature Cut")
	if err == nil {
		t.Fatal("expected duplicate name to fail")
	}

	out = mustRunCLI(t, env, "sequence", "delete", "Feature Cut")
	requireContains(t, out, "Deleted sequence")

	out = mustRunCLI(t, env, "sequence", "list")
	requireContains(t, out, "No sequences")
}

func TestSequenceShowRendersClips(t *testing.T) {
	env := setupCLITestEnv(t)

	out := mustRunCLI(t, env, "sequence", "create", "Main")
	seqID := extractParenID(t, strings.TrimSpace(out))

	out = mustRunCLI(t, env, "track", "add", seqID)
	requireContains(t, out, "Added video track")
	trackID := extractParenID(t, strings.TrimSpace(out))

	mustRunCLI(t, env, "clip", "add", seqID,
		"--track", trackID, "--at", "0", "--duration", "5", "--label", "intro")

	out = mustRunCLI(t, env, "sequence", "show", seqID)
	requireContains(t, out, "Video 1")
	requireContains(t, out, "intro")
	requireContains(t, out, "5s")
}

func TestSequenceShowUnknownFails(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, env, "sequence", "show", "ghost")
	if err == nil {
		t.Fatal("expected unknown sequence to fail")
	}
	requireContains(t, err.Error(), "not found")
}

func TestTrackAddKinds(t *testing.T) {
	env := setupCLITestEnv(t)

	out := mustRunCLI(t, env, "sequence", "create", "Main")
	seqID := extractParenID(t, strings.TrimSpace(out))

	out = mustRunCLI(t, env, "track", "add", seqID, "--kind", "audio")
	requireContains(t, out, "Added audio track")
	requireContains(t, out, "Audio 1")

	out = mustRunCLI(t, env, "track", "add", seqID, "--kind", "audio")
	requireContains(t, out, "Audio 2")

	_, _, err := runCLI(t, env, "track", "add", seqID, "--kind", "midi")
	if err == nil {
		t.Fatal("expected unknown kind to fail")
	}
}

func TestClipAddRejectsOverlap(t *testing.T) {
	env := setupCLITestEnv(t)

	out := mustRunCLI(t, env, "sequence", "create", "Main")
	seqID := extractParenID(t, strings.TrimSpace(out))
	out = mustRunCLI(t, env, "track", "add", seqID)
	trackID := extractParenID(t, strings.TrimSpace(out))

	mustRunCLI(t, env, "clip", "add", seqID, "--track", trackID, "--at", "0", "--duration", "5")

	_, _, err := runCLI(t, env, "clip", "add", seqID, "--track", trackID, "--at", "3", "--duration", "4")
	if err == nil {
		t.Fatal("expected overlapping placement to fail")
	}
	requireContains(t, err.Error(), "overlap")

	// Touching edges are allowed.
	mustRunCLI(t, env, "clip", "add", seqID, "--track", trackID, "--at", "5", "--duration", "3")
}
