package main

import (
	"encoding/json"
	"testing"
)

func TestModeShowReflectsConfig(t *testing.T) {
	env := setupCLITestEnv(t)

	out := mustRunCLI(t, env, "mode", "show")
	requireContains(t, out, "Ripple edits")
	requireContains(t, out, "yes")

	writeTestConfig(t, env, false, true)
	out = mustRunCLI(t, env, "mode", "show", "--json")

	var mode struct {
		RippleEnabled bool `json:"rippleEnabled"`
		AllTracks     bool `json:"allTracks"`
	}
	if err := json.Unmarshal([]byte(out), &mode); err != nil {
		t.Fatalf("decode mode show output: %v", err)
	}
	if mode.RippleEnabled || !mode.AllTracks {
		t.Fatalf("mode did not follow config: %+v", mode)
	}
}
