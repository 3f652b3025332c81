package ripple_test

import (
	"testing"

	"cutline/internal/ripple"
)

func TestModeToggle(t *testing.T) {
	mode := ripple.NewMode(false, false)

	if mode.Enabled() {
		t.Fatal("mode should start disabled")
	}
	if !mode.Toggle() {
		t.Fatal("toggle should enable")
	}
	if mode.Toggle() {
		t.Fatal("second toggle should disable")
	}
}

func TestModeOptionsReflectScope(t *testing.T) {
	mode := ripple.NewMode(true, false)
	if mode.Options().AllTracks {
		t.Fatal("expected single-track options")
	}
	mode.SetAllTracks(true)
	if !mode.Options().AllTracks {
		t.Fatal("expected all-tracks options after SetAllTracks")
	}
}

func TestModeSetEnabled(t *testing.T) {
	mode := ripple.NewMode(true, true)
	mode.SetEnabled(false)
	if mode.Enabled() {
		t.Fatal("SetEnabled(false) should disable the mode")
	}
	if !mode.AllTracks() {
		t.Fatal("SetEnabled must not clobber the all-tracks flag")
	}
}
