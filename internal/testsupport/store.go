package testsupport

import (
	"context"
	"testing"

	"cutline/internal/config"
	"cutline/internal/project"
	"cutline/internal/timeline"
)

// MustOpenStore opens a project.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *project.Store {
	t.Helper()

	store, err := project.Open(cfg)
	if err != nil {
		t.Fatalf("project.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// SaveSequence persists a sequence for tests using the provided store.
func SaveSequence(t testing.TB, store *project.Store, seq *timeline.Sequence) {
	t.Helper()

	if err := store.SaveSequence(context.Background(), seq); err != nil {
		t.Fatalf("store.SaveSequence: %v", err)
	}
}
