package main

import "testing"

func TestRootHelpListsCommands(t *testing.T) {
	env := setupCLITestEnv(t)

	out := mustRunCLI(t, env)
	for _, name := range []string{"sequence", "track", "clip", "ripple", "mode", "config"} {
		requireContains(t, out, name)
	}
}
