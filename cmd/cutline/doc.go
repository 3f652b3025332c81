// Command cutline edits timeline sequences from the terminal. Its ripple
// subcommands preview or apply the downstream shifts an edit causes.
package main
