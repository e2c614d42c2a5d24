// Package state carries the per-call shared state container through the
// command chain via context.Context, so a parent command can publish values
// its descendants read without any package-level globals.
package state
