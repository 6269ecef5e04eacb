// Package filesystem is the single entry point for file access. Every
// package reads and writes through API() instead of the os package, so
// tests can swap the real disk for an in-memory tree without touching
// the code under test.
package filesystem

import "github.com/spf13/afero"

var backend afero.Afero

func init() {
	SetOsFs()
}

// API returns the active backend. Callers must not retain the value
// across a backend swap.
func API() afero.Afero {
	return backend
}

// SetOsFs routes all file access to the real disk. This is the
// default.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs routes all file access to a fresh in-memory tree.
// Intended for tests; previously written files are discarded.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}
