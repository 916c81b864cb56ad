//go:build !mobile

// Package mobile is the ebitenmobile binding entry for the crashit demo. The
// real entry point is built only with -tags mobile; this file keeps the
// package buildable without it.
package mobile

// Dummy is an exported no-op so the package can be referenced on any build.
func Dummy() {}
