// Package runner provides shared command-line plumbing (flag extraction,
// command-level sentinel errors) used by the split and combine subcommands.
package runner

import "errors"

// Standard errors returned by command handlers before any sharer is ever
// constructed, i.e. failures in parsing the command line itself.
var (
	// ErrUnknownAlgorithm is returned when --algo names a scheme this
	// binary does not implement.
	ErrUnknownAlgorithm = errors.New("unknown algorithm: must be one of shamir, rabin, krawczyk")

	// ErrNoInput is returned when split has no secret to read (no file
	// argument and stdin is a terminal).
	ErrNoInput = errors.New("no input: pass a file argument or pipe the secret on stdin")

	// ErrTooFewShareFiles is returned when combine is given fewer share
	// files than it was told to expect.
	ErrTooFewShareFiles = errors.New("too few share files given to combine")
)
