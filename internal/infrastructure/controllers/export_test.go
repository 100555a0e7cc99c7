package controllers

import "io"

// NewPlainReporter exposes a reporter with colors disabled for testing.
var NewPlainReporter = func(out io.Writer) *Reporter { //nolint:gochecknoglobals // test export
	return newReporter(out, false)
}
