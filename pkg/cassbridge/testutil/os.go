// Package testutil holds helpers shared by the package tests.
package testutil

import (
	"io"
	"os"
)

// StdoutOutputForFunc runs f and returns everything it wrote to os.Stdout.
func StdoutOutputForFunc(f func()) string {
	r, w, _ := os.Pipe()

	old := os.Stdout
	os.Stdout = w

	f()

	_ = w.Close()
	out, _ := io.ReadAll(r)
	os.Stdout = old

	return string(out)
}

// StderrOutputForFunc runs f and returns everything it wrote to os.Stderr.
func StderrOutputForFunc(f func()) string {
	r, w, _ := os.Pipe()

	old := os.Stderr
	os.Stderr = w

	f()

	_ = w.Close()
	out, _ := io.ReadAll(r)
	os.Stderr = old

	return string(out)
}
