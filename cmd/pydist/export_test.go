package main

import (
	"io"
	"os"
)

var Run = run

func MockOsArgs(new []string) (restore func()) {
	saved := os.Args
	os.Args = append([]string{"pydist"}, new...)
	return func() {
		os.Args = saved
	}
}

func MockOsStdout(w io.Writer) (restore func()) {
	saved := osStdout
	osStdout = w
	return func() {
		osStdout = saved
	}
}
