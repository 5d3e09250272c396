package sawyer

import (
	"fmt"
	"io"
	"os"
)

// ExitProgram returns an Action that terminates the process immediately
// with the given status code once its switch is retained (e.g. bound to
// "--help" before a ShowHelp action, or a plain "--abort" diagnostic flag).
func ExitProgram(code int) Action {
	return func(res *Result) error {
		os.Exit(code)
		return nil
	}
}

// ShowVersion returns an Action that writes version to w and exits with
// status 0. Typically bound to a "--version" switch.
func ShowVersion(w io.Writer, name, version string) Action {
	return func(res *Result) error {
		fmt.Fprintf(w, "%s %s\n", name, version)
		os.Exit(0)
		return nil
	}
}
