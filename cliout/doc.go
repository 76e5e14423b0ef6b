// Package cliout handles user-facing output for killbysubdir.
//
// Two formats are supported: the default line-oriented text and JSON. The
// default format is what scripts parse ("Killing process <id>"), so it is
// never decorated. Colour is only used for fatal error lines on stderr, and
// only when stderr is a terminal (golang.org/x/term) and NO_COLOR is unset.
//
// # Basic Usage
//
//	if err := cliout.SetFormat(output); err != nil {
//	    return err
//	}
//	if cliout.IsJSON() {
//	    return cliout.PrintJSON(os.Stdout, report)
//	}
//
//	cliout.Error("%v", err) // "✗ <message>" on stderr
package cliout
