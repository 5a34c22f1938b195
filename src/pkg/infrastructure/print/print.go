package print

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	out        io.Writer = os.Stdout
	isVerbose            = false
	isColoured           = false
	infoStyle            = color.New(color.FgBlack).Add(color.BgYellow)
	warnStyle            = color.New(color.FgBlack).Add(color.BgHiRed)
	erroStyle            = color.New(color.FgRed).Add(color.BgBlack)
)

// SetVerbose activates all the Verb calls
func SetVerbose() {
	isVerbose = true
}

// SetColoured activates ANSI colour codes
func SetColoured() {
	isColoured = true
}

// SetOutput redirects all messages to w and returns the previous writer.
func SetOutput(w io.Writer) (previous io.Writer) {
	previous, out = out, w
	return
}

// Verb prints a message only if verbose output is enabled with --verbose
func Verb(a ...interface{}) {
	if isVerbose {
		Info(a...)
	}
}

// Info is for general purpose messages that are always shown
func Info(a ...interface{}) {
	if isColoured {
		fmt.Fprint(out, infoStyle.Sprint("INFO:"), " ", color.WhiteString(fmt.Sprintln(a...)))
	} else {
		fmt.Fprint(out, "INFO: ", fmt.Sprintln(a...))
	}
}

// Warn is for warnings that do not prevent the command from finishing
func Warn(a ...interface{}) {
	if isColoured {
		fmt.Fprint(out, warnStyle.Sprint("WARN:"), " ", color.YellowString(fmt.Sprintln(a...)))
	} else {
		fmt.Fprint(out, "WARN: ", fmt.Sprintln(a...))
	}
}

// Erro is for errors that abort the command
func Erro(a ...interface{}) {
	if isColoured {
		fmt.Fprint(out, erroStyle.Sprint("ERROR:"), " ", color.RedString(fmt.Sprintln(a...)))
	} else {
		fmt.Fprint(out, "ERROR: ", fmt.Sprintln(a...))
	}
}
