// Package tui draws dashboard views in the terminal, either once to stdout
// or as an interactive Bubble Tea program.
package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode is how output is presented.
type OutputMode int

const (
	// OutputModePlain writes text without colour or styling.
	OutputModePlain OutputMode = iota
	// OutputModeStyled writes colour output once, without interaction.
	OutputModeStyled
	// OutputModeInteractive runs the full-screen program.
	OutputModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModeInteractive:
		return "interactive"
	case OutputModeStyled:
		return "styled"
	default:
		return "plain"
	}
}

// DetectOutputMode inspects stdout and the environment. forcePlain always
// wins; NO_COLOR and TERM=dumb disable styling; a terminal is interactive;
// CLICOLOR_FORCE keeps colour when piped.
func DetectOutputMode(forcePlain bool) OutputMode {
	return detectOutputMode(forcePlain, term.IsTerminal(int(os.Stdout.Fd())), os.Getenv)
}

func detectOutputMode(forcePlain, isTTY bool, getenv func(string) string) OutputMode {
	switch {
	case forcePlain, getenv("NO_COLOR") != "", getenv("TERM") == "dumb":
		return OutputModePlain
	case isTTY:
		return OutputModeInteractive
	case getenv("CLICOLOR_FORCE") != "" && getenv("CLICOLOR_FORCE") != "0":
		return OutputModeStyled
	default:
		return OutputModePlain
	}
}

// TerminalSize returns the stdout terminal size, or the defaults when stdout
// is not a terminal.
func TerminalSize() (int, int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return defaultWidth, defaultHeight
	}
	return w, h
}
