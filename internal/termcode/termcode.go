// Package termcode formats terminal control sequences. Every function is
// pure and returns the exact bytes to send.
package termcode

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const (
	CSI = "\x1b["
	OSC = "\x1b]"
	BEL = "\x07"
	ST  = "\x1b\\"
)

// Cursor visibility.
const (
	HideCursor = ansi.HideCursor
	ShowCursor = ansi.ShowCursor
)

// Screen and line clearing.
const (
	ClearScreen        = ansi.EraseEntireScreen
	ClearScreenAndHome = ansi.EraseEntireScreen + ansi.CursorHomePosition
	ClearLine          = ansi.EraseEntireLine
	CursorHome         = ansi.CursorHomePosition
)

// Alternate screen.
const (
	EnterAltScreen = ansi.SetModeAltScreenSaveCursor
	ExitAltScreen  = ansi.ResetModeAltScreenSaveCursor
)

// Line wrap (DECAWM).
const (
	EnableLineWrap  = ansi.SetModeAutoWrap
	DisableLineWrap = ansi.ResetModeAutoWrap
)

// Mouse reporting.
const (
	EnableMouseBasic     = ansi.SetModeMouseNormal
	DisableMouseBasic    = ansi.ResetModeMouseNormal
	EnableMouseButton    = ansi.SetModeMouseButtonEvent
	DisableMouseButton   = ansi.ResetModeMouseButtonEvent
	EnableMouseAnyEvent  = ansi.SetModeMouseAnyEvent
	DisableMouseAnyEvent = ansi.ResetModeMouseAnyEvent
	EnableMouseSGR       = ansi.SetModeMouseExtSgr
	DisableMouseSGR      = ansi.ResetModeMouseExtSgr

	// EnableMouseFull turns on press/release, drag and motion reporting with
	// SGR-encoded coordinates.
	EnableMouseFull = EnableMouseBasic + EnableMouseButton + EnableMouseAnyEvent + EnableMouseSGR
	// DisableMouseFull undoes EnableMouseFull in reverse order.
	DisableMouseFull = DisableMouseSGR + DisableMouseAnyEvent + DisableMouseButton + DisableMouseBasic
)

// Bracketed paste.
const (
	EnableBracketedPaste  = ansi.SetModeBracketedPaste
	DisableBracketedPaste = ansi.ResetModeBracketedPaste
)

// Synchronized output (mode 2026). Terminals without support ignore it.
const (
	BeginSync = ansi.SetModeSynchronizedOutput
	EndSync   = ansi.ResetModeSynchronizedOutput
)

// CursorPosition moves the cursor to a 1-indexed row and column.
func CursorPosition(row, col int) string {
	return ansi.CursorPosition(col, row)
}

// MoveTo moves the cursor to a 0-indexed grid coordinate.
func MoveTo(x, y int) string {
	return CursorPosition(y+1, x+1)
}

func CursorUp(n int) string       { return ansi.CursorUp(n) }
func CursorDown(n int) string     { return ansi.CursorDown(n) }
func CursorForward(n int) string  { return ansi.CursorForward(n) }
func CursorBackward(n int) string { return ansi.CursorBackward(n) }

// CursorColumn moves the cursor to a 1-indexed column on the current row.
func CursorColumn(col int) string {
	return ansi.CursorHorizontalAbsolute(col)
}

// SetTitle sets the window title, terminated with BEL.
func SetTitle(title string) string {
	return ansi.SetWindowTitle(sanitizeTitle(title))
}

// SetTitleST sets the window title, terminated with ESC \.
func SetTitleST(title string) string {
	return OSC + "2;" + sanitizeTitle(title) + ST
}

// sanitizeTitle drops control characters that would end the OSC early.
func sanitizeTitle(title string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, title)
}
