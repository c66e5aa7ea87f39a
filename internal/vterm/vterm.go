// Package vterm is a small headless terminal that interprets the subset of
// control sequences the renderer emits. Tests feed it rendered frames and
// check that the resulting screen matches the buffer that produced them.
package vterm

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// VTerm is a virtual terminal screen.
type VTerm struct {
	Screen [][]Cell

	// Cursor position (0-indexed)
	CursorX, CursorY int

	Width, Height int

	CurrentStyle  Style
	CursorVisible bool
	AltScreen     bool
	AutoWrap      bool
	Title         string

	// Modes holds DEC private modes by number.
	Modes map[int]bool

	mainScreen [][]Cell
	parser     *Parser
}

// New creates a terminal with a blank screen and a visible cursor.
func New(width, height int) *VTerm {
	width, height = max(width, 1), max(height, 1)
	v := &VTerm{
		Width:         width,
		Height:        height,
		CursorVisible: true,
		AutoWrap:      true,
		Modes:         map[int]bool{},
	}
	v.Screen = v.makeScreen()
	v.parser = NewParser(v)
	return v
}

func (v *VTerm) makeScreen() [][]Cell {
	screen := make([][]Cell, v.Height)
	for i := range screen {
		screen[i] = MakeBlankLine(v.Width)
	}
	return screen
}

// Write feeds terminal output to the parser. It never fails.
func (v *VTerm) Write(data []byte) (int, error) {
	v.parser.Parse(data)
	return len(data), nil
}

// Cell returns the cell at (x, y), or a blank cell when out of range.
func (v *VTerm) Cell(x, y int) Cell {
	if y < 0 || y >= v.Height || x < 0 || x >= v.Width {
		return DefaultCell()
	}
	return v.Screen[y][x]
}

// Line returns row y as text, skipping continuation cells.
func (v *VTerm) Line(y int) string {
	if y < 0 || y >= v.Height {
		return ""
	}
	var sb strings.Builder
	for _, c := range v.Screen[y] {
		if c.Width == 0 {
			continue
		}
		sb.WriteString(c.Content)
	}
	return sb.String()
}

// String returns the screen as text with trailing blanks trimmed per row.
func (v *VTerm) String() string {
	lines := make([]string, v.Height)
	for y := range lines {
		lines[y] = strings.TrimRight(v.Line(y), " ")
	}
	return strings.Join(lines, "\n")
}

// Cursor returns the cursor position.
func (v *VTerm) Cursor() (int, int) {
	return v.CursorX, v.CursorY
}

func (v *VTerm) putChar(r rune) {
	width := runewidth.RuneWidth(r)
	if width == 0 {
		v.attachCombining(r)
		return
	}
	if v.CursorX >= v.Width || (width == 2 && v.CursorX == v.Width-1) {
		if !v.AutoWrap {
			v.CursorX = v.Width - width
		} else {
			v.CursorX = 0
			v.lineFeed()
		}
	}
	v.clearWide(v.CursorX)
	v.Screen[v.CursorY][v.CursorX] = Cell{Content: string(r), Style: v.CurrentStyle, Width: width}
	if width == 2 {
		v.clearWide(v.CursorX + 1)
		v.Screen[v.CursorY][v.CursorX+1] = Cell{Style: v.CurrentStyle, Width: 0}
	}
	v.CursorX += width
}

// clearWide blanks the other half of a wide glyph about to be split at x.
func (v *VTerm) clearWide(x int) {
	line := v.Screen[v.CursorY]
	switch {
	case line[x].Width == 0 && x > 0:
		line[x-1] = DefaultCell()
	case line[x].Width == 2 && x+1 < v.Width:
		line[x+1] = DefaultCell()
	}
}

func (v *VTerm) attachCombining(r rune) {
	x := v.CursorX - 1
	line := v.Screen[v.CursorY]
	for x > 0 && line[x].Width == 0 {
		x--
	}
	if x >= 0 && x < v.Width {
		line[x].Content += string(r)
	}
}

func (v *VTerm) lineFeed() {
	if v.CursorY < v.Height-1 {
		v.CursorY++
		return
	}
	copy(v.Screen, v.Screen[1:])
	v.Screen[v.Height-1] = MakeBlankLine(v.Width)
}

func (v *VTerm) setCursorPos(row, col int) {
	v.CursorY = min(max(row-1, 0), v.Height-1)
	v.CursorX = min(max(col-1, 0), v.Width-1)
}

func (v *VTerm) moveCursor(dy, dx int) {
	v.setCursorPos(v.CursorY+1+dy, min(v.CursorX, v.Width-1)+1+dx)
}

func (v *VTerm) blank() Cell {
	c := DefaultCell()
	c.Style.Bg = v.CurrentStyle.Bg
	return c
}

func (v *VTerm) eraseDisplay(mode int) {
	switch mode {
	case 0:
		v.eraseLine(0)
		for y := v.CursorY + 1; y < v.Height; y++ {
			v.fillLine(y, 0, v.Width)
		}
	case 1:
		v.eraseLine(1)
		for y := 0; y < v.CursorY; y++ {
			v.fillLine(y, 0, v.Width)
		}
	case 2, 3:
		for y := 0; y < v.Height; y++ {
			v.fillLine(y, 0, v.Width)
		}
	}
}

func (v *VTerm) eraseLine(mode int) {
	x := min(v.CursorX, v.Width-1)
	switch mode {
	case 0:
		v.fillLine(v.CursorY, x, v.Width)
	case 1:
		v.fillLine(v.CursorY, 0, x+1)
	case 2:
		v.fillLine(v.CursorY, 0, v.Width)
	}
}

func (v *VTerm) fillLine(y, from, to int) {
	for x := from; x < to; x++ {
		v.Screen[y][x] = v.blank()
	}
}
