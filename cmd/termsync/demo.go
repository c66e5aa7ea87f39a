package main

import (
	"fmt"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/andyrewlee/termsync/internal/cell"
	"github.com/andyrewlee/termsync/internal/screen"
)

// demo paints a static sample frame and a clock line that changes once
// per tick, so only a handful of cells are dirty between frames.
type demo struct {
	buf    *screen.Buffer
	ticks  int
	now    time.Time
	status string
}

func newDemo(buf *screen.Buffer) *demo {
	return &demo{buf: buf, now: time.Now()}
}

var sampleAttrs = []struct {
	label string
	attr  cell.Attr
}{
	{"bold", cell.AttrBold},
	{"dim", cell.AttrDim},
	{"italic", cell.AttrItalic},
	{"underline", cell.AttrUnderline},
	{"blink", cell.AttrBlink},
	{"inverse", cell.AttrInverse},
	{"strike", cell.AttrStrikethrough},
}

func (d *demo) draw() {
	b := d.buf
	size := b.Size()
	b.Clear()

	header := cell.New(" ", cell.Style{Fg: cell.Indexed(cell.Black), Bg: cell.Indexed(cell.Cyan)})
	b.Fill(cell.Rect{Width: size.Width, Height: 1}, header)
	b.WriteString(1, 0, "termsync", cell.Indexed(cell.Black), cell.Indexed(cell.Cyan))
	d.styled(10, 0, fmt.Sprintf("%dx%d", size.Width, size.Height), cell.AttrBold)

	for i := 0; i < 16; i++ {
		b.Set(1+i*2, 2, cell.New(" ", cell.Style{Bg: cell.Indexed(uint8(i))}))
		b.Set(2+i*2, 2, cell.New(" ", cell.Style{Bg: cell.Indexed(uint8(i))}))
	}

	// Hue sweep in true color.
	for x := 1; x < size.Width-1; x++ {
		hue := float64(x-1) / float64(max(size.Width-2, 1)) * 360
		r, g, bl := colorful.Hsv(hue, 0.8, 0.9).RGB255()
		b.Set(x, 3, cell.New(" ", cell.Style{Bg: cell.RGB(r, g, bl)}))
	}

	x := 1
	for _, s := range sampleAttrs {
		d.styled(x, 5, s.label, s.attr)
		x += len(s.label) + 1
	}

	b.WriteString(1, 7, "wide: 世界 こんにちは", cell.Indexed(cell.Yellow), cell.Default())
	b.WriteString(1, 8, "combining: e\u0301 a\u0308", cell.Default(), cell.Default())

	help := "q quit  r redraw"
	if d.status != "" {
		help += "  " + d.status
	}
	b.WriteString(1, size.Height-1, help, cell.Indexed(cell.BrightBlack), cell.Default())
	d.drawClock()
}

func (d *demo) styled(x, y int, text string, attr cell.Attr) {
	d.buf.WriteString(x, y, text, cell.Default(), cell.Default())
	for i := range text {
		d.buf.Apply(x+i, y, cell.Patch{}.WithAttr(attr, cell.On))
	}
}

func (d *demo) tick(now time.Time) {
	d.ticks++
	d.now = now
	d.drawClock()
}

func (d *demo) drawClock() {
	line := fmt.Sprintf("%s  tick %d", d.now.Format("15:04:05"), d.ticks)
	d.buf.WriteString(1, 10, line, cell.Indexed(cell.Green), cell.Default())
}
