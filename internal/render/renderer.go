// Package render synchronizes a real terminal with a screen.Buffer by
// writing only the cells that changed, with as few cursor and style
// sequences as possible.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/andyrewlee/termsync/internal/cell"
	"github.com/andyrewlee/termsync/internal/logging"
	"github.com/andyrewlee/termsync/internal/perf"
	"github.com/andyrewlee/termsync/internal/safego"
	"github.com/andyrewlee/termsync/internal/screen"
	"github.com/andyrewlee/termsync/internal/termcode"
)

// ErrSinkWrite is wrapped by every error caused by the output sink.
var ErrSinkWrite = errors.New("terminal write failed")

// Stats counts what the renderer has sent since it was created.
type Stats struct {
	Flushes      int
	Bytes        int
	Cells        int
	CursorMoves  int
	StyleChanges int
	SinkErrors   int
}

// Renderer owns a screen buffer and an output sink. It is not safe for
// concurrent use; the buffer and the renderer belong to one goroutine.
type Renderer struct {
	buf  *screen.Buffer
	out  io.Writer
	opts Options

	initialized bool

	// lastStyle is the style the terminal is known to be in. Nil means
	// unknown: after construction, resize, full redraw or a failed write.
	lastStyle *cell.Style

	frame bytes.Buffer
	stats Stats
}

// New creates a renderer with a blank buffer of the given size.
func New(size cell.Size, opts Options) *Renderer {
	return &Renderer{
		buf:  screen.New(size),
		out:  opts.output(),
		opts: opts,
	}
}

// Buffer returns the screen buffer the renderer draws from.
func (r *Renderer) Buffer() *screen.Buffer {
	return r.buf
}

// Initialized reports whether terminal modes are currently set up.
func (r *Renderer) Initialized() bool {
	return r.initialized
}

// Stats returns output counters.
func (r *Renderer) Stats() Stats {
	return r.stats
}

// Initialize hides the cursor, enters the configured modes and clears the
// screen. Calls after the first successful one do nothing.
func (r *Renderer) Initialize() error {
	if r.initialized {
		return nil
	}
	var b bytes.Buffer
	b.WriteString(termcode.HideCursor)
	if r.opts.AlternateScreen {
		b.WriteString(termcode.EnterAltScreen)
	}
	b.WriteString(termcode.ClearScreenAndHome)
	if r.opts.DisableLineWrap {
		b.WriteString(termcode.DisableLineWrap)
	}
	if r.opts.MouseTracking {
		b.WriteString(termcode.EnableMouseFull)
	}
	if r.opts.BracketedPaste {
		b.WriteString(termcode.EnableBracketedPaste)
	}
	if r.opts.Title != "" {
		b.WriteString(termcode.SetTitle(r.opts.Title))
	}
	if err := r.write("initialize", b.Bytes()); err != nil {
		return err
	}
	r.initialized = true
	r.lastStyle = nil
	logging.Info("renderer initialized %dx%d alt=%v mouse=%v paste=%v",
		r.buf.Size().Width, r.buf.Size().Height,
		r.opts.AlternateScreen, r.opts.MouseTracking, r.opts.BracketedPaste)
	return nil
}

// Cleanup restores the terminal modes changed by Initialize. It does
// nothing unless the renderer is initialized.
func (r *Renderer) Cleanup() error {
	if !r.initialized {
		return nil
	}
	var b bytes.Buffer
	if r.opts.BracketedPaste {
		b.WriteString(termcode.DisableBracketedPaste)
	}
	if r.opts.MouseTracking {
		b.WriteString(termcode.DisableMouseFull)
	}
	if r.opts.DisableLineWrap {
		b.WriteString(termcode.EnableLineWrap)
	}
	if r.opts.AlternateScreen {
		b.WriteString(termcode.ExitAltScreen)
	}
	b.WriteString(termcode.ShowCursor)
	b.WriteString(termcode.ResetAttributes)
	if err := r.write("cleanup", b.Bytes()); err != nil {
		return err
	}
	r.initialized = false
	r.lastStyle = nil
	logging.Info("renderer cleaned up")
	return nil
}

// Resize reallocates the buffer blank at the new size. Everything is dirty
// afterwards and the terminal style is treated as unknown.
func (r *Renderer) Resize(size cell.Size) {
	if clamped := size.Clamp(); clamped != size {
		logging.Debug("renderer resize %dx%d clamped to %dx%d",
			size.Width, size.Height, clamped.Width, clamped.Height)
	}
	r.buf.Resize(size)
	r.lastStyle = nil
}

// ShowCursor makes the cursor visible immediately.
func (r *Renderer) ShowCursor() error {
	return r.write("show cursor", []byte(termcode.ShowCursor))
}

// HideCursor hides the cursor immediately.
func (r *Renderer) HideCursor() error {
	return r.write("hide cursor", []byte(termcode.HideCursor))
}

// MoveCursor places the cursor at a 0-indexed grid position, clamped to the
// buffer, without touching the dirty state.
func (r *Renderer) MoveCursor(x, y int) error {
	size := r.buf.Size()
	x = min(max(x, 0), size.Width-1)
	y = min(max(y, 0), size.Height-1)
	return r.write("move cursor", []byte(termcode.MoveTo(x, y)))
}

// SetTitle sets the terminal window title immediately.
func (r *Renderer) SetTitle(title string) error {
	return r.write("set title", []byte(termcode.SetTitle(title)))
}

// FullRedraw repaints every cell and re-sends every style field.
func (r *Renderer) FullRedraw() error {
	r.buf.MarkAllDirty()
	r.lastStyle = nil
	return r.Flush()
}

// RenderRegion marks rect dirty and flushes.
func (r *Renderer) RenderRegion(rect cell.Rect) error {
	r.buf.MarkDirty(rect)
	return r.Flush()
}

// write sends p to the sink in one call. Sink panics come back as errors.
func (r *Renderer) write(op string, p []byte) error {
	if len(p) == 0 {
		return nil
	}
	err := safego.Call("render.sink", func() error {
		n, err := r.out.Write(p)
		if err == nil && n < len(p) {
			err = io.ErrShortWrite
		}
		return err
	})
	if err != nil {
		r.stats.SinkErrors++
		r.lastStyle = nil
		logging.WithError(err, "renderer "+op)
		return fmt.Errorf("%s: %w: %w", op, ErrSinkWrite, err)
	}
	r.stats.Bytes += len(p)
	perf.Count("render.bytes", int64(len(p)))
	return nil
}
