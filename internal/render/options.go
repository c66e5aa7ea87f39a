package render

import (
	"io"
	"os"
)

// SinkFunc adapts a plain function to the io.Writer the renderer writes
// frames to.
type SinkFunc func(p []byte) error

func (f SinkFunc) Write(p []byte) (int, error) {
	if err := f(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Options configures terminal modes and the output sink. Start from
// DefaultOptions; the zero value leaves every optional mode off.
type Options struct {
	// Output receives every frame. Nil means os.Stdout.
	Output io.Writer

	AlternateScreen bool
	MouseTracking   bool
	BracketedPaste  bool

	// DisableLineWrap turns off autowrap for the session.
	DisableLineWrap bool
	// SynchronizedOutput brackets each frame in mode 2026 so terminals that
	// support it paint the frame atomically.
	SynchronizedOutput bool
	// Title is set on Initialize when non-empty.
	Title string
}

// DefaultOptions returns the standard interactive setup: alternate screen,
// full mouse tracking and bracketed paste, writing to os.Stdout.
func DefaultOptions() Options {
	return Options{
		Output:          os.Stdout,
		AlternateScreen: true,
		MouseTracking:   true,
		BracketedPaste:  true,
	}
}

func (o Options) output() io.Writer {
	if o.Output == nil {
		return os.Stdout
	}
	return o.Output
}
