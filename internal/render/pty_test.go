package render

import (
	"io"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/x/term"
	"github.com/creack/pty"

	"github.com/andyrewlee/termsync/internal/cell"
	"github.com/andyrewlee/termsync/internal/vterm"
)

// ptyCapture mirrors everything written to the slave side of a pty into a
// vterm.
type ptyCapture struct {
	mu   sync.Mutex
	term *vterm.VTerm
}

func (c *ptyCapture) screen() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.term.String()
}

func (c *ptyCapture) waitFor(t *testing.T, substr string) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(c.screen(), substr) {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %q, screen:\n%s", substr, c.screen())
}

func openTestPTY(t *testing.T, cols, rows int) (*os.File, *ptyCapture) {
	t.Helper()
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	if err := pty.Setsize(ptmx, &pty.Winsize{Cols: uint16(cols), Rows: uint16(rows)}); err != nil {
		t.Fatalf("Setsize: %v", err)
	}

	capture := &ptyCapture{term: vterm.New(cols, rows)}
	done := make(chan struct{})
	go func() {
		defer close(done)
		buf := make([]byte, 4096)
		for {
			n, err := ptmx.Read(buf)
			if n > 0 {
				capture.mu.Lock()
				_, _ = capture.term.Write(buf[:n])
				capture.mu.Unlock()
			}
			if err != nil {
				return
			}
		}
	}()
	t.Cleanup(func() {
		_ = tty.Close()
		_ = ptmx.Close()
		<-done
	})
	return tty, capture
}

func TestRenderThroughPTY(t *testing.T) {
	tty, capture := openTestPTY(t, 40, 8)

	if !term.IsTerminal(tty.Fd()) {
		t.Fatalf("expected pty slave to be a terminal")
	}
	cols, rows, err := term.GetSize(tty.Fd())
	if err != nil {
		t.Fatalf("GetSize: %v", err)
	}
	if cols != 40 || rows != 8 {
		t.Fatalf("expected 40x8, got %dx%d", cols, rows)
	}

	opts := DefaultOptions()
	opts.Output = tty
	r := New(cell.Size{Width: cols, Height: rows}, opts)
	if err := r.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	r.Buffer().WriteString(2, 3, "hello from the pty", cell.Indexed(3), cell.Default())
	r.Buffer().WriteString(0, 7, "世界", cell.Default(), cell.Default())
	if err := r.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	capture.waitFor(t, "世界")

	lines := strings.Split(capture.screen(), "\n")
	if len(lines) != 8 || lines[3] != "  hello from the pty" {
		t.Fatalf("unexpected screen:\n%s", strings.Join(lines, "\n"))
	}

	r.Buffer().WriteString(2, 3, "HELLO", cell.Indexed(3), cell.Default())
	if err := r.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	capture.waitFor(t, "HELLO from the pty")

	if err := r.Cleanup(); err != nil {
		t.Fatalf("Cleanup: %v", err)
	}
	_, _ = io.WriteString(tty, "done")
	capture.waitFor(t, "done")
}
