package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/andyrewlee/termsync/internal/cell"
	"github.com/andyrewlee/termsync/internal/config"
	"github.com/andyrewlee/termsync/internal/render"
	"github.com/andyrewlee/termsync/internal/screen"
)

func TestParseArgs(t *testing.T) {
	f, err := parseArgs([]string{"--no-alt", "--no-paste", "--title", "hello", "--sync"})
	if err != nil {
		t.Fatalf("parseArgs() error = %v", err)
	}
	if !f.noAlt || !f.noPaste || f.noMouse || !f.sync || f.title != "hello" {
		t.Fatalf("unexpected flags %+v", f)
	}

	if _, err := parseArgs([]string{"--title"}); err == nil {
		t.Fatalf("expected error for missing title value")
	}
	if _, err := parseArgs([]string{"--bogus"}); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}

func TestFlagsApply(t *testing.T) {
	cfg := &config.Config{Renderer: config.RendererConfig{
		AlternateScreen: true,
		MouseTracking:   true,
		BracketedPaste:  true,
	}}
	cliFlags{noMouse: true, title: "t"}.apply(cfg)
	if cfg.Renderer.MouseTracking {
		t.Fatalf("expected mouse disabled")
	}
	if !cfg.Renderer.AlternateScreen || !cfg.Renderer.BracketedPaste {
		t.Fatalf("flags not given should leave config alone: %+v", cfg.Renderer)
	}
	if cfg.Renderer.Title != "t" {
		t.Fatalf("expected title t, got %q", cfg.Renderer.Title)
	}
}

func TestDemoDraw(t *testing.T) {
	buf := screen.New(cell.Size{Width: 60, Height: 12})
	d := newDemo(buf)
	d.draw()

	text := buf.String()
	for _, want := range []string{"termsync", "60x12", "bold", "strike", "q quit"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in frame:\n%s", want, text)
		}
	}
	c, _ := buf.Get(1, 5)
	if c.Style.Bold != cell.On {
		t.Fatalf("expected bold sample, got %+v", c.Style)
	}
	wide, _ := buf.Get(7, 7)
	if wide.Content != "世" {
		t.Fatalf("expected wide glyph at column 7, got %+v", wide)
	}
}

func TestDemoTickDirtiesOnlyClock(t *testing.T) {
	var out bytes.Buffer
	r := render.New(cell.Size{Width: 40, Height: 12}, render.Options{Output: &out})
	d := newDemo(r.Buffer())
	d.draw()
	if err := r.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	full := out.Len()
	out.Reset()

	d.tick(time.Date(2024, 1, 1, 12, 0, 1, 0, time.UTC))
	for _, dc := range r.Buffer().DirtyCells() {
		if dc.Y != 10 {
			t.Fatalf("expected only the clock row dirty, got cell at row %d", dc.Y)
		}
	}
	if err := r.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if out.Len() == 0 || out.Len() >= full {
		t.Fatalf("expected a small incremental frame, got %d bytes (full %d)", out.Len(), full)
	}
	if !strings.Contains(out.String(), "tick 1") {
		t.Fatalf("expected tick counter in output %q", out.String())
	}
}
