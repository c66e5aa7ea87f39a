//go:build !windows

package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"runtime/pprof"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/x/term"

	"github.com/andyrewlee/termsync/internal/cell"
	"github.com/andyrewlee/termsync/internal/config"
	"github.com/andyrewlee/termsync/internal/logging"
	"github.com/andyrewlee/termsync/internal/perf"
	"github.com/andyrewlee/termsync/internal/render"
	"github.com/andyrewlee/termsync/internal/safego"
)

// Version info set by GoReleaser via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "termsync: %v\n%s", err, usage)
		return 2
	}
	if flags.help {
		fmt.Print(usage)
		return 0
	}
	if flags.version {
		fmt.Printf("termsync %s (commit: %s, built: %s)\n", version, commit, date)
		return 0
	}

	paths, err := config.DefaultPaths()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving paths: %v\n", err)
		return 1
	}
	if err := paths.EnsureDirectories(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create %s: %v\n", paths.Home, err)
	}
	cfg, err := config.LoadFrom(paths)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return 1
	}
	flags.apply(cfg)

	if cfg.Log.Enabled {
		if err := logging.Initialize(paths.LogDir, cfg.LogLevel()); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not initialize logging: %v\n", err)
		}
	}
	defer logging.Close()
	defer perf.Flush("exit")

	logging.Info("Starting termsync %s", version)
	startSignalDebug()
	startPprof()

	if err := runDemo(cfg); err != nil {
		logging.Error("termsync exited with error: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	logging.Info("termsync shutdown complete")
	return 0
}

func runDemo(cfg *config.Config) (err error) {
	inFd, outFd := os.Stdin.Fd(), os.Stdout.Fd()
	if !term.IsTerminal(inFd) || !term.IsTerminal(outFd) {
		return errors.New("stdin and stdout must be a terminal")
	}
	width, height, err := term.GetSize(outFd)
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	state, err := term.MakeRaw(inFd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	defer func() {
		if rerr := term.Restore(inFd, state); rerr != nil {
			logging.Warn("restore terminal: %v", rerr)
		}
	}()

	r := render.New(cell.Size{Width: width, Height: height}, cfg.RendererOptions(os.Stdout))
	if err := r.Initialize(); err != nil {
		return err
	}
	defer func() {
		if cerr := r.Cleanup(); cerr != nil && err == nil {
			err = cerr
		}
		s := r.Stats()
		logging.Info("render stats: flushes=%d bytes=%d cells=%d moves=%d styles=%d errors=%d",
			s.Flushes, s.Bytes, s.Cells, s.CursorMoves, s.StyleChanges, s.SinkErrors)
	}()

	d := newDemo(r.Buffer())
	d.draw()
	if err := r.FullRedraw(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	keys := make(chan byte, 16)
	safego.Go("stdin", func() { readKeys(ctx, keys) })

	reloaded := make(chan *config.Config, 1)
	if w, werr := config.NewWatcher(cfg.Paths, func(c *config.Config) {
		select {
		case reloaded <- c:
		default:
		}
	}); werr != nil {
		logging.Warn("config watcher disabled: %v", werr)
	} else {
		defer w.Close()
		safego.Go("config-watcher", func() { _ = w.Run(ctx) })
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGWINCH, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case sig := <-sigs:
			if sig != syscall.SIGWINCH {
				return nil
			}
			w, h, serr := term.GetSize(outFd)
			if serr != nil {
				logging.Warn("get terminal size: %v", serr)
				continue
			}
			r.Resize(cell.Size{Width: w, Height: h})
			d.draw()
			if err := r.Flush(); err != nil {
				logging.WithError(err, "flush after resize")
			}

		case key, ok := <-keys:
			if !ok {
				return nil
			}
			switch key {
			case 'q', 0x03:
				return nil
			case 'r':
				if err := r.FullRedraw(); err != nil {
					logging.WithError(err, "full redraw")
				}
			}

		case now := <-ticker.C:
			d.tick(now)
			if err := r.Flush(); err != nil {
				logging.WithError(err, "flush")
			}

		case c := <-reloaded:
			if c.Renderer.Title != "" {
				if err := r.SetTitle(c.Renderer.Title); err != nil {
					logging.WithError(err, "set title")
				}
			}
			d.status = "config reloaded"
			d.draw()
			if err := r.Flush(); err != nil {
				logging.WithError(err, "flush after reload")
			}
		}
	}
}

func readKeys(ctx context.Context, out chan<- byte) {
	defer close(out)
	buf := make([]byte, 64)
	for {
		n, err := os.Stdin.Read(buf)
		for _, b := range buf[:n] {
			select {
			case out <- b:
			case <-ctx.Done():
				return
			}
		}
		if err != nil {
			return
		}
	}
}

func startPprof() {
	raw := strings.TrimSpace(os.Getenv("TERMSYNC_PPROF"))
	if raw == "" {
		return
	}
	switch strings.ToLower(raw) {
	case "0", "false", "no":
		return
	}
	addr := raw
	if raw == "1" || strings.ToLower(raw) == "true" {
		addr = "127.0.0.1:6060"
	} else if _, err := strconv.Atoi(raw); err == nil {
		addr = "127.0.0.1:" + raw
	}

	safego.Go("pprof", func() {
		logging.Info("pprof listening on %s", addr)
		if err := http.ListenAndServe(addr, nil); err != nil {
			logging.Warn("pprof server stopped: %v", err)
		}
	})
}

// startSignalDebug registers a SIGUSR1 handler for goroutine dumps in dev
// builds or when TERMSYNC_DEBUG_SIGNALS is set.
func startSignalDebug() {
	if version != "dev" && strings.TrimSpace(os.Getenv("TERMSYNC_DEBUG_SIGNALS")) == "" {
		return
	}
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGUSR1)
	safego.Go("signal-debug", func() {
		for range ch {
			var buf bytes.Buffer
			if err := pprof.Lookup("goroutine").WriteTo(&buf, 2); err != nil {
				logging.Warn("Failed to write goroutine dump: %v", err)
				continue
			}
			logging.Warn("GOROUTINE DUMP\n%s", buf.String())
		}
	})
}
