package main

import (
	"fmt"

	"github.com/andyrewlee/termsync/internal/config"
)

const usage = `usage: termsync [flags]

  -v, --version    print version and exit
  -h, --help       print this help
  --no-alt         stay on the main screen
  --no-mouse       leave mouse tracking off
  --no-paste       leave bracketed paste off
  --sync           wrap frames in synchronized output
  --title TITLE    set the window title
`

type cliFlags struct {
	version bool
	help    bool
	noAlt   bool
	noMouse bool
	noPaste bool
	sync    bool
	title   string
}

func parseArgs(args []string) (cliFlags, error) {
	var f cliFlags
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "-v", "--version":
			f.version = true
		case "-h", "--help":
			f.help = true
		case "--no-alt":
			f.noAlt = true
		case "--no-mouse":
			f.noMouse = true
		case "--no-paste":
			f.noPaste = true
		case "--sync":
			f.sync = true
		case "--title":
			if i+1 >= len(args) {
				return f, fmt.Errorf("%s requires a value", arg)
			}
			i++
			f.title = args[i]
		default:
			return f, fmt.Errorf("unknown argument %q", arg)
		}
	}
	return f, nil
}

// apply layers command line flags over the loaded config.
func (f cliFlags) apply(cfg *config.Config) {
	if f.noAlt {
		cfg.Renderer.AlternateScreen = false
	}
	if f.noMouse {
		cfg.Renderer.MouseTracking = false
	}
	if f.noPaste {
		cfg.Renderer.BracketedPaste = false
	}
	if f.sync {
		cfg.Renderer.SynchronizedOutput = true
	}
	if f.title != "" {
		cfg.Renderer.Title = f.title
	}
}
