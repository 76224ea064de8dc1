// promptfade renders the gradient username prompt segment for the current
// environment and writes it to stdout.
//
// Usage:
//
//	promptfade [-config path] [-strict] [-color auto|always|never]
//
// Output is empty (exit 0) when the component elects not to display, for
// example when running as the ordinary logged-in local user with no SSH
// session. Embed it in a shell prompt:
//
//	PS1='$(promptfade)\w \$ '
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/dkoosis/promptfade/internal/config"
	"github.com/dkoosis/promptfade/pkg/prompt"
	"github.com/dkoosis/promptfade/pkg/segment"
)

// modules lists the prompt components in render order.
var modules = []prompt.Module{
	prompt.GradientUsername{},
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("promptfade", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configFlag := fs.String("config", "", "Configuration file (default: discover)")
	strictFlag := fs.Bool("strict", false, "Reject unknown configuration fields")
	colorFlag := fs.String("color", "auto", "Color output: auto, always, never")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := log.NewWithOptions(stderr, log.Options{ReportTimestamp: false, Prefix: "promptfade"})

	cfg, err := config.Load(*configFlag, *strictFlag)
	if err != nil {
		// A broken config file must not break the prompt; fall back to
		// defaults and say why.
		logger.Warn("using default configuration", "err", err)
		cfg = config.Default()
	}

	ctx := prompt.NewContext()
	ctx.Logger = logger
	ctx.Username = cfg.UsernameOptions()
	ctx.Gradient = cfg.GradientOptions()

	var segs []segment.Segment
	for _, mod := range modules {
		segs = append(segs, mod.Render(ctx)...)
	}
	if len(segs) == 0 {
		return 0
	}

	if colorEnabled(*colorFlag, stdout) {
		fmt.Fprint(stdout, segment.Join(segs))
	} else {
		fmt.Fprint(stdout, segment.PlainJoin(segs))
	}
	return 0
}

func colorEnabled(mode string, stdout io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if f, ok := stdout.(*os.File); ok {
			return term.IsTerminal(int(f.Fd()))
		}
		return false
	}
}
