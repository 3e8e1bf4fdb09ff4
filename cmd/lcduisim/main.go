// Command lcduisim runs the lcdui demo screen in a terminal, or renders it
// to a PNG file.
//
// In a terminal, each character cell shows two pixels stacked vertically.
// The mouse is the touch screen, the keyboard is the keypad. F1 toggles
// input logging, F3 prints the widget tree to stderr, ctrl-c quits.
//
// With -o, or when stdout is not a terminal, the demo is drawn once and
// written as PNG.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/mjl-/lcdui"
	"github.com/mjl-/lcdui/fb"
)

func check(err error, msg string) {
	if err != nil {
		log.Fatalf("%s: %s\n", msg, err)
	}
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func main() {
	log.SetFlags(0)
	configPath := flag.String("config", "", "TOML or YAML config file")
	output := flag.String("o", "", "write a PNG of the demo to this file and exit")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: lcduisim [-config file] [-o file.png]")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}

	config := lcdui.DefaultConfig()
	if *configPath != "" {
		var err error
		config, err = lcdui.LoadConfig(*configPath)
		check(err, "load config")
	}

	if *output != "" || !isTerminal(os.Stdout.Fd()) {
		check(writePNG(config, *output), "render")
		return
	}

	// Log lines would garble the screen.
	if config.Logger == nil {
		f, err := os.CreateTemp("", "lcduisim-*.log")
		check(err, "log file")
		defer f.Close()
		config.Logger = newLogger(f, config)
		log.Printf("logging to %s", f.Name())
	}
	check(runTerminal(config), "run")
}

func newLogger(w io.Writer, config lcdui.Config) *slog.Logger {
	level := slog.LevelInfo
	if config.Debug.Invalidate || config.Debug.Order || config.Debug.Input {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// writePNG renders the demo once to path, or stdout when path is empty.
func writePNG(config lcdui.Config, path string) error {
	gui, err := lcdui.New(config)
	if err != nil {
		return err
	}
	d, err := newDemo(gui)
	if err != nil {
		return err
	}
	d.stop()
	gui.Do(func(t *lcdui.Tree) {
		for i := 0; i < 100; i++ {
			d.tick(t, d.graph)
		}
	})
	gui.Process()
	f := fb.New(config.Width, config.Height)
	gui.Redraw(f)

	out := os.Stdout
	if path != "" {
		out, err = os.Create(path)
		if err != nil {
			return err
		}
	}
	if err := f.WritePNG(out); err != nil {
		if path != "" {
			out.Close()
		}
		return err
	}
	if path != "" {
		return out.Close()
	}
	return nil
}

func runTerminal(config lcdui.Config) error {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		cols, rows = 80, 24
	}

	gui, err := lcdui.New(config)
	if err != nil {
		return err
	}
	if _, err := newDemo(gui); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)

	m := newScreen(gui, config.Width, config.Height, cols, rows)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))

	f := fb.New(config.Width, config.Height)
	f.SetFlush(func(img *image.RGBA) error {
		p.Send(frameMsg{clone(img)})
		return nil
	})

	eg.Go(func() error {
		defer cancel()
		_, err := p.Run()
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	})
	eg.Go(func() error {
		err := gui.Run(ctx, f)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
	return eg.Wait()
}
