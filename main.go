// Released under an MIT license. See LICENSE.

/*
Bfpp runs programs written in bfpp, a tape language in the brainfuck family
extended with first-class functions and scoped calls.

	+ - < > [ ] , .   as usual, on cells holding 16-bit values
	{ ... }           store the enclosed instructions in the current cell
	( ... )           call the function at the address in the current cell
	                  -  pull an argument from the left of the cursor
	                  +  push a result at the cursor
	                  '  look the function up one frame further out
	                  @  look the function up in the outermost frame
	! ...             comment to the end of the line
	* ... *           comment

Usage:

	bfpp [-dn] [-c CONFIG] [SOURCE]

Bfpp is released under an MIT-style license.
*/
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
	"github.com/michaelmacinnis/adapted"
	"github.com/peterh/liner"

	"github.com/michaelmacinnis/bfpp/internal/engine"
	"github.com/michaelmacinnis/bfpp/internal/engine/track"
	"github.com/michaelmacinnis/bfpp/internal/reader"
	"github.com/michaelmacinnis/bfpp/internal/system/channel"
	"github.com/michaelmacinnis/bfpp/internal/system/config"
	"github.com/michaelmacinnis/bfpp/internal/system/logger"
	"github.com/michaelmacinnis/bfpp/internal/system/options"
	"github.com/michaelmacinnis/bfpp/internal/system/terminal"
	"github.com/michaelmacinnis/bfpp/internal/type/inst"
	"github.com/michaelmacinnis/bfpp/internal/ui"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	opts, err := options.Parse(argv, docopt.PrintHelpAndExit)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)

		return 1
	}

	logger.Init(os.Stderr, opts.Debug, opts.NoColor)

	c, err := config.Load(opts.Config)
	if err != nil {
		log.Error("bad configuration", "err", err)

		return 1
	}

	path, err := source(opts.Source)
	if err != nil {
		log.Error("no source file", "err", err)

		return 1
	}

	code, err := reader.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Error("file not found", "path", adapted.CanonicalString(path))

		return 1
	} else if err != nil {
		log.Error("cannot read source", "err", err)

		return 1
	}

	log.Debug("loaded", "path", path, "instructions", len(code))

	ch := channel.Standard()
	e := engine.New(c.TapeConfig(), ch, ch)

	err = execute(e, ch, code)

	if opts.Debug {
		e.Dump()
	}

	e.Close()
	report(e.Track())

	if err != nil {
		log.Error("fault", "err", err)

		return 1
	}

	return 0
}

// execute runs code with the terminal in raw mode.
func execute(e *engine.T, ch *channel.T, code []inst.T) error {
	restore, err := terminal.Raw()
	if err != nil {
		log.Warn("cannot enter raw mode", "err", err)

		restore = nil
	}

	err = e.Run(code)

	if ferr := ch.Flush(); ferr != nil && err == nil {
		err = ferr
	}

	if restore != nil {
		if rerr := restore(); rerr != nil {
			log.Warn("cannot restore terminal mode", "err", rerr)
		}
	}

	fmt.Println()

	return err
}

func report(t *track.T) {
	for _, kind := range t.Leaks() {
		log.Warn("leaked", "kind", kind, "live", t.Live(kind))
	}

	log.Debug("allocations",
		"frames", t.Allocated(track.Frame),
		"deepest", t.Peak(track.Frame),
		"functions", t.Allocated(track.Function))
}

// source returns path or, if it is empty, asks for one.
func source(path string) (string, error) {
	if path != "" {
		return path, nil
	}

	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return "", errors.New("no SOURCE given and stdin is not a terminal")
	}

	path, err := ui.Path()
	if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
		return "", errors.New("prompt aborted")
	} else if err != nil {
		return "", err
	}

	if path == "" {
		return "", errors.New("empty path")
	}

	return path, nil
}
