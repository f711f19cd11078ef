// Released under an MIT license. See LICENSE.

// Package options parses bfpp's command line.
package options

import (
	"github.com/docopt/docopt-go"
)

// Version is reported by -v.
const Version = "bfpp 0.1.0"

const usage = `bfpp

Usage:
  bfpp [-dn] [-c CONFIG] [SOURCE]
  bfpp -h
  bfpp -v

Arguments:
  SOURCE  Path to a bfpp program. Prompted for if omitted and stdin is a TTY.

Options:
  -c, --config=CONFIG  Read tape settings from a TOML file.
  -d, --debug          Log debugging output, the final tape and leaks.
  -n, --no-color       Disable colored log output.
  -h, --help           Display this help.
  -v, --version        Print bfpp version.
`

// T (options) holds the parsed command line.
type T struct {
	Config  string
	Debug   bool
	NoColor bool
	Source  string
}

// Parse parses argv (without the program name). Help and version requests
// are handled by h (see docopt.PrintHelpAndExit).
func Parse(argv []string, h func(error, string)) (*T, error) {
	p := &docopt.Parser{HelpHandler: h}

	opts, err := p.ParseArgs(usage, argv, Version)
	if err != nil {
		return nil, err
	}

	t := &T{}

	t.Config, _ = opts.String("--config")
	t.Debug, _ = opts.Bool("--debug")
	t.NoColor, _ = opts.Bool("--no-color")
	t.Source, _ = opts.String("SOURCE")

	return t, nil
}
