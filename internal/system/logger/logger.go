// Released under an MIT license. See LICENSE.

// Package logger configures the default logger.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// Init replaces the default logger. Without debug only warnings and errors
// are reported.
func Init(w io.Writer, debug, noColor bool) {
	if w == nil {
		w = os.Stderr
	}

	log.SetDefault(log.NewWithOptions(w, log.Options{
		ReportCaller:    debug,
		ReportTimestamp: false,
		TimeFormat:      time.RFC3339,
		Prefix:          "bfpp",
	}))

	log.SetLevel(log.WarnLevel)
	if debug {
		log.SetLevel(log.DebugLevel)
	}

	log.SetColorProfile(termenv.ANSI256)
	if noColor {
		log.SetColorProfile(termenv.Ascii)
	}
}
