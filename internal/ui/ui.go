// Released under an MIT license. See LICENSE.

// Package ui provides the interactive prompt for bfpp.
package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/michaelmacinnis/adapted"
	"github.com/peterh/liner"

	"github.com/michaelmacinnis/bfpp/internal/system/history"
)

// Prompt is shown when asking for a source file.
const Prompt = "Enter path to source file to run: "

// Path asks the user for the path to a source file. Escape sequences in
// the response are interpreted. Tab completes file names.
func Path() (string, error) {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	cli.SetTabCompletionStyle(liner.TabPrints)
	cli.SetCompleter(complete)

	if err := history.Load(cli.ReadHistory); err != nil {
		log.Debug("no history loaded", "err", err)
	}

	line, err := cli.Prompt(Prompt)
	if err != nil {
		return "", err
	}

	path, err := Unescape(line)
	if err != nil {
		return "", err
	}

	if path != "" {
		cli.AppendHistory(line)

		if err := history.Save(cli.WriteHistory); err != nil {
			log.Warn("cannot save history", "err", err)
		}
	}

	return path, nil
}

// Unescape trims the line typed at the prompt and interprets escapes.
func Unescape(line string) (string, error) {
	line = strings.TrimSpace(line)

	path, err := adapted.ActualBytes(line)
	if err != nil {
		return "", fmt.Errorf("invalid path %s: %w", adapted.CanonicalString(line), err)
	}

	return path, nil
}

func complete(line string) []string {
	matches, err := filepath.Glob(line + "*")
	if err != nil {
		return nil
	}

	return matches
}
