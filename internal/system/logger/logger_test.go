package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestLevels(t *testing.T) {
	var b bytes.Buffer

	Init(&b, false, true)

	log.Debug("hidden")
	log.Warn("shown", "key", "value")

	if strings.Contains(b.String(), "hidden") {
		t.Fatalf("debug output without debug: %q", b.String())
	}

	if !strings.Contains(b.String(), "shown") || !strings.Contains(b.String(), "key=value") {
		t.Fatalf("missing warning: %q", b.String())
	}

	b.Reset()

	Init(&b, true, true)

	log.Debug("visible")

	if !strings.Contains(b.String(), "visible") || !strings.Contains(b.String(), "bfpp") {
		t.Fatalf("missing debug output: %q", b.String())
	}

	if log.GetLevel() != log.DebugLevel {
		t.Fatalf("unexpected level %v", log.GetLevel())
	}
}
