package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestVerbosityGating(t *testing.T) {
	var buf bytes.Buffer
	Initialize(LevelQuiet, &buf)

	Info("hidden at quiet")
	Debug("hidden at quiet")
	Warn("visible warning")

	out := buf.String()
	if strings.Contains(out, "hidden at quiet") {
		t.Errorf("info/debug leaked at quiet level: %q", out)
	}
	if !strings.Contains(out, "visible warning") {
		t.Errorf("warning missing from output: %q", out)
	}
}

func TestDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	Initialize(LevelDebug, &buf)

	Debug("store write failed", "error", "disk full")

	if !strings.Contains(buf.String(), "store write failed") {
		t.Errorf("debug message missing: %q", buf.String())
	}
	if !IsDebug() {
		t.Error("IsDebug() = false at debug level")
	}
}
