package console

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestColorEnabled(t *testing.T) {
	origGetenv := getenv
	t.Cleanup(func() { getenv = origGetenv })

	t.Run("disabled flag", func(t *testing.T) {
		getenv = func(string) string { return "" }
		if ColorEnabled(os.Stderr, true) {
			t.Error("expected color to be disabled by flag")
		}
	})

	t.Run("NO_COLOR set", func(t *testing.T) {
		getenv = func(key string) string {
			if key == "NO_COLOR" {
				return "1"
			}
			return ""
		}
		if ColorEnabled(os.Stderr, false) {
			t.Error("expected color to be disabled by NO_COLOR")
		}
	})

	t.Run("non-file writer", func(t *testing.T) {
		getenv = func(string) string { return "" }
		if ColorEnabled(&bytes.Buffer{}, false) {
			t.Error("expected color to be disabled for a buffer")
		}
	})

	t.Run("regular file", func(t *testing.T) {
		getenv = func(string) string { return "" }
		f, err := os.CreateTemp(t.TempDir(), "out")
		if err != nil {
			t.Fatal(err)
		}
		defer f.Close()
		if ColorEnabled(f, false) {
			t.Error("expected color to be disabled for a regular file")
		}
	})
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{name: "quiet", verbose: false, wantDebug: false},
		{name: "verbose", verbose: true, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, tt.verbose)

			logger.Debug("reading header", "path", "version.h")
			logger.Warn("heads up")

			out := buf.String()
			if got := strings.Contains(out, "reading header"); got != tt.wantDebug {
				t.Errorf("debug line present = %v, want %v (output %q)", got, tt.wantDebug, out)
			}
			if !strings.Contains(out, "heads up") {
				t.Errorf("expected warning in output, got %q", out)
			}
		})
	}
}
