package config

import (
	"os"
	"path/filepath"
	"testing"
)

/* ------------------------------------------------------------------------- */
/* HELPERS                                                                   */
/* ------------------------------------------------------------------------- */

// runInTempDir runs a function in the directory holding tmpPath, then restores to a safe directory.
// This handles the case where the CWD has been deleted by previous test cleanup.
func runInTempDir(t *testing.T, tmpPath string, fn func()) {
	t.Helper()

	origDir, err := os.Getwd()
	if err != nil {
		// CWD doesn't exist - use /tmp as fallback
		origDir = os.TempDir()
		if chErr := os.Chdir(origDir); chErr != nil {
			t.Fatalf("failed to chdir to temp dir: %v", chErr)
		}
	}

	targetDir := filepath.Dir(tmpPath)
	if err := os.Chdir(targetDir); err != nil {
		t.Fatalf("failed to chdir to %s: %v", targetDir, err)
	}
	defer func() { _ = os.Chdir(origDir) }()
	fn()
}

// clearEnv makes sure the host environment does not leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvHeader, "")
	t.Setenv(EnvPrefix, "")
}

func checkError(t *testing.T, err error, wantErr bool) {
	t.Helper()
	if (err != nil) != wantErr {
		t.Fatalf("expected err=%v, got err=%v", wantErr, err)
	}
}

func checkConfigNil(t *testing.T, cfg *Config, wantNil bool) {
	t.Helper()
	if wantNil && cfg != nil {
		t.Errorf("expected nil config, got %+v", cfg)
	}
	if !wantNil && cfg == nil {
		t.Fatal("expected non-nil config, got nil")
	}
}

func checkHeader(t *testing.T, cfg *Config, wantHeader string, wantSource Source) {
	t.Helper()
	if cfg.Header != wantHeader {
		t.Errorf("expected header %q, got %q", wantHeader, cfg.Header)
	}
	if cfg.HeaderSource != wantSource {
		t.Errorf("expected header source %q, got %q", wantSource, cfg.HeaderSource)
	}
}

func checkPrefix(t *testing.T, cfg *Config, wantPrefix string, wantSource Source) {
	t.Helper()
	if cfg.Prefix != wantPrefix {
		t.Errorf("expected prefix %q, got %q", wantPrefix, cfg.Prefix)
	}
	if cfg.PrefixSource != wantSource {
		t.Errorf("expected prefix source %q, got %q", wantSource, cfg.PrefixSource)
	}
}
