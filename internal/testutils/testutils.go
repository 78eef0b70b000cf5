// Package testutils holds helpers shared by hdrver tests.
package testutils

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// HeaderContent returns a minimal libtcod-fov style version header.
func HeaderContent(major, minor, patch int) string {
	return fmt.Sprintf(`#pragma once
#ifndef TCODFOV_VERSION_H_
#define TCODFOV_VERSION_H_

#define TCODFOV_MAJOR_VERSION %d
#define TCODFOV_MINOR_VERSION %d
#define TCODFOV_PATCHLEVEL %d

#endif
`, major, minor, patch)
}

// WriteTempHeader writes content to dir/version.h and returns the path.
func WriteTempHeader(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "version.h")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write header: %v", err)
	}
	return path
}

// WriteTempConfig writes a .hdrver.yaml into a fresh temp dir and returns its path.
func WriteTempConfig(t *testing.T, content string) string {
	t.Helper()
	return WriteTempConfigNamed(t, ".hdrver.yaml", content)
}

// WriteTempConfigNamed writes a config file with the given name into a
// fresh temp dir and returns its path.
func WriteTempConfigNamed(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

// Chdir switches to dir for the rest of the test.
func Chdir(t *testing.T, dir string) {
	t.Helper()
	origDir, err := os.Getwd()
	if err != nil {
		origDir = os.TempDir()
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to chdir to %s: %v", dir, err)
	}
	t.Cleanup(func() { _ = os.Chdir(origDir) })
}
