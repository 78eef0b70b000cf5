package operations

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/libtcod/hdrver/internal/core"
	"github.com/libtcod/hdrver/internal/parser"
	"github.com/libtcod/hdrver/internal/semver"
	"github.com/libtcod/hdrver/internal/testutils"
)

func TestRender(t *testing.T) {
	v := semver.Triple{Major: 10, Minor: 0, Patch: 27}

	tests := []struct {
		style   Style
		want    string
		wantErr bool
	}{
		{style: StyleRelease, want: "10.0.27"},
		{style: "", want: "10.0.27"},
		{style: StyleABI, want: "10:0"},
		{style: StyleJSON, want: `{"major":10,"minor":0,"patch":27,"version":"10.0.27","abi":"10:0"}`},
		{style: Style("xml"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			got, err := Render(v, tt.style)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Render(%q) = %q, want %q", tt.style, got, tt.want)
			}
			if strings.Contains(got, "\n") {
				t.Errorf("Render(%q) must be a single line, got %q", tt.style, got)
			}
		})
	}
}

func TestExtractOperation_Execute(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/include/version.h", []byte(testutils.HeaderContent(1, 2, 3)))

	var logs bytes.Buffer
	logger := log.New(&logs)
	logger.SetLevel(log.DebugLevel)

	op := NewExtractOperation(fs, logger)

	tests := []struct {
		style Style
		want  string
	}{
		{StyleRelease, "1.2.3"},
		{StyleABI, "1:2"},
	}

	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			got, err := op.Execute(context.Background(), parser.FileConfig{
				Path:     "/include/version.h",
				Contract: parser.TCODFOVv1,
			}, tt.style)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}

	if !strings.Contains(logs.String(), "/include/version.h") {
		t.Errorf("expected debug log to mention header path, got %q", logs.String())
	}
}

func TestExtractOperation_Execute_Errors(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/bad.h", []byte("#define TCODFOV_MAJOR_VERSION 1\n"))

	op := NewExtractOperation(fs, nil)

	tests := []struct {
		name string
		path string
		want error
	}{
		{name: "missing header", path: "/missing.h", want: parser.ErrFileAccess},
		{name: "incomplete header", path: "/bad.h", want: parser.ErrPatternMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := op.Execute(context.Background(), parser.FileConfig{Path: tt.path}, StyleRelease)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if got != "" {
				t.Errorf("expected no output on error, got %q", got)
			}
		})
	}
}
