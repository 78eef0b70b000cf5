// Package operations provides the read-parse-render pipeline behind hdrver.
package operations

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/libtcod/hdrver/internal/core"
	"github.com/libtcod/hdrver/internal/parser"
	"github.com/libtcod/hdrver/internal/semver"
	"github.com/tidwall/sjson"
)

// Style selects how the extracted version is printed.
type Style string

const (
	// StyleRelease prints "major.minor.patch".
	StyleRelease Style = "release"

	// StyleABI prints "major:minor", the library ABI pair.
	StyleABI Style = "abi"

	// StyleJSON prints a single-line JSON object with every rendering.
	StyleJSON Style = "json"
)

// ExtractOperation reads a version header and renders its version.
type ExtractOperation struct {
	reader *parser.Reader
	logger *log.Logger
}

// NewExtractOperation creates an extract operation. A nil logger discards output.
func NewExtractOperation(fs core.FileSystem, logger *log.Logger) *ExtractOperation {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &ExtractOperation{
		reader: parser.NewReader(fs),
		logger: logger,
	}
}

// Execute reads cfg.Path, applies cfg.Contract and returns the rendered
// line without a trailing newline.
func (op *ExtractOperation) Execute(ctx context.Context, cfg parser.FileConfig, style Style) (string, error) {
	op.logger.Debug("reading version header", "path", cfg.Path, "contract", cfg.Contract)

	result, err := op.reader.Read(ctx, cfg)
	if err != nil {
		return "", err
	}

	op.logger.Debug("matched version macros",
		"major", result.Version.Major,
		"minor", result.Version.Minor,
		"patch", result.Version.Patch,
	)

	return Render(result.Version, style)
}

// Render formats v in the given style.
func Render(v semver.Triple, style Style) (string, error) {
	switch style {
	case StyleRelease, "":
		return v.String(), nil
	case StyleABI:
		return v.ABI(), nil
	case StyleJSON:
		return renderJSON(v)
	default:
		return "", fmt.Errorf("unknown output style %q", style)
	}
}

func renderJSON(v semver.Triple) (string, error) {
	fields := []struct {
		path  string
		value any
	}{
		{"major", v.Major},
		{"minor", v.Minor},
		{"patch", v.Patch},
		{"version", v.String()},
		{"abi", v.ABI()},
	}

	out := []byte(`{}`)
	for _, f := range fields {
		var err error
		out, err = sjson.SetBytes(out, f.path, f.value)
		if err != nil {
			return "", fmt.Errorf("failed to encode %s: %w", f.path, err)
		}
	}
	return string(out), nil
}
