package parser

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/libtcod/hdrver/internal/core"
	"github.com/libtcod/hdrver/internal/semver"
)

// Reader extracts version triples from C headers.
type Reader struct {
	fs core.FileSystem
}

// NewReader creates a new Reader with the given filesystem.
func NewReader(fs core.FileSystem) *Reader {
	return &Reader{fs: fs}
}

// Read loads the header named by cfg.Path and parses it against cfg.Contract.
// Read failures are reported as *FileAccessError, contract violations as
// *PatternMismatchError.
func (r *Reader) Read(ctx context.Context, cfg FileConfig) (*Result, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("header path is required")
	}

	contract := cfg.Contract
	if contract == (Contract{}) {
		contract = TCODFOVv1
	}

	data, err := r.fs.ReadFile(ctx, cfg.Path)
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		return nil, &FileAccessError{Path: cfg.Path, Err: err}
	}

	version, err := Parse(data, contract)
	if err != nil {
		var mismatch *PatternMismatchError
		if errors.As(err, &mismatch) {
			mismatch.Path = cfg.Path
		}
		return nil, err
	}

	return &Result{
		Version:  version,
		Path:     cfg.Path,
		Contract: contract,
	}, nil
}

// ReadVersion is a convenience method that reads and returns just the triple.
func (r *Reader) ReadVersion(ctx context.Context, cfg FileConfig) (semver.Triple, error) {
	result, err := r.Read(ctx, cfg)
	if err != nil {
		return semver.Triple{}, err
	}
	return result.Version, nil
}

// Parse extracts the contract's macros from data. The search is anchored at
// the start of the input and takes the first place where major, minor and
// patch appear in that order, with anything (newlines included) between them.
func Parse(data []byte, contract Contract) (semver.Triple, error) {
	matches := definesRegex(contract.Macros()...).FindSubmatch(data)
	if matches == nil {
		return semver.Triple{}, &PatternMismatchError{
			Contract: contract,
			Missing:  firstMissing(data, contract),
		}
	}

	var parts [3]int
	for i, raw := range matches[1:] {
		n, err := strconv.Atoi(string(raw))
		if err != nil {
			return semver.Triple{}, &PatternMismatchError{
				Contract: contract,
				Err:      fmt.Errorf("invalid value for %s: %w", contract.Macros()[i], err),
			}
		}
		parts[i] = n
	}

	// Captures are digit runs, so NewTriple cannot reject them.
	version, _ := semver.NewTriple(parts[0], parts[1], parts[2])
	return version, nil
}

// firstMissing reports which macro broke the ordered match.
func firstMissing(data []byte, contract Contract) string {
	macros := contract.Macros()
	for i := 1; i <= len(macros); i++ {
		if !definesRegex(macros[:i]...).Match(data) {
			return macros[i-1]
		}
	}
	return ""
}

// definesRegex builds `(?s)\A.*?#define NAME[ \t]*([0-9]+)` for each name,
// joined by lazy wildcards so the earliest ordered occurrence wins.
func definesRegex(names ...string) *regexp.Regexp {
	pattern := `(?s)\A`
	for _, name := range names {
		pattern += `.*?#define ` + regexp.QuoteMeta(name) + `[ \t]*([0-9]+)`
	}
	return regexp.MustCompile(pattern)
}
