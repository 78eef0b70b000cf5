package parser

import (
	"fmt"
	"regexp"

	"github.com/libtcod/hdrver/internal/semver"
)

// DefaultPrefix is the macro prefix used by the libtcod-fov headers.
const DefaultPrefix = "TCODFOV"

// Contract names the three macros a version header must define and the
// order in which they must appear. Any change to the header layout must be
// published as a new Revision so that a mismatch is reported against a
// known contract instead of silently picking up the wrong numbers.
type Contract struct {
	// Name identifies the header family, e.g. "tcodfov".
	Name string

	// Revision is bumped whenever macro names or ordering change.
	Revision int

	MajorMacro string
	MinorMacro string
	PatchMacro string
}

// TCODFOVv1 is the contract of include/libtcod-fov/version.h.
var TCODFOVv1 = Contract{
	Name:       "tcodfov",
	Revision:   1,
	MajorMacro: "TCODFOV_MAJOR_VERSION",
	MinorMacro: "TCODFOV_MINOR_VERSION",
	PatchMacro: "TCODFOV_PATCHLEVEL",
}

var prefixRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ContractForPrefix returns the revision 1 contract for headers that use
// <PREFIX>_MAJOR_VERSION, <PREFIX>_MINOR_VERSION and <PREFIX>_PATCHLEVEL.
func ContractForPrefix(prefix string) (Contract, error) {
	if prefix == "" || prefix == DefaultPrefix {
		return TCODFOVv1, nil
	}
	if !prefixRegex.MatchString(prefix) {
		return Contract{}, fmt.Errorf("invalid macro prefix %q: must be a C identifier", prefix)
	}
	return Contract{
		Name:       prefix,
		Revision:   1,
		MajorMacro: prefix + "_MAJOR_VERSION",
		MinorMacro: prefix + "_MINOR_VERSION",
		PatchMacro: prefix + "_PATCHLEVEL",
	}, nil
}

// String returns the contract identifier, e.g. "tcodfov/v1".
func (c Contract) String() string {
	return fmt.Sprintf("%s/v%d", c.Name, c.Revision)
}

// Macros returns the macro names in the order they must appear.
func (c Contract) Macros() []string {
	return []string{c.MajorMacro, c.MinorMacro, c.PatchMacro}
}

// FileConfig describes which header to read and which contract applies.
type FileConfig struct {
	// Path is the header file path (absolute or relative).
	Path string

	// Contract selects the macros. The zero value means TCODFOVv1.
	Contract Contract
}

// Result is the outcome of a successful header read.
type Result struct {
	// Version is the extracted triple.
	Version semver.Triple

	// Path is the header that was read.
	Path string

	// Contract is the contract the header satisfied.
	Contract Contract
}
