package semver

import (
	"strconv"
	"strings"
)

// Triple is the major.minor.patch version parsed from a header.
// It is a plain value: copies never alias and there are no setters.
type Triple struct {
	Major int
	Minor int
	Patch int
}

// NewTriple returns a Triple. All components must be non-negative.
func NewTriple(major, minor, patch int) (Triple, bool) {
	if major < 0 || minor < 0 || patch < 0 {
		return Triple{}, false
	}
	return Triple{Major: major, Minor: minor, Patch: patch}, true
}

// String returns the release version, e.g. "1.2.3".
func (t Triple) String() string {
	var sb strings.Builder
	sb.Grow(16)
	sb.WriteString(strconv.Itoa(t.Major))
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(t.Minor))
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(t.Patch))
	return sb.String()
}

// ABI returns the library ABI pair, e.g. "1:2". The patch level is
// omitted because it never changes binary compatibility.
func (t Triple) ABI() string {
	var sb strings.Builder
	sb.Grow(12)
	sb.WriteString(strconv.Itoa(t.Major))
	sb.WriteByte(':')
	sb.WriteString(strconv.Itoa(t.Minor))
	return sb.String()
}
