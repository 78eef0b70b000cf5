// Package semver holds the version value extracted from a C header and
// renders it as a release version or a library ABI pair.
package semver
