// Package parser reads version numbers out of C headers.
//
// A header is described by a Contract: the three #define macros holding the
// major, minor and patch numbers, in the order they must appear. Reader
// loads a header through core.FileSystem and reports the two ways this can
// fail as distinct error types, FileAccessError and PatternMismatchError,
// so callers can tell a missing file from a header whose layout changed.
package parser
