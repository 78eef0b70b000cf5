package cli

import (
	"slices"
	"strings"

	urfavecli "github.com/urfave/cli/v3"
)

// standaloneFlags are the framework's help and version flags. They are only
// honoured as the sole argument so a build script never captures help text
// in place of a version.
var standaloneFlags = []string{"-h", "--help", "-v", "--version"}

// NormalizeArgs rewrites a raw argument list so that only flags cmd defines
// reach the flag parser. Any other token is moved behind "--" and ends up
// among the ignored positional arguments.
//
// An exact "--so" anywhere in args, including after "--" or in the value
// slot of another flag, selects the ABI output. Look-alikes such as -so,
// --so=1 or --source do not.
func NormalizeArgs(cmd *urfavecli.Command, args []string) []string {
	if len(args) == 0 {
		return args
	}
	rest := args[1:]
	if len(rest) == 1 && slices.Contains(standaloneFlags, rest[0]) {
		return args
	}

	takesValue := definedFlags(cmd)

	out := []string{args[0]}
	if slices.Contains(rest, abiFlag) {
		out = append(out, abiFlag)
	}

	var positional []string
	for i := 0; i < len(rest); i++ {
		tok := rest[i]
		if tok == "--" {
			positional = append(positional, rest[i+1:]...)
			break
		}
		if tok == abiFlag {
			continue
		}

		name, inline, ok := splitFlag(tok)
		wantsValue, defined := takesValue[name]
		if !ok || !defined || name == "so" {
			positional = append(positional, tok)
			continue
		}

		out = append(out, tok)
		if wantsValue && !inline && i+1 < len(rest) {
			i++
			out = append(out, rest[i])
		}
	}

	if len(positional) > 0 {
		out = append(out, "--")
		out = append(out, positional...)
	}
	return out
}

// definedFlags maps every name and alias of cmd's flags to whether the flag
// consumes a value.
func definedFlags(cmd *urfavecli.Command) map[string]bool {
	names := make(map[string]bool)
	for _, f := range cmd.Flags {
		wantsValue := true
		if v, ok := f.(interface{ TakesValue() bool }); ok {
			wantsValue = v.TakesValue()
		}
		for _, name := range f.Names() {
			names[name] = wantsValue
		}
	}
	return names
}

// splitFlag returns the flag name of a "-name", "--name" or "--name=value"
// token and whether the value is inline.
func splitFlag(tok string) (name string, inline bool, ok bool) {
	if len(tok) < 2 || tok[0] != '-' {
		return "", false, false
	}
	name = strings.TrimPrefix(tok[1:], "-")
	if name == "" || name[0] == '-' {
		return "", false, false
	}
	if i := strings.IndexByte(name, '='); i >= 0 {
		return name[:i], true, true
	}
	return name, false, true
}
