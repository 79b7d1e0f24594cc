package cmd

import (
	"strings"

	"github.com/spf13/pflag"
)

// splitArgs separates flag arguments from positionals. A single-dash token
// is a flag only when its first letter is a known shorthand, so "-0.01",
// "-e3" or "-abc" stay values and the validators get to reject them.
// Everything after "--" is positional.
func splitArgs(flags *pflag.FlagSet, args []string) (flagArgs, positional []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return flagArgs, append(positional, args[i+1:]...)
		case !strings.HasPrefix(arg, "-") || arg == "-" || !isShorthand(flags, arg):
			positional = append(positional, arg)
		default:
			flagArgs = append(flagArgs, arg)
			if takesValue(flags, arg) && i+1 < len(args) {
				i++
				flagArgs = append(flagArgs, args[i])
			}
		}
	}
	return flagArgs, positional
}

// isShorthand reports whether arg is a long flag or starts with a known
// shorthand letter.
func isShorthand(flags *pflag.FlagSet, arg string) bool {
	if strings.HasPrefix(arg, "--") {
		return true
	}
	return flags.ShorthandLookup(arg[1:2]) != nil
}

// takesValue reports whether arg names a flag that consumes the next
// argument, i.e. a known non-boolean flag given without "=value".
func takesValue(flags *pflag.FlagSet, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}

	var flag *pflag.Flag
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		flag = flags.Lookup(name)
	} else if name := arg[1:]; len(name) == 1 {
		flag = flags.ShorthandLookup(name)
	}

	return flag != nil && flag.NoOptDefVal == ""
}
