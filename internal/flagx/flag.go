// Package flagx contains helpers for parsing only a subset of the process
// arguments, so several components can define their own flag sets over the
// same os.Args without tripping over each other's flags.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs keeps the arguments from args that belong to allowedFlags.
// Both "-f value" and "-f=value" forms are recognised; a separate value is
// kept only when it does not itself look like a flag.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; !ok {
			continue
		}
		filtered = append(filtered, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// ConfigFileFlag returns the config file path given with -c or -config,
// or an empty string when neither is present. The last occurrence wins.
func ConfigFileFlag() string {
	var path string

	args := FilterArgs(os.Args[1:], []string{"-c", "-config"})

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file (json or yaml)")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(args)

	return path
}
