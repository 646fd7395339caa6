package main

import (
	"os"
	"regexp"
	"strings"

	"colombo-utc/internal/cli"
)

var reEntryStart = regexp.MustCompile(`^\d{4}-`)

func isEntry(s string) bool {
	return reEntryStart.MatchString(strings.TrimSpace(s))
}

func rewriteDirectEntryArgs(argv []string) []string {
	// Convenience: `colombo-utc "2024-01-15, 3:45:00 PM"` works like
	// `colombo-utc convert "2024-01-15, 3:45:00 PM"`.
	//
	// Cobra treats the first non-flag token as a subcommand, so argv is rewritten
	// before parsing. Persistent flags may come first, so look for the first
	// positional token rather than argv[1].
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--format":      true,
		"--copy-policy": true,
		"--log-level":   true,
	}
	boolFlags := map[string]bool{
		"--pretty": true,
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			// Cobra stops resolving subcommands at "--", so convert goes in front of it.
			if i+1 < len(argv) && isEntry(argv[i+1]) {
				return insertConvert(argv, i)
			}
			return argv
		}

		if strings.HasPrefix(a, "-") {
			if strings.Contains(a, "=") || boolFlags[a] {
				continue
			}
			if valueFlags[a] {
				i++
			}
			continue
		}

		if isEntry(a) {
			return insertConvert(argv, i)
		}
		return argv
	}

	return argv
}

func insertConvert(argv []string, at int) []string {
	out := make([]string, 0, len(argv)+1)
	out = append(out, argv[:at]...)
	out = append(out, "convert")
	out = append(out, argv[at:]...)
	return out
}

func main() {
	os.Args = rewriteDirectEntryArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
