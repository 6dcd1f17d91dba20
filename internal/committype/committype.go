// Package committype lists the conventional commit types the CLI documents
// and completes.
package committype

import (
	"fmt"
	"sort"
	"strings"
)

// descriptions maps commit types to a one-line summary.
var descriptions = map[string]string{
	"feat":     "A new feature for the user.",
	"fix":      "A bug fix for the user.",
	"chore":    "Routine tasks, maintenance, dependency updates.",
	"docs":     "Documentation changes.",
	"style":    "Code style changes (formatting, etc).",
	"refactor": "Code changes that neither fix a bug nor add a feature.",
	"test":     "Adding or improving tests.",
	"perf":     "Performance improvements.",
	"build":    "Build system or external dependency changes.",
	"ci":       "Continuous integration configuration changes.",
	"revert":   "Reverts a previous commit.",
}

// common is the order types are shown in help output.
var common = []string{"feat", "fix", "chore", "docs", "style", "refactor", "test"}

// IsKnown reports whether commitType is a recognized type. Matching is case-insensitive.
func IsKnown(commitType string) bool {
	_, ok := descriptions[strings.ToLower(strings.TrimSpace(commitType))]
	return ok
}

// Description returns the summary for commitType, or "" if unknown.
func Description(commitType string) string {
	return descriptions[strings.ToLower(strings.TrimSpace(commitType))]
}

// All returns every known type in alphabetical order.
func All() []string {
	types := make([]string, 0, len(descriptions))
	for t := range descriptions {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// CompletionValues returns "type\tdescription" pairs in the format cobra
// uses for described completions.
func CompletionValues(prefix string) []string {
	values := make([]string, 0, len(descriptions))
	for _, t := range All() {
		if strings.HasPrefix(t, prefix) {
			values = append(values, t+"\t"+descriptions[t])
		}
	}
	return values
}

// HelpText renders the common types as an aligned block for command help.
func HelpText() string {
	var b strings.Builder
	b.WriteString("COMMON COMMIT TYPES:\n")
	for _, t := range common {
		fmt.Fprintf(&b, "  %-9s %s\n", t+":", descriptions[t])
	}
	return strings.TrimRight(b.String(), "\n")
}
