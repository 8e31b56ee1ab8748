package css

import "strings"

// indentLines splits s on newlines and prefixes each resulting line with
// one indent level, so a child node's Dump() nests under its parent's.
func indentLines(s string) []string {
	parts := strings.Split(s, "\n")
	for i, p := range parts {
		parts[i] = "    " + p
	}
	return parts
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
