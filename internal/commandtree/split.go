package commandtree

import "strings"

// Split cuts line at every sep. Empty segments between separators are kept,
// empty segments at the end of the line are dropped, so "git add " yields
// ["git", "add"] while "git  add" yields ["git", "", "add"].
func Split(line string, sep byte) []string {
	parts := strings.Split(line, string(sep))
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// Fields splits a submitted line into a command path on single spaces.
func Fields(line string) []string {
	return Split(line, ' ')
}
