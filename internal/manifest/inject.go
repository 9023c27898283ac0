// Package manifest edits and checks the package.json and Cargo.toml files
// produced by npm and cargo.
package manifest

import (
	"strings"
)

// InjectAfterFirstLine inserts fragment after the first line of manifest.
//
// This is a positional text edit: the first line is kept, the fragment is
// appended to it, and the remaining lines follow with their line breaks
// dropped. JSON does not depend on them. When the first line holds more
// than the opening brace, the split happens right after that brace so a
// single-line manifest stays one object. When nothing but the closing brace
// follows, the fragment's trailing comma is dropped.
func InjectAfterFirstLine(manifest, fragment string) string {
	lines := splitLines(manifest)
	if len(lines) == 0 {
		return ""
	}

	head := lines[0]
	rest := lines[1:]

	if strings.TrimSpace(head) != "{" {
		if i := strings.IndexByte(head, '{'); i >= 0 {
			rest = append([]string{head[i+1:]}, rest...)
			head = head[:i+1]
		}
	}

	tail := strings.Join(rest, "")
	if strings.HasPrefix(strings.TrimSpace(tail), "}") {
		fragment = dropTrailingComma(fragment)
	}

	var sb strings.Builder
	sb.Grow(len(manifest) + len(fragment))
	sb.WriteString(head)
	sb.WriteString(fragment)
	sb.WriteString(tail)
	return sb.String()
}

// splitLines splits on \n, strips a trailing \r from each line and drops
// the empty line after a final newline.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

func dropTrailingComma(fragment string) string {
	trimmed := strings.TrimRight(fragment, " \t\r\n")
	if !strings.HasSuffix(trimmed, ",") {
		return fragment
	}
	return strings.TrimSuffix(trimmed, ",") + fragment[len(trimmed):]
}
