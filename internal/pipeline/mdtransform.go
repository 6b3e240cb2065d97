package pipeline

import (
	"regexp"
	"strings"
)

// Line ending normalization
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// SplitLines normalizes line endings and splits content into lines without
// terminators. A final terminator does not produce an extra empty line, and
// empty content yields no lines.
func SplitLines(content string) []string {
	content = normalizeLineEndings(content)
	if content == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}
