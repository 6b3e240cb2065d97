package pipeline

import (
	"crypto/md5" // #nosec G501 -- digest is an output format, not a security primitive
	"encoding/hex"
	"regexp"
	"strings"
)

// Inline patterns, applied in declaration order. All runs are non-greedy.
var (
	// Bold syntax **text**
	boldPattern = regexp.MustCompile(`\*\*(.+?)\*\*`)

	// Emphasis syntax __text__
	emphasisPattern = regexp.MustCompile(`__(.+?)__`)

	// Digest syntax [[text]]
	digestPattern = regexp.MustCompile(`\[\[(.+?)\]\]`)

	// Strip syntax ((text))
	stripPattern = regexp.MustCompile(`\(\((.+?)\)\)`)

	// Letters removed by the strip syntax
	letterC = regexp.MustCompile(`[cC]`)
)

// ApplyInline runs the inline substitutions over s. Each pass operates on
// the result of the previous one; there is no re-scanning of the markup a
// pass produced beyond ordinary pattern matching.
func ApplyInline(s string) string {
	s = convertBold(s)
	s = convertEmphasis(s)
	s = convertDigests(s)
	s = convertStrips(s)
	return s
}

// convertBold transforms **text** to <b>text</b>.
func convertBold(s string) string {
	return boldPattern.ReplaceAllString(s, "<b>$1</b>")
}

// convertEmphasis transforms __text__ to <em>text</em>.
func convertEmphasis(s string) string {
	return emphasisPattern.ReplaceAllString(s, "<em>$1</em>")
}

// convertDigests replaces [[text]] with the lowercase hex MD5 of text.
func convertDigests(s string) string {
	return digestPattern.ReplaceAllStringFunc(s, func(m string) string {
		inner := digestPattern.FindStringSubmatch(m)[1]
		sum := md5.Sum([]byte(inner)) // #nosec G401
		return hex.EncodeToString(sum[:])
	})
}

// convertStrips replaces ((text)) with text minus every "c" and "C".
func convertStrips(s string) string {
	if !strings.Contains(s, "((") {
		return s
	}
	return stripPattern.ReplaceAllStringFunc(s, func(m string) string {
		inner := stripPattern.FindStringSubmatch(m)[1]
		return letterC.ReplaceAllString(inner, "")
	})
}
