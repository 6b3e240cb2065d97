package pipeline

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

// DefaultTitle is used when a standalone document has no title and no heading.
const DefaultTitle = "Document"

// htmlTemplate wraps the rendered fragments in a complete HTML5 document.
const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s</body>
</html>
`

// htmlTagPattern matches HTML tags for stripping from heading text.
var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// WrapDocument wraps a rendered body in a standalone HTML5 document and
// injects css when non-empty. An empty title falls back to DefaultTitle.
func WrapDocument(body, title, css string) string {
	if title == "" {
		title = DefaultTitle
	}
	doc := fmt.Sprintf(htmlTemplate, html.EscapeString(title), body)
	return InjectCSS(doc, css)
}

// InjectCSS inserts a <style> block into HTML content.
// Tries </head> first, then <body>, then prepends to the HTML.
func InjectCSS(htmlContent, cssContent string) string {
	if cssContent == "" {
		return htmlContent
	}

	styleBlock := "<style>" + sanitizeCSS(cssContent) + "</style>\n"
	lowerHTML := strings.ToLower(htmlContent)

	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		if closeIdx := strings.Index(htmlContent[idx:], ">"); closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
		}
	}

	return styleBlock + htmlContent
}

// sanitizeCSS escapes </ so the CSS cannot close the <style> block early.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// FirstHeading returns the plain text of the first level-1 heading, or of the
// first heading of any level when there is no level-1 heading. Markup
// produced by inline substitution is stripped.
func FirstHeading(frags []Fragment) string {
	var fallback string
	for _, f := range frags {
		if f.Kind != KindHeading {
			continue
		}
		if f.Level == 1 {
			return stripHTMLTags(f.Text)
		}
		if fallback == "" {
			fallback = stripHTMLTags(f.Text)
		}
	}
	return fallback
}

// stripHTMLTags removes HTML tags and trims whitespace.
func stripHTMLTags(s string) string {
	return strings.TrimSpace(htmlTagPattern.ReplaceAllString(s, ""))
}
