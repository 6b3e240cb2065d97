package markdown2html

import "github.com/alnah/markdown2html/internal/pipeline"

// Fragment is one unit of converted output. See pipeline.Fragment.
type Fragment = pipeline.Fragment

// Kind identifies what a Fragment represents.
type Kind = pipeline.Kind

// ListKind distinguishes unordered and ordered lists.
type ListKind = pipeline.ListKind

// Fragment kinds.
const (
	KindHeading   = pipeline.KindHeading
	KindListOpen  = pipeline.KindListOpen
	KindListItem  = pipeline.KindListItem
	KindListClose = pipeline.KindListClose
	KindParagraph = pipeline.KindParagraph
	KindBreak     = pipeline.KindBreak
)

// List kinds.
const (
	ListNone      = pipeline.ListNone
	ListUnordered = pipeline.ListUnordered
	ListOrdered   = pipeline.ListOrdered
)

// Input holds the source of one conversion.
type Input struct {
	// Lines is the source split into lines. When non-nil it takes
	// precedence over Markdown.
	Lines []string

	// Markdown is the whole source text, split with normalized line endings.
	Markdown string

	// Title overrides the standalone document title. Empty means the first
	// heading, then pipeline.DefaultTitle.
	Title string
}

// Result holds the output of one conversion.
type Result struct {
	Fragments []Fragment
	HTML      []byte
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	blankLineBreaks bool
	standalone      bool
	styleInput      string // name, path, or CSS content
	assetPath       string
	resolvedStyle   string
}

// WithBlankLineBreaks makes blank lines emit a <br /> fragment in addition
// to separating paragraphs.
func WithBlankLineBreaks(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.blankLineBreaks = enabled
	}
}

// WithStandalone wraps the output in a complete HTML5 document.
func WithStandalone(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.standalone = enabled
	}
}

// WithStyle sets the CSS for standalone output. Accepts a style name
// ("default"), a file path ("./custom.css"), or CSS content.
// Resolved by NewConverter; only standalone output embeds it.
func WithStyle(nameOrPathOrCSS string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = nameOrPathOrCSS
	}
}

// WithAssetPath sets a directory whose styles/ subdirectory overrides the
// embedded styles.
func WithAssetPath(dir string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = dir
	}
}
