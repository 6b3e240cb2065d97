package markdown2html

import (
	"fmt"
	"os"

	"github.com/alnah/markdown2html/internal/assets"
	"github.com/alnah/markdown2html/internal/fileutil"
	"github.com/alnah/markdown2html/internal/pipeline"
)

// Converter turns Markdown lines into HTML fragments and documents.
// Create with NewConverter; the zero value is not usable.
type Converter struct {
	cfg         converterConfig
	assetLoader assets.AssetLoader
}

// NewConverter creates a Converter with default configuration.
// Returns error if the asset path or the style cannot be resolved.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		assetLoader: assets.NewEmbeddedLoader(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		c.assetLoader = resolver
	}

	if err := c.resolveStyle(); err != nil {
		return nil, err
	}

	return c, nil
}

// Convert runs one conversion. It never fails: every input, including an
// empty one, yields a (possibly empty) result.
func (c *Converter) Convert(input Input) *Result {
	lines := input.Lines
	if lines == nil {
		lines = pipeline.SplitLines(input.Markdown)
	}

	frags := pipeline.Assemble(lines, pipeline.Options{
		BlankLineBreaks: c.cfg.blankLineBreaks,
	})

	body := pipeline.Render(frags)
	if !c.cfg.standalone {
		return &Result{Fragments: frags, HTML: []byte(body)}
	}

	title := input.Title
	if title == "" {
		title = pipeline.FirstHeading(frags)
	}
	doc := pipeline.WrapDocument(body, title, c.cfg.resolvedStyle)
	return &Result{Fragments: frags, HTML: []byte(doc)}
}

// ConvertLines converts lines with default options.
func ConvertLines(lines []string) []Fragment {
	return pipeline.Assemble(lines, pipeline.Options{})
}

// Render concatenates fragments into the converted document body.
func Render(frags []Fragment) string {
	return pipeline.Render(frags)
}

// resolveStyle resolves the style input (name, path, or CSS content) to CSS content.
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleInput
	if input == "" {
		return nil
	}

	if fileutil.IsCSS(input) {
		c.cfg.resolvedStyle = input
		return nil
	}

	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("%w: %q: %v", ErrReadStyle, input, err)
		}
		c.cfg.resolvedStyle = string(content)
		return nil
	}

	css, err := c.assetLoader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, err)
	}
	c.cfg.resolvedStyle = css
	return nil
}
