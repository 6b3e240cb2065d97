// Package markdown2html converts a small, line-oriented subset of Markdown
// to HTML.
//
// # Quick Start
//
// Convert lines with default behavior:
//
//	frags := markdown2html.ConvertLines([]string{"# Hello", "", "- one", "- two"})
//	fmt.Print(markdown2html.Render(frags))
//
// Or build a Converter for standalone documents:
//
//	conv, err := markdown2html.NewConverter(
//	    markdown2html.WithStandalone(true),
//	    markdown2html.WithStyle("default"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result := conv.Convert(markdown2html.Input{Markdown: content})
//	os.WriteFile("README.html", result.HTML, 0644)
//
// # Supported Syntax
//
// Each input line is classified, first match wins:
//
//  1. "# " to "###### " headings, levels 1 to 6
//  2. "- " items, grouped into <ul>
//  3. "* " items, grouped into <ol>
//  4. blank or whitespace-only lines, which separate paragraphs
//  5. anything else, merged with adjacent plain lines into one <p>
//
// Heading, item and paragraph text goes through the inline substitutions,
// in this order:
//
//	**text**   <b>text</b>
//	__text__   <em>text</em>
//	[[text]]   lowercase hex MD5 of text
//	((text))   text without any "c" or "C"
//
// A heading or a plain line closes an open list; a blank line does not.
// Switching between "- " and "* " items closes the previous list. Blank lines
// emit <br /> only with WithBlankLineBreaks.
//
// Nesting, links, images, code blocks, tables, blockquotes and HTML escaping
// are not supported.
//
// # Concurrency
//
// Conversion keeps its state per call. A Converter is immutable after
// NewConverter and safe for concurrent use.
package markdown2html
