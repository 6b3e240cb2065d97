package main

import (
	"fmt"
	"io"
)

// usageLine is printed when the positional arguments are wrong.
const usageLine = "Usage: ./markdown2html README.md README.html"

// printUsage prints the full help message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, usageLine)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a Markdown file to HTML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input     Markdown file to read")
	fmt.Fprintln(w, "  output    HTML file to write (parent directories are created)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "      --breaks              Emit <br /> for blank lines")
	fmt.Fprintln(w, "      --standalone          Wrap output in a complete HTML5 document")
	fmt.Fprintln(w, "      --title <s>           Document title (\"\" = first heading)")
	fmt.Fprintln(w, "      --style <s>           CSS style name, file path, or content")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom asset directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "General:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --print-config        Print the effective configuration and exit")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MARKDOWN2HTML_CONFIG, MARKDOWN2HTML_STYLE,")
	fmt.Fprintln(w, "  MARKDOWN2HTML_BREAKS, MARKDOWN2HTML_STANDALONE")
}
