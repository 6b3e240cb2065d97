package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds every flag of the command.
type cliFlags struct {
	config      string
	verbose     bool
	printConfig bool
	version     bool
	help        bool

	breaks        bool
	breaksSet     bool // --breaks given explicitly, including --breaks=false
	standalone    bool
	standaloneSet bool
	title         string
	style         string
	assetPath     string
}

// addCommonFlags adds flags that control the run rather than the output.
func addCommonFlags(fs *flag.FlagSet, f *cliFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
	fs.BoolVar(&f.printConfig, "print-config", false, "print the effective configuration and exit")
	fs.BoolVar(&f.version, "version", false, "show version information")
	fs.BoolVarP(&f.help, "help", "h", false, "show this help")
}

// addOutputFlags adds flags that shape the written HTML.
func addOutputFlags(fs *flag.FlagSet, f *cliFlags) {
	fs.BoolVar(&f.breaks, "breaks", false, "emit <br /> for blank lines")
	fs.BoolVar(&f.standalone, "standalone", false, "wrap output in a complete HTML5 document")
	fs.StringVar(&f.title, "title", "", "document title (\"\" = first heading)")
	fs.StringVar(&f.style, "style", "", "CSS style name, file path, or content")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

// parseFlags parses args (without the program name) and returns positional args.
// Parse errors are returned, never printed: the caller owns stderr.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("markdown2html", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	f := &cliFlags{}
	addCommonFlags(fs, f)
	addOutputFlags(fs, f)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	f.breaksSet = fs.Changed("breaks")
	f.standaloneSet = fs.Changed("standalone")

	return f, fs.Args(), nil
}
