package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/alnah/markdown2html"
	"github.com/alnah/markdown2html/internal/assets"
	"github.com/alnah/markdown2html/internal/config"
	"github.com/alnah/markdown2html/internal/fileutil"
	"github.com/alnah/markdown2html/internal/hints"
	"github.com/alnah/markdown2html/internal/yamlutil"
)

// Sentinel errors for CLI operations.
var (
	ErrMissingArgs  = errors.New("expected input and output paths")
	ErrMissingInput = errors.New("input file not found")
	ErrInvalidFlag  = errors.New("invalid flag")
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWriteHTML    = errors.New("failed to write HTML file")
)

// missingInputError reports an input path that is not a regular file.
type missingInputError struct {
	path string
}

func (e *missingInputError) Error() string { return "Missing " + e.path }

func (e *missingInputError) Unwrap() error { return ErrMissingInput }

// run parses args, converts the input file and writes the output file.
// The parsed flags are returned even on error so the caller can honor --verbose.
func run(args []string, env *Environment) (*cliFlags, error) {
	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}

	flags, positional, err := parseFlags(rest)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFlag, err)
	}

	if flags.help {
		printUsage(env.Stdout)
		return flags, nil
	}
	if flags.version {
		fmt.Fprintf(env.Stdout, "markdown2html %s\n", Version)
		return flags, nil
	}

	// Wrong arity and a missing input are reported before any config is read.
	if !flags.printConfig {
		if len(positional) != 2 {
			return flags, ErrMissingArgs
		}
		if !fileutil.IsRegularFile(positional[0]) {
			return flags, &missingInputError{path: positional[0]}
		}
	}

	if flags.verbose {
		warnUnknownEnvVars(env.Stderr)
	}

	cfg, err := loadConfig(flags, loadEnvConfig())
	if err != nil {
		return flags, err
	}
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return flags, err
	}

	if flags.printConfig {
		return flags, printConfig(env.Stdout, cfg)
	}

	return flags, convertFile(positional[0], positional[1], cfg, flags.verbose, env)
}

// loadConfig loads the config named by --config, then MARKDOWN2HTML_CONFIG,
// and applies environment overrides. No name means defaults.
func loadConfig(flags *cliFlags, env *envConfig) (*config.Config, error) {
	name := flags.config
	if name == "" {
		name = env.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		var err error
		cfg, err = config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(configCandidates(name)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(env, cfg)
	return cfg, nil
}

// configCandidates returns the paths searched for a config name.
func configCandidates(name string) []string {
	if fileutil.IsFilePath(name) {
		return nil
	}
	return config.SearchPaths(name)
}

// mergeFlags applies explicitly set flags over cfg.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.breaksSet {
		cfg.Convert.BlankLineBreaks = flags.breaks
	}
	if flags.standaloneSet {
		cfg.Output.Standalone = flags.standalone
	}
	if flags.title != "" {
		cfg.Output.Title = flags.title
	}
	if flags.style != "" {
		cfg.Output.Style = flags.style
	}
	if flags.assetPath != "" {
		cfg.Assets.BasePath = flags.assetPath
	}
}

// printConfig writes the effective configuration as YAML.
func printConfig(w io.Writer, cfg *config.Config) error {
	data, err := yamlutil.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("printing config: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// buildOptions maps the effective configuration to converter options.
// The style is only resolved for standalone output.
func buildOptions(cfg *config.Config) []markdown2html.Option {
	opts := []markdown2html.Option{
		markdown2html.WithBlankLineBreaks(cfg.Convert.BlankLineBreaks),
		markdown2html.WithStandalone(cfg.Output.Standalone),
	}
	if cfg.Output.Standalone {
		opts = append(opts,
			markdown2html.WithStyle(cfg.Output.Style),
			markdown2html.WithAssetPath(cfg.Assets.BasePath),
		)
	}
	return opts
}

// convertFile reads inputPath, converts it and writes outputPath.
func convertFile(inputPath, outputPath string, cfg *config.Config, verbose bool, env *Environment) error {
	conv, err := markdown2html.NewConverter(buildOptions(cfg)...)
	if err != nil {
		if errors.Is(err, assets.ErrStyleNotFound) {
			return fmt.Errorf("%w%s", err, hints.ForStyleNotFound(assets.NewEmbeddedLoader().ListStyles()))
		}
		return err
	}

	start := env.Now()
	lines, err := fileutil.ReadLines(inputPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}
	logf(env, verbose, "read %d lines from %s (%v)", len(lines), inputPath, env.Now().Sub(start).Round(time.Microsecond))

	start = env.Now()
	result := conv.Convert(markdown2html.Input{Lines: lines, Title: cfg.Output.Title})
	logf(env, verbose, "converted %d fragments (%v)", len(result.Fragments), env.Now().Sub(start).Round(time.Microsecond))

	if err := fileutil.WriteFile(outputPath, string(result.HTML)); err != nil {
		return fmt.Errorf("%w: %v%s", ErrWriteHTML, err, hints.ForOutputDirectory())
	}
	logf(env, verbose, "wrote %d bytes to %s", len(result.HTML), outputPath)

	return nil
}

// logf writes a progress line to stderr when verbose is set.
func logf(env *Environment, verbose bool, format string, args ...any) {
	if !verbose {
		return
	}
	fmt.Fprintf(env.Stderr, format+"\n", args...)
}

// reportError writes err to w in the form users expect for each failure.
func reportError(w io.Writer, err error, verbose bool) {
	var missing *missingInputError
	switch {
	case errors.Is(err, ErrMissingArgs):
		fmt.Fprintln(w, usageLine)
	case errors.As(err, &missing):
		if verbose {
			fmt.Fprintln(w, missing.Error()+hints.ForMissingInput(missing.path))
			return
		}
		fmt.Fprintln(w, missing.Error())
	case errors.Is(err, ErrInvalidFlag):
		fmt.Fprintln(w, err)
		fmt.Fprintln(w, usageLine)
	default:
		fmt.Fprintln(w, err)
	}
}
