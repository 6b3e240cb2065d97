package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/markdown2html/internal/config"
)

// envPrefix marks the environment variables this command reads.
const envPrefix = "MARKDOWN2HTML_"

// envConfig holds configuration from environment variables.
// Nil booleans mean the variable is unset or not a valid boolean.
type envConfig struct {
	ConfigPath string // MARKDOWN2HTML_CONFIG: config file name or path
	Style      string // MARKDOWN2HTML_STYLE: CSS style name or path
	Breaks     *bool  // MARKDOWN2HTML_BREAKS: emit <br /> for blank lines
	Standalone *bool  // MARKDOWN2HTML_STANDALONE: full HTML5 document
}

// knownEnvVars lists valid MARKDOWN2HTML_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MARKDOWN2HTML_CONFIG":     true,
	"MARKDOWN2HTML_STYLE":      true,
	"MARKDOWN2HTML_BREAKS":     true,
	"MARKDOWN2HTML_STANDALONE": true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	return &envConfig{
		ConfigPath: os.Getenv("MARKDOWN2HTML_CONFIG"),
		Style:      os.Getenv("MARKDOWN2HTML_STYLE"),
		Breaks:     envBool("MARKDOWN2HTML_BREAKS"),
		Standalone: envBool("MARKDOWN2HTML_STANDALONE"),
	}
}

// envBool parses a boolean variable. Invalid values are ignored.
func envBool(name string) *bool {
	raw := os.Getenv(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

// warnUnknownEnvVars logs warnings for unrecognized MARKDOWN2HTML_* variables.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies set environment variables over the config file.
// Flags are merged afterwards: flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Style != "" {
		cfg.Output.Style = env.Style
	}
	if env.Breaks != nil {
		cfg.Convert.BlankLineBreaks = *env.Breaks
	}
	if env.Standalone != nil {
		cfg.Output.Standalone = *env.Standalone
	}
}
