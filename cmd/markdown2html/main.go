package main

import (
	"fmt"
	"os"
	"time"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain runs the CLI and returns the process exit code.
// Errors are reported on env.Stderr; a successful run writes nothing.
func runMain(args []string, env *Environment) int {
	start := env.Now()

	opts, err := run(args, env)
	if err != nil {
		reportError(env.Stderr, err, opts != nil && opts.verbose)
		return exitCodeFor(err)
	}

	if opts != nil && opts.verbose {
		fmt.Fprintf(env.Stderr, "done in %v\n", env.Now().Sub(start).Round(time.Millisecond))
	}
	return ExitSuccess
}
