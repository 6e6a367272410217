package main

import (
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(run(os.Args, DefaultEnv()))
}

// run dispatches the command line and returns the process exit code.
// A first argument that is not a known command runs generate.
func run(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]
	switch cmd {
	case "generate":
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "proposal %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		runHelp(rest, env)
		return ExitSuccess
	case "completion":
		return report(runCompletion(rest, env), env)
	case "config":
		return report(runConfig(rest, env), env)
	default:
		rest = args[1:]
	}

	flags, positional, err := parseGenerateFlags(rest, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		return report(fmt.Errorf("%w: %v", ErrUsage, err), env)
	}

	log := newLogger(flags.common, env)

	// maxprocs.Set only fails on an invalid GOMAXPROCS value, in which case
	// the runtime default stays in place.
	_, _ = maxprocs.Set(maxprocs.Logger(log.Debugf))

	ctx, stop := notifyContext(env.Context)
	defer stop()

	return report(runGenerate(ctx, positional, flags, env, log), env)
}

// report prints err, if any, and maps it to an exit code.
func report(err error, env *Environment) int {
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
	}
	return exitCodeFor(err)
}
