// SPDX-License-Identifier: MIT

// Command tensorctl keeps a workspace of named sparse tensors and multiplies
// them with the five convolved-product methods.
//
//	tensorctl [global flags] <command> [command flags]
//
// Exit status is 0 on success, 1 on runtime errors and 2 on usage errors.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"github.com/katalvlaran/lvtensor/session"
	"github.com/katalvlaran/lvtensor/store"
	"github.com/prometheus/client_golang/prometheus"
)

const version = "v0.1.0"

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// errUsage marks command-line mistakes (exit status 2).
var errUsage = errors.New("usage error")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// env is what every command receives.
type env struct {
	ctx    context.Context
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	db     store.Workspace
	runner *session.Runner
}

type command struct {
	name    string
	summary string
	needsDB bool
	run     func(e *env, args []string) error
}

var commands = []command{
	{"random", "create a random tensor", true, cmdRandom},
	{"sequential", "create a tensor holding 1, 2, 3, … in row-major order", true, cmdSequential},
	{"load", "read a tensor in bracket notation from a file or stdin", true, cmdLoad},
	{"show", "print a tensor in bracket notation", true, cmdShow},
	{"shape", "print a tensor's rank, entry count and shape", true, cmdShape},
	{"multiply", "contract two stored tensors", true, cmdMultiply},
	{"list", "list stored tensors", true, cmdList},
	{"rm", "delete a stored tensor", true, cmdRemove},
	{"methods", "describe the contraction methods", false, cmdMethods},
	{"version", "print the version", false, cmdVersion},
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	global := flag.NewFlagSet("tensorctl", flag.ContinueOnError)
	global.SetOutput(stderr)
	var (
		dbDir       = global.String("db", ".tensorctl", "workspace: a Badger directory, or sqlite:<file>")
		logLevel    = global.String("log-level", "warn", "log level: debug, info, warn, error")
		metricsFile = global.String("metrics-file", "", "write Prometheus metrics to this textfile on exit")
	)
	global.Usage = func() { usage(global) }
	if err := global.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}

		return exitUsage
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(stderr, "tensorctl: -log-level: %v\n", err)

		return exitUsage
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	rest := global.Args()
	if len(rest) == 0 {
		usage(global)

		return exitUsage
	}
	cmd, ok := lookup(rest[0])
	if !ok {
		fmt.Fprintf(stderr, "tensorctl: unknown command %q\n", rest[0])
		usage(global)

		return exitUsage
	}

	reg := prometheus.NewRegistry()
	runner, err := session.New(session.WithLogger(logger), session.WithRegisterer(reg))
	if err != nil {
		fmt.Fprintf(stderr, "tensorctl: %v\n", err)

		return exitError
	}
	e := &env{ctx: ctx, stdin: stdin, stdout: stdout, stderr: stderr, runner: runner}
	if cmd.needsDB {
		db, err := store.OpenWorkspace(*dbDir, store.WithLogger(logger))
		if err != nil {
			fmt.Fprintf(stderr, "tensorctl: %v\n", err)

			return exitError
		}
		defer db.Close()
		e.db = db
	}

	code := exitOK
	if err = cmd.run(e, rest[1:]); err != nil {
		code = exitError
		switch {
		case errors.Is(err, flag.ErrHelp):
			code = exitOK
		case errors.Is(err, errUsage):
			fmt.Fprintf(stderr, "tensorctl %s: %v\n", cmd.name, err)
			code = exitUsage
		default:
			fmt.Fprintf(stderr, "tensorctl %s: %v\n", cmd.name, err)
		}
	}

	if *metricsFile != "" {
		if err = prometheus.WriteToTextfile(*metricsFile, reg); err != nil {
			fmt.Fprintf(stderr, "tensorctl: metrics: %v\n", err)
			if code == exitOK {
				code = exitError
			}
		}
	}

	return code
}

func lookup(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}

	return command{}, false
}

func usage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintf(w, "Usage: tensorctl [global flags] <command> [flags]\n\nCommands:\n")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-11s %s\n", c.name, c.summary)
	}
	fmt.Fprintf(w, "\nGlobal flags:\n")
	fs.PrintDefaults()
}

func cmdVersion(e *env, _ []string) error {
	fmt.Fprintf(e.stdout, "tensorctl %s (%s)\n", version, runtime.Version())

	return nil
}
