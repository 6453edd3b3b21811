// Package main implements xoomonk, an interpreter for the Xoomonk esoteric
// language: a tree-walking evaluator over block-scoped malingering stores,
// variable environments that defer running their attached block body until
// every name it needs from outside has been supplied.
//
// A malingering store is built by entering a block whose free variables
// (used but not locally assigned) are non-empty; it carries the block body
// and fires it, exactly once, the instant the last such variable is written
// from outside. A block with no free variables runs immediately instead and
// returns an ordinary, already-saturated store.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"xoomonk/internal/logio"
)

func main() {
	var (
		stepLimit       uint
		timeout         time.Duration
		trace           bool
		showAST         bool
		raiseExceptions bool
		runTests        bool
	)
	flag.UintVar(&stepLimit, "step-limit", 0, "enable an evaluator step limit")
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flag.BoolVar(&trace, "trace", false, "enable evaluator trace logging")
	flag.BoolVar(&showAST, "show-ast", false, "print a structural dump of the AST before evaluation")
	flag.BoolVar(&raiseExceptions, "raise-exceptions", false, "on runtime error, print a diagnostic rather than a one-line message")
	flag.BoolVar(&runTests, "test", false, "run self-tests and exit")
	flag.Parse()

	log := logio.Logger{}
	log.SetOutput(os.Stderr)

	if runTests {
		os.Exit(runSelfTests(&log))
	}

	path := flag.Arg(0)
	if path == "" {
		fmt.Fprintln(os.Stderr, "usage: xoomonk [flags] <source-file>")
		os.Exit(1)
	}
	f, err := os.Open(path)
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
	defer f.Close()

	it := New(
		WithInput(f),
		WithOutput(os.Stdout),
		WithStepLimit(stepLimit),
		WithShowAST(showAST),
		WithTrace(trace),
		WithLogf(log.Leveledf("TRACE")),
	)

	ctx := context.Background()
	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if err := it.Run(ctx); err != nil {
		reportRuntimeError(os.Stderr, err, raiseExceptions)
		os.Exit(1)
	}
}

// reportRuntimeError prints err per --raise-exceptions: a one-line message
// by default, or the full unwrap chain when raiseExceptions is set.
func reportRuntimeError(w *os.File, err error, raiseExceptions bool) {
	if !raiseExceptions {
		fmt.Fprintf(w, "error: %v\n", err)
		return
	}
	fmt.Fprintln(w, "error:")
	for e := err; e != nil; e = errors.Unwrap(e) {
		fmt.Fprintf(w, "\t%v\n", e)
	}
}
