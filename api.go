package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/ioutil"

	"xoomonk/internal/flushio"
	"xoomonk/internal/panicerr"
)

// Interpreter owns the ambient I/O/logging Core plus the knobs controlling a
// single Xoomonk run: source input, output sink, and an optional evaluator
// step budget.
type Interpreter struct {
	Core
	stepLimit uint
	showAST   bool
	trace     bool
}

func New(opts ...InterpOption) *Interpreter {
	var it Interpreter
	defaultOptions.apply(&it)
	InterpOptions(opts...).apply(&it)
	return &it
}

// Run parses and evaluates the interpreter's queued input, recovering any
// panic (including a halt triggered deep inside a malingering store's body)
// into a returned error.
func (it *Interpreter) Run(ctx context.Context) error {
	err := panicerr.Recover("Interpreter", func() error {
		return it.run(ctx)
	})
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	var he haltError
	if errors.As(err, &he) {
		err = he.error
	}
	return err
}

func (it *Interpreter) run(ctx context.Context) error {
	sc := NewScanner(&it.Input)
	program, err := NewParser(sc).ParseProgram()
	if err != nil {
		return err
	}
	if it.showAST {
		if err := DumpAST(it.out, program); err != nil {
			return err
		}
	}
	ev := NewEvaluator(&it.Core, it.stepLimit)
	ev.ctx = ctx
	ev.trace = it.trace
	if err := ev.Run(program); err != nil {
		return err
	}
	return it.out.Flush()
}

func WithInput(r io.Reader) InterpOption         { return withInput(r) }
func WithOutput(w io.Writer) InterpOption        { return withOutput(w) }
func WithTee(w io.Writer) InterpOption           { return withTee(w) }
func WithStepLimit(limit uint) InterpOption      { return withStepLimit(limit) }
func WithShowAST(show bool) InterpOption         { return showASTOption(show) }
func WithTrace(trace bool) InterpOption          { return traceOption(trace) }

func WithLogf(logfn func(mess string, args ...interface{})) InterpOption { return withLogfn(logfn) }

type InterpOption interface{ apply(it *Interpreter) }

var defaultOptions = InterpOptions(
	withInput(bytes.NewReader(nil)),
	withOutput(ioutil.Discard),
)

// InterpOptions flattens and combines a variadic option list into one,
// exactly as the teacher's VMOptions combinator did.
func InterpOptions(opts ...InterpOption) InterpOption {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil, noption:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, opt)
		}
	}
	switch len(res) {
	case 0:
		return noption{}
	case 1:
		return res[0]
	default:
		return res
	}
}

type noption struct{}

func (noption) apply(it *Interpreter) {}

type options []InterpOption

func (opts options) apply(it *Interpreter) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(it)
		}
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(it *Interpreter) { it.logfn = logfn }

type inputOption struct{ io.Reader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type stepLimitOption uint
type showASTOption bool
type traceOption bool

func withInput(r io.Reader) inputOption        { return inputOption{r} }
func withOutput(w io.Writer) outputOption      { return outputOption{w} }
func withTee(w io.Writer) teeOption            { return teeOption{w} }
func withStepLimit(limit uint) stepLimitOption { return stepLimitOption(limit) }

func (i inputOption) apply(it *Interpreter) {
	it.Queue = append(it.Queue, i.Reader)
}

func (o outputOption) apply(it *Interpreter) {
	if it.out != nil {
		it.out.Flush()
	}
	it.out = flushio.NewWriteFlusher(o.Writer)
	if cl, ok := o.Writer.(io.Closer); ok {
		it.closers = append(it.closers, cl)
	}
}

func (o teeOption) apply(it *Interpreter) {
	it.out = flushio.WriteFlushers(it.out, flushio.NewWriteFlusher(o.Writer))
	if cl, ok := o.Writer.(io.Closer); ok {
		it.closers = append(it.closers, cl)
	}
}

func (lim stepLimitOption) apply(it *Interpreter) { it.stepLimit = uint(lim) }

func (show showASTOption) apply(it *Interpreter) { it.showAST = bool(show) }

func (tr traceOption) apply(it *Interpreter) { it.trace = bool(tr) }
