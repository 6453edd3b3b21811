package main

import (
	"fmt"
	"io"
	"strings"

	"xoomonk/internal/fileinput"
	"xoomonk/internal/flushio"
	"xoomonk/internal/runeio"
)

// Core bundles the interpreter's I/O and logging plumbing: source reading
// (fileinput.Input), output flushing (flushio.WriteFlusher), and leveled
// logf, shared by the scanner (for diagnostics) and evaluator (for print…
// and --trace output).
type Core struct {
	logging
	fileinput.Input
	out     flushio.WriteFlusher
	closers []io.Closer
}

func (core *Core) Close() (err error) {
	for i := len(core.closers) - 1; i >= 0; i-- {
		if cerr := core.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// halt flushes output, logs the error, then panics with it wrapped in
// haltError -- the one exit from deep inside evaluation (notably a
// malingering store's body, fired from inside Store.Set with no error
// return path of its own) back up to Run's recover boundary.
func (core *Core) halt(err error) {
	func() {
		defer func() { recover() }()
		if core.out != nil {
			if ferr := core.out.Flush(); err == nil {
				err = ferr
			}
		}
	}()

	func() {
		defer func() { recover() }()
		core.logf("#", "halt error: %v", err)
	}()

	panic(haltError{err})
}

func (core *Core) writeRune(r rune) error {
	if _, err := runeio.WriteANSIRune(core.out, r); err != nil {
		return err
	}
	return nil
}

func (core *Core) writeString(s string) error {
	for _, r := range s {
		if err := core.writeRune(r); err != nil {
			return err
		}
	}
	return nil
}

type haltError struct{ error }

func (err haltError) Error() string {
	if err.error != nil {
		return fmt.Sprintf("halted: %v", err.error)
	}
	return "halted"
}
func (err haltError) Unwrap() error { return err.error }

type logging struct {
	logfn func(mess string, args ...interface{})

	markWidth int
}

func (log *logging) withLogPrefix(prefix string) func() {
	logfn := log.logfn
	log.logfn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() {
		log.logfn = logfn
	}
}

func (log logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		for _, r := range mark {
			mark = strings.Repeat(string(r), n) + mark
			break
		}
	} else if n < 0 {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
