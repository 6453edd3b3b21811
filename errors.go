package main

import "fmt"

// SyntaxError is raised by the scanner or parser on malformed tokens or
// grammar, quoting the offending lexeme and what was expected (§7).
type SyntaxError struct {
	Loc      string
	Lexeme   string
	Expected string
}

func (err *SyntaxError) Error() string {
	if err.Expected == "" {
		return fmt.Sprintf("%v: syntax error at %q", err.Loc, err.Lexeme)
	}
	return fmt.Sprintf("%v: syntax error: expected %v, got %q", err.Loc, err.Expected, err.Lexeme)
}

// UndefinedVariableError is a read or write to a name not in a store's
// variables domain.
type UndefinedVariableError struct{ Name string }

func (err *UndefinedVariableError) Error() string {
	return fmt.Sprintf("undefined variable %q", err.Name)
}

// UnassignedVariableError is a read of a name still pending (or otherwise
// never yet written) in its store.
type UnassignedVariableError struct{ Name string }

func (err *UnassignedVariableError) Error() string {
	return fmt.Sprintf("unassigned variable %q", err.Name)
}

// UnresolvedStoreError is a write to a name that is declared but not
// pending, while its store still has other pending slots outstanding.
type UnresolvedStoreError struct{ Name string }

func (err *UnresolvedStoreError) Error() string {
	return fmt.Sprintf("attempt to assign unresolved variable %q", err.Name)
}

// TypeError covers dereferencing a non-store through a dotted path, passing
// a store where an integer is required, or using a non-identifier name as
// an assignment target.
type TypeError struct{ Context string }

func (err *TypeError) Error() string {
	return fmt.Sprintf("type error: %v", err.Context)
}

// UnimplementedError indicates an AST kind the evaluator doesn't know how to
// run -- a parser/analyser/evaluator mismatch, never reachable from a
// well-formed parse.
type UnimplementedError struct{ Kind NodeKind }

func (err *UnimplementedError) Error() string {
	return fmt.Sprintf("unimplemented AST node kind %v", err.Kind)
}

// StepLimitError reports that the evaluator's step budget (see
// WithStepLimit) was exceeded, per spec.md §5's allowance for implementations
// to impose a recursion or step budget.
type StepLimitError struct{ Limit uint }

func (err *StepLimitError) Error() string {
	return fmt.Sprintf("step limit of %v exceeded", err.Limit)
}
