package main

import "strconv"

// ValueKind discriminates the two runtime value variants of §3: Integer and
// Store.
type ValueKind int

const (
	KindInteger ValueKind = iota
	KindStoreRef
)

// Value is the sum type every expression evaluates to: an Integer or a
// reference to a Store.
type Value struct {
	Kind  ValueKind
	Int   int64
	Store *Store
}

func intValue(n int64) Value        { return Value{Kind: KindInteger, Int: n} }
func storeValue(s *Store) Value     { return Value{Kind: KindStoreRef, Store: s} }
func (v Value) isStore() bool       { return v.Kind == KindStoreRef }
func (v Value) isInteger() bool     { return v.Kind == KindInteger }

// Store is a named variable environment, used both as a lexical frame and
// as a first-class runtime value (§3). Its invariants:
//
//   - assignments.keys ⊆ variables; pending ⊆ variables
//   - pending ∩ assignments.keys = ∅ (a name leaves pending the moment it's
//     written)
//   - a store with a body fires exactly once, the instant pending first
//     becomes empty
//   - |pending| is non-increasing
type Store struct {
	order       []string
	variables   map[string]struct{}
	assignments map[string]Value
	pending     map[string]struct{}

	// enclosing is the lexical frame active when this store's defining
	// block was evaluated, captured by reference at construction time (not
	// re-resolved at fire time). Resolves Upvalue ("^") references. Nil for
	// the top-level program store.
	enclosing *Store

	// run is the deferred block body; nil for a plain record store (no
	// body) or once fired. Invoked with the store itself as the body's
	// environment, so reads inside the body see the newly supplied values.
	run func(*Store)

	fired bool

	// dynamic stores (the top-level program store, and the global "$"
	// store) admit writes to names outside their declared domain instead of
	// raising UndefinedVariableError -- spec.md §4.4 describes Program's
	// frame as "a fresh empty mapping", which by construction has no
	// pre-analysed domain the way a Block's used/assigned sets give it one.
	dynamic bool

	// autoZero stores default an unread, never-assigned name to Integer 0
	// instead of raising UnassignedVariableError/UndefinedVariableError.
	// Used only by the well-known "$" global store (see SPEC_FULL.md's
	// resolved Dollar semantics), modeled on the teacher's FIRST memory
	// cells, which likewise default to 0 until written.
	autoZero bool
}

// newStore builds a store with the given declared domain and initial
// pending set, capturing enclosing for Upvalue resolution and run as its
// deferred body (nil for a plain record). Per the original_source Python
// reference's MalingeringStore constructor, a store whose pending set is
// already empty fires immediately, during construction.
func newStore(domain, pendingNames []string, enclosing *Store, run func(*Store)) *Store {
	s := &Store{
		order:       append([]string(nil), domain...),
		variables:   toSet(domain),
		assignments: make(map[string]Value, len(domain)),
		pending:     toSet(pendingNames),
		enclosing:   enclosing,
		run:         run,
	}
	s.checkDrain()
	return s
}

// newRecordStore builds the store used for a saturated block's own frame: a
// fresh mapping over domain with nothing pending, so the evaluator can
// assign and reassign its names freely while executing the block's
// statements in order (§4.4: "create a fresh empty mapping, evaluate each
// statement in it"). Reads of a not-yet-assigned name still fail, via
// Get's assignments-presence check, not via pending.
func newRecordStore(domain []string, enclosing *Store) *Store {
	return newStore(domain, nil, enclosing, nil)
}

// newDynamicStore builds an un-analysed mapping that grows as names are
// written to it: the top-level program frame, or (with autoZero set
// separately) the well-known global "$" store.
func newDynamicStore() *Store {
	s := newStore(nil, nil, nil, nil)
	s.dynamic = true
	return s
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

// checkDrain fires the store's body (if any) the instant pending first
// becomes empty. fired flips false->true exactly once, simultaneously with
// run transitioning from present to nil (invariant 2, §8).
func (s *Store) checkDrain() {
	if s.fired || len(s.pending) != 0 {
		return
	}
	s.fired = true
	run := s.run
	s.run = nil
	if run != nil {
		run(s)
	}
}

// Get implements the store read rules of §4.4: undefined if the name isn't
// declared (unless this is a dynamic/autoZero store), unassigned if it has
// no recorded value yet (whether still formally pending, or simply never
// written in execution order -- see SPEC_FULL.md's resolved over-counting
// policy).
func (s *Store) Get(name string) (Value, error) {
	if _, declared := s.variables[name]; !declared {
		if s.autoZero {
			s.declare(name)
			return s.assignments[name], nil
		}
		if s.dynamic {
			// A dynamic store's domain is implicitly "any name"; a read
			// of a name it has never seen admits it as declared but
			// unassigned, rather than undefined (§8's "a := b with no
			// prior b raises UnassignedVariable").
			s.variables[name] = struct{}{}
			s.order = append(s.order, name)
			return Value{}, &UnassignedVariableError{Name: name}
		}
		return Value{}, &UndefinedVariableError{Name: name}
	}
	v, assigned := s.assignments[name]
	if !assigned {
		return Value{}, &UnassignedVariableError{Name: name}
	}
	return v, nil
}

// Set implements the complete write-protocol table of §4.4.
func (s *Store) Set(name string, v Value) error {
	if _, declared := s.variables[name]; !declared {
		if !s.dynamic {
			return &UndefinedVariableError{Name: name}
		}
		s.variables[name] = struct{}{}
		s.order = append(s.order, name)
	}

	if _, pending := s.pending[name]; pending {
		s.assignments[name] = v
		delete(s.pending, name)
		s.checkDrain()
		return nil
	}

	if len(s.pending) != 0 {
		return &UnresolvedStoreError{Name: name}
	}

	s.assignments[name] = v
	return nil
}

func (s *Store) declare(name string) {
	s.variables[name] = struct{}{}
	s.order = append(s.order, name)
	s.assignments[name] = intValue(0)
}

// copyStore implements CopyOf's semantics (§4.4): same variables, same
// pending, same body, a fresh assignments map copied by value. Store
// identity is never shared between the copy and the original (invariant 5,
// §8).
func copyStore(s *Store) *Store {
	cp := &Store{
		order:       append([]string(nil), s.order...),
		variables:   toSet(s.order),
		assignments: make(map[string]Value, len(s.assignments)),
		pending:     make(map[string]struct{}, len(s.pending)),
		enclosing:   s.enclosing,
		run:         s.run,
		fired:       s.fired,
		dynamic:     s.dynamic,
		autoZero:    s.autoZero,
	}
	for k, v := range s.assignments {
		cp.assignments[k] = v
	}
	for k := range s.pending {
		cp.pending[k] = struct{}{}
	}
	return cp
}

// render produces the stable, parser-agnostic textual form of a store used
// by `print`: "[a=1,b=?]", assigned names showing their value and
// never-written names showing "?", in declaration order (§9 Open Question).
func (s *Store) render() string {
	var buf []byte
	buf = append(buf, '[')
	for i, name := range s.order {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, name...)
		buf = append(buf, '=')
		if v, ok := s.assignments[name]; ok {
			buf = append(buf, renderValue(v)...)
		} else {
			buf = append(buf, '?')
		}
	}
	buf = append(buf, ']')
	return string(buf)
}

// renderValue renders a runtime Value for `print`: decimal for Integer,
// store rendering (recursive) for Store.
func renderValue(v Value) string {
	if v.isStore() {
		return v.Store.render()
	}
	return strconv.FormatInt(v.Int, 10)
}
