package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func refNode(name string) *Node { return branch(KindRef, strLeaf(KindIdentifier, name)) }

func assignNode(name string, rhs *Node) *Node {
	return branch(KindAssignment, refNode(name), rhs)
}

func Test_Analyse_PendingExcludesAssignedNames(t *testing.T) {
	// { y := x }: x is free, y is assigned and never read.
	stmts := []*Node{assignNode("y", refNode("x"))}
	a := analyse(stmts)
	assert.Equal(t, []string{"x"}, a.pending())
	assert.ElementsMatch(t, []string{"x", "y"}, a.domain())
}

func Test_Analyse_SelfAssignmentIsNeverPending(t *testing.T) {
	// { x := 1  y := x }: x is both assigned and used, so it can never be
	// pending regardless of read order.
	stmts := []*Node{
		assignNode("x", intLit(1)),
		assignNode("y", refNode("x")),
	}
	a := analyse(stmts)
	assert.Empty(t, a.pending())
}

func Test_Analyse_NestedBlockDoesNotLeakFreeVariables(t *testing.T) {
	// { s := { u := ^ } }: the nested block's own free variables (none here,
	// since ^ isn't a plain name) must not promote anything into the outer
	// block's used set.
	inner := branch(KindBlock, assignNode("u", branch(KindRef, leaf(KindUpvalue))))
	stmts := []*Node{assignNode("s", inner)}
	a := analyse(stmts)
	assert.Empty(t, a.pending())
	assert.Equal(t, []string{"s"}, a.assigned)
}

func Test_Analyse_DottedRefOnlyCountsLeadingName(t *testing.T) {
	stmts := []*Node{
		assignNode("z", branch(KindRef, strLeaf(KindIdentifier, "r"), strLeaf(KindIdentifier, "y"))),
	}
	a := analyse(stmts)
	assert.Equal(t, []string{"r"}, a.pending())
}
