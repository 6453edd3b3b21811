package main

import "fmt"

// NodeKind discriminates the closed set of AST node shapes. A Node is a
// tagged value, never an open "node with children" -- every kind below has a
// fixed, checked arity, enforced by the parser rather than by N separate Go
// types (see SPEC_FULL.md's "C1 AST" entry for why).
type NodeKind int

const (
	KindProgram NodeKind = iota
	KindAssignment
	KindBlock
	KindRef
	KindIdentifier
	KindUpvalue
	KindDollar
	KindIntLit
	KindCopyOf
	KindPrint
	KindPrintChar
	KindPrintString
	KindNewline
)

func (k NodeKind) String() string {
	switch k {
	case KindProgram:
		return "Program"
	case KindAssignment:
		return "Assignment"
	case KindBlock:
		return "Block"
	case KindRef:
		return "Ref"
	case KindIdentifier:
		return "Identifier"
	case KindUpvalue:
		return "Upvalue"
	case KindDollar:
		return "Dollar"
	case KindIntLit:
		return "IntLit"
	case KindCopyOf:
		return "CopyOf"
	case KindPrint:
		return "Print"
	case KindPrintChar:
		return "PrintChar"
	case KindPrintString:
		return "PrintString"
	case KindNewline:
		return "Newline"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Node is the single AST representation for every Xoomonk construct: a kind
// tag plus either an ordered list of Children, or a leaf value (Int for
// KindIntLit, Str for KindIdentifier/KindDollar/KindPrintString). Nodes are
// immutable once built by the parser; Children is never reordered or mutated
// in place afterward.
type Node struct {
	Kind     NodeKind
	Children []*Node
	Int      int64
	Str      string
}

func leaf(kind NodeKind) *Node                    { return &Node{Kind: kind} }
func intLit(v int64) *Node                        { return &Node{Kind: KindIntLit, Int: v} }
func strLeaf(kind NodeKind, s string) *Node       { return &Node{Kind: kind, Str: s} }
func branch(kind NodeKind, children ...*Node) *Node {
	return &Node{Kind: kind, Children: children}
}

// firstName returns the leading name of a Ref node's child list, per §4.3:
// "every Ref node's first name encountered". ok is false if n is not a Ref
// or its first child isn't a plain Identifier (Upvalue/Dollar are excluded
// from analysis).
func (n *Node) firstName() (name string, ok bool) {
	if n.Kind != KindRef || len(n.Children) == 0 {
		return "", false
	}
	first := n.Children[0]
	if first.Kind != KindIdentifier {
		return "", false
	}
	return first.Str, true
}
