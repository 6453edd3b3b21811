package main

// analysis holds the used/assigned variable sets for a block (§4.3),
// together with their encounter order so pending/declared-domain slices stay
// deterministic rather than depending on Go's map iteration order.
type analysis struct {
	used     []string
	assigned []string
}

// analyse computes used(B) and assigned(B) for a block's direct statement
// list, without walking into nested blocks (a nested block's own free
// variables are its own concern, resolved when it is entered). Both sets are
// computed by a single pure walk with no memoization: a Block node is
// analysed again each time evaluation reaches it, which happens more than
// once only when a copied malingering store fires the same body again.
func analyse(stmts []*Node) analysis {
	a := &analysis{}
	seenUsed := map[string]bool{}
	seenAssigned := map[string]bool{}
	for _, stmt := range stmts {
		a.walkStmt(stmt, seenUsed, seenAssigned)
	}
	return *a
}

func (a *analysis) walkStmt(n *Node, seenUsed, seenAssigned map[string]bool) {
	switch n.Kind {
	case KindAssignment:
		target, rhs := n.Children[0], n.Children[1]
		if name, ok := target.firstName(); ok && !seenAssigned[name] {
			seenAssigned[name] = true
			a.assigned = append(a.assigned, name)
		}
		a.walkExpr(target, seenUsed, seenAssigned)
		a.walkExpr(rhs, seenUsed, seenAssigned)

	default:
		a.walkExpr(n, seenUsed, seenAssigned)
	}
}

func (a *analysis) walkExpr(n *Node, seenUsed, seenAssigned map[string]bool) {
	switch n.Kind {
	case KindRef:
		if name, ok := n.firstName(); ok && !seenUsed[name] {
			seenUsed[name] = true
			a.used = append(a.used, name)
		}

	case KindCopyOf, KindPrintChar:
		a.walkExpr(n.Children[0], seenUsed, seenAssigned)

	case KindPrint:
		a.walkExpr(n.Children[0], seenUsed, seenAssigned)

	case KindNewline:
		a.walkStmt(n.Children[0], seenUsed, seenAssigned)

	case KindBlock:
		// A nested block's free variables belong to its own entry
		// decision; walking into it here would wrongly promote the
		// outer block's pending set with names the inner block
		// resolves itself.

	case KindIntLit, KindPrintString, KindIdentifier, KindUpvalue, KindDollar:
		// Leaves; nothing to record.

	default:
		for _, c := range n.Children {
			a.walkExpr(c, seenUsed, seenAssigned)
		}
	}
}

// pending returns used \ assigned, in used's encounter order, per §4.4's
// block-entry rule.
func (a analysis) pending() []string {
	assignedSet := toSet(a.assigned)
	var out []string
	for _, name := range a.used {
		if _, ok := assignedSet[name]; !ok {
			out = append(out, name)
		}
	}
	return out
}

// domain returns used ∪ assigned, in the order used then newly-seen assigned
// names, forming the malingering store's declared variable set per §4.4.
func (a analysis) domain() []string {
	seen := map[string]bool{}
	var out []string
	for _, name := range a.used {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	for _, name := range a.assigned {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}
