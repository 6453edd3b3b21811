package main

import (
	"fmt"
	"io"
	"strings"

	"xoomonk/internal/runeio"
)

// DumpAST writes a structural, indented dump of program to w, for the
// --show-ast flag -- the structural-tree analogue of the teacher's memory
// dumper, walking the tagged AST instead of a flat address space.
func DumpAST(w io.Writer, n *Node) error {
	return dumpNode(w, n, 0)
}

func dumpNode(w io.Writer, n *Node, depth int) error {
	indent := strings.Repeat("  ", depth)
	label := n.Kind.String()
	switch n.Kind {
	case KindIntLit:
		label = fmt.Sprintf("%s %d", label, n.Int)
	case KindIdentifier, KindDollar:
		label = fmt.Sprintf("%s %s", label, quoteLabel(n.Str))
	case KindPrintString:
		label = fmt.Sprintf("%s %q", label, n.Str)
	}
	if _, err := fmt.Fprintf(w, "%s%s\n", indent, label); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := dumpNode(w, c, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// quoteLabel renders an identifier for --show-ast, escaping any control
// character via the runeio caret-form table rather than emitting it raw.
func quoteLabel(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if caret := runeio.CaretForm(r); caret != "" {
			sb.WriteString(caret)
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
