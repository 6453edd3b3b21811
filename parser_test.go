package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xoomonk/internal/fileinput"
)

func parse(t *testing.T, src string) *Node {
	t.Helper()
	in := &fileinput.Input{}
	in.Queue = append(in.Queue, strings.NewReader(src))
	prog, err := NewParser(NewScanner(in)).ParseProgram()
	require.NoError(t, err)
	return prog
}

func Test_Parser_Assignment(t *testing.T) {
	prog := parse(t, `a := 1`)
	require.Len(t, prog.Children, 1)
	stmt := prog.Children[0]
	assert.Equal(t, KindAssignment, stmt.Kind)
	assert.Equal(t, KindRef, stmt.Children[0].Kind)
	assert.Equal(t, KindIdentifier, stmt.Children[0].Children[0].Kind)
	assert.Equal(t, "a", stmt.Children[0].Children[0].Str)
	assert.Equal(t, KindIntLit, stmt.Children[1].Kind)
	assert.Equal(t, int64(1), stmt.Children[1].Int)
}

func Test_Parser_DottedRefAndUpvalue(t *testing.T) {
	prog := parse(t, `a.b.c := ^`)
	target := prog.Children[0].Children[0]
	require.Len(t, target.Children, 3)
	assert.Equal(t, "a", target.Children[0].Str)
	assert.Equal(t, "b", target.Children[1].Str)
	assert.Equal(t, "c", target.Children[2].Str)

	rhs := prog.Children[0].Children[1]
	assert.Equal(t, KindRef, rhs.Kind)
	assert.Equal(t, KindUpvalue, rhs.Children[0].Kind)
}

func Test_Parser_Dollar(t *testing.T) {
	prog := parse(t, `a := $n`)
	rhs := prog.Children[0].Children[1]
	assert.Equal(t, KindDollar, rhs.Children[0].Kind)
	assert.Equal(t, "n", rhs.Children[0].Str)
}

func Test_Parser_CopyOf(t *testing.T) {
	prog := parse(t, `a := b*`)
	rhs := prog.Children[0].Children[1]
	assert.Equal(t, KindCopyOf, rhs.Kind)
	assert.Equal(t, KindRef, rhs.Children[0].Kind)
}

func Test_Parser_Block(t *testing.T) {
	prog := parse(t, `r := { a := 1 b := a }`)
	rhs := prog.Children[0].Children[1]
	assert.Equal(t, KindBlock, rhs.Kind)
	require.Len(t, rhs.Children, 2)
}

func Test_Parser_PrintVariants(t *testing.T) {
	prog := parse(t, `print 1
print char 65
print string "hi"
print 2;
`)
	require.Len(t, prog.Children, 4)

	assert.Equal(t, KindNewline, prog.Children[0].Kind)
	assert.Equal(t, KindPrint, prog.Children[0].Children[0].Kind)

	assert.Equal(t, KindNewline, prog.Children[1].Kind)
	assert.Equal(t, KindPrintChar, prog.Children[1].Children[0].Kind)

	assert.Equal(t, KindNewline, prog.Children[2].Kind)
	assert.Equal(t, KindPrintString, prog.Children[2].Children[0].Kind)
	assert.Equal(t, "hi", prog.Children[2].Children[0].Str)

	assert.Equal(t, KindPrint, prog.Children[3].Kind, "a trailing ';' suppresses the Newline wrap")
}

func Test_Parser_UnterminatedBlockIsSyntaxError(t *testing.T) {
	in := &fileinput.Input{}
	in.Queue = append(in.Queue, strings.NewReader(`r := { a := 1`))
	_, err := NewParser(NewScanner(in)).ParseProgram()
	require.Error(t, err)
	assert.IsType(t, &SyntaxError{}, err)
}

func Test_Parser_MissingNameIsSyntaxError(t *testing.T) {
	in := &fileinput.Input{}
	in.Queue = append(in.Queue, strings.NewReader(`:= 1`))
	_, err := NewParser(NewScanner(in)).ParseProgram()
	require.Error(t, err)
	assert.IsType(t, &SyntaxError{}, err)
}
