package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_DumpAST(t *testing.T) {
	prog := branch(KindProgram, assignNode("a", intLit(1)))

	var out strings.Builder
	require.NoError(t, DumpAST(&out, prog))

	dump := out.String()
	assert.Contains(t, dump, "Program")
	assert.Contains(t, dump, "Assignment")
	assert.Contains(t, dump, "Identifier a")
	assert.Contains(t, dump, "IntLit 1")
}

func Test_QuoteLabel_EscapesControlRunes(t *testing.T) {
	assert.Equal(t, "a", quoteLabel("a"))
	assert.NotEqual(t, "\t", quoteLabel("\t"), "a raw tab must not pass through unescaped")
}
