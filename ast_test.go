package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Node_FirstName(t *testing.T) {
	name, ok := refNode("foo").firstName()
	assert.True(t, ok)
	assert.Equal(t, "foo", name)

	_, ok = branch(KindRef, leaf(KindUpvalue)).firstName()
	assert.False(t, ok, "Upvalue is not a plain name")

	_, ok = intLit(1).firstName()
	assert.False(t, ok, "not a Ref node at all")
}

func Test_NodeKind_String(t *testing.T) {
	assert.Equal(t, "Block", KindBlock.String())
	assert.Equal(t, "Assignment", KindAssignment.String())
	assert.Contains(t, NodeKind(999).String(), "999")
}
