package main

import (
	"bytes"
	"context"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test_Examples runs every testdata/*.xo program and compares its stdout
// against the matching testdata/*.expected golden file, regenerated by
// scripts/gen_examples.go.
func Test_Examples(t *testing.T) {
	sources, err := filepath.Glob("testdata/*.xo")
	require.NoError(t, err)
	require.NotEmpty(t, sources)

	for _, src := range sources {
		src := src
		name := strings.TrimSuffix(filepath.Base(src), ".xo")
		t.Run(name, func(t *testing.T) {
			want, err := ioutil.ReadFile(strings.TrimSuffix(src, ".xo") + ".expected")
			require.NoError(t, err)

			prog, err := ioutil.ReadFile(src)
			require.NoError(t, err)

			var out bytes.Buffer
			it := New(WithInput(bytes.NewReader(prog)), WithOutput(&out))
			require.NoError(t, it.Run(context.Background()))
			assert.Equal(t, string(want), out.String())
		})
	}
}

func Test_ErrorScenarios(t *testing.T) {
	for _, tc := range []struct {
		name    string
		src     string
		wantErr interface{}
	}{
		{
			name:    "read of never-assigned top-level name is unassigned",
			src:     `a := b`,
			wantErr: &UnassignedVariableError{},
		},
		{
			name:    "write past a saturated store's declared domain is undefined",
			src:     `r := { a := 1 } r.c := 2`,
			wantErr: &UndefinedVariableError{},
		},
		{
			name:    "write to a non-pending name while other names remain pending is unresolved",
			src:     `r := { a := b c := b } r.a := 5`,
			wantErr: &UnresolvedStoreError{},
		},
		{
			name:    "upvalue at the top level has no enclosing store",
			src:     `a := ^`,
			wantErr: &TypeError{},
		},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			it := New(WithInput(strings.NewReader(tc.src)), WithOutput(&out))
			err := it.Run(context.Background())
			require.Error(t, err)
			assert.IsType(t, tc.wantErr, err)
		})
	}
}

// Test_StepLimit checks that a program needing more evaluation steps than
// the configured limit stops with a StepLimitError: every evaluated node
// costs one step, so a limit of 2 is exceeded by the first assignment's
// right-hand side (Program, Assignment, then IntLit).
func Test_StepLimit(t *testing.T) {
	var out bytes.Buffer
	it := New(WithInput(strings.NewReader(`a := 1 b := 2 c := 3 print a print b print c`)), WithOutput(&out), WithStepLimit(2))
	err := it.Run(context.Background())
	require.Error(t, err)
	assert.IsType(t, &StepLimitError{}, err)
}
