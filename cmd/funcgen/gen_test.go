package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func declNames(t *testing.T, src []byte) map[string]bool {
	t.Helper()
	file, err := parser.ParseFile(token.NewFileSet(), "gen.go", src, 0)
	require.NoError(t, err)

	names := map[string]bool{}
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			names[d.Name.Name] = true
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				if ts, ok := spec.(*ast.TypeSpec); ok {
					names[ts.Name.Name] = true
				}
			}
		}
	}
	return names
}

func TestRender_Func(t *testing.T) {
	src, err := render("func", "fn", 3)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(src), "// Code generated by funcgen. DO NOT EDIT."))
	names := declNames(t, src)
	for _, name := range []string{
		"Function1", "Func1", "Curried1", "Adapt1", "Lift1", "Untupled1", "curried1", "tupled1",
		"Func3", "Curried3", "curried3", "tupled3",
	} {
		assert.True(t, names[name], name)
	}
	assert.False(t, names["Func4"])

	assert.Contains(t, string(src), "type Curried3[T1, T2, T3, R any] func(T1) Curried2[T2, T3, R]")
	assert.Contains(t, string(src), "type Curried1[T1, R any] func(T1) R")
	assert.Contains(t, string(src), "return c(t1)(t2)(t3)")
}

func TestRender_Tuple(t *testing.T) {
	src, err := render("tuple", "tuple", 10)
	require.NoError(t, err)

	names := declNames(t, src)
	assert.True(t, names["Tuple10"])
	assert.True(t, names["FromSlice10"])
	assert.Contains(t, string(src), "\tV1  T1\n")
	assert.Contains(t, string(src), "\tV10 T10\n")
	assert.Contains(t, string(src), "func (t Tuple1[T1]) Values() T1 {")
}

func TestRender_Errors(t *testing.T) {
	_, err := render("curry", "fn", 3)
	assert.ErrorIs(t, err, ErrUnknownKind)

	_, err = render("func", "fn", 0)
	assert.ErrorIs(t, err, ErrBadArity)
}

func TestRender_MatchesCheckedInFamilies(t *testing.T) {
	for _, tc := range []struct {
		kind, pkg, path string
	}{
		{"func", "fn", "../../fn/zz_generated.go"},
		{"tuple", "tuple", "../../tuple/zz_generated.go"},
	} {
		t.Run(tc.kind, func(t *testing.T) {
			want, err := render(tc.kind, tc.pkg, 22)
			require.NoError(t, err)
			got, err := os.ReadFile(tc.path)
			require.NoError(t, err)
			assert.Equal(t, string(want), string(got), "%s is stale; run go generate ./...", tc.path)
		})
	}
}

func TestRun_WritesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "zz_generated.go")
	err := run(config{kind: "tuple", out: out, max: 2}, zaptest.NewLogger(t))
	require.NoError(t, err)

	src, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(src), "package tuple\n")
	assert.Contains(t, string(src), "func NewTuple2[T1, T2 any](t1 T1, t2 T2) Tuple2[T1, T2] {")
}

func TestRun_BadOutput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "missing", "zz_generated.go")
	err := run(config{kind: "func", out: out, max: 1}, zaptest.NewLogger(t))
	assert.ErrorContains(t, err, "failed to create")
}
