package main

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"
)

const modulePath = "github.com/on-the-ground/funcompat"

var ErrUnknownKind = fmt.Errorf("unknown family kind")
var ErrBadArity = fmt.Errorf("max arity must be at least 1")

// arity carries the pre-joined fragments a template needs for one member of a family.
type arity struct {
	N, Prev int

	Params    string // T1, T2, T3
	Args      string // t1, t2, t3
	Typed     string // t1 T1, t2 T2, t3 T3
	TailParam string // T2, T3
	TailTyped string // t2 T2, t3 T3
	Chain     string // t1)(t2)(t3
	CastArgs  string // as[T1](args[0]), as[T2](args[1]), ...
	Init      string // V1: t1, V2: t2, ...
	Refs      string // t.V1, t.V2, ...
	Fields    []string
	Slots     []slot
}

type slot struct {
	Field, Param string
	Index        int
}

func newArity(n int) arity {
	a := arity{N: n, Prev: n - 1}
	var params, args, typed, casts, init, refs []string
	for i := 1; i <= n; i++ {
		p, v, f := fmt.Sprintf("T%d", i), fmt.Sprintf("t%d", i), fmt.Sprintf("V%d", i)
		params = append(params, p)
		args = append(args, v)
		typed = append(typed, v+" "+p)
		casts = append(casts, fmt.Sprintf("as[%s](args[%d])", p, i-1))
		init = append(init, f+": "+v)
		refs = append(refs, "t."+f)
		a.Fields = append(a.Fields, f+" "+p)
		a.Slots = append(a.Slots, slot{Field: f, Param: p, Index: i - 1})
	}
	a.Params = strings.Join(params, ", ")
	a.Args = strings.Join(args, ", ")
	a.Typed = strings.Join(typed, ", ")
	a.TailParam = strings.Join(params[1:], ", ")
	a.TailTyped = strings.Join(typed[1:], ", ")
	a.Chain = strings.Join(args, ")(")
	a.CastArgs = strings.Join(casts, ", ")
	a.Init = strings.Join(init, ", ")
	a.Refs = strings.Join(refs, ", ")
	return a
}

type family struct {
	Pkg     string
	Module  string
	Arities []arity
}

var templates = map[string]*template.Template{
	"func":  template.Must(template.New("func").Delims("<<", ">>").Parse(funcTemplate)),
	"tuple": template.Must(template.New("tuple").Delims("<<", ">>").Parse(tupleTemplate)),
}

// render produces the gofmt'ed source of the kind family for arities 1..max.
func render(kind, pkg string, max int) ([]byte, error) {
	tmpl, ok := templates[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if max < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadArity, max)
	}

	fam := family{Pkg: pkg, Module: modulePath}
	for n := 1; n <= max; n++ {
		fam.Arities = append(fam.Arities, newArity(n))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, fam); err != nil {
		return nil, fmt.Errorf("failed to execute %s template: %w", kind, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format %s family: %w", kind, err)
	}
	return src, nil
}

const funcTemplate = `// Code generated by funcgen. DO NOT EDIT.

package <<.Pkg>>

import (
	"<<.Module>>/pure"
	"<<.Module>>/tuple"
)
<<range .Arities>>
// Function<<.N>> is implemented by any value that can be invoked with <<.N>> argument<<if ne .N 1>>s<<end>>.
type Function<<.N>>[<<.Params>>, R any] interface {
	Apply(<<.Params>>) R
}

// Func<<.N>> is a function of <<.N>> argument<<if ne .N 1>>s<<end>>.
type Func<<.N>>[<<.Params>>, R any] func(<<.Params>>) R

// Curried<<.N>> is the curried form of Func<<.N>>.
type Curried<<.N>>[<<.Params>>, R any] func(T1) <<if eq .N 1>>R<<else>>Curried<<.Prev>>[<<.TailParam>>, R]<<end>>

// Adapt<<.N>> exposes c as a Func<<.N>>.
func Adapt<<.N>>[<<.Params>>, R any](c Function<<.N>>[<<.Params>>, R]) Func<<.N>>[<<.Params>>, R] {
	return c.Apply
}

// Lift<<.N>> converts f to a Func<<.N>>, inferring the type arguments.
func Lift<<.N>>[<<.Params>>, R any](f func(<<.Params>>) R) Func<<.N>>[<<.Params>>, R] {
	return f
}

// Untupled<<.N>> is the inverse of Func<<.N>>.Tupled.
func Untupled<<.N>>[<<.Params>>, R any](g func(tuple.Tuple<<.N>>[<<.Params>>]) R) Func<<.N>>[<<.Params>>, R] {
	return func(<<.Typed>>) R {
		return g(tuple.NewTuple<<.N>>(<<.Args>>))
	}
}

// Apply invokes f.
func (f Func<<.N>>[<<.Params>>, R]) Apply(<<.Typed>>) R {
	return f(<<.Args>>)
}

// Curried returns f as a chain of <<.N>> single-argument function<<if ne .N 1>>s<<end>>.
func (f Func<<.N>>[<<.Params>>, R]) Curried() Curried<<.N>>[<<.Params>>, R] {
	return curried<<.N>>(f)
}

// Tupled returns f as a function of a single Tuple<<.N>>.
func (f Func<<.N>>[<<.Params>>, R]) Tupled() func(tuple.Tuple<<.N>>[<<.Params>>]) R {
	return tupled<<.N>>(f)
}

// ApplySlice invokes f with the values of vs. See tuple.FromSlice<<.N>>.
func (f Func<<.N>>[<<.Params>>, R]) ApplySlice(vs []any) (R, error) {
	t, err := tuple.FromSlice<<.N>>[<<.Params>>](vs)
	if err != nil {
		var zero R
		return zero, err
	}
	return tupled<<.N>>(f)(t), nil
}

// Tableized memoizes f by its arguments. See pure.Tableize.
func (f Func<<.N>>[<<.Params>>, R]) Tableized(maxTableSize uint32) Func<<.N>>[<<.Params>>, R] {
	tableized := pure.Tableize(func(args ...pure.ComparableOrStringer) R {
		return f(<<.CastArgs>>)
	}, maxTableSize)
	return func(<<.Typed>>) R {
		return tableized(<<.Args>>)
	}
}

// Uncurried applies every argument to c in order.
func (c Curried<<.N>>[<<.Params>>, R]) Uncurried() Func<<.N>>[<<.Params>>, R] {
	return func(<<.Typed>>) R {
		return c(<<.Chain>>)
	}
}

func curried<<.N>>[<<.Params>>, R any](f Func<<.N>>[<<.Params>>, R]) Curried<<.N>>[<<.Params>>, R] {
<<- if eq .N 1>>
	return func(t1 T1) R {
		return f(t1)
	}
<<- else>>
	return func(t1 T1) Curried<<.Prev>>[<<.TailParam>>, R] {
		return curried<<.Prev>>[<<.TailParam>>, R](func(<<.TailTyped>>) R {
			return f(<<.Args>>)
		})
	}
<<- end>>
}

func tupled<<.N>>[<<.Params>>, R any](f Func<<.N>>[<<.Params>>, R]) func(tuple.Tuple<<.N>>[<<.Params>>]) R {
	return func(t tuple.Tuple<<.N>>[<<.Params>>]) R {
		return f(t.Values())
	}
}
<<end>>`

const tupleTemplate = `// Code generated by funcgen. DO NOT EDIT.

package <<.Pkg>>
<<range .Arities>>
// Tuple<<.N>> holds <<.N>> positionally typed values.
type Tuple<<.N>>[<<.Params>> any] struct {
<<- range .Fields>>
	<<.>>
<<- end>>
}

// NewTuple<<.N>> creates a Tuple<<.N>> from the given values.
func NewTuple<<.N>>[<<.Params>> any](<<.Typed>>) Tuple<<.N>>[<<.Params>>] {
	return Tuple<<.N>>[<<.Params>>]{<<.Init>>}
}

// Arity returns <<.N>>.
func (t Tuple<<.N>>[<<.Params>>]) Arity() int {
	return <<.N>>
}

// Values returns the tuple's values in order.
func (t Tuple<<.N>>[<<.Params>>]) Values() <<if eq .N 1>>T1<<else>>(<<.Params>>)<<end>> {
	return <<.Refs>>
}

// Slice returns the tuple's values in order.
func (t Tuple<<.N>>[<<.Params>>]) Slice() []any {
	return []any{<<.Refs>>}
}

// FromSlice<<.N>> builds a Tuple<<.N>> from exactly <<.N>> values, checking each position's type.
func FromSlice<<.N>>[<<.Params>> any](vs []any) (t Tuple<<.N>>[<<.Params>>], err error) {
	if err = checkArity(<<.N>>, vs); err != nil {
		return t, err
	}
<<- $n := .N>><<- $p := .Params>><<range .Slots>>
	if t.<<.Field>>, err = valueAt[<<.Param>>](vs, <<.Index>>); err != nil {
		return Tuple<<$n>>[<<$p>>]{}, err
	}
<<- end>>
	return t, nil
}
<<end>>`
