// Package fn adapts plain Go functions of fixed arity into function objects
// with curried and tupled views.
//
// FuncN is a named func type, so any func of N arguments converts to it
// directly (or through LiftN, which infers the type arguments). Any value
// with a matching Apply method adapts through AdaptN. From there:
//
//	sum := fn.Lift3(func(a, b, c int) int { return a + b + c })
//	sum.Curried()(1)(2)(3)                   // 6
//	sum.Tupled()(tuple.NewTuple3(1, 2, 3))   // 6
//	sum.ApplySlice([]any{1, 2, 3})           // 6, nil
//
// Views are plain closures over the base function. They hold no state of
// their own, and deriving a view twice gives two independent values.
// Panics raised by the base function pass through every view untouched.
//
// The families for arity 1 through 22 are generated by cmd/funcgen.
package fn

//go:generate go run ../cmd/funcgen -kind func -max 22 -pkg fn -o zz_generated.go
