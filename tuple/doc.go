// Package tuple holds generic struct types carrying a fixed number of
// positionally typed values, from Tuple1 to Tuple22.
//
// See package fn for converting between multi-argument functions and their
// single-argument tupled equivalents.
package tuple

//go:generate go run ../cmd/funcgen -kind tuple -max 22 -pkg tuple -o zz_generated.go
