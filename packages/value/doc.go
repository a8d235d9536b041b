// Package value provides the dynamically-typed payload that assertions
// operate on.
//
// A Value is a closed tagged union over:
//   - Null, Bool, Int, Float and String scalars
//   - List: an ordered sequence indexed from zero
//   - Map: an insertion-ordered mapping keyed by Int or String
//   - Opaque: any other Go value, compared through a canonical deep dump
//
// Arbitrary Go values are converted with Of, JSON text with FromJSON.
package value
