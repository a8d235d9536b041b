// Package assertions evaluates a single assertion: an expected value, an
// operator and an actual value.
//
// Supported operators:
//   - Equality: =, ==, === (smart equality) and !, !=, !==, <> (its negation)
//   - Ordering: <, <=, >, >=
//   - Patterns: =~ and !~ (expected is a pattern such as "/^foo/i")
//   - Key membership: include, exclude (expected is the container)
//   - Value membership: any, have_any, none, have_none
//
// Smart equality is type-strict, treats NaN as equal to NaN, compares
// containers by their entries regardless of order and compares opaque
// values through their canonical deep dump.
package assertions
