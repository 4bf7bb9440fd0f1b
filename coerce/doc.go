// Package coerce converts raw string tokens into the typed cty values their
// descriptors declare.
//
// Values handles options: it walks the schema in declaration order,
// evaluates each option independently, and aborts on the first failure,
// naming the offending option. Positionals aligns leftover tokens to
// positional slots index by index, with the final variadic slot capturing
// everything that remains.
//
// Absence is modeled as absence: an option with no occurrence and no
// default simply does not appear in the result map, and an optional
// positional with no token and no default becomes cty.NilVal. A bool option
// is therefore never coerced to false just because it was omitted.
package coerce
