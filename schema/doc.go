// Package schema defines the descriptors that drive argument parsing.
//
// An Option describes a named, flag-introduced input; a Positional describes
// an input identified by its position among non-flag tokens. Both carry a
// closed kind tag that the scanner and coercer dispatch on, so no runtime
// type probing is needed anywhere downstream.
//
// Descriptors are validated once, at construction time, through NewOptions
// and NewPositionals. A malformed descriptor is a programming error and is
// reported as a *schema.Error before any argv is ever seen. The resulting
// Options and Positionals collections are immutable; the resolver shares
// their descriptor pointers when it merges inherited global options into a
// subcommand's own schema.
package schema
