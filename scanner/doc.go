// Package scanner splits raw argv tokens into per-option raw values and
// positional candidates, driven by a recognition table derived from an
// option schema.
//
// The scanner deals in raw strings only; typed coercion happens afterwards
// in package coerce. It recognizes the forms --name value, --name=value and
// -x, treats bool and count flags as presence-only, and stops interpreting
// flags after a literal "--" token. The reserved tokens --help, -h and
// --version short-circuit scanning with the ErrHelp and ErrVersion control
// sentinels and are never consumed as an option's value.
//
// A leading-dash token that matches no declared name or alias is rejected
// with an *UnknownOptionError rather than silently passed through as a
// positional, so typos surface early.
package scanner
