// Package help renders usage text for a command node. It is pure
// presentation: it consumes the resolved schemas read-only and never
// influences parsing. The reserved --help/-h and --version rows are always
// listed, since the engine recognizes them independent of any user schema.
package help
