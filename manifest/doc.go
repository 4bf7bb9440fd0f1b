// Package manifest loads a command tree from declarative HCL files.
//
// A manifest set has exactly one `cli "name" {}` block, the root command,
// plus any number of top-level `command "name" {}` blocks contributed by
// additional files; those become children of the root. Command bodies nest
// `option`, `positional` and further `command` blocks, and bind behavior by
// handler name through a registry populated in Go code:
//
//	cli "remotes" {
//	  version = "1.2.0"
//
//	  option "verbose" {
//	    type  = bool
//	    short = "v"
//	  }
//
//	  command "add" {
//	    run = "OnRemoteAdd"
//	    positional "name" {
//	      type     = string
//	      required = true
//	    }
//	  }
//	}
//
// Types are written as expressions: string, number, bool, enum, count,
// list(string), list(number), and for positionals variadic(string) or
// variadic(number). Loading fails before any argv is parsed when a manifest
// references a handler that was never registered; the reverse direction, a
// registered handler no manifest uses, is only logged as a warning.
package manifest
