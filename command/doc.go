// Package command models the nested command tree and resolves argv against
// it.
//
// A Command owns its children outright, so the tree is acyclic by
// construction; ancestor state is only consulted for global-option
// inheritance, never for ownership. Resolution walks the tree from the
// root, merging each node's options over the accumulated ancestor schema
// (local definitions win), consuming one token per matched child and
// falling through a declared default child without consuming anything.
// Whatever tokens remain at the resolved node are handed to the scanner and
// coercers against the merged schemas, and the typed outcome is assembled
// into a Result.
//
// Execute additionally invokes the resolved node's handler, if any, and
// propagates its error to the caller unmodified.
//
// The tree is built once, validated once, and immutable afterwards;
// resolution itself holds no shared mutable state, so independent calls may
// run concurrently as long as the handlers involved are reentrant.
package command
