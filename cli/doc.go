// Package cli is the outer surface of the framework: it turns a command
// tree plus argv into an explicit, tagged outcome and handles the
// process-facing concerns around it.
//
// Parse never terminates anything and performs no I/O; it returns an
// Outcome tagged Success, HelpRequested, VersionRequested or Failure for
// the embedding to inspect. Run layers the conventional CLI behavior on
// top: it renders help and version output for the control outcomes,
// renders an error message plus contextual usage for failures and converts
// them into an *ExitError with a non-zero code, and on success invokes the
// resolved handler, propagating its error to the caller unmodified.
package cli
