// Package preflight checks the conditions a run needs before anything
// destructive happens: a usable output directory and an imaging tool on the
// search path.
//
// Individual checks return a Result for display; Require turns the first
// failing check into an *Error so the command can abort before discovery.
package preflight
