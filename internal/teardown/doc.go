// Package teardown removes a deployed application and everything tagged as
// belonging to it.
//
// A run first evaluates six read-only gates in a fixed order ([DefaultGates]).
// The first failing gate aborts the run with a [GateError] before any
// destructive call. When every gate passes, the destructive phases run in
// order: parameter store pruning, application stack deletion, pipeline stack
// deletion, tagged resource reclamation and local samconfig pruning.
//
// Stack deletion failures and timeouts abort the run. Failures on individual
// parameters, buckets, tables or log groups are logged and isolated. Resources
// the operator declines, mistypes the confirmation code for, or that have an
// unsupported type are collected in the [Outcome] and reported at the end.
//
// Interrupts surface as [ErrCancelled] and stop the run without further
// mutation.
package teardown
