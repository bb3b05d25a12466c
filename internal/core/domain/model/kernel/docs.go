// Package kernel provides the shared domain primitives of the order tracker.
//
// The package currently holds UUID, the identifier value object used for
// orders. Values are immutable and safe for concurrent use.
package kernel
