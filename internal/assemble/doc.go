// Package assemble folds source rows into one form document.
//
// Rows are processed in order. A row's own Seq is used when it parses as a
// number ("3", "3.0", " 4 "); otherwise the row's 1-based position is used.
// Rows with a blank field name produce no field. Every other row produces
// exactly one field, and all fields go into the single main tab in row
// order.
//
// Fallbacks never fail the assembly. Each one is recorded in the returned
// diagnostics so callers can log them.
package assemble
