// Package report renders console summaries of a conversion and of a
// verification run.
package report
