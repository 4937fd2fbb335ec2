// Package build turns one normalized source row into one form field.
//
// Field always starts from the same base record and then applies the
// augmentation of the row's kind:
//
//   - TextField: none
//   - NumberField: validation replaced by {required, min 0, max 9999}
//   - SelectField: options parsed by ParseOptions become a Reference
//   - TaskListField: tasks parsed by ParseTasks become the Data payload
//
// # Splitting rules
//
// Options split on newlines when the input contains one and on commas
// otherwise, so "A\nB,C" yields two options. Tasks always split on commas.
// Tokens are trimmed and empty tokens dropped in both cases.
//
// # Task edges
//
// ParseTasks links consecutive tasks twice. The Relationship edge runs from
// the earlier task to the later one; the Dependency edge runs from the later
// task back to the earlier one. The reversal is what the form builder that
// imports these documents expects. Do not align the two directions.
package build
