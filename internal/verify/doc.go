// Package verify checks the cross-references of a serialized form document.
//
// It reads the document generically with gjson rather than through the form
// types, so documents edited by hand or produced by other tools can be
// checked without failing on unknown members. Checks:
//
//   - the document has a windowId and at least one tab
//   - field identifiers are unique and match their component
//   - select references are named after their field
//   - task-list relationships are a JSON string holding a list
//   - relationship and dependency counts equal max(tasks-1, 0)
//   - every dependency is the reverse of the relationship at the same index
//   - edges only name known tasks, and dependencies form no cycle
package verify
