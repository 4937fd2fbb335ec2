// Package source reads form definition rows from CSV.
//
// The first record is the header; columns are looked up by name, so their
// order does not matter and unknown columns are ignored. Header names are
// trimmed, and when a name repeats the last column with that name is used:
//
//	Seq,Field Name,Component,Input
//	1,Customer,Text,
//	2,Quantity,Quantity,
//	3,Stage,Select Field,"Open,Closed"
//	4,Plan,TaskListField,"Design,Build,Ship"
//
// A cell missing from a short record is reported as absent (nil), which is
// distinct from an empty cell. Input cells may span several lines when quoted.
package source
