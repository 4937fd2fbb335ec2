// Package convert runs the whole pipeline for one source file: load the rows,
// assemble the document, serialize it and write it next to the source.
//
// Failures come in two kinds. ErrSourceNotFound means there was nothing to
// convert. Everything else is an *Error naming the stage that failed, and
// matches ErrConversion under errors.Is. No output is written unless every
// stage succeeded.
package convert
