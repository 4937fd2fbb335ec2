// Package diagnostic provides structured notes about a conversion and
// findings about an existing document.
//
// Key capabilities:
//   - Row notes for every fallback the assembler takes (skipped rows,
//     unparsable sequence numbers, unknown component labels)
//   - Warnings for permitted but suspicious input (duplicate option keys,
//     duplicate field identifiers)
//   - Errors for broken cross-references found by verification
//
// Row notes never make a conversion fail.
package diagnostic
