// Package match maps free-text labels onto the closed set of field kinds and
// derives the textual identifiers of a form document.
//
// Key functions:
//   - KindForLabel: resolves a component label through the synonym table
//   - SuggestLabel: ranks known labels for an unrecognized one
//   - TitleFromPath: derives a display title from a source file name
//   - Slug: the upper-case key form shared by window ids and option keys
//   - Levenshtein: computes edit distance between strings
package match
