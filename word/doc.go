// Package word loads fixed-length lowercase word lists and implements the
// Wordle feedback oracle over them.
//
// What
//
//   - LoadSet reads a newline-delimited word file into a Set, validating
//     that every word has the same length and uses only a-z.
//   - LoadGame reads a solutions file and a non-solutions file into two
//     Sets such that guesses is a superset of targets and, crucially,
//     guesses.Word(i) == targets.Word(i) for every i < targets.Len() —
//     targets occupy a stable prefix of the combined guess space. This
//     lets every other package address "is guess g also a target" with a
//     single integer comparison (g < targets.Len()) instead of a lookup.
//   - Oracle computes the base-3 feedback Code for a (target, guess) pair
//     under the standard duplicate-letter Wordle rules.
//
// Why
//
//   - Centralizing encoding and the oracle here keeps every downstream
//     package (feedback, hardmode, kernel, tree) working with validated,
//     already-length-checked data.
//
// Determinism
//
//	Load order is preserved; words are never reordered or deduplicated.
package word
