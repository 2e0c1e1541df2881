// Package feedback builds and stores the feedback matrix F, the
// |T|×|G| (or |G|×|G| in hard mode) table of oracle codes for every
// target/guess pair a tree build or evaluation needs.
//
// What: Matrix is a row-major, byte-valued table adapted from the
// teacher's matrix.Dense (see matrix/dense.go in the reference corpus)
// but specialized to byte storage, since every cell holds a feedback
// code in [0,243). BuildScalar fills it with one word.Oracle call per
// cell; BuildBatched computes the same values with the vectorized
// equality/residual-count algorithm from the specification's batched
// kernel shape, banded along T to bound peak memory.
//
// Why: the oracle is cheap per call but |T|·|G| calls add up fast for
// large word lists, and the tree builder re-reads F on every frame.
// Materializing it once up front trades memory for a flat O(1) lookup.
//
// Determinism: both builders are pure functions of (targets, guesses)
// and must produce bit-identical matrices; this is exercised directly
// by the agreement test.
package feedback
