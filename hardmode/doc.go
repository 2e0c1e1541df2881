// Package hardmode builds and queries the 243×243 feedback
// compatibility table C used by hard-mode tree construction: C[p,q] is
// true iff feedback code p is still consistent with an earlier
// observed code q, trit-wise p_i >= q_i at every position.
//
// What: Table is a bit-packed 243×243 boolean table, built once and
// reused for every hard-mode filter step of a tree build.
//
// Why bit-packed rather than a byte-per-cell Dense-style matrix (the
// shape feedback.Matrix uses): Table never changes after Build and is
// looked up millions of times during a hard-mode build, so trading a
// shift+mask for an 8x memory reduction is worth it even though the
// absolute table size (243*243 bits ~= 7.4KB) is already small.
package hardmode
