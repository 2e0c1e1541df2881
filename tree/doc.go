// Package tree builds the Wordle decision tree by breadth-first
// expansion of (targets, legal guesses, parent, depth) frames.
//
// What: Build dequeues a frame, asks a device.Optimizer for the best
// guess over the frame's candidate pool, emits a vertex, partitions
// the remaining targets by the guess's feedback code, optionally
// filters the child guess pool through a hard-mode compatibility
// table, and enqueues one child frame per surviving partition. Vertex
// ids are assigned in dequeue order, so they are stable level-order
// identifiers across runs — the reason BFS is used instead of the
// reference implementation's explicit-stack depth-first walk (see
// bfs.BFS/bfs.walker in the reference corpus for the enqueue/dequeue
// staging this builder's walker borrows).
//
// Why: partition size strictly shrinks on every edge, and leaves with
// a single remaining target are never re-expanded, so the queue always
// empties in finite time and the builder's live memory is bounded by
// the BFS frontier rather than the tree's depth.
package tree
