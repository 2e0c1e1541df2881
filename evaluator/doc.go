// Package evaluator walks a finished tree.Tree for every target,
// producing the depth distribution and runtime statistics the
// reference system prints after a build (decision_tree.py's
// evaluate()).
//
// What: Evaluate replays each target through the tree, following the
// edge labeled by the observed feedback code at each vertex until the
// vertex's guess equals the target, and accumulates per-target depth
// into a Report. A vertex whose required outgoing edge is missing is a
// TreeCorruption: a fatal consistency error that should be impossible
// given the tree invariants, reported with the offending
// (target, vertex, code).
package evaluator
