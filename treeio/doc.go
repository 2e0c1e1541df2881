// Package treeio persists a tree.Tree as the JSON document shape the
// specification's external interface defines: a vertex list indexed
// by vertex id, and a successors map from "(parent, [trits...])"
// string keys to child vertex ids. Saves are atomic (write to a
// temp file, then rename), adapted from the same pattern the device
// package uses for calibration persistence.
package treeio
