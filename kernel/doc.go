// Package kernel implements the guess-scoring kernels: given a target
// partition T, a legal-guess set G, and a feedback matrix F, choose the
// best next guess under one of three metrics.
//
// What: Metric0 scores every candidate by expected residual partition
// size; Metric1/Metric2 rank candidates by Metric0 and then look ahead
// by simulating the full subtree each candidate would produce,
// preferring the one with the lowest expected-plus-worst-case depth.
// ScalarScorer is the reference implementation; BatchedScorer computes
// the same Metric0 scores with the histogram-scatter numeric shape
// from the specification, for the device optimizer's accelerator path.
//
// Why: Metric0 alone is a greedy one-step heuristic; Metric1/2 trade
// more computation for a better guess by actually building (part of)
// the decision tree that would result from each candidate.
//
// Determinism: all scorers break ties on the lowest guess index and
// must return the same winning index for identical input regardless
// of which back-end produced it — this is exercised by the agreement
// tests and, under the debugkernel build tag, by CrossCheck.
package kernel
