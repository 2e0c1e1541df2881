package tree

import (
	"errors"
	"fmt"
	"time"

	"github.com/wordletree/wordletree/word"
)

// ErrEmptyPartition is an InternalInvariant error (spec.md §7): a
// child partition was empty after hard-mode pruning, which should be
// impossible given the short-circuit rule.
var ErrEmptyPartition = errors.New("tree: partition empty after hard-mode pruning")

// ErrMissingOptimizer is returned when Build is called without a
// device.Optimizer configured via WithOptimizer.
var ErrMissingOptimizer = errors.New("tree: no optimizer configured")

// ErrHardModeRequiresTable is returned when hard mode is requested but
// no hardmode.Table (or G×G feedback matrix) was supplied.
var ErrHardModeRequiresTable = errors.New("tree: hard mode requires a compatibility table and G×G matrix")

// InternalInvariantError wraps ErrEmptyPartition with the offending
// parent vertex id, per spec.md §7's "report parent frame" requirement.
type InternalInvariantError struct {
	ParentVertexID int
	Code           word.Code
}

func (e *InternalInvariantError) Error() string {
	return fmt.Sprintf("tree: empty partition under parent vertex %d, code %d", e.ParentVertexID, e.Code)
}

func (e *InternalInvariantError) Unwrap() error { return ErrEmptyPartition }

// Vertex is one node of the decision tree: a guess word index and the
// map from feedback code to child vertex id. A Vertex with no entries
// in Children is a leaf.
type Vertex struct {
	ID       int
	Guess    int
	Children map[word.Code]int
}

// Tree is the finished, immutable decision tree produced by Build.
// Vertices are indexed by id; Vertices[Root] is the root.
type Tree struct {
	Root     int
	Vertices []Vertex
	HardMode bool
}

// Stats summarizes one Build invocation.
type Stats struct {
	VertexCount int
	Duration    time.Duration
	FirstGuess  int
}

// ProgressEvent is delivered to a diagnostic-clock callback
// periodically while Build runs.
type ProgressEvent struct {
	VertexCount int
	Elapsed     time.Duration
}
