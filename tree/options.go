package tree

import (
	"time"

	"github.com/wordletree/wordletree/device"
	"github.com/wordletree/wordletree/feedback"
	"github.com/wordletree/wordletree/hardmode"
)

// Option configures a Build invocation via functional arguments,
// following the same gather-then-finalize shape as the reference
// corpus's bfs.Option/matrix.Option.
type Option func(*options)

type options struct {
	optimizer *device.Optimizer

	hardMode bool
	table    *hardmode.Table
	fGG      *feedback.Matrix

	diagnosticInterval time.Duration
	onTick             func(ProgressEvent)
	onVertex           func(Vertex)

	err error
}

func defaultOptions() options {
	return options{}
}

// WithOptimizer supplies the device.Optimizer Build uses to choose a
// guess at every vertex. Required.
func WithOptimizer(opt *device.Optimizer) Option {
	return func(o *options) {
		if opt == nil {
			o.err = ErrMissingOptimizer
			return
		}
		o.optimizer = opt
	}
}

// WithHardMode enables hard-mode filtering using table for
// compatibility checks and fGG (a guesses×guesses feedback matrix) for
// the "what code would this candidate guess have produced against an
// earlier guess" lookup the filter needs.
func WithHardMode(table *hardmode.Table, fGG *feedback.Matrix) Option {
	return func(o *options) {
		if table == nil || fGG == nil {
			o.err = ErrHardModeRequiresTable
			return
		}
		o.hardMode = true
		o.table = table
		o.fGG = fGG
	}
}

// WithDiagnostics starts a background clock that invokes onTick with
// the current vertex count and elapsed time every interval, until
// Build returns. It never affects tree content, per spec.md §4.F.
func WithDiagnostics(interval time.Duration, onTick func(ProgressEvent)) Option {
	return func(o *options) {
		if interval > 0 && onTick != nil {
			o.diagnosticInterval = interval
			o.onTick = onTick
		}
	}
}

// WithOnVertex registers a callback invoked once per emitted vertex,
// in dequeue order, letting a caller (treeio, the CLI) observe
// progress without coupling the builder to I/O.
func WithOnVertex(fn func(Vertex)) Option {
	return func(o *options) {
		if fn != nil {
			o.onVertex = fn
		}
	}
}

func gatherOptions(opts []Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return options{}, o.err
	}
	if o.optimizer == nil {
		return options{}, ErrMissingOptimizer
	}
	return o, nil
}
