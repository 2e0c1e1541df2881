package tree

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/wordletree/wordletree/feedback"
	"github.com/wordletree/wordletree/hardmode"
	"github.com/wordletree/wordletree/word"
)

// frame is one pending BFS expansion: the targets still consistent
// with the path to this vertex, the legal guess pool (nil means "use
// the full G", the easy-mode and not-yet-filtered-hard-mode sentinel),
// and the parent edge this frame will attach to.
type frame struct {
	targets    []int
	guesses    []int
	parent     int // -1 for the root frame
	parentCode word.Code
	depth      int
}

// walker encapsulates mutable Build state, mirroring the
// enqueue/dequeue/visit staging of the reference corpus's bfs.walker.
type walker struct {
	opts options

	targets *word.Set
	guesses *word.Set
	fTG     *feedback.Matrix
	fullG   []int

	queue    []frame
	vertices []Vertex

	vertexCount atomic.Int64
}

// Build constructs the decision tree for (targets, guesses) using fTG,
// the targets×guesses feedback matrix. Hard mode additionally requires
// a compatibility table and a guesses×guesses feedback matrix, both
// supplied via WithHardMode.
func Build(targets, guesses *word.Set, fTG *feedback.Matrix, opts ...Option) (*Tree, Stats, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, Stats{}, err
	}

	fullG := allIndices(guesses.Len())
	w := &walker{
		opts:    o,
		targets: targets,
		guesses: guesses,
		fTG:     fTG,
		fullG:   fullG,
		queue:   make([]frame, 0, 64),
	}

	start := time.Now()
	stop, wg := w.startDiagnostics(start)
	err = w.run()
	close(stop)
	wg.Wait()

	if err != nil {
		return nil, Stats{}, err
	}

	t := &Tree{Root: 0, Vertices: w.vertices, HardMode: o.hardMode}
	stats := Stats{
		VertexCount: len(w.vertices),
		Duration:    time.Since(start),
		FirstGuess:  w.vertices[0].Guess,
	}
	return t, stats, nil
}

func (w *walker) startDiagnostics(start time.Time) (chan struct{}, *sync.WaitGroup) {
	stop := make(chan struct{})
	var wg sync.WaitGroup
	if w.opts.diagnosticInterval <= 0 {
		return stop, &wg
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(w.opts.diagnosticInterval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				w.opts.onTick(ProgressEvent{
					VertexCount: int(w.vertexCount.Load()),
					Elapsed:     time.Since(start),
				})
			}
		}
	}()
	return stop, &wg
}

func (w *walker) run() error {
	w.enqueue(frame{
		targets:    allIndices(w.targets.Len()),
		guesses:    nil,
		parent:     -1,
		parentCode: 0,
		depth:      1,
	})

	for len(w.queue) > 0 {
		fr := w.dequeue()
		if err := w.expand(fr); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) enqueue(fr frame) {
	w.queue = append(w.queue, fr)
}

func (w *walker) dequeue() frame {
	fr := w.queue[0]
	w.queue = w.queue[1:]
	return fr
}

func (w *walker) candidatePool(fr frame) []int {
	if fr.guesses != nil {
		return fr.guesses
	}
	return w.fullG
}

func (w *walker) expand(fr frame) error {
	pool := w.candidatePool(fr)
	guess, _, err := w.opts.optimizer.Dispatch(fr.targets, pool, w.fTG)
	if err != nil {
		return err
	}

	vID := len(w.vertices)
	v := Vertex{ID: vID, Guess: guess, Children: make(map[word.Code]int)}
	w.vertices = append(w.vertices, v)
	w.vertexCount.Store(int64(len(w.vertices)))

	if fr.parent >= 0 {
		w.vertices[fr.parent].Children[fr.parentCode] = vID
	}
	if w.opts.onVertex != nil {
		w.opts.onVertex(v)
	}

	if len(fr.targets) == 1 {
		return nil
	}

	groups, codes := partitionByCode(fr.targets, guess, w.fTG)
	for _, code := range codes {
		childT := groups[code]
		if len(childT) == 0 {
			return &InternalInvariantError{ParentVertexID: vID, Code: code}
		}

		childG := w.childGuesses(fr, guess, code, len(childT))
		w.enqueue(frame{
			targets:    childT,
			guesses:    childG,
			parent:     vID,
			parentCode: code,
			depth:      fr.depth + 1,
		})
	}
	return nil
}

// childGuesses computes the legal guess pool for a child partition.
// In easy mode it is always nil (full G). In hard mode, partitions of
// size <= 2 inherit the parent's pool unfiltered (the short-circuit
// spec.md §9 documents); larger partitions are filtered against the
// compatibility table.
func (w *walker) childGuesses(fr frame, guessStar int, code word.Code, childSize int) []int {
	if !w.opts.hardMode {
		return nil
	}
	base := w.candidatePool(fr)
	if childSize <= 2 {
		return base
	}
	return filterHardMode(base, guessStar, code, w.opts.fGG, w.opts.table)
}

func partitionByCode(targets []int, guess int, f *feedback.Matrix) (map[word.Code][]int, []word.Code) {
	groups := make(map[word.Code][]int)
	var codes []word.Code
	for _, t := range targets {
		if t == guess {
			continue
		}
		code := f.AtFast(t, guess)
		if _, seen := groups[code]; !seen {
			codes = append(codes, code)
		}
		groups[code] = append(groups[code], t)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return groups, codes
}

func filterHardMode(base []int, guessStar int, code word.Code, fGG *feedback.Matrix, table *hardmode.Table) []int {
	out := make([]int, 0, len(base))
	for _, gPrime := range base {
		produced := fGG.AtFast(gPrime, guessStar)
		if table.Compatible(produced, code) {
			out = append(out, gPrime)
		}
	}
	return out
}

func allIndices(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}
