package solve

import (
	"container/heap"

	"github.com/katalvlaran/asterfield/field"
)

// BestFirst runs a greedy best-first search from start, applying any number
// of functional Options.
//
// The frontier is a min-heap ordered by ascending heuristic score (default
// Manhattan, override with WithHeuristic). Equal scores break ties by
// insertion sequence, so the search is fully deterministic. Deduplication
// is lazy, as in DFS, and the parent link of each key is fixed at its first
// enqueue.
//
// Greedy best-first is heuristic and non-optimal: it only biases expansion
// toward states whose probe is nearer the dock, and can mislead when the
// minimal push path requires temporarily moving away from it.
//
// Returns ErrNilConfig or ErrOptionViolation for invalid input, the context
// error on cancellation, and otherwise a Result (found or not-found).
func BestFirst(start *field.Config, opts ...Option) (*Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if start == nil {
		return nil, ErrNilConfig
	}
	s, ok := newSearch(start, o)
	if !ok {
		return s.res, nil
	}

	frontier := &scoreHeap{}
	heap.Init(frontier)
	seq := 0
	push := func(cfg *field.Config) {
		heap.Push(frontier, &scoredConfig{
			cfg:   cfg,
			score: o.Heuristic(cfg, s.dock),
			seq:   seq,
		})
		seq++
	}
	push(start)

	for frontier.Len() > 0 {
		if err = s.canceled(); err != nil {
			return nil, err
		}
		cur := heap.Pop(frontier).(*scoredConfig).cfg

		if s.visited[cur.Key()] {
			continue
		}
		if s.isGoal(cur) {
			return s.found(cur), nil
		}
		if s.atCeiling() {
			return s.truncated(), nil
		}
		s.visited[cur.Key()] = true
		s.expand(cur)

		for _, m := range cur.Successors() {
			s.remember(m.Config, cur)
			push(m.Config)
		}
	}

	return s.exhausted(), nil
}

// scoredConfig is one frontier entry: a configuration, its heuristic score,
// and its insertion sequence number for stable tie-breaking.
type scoredConfig struct {
	cfg   *field.Config
	score int
	seq   int
}

// scoreHeap is a min-heap of frontier entries using the lazy decrease-key
// strategy: duplicates are pushed and stale entries skipped at pop time.
type scoreHeap []*scoredConfig

func (h scoreHeap) Len() int { return len(h) }

func (h scoreHeap) Less(i, j int) bool {
	if h[i].score != h[j].score {
		return h[i].score < h[j].score
	}
	return h[i].seq < h[j].seq
}

func (h scoreHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *scoreHeap) Push(x any) { *h = append(*h, x.(*scoredConfig)) }

func (h *scoreHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}
