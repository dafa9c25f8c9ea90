package solve

import "github.com/katalvlaran/asterfield/field"

// BFS runs a breadth-first search from start, applying any number of
// functional Options.
//
// The frontier is a FIFO queue and deduplication is eager: a successor is
// marked visited at enqueue time, so no state is ever enqueued twice. BFS
// expands states in non-decreasing distance from the start, and since every
// probe action costs one move, the returned trace has the minimum number of
// actions among all discoverable solutions.
//
// Returns ErrNilConfig or ErrOptionViolation for invalid input, the context
// error on cancellation, and otherwise a Result (found or not-found).
func BFS(start *field.Config, opts ...Option) (*Result, error) {
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

	queue := []*field.Config{start}
	s.visited[start.Key()] = true

	for len(queue) > 0 {
		if err = s.canceled(); err != nil {
			return nil, err
		}
		cur := queue[0]
		queue = queue[1:]

		if s.isGoal(cur) {
			return s.found(cur), nil
		}
		if s.atCeiling() {
			return s.truncated(), nil
		}
		s.expand(cur)

		for _, m := range cur.Successors() {
			key := m.Config.Key()
			if s.visited[key] {
				continue
			}
			s.visited[key] = true
			s.remember(m.Config, cur)
			queue = append(queue, m.Config)
		}
	}

	return s.exhausted(), nil
}
