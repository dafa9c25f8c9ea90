package solve

import "github.com/katalvlaran/asterfield/field"

// DFS runs an exhaustive depth-first search from start, applying any number
// of functional Options.
//
// The frontier is an explicit stack. Deduplication is lazy: successors are
// pushed unfiltered and a state already expanded is discarded at pop time,
// so the same identity key may sit on the stack several times before its
// first pop. The parent link of each key is fixed the first time the key is
// observed as a push target; reconstruction uses that first-seen parent.
//
// DFS offers no optimality guarantee and may expand states far from the
// dock before finding it; the expansion ceiling bounds the worst case.
// Returns ErrNilConfig or ErrOptionViolation for invalid input, the context
// error on cancellation, and otherwise a Result (found or not-found).
func DFS(start *field.Config, opts ...Option) (*Result, error) {
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

	stack := []*field.Config{start}
	for len(stack) > 0 {
		if err = s.canceled(); err != nil {
			return nil, err
		}
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

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
			stack = append(stack, m.Config)
		}
	}

	return s.exhausted(), nil
}
