package solve

import (
	"time"

	"github.com/katalvlaran/asterfield/field"
)

// search carries the per-call mutable state every engine shares: the visited
// set, the parent forest for path reconstruction, the key→Config table, the
// dock position captured from the start, and the accumulating Result.
// Lifetime is a single engine invocation; nothing is retained afterwards.
type search struct {
	opts     Options
	startKey string
	dock     field.Position
	visited  map[string]bool
	parent   map[string]string
	byKey    map[string]*field.Config
	res      *Result
	started  time.Time
}

// newSearch validates the start configuration and prepares shared state.
// ok=false signals a malformed start (missing probe or dock), reported as
// the expected not-found outcome with zero expansions rather than an error.
func newSearch(start *field.Config, opts Options) (*search, bool) {
	s := &search{
		opts:     opts,
		startKey: start.Key(),
		visited:  make(map[string]bool),
		parent:   make(map[string]string),
		byKey:    map[string]*field.Config{start.Key(): start},
		res:      &Result{},
		started:  time.Now(),
	}
	dock, hasDock := start.DockPosition()
	if _, hasProbe := start.ProbePosition(); !hasProbe || !hasDock {
		s.res.Elapsed = time.Since(s.started)
		return s, false
	}
	// The dock position is captured once, before traversal: the probe
	// consumes the Dock tag when it arrives, so later configurations
	// cannot re-derive it.
	s.dock = dock

	return s, true
}

// canceled checks the context once per pop.
func (s *search) canceled() error {
	select {
	case <-s.opts.Ctx.Done():
		return s.opts.Ctx.Err()
	default:
		return nil
	}
}

// isGoal reports whether c's probe sits on the captured dock position.
func (s *search) isGoal(c *field.Config) bool {
	probe, ok := c.ProbePosition()
	return ok && probe == s.dock
}

// remember records the parent link for child the first time its identity key
// is observed, keeping the first-seen parent even if the same key is pushed
// again later by a different path. The start key never receives a parent,
// which keeps the parent table a forest rooted at the start.
func (s *search) remember(child, from *field.Config) {
	key := child.Key()
	if key == s.startKey {
		return
	}
	if _, seen := s.parent[key]; seen {
		return
	}
	s.parent[key] = from.Key()
	s.byKey[key] = child
}

// atCeiling reports whether the expansion ceiling has been reached.
func (s *search) atCeiling() bool {
	return s.res.Expanded >= s.opts.MaxExpansions
}

// expand counts c as expanded, records its probe position in the visit
// order, and fires the OnExpand hook.
func (s *search) expand(c *field.Config) {
	s.res.Expanded++
	probe := mustProbe(c)
	s.res.Visited = append(s.res.Visited, probe)
	s.opts.OnExpand(probe, s.res.Expanded)
}

// found finalizes a successful search, reconstructing the start→goal trace
// by walking parent links backwards from the goal key.
func (s *search) found(goal *field.Config) *Result {
	var reversed []*field.Config
	for key := goal.Key(); ; {
		reversed = append(reversed, s.byKey[key])
		if key == s.startKey {
			break
		}
		key = s.parent[key]
	}
	path := make([]*field.Config, len(reversed))
	for i, cfg := range reversed {
		path[len(path)-1-i] = cfg
	}
	s.res.Path = path
	s.res.Found = true
	s.res.Elapsed = time.Since(s.started)

	return s.res
}

// exhausted finalizes a search whose frontier emptied without a goal.
func (s *search) exhausted() *Result {
	s.res.Elapsed = time.Since(s.started)
	return s.res
}

// truncated finalizes a search stopped by the expansion ceiling; the
// statistics gathered so far stay in the Result.
func (s *search) truncated() *Result {
	s.res.Truncated = true
	s.res.Elapsed = time.Since(s.started)
	return s.res
}

// mustProbe returns c's probe position; reachable configurations always
// hold exactly one probe.
func mustProbe(c *field.Config) field.Position {
	probe, _ := c.ProbePosition()
	return probe
}
