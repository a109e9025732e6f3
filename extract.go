package declutter

import "time"

// ContainerTag is the tag of the element wrapping every extraction result.
const ContainerTag = "div"

type config struct {
	strategy Strategy
	hook     Hook
}

// Option configures an extraction.
type Option func(*config)

// WithStrategy sets the scoring strategy. Defaults to ScoreUniform.
func WithStrategy(s Strategy) Option {
	return func(c *config) {
		c.strategy = s
	}
}

// WithHook sets a hook that observes each phase of the extraction.
func WithHook(h Hook) Option {
	return func(c *config) {
		c.hook = h
	}
}

// Extract returns a new container element holding the main content found
// under root, rebuilt with doc. When nothing survives filtering the
// container is empty.
//
// Extract never fails and does not modify root. Callers decide how to treat
// an empty or thin result.
func Extract(root Node, doc Document, opts ...Option) Element {
	c := &config{strategy: ScoreUniform}
	for _, opt := range opts {
		opt(c)
	}

	begin := time.Now()
	mirror := Filter(root)
	c.strategy.rescore(mirror)
	nodes := len(mirror.Nodes())
	begin = c.report(PhaseEvent{Phase: PhaseFilter, Nodes: nodes}, begin)

	top := SelectTop(mirror)
	begin = c.report(PhaseEvent{Phase: PhaseSelect, Nodes: nodes, Score: top.Score}, begin)

	container := doc.CreateElement(ContainerTag)
	if n := Materialize(top, doc); n != nil {
		container.AppendChild(n)
	}
	c.report(PhaseEvent{Phase: PhaseMaterialize, Nodes: len(top.Nodes()), Score: top.Score}, begin)

	return container
}

// report sends ev to the hook and returns the start of the next phase.
func (c *config) report(ev PhaseEvent, begin time.Time) time.Time {
	if c.hook == nil {
		return begin
	}
	now := time.Now()
	ev.Duration = now.Sub(begin)
	c.hook(ev)
	return time.Now()
}
