package declutter_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/declutter"
	"github.com/stretchr/testify/assert"
)

// leafText is 250 runes with two commas.
var leafText = strings.Repeat("a", 248) + ",,"

func TestStrategy_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "uniform", declutter.ScoreUniform.String())
	assert.Equal(t, "leaf-propagation", declutter.ScoreLeafPropagation.String())
	assert.Equal(t, "unknown", declutter.Strategy(42).String())
}

func TestScoreLeafPropagation(t *testing.T) {
	t.Parallel()

	t.Run("credits parent fully and grandparent at half weight", func(t *testing.T) {
		t.Parallel()

		var events []declutter.PhaseEvent
		out := extract(t, `<div><div><p>`+leafText+`</p></div></div>`,
			declutter.WithStrategy(declutter.ScoreLeafPropagation),
			declutter.WithHook(func(ev declutter.PhaseEvent) { events = append(events, ev) }),
		)

		assert.Equal(t, `<div><div><p>`+leafText+`</p></div></div>`, out)
		assert.Equal(t, 10.0, events[1].Score)
	})

	t.Run("differs from the uniform strategy", func(t *testing.T) {
		t.Parallel()

		out := extract(t, `<div><div><p>`+leafText+`</p></div></div>`)

		assert.Equal(t, `<div><div><div><p>`+leafText+`</p></div></div></div>`, out)
	})

	t.Run("scales scores by link density", func(t *testing.T) {
		t.Parallel()

		var events []declutter.PhaseEvent
		out := extract(t, `<div><div><p>`+leafText+`</p><a href="/x">`+strings.Repeat("b", 250)+`</a></div></div>`,
			declutter.WithStrategy(declutter.ScoreLeafPropagation),
			declutter.WithHook(func(ev declutter.PhaseEvent) { events = append(events, ev) }),
		)

		assert.InDelta(t, 5.0, events[1].Score, 1e-9)
		assert.Equal(t, `<div><div><p>`+leafText+`</p><a href="/x">`+strings.Repeat("b", 250)+`</a></div></div>`, out)
	})

	t.Run("ignores short leaves", func(t *testing.T) {
		t.Parallel()

		var events []declutter.PhaseEvent
		out := extract(t, `<div><p>too short</p></div>`,
			declutter.WithStrategy(declutter.ScoreLeafPropagation),
			declutter.WithHook(func(ev declutter.PhaseEvent) { events = append(events, ev) }),
		)

		assert.Zero(t, events[1].Score)
		assert.Equal(t, `<div><div><p>too short</p></div></div>`, out)
	})

	t.Run("initializes ancestors with tag and attribute weights", func(t *testing.T) {
		t.Parallel()

		var events []declutter.PhaseEvent
		extract(t, `<div id="content"><pre>`+strings.Repeat("c", 30)+`</pre></div>`,
			declutter.WithStrategy(declutter.ScoreLeafPropagation),
			declutter.WithHook(func(ev declutter.PhaseEvent) { events = append(events, ev) }),
		)

		assert.Equal(t, 31.0, events[1].Score)
	})
}
