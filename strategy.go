package declutter

import (
	"strings"
	"unicode/utf8"
)

// Strategy selects how content scores are assigned before the top
// candidate is chosen.
type Strategy int

// Strategy constants.
const (
	// ScoreUniform keeps the scores computed by the filtering walk, where
	// every kept node is scored bottom-up in a single pass.
	ScoreUniform Strategy = iota

	// ScoreLeafPropagation rescores the filtered tree from paragraph-like
	// leaves only. Each leaf feeds its parent in full and its grandparent at
	// half weight, and every scored node is then scaled by one minus its
	// link density.
	ScoreLeafPropagation
)

// String returns the name of the strategy.
func (s Strategy) String() string {
	switch s {
	case ScoreUniform:
		return "uniform"
	case ScoreLeafPropagation:
		return "leaf-propagation"
	}
	return "unknown"
}

// Leaf propagation constants.
const (
	// MinLeafLength is the trimmed rune count below which a leaf is ignored.
	MinLeafLength = 25

	// LeafLengthChunk is the number of runes worth one extra point, up to
	// MaxLeafLengthBonus.
	LeafLengthChunk    = 100
	MaxLeafLengthBonus = 3
)

var leafTags = map[string]bool{
	"p":   true,
	"td":  true,
	"pre": true,
}

// textStats aggregates the text under a mirror node.
type textStats struct {
	length int
	links  int
	commas int
}

// rescore applies the strategy to a tree built by Filter.
func (s Strategy) rescore(root *Mirror) {
	switch s {
	case ScoreUniform:
	case ScoreLeafPropagation:
		propagateLeaves(root)
	}
}

func propagateLeaves(root *Mirror) {
	nodes := root.Nodes()
	stats := collectStats(nodes)

	for _, n := range nodes {
		n.Score = 0
	}

	scored := make(map[*Mirror]bool)
	var order []*Mirror
	credit := func(n *Mirror, delta float64) {
		if n == nil || n.IsPlaceholder() {
			return
		}
		if !scored[n] {
			scored[n] = true
			order = append(order, n)
			n.Score = float64(elementWeight(n.Tag, n.Source))
		}
		n.Score += delta
	}

	for _, n := range nodes {
		if n.Kind != KindElement || !leafTags[n.Tag] {
			continue
		}
		st := stats[n]
		if st.length < MinLeafLength {
			continue
		}
		delta := float64(1 + st.commas + min(st.length/LeafLengthChunk, MaxLeafLengthBonus))
		credit(n.Parent, delta)
		if n.Parent != nil {
			credit(n.Parent.Parent, delta/2)
		}
	}

	for _, n := range order {
		n.Score *= 1 - stats[n].linkDensity()
	}
}

// collectStats computes text statistics for every node. nodes must be in
// pre-order so that walking it backwards visits children before parents.
func collectStats(nodes []*Mirror) map[*Mirror]textStats {
	stats := make(map[*Mirror]textStats, len(nodes))
	for i := len(nodes) - 1; i >= 0; i-- {
		n := nodes[i]
		var st textStats
		switch {
		case n.Kind == KindText:
			st.length = n.TextLen
			st.commas = strings.Count(n.Text, ",")
		case n.Tag == "pre":
			st.length = utf8.RuneCountInString(strings.TrimSpace(n.Text))
			st.commas = strings.Count(n.Text, ",")
		default:
			for _, c := range n.Children {
				cs := stats[c]
				st.length += cs.length
				st.links += cs.links
				st.commas += cs.commas
			}
		}
		if n.Tag == "a" {
			st.links = st.length
		}
		stats[n] = st
	}
	return stats
}

// linkDensity is the share of text that sits inside anchors.
func (st textStats) linkDensity() float64 {
	if st.length == 0 {
		return 0
	}
	return float64(st.links) / float64(st.length)
}
