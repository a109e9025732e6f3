package declutter

import (
	"strings"
	"unicode/utf8"
)

// Scoring constants of the filtering walk.
const (
	// TextChunk is the number of trimmed runes worth one extra point.
	TextChunk = 25

	// WeakChildPenalty is charged to an element for every kept child whose
	// score is not positive.
	WeakChildPenalty = 5

	BlockPenalty = 1
	ListPenalty  = 2
	ImageBonus   = 10
)

var rejectedTags = map[string]bool{
	"head":     true,
	"script":   true,
	"noscript": true,
	"style":    true,
	"meta":     true,
	"link":     true,
	"object":   true,
	"form":     true,
	"textarea": true,
	"input":    true,
	"select":   true,
	"button":   true,
	"iframe":   true,
}

var blockTags = map[string]bool{
	"div":        true,
	"p":          true,
	"pre":        true,
	"figure":     true,
	"figcaption": true,
	"h1":         true,
	"h2":         true,
}

// frame is an element whose children are still being walked.
type frame struct {
	mirror   *Mirror
	children []Node
	next     int
}

// Filter walks the tree under root and returns its scored mirror.
//
// Children are scored before their parent. Rejected nodes contribute
// nothing; kept nodes whose score is not positive are dropped and cost
// their parent WeakChildPenalty. Filter always returns a node: a rejected
// root yields an empty zero-scored frame.
func Filter(root Node) *Mirror {
	m := open(root)
	if m == nil {
		return &Mirror{Kind: KindElement}
	}
	if !m.walks() {
		finish(m)
		return m
	}

	stack := []*frame{{mirror: m, children: root.Children()}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		if f.next < len(f.children) {
			child := f.children[f.next]
			f.next++
			cm := open(child)
			if cm == nil {
				continue
			}
			if cm.walks() {
				stack = append(stack, &frame{mirror: cm, children: child.Children()})
				continue
			}
			finish(cm)
			absorb(f.mirror, cm)
			continue
		}

		stack = stack[:len(stack)-1]
		finish(f.mirror)
		if len(stack) > 0 {
			absorb(stack[len(stack)-1].mirror, f.mirror)
		}
	}
	return m
}

// open creates the mirror of n, or returns nil if n is rejected.
func open(n Node) *Mirror {
	if n == nil {
		return nil
	}
	switch n.Type() {
	case TextNode:
		value := n.Text()
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return nil
		}
		length := utf8.RuneCountInString(trimmed)
		return &Mirror{
			Source:  n,
			Kind:    KindText,
			Text:    value,
			TextLen: length,
			Score:   float64(1 + length/TextChunk),
		}
	case ElementNode:
		if IsUnlikelyCandidate(n.Attribute("class"), n.Attribute("id")) {
			return nil
		}
		tag := strings.ToLower(n.TagName())
		if rejectedTags[tag] {
			return nil
		}
		if tag == "img" && !hasImageSource(n.Attribute("src")) {
			return nil
		}
		m := &Mirror{Source: n, Kind: KindElement, Tag: tag}
		if tag == "pre" {
			m.Text = n.Text()
		}
		return m
	}
	return nil
}

// walks reports whether the children of m are visited one by one, both when
// filtering and when materializing.
// Text has no children and pre content is kept as one opaque payload.
func (m *Mirror) walks() bool {
	return m.Kind == KindElement && m.Tag != "pre" && m.Tag != "img"
}

// finish applies the element's own weights once its children are scored.
func finish(m *Mirror) {
	if m.Kind != KindElement {
		return
	}
	m.Score += float64(elementWeight(m.Tag, m.Source))
	switch {
	case blockTags[m.Tag]:
		m.Block = true
		m.Score -= BlockPenalty
	case m.Tag == "ul" || m.Tag == "ol":
		m.Score -= ListPenalty
	case m.Tag == "img":
		m.Score += ImageBonus
	}
}

// absorb attaches a finished child to parent or charges the penalty for it.
// Anchor scores are not propagated so link lists cannot inflate their
// container.
func absorb(parent, child *Mirror) {
	if child.Score <= 0 {
		parent.Score -= WeakChildPenalty
		return
	}
	parent.Append(child)
	if child.Tag != "a" {
		parent.Score += child.Score
	}
}

// hasImageSource reports whether src is worth keeping. Inline data URIs are
// dropped.
func hasImageSource(src string) bool {
	src = strings.TrimSpace(src)
	return src != "" && !strings.Contains(src, "data:image")
}
