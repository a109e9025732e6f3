package declutter

// Kind is the variant of a Mirror node.
type Kind int

// Kind constants.
const (
	KindElement Kind = iota
	KindText
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindText:
		return "text"
	}
	return "unknown"
}

// Mirror is a node of the filtered, score annotated shadow of the input tree.
// A Mirror tree is built by Filter and lives for the duration of one
// extraction.
type Mirror struct {
	// Source is the originating host node. It is nil only for the empty
	// frame returned when the root itself is rejected.
	Source Node

	Kind     Kind
	Parent   *Mirror
	Children []*Mirror

	// Score is the content score. It is integral under ScoreUniform.
	Score float64

	// Block is set for block level elements.
	Block bool

	// Tag is the lower case tag name of an element.
	Tag string

	// Text is the untrimmed value of a text node, or the raw text payload
	// of a pre element.
	Text string

	// TextLen is the rune count of the trimmed text of a text node.
	TextLen int
}

// Append adds child as the last child of m.
func (m *Mirror) Append(child *Mirror) {
	m.Children = append(m.Children, child)
	child.Parent = m
}

// IsPlaceholder reports whether m is the empty frame standing in for a
// rejected root.
func (m *Mirror) IsPlaceholder() bool {
	return m.Source == nil
}

// Nodes returns m and all of its descendants in pre-order.
func (m *Mirror) Nodes() []*Mirror {
	var nodes []*Mirror
	stack := []*Mirror{m}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nodes = append(nodes, n)
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, n.Children[i])
		}
	}
	return nodes
}
