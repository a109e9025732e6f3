package declutter

// NodeType discriminates the host DOM nodes the extractor understands.
type NodeType int

// NodeType constants.
const (
	OtherNode NodeType = iota
	TextNode
	ElementNode
)

// Node is the read capability the extractor needs from a host DOM node.
// Implementations should treat missing data as empty rather than fail.
type Node interface {
	// Type reports whether the node is text, an element or anything else.
	Type() NodeType

	// TagName returns the lower case tag name of an element, or "".
	TagName() string

	// Attribute returns the value of the named attribute, or "" when absent.
	Attribute(name string) string

	// Children returns the child nodes in document order.
	Children() []Node

	// Text returns the node value of a text node, or the concatenated text
	// content of an element.
	Text() string
}

// Element is a node created by a Document that can be populated.
type Element interface {
	Node

	SetAttribute(name, value string)
	AppendChild(child Node)

	// SetInnerHTML replaces the children of the element with markup that is
	// kept verbatim.
	SetInnerHTML(markup string)
}

// Document creates the nodes of the extracted output.
type Document interface {
	CreateElement(tagName string) Element
	CreateTextNode(value string) Node
}
