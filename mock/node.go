package mock

import "github.com/fwojciec/declutter"

var _ declutter.Node = (*Node)(nil)

// Node is a mock implementation of declutter.Node.
type Node struct {
	TypeFn      func() declutter.NodeType
	TagNameFn   func() string
	AttributeFn func(name string) string
	ChildrenFn  func() []declutter.Node
	TextFn      func() string
}

func (n *Node) Type() declutter.NodeType {
	return n.TypeFn()
}

func (n *Node) TagName() string {
	return n.TagNameFn()
}

func (n *Node) Attribute(name string) string {
	return n.AttributeFn(name)
}

func (n *Node) Children() []declutter.Node {
	return n.ChildrenFn()
}

func (n *Node) Text() string {
	return n.TextFn()
}
