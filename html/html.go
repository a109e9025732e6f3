// Package html adapts golang.org/x/net/html trees to the declutter node and
// document interfaces.
package html

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/declutter"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Node implements declutter.Element at compile time.
var _ declutter.Element = (*Node)(nil)

// Ensure Document implements declutter.Document at compile time.
var _ declutter.Document = (*Document)(nil)

// Node wraps an *html.Node. A nil Node, or one wrapping nil, reads as an
// empty node of type declutter.OtherNode.
type Node struct {
	n *html.Node
}

// Wrap returns a Node for n, or nil if n is nil.
func Wrap(n *html.Node) *Node {
	if n == nil {
		return nil
	}
	return &Node{n: n}
}

// HTML returns the wrapped node.
func (n *Node) HTML() *html.Node {
	if n == nil {
		return nil
	}
	return n.n
}

// Type reports whether the node is text, an element or anything else.
func (n *Node) Type() declutter.NodeType {
	if n.HTML() == nil {
		return declutter.OtherNode
	}
	switch n.n.Type {
	case html.TextNode:
		return declutter.TextNode
	case html.ElementNode:
		return declutter.ElementNode
	}
	return declutter.OtherNode
}

// TagName returns the lower case tag name of an element, or "".
func (n *Node) TagName() string {
	if n.Type() != declutter.ElementNode {
		return ""
	}
	return strings.ToLower(n.n.Data)
}

// Attribute returns the value of the named attribute, or "" when absent.
func (n *Node) Attribute(name string) string {
	if n.HTML() == nil {
		return ""
	}
	for _, a := range n.n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val
		}
	}
	return ""
}

// Children returns the child nodes in document order.
func (n *Node) Children() []declutter.Node {
	if n.HTML() == nil {
		return nil
	}
	var children []declutter.Node
	for c := n.n.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, &Node{n: c})
	}
	return children
}

// Text returns the data of a text node, or the text content of any other
// node.
func (n *Node) Text() string {
	if n.HTML() == nil {
		return ""
	}
	if n.n.Type == html.TextNode {
		return n.n.Data
	}
	return TextContent(n.n)
}

// SetAttribute sets the named attribute, replacing any previous value.
func (n *Node) SetAttribute(name, value string) {
	if n.HTML() == nil {
		return
	}
	for i, a := range n.n.Attr {
		if a.Namespace == "" && a.Key == name {
			n.n.Attr[i].Val = value
			return
		}
	}
	n.n.Attr = append(n.n.Attr, html.Attribute{Key: name, Val: value})
}

// AppendChild appends child to the node. Children from other DOM
// implementations and nodes that already have a parent are ignored.
func (n *Node) AppendChild(child declutter.Node) {
	c, ok := child.(*Node)
	if !ok || n.HTML() == nil || c.HTML() == nil || c.n.Parent != nil {
		return
	}
	n.n.AppendChild(c.n)
}

// SetInnerHTML replaces the children of the node with one raw node holding
// markup. The markup is rendered verbatim and never parsed.
func (n *Node) SetInnerHTML(markup string) {
	if n.HTML() == nil {
		return
	}
	for c := n.n.FirstChild; c != nil; c = n.n.FirstChild {
		n.n.RemoveChild(c)
	}
	n.n.AppendChild(&html.Node{Type: html.RawNode, Data: markup})
}

// Document creates detached x/net/html nodes.
type Document struct{}

// NewDocument returns a new Document.
func NewDocument() *Document {
	return &Document{}
}

// CreateElement returns a new element with the given tag name.
func (d *Document) CreateElement(tagName string) declutter.Element {
	tagName = strings.ToLower(tagName)
	return &Node{n: &html.Node{
		Type:     html.ElementNode,
		Data:     tagName,
		DataAtom: atom.Lookup([]byte(tagName)),
	}}
}

// CreateTextNode returns a new text node.
func (d *Document) CreateTextNode(value string) declutter.Node {
	return &Node{n: &html.Node{Type: html.TextNode, Data: value}}
}

// Parse parses an HTML document.
func Parse(r io.Reader) (*Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return Wrap(doc), nil
}

// ParseString parses an HTML document from a string.
// Empty input is rejected with declutter.EINVALID.
func ParseString(s string) (*Node, error) {
	if strings.TrimSpace(s) == "" {
		return nil, declutter.Errorf(declutter.EINVALID, "empty HTML input")
	}
	return Parse(strings.NewReader(s))
}

// Render writes n as HTML. n must have been created by this package.
func Render(n declutter.Node) (string, error) {
	node, ok := n.(*Node)
	if !ok || node.HTML() == nil {
		return "", declutter.Errorf(declutter.EINVALID, "cannot render %T", n)
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, node.n); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return buf.String(), nil
}

// Find returns the first element with the given tag name under n in
// document order, including n itself.
func Find(n *Node, tagName string) *Node {
	if n.HTML() == nil {
		return nil
	}
	stack := []*html.Node{n.n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.Type == html.ElementNode && strings.EqualFold(cur.Data, tagName) {
			return Wrap(cur)
		}
		for c := cur.LastChild; c != nil; c = c.PrevSibling {
			stack = append(stack, c)
		}
	}
	return nil
}

// TextContent returns the concatenated data of all text and raw nodes
// under n.
func TextContent(n *html.Node) string {
	var sb strings.Builder
	stack := []*html.Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.Type == html.TextNode || cur.Type == html.RawNode {
			sb.WriteString(cur.Data)
			continue
		}
		for c := cur.LastChild; c != nil; c = c.PrevSibling {
			stack = append(stack, c)
		}
	}
	return sb.String()
}
