package declutter

// Materialize rebuilds the subtree under m as new nodes created by doc.
// It returns nil for the empty frame of a rejected root.
//
// Anchors keep only href, images keep only src and alt, and pre elements
// receive their captured text as verbatim markup.
func Materialize(m *Mirror, doc Document) Node {
	root := create(m, doc)
	if root == nil {
		return nil
	}
	el, ok := root.(Element)
	if !ok || !m.walks() {
		return root
	}

	type item struct {
		mirror *Mirror
		parent Element
	}
	var stack []item
	push := func(parent Element, children []*Mirror) {
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, item{mirror: children[i], parent: parent})
		}
	}
	push(el, m.Children)

	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := create(it.mirror, doc)
		if n == nil {
			continue
		}
		it.parent.AppendChild(n)
		if el, ok := n.(Element); ok && it.mirror.walks() {
			push(el, it.mirror.Children)
		}
	}
	return root
}

// create builds the output node for m without its children.
func create(m *Mirror, doc Document) Node {
	if m.IsPlaceholder() {
		return nil
	}
	switch m.Kind {
	case KindText:
		return doc.CreateTextNode(m.Text)
	case KindElement:
		el := doc.CreateElement(m.Tag)
		switch m.Tag {
		case "a":
			el.SetAttribute("href", m.Source.Attribute("href"))
		case "img":
			el.SetAttribute("src", m.Source.Attribute("src"))
			el.SetAttribute("alt", m.Source.Attribute("alt"))
		case "pre":
			el.SetInnerHTML(m.Text)
		}
		return el
	}
	return nil
}
