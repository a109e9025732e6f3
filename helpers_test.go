package declutter_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/declutter"
	dechtml "github.com/fwojciec/declutter/html"
	"github.com/stretchr/testify/require"
)

// parseRoot parses markup inside a body and returns its first element.
func parseRoot(t *testing.T, markup string) *dechtml.Node {
	t.Helper()

	doc, err := dechtml.ParseString("<!DOCTYPE html><html><head></head><body>" + markup + "</body></html>")
	require.NoError(t, err)
	body := dechtml.Find(doc, "body")
	require.NotNil(t, body)
	for _, c := range body.Children() {
		if c.Type() == declutter.ElementNode {
			return c.(*dechtml.Node)
		}
	}
	t.Fatalf("no element in %q", markup)
	return nil
}

// extract runs the pipeline on markup and renders the container.
func extract(t *testing.T, markup string, opts ...declutter.Option) string {
	t.Helper()

	container := declutter.Extract(parseRoot(t, markup), dechtml.NewDocument(), opts...)
	out, err := dechtml.Render(container)
	require.NoError(t, err)
	return out
}

// prose returns n runes of text without leading or trailing spaces.
func prose(n int) string {
	const words = "the quick brown fox jumps over the lazy dog "
	s := strings.Repeat(words, n/len(words)+1)[:n]
	if strings.HasSuffix(s, " ") {
		s = s[:n-1] + "x"
	}
	return s
}

// findTag returns the first mirror node with the given tag in pre-order.
func findTag(t *testing.T, root *declutter.Mirror, tag string) *declutter.Mirror {
	t.Helper()

	for _, n := range root.Nodes() {
		if n.Tag == tag {
			return n
		}
	}
	t.Fatalf("no %s in mirror", tag)
	return nil
}

// deepTree builds depth nested divs around one paragraph holding text.
func deepTree(depth int, text string) declutter.Node {
	doc := dechtml.NewDocument()
	p := doc.CreateElement("p")
	p.AppendChild(doc.CreateTextNode(text))
	var inner declutter.Element = p
	for range depth {
		div := doc.CreateElement("div")
		div.AppendChild(inner)
		inner = div
	}
	return inner
}
