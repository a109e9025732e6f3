package declutter_test

import (
	"testing"

	"github.com/fwojciec/declutter"
	"github.com/stretchr/testify/assert"
)

func TestTagWeight(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag  string
		want int
	}{
		{"main", 10},
		{"ARTICLE", 10},
		{"section", 8},
		{"p", 5},
		{"div", 5},
		{"pre", 3},
		{"td", 3},
		{"blockquote", 3},
		{"address", -3},
		{"ul", -3},
		{"li", -3},
		{"dt", -3},
		{"form", -3},
		{"h1", -5},
		{"h6", -5},
		{"th", -5},
		{"span", 0},
		{"a", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, declutter.TagWeight(tt.tag))
		})
	}
}

func TestAttributeWeight(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  int
	}{
		{"", 0},
		{"wrapper", 0},
		{"sidebar", -25},
		{"SideBar", -25},
		{"com-nav", -25},
		{"article-content", 25},
		{"BlogPost", 25},
		{"comment-body", 0},
		{"related-story", 0},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, declutter.AttributeWeight(tt.value))
		})
	}
}

func TestIsUnlikelyCandidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		className string
		id        string
		want      bool
	}{
		{"empty", "", "", false},
		{"sidebar class", "sidebar", "", true},
		{"footer id", "", "page-footer", true},
		{"upper case", "DISQUS_thread", "", true},
		{"exception in class", "sidebar main", "", false},
		{"exception in id", "comment", "article", false},
		{"plain content", "content", "story", false},
		{"twitter widget", "twitter-embed", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, declutter.IsUnlikelyCandidate(tt.className, tt.id))
		})
	}
}
