package declutter

import (
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"
)

// Keyword vocabularies matched case-insensitively as substrings of class
// names and ids.
var (
	UnlikelyKeywords = []string{
		"combx", "comment", "community", "disqus", "extra", "foot", "header",
		"menu", "remark", "rss", "shoutbox", "sidebar", "sponsor", "ad-break",
		"agegate", "pagination", "pager", "popup", "tweet", "twitter",
	}
	ExceptionKeywords = []string{
		"and", "article", "body", "column", "main", "shadow",
	}
	PositiveKeywords = []string{
		"article", "body", "content", "entry", "hentry", "main", "page",
		"pagination", "post", "text", "blog", "story",
	}
	NegativeKeywords = []string{
		"combx", "comment", "com-", "contact", "foot", "footer", "footnote",
		"masthead", "media", "meta", "outbrain", "promo", "related", "scroll",
		"shoutbox", "sidebar", "sponsor", "shopping", "tags", "tool", "widget",
	}
)

// AttributePenalty is the weight a class name or id gains per matching
// keyword class.
const AttributePenalty = 25

var (
	unlikelyMatcher  = newMatcher(UnlikelyKeywords)
	exceptionMatcher = newMatcher(ExceptionKeywords)
	positiveMatcher  = newMatcher(PositiveKeywords)
	negativeMatcher  = newMatcher(NegativeKeywords)
)

// matcher is a case-insensitive substring matcher over a fixed vocabulary.
// It is safe for concurrent use.
type matcher struct {
	m *ahocorasick.Matcher
}

func newMatcher(keywords []string) *matcher {
	return &matcher{m: ahocorasick.NewStringMatcher(keywords)}
}

func (m *matcher) contains(s string) bool {
	if s == "" {
		return false
	}
	return len(m.m.MatchThreadSafe([]byte(strings.ToLower(s)))) > 0
}

// TagWeight returns the score contribution of an element's tag name.
func TagWeight(tagName string) int {
	switch strings.ToLower(tagName) {
	case "main", "article":
		return 10
	case "section":
		return 8
	case "p", "div":
		return 5
	case "pre", "td", "blockquote":
		return 3
	case "address", "ol", "ul", "dl", "dd", "dt", "li", "form":
		return -3
	case "h1", "h2", "h3", "h4", "h5", "h6", "th":
		return -5
	}
	return 0
}

// AttributeWeight returns the score contribution of a class name or id.
// A negative keyword costs 25 and a positive keyword earns 25; a value
// matching both nets zero.
func AttributeWeight(value string) int {
	var weight int
	if negativeMatcher.contains(value) {
		weight -= AttributePenalty
	}
	if positiveMatcher.contains(value) {
		weight += AttributePenalty
	}
	return weight
}

// IsUnlikelyCandidate reports whether an element with the given class name
// and id looks like boilerplate.
func IsUnlikelyCandidate(className, id string) bool {
	s := className + " " + id
	return unlikelyMatcher.contains(s) && !exceptionMatcher.contains(s)
}

// elementWeight combines the tag, class and id contributions of n.
func elementWeight(tag string, n Node) int {
	return TagWeight(tag) + AttributeWeight(n.Attribute("class")) + AttributeWeight(n.Attribute("id"))
}
