package htmltomarkdown

import (
	"strconv"
	"strings"
	"unicode"
)

// Heading is an ATX heading found in converted Markdown.
type Heading struct {
	Level  int    `json:"level"`
	Text   string `json:"text"`
	Anchor string `json:"anchor"`
}

// Outline returns the headings of markdown in order, ignoring fenced code.
// Anchors are slugs of the heading text; repeats get a numeric suffix.
func Outline(markdown string) []Heading {
	var headings []Heading
	seen := make(map[string]int)
	fenced := false

	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			fenced = !fenced
			continue
		}
		if fenced {
			continue
		}
		level, text, ok := parseHeading(line)
		if !ok {
			continue
		}

		anchor := slug(text)
		if n, ok := seen[anchor]; ok {
			seen[anchor] = n + 1
			anchor += "-" + strconv.Itoa(n)
		} else {
			seen[anchor] = 1
		}
		headings = append(headings, Heading{Level: level, Text: text, Anchor: anchor})
	}
	return headings
}

func parseHeading(line string) (int, string, bool) {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > 6 || level == len(line) || line[level] != ' ' {
		return 0, "", false
	}
	text := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(line[level:]), "#"))
	if text == "" {
		return 0, "", false
	}
	return level, text, true
}

func slug(text string) string {
	var sb strings.Builder
	dash := false
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(r)
			dash = false
		case (unicode.IsSpace(r) || r == '-') && !dash && sb.Len() > 0:
			sb.WriteRune('-')
			dash = true
		}
	}
	return strings.TrimSuffix(sb.String(), "-")
}
