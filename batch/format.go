package batch

import "strings"

// Format joins the Markdown of every successful, non-duplicate output in
// input order. Each document is headed by its title, or its name when the
// title is empty. Documents are separated by blank lines.
func Format(result *Result) string {
	if result == nil {
		return ""
	}

	var parts []string
	for _, out := range result.Outputs {
		if out.Err != nil || out.Duplicate || out.Markdown == "" {
			continue
		}
		header := out.Title
		if header == "" {
			header = out.Name
		}
		parts = append(parts, "## "+header+"\n"+out.Markdown)
	}
	return strings.Join(parts, "\n\n")
}
