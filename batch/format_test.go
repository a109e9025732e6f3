package batch_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/declutter/batch"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result *batch.Result
		want   string
	}{
		{
			name: "nil result",
			want: "",
		},
		{
			name: "uses title",
			result: &batch.Result{Outputs: []batch.Output{
				{Name: "https://example.com/a", Title: "Storm", Markdown: "Harbour closed."},
			}},
			want: "## Storm\nHarbour closed.",
		},
		{
			name: "falls back to name",
			result: &batch.Result{Outputs: []batch.Output{
				{Name: "https://example.com/a", Markdown: "Harbour closed."},
			}},
			want: "## https://example.com/a\nHarbour closed.",
		},
		{
			name: "skips failures duplicates and empty pages",
			result: &batch.Result{Outputs: []batch.Output{
				{Title: "One", Markdown: "first"},
				{Title: "Broken", Markdown: "x", Err: errors.New("boom")},
				{Title: "Again", Markdown: "first", Duplicate: true},
				{Title: "Empty"},
				{Title: "Two", Markdown: "second"},
			}},
			want: "## One\nfirst\n\n## Two\nsecond",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, batch.Format(tt.result))
		})
	}
}
