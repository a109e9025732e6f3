// Package batch extracts many independent pages concurrently. Each page is
// parsed and scored on its own, so no state is shared between workers.
package batch

import (
	"context"
	"sync/atomic"

	"github.com/fwojciec/declutter"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is used when Processor.Concurrency is not positive.
const DefaultConcurrency = 10

// Page is one input document.
type Page struct {
	// Name identifies the page in results and progress events, usually its URL.
	Name string
	HTML string
}

// Output is the outcome of processing one page.
type Output struct {
	Position    int
	Name        string
	Title       string
	ContentHTML string
	Markdown    string
	ContentHash string

	// Duplicate is set when an earlier page produced the same content hash.
	Duplicate bool

	Err error
}

// Result holds the outcome of a batch, with outputs in input order.
type Result struct {
	Outputs    []Output
	Succeeded  int
	Failed     int
	Duplicates int
	Bytes      int
}

// ProgressEvent reports progress during a batch.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Name      string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// Processor runs an Extractor, and optionally a Converter, over pages.
type Processor struct {
	Extractor   declutter.Extractor
	Converter   declutter.Converter
	Concurrency int
}

// Process extracts every page. Page failures are recorded in their Output
// and never abort the batch; only cancellation of ctx returns an error.
// The progress callback, if provided, is called from the calling goroutine.
func (p *Processor) Process(ctx context.Context, pages []Page, progress ProgressFunc) (*Result, error) {
	if p.Extractor == nil {
		return nil, declutter.Errorf(declutter.EINVALID, "batch: extractor required")
	}
	if len(pages) == 0 {
		return &Result{}, nil
	}

	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(pages)
	outCh := make(chan Output, total)
	var completed atomic.Int64

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, page := range pages {
			g.Go(func() error {
				outCh <- p.processPage(gctx, i, page)
				return nil
			})
		}
		_ = g.Wait()
		close(outCh)
	}()

	outputs := make([]Output, total)
	for out := range outCh {
		completed.Add(1)
		outputs[out.Position] = out
		if progress == nil {
			continue
		}
		ev := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: int(completed.Load()),
			Total:     total,
			Name:      out.Name,
		}
		if out.Err != nil {
			ev.Type = ProgressFailed
			ev.Error = out.Err
		}
		progress(ev)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{Outputs: outputs}
	seen := make(map[string]bool)
	for i := range outputs {
		out := &outputs[i]
		if out.Err != nil {
			result.Failed++
			continue
		}
		result.Succeeded++
		result.Bytes += len(out.ContentHTML)
		if out.ContentHash == "" {
			continue
		}
		if seen[out.ContentHash] {
			out.Duplicate = true
			result.Duplicates++
		}
		seen[out.ContentHash] = true
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return result, nil
}

// processPage extracts and converts a single page.
func (p *Processor) processPage(ctx context.Context, position int, page Page) Output {
	out := Output{Position: position, Name: page.Name}
	if err := ctx.Err(); err != nil {
		out.Err = err
		return out
	}

	extracted, err := p.Extractor.Extract(page.HTML)
	if err != nil {
		out.Err = err
		return out
	}
	out.Title = extracted.Title
	out.ContentHTML = extracted.ContentHTML
	out.ContentHash = extracted.ContentHash
	if out.ContentHash == "" && out.ContentHTML != "" {
		out.ContentHash = declutter.ComputeHash(out.ContentHTML)
	}

	if p.Converter == nil || out.ContentHTML == "" {
		return out
	}
	markdown, err := p.Converter.Convert(out.ContentHTML)
	if err != nil {
		out.Err = err
		return out
	}
	out.Markdown = markdown
	return out
}
