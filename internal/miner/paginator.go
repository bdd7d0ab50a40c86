// Package miner drives bounded pagination over a page-fetching source and
// orchestrates the commit and issue pipelines. Capping is split in two:
// the Paginator's fetch cap bounds raw records pulled from the source, while
// the pipelines own the result cap, so excluded records (pull requests) never
// count toward the rows a caller asked for.
package miner

import (
	"context"

	"repominer/internal/normalise"
)

// Cursor is an opaque pagination token. It is produced and consumed by a
// PageFetcher; the Paginator only passes it back on the next request.
type Cursor any

// Page is one fetched page of raw records. Next is nil when the source is
// exhausted.
type Page struct {
	Records []normalise.RawRecord
	Next    Cursor
}

// PageFetcher produces successive pages of raw records. A nil cursor requests
// the first page.
type PageFetcher interface {
	FetchPage(ctx context.Context, cursor Cursor) (Page, error)
}

// Paginator yields raw records one at a time, requesting the next page only
// when the current one drains. It is single-use: cursor state is internal and
// not restartable. Fetcher errors propagate unchanged; no retries.
type Paginator struct {
	fetcher  PageFetcher
	fetchCap int // max raw records yielded, 0 = unbounded

	buf     []normalise.RawRecord
	cursor  Cursor
	yielded int
	started bool
	done    bool
}

// NewPaginator returns a Paginator over fetcher. fetchCap bounds the total
// raw records yielded (0 = unbounded); it guards worst-case pagination, not
// result counts.
func NewPaginator(fetcher PageFetcher, fetchCap int) *Paginator {
	return &Paginator{fetcher: fetcher, fetchCap: fetchCap}
}

// Next returns the next raw record. The second result is false when the
// source is exhausted or the fetch cap was reached.
func (p *Paginator) Next(ctx context.Context) (normalise.RawRecord, bool, error) {
	for len(p.buf) == 0 {
		if p.done || (p.started && p.cursor == nil) {
			return nil, false, nil
		}
		page, err := p.fetcher.FetchPage(ctx, p.cursor)
		if err != nil {
			p.done = true
			return nil, false, err
		}
		p.started = true
		p.buf = page.Records
		p.cursor = page.Next
	}

	record := p.buf[0]
	p.buf = p.buf[1:]
	p.yielded++
	if p.fetchCap > 0 && p.yielded >= p.fetchCap {
		// Stop immediately after the capth record, even mid-page.
		p.done = true
		p.buf = nil
	}
	return record, true, nil
}
