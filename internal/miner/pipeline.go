package miner

import (
	"context"

	"repominer/internal/normalise"
)

// FetchCommits pulls commit records from fetcher and normalises them in API
// order. max bounds the number of rows returned (0 = unbounded). Errors from
// the fetcher or the normaliser propagate unchanged; no partial row is
// emitted for a failing record.
func FetchCommits(ctx context.Context, fetcher PageFetcher, max int) ([]normalise.CommitRow, error) {
	// Commits have no exclusion step, so the fetch cap and the result cap
	// coincide and pagination stops as early as possible.
	pager := NewPaginator(fetcher, max)

	var rows []normalise.CommitRow
	for {
		raw, ok, err := pager.Next(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			return rows, nil
		}
		row, err := normalise.Commit(raw)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}

// FetchIssues pulls issue records from fetcher, drops pull requests and
// normalises the rest in API order. max bounds the number of accepted rows
// (0 = unbounded): excluded records never count toward it, so the paginator
// keeps pulling pages until enough non-PR rows exist or the source drains.
func FetchIssues(ctx context.Context, fetcher PageFetcher, max int) ([]normalise.IssueRow, error) {
	pager := NewPaginator(fetcher, 0)

	var rows []normalise.IssueRow
	for {
		raw, ok, err := pager.Next(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			return rows, nil
		}
		row, accepted, err := normalise.Issue(raw)
		if err != nil {
			return nil, err
		}
		if !accepted {
			continue
		}
		rows = append(rows, row)
		if max > 0 && len(rows) >= max {
			return rows, nil
		}
	}
}
