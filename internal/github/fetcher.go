package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"repominer/internal/miner"
	"repominer/internal/normalise"
)

// pageCursor is the fetcher's opaque cursor: the next page number reported
// by the API's Link header.
type pageCursor int

// resourceFetcher lists one paged resource as raw records.
type resourceFetcher struct {
	client    *Client
	operation string
	path      string
	params    url.Values
	perPage   int
}

// Ensure resourceFetcher implements the interface.
var _ miner.PageFetcher = (*resourceFetcher)(nil)

// Commits returns a page fetcher over the repository's commit list, newest
// first as the API orders it.
func (c *Client) Commits(owner, repo string, perPage int) miner.PageFetcher {
	return &resourceFetcher{
		client:    c,
		operation: "list commits",
		path:      fmt.Sprintf("repos/%s/%s/commits", owner, repo),
		perPage:   perPage,
	}
}

// Issues returns a page fetcher over the repository's issue list. state is
// passed through to the request ("open", "closed" or "all"; empty means the
// API default). Pull requests still appear in the response; exclusion is the
// normaliser's job.
func (c *Client) Issues(owner, repo, state string, perPage int) miner.PageFetcher {
	params := url.Values{}
	if state != "" {
		params.Set("state", state)
	}
	return &resourceFetcher{
		client:    c,
		operation: "list issues",
		path:      fmt.Sprintf("repos/%s/%s/issues", owner, repo),
		params:    params,
		perPage:   perPage,
	}
}

// FetchPage requests one page. A nil cursor requests the first page; the
// returned cursor is nil once the Link header reports no next page.
func (f *resourceFetcher) FetchPage(ctx context.Context, cursor miner.Cursor) (miner.Page, error) {
	page := 1
	if c, ok := cursor.(pageCursor); ok {
		page = int(c)
	}

	perPage := f.perPage
	if perPage <= 0 {
		perPage = DefaultPageSize
	}

	q := url.Values{}
	for key, vals := range f.params {
		q[key] = vals
	}
	q.Set("per_page", strconv.Itoa(perPage))
	q.Set("page", strconv.Itoa(page))

	req, err := f.client.gh.NewRequest(http.MethodGet, f.path+"?"+q.Encode(), nil)
	if err != nil {
		return miner.Page{}, fmt.Errorf("%s: %w", f.operation, err)
	}

	var records []normalise.RawRecord
	resp, err := f.client.gh.Do(ctx, req, &records)
	if err != nil {
		return miner.Page{}, wrapError(err, f.operation)
	}

	var next miner.Cursor
	if resp.NextPage != 0 {
		next = pageCursor(resp.NextPage)
	}
	return miner.Page{Records: records, Next: next}, nil
}
