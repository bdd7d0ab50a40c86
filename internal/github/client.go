// Package github implements the page-fetching side of the miner over the
// GitHub REST API. Requests go through go-github in raw mode, decoding each
// page into untyped records so the normaliser owns all typing; pagination
// cursors come from the Link header via Response.NextPage.
package github

import (
	"context"
	"net/http"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultPageSize is the per-page record count requested from the API.
const DefaultPageSize = 100

// Client wraps the go-github client for paged resource listing.
type Client struct {
	gh *gh.Client
}

// NewClient creates a GitHub API client. An empty token yields an
// unauthenticated client, which works against public repositories at the
// lower anonymous rate limit.
func NewClient(ctx context.Context, token string) *Client {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		httpClient = oauth2.NewClient(ctx, ts)
	} else {
		httpClient = &http.Client{}
	}
	httpClient.Timeout = DefaultTimeout

	return &Client{gh: gh.NewClient(httpClient)}
}

// GitHub returns the underlying go-github client. Tests point its BaseURL at
// a local server.
func (c *Client) GitHub() *gh.Client {
	return c.gh
}
