package miner

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repominer/internal/normalise"
)

func rawCommit(sha, message string) normalise.RawRecord {
	return normalise.RawRecord{
		"sha": sha,
		"commit": map[string]any{
			"author": map[string]any{
				"name":  "Ada Lovelace",
				"email": "ada@example.com",
				"date":  "2024-03-05T09:30:00Z",
			},
			"message": message,
		},
	}
}

func rawIssue(number int, state, created string, closed any) normalise.RawRecord {
	return normalise.RawRecord{
		"id":         float64(1000 + number),
		"number":     float64(number),
		"title":      fmt.Sprintf("Issue %d", number),
		"user":       map[string]any{"login": "ada"},
		"state":      state,
		"created_at": created,
		"closed_at":  closed,
		"comments":   float64(0),
	}
}

func rawPullRequest(number int) normalise.RawRecord {
	r := rawIssue(number, "open", "2024-03-01T00:00:00Z", nil)
	r["pull_request"] = map[string]any{}
	return r
}

func TestFetchCommits(t *testing.T) {
	t.Run("caps a five-commit history at three rows in order", func(t *testing.T) {
		fetcher := &fakeFetcher{pages: [][]normalise.RawRecord{
			{rawCommit("c1", "first"), rawCommit("c2", "second")},
			{rawCommit("c3", "third"), rawCommit("c4", "fourth")},
			{rawCommit("c5", "fifth")},
		}}

		rows, err := FetchCommits(context.Background(), fetcher, 3)

		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "c1", rows[0].SHA)
		assert.Equal(t, "c2", rows[1].SHA)
		assert.Equal(t, "c3", rows[2].SHA)
		for _, row := range rows {
			assert.Equal(t, "2024-03-05T09:30:00", row.Date)
		}
	})

	t.Run("returns everything when unbounded", func(t *testing.T) {
		fetcher := &fakeFetcher{pages: [][]normalise.RawRecord{
			{rawCommit("c1", "first")},
			{rawCommit("c2", "second")},
		}}

		rows, err := FetchCommits(context.Background(), fetcher, 0)

		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("fails fast on a malformed record", func(t *testing.T) {
		broken := rawCommit("c2", "second")
		delete(broken, "sha")
		fetcher := &fakeFetcher{pages: [][]normalise.RawRecord{
			{rawCommit("c1", "first"), broken},
		}}

		rows, err := FetchCommits(context.Background(), fetcher, 0)

		var fieldErr *normalise.MissingFieldError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, "sha", fieldErr.Field)
		assert.Nil(t, rows)
	})

	t.Run("propagates transport errors", func(t *testing.T) {
		boom := errors.New("boom")
		fetcher := &fakeFetcher{failOn: 1, err: boom}

		_, err := FetchCommits(context.Background(), fetcher, 0)

		assert.ErrorIs(t, err, boom)
	})
}

func TestFetchIssues(t *testing.T) {
	t.Run("excluded pull requests never count toward max", func(t *testing.T) {
		fetcher := &fakeFetcher{pages: [][]normalise.RawRecord{
			{rawIssue(1, "open", "2024-03-01T00:00:00Z", nil), rawPullRequest(2), rawPullRequest(3)},
			{rawPullRequest(4), rawIssue(5, "open", "2024-03-02T00:00:00Z", nil)},
			{rawIssue(6, "open", "2024-03-03T00:00:00Z", nil)},
		}}

		rows, err := FetchIssues(context.Background(), fetcher, 2)

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, 1, rows[0].Number)
		assert.Equal(t, 5, rows[1].Number)
		// The cap was met with page two; page three stays unfetched.
		assert.Equal(t, 2, fetcher.calls)
	})

	t.Run("closed issues carry their durations", func(t *testing.T) {
		fetcher := &fakeFetcher{pages: [][]normalise.RawRecord{{
			rawIssue(1, "closed", "2024-01-01T00:00:00Z", "2024-01-02T00:00:00Z"),
			rawIssue(2, "closed", "2024-01-01T00:00:00Z", "2024-01-04T06:00:00Z"),
		}}}

		rows, err := FetchIssues(context.Background(), fetcher, 0)

		require.NoError(t, err)
		require.Len(t, rows, 2)
		require.NotNil(t, rows[0].OpenDurationDays)
		assert.Equal(t, 1.0, *rows[0].OpenDurationDays)
		require.NotNil(t, rows[1].OpenDurationDays)
		assert.Equal(t, 3.25, *rows[1].OpenDurationDays)
	})

	t.Run("a source of only pull requests yields no rows", func(t *testing.T) {
		fetcher := &fakeFetcher{pages: [][]normalise.RawRecord{
			{rawPullRequest(1), rawPullRequest(2)},
		}}

		rows, err := FetchIssues(context.Background(), fetcher, 5)

		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("fails fast on a malformed record", func(t *testing.T) {
		broken := rawIssue(2, "open", "2024-03-01T00:00:00Z", nil)
		delete(broken, "title")
		fetcher := &fakeFetcher{pages: [][]normalise.RawRecord{
			{rawIssue(1, "open", "2024-03-01T00:00:00Z", nil), broken},
		}}

		rows, err := FetchIssues(context.Background(), fetcher, 0)

		var fieldErr *normalise.MissingFieldError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, "title", fieldErr.Field)
		assert.Nil(t, rows)
	})

	t.Run("propagates transport errors", func(t *testing.T) {
		boom := errors.New("boom")
		fetcher := &fakeFetcher{failOn: 1, err: boom}

		_, err := FetchIssues(context.Background(), fetcher, 0)

		assert.ErrorIs(t, err, boom)
	})
}
