// Package report writes normalised rows out as CSV: a header row, one record
// per row, standard quoting for fields containing commas or quotes.
package report

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"repominer/internal/normalise"
)

// commitHeader matches the CommitRow schema, in column order.
var commitHeader = []string{"sha", "author", "email", "date", "message"}

// issueHeader matches the IssueRow schema, in column order.
var issueHeader = []string{
	"id", "number", "title", "user", "state",
	"created_at", "closed_at", "comments", "open_duration_days",
}

// WriteCommits writes commit rows as CSV to w.
func WriteCommits(w io.Writer, rows []normalise.CommitRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(commitHeader); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{row.SHA, row.Author, row.Email, row.Date, row.Message}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteIssues writes issue rows as CSV to w. Nil closed_at and
// open_duration_days render as empty fields.
func WriteIssues(w io.Writer, rows []normalise.IssueRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(issueHeader); err != nil {
		return err
	}
	for _, row := range rows {
		var closedAt string
		if row.ClosedAt != nil {
			closedAt = *row.ClosedAt
		}
		var duration string
		if row.OpenDurationDays != nil {
			duration = strconv.FormatFloat(*row.OpenDurationDays, 'f', -1, 64)
		}
		record := []string{
			strconv.FormatInt(row.ID, 10),
			strconv.Itoa(row.Number),
			row.Title,
			row.User,
			row.State,
			row.CreatedAt,
			closedAt,
			strconv.Itoa(row.Comments),
			duration,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCommits writes commit rows to a CSV file, creating or truncating it.
func SaveCommits(path string, rows []normalise.CommitRow) error {
	return save(path, func(w io.Writer) error {
		return WriteCommits(w, rows)
	})
}

// SaveIssues writes issue rows to a CSV file, creating or truncating it.
func SaveIssues(path string, rows []normalise.IssueRow) error {
	return save(path, func(w io.Writer) error {
		return WriteIssues(w, rows)
	})
}

func save(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
