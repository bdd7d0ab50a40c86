package normalise

import "strings"

// CommitRow is a normalised commit record.
type CommitRow struct {
	SHA     string
	Author  string
	Email   string
	Date    string // canonical Layout, always valid
	Message string // first line of the commit message
}

// Commit maps one raw commit record to a CommitRow.
// Required fields: sha, commit.author.{name,email,date}, commit.message.
func Commit(raw RawRecord) (CommitRow, error) {
	sha, err := stringField(raw, "sha", "sha")
	if err != nil {
		return CommitRow{}, err
	}

	// The author identity lives on the nested git commit object, not the
	// top-level GitHub user (which is null for unmapped emails).
	commit, err := objectField(raw, "commit", "commit")
	if err != nil {
		return CommitRow{}, err
	}
	author, err := objectField(commit, "author", "commit.author")
	if err != nil {
		return CommitRow{}, err
	}

	name, err := stringField(author, "name", "commit.author.name")
	if err != nil {
		return CommitRow{}, err
	}
	email, err := stringField(author, "email", "commit.author.email")
	if err != nil {
		return CommitRow{}, err
	}
	rawDate, err := stringField(author, "date", "commit.author.date")
	if err != nil {
		return CommitRow{}, err
	}
	date, err := Timestamp(rawDate)
	if err != nil {
		return CommitRow{}, err
	}

	message, err := stringField(commit, "message", "commit.message")
	if err != nil {
		return CommitRow{}, err
	}

	return CommitRow{
		SHA:     sha,
		Author:  name,
		Email:   email,
		Date:    date,
		Message: firstLine(message),
	}, nil
}

// firstLine truncates a commit message to its subject line.
func firstLine(s string) string {
	if line, _, found := strings.Cut(s, "\n"); found {
		return line
	}
	return s
}
