package miner

import (
	"fmt"
	"strings"
)

// InvalidRepoError indicates a repository identifier that is not in
// owner/name form. Detected before any network activity.
type InvalidRepoError struct {
	Input string
}

func (e *InvalidRepoError) Error() string {
	return fmt.Sprintf("miner: invalid repository %q, expected owner/name", e.Input)
}

// ParseRepo splits an owner/name identifier into its segments. Exactly one
// slash with non-empty segments on both sides is required.
func ParseRepo(s string) (owner, name string, err error) {
	owner, name, found := strings.Cut(s, "/")
	if !found || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", &InvalidRepoError{Input: s}
	}
	return owner, name, nil
}
