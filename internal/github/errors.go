package github

import (
	"errors"
	"fmt"
	"time"

	gh "github.com/google/go-github/v80/github"
)

// RateLimitError represents a rate limit exceeded error with reset time.
// Surfaced to the caller; never retried or waited out.
type RateLimitError struct {
	ResetAt   time.Time
	Remaining int
	Limit     int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("github: rate limit exceeded, resets at %s", e.ResetAt.Format(time.RFC3339))
}

// APIError represents a GitHub API error response.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github: API error %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// wrapError converts go-github errors to our error types.
func wrapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) {
		return &APIError{
			StatusCode: ghErr.Response.StatusCode,
			Message:    ghErr.Message,
			URL:        ghErr.Response.Request.URL.String(),
		}
	}

	var rateLimitErr *gh.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return &RateLimitError{
			ResetAt:   rateLimitErr.Rate.Reset.Time,
			Remaining: rateLimitErr.Rate.Remaining,
			Limit:     rateLimitErr.Rate.Limit,
		}
	}

	return fmt.Errorf("%s: %w", operation, err)
}

// IsNotFound checks if the error indicates a resource was not found.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}

// IsUnauthorized checks if the error indicates an authentication failure.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 401
}

// IsForbidden checks if the error indicates a forbidden resource.
func IsForbidden(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 403
}

// IsRateLimited checks if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	var rateLimitErr *RateLimitError
	return errors.As(err, &rateLimitErr)
}
