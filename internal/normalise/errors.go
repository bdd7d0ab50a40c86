package normalise

import "fmt"

// MissingFieldError indicates a required key was absent from a raw record.
// Field is the dotted path of the missing key, e.g. "commit.author.name".
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("normalise: missing field %q", e.Field)
}

// MalformedTimestampError indicates a timestamp field was present but
// did not parse in any recognised wire format.
type MalformedTimestampError struct {
	Value string
}

func (e *MalformedTimestampError) Error() string {
	return fmt.Sprintf("normalise: malformed timestamp %q", e.Value)
}
