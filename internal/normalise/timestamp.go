package normalise

import "time"

// Layout is the canonical timestamp format for all output rows:
// ISO-8601 without a timezone offset, rendered in UTC.
const Layout = "2006-01-02T15:04:05"

// wireLayouts are the timestamp formats accepted from the API, tried in order.
// GitHub sends RFC 3339; the bare layout is accepted so already-canonical
// values parse too.
var wireLayouts = []string{
	time.RFC3339,
	Layout,
}

// Timestamp parses a source-provided timestamp and re-renders it in the
// canonical Layout. Pure: the same input always yields the same output.
func Timestamp(raw string) (string, error) {
	t, err := parseTimestamp(raw)
	if err != nil {
		return "", err
	}
	return t.UTC().Format(Layout), nil
}

// OpenDuration returns the span between created and closed in fractional
// days (a 36-hour gap yields 1.5). Nil closed yields nil: an issue that is
// still open has no duration.
func OpenDuration(created string, closed *string) (*float64, error) {
	if closed == nil {
		return nil, nil
	}
	from, err := parseTimestamp(created)
	if err != nil {
		return nil, err
	}
	to, err := parseTimestamp(*closed)
	if err != nil {
		return nil, err
	}
	days := to.Sub(from).Hours() / 24
	return &days, nil
}

func parseTimestamp(raw string) (time.Time, error) {
	for _, layout := range wireLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &MalformedTimestampError{Value: raw}
}
