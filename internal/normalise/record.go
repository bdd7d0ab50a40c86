// Package normalise converts raw GitHub API records into typed, schema-stable
// rows. Timestamps are canonicalised to YYYY-MM-DDTHH:MM:SS (UTC, no offset)
// and issue rows carry a derived open-duration field. Each raw record maps to
// exactly one row, or is excluded (pull requests), or fails fast with a typed
// error; partial rows are never produced.
package normalise

// RawRecord is one decoded JSON object from the API, before normalisation.
// It lives only long enough to be mapped to a row.
type RawRecord map[string]any

// stringField extracts a string value by key. The path is the dotted location
// reported on failure, so nested lookups name the full path.
func stringField(r RawRecord, key, path string) (string, error) {
	v, ok := r[key]
	if !ok || v == nil {
		return "", &MissingFieldError{Field: path}
	}
	s, ok := v.(string)
	if !ok {
		return "", &MissingFieldError{Field: path}
	}
	return s, nil
}

// intField extracts an integer value by key. JSON numbers decode as float64.
func intField(r RawRecord, key, path string) (int64, error) {
	v, ok := r[key]
	if !ok || v == nil {
		return 0, &MissingFieldError{Field: path}
	}
	switch n := v.(type) {
	case float64:
		return int64(n), nil
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	}
	return 0, &MissingFieldError{Field: path}
}

// objectField extracts a nested object by key.
func objectField(r RawRecord, key, path string) (RawRecord, error) {
	v, ok := r[key]
	if !ok || v == nil {
		return nil, &MissingFieldError{Field: path}
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, &MissingFieldError{Field: path}
	}
	return RawRecord(m), nil
}

// optionalString extracts a string that may be absent or JSON null.
// Returns nil when the value is missing or null.
func optionalString(r RawRecord, key string) *string {
	v, ok := r[key]
	if !ok || v == nil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}
