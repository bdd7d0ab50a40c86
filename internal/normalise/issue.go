package normalise

// IssueRow is a normalised issue record.
// ClosedAt is nil iff the issue is still open; OpenDurationDays is nil iff
// ClosedAt is nil.
type IssueRow struct {
	ID               int64
	Number           int
	Title            string
	User             string
	State            string
	CreatedAt        string  // canonical Layout
	ClosedAt         *string // canonical Layout, nil while open
	Comments         int
	OpenDurationDays *float64
}

// Issue maps one raw issue record to an IssueRow. The second result is false
// when the record is a pull request: the issues endpoint returns PRs too, and
// they are excluded rather than materialised.
func Issue(raw RawRecord) (IssueRow, bool, error) {
	// PRs carry a pull_request key on the issue representation.
	if _, isPR := raw["pull_request"]; isPR {
		return IssueRow{}, false, nil
	}

	id, err := intField(raw, "id", "id")
	if err != nil {
		return IssueRow{}, false, err
	}
	number, err := intField(raw, "number", "number")
	if err != nil {
		return IssueRow{}, false, err
	}
	title, err := stringField(raw, "title", "title")
	if err != nil {
		return IssueRow{}, false, err
	}
	user, err := objectField(raw, "user", "user")
	if err != nil {
		return IssueRow{}, false, err
	}
	login, err := stringField(user, "login", "user.login")
	if err != nil {
		return IssueRow{}, false, err
	}
	state, err := stringField(raw, "state", "state")
	if err != nil {
		return IssueRow{}, false, err
	}
	comments, err := intField(raw, "comments", "comments")
	if err != nil {
		return IssueRow{}, false, err
	}

	rawCreated, err := stringField(raw, "created_at", "created_at")
	if err != nil {
		return IssueRow{}, false, err
	}
	createdAt, err := Timestamp(rawCreated)
	if err != nil {
		return IssueRow{}, false, err
	}

	var closedAt *string
	if rawClosed := optionalString(raw, "closed_at"); rawClosed != nil {
		closed, tsErr := Timestamp(*rawClosed)
		if tsErr != nil {
			return IssueRow{}, false, tsErr
		}
		closedAt = &closed
	}

	duration, err := OpenDuration(createdAt, closedAt)
	if err != nil {
		return IssueRow{}, false, err
	}

	return IssueRow{
		ID:               id,
		Number:           int(number),
		Title:            title,
		User:             login,
		State:            state,
		CreatedAt:        createdAt,
		ClosedAt:         closedAt,
		Comments:         int(comments),
		OpenDurationDays: duration,
	}, true, nil
}
