package ledger

import "time"

const DateLayout = "2006-01-02"

// ParseDate parses an ISO calendar date (YYYY-MM-DD) as midnight UTC.
func ParseDate(text string) (time.Time, error) {
	return time.Parse(DateLayout, text)
}
