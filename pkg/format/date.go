package format

import "time"

const (
	DateLayoutBR  = "02/01/2006"
	DateLayoutISO = "2006-01-02"
)

// Date formats t as dd/mm/yyyy; nil renders as an empty string.
func Date(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(DateLayoutBR)
}

// ParseDate accepts an ISO calendar date (yyyy-mm-dd) or an RFC 3339
// timestamp and returns it in UTC.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayoutISO, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
