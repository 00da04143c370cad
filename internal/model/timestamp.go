package model

import "time"

// ISOFormat is the timestamp layout stored on documents: UTC ISO-8601 with
// millisecond precision, e.g. "2025-03-14T09:26:53.589Z".
const ISOFormat = "2006-01-02T15:04:05.000Z07:00"

// NowISO returns the current time formatted per ISOFormat.
func NowISO() string {
	return time.Now().UTC().Format(ISOFormat)
}
