package pgstore

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

func toPGTimestamp(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Valid: true, Time: *t}
}

// fromPGTimestamp returns nil for NULL. pgx scans into the local zone, the
// rest of the code works in UTC.
func fromPGTimestamp(ts pgtype.Timestamptz) *time.Time {
	if !ts.Valid {
		return nil
	}
	t := ts.Time.UTC()
	return &t
}
