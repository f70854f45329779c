//go:build unit || e2e

package builder

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

const DefaultPassword = "lemon-pass-2024"

var FixedNow = time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

func Timestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}
