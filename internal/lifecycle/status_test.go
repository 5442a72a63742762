package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDeriveStatusBoundaries(t *testing.T) {
	now := date(2024, time.January, 10)

	tests := []struct {
		name      string
		expiresAt time.Time
		want      Status
	}{
		{"yesterday is expired", date(2024, time.January, 9), StatusExpired},
		{"today is still active", date(2024, time.January, 10), StatusActive},
		{"tomorrow is expiring", date(2024, time.January, 11), StatusExpiring},
		{"seventh day is expiring", date(2024, time.January, 17), StatusExpiring},
		{"eighth day is active", date(2024, time.January, 18), StatusActive},
		{"far future is active", date(2024, time.April, 10), StatusActive},
		{"long past is expired", date(2023, time.June, 1), StatusExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStatus(tt.expiresAt, now))
		})
	}
}

func TestDeriveStatusIgnoresTimeOfDay(t *testing.T) {
	// 23:59 on the expiry date must classify the same as 00:01.
	expires := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)

	morning := time.Date(2024, time.January, 10, 0, 1, 0, 0, time.UTC)
	night := time.Date(2024, time.January, 10, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, StatusActive, DeriveStatus(expires, morning))
	assert.Equal(t, StatusActive, DeriveStatus(expires, night))
}

func TestDeriveStatusAcrossZones(t *testing.T) {
	// Same calendar date in different zones must not flip the status.
	saoPaulo := time.FixedZone("America/Sao_Paulo", -3*60*60)
	expires := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, time.January, 9, 22, 30, 0, 0, saoPaulo)

	assert.Equal(t, StatusExpiring, DeriveStatus(expires, now))
}

func TestWalletScenario(t *testing.T) {
	expires := date(2024, time.January, 10)

	assert.Equal(t, StatusExpiring, DeriveStatus(expires, date(2024, time.January, 9)))
	assert.Equal(t, StatusExpired, DeriveStatus(expires, date(2024, time.January, 11)))
}

func TestExpiryFrom(t *testing.T) {
	assert.Equal(t, date(2024, time.April, 15), ExpiryFrom(date(2024, time.January, 15), 3))

	// Time-of-day on the registration timestamp is dropped.
	registered := time.Date(2024, time.January, 15, 18, 45, 12, 0, time.UTC)
	assert.Equal(t, date(2024, time.April, 15), ExpiryFrom(registered, 3))
}
