// Package lifecycle derives item visibility from expiry dates and answers
// filtered queries over item sets. Everything in here is a pure function of
// (items, now, criteria); persistence and HTTP live elsewhere.
package lifecycle

import (
	"time"
)

// Status is the derived lifecycle label of an item. It is computed on every
// read and never written to the database.
type Status string

const (
	StatusActive   Status = "active"
	StatusExpiring Status = "expiring"
	StatusExpired  Status = "expired"
)

// ExpiringWindowDays is how many days before expiry an item is flagged as
// expiring. Inclusive: 1 through 7 days remaining.
const ExpiringWindowDays = 7

// Clock supplies the current time. Injected so lifecycle decisions are
// deterministic under test.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by time.Now.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// DateOnly truncates a timestamp to its calendar date at UTC midnight.
// Status must not flip mid-day because of hours or zone offsets, so every
// comparison in this package happens on these normalized dates.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysUntil returns the whole-day distance from now's date to expiresAt's
// date. Negative means the expiry date has passed, zero means it is today.
func DaysUntil(expiresAt, now time.Time) int {
	return int(DateOnly(expiresAt).Sub(DateOnly(now)).Hours() / 24)
}

// DeriveStatus classifies an item by its expiry date:
//
//	expired  — expiresAt is strictly before today
//	expiring — 1..ExpiringWindowDays days remaining
//	active   — everything else, including expiresAt == today
//
// The last day is deliberately active, matching the sweep's ">= today"
// keep predicate.
func DeriveStatus(expiresAt, now time.Time) Status {
	days := DaysUntil(expiresAt, now)
	switch {
	case days < 0:
		return StatusExpired
	case days >= 1 && days <= ExpiringWindowDays:
		return StatusExpiring
	default:
		return StatusActive
	}
}

// ExpiryFrom computes the fixed expiry date for an item registered on the
// given date. The result never changes after creation.
func ExpiryFrom(registeredAt time.Time, ttlMonths int) time.Time {
	return DateOnly(registeredAt).AddDate(0, ttlMonths, 0)
}
