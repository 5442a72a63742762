package lifecycle

import (
	"sort"
	"strings"
	"time"

	"github.com/equipe-centaurus/achados-backend/internal/models"
)

// Criteria is the set of optional filter parameters for a listing query.
// A zero field is a wildcard; populated fields combine with AND.
type Criteria struct {
	Text     string
	Category string
	Location string
	Status   Status // admin view only
}

// Sweep returns the items whose expiry date is today or later, in their
// original order. Input items are never mutated, and running Sweep over its
// own output yields the same set.
func Sweep(items []models.Item, now time.Time) []models.Item {
	survivors := make([]models.Item, 0, len(items))
	for _, it := range items {
		if DaysUntil(it.ExpiresAt, now) >= 0 {
			survivors = append(survivors, it)
		}
	}
	return survivors
}

// Match reports whether a single item satisfies the criteria. Text matches
// case-insensitively as a substring of title or description; category and
// location require exact equality; status compares against the derived
// status.
func Match(it models.Item, now time.Time, c Criteria) bool {
	if text := strings.ToLower(c.Text); text != "" &&
		!strings.Contains(strings.ToLower(it.Title), text) &&
		!strings.Contains(strings.ToLower(it.Description), text) {
		return false
	}
	if c.Category != "" && it.Category != c.Category {
		return false
	}
	if c.Location != "" && it.Location != c.Location {
		return false
	}
	if c.Status != "" && DeriveStatus(it.ExpiresAt, now) != c.Status {
		return false
	}
	return true
}

// Filter applies the sweep and then the criteria, preserving store order.
// Expired items are never returned here; the moderation panel, which does
// show them, matches against the full set with Match directly.
func Filter(items []models.Item, now time.Time, c Criteria) []models.Item {
	matched := make([]models.Item, 0, len(items))
	for _, it := range Sweep(items, now) {
		if Match(it, now, c) {
			matched = append(matched, it)
		}
	}
	return matched
}

// MostRecent returns up to n items sorted by registration date, newest
// first. The sort is stable so same-day items keep their insertion order.
func MostRecent(items []models.Item, n int) []models.Item {
	sorted := make([]models.Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].RegisteredAt.After(sorted[j].RegisteredAt)
	})
	if n >= 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}
