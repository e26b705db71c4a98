package domain

import "time"

// CivilDate returns the calendar date of t as midnight UTC, the form in
// which DATE columns round-trip through the driver.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// StartOfDay returns local midnight of the day containing t.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// RolledOverBy reports whether the counters already reflect the given day.
func (c *RolloverCandidate) RolledOverBy(today time.Time) bool {
	return !CivilDate(c.LastRollover).Before(CivilDate(today))
}

// NextStreak is the streak after rolling over to today. The streak grows
// only when the previous rollover happened yesterday and yesterday had at
// least one completed view.
func (c *RolloverCandidate) NextStreak(today time.Time, watchedYesterday int) int {
	if watchedYesterday == 0 {
		return 0
	}
	if CivilDate(c.LastRollover).Equal(CivilDate(today.AddDate(0, 0, -1))) {
		return c.CurrentStreak + 1
	}
	return 1
}
