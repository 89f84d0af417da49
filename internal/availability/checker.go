// Package availability decides whether a candidate date range may be
// selected for a vehicle given its already-booked intervals. All checks work
// at calendar-day granularity with inclusive bounds on both ends.
package availability

import (
	"time"

	"github.com/nixjke/baz-car/internal/domain"
)

// day truncates an instant to its calendar day.
func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// withinInclusive reports whether d falls inside [start, end], day-granular.
func withinInclusive(d, start, end time.Time) bool {
	d, start, end = day(d), day(start), day(end)
	return !d.Before(start) && !d.After(end)
}

// overlaps applies the inclusive-bound overlap test: the candidate conflicts
// when either of its bounds falls inside the reservation, or when it fully
// contains the reservation.
func overlaps(candidate domain.DateRange, res domain.ExistingReservation) bool {
	if withinInclusive(candidate.Start, res.Start, res.End) {
		return true
	}
	if withinInclusive(candidate.End, res.Start, res.End) {
		return true
	}
	return !day(candidate.Start).After(day(res.Start)) && !day(candidate.End).Before(day(res.End))
}

// IsRangeAvailable reports whether the candidate range conflicts with none of
// the existing reservations. Inverted or zero-length candidates are a
// validation concern handled upstream, not an availability question.
func IsRangeAvailable(candidate domain.DateRange, existing []domain.ExistingReservation) bool {
	if !candidate.Complete() {
		return true
	}
	for _, res := range existing {
		if overlaps(candidate, res) {
			return false
		}
	}
	return true
}

// IsDayBooked reports whether a single calendar day falls inside any
// existing reservation.
func IsDayBooked(d time.Time, existing []domain.ExistingReservation) bool {
	for _, res := range existing {
		if withinInclusive(d, res.Start, res.End) {
			return true
		}
	}
	return false
}

// CanSelectDate supports incremental selection: with only a start date chosen,
// each candidate end date is checked by walking every calendar day between the
// (possibly reordered) start and the candidate, inclusive on both ends, and
// confirming none is booked. With no pending start it reduces to a single-day
// check.
func CanSelectDate(candidate time.Time, pendingStart time.Time, existing []domain.ExistingReservation) bool {
	if pendingStart.IsZero() {
		return !IsDayBooked(candidate, existing)
	}

	from, to := day(pendingStart), day(candidate)
	if to.Before(from) {
		from, to = to, from
	}
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if IsDayBooked(d, existing) {
			return false
		}
	}
	return true
}
