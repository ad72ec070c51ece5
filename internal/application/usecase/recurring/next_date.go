// Package recurring implements the transaction generation engine: it
// projects future ledger entries from subscription definitions and
// materializes due entries from installment plans.
package recurring

import (
	"time"

	"github.com/coinkeeper/backend/internal/domain/entity"
)

// NextPaymentDate returns the occurrence that follows current under the
// given recurrence. It is pure: the result depends only on the inputs, so
// applying it repeatedly from the same start date always yields the same
// schedule.
//
// Month and year steps clamp to the last day of the target month instead of
// normalizing forward: 2024-01-31 MONTHLY -> 2024-02-29, 2024-02-29 YEARLY
// -> 2025-02-28.
func NextPaymentDate(current time.Time, recurrence entity.RecurrenceType) time.Time {
	switch recurrence {
	case entity.RecurrenceWeekly:
		return current.AddDate(0, 0, 7)
	case entity.RecurrenceBiweekly:
		return current.AddDate(0, 0, 14)
	case entity.RecurrenceYearly:
		return addMonthsClamped(current, 12)
	case entity.RecurrenceMonthly:
		return addMonthsClamped(current, 1)
	}
	// Unknown recurrence values cannot occur past entity validation; fall
	// back to monthly, the dominant cadence.
	return addMonthsClamped(current, 1)
}

// addMonthsClamped adds the given number of months, clamping the day of
// month to the last day of the resulting month.
func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	target := time.Date(year, month+time.Month(months), 1,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())

	if last := lastDayOfMonth(target.Year(), target.Month()); day > last {
		day = last
	}

	return time.Date(target.Year(), target.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// lastDayOfMonth returns the number of days in the given month.
func lastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
