package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidHourTable = errors.New("invalid reminder hour table")

// CategoryHours holds the hour-of-day for each offset of one category.
type CategoryHours struct {
	DayBefore int
	DayOf     int
}

// HourTable maps a category to the hours its reminders fire at.
type HourTable map[Category]CategoryHours

func DefaultHourTable() HourTable {
	return HourTable{
		CategoryTrip: {DayBefore: 9, DayOf: 8},
		CategoryTask: {DayBefore: 10, DayOf: 9},
		CategoryLead: {DayBefore: 11, DayOf: 10},
	}
}

func (t HourTable) Hour(category Category, offset Offset) (int, bool) {
	hours, ok := t[category]
	if !ok {
		return 0, false
	}
	if offset == OffsetDayBefore {
		return hours.DayBefore, true
	}
	return hours.DayOf, true
}

// Validate checks every category is present, hours are in [0, 23] and the
// two offsets of a category never share an hour.
func (t HourTable) Validate() error {
	var errs []error
	for _, category := range Categories {
		hours, ok := t[category]
		if !ok {
			errs = append(errs, fmt.Errorf("%s: missing hours", category))
			continue
		}
		if hours.DayBefore < 0 || hours.DayBefore > 23 {
			errs = append(errs, fmt.Errorf("%s: day-before hour %d out of range", category, hours.DayBefore))
		}
		if hours.DayOf < 0 || hours.DayOf > 23 {
			errs = append(errs, fmt.Errorf("%s: day-of hour %d out of range", category, hours.DayOf))
		}
		if hours.DayBefore == hours.DayOf {
			errs = append(errs, fmt.Errorf("%s: day-before and day-of hours must differ", category))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidHourTable, errors.Join(errs...))
	}
	return nil
}
