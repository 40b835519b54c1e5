package app

import (
	"errors"
	"fmt"
	"time"
)

// OutcomeKind tags the result of resolving a date against a year's dataset
type OutcomeKind int

const (
	OutcomeHoliday OutcomeKind = iota
	OutcomeNotHoliday
	OutcomeInvalidDate
	OutcomeYearUnavailable
)

// Resolution is the outcome of a single date lookup
type Resolution struct {
	Kind OutcomeKind

	// Date is the parsed calendar date; zero when Kind is OutcomeInvalidDate
	Date time.Time

	// Detail is set when Kind is OutcomeHoliday
	Detail *HolidayDetail
}

// Resolver answers holiday queries against datasets provided by a Store
type Resolver struct {
	store Store
}

// NewResolver creates a Resolver backed by the given store
func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// Coverage reports whether holiday data exists for the year. An empty dataset
// still counts as covered.
func (r *Resolver) Coverage(year int) string {
	if r.store.Exists(year) {
		return CoverageOK
	}
	return CoverageNotAvailable
}

// ResolveDate checks (year, month, day) against the year's dataset. Calendar
// validity is checked before dataset availability, so an impossible date is
// InvalidDate even for a year without coverage. The returned error is reserved
// for unreadable backing data.
func (r *Resolver) ResolveDate(year, month, day int) (Resolution, error) {
	date, ok := makeDate(year, month, day)
	if !ok {
		return Resolution{Kind: OutcomeInvalidDate}, nil
	}

	records, err := r.store.Load(year)
	if err != nil {
		if errors.Is(err, ErrYearNotFound) {
			return Resolution{Kind: OutcomeYearUnavailable, Date: date}, nil
		}
		return Resolution{}, err
	}

	for _, rec := range records {
		start, err := parseDate(rec.Start)
		if err != nil {
			return Resolution{}, fmt.Errorf("record %s: %w", rec.UID, err)
		}
		end, err := parseDate(rec.End)
		if err != nil {
			return Resolution{}, fmt.Errorf("record %s: %w", rec.UID, err)
		}

		// Inclusive on both ends; first match in stored order wins
		if !date.Before(start) && !date.After(end) {
			return Resolution{
				Kind: OutcomeHoliday,
				Date: date,
				Detail: &HolidayDetail{
					Day:          date.Weekday().String(),
					Week:         weekNumber(date),
					Month:        date.Month().String(),
					IsHoliday:    true,
					ID:           rec.UID,
					Holiday:      rec.Summary,
					Categories:   rec.Categories,
					HolidayStart: rec.Start,
					HolidayEnd:   rec.End,
				},
			}, nil
		}
	}

	return Resolution{Kind: OutcomeNotHoliday, Date: date}, nil
}

// HolidaysInMonth lists records whose start date falls in the given month.
// A holiday spanning several months is listed only under its start month.
func (r *Resolver) HolidaysInMonth(year, month int) ([]HolidayRecord, error) {
	records, err := r.store.Load(year)
	if err != nil {
		return nil, err
	}

	var matched []HolidayRecord
	for _, rec := range records {
		start, err := parseDate(rec.Start)
		if err != nil {
			return nil, fmt.Errorf("record %s: %w", rec.UID, err)
		}
		if int(start.Month()) == month {
			matched = append(matched, rec)
		}
	}
	return matched, nil
}

// HolidaysInYear lists every record of the year's dataset in stored order
func (r *Resolver) HolidaysInYear(year int) ([]YearHoliday, error) {
	records, err := r.store.Load(year)
	if err != nil {
		return nil, err
	}

	holidays := make([]YearHoliday, 0, len(records))
	for _, rec := range records {
		holidays = append(holidays, YearHoliday{
			UID:        rec.UID,
			Holiday:    rec.Summary,
			Start:      rec.Start,
			End:        rec.End,
			Categories: rec.Categories,
		})
	}
	return holidays, nil
}

// makeDate builds a calendar date in UTC, rejecting component combinations
// that do not exist (time.Date would silently normalize them instead)
func makeDate(year, month, day int) (time.Time, bool) {
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}

// weekNumber renders the week of the year following the strftime %W
// convention: weeks start on Monday and all days before the year's first
// Monday are week 00.
func weekNumber(d time.Time) string {
	yday := d.YearDay() - 1
	monday := (int(d.Weekday()) + 6) % 7
	return fmt.Sprintf("%02d", (yday+7-monday)/7)
}
