package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	cal "github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"

	"github.com/klabast/wb-services/holiday-api/internal/app"
)

// Generate handles the generate subcommand. It writes <out>/<year>.json with
// the year's holidays pre-expanded into explicit date ranges, ready to be
// served as a dataset.
func Generate(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	year := fs.Int("year", time.Now().Year(), "Year to generate")
	out := fs.String("out", app.DefaultDataDir, "Output directory")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: holiday-api generate [OPTIONS]\n\n")
		fmt.Fprintf(os.Stderr, "Writes a per-year holiday dataset (<out>/<year>.json) from US federal holidays.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}
	fs.Parse(args)

	if *year < app.MinYear || *year > app.MaxYear {
		fmt.Fprintf(os.Stderr, "Year must be between %d and %d\n", app.MinYear, app.MaxYear)
		os.Exit(1)
	}

	records := BuildYearDataset(*year)

	if err := os.MkdirAll(*out, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding dataset: %v\n", err)
		os.Exit(1)
	}
	data = append(data, '\n')

	path := filepath.Join(*out, strconv.Itoa(*year)+".json")
	if err := os.WriteFile(path, data, app.DatasetPermissions); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing dataset: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d holidays to %s\n", len(records), path)
}

// federalCalendar builds a business calendar with the US federal holidays
func federalCalendar() *cal.BusinessCalendar {
	c := cal.NewBusinessCalendar()
	c.AddHoliday(
		us.NewYear,
		us.MlkDay,
		us.PresidentsDay,
		us.MemorialDay,
		us.Juneteenth,
		us.IndependenceDay,
		us.LaborDay,
		us.ThanksgivingDay,
		us.ChristmasDay,
	)
	return c
}

// holidayDay is a single calendar day that falls on a holiday
type holidayDay struct {
	date    time.Time
	summary string
}

// BuildYearDataset expands the year's holidays into dataset records in date
// order, merging consecutive days of the same holiday into one range.
func BuildYearDataset(year int) []app.HolidayRecord {
	c := federalCalendar()

	var days []holidayDay
	for d := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC); d.Year() == year; d = d.AddDate(0, 0, 1) {
		actual, _, holiday := c.IsHoliday(d)
		if actual && holiday != nil {
			days = append(days, holidayDay{date: d, summary: holiday.Name})
		}
	}

	return mergeRanges(days)
}

// mergeRanges folds consecutive days carrying the same holiday name into a
// single start/end record. Input must be in date order.
func mergeRanges(days []holidayDay) []app.HolidayRecord {
	records := []app.HolidayRecord{}
	for _, day := range days {
		n := len(records)
		if n > 0 &&
			records[n-1].Summary == day.summary &&
			records[n-1].End == day.date.AddDate(0, 0, -1).Format("2006-01-02") {
			records[n-1].End = day.date.Format("2006-01-02")
			continue
		}

		records = append(records, app.HolidayRecord{
			UID:        uuid.NewString(),
			Summary:    day.summary,
			Start:      day.date.Format("2006-01-02"),
			End:        day.date.Format("2006-01-02"),
			Categories: []string{"public"},
		})
	}
	return records
}
