package app

import (
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// parseDate parses a stored YYYY-MM-DD date
func parseDate(s string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return d, nil
}

// formatDate formats a date as YYYY-MM-DD
func formatDate(d time.Time) string {
	return d.Format("2006-01-02")
}

// queryInt reads a required integer query parameter and enforces its range
func queryInt(r *http.Request, name string, min, max int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, fmt.Errorf("missing parameter %q", name)
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parameter %q must be an integer", name)
	}
	if v < min || v > max {
		return 0, fmt.Errorf("parameter %q must be between %d and %d", name, min, max)
	}
	return v, nil
}

// pathYear reads the {year} path segment and enforces the supported range
func pathYear(r *http.Request) (int, error) {
	raw := r.PathValue("year")
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("year must be an integer")
	}
	if year < MinYear || year > MaxYear {
		return 0, fmt.Errorf("year must be between %d and %d", MinYear, MaxYear)
	}
	return year, nil
}
