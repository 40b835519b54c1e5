package app

// HolidayRecord represents a single holiday or holiday period as stored in a
// year's dataset. Order within a dataset is significant: when ranges overlap,
// the first record in stored order wins.
type HolidayRecord struct {
	UID        string   `json:"uid"`
	Summary    string   `json:"summary"`
	Start      string   `json:"start"`
	End        string   `json:"end"`
	Categories []string `json:"categories"`
}

// HolidayDetail is the flattened response body for a date that falls on a holiday
type HolidayDetail struct {
	Day          string   `json:"day"`
	Week         string   `json:"week"`
	Month        string   `json:"month"`
	IsHoliday    bool     `json:"is_holiday"`
	ID           string   `json:"id"`
	Holiday      string   `json:"holiday"`
	Categories   []string `json:"categories"`
	HolidayStart string   `json:"holiday_start"`
	HolidayEnd   string   `json:"holiday_end"`
}

// YearHoliday is one entry in the full-year listing
type YearHoliday struct {
	UID        string   `json:"uid"`
	Holiday    string   `json:"holiday"`
	Start      string   `json:"start"`
	End        string   `json:"end"`
	Categories []string `json:"categories"`
}
