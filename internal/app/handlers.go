package app

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
)

// Handler is the HTTP boundary over a Resolver
type Handler struct {
	resolver  *Resolver
	indexHTML []byte
}

// NewHandler creates a Handler serving the given resolver and landing page
func NewHandler(resolver *Resolver, indexHTML []byte) *Handler {
	return &Handler{
		resolver:  resolver,
		indexHTML: indexHTML,
	}
}

// RegisterRoutes attaches all API routes to the provided mux
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.ServeIndex)
	mux.HandleFunc("GET /api/v1/status", h.HandleStatus)
	mux.HandleFunc("GET /api/v1/version", h.HandleVersion)
	mux.HandleFunc("GET /api/v1/coverage/{year}", h.HandleCoverage)
	mux.HandleFunc("GET /api/v1/check_holiday", h.HandleCheckHoliday)
	mux.HandleFunc("GET /api/v1/holiday_info", h.HandleHolidayInfo)
	mux.HandleFunc("GET /api/v1/holidays", h.HandleMonthHolidays)
	mux.HandleFunc("GET /api/v1/holidays/{year}", h.HandleYearHolidays)
}

// respond writes a JSON payload with the given status and records the request metric
func (h *Handler) respond(w http.ResponseWriter, endpoint string, status int, payload interface{}) {
	RequestsTotal.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// ServeIndex serves the embedded landing page HTML
func (h *Handler) ServeIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(h.indexHTML); err != nil {
		log.Printf("Error writing index HTML: %v", err)
	}
}

// HandleStatus returns the API liveness status
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	h.respond(w, "status", http.StatusOK, map[string]string{"status": "ok"})
}

// HandleVersion returns the API version
func (h *Handler) HandleVersion(w http.ResponseWriter, r *http.Request) {
	h.respond(w, "version", http.StatusOK, map[string]string{"version": Version})
}

// HandleCoverage reports whether holiday data exists for a year
// URL: /api/v1/coverage/{year}
func (h *Handler) HandleCoverage(w http.ResponseWriter, r *http.Request) {
	year, err := pathYear(r)
	if err != nil {
		h.respond(w, "coverage", http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	h.respond(w, "coverage", http.StatusOK, map[string]interface{}{
		"year":     year,
		"coverage": h.resolver.Coverage(year),
	})
}

// HandleCheckHoliday answers whether a date is a holiday (strict mode)
// Query params: year, month, day
func (h *Handler) HandleCheckHoliday(w http.ResponseWriter, r *http.Request) {
	year, month, day, err := dateParams(r)
	if err != nil {
		h.respond(w, "check_holiday", http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	res, err := h.resolver.ResolveDate(year, month, day)
	if err != nil {
		log.Printf("Error resolving %04d-%02d-%02d: %v", year, month, day, err)
		h.respond(w, "check_holiday", http.StatusInternalServerError, map[string]string{"error": ErrInternalServer})
		return
	}

	switch res.Kind {
	case OutcomeInvalidDate:
		h.respond(w, "check_holiday", http.StatusBadRequest, map[string]interface{}{
			"response": map[string]string{"error": MsgInvalidDate},
		})
	case OutcomeYearUnavailable:
		h.respond(w, "check_holiday", http.StatusNotFound, map[string]interface{}{
			"response": map[string]string{"error": MsgYearNotAvailable},
		})
	case OutcomeHoliday:
		// Holiday details are returned flattened, without a wrapper
		h.respond(w, "check_holiday", http.StatusOK, res.Detail)
	default:
		h.respond(w, "check_holiday", http.StatusOK, map[string]interface{}{
			"date":     formatDate(res.Date),
			"response": false,
		})
	}
}

// HandleHolidayInfo answers the same lookup as check_holiday but always wraps
// the outcome in {date, response} (verbose mode)
// Query params: year, month, day
func (h *Handler) HandleHolidayInfo(w http.ResponseWriter, r *http.Request) {
	year, month, day, err := dateParams(r)
	if err != nil {
		h.respond(w, "holiday_info", http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	res, err := h.resolver.ResolveDate(year, month, day)
	if err != nil {
		log.Printf("Error resolving %04d-%02d-%02d: %v", year, month, day, err)
		h.respond(w, "holiday_info", http.StatusInternalServerError, map[string]string{"error": ErrInternalServer})
		return
	}

	// The date stays null when the components form no valid calendar date
	var date interface{}
	if !res.Date.IsZero() {
		date = formatDate(res.Date)
	}

	status := http.StatusOK
	var outcome interface{}
	switch res.Kind {
	case OutcomeInvalidDate:
		status = http.StatusBadRequest
		outcome = map[string]string{"error": MsgInvalidDate}
	case OutcomeYearUnavailable:
		status = http.StatusNotFound
		outcome = map[string]string{"error": MsgYearNotAvailable}
	case OutcomeHoliday:
		outcome = res.Detail
	default:
		outcome = map[string]bool{"is_holiday": false}
	}

	h.respond(w, "holiday_info", status, map[string]interface{}{
		"date":     date,
		"response": outcome,
	})
}

// HandleMonthHolidays lists holidays starting in a given month
// Query params: year, month
func (h *Handler) HandleMonthHolidays(w http.ResponseWriter, r *http.Request) {
	year, err := queryInt(r, "year", MinYear, MaxYear)
	if err != nil {
		h.respond(w, "holidays_month", http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	month, err := queryInt(r, "month", 1, 12)
	if err != nil {
		h.respond(w, "holidays_month", http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	holidays, err := h.resolver.HolidaysInMonth(year, month)
	if err != nil {
		if errors.Is(err, ErrYearNotFound) {
			h.respond(w, "holidays_month", http.StatusNotFound, map[string]string{"error": MsgMonthDataMissing})
			return
		}
		log.Printf("Error listing holidays for %d-%02d: %v", year, month, err)
		h.respond(w, "holidays_month", http.StatusInternalServerError, map[string]string{"error": ErrInternalServer})
		return
	}

	if len(holidays) == 0 {
		h.respond(w, "holidays_month", http.StatusOK, map[string]string{"response": MsgNoHolidaysInMonth})
		return
	}

	h.respond(w, "holidays_month", http.StatusOK, map[string]interface{}{"holidays": holidays})
}

// HandleYearHolidays lists every holiday of a year. A missing year is a soft
// outcome here: status stays 200 and the body carries a descriptive response.
// URL: /api/v1/holidays/{year}
func (h *Handler) HandleYearHolidays(w http.ResponseWriter, r *http.Request) {
	year, err := pathYear(r)
	if err != nil {
		h.respond(w, "holidays_year", http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	holidays, err := h.resolver.HolidaysInYear(year)
	if err != nil {
		if errors.Is(err, ErrYearNotFound) {
			h.respond(w, "holidays_year", http.StatusOK, map[string]interface{}{
				"year":     year,
				"response": MsgYearDataMissing,
			})
			return
		}
		log.Printf("Error listing holidays for %d: %v", year, err)
		h.respond(w, "holidays_year", http.StatusInternalServerError, map[string]string{"error": ErrInternalServer})
		return
	}

	h.respond(w, "holidays_year", http.StatusOK, map[string]interface{}{
		"year":     year,
		"holidays": holidays,
	})
}

// dateParams reads the year/month/day query parameters with range checks
func dateParams(r *http.Request) (year, month, day int, err error) {
	if year, err = queryInt(r, "year", MinYear, MaxYear); err != nil {
		return
	}
	if month, err = queryInt(r, "month", 1, 12); err != nil {
		return
	}
	day, err = queryInt(r, "day", 1, 31)
	return
}
