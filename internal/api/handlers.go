package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"calendrica/internal/almanac"
	"calendrica/internal/astro"
	"calendrica/internal/caldate"
	"calendrica/internal/calendar"
	"calendrica/internal/config"
	"calendrica/internal/database"
	"calendrica/internal/export"
)

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	db     *database.DB
	cfg    *config.Config
	sites  []astro.Location
	logger *slog.Logger
}

// NewHandlers creates a new Handlers instance. sites are the observation
// localities available to the site query parameter, normally
// Config.LoadSites().
func NewHandlers(db *database.DB, cfg *config.Config, sites []astro.Location, logger *slog.Logger) *Handlers {
	return &Handlers{
		db:     db,
		cfg:    cfg,
		sites:  sites,
		logger: logger,
	}
}

// siteByName finds a configured observation site, case-insensitively.
func (h *Handlers) siteByName(name string) (astro.Location, bool) {
	for _, s := range h.sites {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return astro.Location{}, false
}

// resolveSystem applies the optional site query parameter to a looked-up
// calendar. Only the observational Islamic calendar is site-dependent;
// naming a site for any other calendar is a caller error.
func (h *Handlers) resolveSystem(sys caldate.System, r *http.Request) (caldate.System, error) {
	siteName := r.URL.Query().Get("site")
	if siteName == "" {
		return sys, nil
	}
	if sys.Name != "islamic-observational" {
		return caldate.System{}, fmt.Errorf("site applies only to islamic-observational, not %s", sys.Name)
	}
	loc, ok := h.siteByName(siteName)
	if !ok {
		return caldate.System{}, fmt.Errorf("unknown site: %s", siteName)
	}
	return caldate.ObservationalIslamicAt(loc), nil
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.db.Health(ctx); err != nil {
		h.logger.Warn("health check failed", slog.Any("error", err))
		WriteError(w, http.StatusServiceUnavailable, "Database unhealthy", "HEALTH_CHECK_FAILED")
		return
	}

	WriteSuccess(w, map[string]string{
		"status": "healthy",
	})
}

// ListCalendars handles GET /api/v1/calendars
func (h *Handlers) ListCalendars(w http.ResponseWriter, r *http.Request) {
	type info struct {
		Name    string   `json:"name"`
		Fields  []string `json:"fields"`
		HasTime bool     `json:"has_time"`
	}

	systems := caldate.Systems()
	out := make([]info, 0, len(systems))
	for _, s := range systems {
		out = append(out, info{Name: s.Name, Fields: s.Fields, HasTime: s.HasTime})
	}

	WriteSuccess(w, map[string]any{"calendars": out})
}

// ListSites handles GET /api/v1/sites
func (h *Handlers) ListSites(w http.ResponseWriter, r *http.Request) {
	type info struct {
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Elevation float64 `json:"elevation"`
		Zone      float64 `json:"zone"`
	}

	out := make([]info, 0, len(h.sites))
	for _, s := range h.sites {
		out = append(out, info{
			Name:      s.Name,
			Latitude:  s.Latitude,
			Longitude: s.Longitude,
			Elevation: s.Elevation,
			Zone:      s.Zone,
		})
	}

	WriteSuccess(w, map[string]any{"sites": out})
}

// conversion is the response body shared by the convert and today
// endpoints.
type conversion struct {
	Calendar string    `json:"calendar"`
	RD       float64   `json:"rd"`
	Fields   []string  `json:"fields"`
	Parts    []float64 `json:"parts"`
}

// ConvertFromFixed handles GET /api/v1/convert/{calendar}?rd=N&site=NAME
//
// rd may carry a fractional day; calendars with time-of-day fields
// report it as trailing hour/minute/second. site selects the observation
// locality for the observational Islamic calendar.
func (h *Handlers) ConvertFromFixed(w http.ResponseWriter, r *http.Request) {
	sys, ok := caldate.Lookup(chi.URLParam(r, "calendar"))
	if !ok {
		WriteNotFound(w, fmt.Sprintf("Unknown calendar: %s", chi.URLParam(r, "calendar")))
		return
	}
	sys, err := h.resolveSystem(sys, r)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	rdStr := r.URL.Query().Get("rd")
	if rdStr == "" {
		WriteBadRequest(w, "rd query parameter is required")
		return
	}
	rd, err := strconv.ParseFloat(rdStr, 64)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid rd value: %s", rdStr))
		return
	}

	parts, err := sys.FromFixed(rd)
	if err != nil {
		h.logger.Error("conversion from fixed failed",
			slog.String("calendar", sys.Name),
			slog.Float64("rd", rd),
			slog.Any("error", err))
		WriteInternalError(w, "Conversion failed")
		return
	}

	WriteSuccess(w, conversion{
		Calendar: sys.Name,
		RD:       rd,
		Fields:   fieldNames(sys, parts),
		Parts:    parts,
	})
}

// ConvertToFixed handles GET /api/v1/convert/{calendar}/fixed?parts=a,b,c&site=NAME
func (h *Handlers) ConvertToFixed(w http.ResponseWriter, r *http.Request) {
	sys, ok := caldate.Lookup(chi.URLParam(r, "calendar"))
	if !ok {
		WriteNotFound(w, fmt.Sprintf("Unknown calendar: %s", chi.URLParam(r, "calendar")))
		return
	}
	sys, err := h.resolveSystem(sys, r)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	partsStr := r.URL.Query().Get("parts")
	if partsStr == "" {
		WriteBadRequest(w, "parts query parameter is required")
		return
	}

	var parts []float64
	for _, field := range strings.Split(partsStr, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			WriteBadRequest(w, fmt.Sprintf("Invalid parts value: %s", field))
			return
		}
		parts = append(parts, v)
	}

	rd, err := sys.ToFixed(parts)
	if err != nil {
		if errors.Is(err, caldate.ErrNotInvertible) {
			WriteBadRequest(w, fmt.Sprintf("%s dates recur and do not determine a fixed date", sys.Name))
			return
		}
		// Field count and integrality errors are the caller's fault;
		// everything else (crescent search exhaustion) is ours.
		if isFieldError(sys, parts) {
			WriteBadRequest(w, err.Error())
			return
		}
		h.logger.Error("conversion to fixed failed",
			slog.String("calendar", sys.Name),
			slog.Any("parts", parts),
			slog.Any("error", err))
		WriteInternalError(w, "Conversion failed")
		return
	}

	WriteSuccess(w, conversion{
		Calendar: sys.Name,
		RD:       rd,
		Fields:   fieldNames(sys, parts),
		Parts:    parts,
	})
}

// Today handles GET /api/v1/today/{calendar}?zone=H&site=NAME
func (h *Handlers) Today(w http.ResponseWriter, r *http.Request) {
	sys, ok := caldate.Lookup(chi.URLParam(r, "calendar"))
	if !ok {
		WriteNotFound(w, fmt.Sprintf("Unknown calendar: %s", chi.URLParam(r, "calendar")))
		return
	}
	sys, err := h.resolveSystem(sys, r)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	zone := h.cfg.DefaultZone
	if zoneStr := r.URL.Query().Get("zone"); zoneStr != "" {
		z, err := strconv.ParseFloat(zoneStr, 64)
		if err != nil {
			WriteBadRequest(w, fmt.Sprintf("Invalid zone value: %s", zoneStr))
			return
		}
		zone = z
	}

	now, err := caldate.Now(zone)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	parts, err := sys.FromFixed(now.Moment())
	if err != nil {
		h.logger.Error("today conversion failed",
			slog.String("calendar", sys.Name),
			slog.Any("error", err))
		WriteInternalError(w, "Conversion failed")
		return
	}

	WriteSuccess(w, map[string]any{
		"calendar": sys.Name,
		"zone":     zone,
		"iso8601":  now.ISO8601(),
		"rd":       now.Moment(),
		"weekday":  now.Weekday().String(),
		"fields":   fieldNames(sys, parts),
		"parts":    parts,
	})
}

// Easter handles GET /api/v1/easter/{year}?method=gregorian|orthodox
func (h *Handlers) Easter(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid year: %s", chi.URLParam(r, "year")))
		return
	}

	method := r.URL.Query().Get("method")
	if method == "" {
		method = "gregorian"
	}

	var fixed int
	switch method {
	case "gregorian":
		fixed = calendar.Easter(year)
	case "orthodox":
		fixed = calendar.OrthodoxEaster(year)
	default:
		WriteBadRequest(w, fmt.Sprintf("method must be gregorian or orthodox, got %s", method))
		return
	}

	g := calendar.GregorianFromFixed(fixed)
	WriteSuccess(w, map[string]any{
		"year":    year,
		"method":  method,
		"rd":      fixed,
		"date":    fmt.Sprintf("%04d-%02d-%02d", g.Year, g.Month, g.Day),
		"weekday": calendar.WeekdayFromFixed(fixed).String(),
	})
}

// GetEvents handles GET /api/v1/events/{year}
func (h *Handlers) GetEvents(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid year: %s", chi.URLParam(r, "year")))
		return
	}

	events, err := h.db.GetEventsByYear(r.Context(), year)
	if err != nil {
		if database.IsNotFound(err) {
			WriteNotFound(w, fmt.Sprintf("No events generated for year %d", year))
			return
		}
		h.logger.Error("failed to get events", slog.Int("year", year), slog.Any("error", err))
		WriteInternalError(w, "Failed to retrieve events")
		return
	}

	WriteSuccess(w, map[string]any{
		"year":   year,
		"events": events,
	})
}

// GetEventsFeed handles GET /api/v1/events/{year}/feed.ics
func (h *Handlers) GetEventsFeed(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid year: %s", chi.URLParam(r, "year")))
		return
	}

	events, err := h.db.GetEventsByYear(r.Context(), year)
	if err != nil {
		if database.IsNotFound(err) {
			WriteNotFound(w, fmt.Sprintf("No events generated for year %d", year))
			return
		}
		h.logger.Error("failed to get events", slog.Int("year", year), slog.Any("error", err))
		WriteInternalError(w, "Failed to retrieve events")
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=calendrica-%d.ics", year))
	fmt.Fprint(w, export.YearFeed(year, events))
}

// GenerateEvents handles POST /api/v1/events/{year}/generate
//
// Recomputes and stores the named events of a year. Idempotent.
func (h *Handlers) GenerateEvents(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid year: %s", chi.URLParam(r, "year")))
		return
	}

	events, err := almanac.ComputeYear(year)
	if err != nil {
		h.logger.Error("event computation failed", slog.Int("year", year), slog.Any("error", err))
		WriteInternalError(w, "Event computation failed")
		return
	}

	if err := h.db.ReplaceYear(r.Context(), year, events); err != nil {
		h.logger.Error("failed to store events", slog.Int("year", year), slog.Any("error", err))
		WriteInternalError(w, "Failed to store events")
		return
	}

	WriteSuccess(w, map[string]any{
		"year":      year,
		"generated": len(events),
	})
}

// fieldNames returns the field labels matching a tuple, appending the
// clock labels when the tuple carries them.
func fieldNames(sys caldate.System, parts []float64) []string {
	if len(parts) == len(sys.Fields)+3 {
		names := make([]string, 0, len(parts))
		names = append(names, sys.Fields...)
		return append(names, "hour", "minute", "second")
	}
	return sys.Fields
}

// isFieldError re-runs the tuple shape checks that ToFixed performs so
// the handler can tell caller mistakes from conversion failures.
func isFieldError(sys caldate.System, parts []float64) bool {
	base := len(sys.Fields)
	if len(parts) != base && !(sys.HasTime && len(parts) == base+3) {
		return true
	}
	for i := 0; i < base; i++ {
		if parts[i] != float64(int(parts[i])) {
			return true
		}
	}
	return false
}
