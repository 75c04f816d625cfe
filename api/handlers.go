/*
handlers.go - HTTP API handlers for the PTO engine

PURPOSE:
  Exposes the calculation engine and the stored vacation plan via REST.
  Handles HTTP request/response, JSON serialization, and delegates to
  domain logic.

ENDPOINTS:
  Calendar:
    GET    /api/holidays?year=       Observed holidays for a year
    GET    /api/suggest?start=&end=  Workday count and suggested hours

  Projection:
    POST   /api/ledger               Build the projection ledger

  Vacations:
    GET    /api/vacations            List stored requests
    POST   /api/vacations            Create/replace a request
    DELETE /api/vacations/{id}       Remove a request

  Snapshots:
    GET    /api/export?date=&standard=&flex=  Export stored state
    POST   /api/import?today=                  Reconcile an imported snapshot

DETERMINISM:
  Every endpoint that depends on "today" takes it from the request.
  The server never reads the wall clock, so responses are reproducible.

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 404: Resource not found
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/warp/pto-engine/pto"
	"github.com/warp/pto-engine/store"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store  store.Store
	Config pto.Config
	Logger *zap.Logger
}

// NewHandler creates a new handler with the given store, policy config,
// and logger.
func NewHandler(st store.Store, cfg pto.Config, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{Store: st, Config: cfg, Logger: logger}
}

// =============================================================================
// CALENDAR HANDLERS
// =============================================================================

// ListHolidays returns the observed holidays for a year.
// GET /api/holidays?year=2025
func (h *Handler) ListHolidays(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid or missing year", err)
		return
	}

	set := pto.HolidaysForYear(year)
	dates := make([]pto.Date, 0, len(set))
	for d := range set {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	dtos := make([]HolidayDTO, len(dates))
	for i, d := range dates {
		name, _ := set.Name(d)
		dtos[i] = HolidayDTO{Date: d.String(), Name: name}
	}

	writeJSON(w, http.StatusOK, dtos)
}

// Suggest returns the workday breakdown of a range and the hours a
// full-day request over it would need.
// GET /api/suggest?start=2025-02-03&end=2025-02-07
func (h *Handler) Suggest(w http.ResponseWriter, r *http.Request) {
	start, err := pto.ParseDate(r.URL.Query().Get("start"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid start date (use YYYY-MM-DD)", err)
		return
	}
	end, err := pto.ParseDate(r.URL.Query().Get("end"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid end date (use YYYY-MM-DD)", err)
		return
	}
	if end.Before(start) {
		writeError(w, http.StatusBadRequest, "End date precedes start date", nil)
		return
	}

	suggestion := pto.SuggestHours(start, end, h.Config)
	writeJSON(w, http.StatusOK, SuggestResponse{
		Start:          start.String(),
		End:            end.String(),
		SuggestedHours: suggestion.Hours.Float64(),
		Workdays:       suggestion.Workdays,
		WeekendDays:    suggestion.WeekendDays,
		HolidaysFound:  suggestion.HolidaysFound,
	})
}

// =============================================================================
// PROJECTION HANDLER
// =============================================================================

// BuildLedger builds the projection timeline for the supplied state.
// POST /api/ledger
func (h *Handler) BuildLedger(w http.ResponseWriter, r *http.Request) {
	var req LedgerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	today, err := pto.ParseDate(req.Today)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid today date (use YYYY-MM-DD)", err)
		return
	}
	if req.YearsAhead < 0 {
		writeError(w, http.StatusBadRequest, "years_ahead must be non-negative", nil)
		return
	}

	vacations := make([]pto.VacationRequest, 0, len(req.Vacations))
	for _, dto := range req.Vacations {
		v, err := fromVacationDTO(dto)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid vacation %q", dto.ID), err)
			return
		}
		vacations = append(vacations, v)
	}

	initial := pto.Balance{
		Standard: pto.NewHours(req.StandardBalance),
		Flex:     pto.NewHours(req.FlexBalance),
	}
	ledger := pto.BuildLedger(today, initial, vacations, req.YearsAhead, h.Config)

	entries := make([]LedgerEntryDTO, len(ledger.Entries))
	for i, e := range ledger.Entries {
		entries[i] = toLedgerEntryDTO(e)
	}
	writeJSON(w, http.StatusOK, LedgerResponse{
		Entries:        entries,
		HasAnyShortage: ledger.HasAnyShortage,
	})
}

// =============================================================================
// VACATION HANDLERS
// =============================================================================

// ListVacations returns all stored vacation requests.
// GET /api/vacations
func (h *Handler) ListVacations(w http.ResponseWriter, r *http.Request) {
	vacations, err := h.Store.ListVacations(r.Context())
	if err != nil {
		h.Logger.Error("failed to list vacations", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to list vacations", err)
		return
	}

	dtos := make([]VacationDTO, len(vacations))
	for i, v := range vacations {
		dtos[i] = toVacationDTO(v)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateVacation stores a vacation request. An existing request with the
// same ID is replaced.
// POST /api/vacations
func (h *Handler) CreateVacation(w http.ResponseWriter, r *http.Request) {
	var dto VacationDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if dto.ID == "" {
		dto.ID = fmt.Sprintf("vac-%d", time.Now().UnixNano())
	}

	v, err := fromVacationDTO(dto)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid vacation dates (use YYYY-MM-DD)", err)
		return
	}
	if !v.EndDate.IsZero() && v.EndDate.Before(v.StartDate) {
		writeError(w, http.StatusBadRequest, "End date precedes start date", nil)
		return
	}

	if err := h.Store.SaveVacation(r.Context(), v); err != nil {
		h.Logger.Error("failed to save vacation", zap.String("id", v.ID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to save vacation", err)
		return
	}

	h.Logger.Info("vacation saved",
		zap.String("id", v.ID),
		zap.String("start", v.StartDate.String()))
	writeJSON(w, http.StatusCreated, toVacationDTO(v))
}

// DeleteVacation removes a stored vacation request.
// DELETE /api/vacations/{id}
func (h *Handler) DeleteVacation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.Store.DeleteVacation(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Vacation not found", nil)
		return
	}
	if err != nil {
		h.Logger.Error("failed to delete vacation", zap.String("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to delete vacation", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// SNAPSHOT HANDLERS
// =============================================================================

// ExportSnapshot freezes the stored vacation plan and the supplied
// balances into the snapshot wire format.
// GET /api/export?date=2026-06-15&standard=120&flex=20
func (h *Handler) ExportSnapshot(w http.ResponseWriter, r *http.Request) {
	exportDate, err := pto.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid export date (use YYYY-MM-DD)", err)
		return
	}
	standard, err := queryFloat(r, "standard")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid standard balance", err)
		return
	}
	flex, err := queryFloat(r, "flex")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid flex balance", err)
		return
	}

	vacations, err := h.Store.ListVacations(r.Context())
	if err != nil {
		h.Logger.Error("failed to list vacations", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to list vacations", err)
		return
	}

	balance := pto.Balance{Standard: pto.NewHours(standard), Flex: pto.NewHours(flex)}
	snap := pto.Export(exportDate, balance, vacations)

	h.Logger.Info("snapshot exported",
		zap.String("export_date", exportDate.String()),
		zap.Int("vacations", len(vacations)))
	writeJSON(w, http.StatusOK, snap)
}

// ImportSnapshot reconciles a snapshot document against today, persists
// the document and the still-future vacations, and returns the
// up-to-date state.
// POST /api/import?today=2026-08-02
func (h *Handler) ImportSnapshot(w http.ResponseWriter, r *http.Request) {
	today, err := pto.ParseDate(r.URL.Query().Get("today"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid today date (use YYYY-MM-DD)", err)
		return
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read request body", err)
		return
	}

	snap, err := pto.ParseSnapshot(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid snapshot document", err)
		return
	}

	result, err := pto.Reconcile(snap, today, h.Config)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to reconcile snapshot", err)
		return
	}

	// The document is kept verbatim; the reconciled plan replaces only
	// the vacations that are still ahead of today.
	exportDate, _ := pto.ParseDate(snap.ExportDate)
	if err := h.Store.SaveSnapshot(r.Context(), exportDate, raw); err != nil {
		h.Logger.Error("failed to save snapshot", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to save snapshot", err)
		return
	}
	for _, v := range result.FutureVacations {
		if err := h.Store.SaveVacation(r.Context(), v); err != nil {
			h.Logger.Error("failed to save vacation", zap.String("id", v.ID), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to save vacation", err)
			return
		}
	}

	h.Logger.Info("snapshot imported",
		zap.String("export_date", snap.ExportDate),
		zap.String("today", today.String()),
		zap.Int("future_vacations", len(result.FutureVacations)))

	dtos := make([]VacationDTO, len(result.FutureVacations))
	for i, v := range result.FutureVacations {
		dtos[i] = toVacationDTO(v)
	}
	writeJSON(w, http.StatusOK, ImportResponse{
		StandardBalance: result.Balance.Standard.Float64(),
		FlexBalance:     result.Balance.Flex.Float64(),
		FutureVacations: dtos,
	})
}

// =============================================================================
// HELPERS
// =============================================================================

func queryFloat(r *http.Request, name string) (float64, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
