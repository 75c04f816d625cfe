/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract, allowing:
  - Field renaming without breaking clients
  - API-specific validation
  - Version evolution

CONVENTIONS:
  - All dates are YYYY-MM-DD strings
  - All hour quantities are bare JSON numbers
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - pto/snapshot.go: The import/export wire format (reused verbatim)
*/
package api

import (
	"github.com/warp/pto-engine/pto"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// HolidayDTO is one observed holiday.
type HolidayDTO struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

// SuggestResponse reports the workday breakdown of a range and the
// hours a full-day request over it would need.
type SuggestResponse struct {
	Start          string   `json:"start"`
	End            string   `json:"end"`
	SuggestedHours float64  `json:"suggested_hours"`
	Workdays       int      `json:"workdays"`
	WeekendDays    int      `json:"weekend_days"`
	HolidaysFound  []string `json:"holidays_found"`
}

// VacationDTO represents a vacation request in API traffic.
type VacationDTO struct {
	ID            string  `json:"id"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date,omitempty"`
	StandardHours float64 `json:"standard_hours"`
	FlexHours     float64 `json:"flex_hours"`
	Name          string  `json:"name,omitempty"`
}

// LedgerRequest supplies the full projection input. The caller owns the
// reference date; the server never substitutes the wall clock.
type LedgerRequest struct {
	Today           string        `json:"today"`
	StandardBalance float64       `json:"standard_balance"`
	FlexBalance     float64       `json:"flex_balance"`
	YearsAhead      int           `json:"years_ahead"`
	Vacations       []VacationDTO `json:"vacations"`
}

// YearEndDTO reports what a year-end rollover clamp discarded.
type YearEndDTO struct {
	FromYear     int     `json:"from_year"`
	ToYear       int     `json:"to_year"`
	LostStandard float64 `json:"lost_standard"`
	LostFlex     float64 `json:"lost_flex"`
}

// LedgerEntryDTO is one row of the projection timeline.
type LedgerEntryDTO struct {
	Type            string      `json:"type"`
	Date            string      `json:"date"`
	Description     string      `json:"description"`
	VacationID      string      `json:"vacation_id,omitempty"`
	Name            string      `json:"name,omitempty"`
	StartDate       string      `json:"start_date,omitempty"`
	EndDate         string      `json:"end_date,omitempty"`
	StandardChange  float64     `json:"standard_change"`
	FlexChange      float64     `json:"flex_change"`
	RunningStandard float64     `json:"running_standard"`
	RunningFlex     float64     `json:"running_flex"`
	YearEnd         *YearEndDTO `json:"year_end,omitempty"`
	CausesShortage  bool        `json:"causes_shortage"`
}

// LedgerResponse is the full projection result.
type LedgerResponse struct {
	Entries        []LedgerEntryDTO `json:"entries"`
	HasAnyShortage bool             `json:"has_any_shortage"`
}

// ImportResponse is the reconciled state after a snapshot import.
type ImportResponse struct {
	StandardBalance float64       `json:"standard_balance"`
	FlexBalance     float64       `json:"flex_balance"`
	FutureVacations []VacationDTO `json:"future_vacations"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

func toVacationDTO(v pto.VacationRequest) VacationDTO {
	dto := VacationDTO{
		ID:            v.ID,
		StartDate:     v.StartDate.String(),
		StandardHours: v.StandardHours.Float64(),
		FlexHours:     v.FlexHours.Float64(),
		Name:          v.Name,
	}
	if !v.EndDate.IsZero() {
		dto.EndDate = v.EndDate.String()
	}
	return dto
}

func fromVacationDTO(dto VacationDTO) (pto.VacationRequest, error) {
	start, err := pto.ParseDate(dto.StartDate)
	if err != nil {
		return pto.VacationRequest{}, err
	}
	var end pto.Date
	if dto.EndDate != "" {
		if end, err = pto.ParseDate(dto.EndDate); err != nil {
			return pto.VacationRequest{}, err
		}
	}
	return pto.VacationRequest{
		ID:            dto.ID,
		StartDate:     start,
		EndDate:       end,
		StandardHours: pto.NewHours(dto.StandardHours),
		FlexHours:     pto.NewHours(dto.FlexHours),
		Name:          dto.Name,
	}, nil
}

func toLedgerEntryDTO(e pto.LedgerEntry) LedgerEntryDTO {
	dto := LedgerEntryDTO{
		Type:            string(e.Type),
		Date:            e.Date.String(),
		Description:     e.Description,
		VacationID:      e.VacationID,
		Name:            e.Name,
		StandardChange:  e.StandardChange.Float64(),
		FlexChange:      e.FlexChange.Float64(),
		RunningStandard: e.RunningStandard.Float64(),
		RunningFlex:     e.RunningFlex.Float64(),
		CausesShortage:  e.CausesShortage,
	}
	if !e.StartDate.IsZero() {
		dto.StartDate = e.StartDate.String()
	}
	if !e.EndDate.IsZero() {
		dto.EndDate = e.EndDate.String()
	}
	if e.YearEnd != nil {
		dto.YearEnd = &YearEndDTO{
			FromYear:     e.YearEnd.FromYear,
			ToYear:       e.YearEnd.ToYear,
			LostStandard: e.YearEnd.LostStandard.Float64(),
			LostFlex:     e.YearEnd.LostFlex.Float64(),
		}
	}
	return dto
}
