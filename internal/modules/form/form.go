package form

import (
	"fmt"
	"strconv"

	"tenine/internal/modules/draft"
	"tenine/internal/pkg/validator"
)

// Pricing constants for the quick-makeup session. Every add-on extends the
// session by the same price and duration step.
const (
	BasePrice    = 9900
	AddOnPrice   = 4900
	BaseMinutes  = 10
	AddOnMinutes = 5
)

const PeriodPM = "오후"

// Input is the raw reservation form state.
type Input struct {
	Name       string `validate:"required"`
	Email      string `validate:"required,email"`
	Gender     string `validate:"required"`
	Date       string `validate:"required"`
	TimePeriod string `validate:"required"`
	TimeHour   string `validate:"required"`
	TimeMinute string `validate:"required"`
	Location   string `validate:"required"`
	Purpose    string `validate:"required"`
	Message    string

	AddEyes    bool
	AddShading bool

	// Combined terms + privacy consent.
	AgreeAll bool
}

// FieldError reports the first form field that failed validation, so the
// caller can focus it. Nothing else happens on a validation failure.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("form: required field %s is missing or invalid", e.Field)
}

// Validate checks required fields in declaration order, then the combined
// consent flag.
func Validate(in *Input) error {
	if field := validator.FirstInvalid(in); field != "" {
		return &FieldError{Field: field}
	}
	if !in.AgreeAll {
		return ErrConsentRequired
	}
	return nil
}

// BuildDraft derives the pending reservation from a validated form: pricing
// from the add-on flags, the area list, and the expected start/end labels.
func BuildDraft(in *Input) *draft.Draft {
	addOnCount := 0
	if in.AddEyes {
		addOnCount++
	}
	if in.AddShading {
		addOnCount++
	}

	totalPrice := BasePrice + AddOnPrice*addOnCount
	totalMinutes := BaseMinutes + AddOnMinutes*addOnCount

	areas := []string{"compact"}
	if in.AddEyes {
		areas = append(areas, "eyes")
	}
	if in.AddShading {
		areas = append(areas, "shading")
	}

	return &draft.Draft{
		Name:         in.Name,
		Email:        in.Email,
		Gender:       in.Gender,
		Date:         in.Date,
		Time:         fmt.Sprintf("%s %s:%s", in.TimePeriod, in.TimeHour, in.TimeMinute),
		Location:     in.Location,
		Areas:        areas,
		Purpose:      in.Purpose,
		Message:      in.Message,
		BasePrice:    BasePrice,
		AddOnPrice:   AddOnPrice,
		TotalPrice:   totalPrice,
		TotalMinutes: totalMinutes,
		AddEyes:      in.AddEyes,
		AddShading:   in.AddShading,
		TimeDetail:   computeTimeRange(in.TimePeriod, in.TimeHour, in.TimeMinute, totalMinutes),
	}
}

// computeTimeRange converts the 12-hour clock selection to 24-hour labels.
// The end time wraps past midnight. Returns nil when hour or minute do not
// parse, mirroring the "no detail entered" state.
func computeTimeRange(period, hourStr, minuteStr string, durationMinutes int) *draft.TimeRange {
	h, err := strconv.Atoi(hourStr)
	if err != nil {
		return nil
	}
	m, err := strconv.Atoi(minuteStr)
	if err != nil {
		return nil
	}

	h24 := h % 12
	if period == PeriodPM {
		h24 += 12
	}

	start := h24*60 + m
	end := (start + durationMinutes) % (24 * 60)

	return &draft.TimeRange{
		StartLabel: fmt.Sprintf("%02d:%02d", h24, m),
		EndLabel:   fmt.Sprintf("%02d:%02d", end/60, end%60),
	}
}
