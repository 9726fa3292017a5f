package booking

import (
	"time"

	"github.com/heartmarshall/mazag-backend/internal/domain"
)

// MaxReminderTitleLength bounds reminder titles in runes.
const MaxReminderTitleLength = 120

// BookInput is a request to book one availability slot.
type BookInput struct {
	TherapistID string    `json:"therapistId"`
	Slot        time.Time `json:"datetime"`
}

func (i BookInput) Validate() error {
	var errs []domain.FieldError
	if i.TherapistID == "" {
		errs = append(errs, domain.FieldError{Field: "therapistId", Message: "required"})
	}
	if i.Slot.IsZero() {
		errs = append(errs, domain.FieldError{Field: "datetime", Message: "required"})
	}
	return domain.NewValidationErrors(errs)
}

// ReminderInput is a request to schedule a reminder.
type ReminderInput struct {
	Title string    `json:"title"`
	Body  string    `json:"body"`
	At    time.Time `json:"datetime"`
}

// Validate checks the input against the current time.
func (i ReminderInput) Validate(now time.Time) error {
	var errs []domain.FieldError
	switch {
	case i.Title == "":
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	case len([]rune(i.Title)) > MaxReminderTitleLength:
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	switch {
	case i.At.IsZero():
		errs = append(errs, domain.FieldError{Field: "datetime", Message: "required"})
	case !i.At.After(now):
		errs = append(errs, domain.FieldError{Field: "datetime", Message: "must be in the future"})
	}
	return domain.NewValidationErrors(errs)
}
