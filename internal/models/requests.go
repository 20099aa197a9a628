package models

import (
	"time"

	"orbit/internal/emotions"
)

// MoodInput carries the validated fields of a mood create or update request.
// A nil field was not sent. Fields are listed in the order updates apply them.
type MoodInput struct {
	UserID       *uint
	Rating       *float64
	StressLevel  *float64
	AnxietyLevel *float64
	EnergyLevel  *float64
	// Title and Description hold sanitized text; an empty string clears the column.
	Title       *string
	Description *string
	RecordedAt  *time.Time
	// Components replaces the mood's components when non-nil, even if empty.
	Components *[]emotions.Component
}

// HasUpdates reports whether any updatable field was sent.
func (in MoodInput) HasUpdates() bool {
	return in.Rating != nil || in.StressLevel != nil || in.AnxietyLevel != nil ||
		in.EnergyLevel != nil || in.Title != nil || in.Description != nil ||
		in.RecordedAt != nil || in.Components != nil
}

// UserInput carries the validated fields of a user create or update request.
// A nil field was not sent.
type UserInput struct {
	Email     *string
	Password  *string
	FirstName *string
	LastName  *string
	Timezone  *string
}

// HasUpdates reports whether any updatable field was sent.
func (in UserInput) HasUpdates() bool {
	return in.Email != nil || in.Password != nil || in.FirstName != nil ||
		in.LastName != nil || in.Timezone != nil
}

// DateRange bounds a mood query by recorded_at. From is inclusive and
// Until is exclusive; nil leaves that side open.
type DateRange struct {
	From  *time.Time
	Until *time.Time
	// Start and End echo the raw query values.
	Start string
	End   string
}
