package validator

import (
	"math"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"orbit/internal/emotions"
	apperrors "orbit/internal/errors"
	"orbit/internal/models"
	"orbit/internal/scale"
)

// moodRequiredFields must be present when a mood is created.
var moodRequiredFields = []string{"user_id", "stress_level", "anxiety_level", "energy_level", "recorded_at"}

// userRequiredFields must be present when a user registers.
var userRequiredFields = []string{"email", "password", "first_name", "last_name"}

// levelFields are checked in this order; the first bad one is reported.
var levelFields = []string{"stress_level", "anxiety_level", "energy_level"}

// DecodeMoodCreate validates a mood creation body. Checks run in a fixed
// order and the first violation is returned.
func DecodeMoodCreate(body gjson.Result, now time.Time) (models.MoodInput, error) {
	var in models.MoodInput

	if missing := RequiredFields(body, moodRequiredFields...); len(missing) > 0 {
		return in, apperrors.WithMissing(apperrors.ErrMissingFields, missing)
	}

	userID, ok := parseID(body.Get("user_id"))
	if !ok {
		return in, apperrors.ErrInvalidUserID
	}
	in.UserID = &userID

	if err := decodeMoodFields(body, now, &in, true); err != nil {
		return models.MoodInput{}, err
	}
	return in, nil
}

// DecodeMoodUpdate validates a partial mood update. Only fields present in
// body are checked and set.
func DecodeMoodUpdate(body gjson.Result, now time.Time) (models.MoodInput, error) {
	var in models.MoodInput
	if err := decodeMoodFields(body, now, &in, false); err != nil {
		return models.MoodInput{}, err
	}
	if !in.HasUpdates() {
		return in, apperrors.ErrNoFieldsToUpdate
	}
	return in, nil
}

// decodeMoodFields fills the optional mood fields. On create, a null optional
// field counts as absent; on update, null is validated like any other value.
func decodeMoodFields(body gjson.Result, now time.Time, in *models.MoodInput, create bool) error {
	present := func(field string) (gjson.Result, bool) {
		v := body.Get(field)
		if !v.Exists() || (create && v.Type == gjson.Null) {
			return v, false
		}
		return v, true
	}

	levels := []**float64{&in.StressLevel, &in.AnxietyLevel, &in.EnergyLevel}
	for i, field := range levelFields {
		v, ok := present(field)
		if !ok {
			continue
		}
		level, ok := scale.Parse(v)
		if !ok {
			return levelError(field)
		}
		*levels[i] = &level
	}

	if v, ok := present("rating"); ok {
		rating, ok := scale.Parse(v)
		if !ok {
			return levelError("rating")
		}
		in.Rating = &rating
	}

	if v, ok := present("recorded_at"); ok {
		if v.Type != gjson.String {
			return apperrors.ErrInvalidRecordedAt
		}
		recordedAt, err := ParseDate(v.Str)
		if err != nil {
			return apperrors.ErrInvalidRecordedAt
		}
		if !IsNotFutureDate(v.Str, now) {
			return apperrors.ErrFutureRecordedAt
		}
		in.RecordedAt = &recordedAt
	}

	if v, ok := present("title"); ok {
		title := SanitizeString(v)
		in.Title = &title
	}
	if v, ok := present("description"); ok {
		description := SanitizeString(v)
		in.Description = &description
	}

	if v, ok := present("mood_components"); ok {
		components, err := emotions.ValidateComponents(v)
		if err != nil {
			return apperrors.WithMessage(apperrors.ErrInvalidComponents, err.Error())
		}
		in.Components = &components
	}

	return nil
}

func levelError(field string) error {
	return apperrors.WithMessage(apperrors.ErrInvalidLevel, field+" deve ser entre 1 e 10")
}

// parseID reads a positive whole number sent as a JSON number or string.
func parseID(v gjson.Result) (uint, bool) {
	n, ok := scale.Number(v)
	if !ok || n < 1 || n != math.Trunc(n) || n > math.MaxUint32 {
		return 0, false
	}
	return uint(n), true
}

// DecodeUserCreate validates a registration body.
func DecodeUserCreate(body gjson.Result) (models.UserInput, error) {
	var in models.UserInput

	if missing := RequiredFields(body, userRequiredFields...); len(missing) > 0 {
		return in, apperrors.WithMissing(apperrors.ErrMissingFields, missing)
	}

	if err := decodeUserFields(body, &in); err != nil {
		return models.UserInput{}, err
	}
	return in, nil
}

// DecodeUserUpdate validates a partial profile update.
func DecodeUserUpdate(body gjson.Result) (models.UserInput, error) {
	var in models.UserInput
	if err := decodeUserFields(body, &in); err != nil {
		return models.UserInput{}, err
	}
	if !in.HasUpdates() {
		return in, apperrors.ErrNoFieldsToUpdate
	}
	return in, nil
}

func decodeUserFields(body gjson.Result, in *models.UserInput) error {
	if v := body.Get("email"); v.Exists() {
		if v.Type != gjson.String || !IsValidEmail(v.Str) {
			return apperrors.ErrInvalidEmail
		}
		email := strings.ToLower(v.Str)
		in.Email = &email
	}

	if v := body.Get("password"); v.Exists() {
		if v.Type != gjson.String || !IsValidPassword(v.Str) {
			return apperrors.ErrWeakPassword
		}
		password := v.Str
		in.Password = &password
	}

	if v := body.Get("first_name"); v.Exists() {
		firstName := SanitizeString(v)
		in.FirstName = &firstName
	}
	if v := body.Get("last_name"); v.Exists() {
		lastName := SanitizeString(v)
		in.LastName = &lastName
	}

	if v := body.Get("timezone"); v.Exists() && v.Type != gjson.Null {
		tz := SanitizeString(v)
		if !IsValidTimezone(tz) {
			return apperrors.ErrInvalidTimezone
		}
		in.Timezone = &tz
	}

	return nil
}

// DecodeDateRange validates the optional start_date and end_date query values.
// The end bound is inclusive at its own precision: "2024-01-31" covers that
// whole day.
func DecodeDateRange(start, end string) (models.DateRange, error) {
	r := models.DateRange{Start: start, End: end}

	if start != "" {
		from, err := ParseDate(start)
		if err != nil {
			return r, apperrors.ErrInvalidStartDate
		}
		r.From = &from
	}

	if end != "" {
		_, until, err := parsePeriod(end)
		if err != nil {
			return r, apperrors.ErrInvalidEndDate
		}
		r.Until = &until
	}

	if start != "" && end != "" && !IsValidDateRange(start, end) {
		return r, apperrors.ErrInvalidDateRange
	}

	return r, nil
}
