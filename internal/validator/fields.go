package validator

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/tidwall/gjson"

	"orbit/internal/scale"
)

// MaxTextLength is the number of characters kept by SanitizeString.
const MaxTextLength = 500

// MinPasswordLength is the shortest password accepted.
const MinPasswordLength = 6

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// RequiredFields returns the fields of data that are absent, null or an
// empty string, in the order given.
func RequiredFields(data gjson.Result, fields ...string) []string {
	var missing []string
	for _, field := range fields {
		v := data.Get(field)
		if !v.Exists() || v.Type == gjson.Null || (v.Type == gjson.String && v.Str == "") {
			missing = append(missing, field)
		}
	}
	return missing
}

// IsValidEmail checks the shape of an address; deliverability is not checked.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidPassword reports whether password is long enough.
func IsValidPassword(password string) bool {
	return utf8.RuneCountInString(password) >= MinPasswordLength
}

// IsValidLevel reports whether v is a stress, anxiety or energy level.
func IsValidLevel(v gjson.Result) bool {
	_, ok := scale.Parse(v)
	return ok
}

// IsValidRating reports whether v is a mood rating.
func IsValidRating(v gjson.Result) bool {
	_, ok := scale.Parse(v)
	return ok
}

// SanitizeString trims v and keeps its first MaxTextLength characters.
// Values that are not JSON strings yield "".
func SanitizeString(v gjson.Result) string {
	if v.Type != gjson.String {
		return ""
	}
	return Sanitize(v.Str)
}

// Sanitize trims s and keeps its first MaxTextLength characters.
func Sanitize(s string) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= MaxTextLength {
		return s
	}
	return string([]rune(s)[:MaxTextLength])
}
