package pagination

import (
	"math"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// Bounds applied to page requests.
const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
	// MaxPage keeps the offset of the last page within int range.
	MaxPage = math.MaxInt / MaxLimit
)

// PageRequest holds pagination parameters parsed from query strings.
type PageRequest struct {
	Page  int
	Limit int
}

// Validate builds a PageRequest from raw query values. Values are read up to
// the first non-digit ("2abc" is 2); unparseable values take the default.
// Page is clamped to [1, MaxPage] and limit to [1, MaxLimit].
func Validate(page, limit string) PageRequest {
	p := min(MaxPage, max(1, leadingInt(page, DefaultPage)))
	l := min(MaxLimit, max(1, leadingInt(limit, DefaultLimit)))
	return PageRequest{Page: p, Limit: l}
}

// leadingInt parses an optional sign and the digits that follow it.
func leadingInt(raw string, def int) int {
	s := strings.TrimSpace(raw)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return def
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// Out of int range; keep the sign.
		if s[0] == '-' {
			return math.MinInt32
		}
		return math.MaxInt32
	}
	return n
}

// Offset returns the SQL OFFSET for the current page.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Meta describes a page of results.
type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// NewMeta creates the pagination metadata for the given request and total count.
func NewMeta(req PageRequest, total int64) Meta {
	return Meta{
		Page:       req.Page,
		Limit:      req.Limit,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(req.Limit))),
	}
}

// Paginate returns a GORM scope that applies OFFSET and LIMIT for the given page request.
func Paginate(req PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(req.Offset()).Limit(req.Limit)
	}
}
