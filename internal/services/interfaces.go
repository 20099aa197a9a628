package services

import (
	"context"

	"orbit/internal/models"
	"orbit/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(ctx context.Context, in models.UserInput) (*models.User, error)
	AttemptLogin(ctx context.Context, email, password string) (*models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	GetProfile(ctx context.Context, id uint) (*models.UserProfile, error)
	UpdateUser(ctx context.Context, id uint, in models.UserInput) (*models.User, error)
	DeleteUser(ctx context.Context, id uint) error
}

// MoodPage is one page of a user's mood entries.
type MoodPage struct {
	Moods      []models.MoodEntry `json:"moods"`
	Pagination pagination.Meta    `json:"pagination"`
}

// OverallStats aggregates the levels and ratings of a user's entries.
// Averages are rounded to two decimals; entries without a rating are
// left out of the rating aggregates.
type OverallStats struct {
	TotalEntries int64   `json:"total_entries"`
	AvgRating    float64 `json:"avg_rating"`
	MinRating    float64 `json:"min_rating"`
	MaxRating    float64 `json:"max_rating"`
	AvgStress    float64 `json:"avg_stress"`
	MinStress    float64 `json:"min_stress"`
	MaxStress    float64 `json:"max_stress"`
	AvgAnxiety   float64 `json:"avg_anxiety"`
	MinAnxiety   float64 `json:"min_anxiety"`
	MaxAnxiety   float64 `json:"max_anxiety"`
	AvgEnergy    float64 `json:"avg_energy"`
	MinEnergy    float64 `json:"min_energy"`
	MaxEnergy    float64 `json:"max_energy"`
}

// EmotionFrequency counts the entries that carry an emotion.
type EmotionFrequency struct {
	Emotion      string  `json:"emotion"`
	Frequency    int64   `json:"frequency"`
	AvgIntensity float64 `json:"avg_intensity"`
}

// DayOfWeekTrend averages the entries recorded on one weekday.
type DayOfWeekTrend struct {
	DayOfWeek  string  `json:"day_of_week"`
	Entries    int64   `json:"entries"`
	AvgStress  float64 `json:"avg_stress"`
	AvgAnxiety float64 `json:"avg_anxiety"`
	AvgEnergy  float64 `json:"avg_energy"`
	AvgRating  float64 `json:"avg_rating"`
}

// MoodTrends groups the trend breakdowns.
type MoodTrends struct {
	ByDayOfWeek []DayOfWeekTrend `json:"by_day_of_week"`
}

// StatsDateRange echoes the requested bounds; absent bounds are null.
type StatsDateRange struct {
	Start *string `json:"start"`
	End   *string `json:"end"`
}

// MoodStats summarizes a user's entries over an optional date range.
type MoodStats struct {
	Overall   OverallStats       `json:"overall"`
	Emotions  []EmotionFrequency `json:"emotions"`
	Trends    MoodTrends         `json:"trends"`
	DateRange StatsDateRange     `json:"date_range"`
}

// MoodServicer defines the contract for mood-related business logic.
type MoodServicer interface {
	CreateMood(ctx context.Context, in models.MoodInput) (*models.Mood, error)
	GetMood(ctx context.Context, id uint) (*models.MoodDetail, error)
	UpdateMood(ctx context.Context, id uint, in models.MoodInput) (*models.Mood, error)
	DeleteMood(ctx context.Context, id uint) (*models.Mood, error)
	ListUserMoods(ctx context.Context, userID uint, dates models.DateRange, page pagination.PageRequest) (*MoodPage, error)
	GetUserStats(ctx context.Context, userID uint, dates models.DateRange) (*MoodStats, error)
}

// Audit actions.
const (
	AuditUserCreate = "user.create"
	AuditUserLogin  = "user.login"
	AuditUserUpdate = "user.update"
	AuditUserDelete = "user.delete"
	AuditMoodCreate = "mood.create"
	AuditMoodUpdate = "mood.update"
	AuditMoodDelete = "mood.delete"
)

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(ctx context.Context, entry AuditEntry)
}
