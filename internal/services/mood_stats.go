package services

import (
	"context"
	"math"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"

	apperrors "orbit/internal/errors"
	"orbit/internal/models"
)

// weekdays maps SQLite's strftime('%w') to day names.
var weekdays = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

type overallRow struct {
	TotalEntries int64
	AvgRating    float64
	MinRating    float64
	MaxRating    float64
	AvgStress    float64
	MinStress    float64
	MaxStress    float64
	AvgAnxiety   float64
	MinAnxiety   float64
	MaxAnxiety   float64
	AvgEnergy    float64
	MinEnergy    float64
	MaxEnergy    float64
}

type emotionRow struct {
	Emotion      string
	Frequency    int64
	AvgIntensity float64
}

type weekdayRow struct {
	Weekday    int
	Entries    int64
	AvgStress  float64
	AvgAnxiety float64
	AvgEnergy  float64
	AvgRating  float64
}

// GetUserStats aggregates a user's entries within the date range. A user
// without entries gets zeros and empty lists.
func (s *moodService) GetUserStats(ctx context.Context, userID uint, dates models.DateRange) (*MoodStats, error) {
	db := s.db.WithContext(ctx)

	var overall overallRow
	if err := scanQuery(db, overallQuery(userID, dates), &overall); err != nil {
		return nil, err
	}

	var emotionRows []emotionRow
	if err := scanQuery(db, emotionQuery(userID, dates), &emotionRows); err != nil {
		return nil, err
	}

	var weekdayRows []weekdayRow
	if err := scanQuery(db, weekdayQuery(userID, dates), &weekdayRows); err != nil {
		return nil, err
	}

	stats := &MoodStats{
		Overall: OverallStats{
			TotalEntries: overall.TotalEntries,
			AvgRating:    round2(overall.AvgRating),
			MinRating:    overall.MinRating,
			MaxRating:    overall.MaxRating,
			AvgStress:    round2(overall.AvgStress),
			MinStress:    overall.MinStress,
			MaxStress:    overall.MaxStress,
			AvgAnxiety:   round2(overall.AvgAnxiety),
			MinAnxiety:   overall.MinAnxiety,
			MaxAnxiety:   overall.MaxAnxiety,
			AvgEnergy:    round2(overall.AvgEnergy),
			MinEnergy:    overall.MinEnergy,
			MaxEnergy:    overall.MaxEnergy,
		},
		Emotions:  make([]EmotionFrequency, 0, len(emotionRows)),
		Trends:    MoodTrends{ByDayOfWeek: make([]DayOfWeekTrend, 0, len(weekdayRows))},
		DateRange: StatsDateRange{Start: optional(dates.Start), End: optional(dates.End)},
	}

	for _, r := range emotionRows {
		stats.Emotions = append(stats.Emotions, EmotionFrequency{
			Emotion:      r.Emotion,
			Frequency:    r.Frequency,
			AvgIntensity: round2(r.AvgIntensity),
		})
	}

	for _, r := range weekdayRows {
		if r.Weekday < 0 || r.Weekday > 6 {
			continue
		}
		stats.Trends.ByDayOfWeek = append(stats.Trends.ByDayOfWeek, DayOfWeekTrend{
			DayOfWeek:  weekdays[r.Weekday],
			Entries:    r.Entries,
			AvgStress:  round2(r.AvgStress),
			AvgAnxiety: round2(r.AvgAnxiety),
			AvgEnergy:  round2(r.AvgEnergy),
			AvgRating:  round2(r.AvgRating),
		})
	}

	return stats, nil
}

func overallQuery(userID uint, dates models.DateRange) sq.SelectBuilder {
	return sq.Select(
		"COUNT(*) AS total_entries",
		"COALESCE(AVG(rating), 0) AS avg_rating",
		"COALESCE(MIN(rating), 0) AS min_rating",
		"COALESCE(MAX(rating), 0) AS max_rating",
		"COALESCE(AVG(stress_level), 0) AS avg_stress",
		"COALESCE(MIN(stress_level), 0) AS min_stress",
		"COALESCE(MAX(stress_level), 0) AS max_stress",
		"COALESCE(AVG(anxiety_level), 0) AS avg_anxiety",
		"COALESCE(MIN(anxiety_level), 0) AS min_anxiety",
		"COALESCE(MAX(anxiety_level), 0) AS max_anxiety",
		"COALESCE(AVG(energy_level), 0) AS avg_energy",
		"COALESCE(MIN(energy_level), 0) AS min_energy",
		"COALESCE(MAX(energy_level), 0) AS max_energy",
	).
		From("mood").
		Where(moodFilter("", userID, dates))
}

func emotionQuery(userID uint, dates models.DateRange) sq.SelectBuilder {
	return sq.Select(
		"mc.emotion AS emotion",
		"COUNT(*) AS frequency",
		"AVG(mc.intensity) AS avg_intensity",
	).
		From("mood_components mc").
		Join("mood m ON m.id = mc.mood_id").
		Where(moodFilter("m", userID, dates)).
		GroupBy("mc.emotion").
		OrderBy("frequency DESC", "emotion ASC")
}

func weekdayQuery(userID uint, dates models.DateRange) sq.SelectBuilder {
	return sq.Select(
		"CAST(strftime('%w', recorded_at) AS INTEGER) AS weekday",
		"COUNT(*) AS entries",
		"AVG(stress_level) AS avg_stress",
		"AVG(anxiety_level) AS avg_anxiety",
		"AVG(energy_level) AS avg_energy",
		"COALESCE(AVG(rating), 0) AS avg_rating",
	).
		From("mood").
		Where(moodFilter("", userID, dates)).
		GroupBy("weekday").
		OrderBy("weekday ASC")
}

// scanQuery renders a squirrel query and scans its rows through gorm.
func scanQuery(db *gorm.DB, q sq.SelectBuilder, dest any) error {
	query, args, err := q.ToSql()
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := db.Raw(query, args...).Scan(dest).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
