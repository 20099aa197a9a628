package services

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"orbit/internal/emotions"
	apperrors "orbit/internal/errors"
	"orbit/internal/models"
	"orbit/internal/pagination"
)

// moodService handles mood-related business logic.
type moodService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewMoodService creates a new MoodServicer.
func NewMoodService(db *gorm.DB) MoodServicer {
	return &moodService{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// CreateMood stores a mood entry and its components in one transaction.
func (s *moodService) CreateMood(ctx context.Context, in models.MoodInput) (*models.Mood, error) {
	if in.UserID == nil || in.StressLevel == nil || in.AnxietyLevel == nil || in.EnergyLevel == nil || in.RecordedAt == nil {
		return nil, apperrors.ErrMissingFields
	}

	mood := &models.Mood{
		UserID:       *in.UserID,
		Rating:       in.Rating,
		StressLevel:  *in.StressLevel,
		AnxietyLevel: *in.AnxietyLevel,
		EnergyLevel:  *in.EnergyLevel,
		Title:        nullIfEmpty(in.Title),
		Description:  nullIfEmpty(in.Description),
		RecordedAt:   in.RecordedAt.UTC(),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("id = ?", mood.UserID).Count(&count).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if count == 0 {
			return apperrors.ErrUserNotFound
		}

		if err := tx.Omit(clause.Associations).Create(mood).Error; err != nil {
			if errors.Is(err, gorm.ErrForeignKeyViolated) {
				return apperrors.ErrUserNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if in.Components != nil {
			rows, err := insertComponents(tx, mood.ID, *in.Components)
			if err != nil {
				return err
			}
			mood.Components = rows
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if mood.Components == nil {
		mood.Components = []models.MoodComponent{}
	}
	return mood, nil
}

func insertComponents(tx *gorm.DB, moodID uint, components []emotions.Component) ([]models.MoodComponent, error) {
	rows := models.NewMoodComponents(moodID, components)
	if len(rows) == 0 {
		return rows, nil
	}
	if err := tx.Omit(clause.Associations).Create(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return rows, nil
}

// componentsByID orders preloaded components by insertion.
func componentsByID(db *gorm.DB) *gorm.DB {
	return db.Order("mood_components.id ASC")
}

// GetMood retrieves a mood with its owner's name and emotion statistics.
func (s *moodService) GetMood(ctx context.Context, id uint) (*models.MoodDetail, error) {
	var mood models.Mood
	err := s.db.WithContext(ctx).
		Preload("User").
		Preload("Components", componentsByID).
		First(&mood, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMoodNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	detail := &models.MoodDetail{Mood: mood}
	if mood.User != nil {
		detail.FirstName = mood.User.FirstName
		detail.LastName = mood.User.LastName
	}
	if len(mood.Components) > 0 {
		stats := emotions.CalculateStats(mood.EmotionComponents())
		detail.EmotionStats = &stats
	}
	return detail, nil
}

// UpdateMood applies the fields present in the input and returns the updated
// mood. Present components replace the stored ones, even when the new list is
// empty.
func (s *moodService) UpdateMood(ctx context.Context, id uint, in models.MoodInput) (*models.Mood, error) {
	if !in.HasUpdates() {
		return nil, apperrors.ErrNoFieldsToUpdate
	}

	query, args, err := moodUpdate(id, in, s.now()).ToSql()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var mood models.Mood
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Exec(query, args...)
		if result.Error != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrMoodNotFound
		}

		if in.Components != nil {
			if err := tx.Where("mood_id = ?", id).Delete(&models.MoodComponent{}).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			if _, err := insertComponents(tx, id, *in.Components); err != nil {
				return err
			}
		}

		if err := tx.Preload("Components", componentsByID).First(&mood, id).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &mood, nil
}

// moodUpdate builds the UPDATE for the sent columns, in declared column order.
func moodUpdate(id uint, in models.MoodInput, now time.Time) sq.UpdateBuilder {
	q := sq.Update((models.Mood{}).TableName())
	if in.Rating != nil {
		q = q.Set("rating", *in.Rating)
	}
	if in.StressLevel != nil {
		q = q.Set("stress_level", *in.StressLevel)
	}
	if in.AnxietyLevel != nil {
		q = q.Set("anxiety_level", *in.AnxietyLevel)
	}
	if in.EnergyLevel != nil {
		q = q.Set("energy_level", *in.EnergyLevel)
	}
	if in.Title != nil {
		q = q.Set("title", nullIfEmpty(in.Title))
	}
	if in.Description != nil {
		q = q.Set("description", nullIfEmpty(in.Description))
	}
	if in.RecordedAt != nil {
		q = q.Set("recorded_at", in.RecordedAt.UTC())
	}
	return q.Set("updated_at", now).Where(sq.Eq{"id": id})
}

// DeleteMood removes a mood and its components, returning the deleted row.
func (s *moodService) DeleteMood(ctx context.Context, id uint) (*models.Mood, error) {
	var mood models.Mood
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&mood, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrMoodNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		result := tx.Delete(&models.Mood{}, id)
		if result.Error != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrMoodNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &mood, nil
}

// ListUserMoods returns a page of a user's moods, newest first.
func (s *moodService) ListUserMoods(ctx context.Context, userID uint, dates models.DateRange, page pagination.PageRequest) (*MoodPage, error) {
	where, args, err := moodFilter("", userID, dates).ToSql()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	db := s.db.WithContext(ctx)

	var total int64
	if err := db.Model(&models.Mood{}).Where(where, args...).Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var moods []models.Mood
	if err := db.Where(where, args...).
		Preload("Components", componentsByID).
		Order("recorded_at DESC").Order("id DESC").
		Scopes(pagination.Paginate(page)).
		Find(&moods).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	entries := make([]models.MoodEntry, 0, len(moods))
	for _, m := range moods {
		if m.Components == nil {
			m.Components = []models.MoodComponent{}
		}
		entries = append(entries, models.MoodEntry{
			Mood:         m,
			EmotionStats: emotions.CalculateStats(m.EmotionComponents()),
		})
	}

	return &MoodPage{Moods: entries, Pagination: pagination.NewMeta(page, total)}, nil
}

// moodFilter selects a user's moods within the date range. alias prefixes
// the mood columns when the query joins other tables.
func moodFilter(alias string, userID uint, dates models.DateRange) sq.And {
	col := func(name string) string {
		if alias == "" {
			return name
		}
		return alias + "." + name
	}

	filter := sq.And{sq.Eq{col("user_id"): userID}}
	if dates.From != nil {
		filter = append(filter, sq.GtOrEq{col("recorded_at"): dates.From.UTC()})
	}
	if dates.Until != nil {
		filter = append(filter, sq.Lt{col("recorded_at"): dates.Until.UTC()})
	}
	return filter
}

// nullIfEmpty maps an absent or empty string to NULL.
func nullIfEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
