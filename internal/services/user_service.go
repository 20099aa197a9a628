package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "orbit/internal/errors"
	"orbit/internal/models"
)

// userService handles user-related business logic.
type userService struct {
	db         *gorm.DB
	bcryptCost int

	dummyOnce sync.Once
	dummyHash []byte
}

// NewUserService creates a new UserServicer. Passwords are hashed with the
// given bcrypt cost.
func NewUserService(db *gorm.DB, bcryptCost int) UserServicer {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &userService{db: db, bcryptCost: bcryptCost}
}

// CreateUser registers a new user
func (s *userService) CreateUser(ctx context.Context, in models.UserInput) (*models.User, error) {
	if in.Email == nil || in.Password == nil {
		return nil, apperrors.ErrMissingFields
	}
	email := strings.ToLower(*in.Email)

	// Check if user with email exists
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateEmail
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*in.Password), s.bcryptCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user := &models.User{
		Email:     email,
		Password:  string(hashedPassword),
		FirstName: deref(in.FirstName),
		LastName:  deref(in.LastName),
		Timezone:  models.DefaultTimezone,
	}
	if in.Timezone != nil && *in.Timezone != "" {
		user.Timezone = *in.Timezone
	}

	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		// Lost a race with a concurrent registration.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateEmail
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return user, nil
}

// AttemptLogin checks the credentials and returns the matching user. Unknown
// emails and wrong passwords produce the same error.
func (s *userService) AttemptLogin(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", strings.ToLower(email)).First(&user).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		// Spend the same bcrypt work as a real comparison.
		_ = bcrypt.CompareHashAndPassword(s.dummy(), []byte(password))
		return nil, apperrors.ErrInvalidCredentials
	}

	if !s.verifyPassword(&user, password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return &user, nil
}

func (s *userService) dummy() []byte {
	s.dummyOnce.Do(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte("orbit-login-placeholder"), s.bcryptCost)
		if err == nil {
			s.dummyHash = hash
		}
	})
	return s.dummyHash
}

// verifyPassword checks if the provided password matches the stored hash
func (s *userService) verifyPassword(user *models.User, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	return err == nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// GetProfile retrieves a user with the number of moods they recorded.
func (s *userService) GetProfile(ctx context.Context, id uint) (*models.UserProfile, error) {
	user, err := s.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	profile := &models.UserProfile{User: *user}
	if err := s.db.WithContext(ctx).Model(&models.Mood{}).Where("user_id = ?", id).Count(&profile.TotalMoods).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return profile, nil
}

// UpdateUser applies the fields present in the input.
func (s *userService) UpdateUser(ctx context.Context, id uint, in models.UserInput) (*models.User, error) {
	if !in.HasUpdates() {
		return nil, apperrors.ErrNoFieldsToUpdate
	}

	updates := make(map[string]any)
	if in.Email != nil {
		updates["email"] = strings.ToLower(*in.Email)
	}
	if in.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*in.Password), s.bcryptCost)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		updates["password"] = string(hashedPassword)
	}
	if in.FirstName != nil {
		updates["first_name"] = *in.FirstName
	}
	if in.LastName != nil {
		updates["last_name"] = *in.LastName
	}
	if in.Timezone != nil {
		updates["timezone"] = *in.Timezone
	}

	var user models.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrUserNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if email, ok := updates["email"]; ok {
			var count int64
			if err := tx.Model(&models.User{}).Where("email = ? AND id <> ?", email, id).Count(&count).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			if count > 0 {
				return apperrors.ErrEmailInUse
			}
		}

		// Updates through the model also refreshes updated_at.
		if err := tx.Model(&user).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrEmailInUse
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes a user. Their moods and components go with them.
func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.User{}, id)
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
