package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"orbit/internal/emotions"
	"orbit/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TestPassword is the plain-text password of every fixture user.
const TestPassword = "password123"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Test",
		LastName:  fmt.Sprintf("User %d", nextID()),
		Timezone:  models.DefaultTimezone,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestMood creates a mood with mid-scale levels recorded an hour ago.
func CreateTestMood(t *testing.T, db *gorm.DB, userID uint, components ...emotions.Component) *models.Mood {
	t.Helper()

	return CreateTestMoodWith(t, db, &models.Mood{
		UserID:       userID,
		StressLevel:  5,
		AnxietyLevel: 5,
		EnergyLevel:  5,
		RecordedAt:   time.Now().UTC().Add(-time.Hour).Truncate(time.Second),
	}, components...)
}

// CreateTestMoodWith inserts mood as given, followed by its components.
func CreateTestMoodWith(t *testing.T, db *gorm.DB, mood *models.Mood, components ...emotions.Component) *models.Mood {
	t.Helper()

	if err := db.Omit(clause.Associations).Create(mood).Error; err != nil {
		t.Fatalf("failed to create test mood: %v", err)
	}
	if len(components) > 0 {
		rows := models.NewMoodComponents(mood.ID, components)
		if err := db.Omit(clause.Associations).Create(&rows).Error; err != nil {
			t.Fatalf("failed to create test mood components: %v", err)
		}
		mood.Components = rows
	}
	return mood
}

// FloatPtr returns a pointer to v.
func FloatPtr(v float64) *float64 { return &v }

// StringPtr returns a pointer to v.
func StringPtr(v string) *string { return &v }
