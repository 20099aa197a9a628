package services

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"orbit/internal/models"
	"orbit/internal/testutil"
)

func userInput(email, password, firstName, lastName string) models.UserInput {
	return models.UserInput{
		Email:     &email,
		Password:  &password,
		FirstName: &firstName,
		LastName:  &lastName,
	}
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewUserService(db, bcrypt.MinCost)

		user, err := svc.CreateUser(ctx, userInput("alice@example.com", "password123", "Alice", "Smith"))
		testutil.AssertNoError(t, err)

		if user.ID == 0 {
			t.Fatal("expected non-zero user ID")
		}
		if user.Email != "alice@example.com" {
			t.Errorf("expected email alice@example.com, got %s", user.Email)
		}
		if user.FirstName != "Alice" {
			t.Errorf("expected first name Alice, got %s", user.FirstName)
		}
		if user.Timezone != models.DefaultTimezone {
			t.Errorf("expected default timezone, got %s", user.Timezone)
		}
		if user.Password == "password123" {
			t.Error("password must be stored hashed")
		}
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")) != nil {
			t.Error("stored hash does not match the password")
		}
	})

	t.Run("timezone", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewUserService(db, bcrypt.MinCost)

		in := userInput("tz@example.com", "password123", "T", "Z")
		tz := "America/Sao_Paulo"
		in.Timezone = &tz

		user, err := svc.CreateUser(ctx, in)
		testutil.AssertNoError(t, err)
		if user.Timezone != tz {
			t.Errorf("expected %s, got %s", tz, user.Timezone)
		}
	})

	t.Run("duplicate_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewUserService(db, bcrypt.MinCost)

		_, err := svc.CreateUser(ctx, userInput("dup@example.com", "password123", "A", "B"))
		testutil.AssertNoError(t, err)

		_, err = svc.CreateUser(ctx, userInput("DUP@example.com", "password456", "C", "D"))
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})

	t.Run("email_normalized_to_lowercase", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewUserService(db, bcrypt.MinCost)

		user, err := svc.CreateUser(ctx, userInput("Alice@EXAMPLE.COM", "password123", "A", "B"))
		testutil.AssertNoError(t, err)

		if user.Email != "alice@example.com" {
			t.Errorf("expected lowercased email, got %s", user.Email)
		}
	})

	t.Run("missing_credentials", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewUserService(db, bcrypt.MinCost)

		_, err := svc.CreateUser(ctx, models.UserInput{})
		testutil.AssertAppError(t, err, "MISSING_FIELDS")
	})
}

func TestAttemptLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewUserService(db, bcrypt.MinCost)
		created := testutil.CreateTestUserWithEmail(t, db, "login@example.com")

		user, err := svc.AttemptLogin(ctx, "LOGIN@example.com", testutil.TestPassword)
		testutil.AssertNoError(t, err)
		if user.ID != created.ID {
			t.Errorf("expected user %d, got %d", created.ID, user.ID)
		}
	})

	t.Run("wrong_password", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewUserService(db, bcrypt.MinCost)
		testutil.CreateTestUserWithEmail(t, db, "login@example.com")

		_, err := svc.AttemptLogin(ctx, "login@example.com", "wrong-password")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("unknown_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewUserService(db, bcrypt.MinCost)

		_, err := svc.AttemptLogin(ctx, "nobody@example.com", testutil.TestPassword)
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("email_not_trimmed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewUserService(db, bcrypt.MinCost)
		testutil.CreateTestUserWithEmail(t, db, "login@example.com")

		_, err := svc.AttemptLogin(ctx, " login@example.com ", testutil.TestPassword)
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})
}

func TestGetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("counts_moods", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewUserService(db, bcrypt.MinCost)
		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		testutil.CreateTestMood(t, db, user.ID)
		testutil.CreateTestMood(t, db, user.ID)
		testutil.CreateTestMood(t, db, other.ID)

		profile, err := svc.GetProfile(ctx, user.ID)
		testutil.AssertNoError(t, err)
		if profile.TotalMoods != 2 {
			t.Errorf("expected 2 moods, got %d", profile.TotalMoods)
		}
		if profile.Email != user.Email {
			t.Errorf("expected email %s, got %s", user.Email, profile.Email)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewUserService(db, bcrypt.MinCost)

		_, err := svc.GetProfile(ctx, 9999)
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("single_field", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewUserService(db, bcrypt.MinCost)
		user := testutil.CreateTestUser(t, db)
		time.Sleep(2 * time.Millisecond)

		name := "Renamed"
		updated, err := svc.UpdateUser(ctx, user.ID, models.UserInput{FirstName: &name})
		testutil.AssertNoError(t, err)

		if updated.FirstName != "Renamed" {
			t.Errorf("expected Renamed, got %s", updated.FirstName)
		}
		if updated.LastName != user.LastName || updated.Email != user.Email {
			t.Error("untouched fields changed")
		}

		var stored models.User
		db.First(&stored, user.ID)
		if !stored.UpdatedAt.After(user.UpdatedAt) {
			t.Errorf("expected updated_at to advance: %s -> %s", user.UpdatedAt, stored.UpdatedAt)
		}
	})

	t.Run("password_rehashed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewUserService(db, bcrypt.MinCost)
		user := testutil.CreateTestUser(t, db)

		password := "new-secret"
		_, err := svc.UpdateUser(ctx, user.ID, models.UserInput{Password: &password})
		testutil.AssertNoError(t, err)

		_, err = svc.AttemptLogin(ctx, user.Email, "new-secret")
		testutil.AssertNoError(t, err)
		_, err = svc.AttemptLogin(ctx, user.Email, testutil.TestPassword)
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("email_in_use", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewUserService(db, bcrypt.MinCost)
		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)

		email := other.Email
		_, err := svc.UpdateUser(ctx, user.ID, models.UserInput{Email: &email})
		testutil.AssertAppError(t, err, "EMAIL_IN_USE")
	})

	t.Run("same_email_allowed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewUserService(db, bcrypt.MinCost)
		user := testutil.CreateTestUser(t, db)

		email := user.Email
		_, err := svc.UpdateUser(ctx, user.ID, models.UserInput{Email: &email})
		testutil.AssertNoError(t, err)
	})

	t.Run("no_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewUserService(db, bcrypt.MinCost)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.UpdateUser(ctx, user.ID, models.UserInput{})
		testutil.AssertAppError(t, err, "NO_FIELDS_TO_UPDATE")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewUserService(db, bcrypt.MinCost)

		name := "Ghost"
		_, err := svc.UpdateUser(ctx, 9999, models.UserInput{FirstName: &name})
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()

	t.Run("cascades", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewUserService(db, bcrypt.MinCost)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestMood(t, db, user.ID)

		testutil.AssertNoError(t, svc.DeleteUser(ctx, user.ID))

		_, err := svc.GetUserByID(ctx, user.ID)
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")

		var moods int64
		db.Model(&models.Mood{}).Where("user_id = ?", user.ID).Count(&moods)
		if moods != 0 {
			t.Errorf("expected moods to be deleted, found %d", moods)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewUserService(db, bcrypt.MinCost)

		err := svc.DeleteUser(ctx, 9999)
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}
