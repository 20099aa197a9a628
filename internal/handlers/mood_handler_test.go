package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "orbit/internal/errors"
	"orbit/internal/models"
	"orbit/internal/pagination"
	"orbit/internal/services"
)

type mockMoodService struct {
	createMoodFn    func(in models.MoodInput) (*models.Mood, error)
	getMoodFn       func(id uint) (*models.MoodDetail, error)
	updateMoodFn    func(id uint, in models.MoodInput) (*models.Mood, error)
	deleteMoodFn    func(id uint) (*models.Mood, error)
	listUserMoodsFn func(userID uint, dates models.DateRange, page pagination.PageRequest) (*services.MoodPage, error)
	getUserStatsFn  func(userID uint, dates models.DateRange) (*services.MoodStats, error)
}

func (m *mockMoodService) CreateMood(_ context.Context, in models.MoodInput) (*models.Mood, error) {
	if m.createMoodFn != nil {
		return m.createMoodFn(in)
	}
	return &models.Mood{Base: models.Base{ID: 1}, UserID: *in.UserID}, nil
}

func (m *mockMoodService) GetMood(_ context.Context, id uint) (*models.MoodDetail, error) {
	if m.getMoodFn != nil {
		return m.getMoodFn(id)
	}
	return &models.MoodDetail{Mood: models.Mood{Base: models.Base{ID: id}}}, nil
}

func (m *mockMoodService) UpdateMood(_ context.Context, id uint, in models.MoodInput) (*models.Mood, error) {
	if m.updateMoodFn != nil {
		return m.updateMoodFn(id, in)
	}
	return &models.Mood{Base: models.Base{ID: id}, UserID: 1}, nil
}

func (m *mockMoodService) DeleteMood(_ context.Context, id uint) (*models.Mood, error) {
	if m.deleteMoodFn != nil {
		return m.deleteMoodFn(id)
	}
	return &models.Mood{Base: models.Base{ID: id}, UserID: 1}, nil
}

func (m *mockMoodService) ListUserMoods(_ context.Context, userID uint, dates models.DateRange, page pagination.PageRequest) (*services.MoodPage, error) {
	if m.listUserMoodsFn != nil {
		return m.listUserMoodsFn(userID, dates, page)
	}
	return &services.MoodPage{Moods: []models.MoodEntry{}, Pagination: pagination.NewMeta(page, 0)}, nil
}

func (m *mockMoodService) GetUserStats(_ context.Context, userID uint, dates models.DateRange) (*services.MoodStats, error) {
	if m.getUserStatsFn != nil {
		return m.getUserStatsFn(userID, dates)
	}
	return &services.MoodStats{Emotions: []services.EmotionFrequency{}}, nil
}

var handlerNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func setupMoodRouter(svc services.MoodServicer, audit services.AuditServicer) *gin.Engine {
	handler := NewMoodHandler(svc, audit)
	handler.now = func() time.Time { return handlerNow }

	r := gin.New()
	r.POST("/mood", handler.Create)
	r.GET("/mood/user/:id", handler.ListByUser)
	r.GET("/mood/user/:id/stats", handler.StatsByUser)
	r.GET("/mood/:id", handler.Get)
	r.PUT("/mood/:id", handler.Update)
	r.DELETE("/mood/:id", handler.Delete)
	return r
}

func TestMoodHandler_Create(t *testing.T) {
	t.Run("returns 201 with the new id", func(t *testing.T) {
		var got models.MoodInput
		audit := &mockAuditService{}
		svc := &mockMoodService{
			createMoodFn: func(in models.MoodInput) (*models.Mood, error) {
				got = in
				return &models.Mood{Base: models.Base{ID: 11}, UserID: *in.UserID}, nil
			},
		}
		r := setupMoodRouter(svc, audit)

		rec := doRequest(r, http.MethodPost, "/mood", `{
			"user_id": 3, "stress_level": "4", "anxiety_level": 2, "energy_level": 9,
			"recorded_at": "2024-02-29T08:00:00Z", "title": "  ",
			"mood_components": [{"emotion": "Joy", "intensity": 6}]
		}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if id := parseJSON(t, rec)["id"]; id != float64(11) {
			t.Errorf("expected id 11, got %v", id)
		}
		if *got.UserID != 3 || *got.StressLevel != 4 || got.Rating != nil {
			t.Errorf("unexpected input %+v", got)
		}
		if got.Title == nil || *got.Title != "" {
			t.Errorf("expected blank title to sanitize to empty, got %v", got.Title)
		}
		if got.Components == nil || (*got.Components)[0].Emotion != "joy" {
			t.Errorf("expected lowercased component, got %v", got.Components)
		}
		if len(audit.entries) != 1 || audit.entries[0].UserID != 3 || audit.entries[0].Action != services.AuditMoodCreate {
			t.Errorf("unexpected audit entries %+v", audit.entries)
		}
	})

	t.Run("validation errors", func(t *testing.T) {
		tests := []struct {
			name    string
			body    string
			code    string
			message string
		}{
			{
				name:    "missing fields",
				body:    `{"user_id": 1}`,
				code:    "MISSING_FIELDS",
				message: "Campos faltantes",
			},
			{
				name:    "level out of range",
				body:    `{"user_id": 1, "stress_level": 11, "anxiety_level": 2, "energy_level": 3, "recorded_at": "2024-01-01"}`,
				code:    "INVALID_LEVEL",
				message: "stress_level deve ser entre 1 e 10",
			},
			{
				name:    "future recorded_at",
				body:    `{"user_id": 1, "stress_level": 1, "anxiety_level": 2, "energy_level": 3, "recorded_at": "2024-03-02T00:00:00Z"}`,
				code:    "FUTURE_RECORDED_AT",
				message: "recorded_at não pode ser no futuro",
			},
			{
				name: "unknown emotion",
				body: `{"user_id": 1, "stress_level": 1, "anxiety_level": 2, "energy_level": 3, "recorded_at": "2024-01-01",
					"mood_components": [{"emotion": "bored", "intensity": 3}]}`,
				code: "INVALID_COMPONENTS",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				called := false
				svc := &mockMoodService{
					createMoodFn: func(models.MoodInput) (*models.Mood, error) {
						called = true
						return nil, nil
					},
				}
				r := setupMoodRouter(svc, &mockAuditService{})

				result := assertErrorCode(t, doRequest(r, http.MethodPost, "/mood", tt.body), http.StatusBadRequest, tt.code)
				if tt.message != "" && result["error"] != tt.message {
					t.Errorf("expected message %q, got %v", tt.message, result["error"])
				}
				if called {
					t.Error("service must not be called for invalid input")
				}
			})
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := &mockMoodService{
			createMoodFn: func(models.MoodInput) (*models.Mood, error) {
				return nil, apperrors.ErrUserNotFound
			},
		}
		r := setupMoodRouter(svc, &mockAuditService{})

		rec := doRequest(r, http.MethodPost, "/mood",
			`{"user_id": 99, "stress_level": 1, "anxiety_level": 2, "energy_level": 3, "recorded_at": "2024-01-01"}`)
		assertErrorCode(t, rec, http.StatusNotFound, "USER_NOT_FOUND")
	})
}

func TestMoodHandler_Get(t *testing.T) {
	t.Run("omits emotion_stats without components", func(t *testing.T) {
		r := setupMoodRouter(&mockMoodService{}, &mockAuditService{})

		rec := doRequest(r, http.MethodGet, "/mood/8", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["id"] != float64(8) {
			t.Errorf("expected id 8, got %v", result["id"])
		}
		if _, ok := result["emotion_stats"]; ok {
			t.Error("expected no emotion_stats")
		}
	})

	t.Run("returns 404 when missing", func(t *testing.T) {
		svc := &mockMoodService{
			getMoodFn: func(uint) (*models.MoodDetail, error) { return nil, apperrors.ErrMoodNotFound },
		}
		r := setupMoodRouter(svc, &mockAuditService{})

		result := assertErrorCode(t, doRequest(r, http.MethodGet, "/mood/8", ""), http.StatusNotFound, "MOOD_NOT_FOUND")
		if result["error"] != "Humor não encontrado" {
			t.Errorf("unexpected message %v", result["error"])
		}
	})

	t.Run("rejects bad id", func(t *testing.T) {
		r := setupMoodRouter(&mockMoodService{}, &mockAuditService{})

		assertErrorCode(t, doRequest(r, http.MethodGet, "/mood/x1", ""), http.StatusBadRequest, "INVALID_ID")
	})
}

func TestMoodHandler_Update(t *testing.T) {
	t.Run("passes only sent fields", func(t *testing.T) {
		var got models.MoodInput
		audit := &mockAuditService{}
		svc := &mockMoodService{
			updateMoodFn: func(id uint, in models.MoodInput) (*models.Mood, error) {
				got = in
				return &models.Mood{Base: models.Base{ID: id}, UserID: 5}, nil
			},
		}
		r := setupMoodRouter(svc, audit)

		rec := doRequest(r, http.MethodPut, "/mood/2", `{"energy_level": 8, "mood_components": []}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if parseJSON(t, rec)["success"] != true {
			t.Error("expected success true")
		}
		if got.EnergyLevel == nil || *got.EnergyLevel != 8 || got.StressLevel != nil {
			t.Errorf("unexpected input %+v", got)
		}
		if got.Components == nil || len(*got.Components) != 0 {
			t.Errorf("expected empty component replacement, got %v", got.Components)
		}
		if len(audit.entries) != 1 || audit.entries[0].UserID != 5 || audit.entries[0].ResourceID != 2 {
			t.Errorf("unexpected audit entries %+v", audit.entries)
		}
	})

	t.Run("rejects empty update", func(t *testing.T) {
		r := setupMoodRouter(&mockMoodService{}, &mockAuditService{})

		assertErrorCode(t, doRequest(r, http.MethodPut, "/mood/2", `{"unknown": 1}`), http.StatusBadRequest, "NO_FIELDS_TO_UPDATE")
	})

	t.Run("rejects null level", func(t *testing.T) {
		r := setupMoodRouter(&mockMoodService{}, &mockAuditService{})

		assertErrorCode(t, doRequest(r, http.MethodPut, "/mood/2", `{"stress_level": null}`), http.StatusBadRequest, "INVALID_LEVEL")
	})

	t.Run("returns 404 when missing", func(t *testing.T) {
		svc := &mockMoodService{
			updateMoodFn: func(uint, models.MoodInput) (*models.Mood, error) { return nil, apperrors.ErrMoodNotFound },
		}
		r := setupMoodRouter(svc, &mockAuditService{})

		assertErrorCode(t, doRequest(r, http.MethodPut, "/mood/2", `{"rating": 5}`), http.StatusNotFound, "MOOD_NOT_FOUND")
	})
}

func TestMoodHandler_Delete(t *testing.T) {
	audit := &mockAuditService{}
	r := setupMoodRouter(&mockMoodService{}, audit)

	rec := doRequest(r, http.MethodDelete, "/mood/6", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["success"] != true || result["deleted"] != float64(6) {
		t.Errorf("unexpected body %v", result)
	}
	if len(audit.entries) != 1 || audit.entries[0].Action != services.AuditMoodDelete {
		t.Errorf("unexpected audit entries %+v", audit.entries)
	}
}

func TestMoodHandler_ListByUser(t *testing.T) {
	t.Run("parses pagination and dates", func(t *testing.T) {
		var (
			gotUser  uint
			gotDates models.DateRange
			gotPage  pagination.PageRequest
		)
		svc := &mockMoodService{
			listUserMoodsFn: func(userID uint, dates models.DateRange, page pagination.PageRequest) (*services.MoodPage, error) {
				gotUser, gotDates, gotPage = userID, dates, page
				return &services.MoodPage{Moods: []models.MoodEntry{}, Pagination: pagination.NewMeta(page, 0)}, nil
			},
		}
		r := setupMoodRouter(svc, &mockAuditService{})

		rec := doRequest(r, http.MethodGet, "/mood/user/4?start_date=2024-01-01&end_date=2024-01-31&page=0&limit=500", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotUser != 4 {
			t.Errorf("expected user 4, got %d", gotUser)
		}
		if gotPage.Page != 1 || gotPage.Limit != pagination.MaxLimit {
			t.Errorf("expected clamped page, got %+v", gotPage)
		}
		wantUntil := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
		if gotDates.From == nil || gotDates.Until == nil || !gotDates.Until.Equal(wantUntil) {
			t.Errorf("unexpected range %+v", gotDates)
		}

		result := parseJSON(t, rec)
		if moods, ok := result["moods"].([]interface{}); !ok || len(moods) != 0 {
			t.Errorf("expected empty moods array, got %v", result["moods"])
		}
		meta := result["pagination"].(map[string]interface{})
		if meta["limit"] != float64(100) || meta["total_pages"] != float64(0) {
			t.Errorf("unexpected pagination %v", meta)
		}
	})

	t.Run("rejects bad dates", func(t *testing.T) {
		r := setupMoodRouter(&mockMoodService{}, &mockAuditService{})

		assertErrorCode(t, doRequest(r, http.MethodGet, "/mood/user/4?start_date=yesterday", ""), http.StatusBadRequest, "INVALID_START_DATE")
		assertErrorCode(t, doRequest(r, http.MethodGet, "/mood/user/4?end_date=2024-13-01", ""), http.StatusBadRequest, "INVALID_END_DATE")
		assertErrorCode(t, doRequest(r, http.MethodGet, "/mood/user/4?start_date=2024-02-01&end_date=2024-01-01", ""), http.StatusBadRequest, "INVALID_DATE_RANGE")
	})

	t.Run("rejects bad user id", func(t *testing.T) {
		r := setupMoodRouter(&mockMoodService{}, &mockAuditService{})

		assertErrorCode(t, doRequest(r, http.MethodGet, "/mood/user/abc", ""), http.StatusBadRequest, "INVALID_ID")
	})
}

func TestMoodHandler_StatsByUser(t *testing.T) {
	start := "2024-01-01"
	svc := &mockMoodService{
		getUserStatsFn: func(userID uint, dates models.DateRange) (*services.MoodStats, error) {
			if userID != 2 || dates.Start != start || dates.Until != nil {
				t.Errorf("unexpected arguments %d %+v", userID, dates)
			}
			return &services.MoodStats{
				Overall:   services.OverallStats{TotalEntries: 3, AvgStress: 4.33},
				Emotions:  []services.EmotionFrequency{},
				Trends:    services.MoodTrends{ByDayOfWeek: []services.DayOfWeekTrend{}},
				DateRange: services.StatsDateRange{Start: &start},
			}, nil
		},
	}
	r := setupMoodRouter(svc, &mockAuditService{})

	rec := doRequest(r, http.MethodGet, "/mood/user/2/stats?start_date="+start, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	overall := result["overall"].(map[string]interface{})
	if overall["total_entries"] != float64(3) || overall["avg_stress"] != 4.33 {
		t.Errorf("unexpected overall %v", overall)
	}
	dateRange := result["date_range"].(map[string]interface{})
	if dateRange["start"] != start || dateRange["end"] != nil {
		t.Errorf("unexpected date_range %v", dateRange)
	}
}
