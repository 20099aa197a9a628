package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"orbit/internal/models"
	"orbit/internal/pagination"
	"orbit/internal/services"
	"orbit/internal/validator"
)

// MoodHandler handles mood entry requests.
type MoodHandler struct {
	moodService  services.MoodServicer
	auditService services.AuditServicer
	now          func() time.Time
}

// NewMoodHandler creates a new MoodHandler.
func NewMoodHandler(moodService services.MoodServicer, auditService services.AuditServicer) *MoodHandler {
	return &MoodHandler{moodService: moodService, auditService: auditService, now: time.Now}
}

// MoodComponentRequest is one emotion of a mood entry.
type MoodComponentRequest struct {
	Emotion   string  `json:"emotion" example:"joy"`
	Intensity float64 `json:"intensity" example:"7"`
}

// CreateMoodRequest documents the mood creation payload. Levels and rating
// accept any number from 1 to 10, sent as numbers or numeric strings.
type CreateMoodRequest struct {
	UserID         uint                   `json:"user_id" example:"1"`
	Rating         *float64               `json:"rating,omitempty" example:"8"`
	StressLevel    float64                `json:"stress_level" example:"3.5"`
	AnxietyLevel   float64                `json:"anxiety_level" example:"2"`
	EnergyLevel    float64                `json:"energy_level" example:"7"`
	Title          string                 `json:"title,omitempty" example:"Manhã tranquila"`
	Description    string                 `json:"description,omitempty"`
	RecordedAt     string                 `json:"recorded_at" example:"2024-01-15T09:30:00Z"`
	MoodComponents []MoodComponentRequest `json:"mood_components,omitempty"`
}

// UpdateMoodRequest documents the partial mood update payload.
type UpdateMoodRequest struct {
	Rating         *float64               `json:"rating,omitempty"`
	StressLevel    *float64               `json:"stress_level,omitempty"`
	AnxietyLevel   *float64               `json:"anxiety_level,omitempty"`
	EnergyLevel    *float64               `json:"energy_level,omitempty"`
	Title          *string                `json:"title,omitempty"`
	Description    *string                `json:"description,omitempty"`
	RecordedAt     *string                `json:"recorded_at,omitempty"`
	MoodComponents []MoodComponentRequest `json:"mood_components,omitempty"`
}

// MoodQuery holds the query parameters of the listing and stats endpoints.
type MoodQuery struct {
	StartDate string `form:"start_date" binding:"omitempty,iso_date"`
	EndDate   string `form:"end_date" binding:"omitempty,iso_date"`
}

// moodFields are recorded in the audit trail when sent in an update.
var moodFields = []string{
	"rating", "stress_level", "anxiety_level", "energy_level",
	"title", "description", "recorded_at", "mood_components",
}

// Create handles mood creation
// @Summary     Record a mood
// @Tags        moods
// @Accept      json
// @Produce     json
// @Param       request body CreateMoodRequest true "Mood entry"
// @Success     201 {object} CreatedResponse
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "User not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /mood [post]
func (h *MoodHandler) Create(c *gin.Context) {
	body, err := readJSONBody(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	in, err := validator.DecodeMoodCreate(body, h.now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	mood, err := h.moodService.CreateMood(c.Request.Context(), in)
	if err != nil {
		respondWithError(c, err)
		return
	}

	audit(c, h.auditService, services.AuditEntry{UserID: mood.UserID, Action: services.AuditMoodCreate, Resource: models.ResourceMood, ResourceID: mood.ID})

	c.JSON(http.StatusCreated, CreatedResponse{ID: mood.ID})
}

// Get returns a mood entry
// @Summary     Get a mood
// @Description Returns the entry with its owner's name, its components and, when it has any, their emotion statistics.
// @Tags        moods
// @Produce     json
// @Param       id path int true "Mood ID"
// @Success     200 {object} models.MoodDetail
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Mood not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /mood/{id} [get]
func (h *MoodHandler) Get(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	mood, err := h.moodService.GetMood(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, mood)
}

// Update applies a partial update to a mood entry
// @Summary     Update a mood
// @Description Only sent fields change. Sending mood_components replaces all components.
// @Tags        moods
// @Accept      json
// @Produce     json
// @Param       id      path int               true "Mood ID"
// @Param       request body UpdateMoodRequest true "Fields to change"
// @Success     200 {object} SuccessResponse
// @Failure     400 {object} ErrorResponse "Invalid input or no fields"
// @Failure     404 {object} ErrorResponse "Mood not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /mood/{id} [put]
func (h *MoodHandler) Update(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	body, err := readJSONBody(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	in, err := validator.DecodeMoodUpdate(body, h.now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	mood, err := h.moodService.UpdateMood(c.Request.Context(), id, in)
	if err != nil {
		respondWithError(c, err)
		return
	}

	audit(c, h.auditService, services.AuditEntry{
		UserID:     mood.UserID,
		Action:     services.AuditMoodUpdate,
		Resource:   models.ResourceMood,
		ResourceID: id,
		Fields:     sentFields(body, moodFields...),
	})

	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// Delete removes a mood entry and its components
// @Summary     Delete a mood
// @Tags        moods
// @Produce     json
// @Param       id path int true "Mood ID"
// @Success     200 {object} DeletedResponse
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Mood not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /mood/{id} [delete]
func (h *MoodHandler) Delete(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	mood, err := h.moodService.DeleteMood(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	audit(c, h.auditService, services.AuditEntry{UserID: mood.UserID, Action: services.AuditMoodDelete, Resource: models.ResourceMood, ResourceID: id})

	c.JSON(http.StatusOK, DeletedResponse{Success: true, Deleted: id})
}

// ListByUser returns a page of a user's mood entries, newest first
// @Summary     List a user's moods
// @Tags        moods
// @Produce     json
// @Param       id         path  int    true  "User ID"
// @Param       start_date query string false "Inclusive lower bound (ISO 8601)"
// @Param       end_date   query string false "Inclusive upper bound (ISO 8601)"
// @Param       page       query int    false "Page number (default 1)"
// @Param       limit      query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} services.MoodPage
// @Failure     400 {object} ErrorResponse "Invalid ID or dates"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /mood/user/{id} [get]
func (h *MoodHandler) ListByUser(c *gin.Context) {
	userID, dates, ok := h.userQuery(c)
	if !ok {
		return
	}

	page := pagination.Validate(c.Query("page"), c.Query("limit"))

	result, err := h.moodService.ListUserMoods(c.Request.Context(), userID, dates, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// StatsByUser returns aggregate statistics over a user's mood entries
// @Summary     Mood statistics
// @Tags        moods
// @Produce     json
// @Param       id         path  int    true  "User ID"
// @Param       start_date query string false "Inclusive lower bound (ISO 8601)"
// @Param       end_date   query string false "Inclusive upper bound (ISO 8601)"
// @Success     200 {object} services.MoodStats
// @Failure     400 {object} ErrorResponse "Invalid ID or dates"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /mood/user/{id}/stats [get]
func (h *MoodHandler) StatsByUser(c *gin.Context) {
	userID, dates, ok := h.userQuery(c)
	if !ok {
		return
	}

	stats, err := h.moodService.GetUserStats(c.Request.Context(), userID, dates)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// userQuery reads the user id path parameter and the date range query.
// It writes the error response itself and reports false on failure.
func (h *MoodHandler) userQuery(c *gin.Context) (uint, models.DateRange, bool) {
	userID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return 0, models.DateRange{}, false
	}

	var q MoodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, validator.QueryError(err))
		return 0, models.DateRange{}, false
	}

	dates, err := validator.DecodeDateRange(q.StartDate, q.EndDate)
	if err != nil {
		respondWithError(c, err)
		return 0, models.DateRange{}, false
	}

	return userID, dates, true
}
