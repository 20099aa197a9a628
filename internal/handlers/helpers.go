package handlers

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"

	apperrors "orbit/internal/errors"
	"orbit/internal/middleware"
	"orbit/internal/services"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string   `json:"error" example:"Campos faltantes"`
	Code    string   `json:"code" example:"MISSING_FIELDS"`
	Missing []string `json:"missing,omitempty"`
}

// SuccessResponse acknowledges an update.
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

// DeletedResponse acknowledges a deletion.
type DeletedResponse struct {
	Success bool `json:"success" example:"true"`
	Deleted uint `json:"deleted" example:"1"`
}

// CreatedResponse carries the id of a new resource.
type CreatedResponse struct {
	ID uint `json:"id" example:"1"`
}

// getUserID extracts the authenticated user ID from the Gin context.
// Returns ErrUnauthorized if not present.
func getUserID(c *gin.Context) (uint, error) {
	userID, exists := c.Get(middleware.UserIDKey)
	if !exists {
		return 0, apperrors.ErrUnauthorized
	}
	id, ok := userID.(uint)
	if !ok || id == 0 {
		return 0, apperrors.ErrUnauthorized
	}
	return id, nil
}

// parsePathID parses a positive integer path parameter.
// Returns ErrInvalidID if the parameter is not a valid positive integer.
func parsePathID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.ErrInvalidID
	}
	return uint(id), nil
}

// readJSONBody reads the request body as a JSON object. An empty body reads
// as an empty object so that required-field checks report what is missing.
func readJSONBody(c *gin.Context) (gjson.Result, error) {
	raw, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return gjson.Result{}, apperrors.WithMessage(apperrors.ErrInvalidJSON, "Corpo da requisição muito grande")
		}
		return gjson.Result{}, apperrors.Wrap(apperrors.ErrInvalidJSON, err)
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return gjson.Parse("{}"), nil
	}
	if !gjson.ValidBytes(raw) {
		return gjson.Result{}, apperrors.ErrInvalidJSON
	}

	body := gjson.ParseBytes(raw)
	if !body.IsObject() {
		return gjson.Result{}, apperrors.ErrInvalidJSON
	}
	return body, nil
}

// respondWithError writes a consistent JSON error response.
func respondWithError(c *gin.Context, err error) {
	middleware.WriteError(c, err)
}

// sentFields lists which of fields the request body carried.
func sentFields(body gjson.Result, fields ...string) []string {
	var sent []string
	for _, f := range fields {
		if body.Get(f).Exists() {
			sent = append(sent, f)
		}
	}
	return sent
}

// audit records entry with the caller's address.
func audit(c *gin.Context, svc services.AuditServicer, entry services.AuditEntry) {
	entry.IP = c.ClientIP()
	svc.Log(c.Request.Context(), entry)
}
