// Package errors provides custom error types for the Orbit API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
// Missing lists the request fields that were absent, for MISSING_FIELDS errors.
type AppError struct {
	Code       string   `json:"code"`
	Message    string   `json:"error"`
	Missing    []string `json:"missing,omitempty"`
	StatusCode int      `json:"-"`
	Internal   error    `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		Missing:    sentinel.Missing,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		Missing:    sentinel.Missing,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// WithMissing creates a new AppError listing the missing request fields.
func WithMissing(sentinel *AppError, missing []string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		Missing:    missing,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication errors.
var (
	ErrUnauthorized        = &AppError{Code: "UNAUTHORIZED", Message: "Autenticação necessária", StatusCode: http.StatusUnauthorized}
	ErrInvalidToken        = &AppError{Code: "INVALID_TOKEN", Message: "Token inválido ou expirado", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials  = &AppError{Code: "INVALID_CREDENTIALS", Message: "Credenciais inválidas", StatusCode: http.StatusUnauthorized}
	ErrCredentialsRequired = &AppError{Code: "CREDENTIALS_REQUIRED", Message: "Email e senha são obrigatórios", StatusCode: http.StatusBadRequest}
	ErrTooManyRequests     = &AppError{Code: "TOO_MANY_REQUESTS", Message: "Muitas tentativas, tente novamente mais tarde", StatusCode: http.StatusTooManyRequests}
)

// General errors.
var (
	ErrInvalidInput     = &AppError{Code: "INVALID_INPUT", Message: "Dados inválidos", StatusCode: http.StatusBadRequest}
	ErrInvalidJSON      = &AppError{Code: "INVALID_JSON", Message: "JSON inválido", StatusCode: http.StatusBadRequest}
	ErrInvalidID        = &AppError{Code: "INVALID_ID", Message: "ID inválido", StatusCode: http.StatusBadRequest}
	ErrMissingFields    = &AppError{Code: "MISSING_FIELDS", Message: "Campos faltantes", StatusCode: http.StatusBadRequest}
	ErrNoFieldsToUpdate = &AppError{Code: "NO_FIELDS_TO_UPDATE", Message: "Nenhum campo para atualizar", StatusCode: http.StatusBadRequest}
	ErrNotFound         = &AppError{Code: "NOT_FOUND", Message: "Recurso não encontrado", StatusCode: http.StatusNotFound}
	ErrInternalServer   = &AppError{Code: "INTERNAL_ERROR", Message: "Erro interno do servidor", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound    = &AppError{Code: "USER_NOT_FOUND", Message: "Usuário não encontrado", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail  = &AppError{Code: "DUPLICATE_EMAIL", Message: "Email já cadastrado", StatusCode: http.StatusBadRequest}
	ErrEmailInUse      = &AppError{Code: "EMAIL_IN_USE", Message: "Email já está em uso", StatusCode: http.StatusBadRequest}
	ErrInvalidEmail    = &AppError{Code: "INVALID_EMAIL", Message: "Email inválido", StatusCode: http.StatusBadRequest}
	ErrWeakPassword    = &AppError{Code: "WEAK_PASSWORD", Message: "Senha deve ter pelo menos 6 caracteres", StatusCode: http.StatusBadRequest}
	ErrInvalidTimezone = &AppError{Code: "INVALID_TIMEZONE", Message: "Fuso horário inválido", StatusCode: http.StatusBadRequest}
)

// Mood errors.
var (
	ErrMoodNotFound      = &AppError{Code: "MOOD_NOT_FOUND", Message: "Humor não encontrado", StatusCode: http.StatusNotFound}
	ErrInvalidUserID     = &AppError{Code: "INVALID_USER_ID", Message: "user_id inválido", StatusCode: http.StatusBadRequest}
	ErrInvalidLevel      = &AppError{Code: "INVALID_LEVEL", Message: "Nível deve ser entre 1 e 10", StatusCode: http.StatusBadRequest}
	ErrInvalidRecordedAt = &AppError{Code: "INVALID_RECORDED_AT", Message: "recorded_at deve ser uma data válida", StatusCode: http.StatusBadRequest}
	ErrFutureRecordedAt  = &AppError{Code: "FUTURE_RECORDED_AT", Message: "recorded_at não pode ser no futuro", StatusCode: http.StatusBadRequest}
	ErrInvalidComponents = &AppError{Code: "INVALID_COMPONENTS", Message: "Componentes inválidos", StatusCode: http.StatusBadRequest}
	ErrInvalidStartDate  = &AppError{Code: "INVALID_START_DATE", Message: "Data de início inválida", StatusCode: http.StatusBadRequest}
	ErrInvalidEndDate    = &AppError{Code: "INVALID_END_DATE", Message: "Data de fim inválida", StatusCode: http.StatusBadRequest}
	ErrInvalidDateRange  = &AppError{Code: "INVALID_DATE_RANGE", Message: "Intervalo de datas inválido", StatusCode: http.StatusBadRequest}
)
