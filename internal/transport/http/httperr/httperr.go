// httperr стандартизирует ответы об ошибках HTTP-слоя.
// На вход он принимает доменную ошибку (sentinel из пакета service),
// а на выход даёт:
//   - корректный HTTP-статус;
//   - краткое безопасное message без утечки деталей.
//
// Все проблемы с токенами и кредами схлопываются в единый 401
// "unauthenticated": различия (expired/revoked/bad signature) остаются
// в логах и не отдаются клиенту, чтобы не помогать перебору.
// Конфликты и ошибки валидации, напротив, адресные: они не несут
// чувствительной информации и должны помогать исправить ввод.
package httperr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/myndaaa/musicplayer-backend/internal/service"
)

// APIError — единый формат для фронта.
// Code — короткий стабильный код для машиночитаемой обработки на FE.
// Message — безопасное человекочитаемое описание.
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ToHTTP конвертирует доменную ошибку в HTTP-статус и унифицированный ответ.
//
// Поведение:
//   - err == nil — это программная ошибка вызова: возвращаем 500/internal,
//     чтобы не послать "200 OK" с телом ошибки и не маскировать баг.
//   - неизвестная ошибка — 500/internal (без утечки деталей).
func ToHTTP(err error) (int, ErrorResponse) {
	if err == nil {
		return internalError()
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken),
		errors.Is(err, service.ErrTokenExpired),
		errors.Is(err, service.ErrTokenRevoked),
		errors.Is(err, service.ErrTokenReused):
		return http.StatusUnauthorized, response("unauthenticated", "unauthenticated")

	case errors.Is(err, service.ErrPermissionDenied):
		return http.StatusForbidden, response("permission_denied", "permission denied")

	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, response("not_found", "not found")

	case errors.Is(err, service.ErrUsernameTaken):
		return http.StatusConflict, response("username_taken", "username already taken")

	case errors.Is(err, service.ErrEmailTaken):
		return http.StatusConflict, response("email_taken", "email already taken")

	case errors.Is(err, service.ErrStageNameTaken):
		return http.StatusConflict, response("stage_name_taken", "stage name already taken")

	case errors.Is(err, service.ErrGenreNameTaken):
		return http.StatusConflict, response("genre_name_taken", "genre name already taken")

	case errors.Is(err, service.ErrInvalidEmail):
		return http.StatusUnprocessableEntity, response("invalid_email", "invalid email format")

	case errors.Is(err, service.ErrInvalidUsername):
		return http.StatusUnprocessableEntity, response("invalid_username", "username must be 3-50 characters: letters, digits, '.', '_' or '-'")

	case errors.Is(err, service.ErrEmptyPassword):
		return http.StatusUnprocessableEntity, response("empty_password", "password is required")

	case errors.Is(err, service.ErrWeakPassword):
		return http.StatusUnprocessableEntity, response("weak_password", "password must be at least 8 characters with lower, upper, digit and special")

	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusUnprocessableEntity, response("invalid_input", "invalid input")
	}

	return internalError()
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	// Прокидываем request_id для фронта, чтобы он мог репортить баги с привязкой.
	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// WriteBadRequest — ответ на синтаксически некорректное тело запроса.
func WriteBadRequest(w http.ResponseWriter, r *http.Request) {
	resp := response("invalid_argument", "invalid request body")
	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(resp)
}

func response(code, message string) ErrorResponse {
	return ErrorResponse{Error: APIError{Code: code, Message: message}}
}

func internalError() (int, ErrorResponse) {
	return http.StatusInternalServerError, response("internal", "internal error")
}
