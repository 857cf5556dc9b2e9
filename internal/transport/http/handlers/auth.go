package handlers

import (
	"net/http"

	"github.com/myndaaa/musicplayer-backend/internal/service"
	"github.com/myndaaa/musicplayer-backend/internal/transport/http/httperr"
	"github.com/myndaaa/musicplayer-backend/internal/transport/http/middleware"
)

// Login обменивает username+password на пару токенов.
//
// POST /auth/login
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeStrict(r, &req); err != nil {
		httperr.WriteBadRequest(w, r)
		return
	}

	pair, user, err := h.Service.LoginUser(r.Context(), req.Username, req.Password)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, authToResponse(pair, user))
}

// Refresh ротирует refresh-токен и выдаёт новую пару.
// Старый refresh-токен после успешного ответа мёртв.
//
// POST /auth/refresh
func (h *Handlers) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := decodeStrict(r, &req); err != nil {
		httperr.WriteBadRequest(w, r)
		return
	}

	pair, user, err := h.Service.RefreshToken(r.Context(), req.RefreshToken)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, authToResponse(pair, user))
}

// Logout отзывает предъявленный refresh-токен. Повторный logout того же
// токена — тоже 204: операция идемпотентна.
//
// POST /auth/logout
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := decodeStrict(r, &req); err != nil {
		httperr.WriteBadRequest(w, r)
		return
	}

	if err := h.Service.RevokeToken(r.Context(), req.RefreshToken); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Me возвращает профиль владельца access-токена.
//
// GET /auth/me
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFrom(r.Context())
	if identity == nil {
		httperr.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	user, err := h.Service.Profile(r.Context(), identity.UserID)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userToResponse(user))
}
