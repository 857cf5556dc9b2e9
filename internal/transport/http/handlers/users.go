package handlers

import (
	"net/http"

	"github.com/myndaaa/musicplayer-backend/internal/service"
	"github.com/myndaaa/musicplayer-backend/internal/transport/http/httperr"
	"github.com/myndaaa/musicplayer-backend/internal/transport/http/middleware"
)

// SignupListener регистрирует слушателя.
//
// POST /users/signup
func (h *Handlers) SignupListener(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeStrict(r, &req); err != nil {
		httperr.WriteBadRequest(w, r)
		return
	}

	user, err := h.Service.RegisterListener(r.Context(), service.SignupParams{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, userToResponse(user))
}

// UpdateMe частично обновляет профиль текущего пользователя.
//
// PATCH /users/me
func (h *Handlers) UpdateMe(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFrom(r.Context())
	if identity == nil {
		httperr.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	var req updateProfileRequest
	if err := decodeStrict(r, &req); err != nil {
		httperr.WriteBadRequest(w, r)
		return
	}

	user, err := h.Service.UpdateProfile(r.Context(), identity.UserID, service.ProfileUpdate{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userToResponse(user))
}
