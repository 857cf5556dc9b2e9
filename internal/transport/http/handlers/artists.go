package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/myndaaa/musicplayer-backend/internal/models"
	"github.com/myndaaa/musicplayer-backend/internal/service"
	"github.com/myndaaa/musicplayer-backend/internal/transport/http/httperr"
	"github.com/myndaaa/musicplayer-backend/internal/transport/http/middleware"
)

// SignupArtist регистрирует исполнителя: пользователь с ролью musician
// плюс его артистский профиль.
//
// POST /artists/signup
func (h *Handlers) SignupArtist(w http.ResponseWriter, r *http.Request) {
	var req artistSignupRequest
	if err := decodeStrict(r, &req); err != nil {
		httperr.WriteBadRequest(w, r)
		return
	}

	user, artist, err := h.Service.RegisterArtist(r.Context(), service.ArtistSignupParams{
		SignupParams: service.SignupParams{
			Username:  req.Username,
			Email:     req.Email,
			Password:  req.Password,
			FirstName: req.FirstName,
			LastName:  req.LastName,
		},
		StageName:    req.StageName,
		Bio:          req.Bio,
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, artistSignupResponse{
		User:   userToResponse(user),
		Artist: artistToResponse(artist),
	})
}

// ListArtists — постраничный список с поиском по stage_name.
//
// GET /artists
func (h *Handlers) ListArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := h.Service.ListArtists(r.Context(), listOptions(r))
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, artistsToResponse(artists))
}

// GetArtist возвращает профиль исполнителя по id.
//
// GET /artists/{id}
func (h *Handlers) GetArtist(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httperr.WriteBadRequest(w, r)
		return
	}

	artist, err := h.Service.ArtistByID(r.Context(), middleware.IdentityFrom(r.Context()), id)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, artistToResponse(artist))
}

// MyArtistProfile — собственный артистский профиль musician-а,
// включая отключённый.
//
// GET /artists/me
func (h *Handlers) MyArtistProfile(w http.ResponseWriter, r *http.Request) {
	artist, err := h.Service.OwnArtistProfile(r.Context(), middleware.IdentityFrom(r.Context()))
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, artistToResponse(artist))
}

// UpdateMyArtistProfile частично обновляет собственный профиль.
//
// PATCH /artists/me
func (h *Handlers) UpdateMyArtistProfile(w http.ResponseWriter, r *http.Request) {
	var req updateArtistRequest
	if err := decodeStrict(r, &req); err != nil {
		httperr.WriteBadRequest(w, r)
		return
	}

	artist, err := h.Service.UpdateOwnArtistProfile(r.Context(), middleware.IdentityFrom(r.Context()), models.ArtistUpdate{
		StageName:    req.StageName,
		Bio:          req.Bio,
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, artistToResponse(artist))
}

// DisableMyArtistProfile скрывает собственный профиль из каталога.
//
// DELETE /artists/me
func (h *Handlers) DisableMyArtistProfile(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DisableOwnArtistProfile(r.Context(), middleware.IdentityFrom(r.Context())); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SetArtistDisabled — админская модерация: скрыть или вернуть профиль.
//
// PUT /artists/{id}/disabled
func (h *Handlers) SetArtistDisabled(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httperr.WriteBadRequest(w, r)
		return
	}

	var req struct {
		Disabled bool `json:"disabled"`
	}
	if err := decodeStrict(r, &req); err != nil {
		httperr.WriteBadRequest(w, r)
		return
	}

	if err := h.Service.SetArtistDisabled(r.Context(), middleware.IdentityFrom(r.Context()), id, req.Disabled); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
