package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/myndaaa/musicplayer-backend/internal/models"
	"github.com/myndaaa/musicplayer-backend/internal/transport/http/httperr"
	"github.com/myndaaa/musicplayer-backend/internal/transport/http/middleware"
)

// CreateGenre добавляет жанр (только admin).
//
// POST /genres
func (h *Handlers) CreateGenre(w http.ResponseWriter, r *http.Request) {
	var req createGenreRequest
	if err := decodeStrict(r, &req); err != nil {
		httperr.WriteBadRequest(w, r)
		return
	}

	genre, err := h.Service.CreateGenre(r.Context(), middleware.IdentityFrom(r.Context()), req.Name, req.Description)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, genreToResponse(genre))
}

// ListGenres возвращает активные жанры; admin с ?include_disabled=true
// видит и скрытые.
//
// GET /genres
func (h *Handlers) ListGenres(w http.ResponseWriter, r *http.Request) {
	includeDisabled := r.URL.Query().Get("include_disabled") == "true"

	genres, err := h.Service.ListGenres(r.Context(), middleware.IdentityFrom(r.Context()), includeDisabled)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, genresToResponse(genres))
}

// GetGenre возвращает жанр по id.
//
// GET /genres/{id}
func (h *Handlers) GetGenre(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httperr.WriteBadRequest(w, r)
		return
	}

	genre, err := h.Service.GenreByID(r.Context(), middleware.IdentityFrom(r.Context()), id)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, genreToResponse(genre))
}

// GetGenreByName возвращает активный жанр по имени (без учета регистра).
//
// GET /genres/by-name/{name}
func (h *Handlers) GetGenreByName(w http.ResponseWriter, r *http.Request) {
	genre, err := h.Service.GenreByName(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, genreToResponse(genre))
}

// UpdateGenre частично обновляет жанр (только admin).
//
// PATCH /genres/{id}
func (h *Handlers) UpdateGenre(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httperr.WriteBadRequest(w, r)
		return
	}

	var req updateGenreRequest
	if err := decodeStrict(r, &req); err != nil {
		httperr.WriteBadRequest(w, r)
		return
	}

	genre, err := h.Service.UpdateGenre(r.Context(), middleware.IdentityFrom(r.Context()), id, models.GenreUpdate{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, genreToResponse(genre))
}

// SetGenreDisabled скрывает или возвращает жанр (только admin).
//
// PUT /genres/{id}/disabled
func (h *Handlers) SetGenreDisabled(w http.ResponseWriter, r *http.Request) {
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

	if err := h.Service.SetGenreDisabled(r.Context(), middleware.IdentityFrom(r.Context()), id, req.Disabled); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
