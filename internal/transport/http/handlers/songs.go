package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/myndaaa/musicplayer-backend/internal/models"
	"github.com/myndaaa/musicplayer-backend/internal/service"
	"github.com/myndaaa/musicplayer-backend/internal/transport/http/httperr"
	"github.com/myndaaa/musicplayer-backend/internal/transport/http/middleware"
)

// UploadSong регистрирует трек в каталоге (musician или admin).
//
// POST /songs
func (h *Handlers) UploadSong(w http.ResponseWriter, r *http.Request) {
	var req uploadSongRequest
	if err := decodeStrict(r, &req); err != nil {
		httperr.WriteBadRequest(w, r)
		return
	}

	params := service.UploadSongParams{
		Title:       req.Title,
		GenreID:     req.GenreID,
		DurationSec: req.DurationSec,
		FilePath:    req.FilePath,
		CoverImage:  req.CoverImage,
	}
	if req.ArtistID != nil {
		params.ArtistID = *req.ArtistID
	}
	if req.ReleaseDate != nil {
		params.ReleaseDate = *req.ReleaseDate
	} else {
		params.ReleaseDate = time.Now().UTC()
	}

	song, err := h.Service.UploadSong(r.Context(), middleware.IdentityFrom(r.Context()), params)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, songToResponse(song))
}

// ListSongs — постраничный список с поиском по названию.
//
// GET /songs
func (h *Handlers) ListSongs(w http.ResponseWriter, r *http.Request) {
	songs, err := h.Service.ListSongs(r.Context(), listOptions(r))
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, songsToResponse(songs))
}

// GetSong возвращает трек по id.
//
// GET /songs/{id}
func (h *Handlers) GetSong(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httperr.WriteBadRequest(w, r)
		return
	}

	song, err := h.Service.SongByID(r.Context(), middleware.IdentityFrom(r.Context()), id)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, songToResponse(song))
}

// SongsByArtist — треки одного исполнителя.
//
// GET /artists/{id}/songs
func (h *Handlers) SongsByArtist(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httperr.WriteBadRequest(w, r)
		return
	}

	songs, err := h.Service.SongsByArtist(r.Context(), id, listOptions(r))
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, songsToResponse(songs))
}

// SongsByGenre — треки жанра.
//
// GET /genres/{id}/songs
func (h *Handlers) SongsByGenre(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httperr.WriteBadRequest(w, r)
		return
	}

	songs, err := h.Service.SongsByGenre(r.Context(), id, listOptions(r))
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, songsToResponse(songs))
}

// UpdateSong частично обновляет метаданные трека
// (владелец-musician или admin).
//
// PATCH /songs/{id}
func (h *Handlers) UpdateSong(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httperr.WriteBadRequest(w, r)
		return
	}

	var req updateSongRequest
	if err := decodeStrict(r, &req); err != nil {
		httperr.WriteBadRequest(w, r)
		return
	}

	song, err := h.Service.UpdateSongMetadata(r.Context(), middleware.IdentityFrom(r.Context()), id, models.SongUpdate{
		Title:       req.Title,
		GenreID:     req.GenreID,
		CoverImage:  req.CoverImage,
		ReleaseDate: req.ReleaseDate,
	})
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, songToResponse(song))
}

// SetSongDisabled скрывает или возвращает трек (только admin).
//
// PUT /songs/{id}/disabled
func (h *Handlers) SetSongDisabled(w http.ResponseWriter, r *http.Request) {
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

	if err := h.Service.SetSongDisabled(r.Context(), middleware.IdentityFrom(r.Context()), id, req.Disabled); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
