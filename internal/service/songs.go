package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/myndaaa/musicplayer-backend/internal/models"
	"github.com/myndaaa/musicplayer-backend/internal/storage"
)

// UploadSongParams — метаданные загружаемого трека.
// Сам файл вне зоны ответственности бэкенда: FilePath — ссылка на хранилище.
type UploadSongParams struct {
	Title       string
	GenreID     uuid.UUID
	ArtistID    uuid.UUID // для musician игнорируется: берётся собственный профиль
	DurationSec int
	FilePath    string
	CoverImage  string
	ReleaseDate time.Time
}

// UploadSong создает трек. Musician публикует под своим профилем,
// администратор — под любым.
func (s *Service) UploadSong(ctx context.Context, actor *Identity, params UploadSongParams) (*models.Song, error) {
	const op = "service.songs.UploadSong"

	var artistID uuid.UUID

	switch actor.Role {
	case models.RoleMusician:
		artist, err := s.storage.ArtistByUserID(ctx, actor.UserID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, fmt.Errorf("%s: %w", op, ErrPermissionDenied)
			}

			return nil, fmt.Errorf("%s: %w", op, err)
		}

		if artist.IsDisabled {
			return nil, fmt.Errorf("%s: %w", op, ErrPermissionDenied)
		}

		artistID = artist.ID
	case models.RoleAdmin:
		artistID = params.ArtistID
		if _, err := s.storage.ArtistByID(ctx, artistID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, fmt.Errorf("%s: %w", op, ErrInvalidInput)
			}

			return nil, fmt.Errorf("%s: %w", op, err)
		}
	case models.RoleListener:
		return nil, fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	title := strings.TrimSpace(params.Title)
	if title == "" || len([]rune(title)) > 150 {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidInput)
	}

	if params.DurationSec <= 0 || strings.TrimSpace(params.FilePath) == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidInput)
	}

	if genre, err := s.storage.GenreByID(ctx, params.GenreID); err != nil || genre.IsDisabled {
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidInput)
	}

	now := time.Now().UTC()
	releaseDate := params.ReleaseDate
	if releaseDate.IsZero() {
		releaseDate = now
	}

	song := &models.Song{
		ID:          uuid.New(),
		Title:       title,
		GenreID:     params.GenreID,
		ArtistID:    artistID,
		UploadedBy:  actor.UserID,
		DurationSec: params.DurationSec,
		FilePath:    strings.TrimSpace(params.FilePath),
		CoverImage:  strings.TrimSpace(params.CoverImage),
		ReleaseDate: releaseDate.UTC(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.storage.SaveSong(ctx, song); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return song, nil
}

// SongByID возвращает трек; отключённые видны только администратору.
func (s *Service) SongByID(ctx context.Context, actor *Identity, id uuid.UUID) (*models.Song, error) {
	const op = "service.songs.SongByID"

	song, err := s.storage.SongByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if song.IsDisabled && (actor == nil || actor.Role != models.RoleAdmin) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	return song, nil
}

// ListSongs возвращает страницу активных треков; opts.Query ищет по названию.
func (s *Service) ListSongs(ctx context.Context, opts models.ListOptions) ([]models.Song, error) {
	const op = "service.songs.ListSongs"

	opts = s.normalizeList(opts)
	opts.Query = strings.TrimSpace(opts.Query)

	songs, err := s.storage.ListSongs(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return songs, nil
}

// SongsByArtist возвращает страницу активных треков исполнителя.
func (s *Service) SongsByArtist(ctx context.Context, artistID uuid.UUID, opts models.ListOptions) ([]models.Song, error) {
	const op = "service.songs.SongsByArtist"

	opts = s.normalizeList(opts)

	songs, err := s.storage.SongsByArtist(ctx, artistID, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return songs, nil
}

// SongsByGenre возвращает страницу активных треков жанра.
func (s *Service) SongsByGenre(ctx context.Context, genreID uuid.UUID, opts models.ListOptions) ([]models.Song, error) {
	const op = "service.songs.SongsByGenre"

	opts = s.normalizeList(opts)

	songs, err := s.storage.SongsByGenre(ctx, genreID, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return songs, nil
}

// UpdateSongMetadata применяет частичное обновление метаданных.
// Разрешено владельцу-исполнителю и администратору.
func (s *Service) UpdateSongMetadata(ctx context.Context, actor *Identity, id uuid.UUID, upd models.SongUpdate) (*models.Song, error) {
	const op = "service.songs.UpdateSongMetadata"

	song, err := s.storage.SongByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.authorizeSongChange(ctx, actor, song); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if upd.Title == nil && upd.GenreID == nil && upd.CoverImage == nil && upd.ReleaseDate == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidInput)
	}

	if upd.Title != nil {
		title := strings.TrimSpace(*upd.Title)
		if title == "" || len([]rune(title)) > 150 {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidInput)
		}
		upd.Title = &title
	}

	if upd.GenreID != nil {
		if genre, err := s.storage.GenreByID(ctx, *upd.GenreID); err != nil || genre.IsDisabled {
			if err != nil && !errors.Is(err, storage.ErrNotFound) {
				return nil, fmt.Errorf("%s: %w", op, err)
			}

			return nil, fmt.Errorf("%s: %w", op, ErrInvalidInput)
		}
	}

	updated, err := s.storage.UpdateSong(ctx, id, upd, time.Now().UTC())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return updated, nil
}

// SetSongDisabled включает/отключает трек. Только для администратора.
func (s *Service) SetSongDisabled(ctx context.Context, actor *Identity, id uuid.UUID, disabled bool) error {
	const op = "service.songs.SetSongDisabled"

	if actor.Role != models.RoleAdmin {
		return fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	if err := s.storage.SetSongDisabled(ctx, id, disabled, time.Now().UTC()); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// authorizeSongChange пропускает администратора и исполнителя-владельца трека.
func (s *Service) authorizeSongChange(ctx context.Context, actor *Identity, song *models.Song) error {
	switch actor.Role {
	case models.RoleAdmin:
		return nil
	case models.RoleMusician:
		artist, err := s.storage.ArtistByUserID(ctx, actor.UserID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrPermissionDenied
			}

			return err
		}

		if artist.ID != song.ArtistID {
			return ErrPermissionDenied
		}

		return nil
	case models.RoleListener:
		return ErrPermissionDenied
	}

	return ErrPermissionDenied
}
