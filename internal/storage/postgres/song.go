package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/myndaaa/musicplayer-backend/internal/models"
	"github.com/myndaaa/musicplayer-backend/internal/storage"
)

const songColumns = `id, title, genre_id, artist_id, uploaded_by, duration_sec, file_path, cover_image, release_date, is_disabled, disabled_at, created_at, updated_at`

func scanSong(row pgx.Row) (*models.Song, error) {
	var s models.Song
	err := row.Scan(
		&s.ID,
		&s.Title,
		&s.GenreID,
		&s.ArtistID,
		&s.UploadedBy,
		&s.DurationSec,
		&s.FilePath,
		&s.CoverImage,
		&s.ReleaseDate,
		&s.IsDisabled,
		&s.DisabledAt,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (s *Storage) querySongs(ctx context.Context, op, query string, args ...any) ([]models.Song, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var songs []models.Song
	for rows.Next() {
		song, err := scanSong(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		songs = append(songs, *song)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return songs, nil
}

// SaveSong создает новый трек.
func (s *Storage) SaveSong(ctx context.Context, song *models.Song) error {
	const op = "storage.postgres.SaveSong"

	query := `
		INSERT INTO songs(id, title, genre_id, artist_id, uploaded_by, duration_sec, file_path, cover_image, release_date, is_disabled, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := s.db.Exec(ctx, query,
		song.ID,
		song.Title,
		song.GenreID,
		song.ArtistID,
		song.UploadedBy,
		song.DurationSec,
		song.FilePath,
		song.CoverImage,
		song.ReleaseDate,
		song.IsDisabled,
		song.CreatedAt,
		song.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// SongByID находит трек по ID.
func (s *Storage) SongByID(ctx context.Context, id uuid.UUID) (*models.Song, error) {
	const op = "storage.postgres.SongByID"

	query := `
		SELECT ` + songColumns + `
		FROM songs
		WHERE id = $1
	`

	song, err := scanSong(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return song, nil
}

// ListSongs возвращает страницу активных треков; opts.Query ищет по подстроке названия.
func (s *Storage) ListSongs(ctx context.Context, opts models.ListOptions) ([]models.Song, error) {
	const op = "storage.postgres.ListSongs"

	query := `
		SELECT ` + songColumns + `
		FROM songs
		WHERE is_disabled = FALSE
		  AND ($3 = '' OR title ILIKE '%' || $3 || '%')
		ORDER BY created_at DESC, id
		LIMIT $1 OFFSET $2
	`

	return s.querySongs(ctx, op, query, opts.Limit, opts.Offset, opts.Query)
}

// SongsByArtist возвращает страницу активных треков исполнителя.
func (s *Storage) SongsByArtist(ctx context.Context, artistID uuid.UUID, opts models.ListOptions) ([]models.Song, error) {
	const op = "storage.postgres.SongsByArtist"

	query := `
		SELECT ` + songColumns + `
		FROM songs
		WHERE is_disabled = FALSE AND artist_id = $3
		ORDER BY created_at DESC, id
		LIMIT $1 OFFSET $2
	`

	return s.querySongs(ctx, op, query, opts.Limit, opts.Offset, artistID)
}

// SongsByGenre возвращает страницу активных треков жанра.
func (s *Storage) SongsByGenre(ctx context.Context, genreID uuid.UUID, opts models.ListOptions) ([]models.Song, error) {
	const op = "storage.postgres.SongsByGenre"

	query := `
		SELECT ` + songColumns + `
		FROM songs
		WHERE is_disabled = FALSE AND genre_id = $3
		ORDER BY created_at DESC, id
		LIMIT $1 OFFSET $2
	`

	return s.querySongs(ctx, op, query, opts.Limit, opts.Offset, genreID)
}

// UpdateSong применяет частичное обновление метаданных и возвращает свежую запись.
func (s *Storage) UpdateSong(ctx context.Context, id uuid.UUID, upd models.SongUpdate, now time.Time) (*models.Song, error) {
	const op = "storage.postgres.UpdateSong"

	query := `
		UPDATE songs
		SET title = COALESCE($2, title),
		    genre_id = COALESCE($3, genre_id),
		    cover_image = COALESCE($4, cover_image),
		    release_date = COALESCE($5, release_date),
		    updated_at = $6
		WHERE id = $1
		RETURNING ` + songColumns + `
	`

	song, err := scanSong(s.db.QueryRow(ctx, query, id, upd.Title, upd.GenreID, upd.CoverImage, upd.ReleaseDate, now))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return song, nil
}

// SetSongDisabled включает/отключает трек.
func (s *Storage) SetSongDisabled(ctx context.Context, id uuid.UUID, disabled bool, now time.Time) error {
	const op = "storage.postgres.SetSongDisabled"

	query := `
		UPDATE songs
		SET is_disabled = $2,
		    disabled_at = CASE WHEN $2 THEN $3 ELSE NULL END,
		    updated_at = $3
		WHERE id = $1
	`

	cmdTag, err := s.db.Exec(ctx, query, id, disabled, now)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
