package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/myndaaa/musicplayer-backend/internal/models"
	"github.com/myndaaa/musicplayer-backend/internal/storage"
)

const artistColumns = `id, user_id, stage_name, bio, profile_image, is_disabled, disabled_at, created_at, updated_at`

func scanArtist(row pgx.Row) (*models.Artist, error) {
	var a models.Artist
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.StageName,
		&a.Bio,
		&a.ProfileImage,
		&a.IsDisabled,
		&a.DisabledAt,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &a, nil
}

// SaveArtist создает профиль исполнителя.
func (s *Storage) SaveArtist(ctx context.Context, artist *models.Artist) error {
	const op = "storage.postgres.SaveArtist"

	query := `
		INSERT INTO artists(id, user_id, stage_name, bio, profile_image, is_disabled, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := s.db.Exec(ctx, query,
		artist.ID,
		artist.UserID,
		artist.StageName,
		artist.Bio,
		artist.ProfileImage,
		artist.IsDisabled,
		artist.CreatedAt,
		artist.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ArtistByID находит профиль по ID.
func (s *Storage) ArtistByID(ctx context.Context, id uuid.UUID) (*models.Artist, error) {
	const op = "storage.postgres.ArtistByID"

	query := `
		SELECT ` + artistColumns + `
		FROM artists
		WHERE id = $1
	`

	a, err := scanArtist(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return a, nil
}

// ArtistByUserID находит профиль по ID учетной записи.
func (s *Storage) ArtistByUserID(ctx context.Context, userID uuid.UUID) (*models.Artist, error) {
	const op = "storage.postgres.ArtistByUserID"

	query := `
		SELECT ` + artistColumns + `
		FROM artists
		WHERE user_id = $1
	`

	a, err := scanArtist(s.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return a, nil
}

// ListArtists возвращает страницу активных профилей; opts.Query фильтрует по stage_name.
func (s *Storage) ListArtists(ctx context.Context, opts models.ListOptions) ([]models.Artist, error) {
	const op = "storage.postgres.ListArtists"

	query := `
		SELECT ` + artistColumns + `
		FROM artists
		WHERE is_disabled = FALSE
		  AND ($3 = '' OR stage_name ILIKE '%' || $3 || '%')
		ORDER BY stage_name
		LIMIT $1 OFFSET $2
	`

	rows, err := s.db.Query(ctx, query, opts.Limit, opts.Offset, opts.Query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var artists []models.Artist
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		artists = append(artists, *a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return artists, nil
}

// UpdateArtist применяет частичное обновление и возвращает свежую запись.
func (s *Storage) UpdateArtist(ctx context.Context, id uuid.UUID, upd models.ArtistUpdate, now time.Time) (*models.Artist, error) {
	const op = "storage.postgres.UpdateArtist"

	query := `
		UPDATE artists
		SET stage_name = COALESCE($2, stage_name),
		    bio = COALESCE($3, bio),
		    profile_image = COALESCE($4, profile_image),
		    updated_at = $5
		WHERE id = $1
		RETURNING ` + artistColumns + `
	`

	a, err := scanArtist(s.db.QueryRow(ctx, query, id, upd.StageName, upd.Bio, upd.ProfileImage, now))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return a, nil
}

// SetArtistDisabled включает/отключает профиль.
func (s *Storage) SetArtistDisabled(ctx context.Context, id uuid.UUID, disabled bool, now time.Time) error {
	const op = "storage.postgres.SetArtistDisabled"

	query := `
		UPDATE artists
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
