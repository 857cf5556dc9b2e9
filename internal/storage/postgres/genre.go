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

const genreColumns = `id, name, description, is_disabled, disabled_at, created_at, updated_at`

func scanGenre(row pgx.Row) (*models.Genre, error) {
	var g models.Genre
	err := row.Scan(
		&g.ID,
		&g.Name,
		&g.Description,
		&g.IsDisabled,
		&g.DisabledAt,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &g, nil
}

// SaveGenre создает новый жанр.
func (s *Storage) SaveGenre(ctx context.Context, genre *models.Genre) error {
	const op = "storage.postgres.SaveGenre"

	query := `
		INSERT INTO genres(id, name, description, is_disabled, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := s.db.Exec(ctx, query,
		genre.ID,
		genre.Name,
		genre.Description,
		genre.IsDisabled,
		genre.CreatedAt,
		genre.UpdatedAt,
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

// GenreByID находит жанр по ID.
func (s *Storage) GenreByID(ctx context.Context, id uuid.UUID) (*models.Genre, error) {
	const op = "storage.postgres.GenreByID"

	query := `
		SELECT ` + genreColumns + `
		FROM genres
		WHERE id = $1
	`

	g, err := scanGenre(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return g, nil
}

// GenreByName находит жанр по имени (citext, без учета регистра).
func (s *Storage) GenreByName(ctx context.Context, name string) (*models.Genre, error) {
	const op = "storage.postgres.GenreByName"

	query := `
		SELECT ` + genreColumns + `
		FROM genres
		WHERE name = $1
	`

	g, err := scanGenre(s.db.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return g, nil
}

// ListGenres возвращает жанры; includeDisabled=false скрывает отключённые.
func (s *Storage) ListGenres(ctx context.Context, includeDisabled bool) ([]models.Genre, error) {
	const op = "storage.postgres.ListGenres"

	query := `
		SELECT ` + genreColumns + `
		FROM genres
		WHERE $1 OR is_disabled = FALSE
		ORDER BY name
	`

	rows, err := s.db.Query(ctx, query, includeDisabled)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var genres []models.Genre
	for rows.Next() {
		g, err := scanGenre(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		genres = append(genres, *g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return genres, nil
}

// UpdateGenre применяет частичное обновление и возвращает свежую запись.
func (s *Storage) UpdateGenre(ctx context.Context, id uuid.UUID, upd models.GenreUpdate, now time.Time) (*models.Genre, error) {
	const op = "storage.postgres.UpdateGenre"

	query := `
		UPDATE genres
		SET name = COALESCE($2, name),
		    description = COALESCE($3, description),
		    updated_at = $4
		WHERE id = $1
		RETURNING ` + genreColumns + `
	`

	g, err := scanGenre(s.db.QueryRow(ctx, query, id, upd.Name, upd.Description, now))
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

	return g, nil
}

// SetGenreDisabled включает/отключает жанр.
func (s *Storage) SetGenreDisabled(ctx context.Context, id uuid.UUID, disabled bool, now time.Time) error {
	const op = "storage.postgres.SetGenreDisabled"

	query := `
		UPDATE genres
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
