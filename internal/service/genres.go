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

// CreateGenre создает жанр. Только для администратора.
func (s *Service) CreateGenre(ctx context.Context, actor *Identity, name, description string) (*models.Genre, error) {
	const op = "service.genres.CreateGenre"

	if actor.Role != models.RoleAdmin {
		return nil, fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	name = strings.TrimSpace(name)
	if name == "" || len([]rune(name)) > 255 {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidInput)
	}

	now := time.Now().UTC()
	genre := &models.Genre{
		ID:          uuid.New(),
		Name:        name,
		Description: strings.TrimSpace(description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.storage.SaveGenre(ctx, genre); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, fmt.Errorf("%s: %w", op, ErrGenreNameTaken)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return genre, nil
}

// GenreByID возвращает жанр; отключённые видны только администратору.
func (s *Service) GenreByID(ctx context.Context, actor *Identity, id uuid.UUID) (*models.Genre, error) {
	const op = "service.genres.GenreByID"

	genre, err := s.storage.GenreByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if genre.IsDisabled && (actor == nil || actor.Role != models.RoleAdmin) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	return genre, nil
}

// GenreByName возвращает активный жанр по имени.
func (s *Service) GenreByName(ctx context.Context, name string) (*models.Genre, error) {
	const op = "service.genres.GenreByName"

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidInput)
	}

	genre, err := s.storage.GenreByName(ctx, name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if genre.IsDisabled {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	return genre, nil
}

// ListGenres возвращает активные жанры; администратор с includeDisabled=true видит все.
func (s *Service) ListGenres(ctx context.Context, actor *Identity, includeDisabled bool) ([]models.Genre, error) {
	const op = "service.genres.ListGenres"

	if includeDisabled && (actor == nil || actor.Role != models.RoleAdmin) {
		return nil, fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	genres, err := s.storage.ListGenres(ctx, includeDisabled)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return genres, nil
}

// UpdateGenre применяет частичное обновление. Только для администратора.
func (s *Service) UpdateGenre(ctx context.Context, actor *Identity, id uuid.UUID, upd models.GenreUpdate) (*models.Genre, error) {
	const op = "service.genres.UpdateGenre"

	if actor.Role != models.RoleAdmin {
		return nil, fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	if upd.Name == nil && upd.Description == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidInput)
	}

	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" || len([]rune(name)) > 255 {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidInput)
		}
		upd.Name = &name
	}

	genre, err := s.storage.UpdateGenre(ctx, id, upd, time.Now().UTC())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, fmt.Errorf("%s: %w", op, ErrGenreNameTaken)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return genre, nil
}

// SetGenreDisabled включает/отключает жанр. Только для администратора.
func (s *Service) SetGenreDisabled(ctx context.Context, actor *Identity, id uuid.UUID, disabled bool) error {
	const op = "service.genres.SetGenreDisabled"

	if actor.Role != models.RoleAdmin {
		return fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	if err := s.storage.SetGenreDisabled(ctx, id, disabled, time.Now().UTC()); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
