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

// ListArtists возвращает страницу активных профилей исполнителей.
func (s *Service) ListArtists(ctx context.Context, opts models.ListOptions) ([]models.Artist, error) {
	const op = "service.artists.ListArtists"

	opts = s.normalizeList(opts)
	opts.Query = strings.TrimSpace(opts.Query)

	artists, err := s.storage.ListArtists(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return artists, nil
}

// ArtistByID возвращает профиль; отключённые видны только администратору.
func (s *Service) ArtistByID(ctx context.Context, actor *Identity, id uuid.UUID) (*models.Artist, error) {
	const op = "service.artists.ArtistByID"

	artist, err := s.storage.ArtistByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if artist.IsDisabled && (actor == nil || actor.Role != models.RoleAdmin) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	return artist, nil
}

// OwnArtistProfile возвращает профиль исполнителя текущего пользователя.
func (s *Service) OwnArtistProfile(ctx context.Context, actor *Identity) (*models.Artist, error) {
	const op = "service.artists.OwnArtistProfile"

	if actor.Role != models.RoleMusician {
		return nil, fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	artist, err := s.storage.ArtistByUserID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return artist, nil
}

// UpdateOwnArtistProfile применяет частичное обновление собственного профиля.
func (s *Service) UpdateOwnArtistProfile(ctx context.Context, actor *Identity, upd models.ArtistUpdate) (*models.Artist, error) {
	const op = "service.artists.UpdateOwnArtistProfile"

	artist, err := s.OwnArtistProfile(ctx, actor)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if upd.StageName == nil && upd.Bio == nil && upd.ProfileImage == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidInput)
	}

	if upd.StageName != nil {
		stageName := strings.TrimSpace(*upd.StageName)
		if stageName == "" || len([]rune(stageName)) > 50 {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidInput)
		}
		upd.StageName = &stageName
	}

	updated, err := s.storage.UpdateArtist(ctx, artist.ID, upd, time.Now().UTC())
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, fmt.Errorf("%s: %w", op, ErrStageNameTaken)
		}

		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return updated, nil
}

// DisableOwnArtistProfile отключает собственный профиль исполнителя.
func (s *Service) DisableOwnArtistProfile(ctx context.Context, actor *Identity) error {
	const op = "service.artists.DisableOwnArtistProfile"

	artist, err := s.OwnArtistProfile(ctx, actor)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.SetArtistDisabled(ctx, artist.ID, true, time.Now().UTC()); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// SetArtistDisabled включает/отключает произвольный профиль. Только для администратора.
func (s *Service) SetArtistDisabled(ctx context.Context, actor *Identity, id uuid.UUID, disabled bool) error {
	const op = "service.artists.SetArtistDisabled"

	if actor.Role != models.RoleAdmin {
		return fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	if err := s.storage.SetArtistDisabled(ctx, id, disabled, time.Now().UTC()); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
