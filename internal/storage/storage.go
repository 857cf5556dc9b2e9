package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/myndaaa/musicplayer-backend/internal/models"
)

var (
	// ErrNotFound — запись не найдена (пользователь/токен/сущность каталога).
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности (username/email/stage_name/name/refresh-token).
	ErrAlreadyExists = errors.New("already exists")
)

// UserStorage выполняет операции над пользователями.
type UserStorage interface {
	// SaveUser создает нового пользователя в БД.
	SaveUser(ctx context.Context, user *models.User) error
	// UserByUsername находит пользователя по логину (мягко удалённые исключаются).
	UserByUsername(ctx context.Context, username string) (*models.User, error)
	// UserByID находит пользователя по ID (мягко удалённые исключаются).
	UserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	// UpdateUserProfile обновляет имя/фамилию/email пользователя.
	UpdateUserProfile(ctx context.Context, user *models.User) error
	// SoftDeleteUser помечает пользователя удалённым.
	SoftDeleteUser(ctx context.Context, id uuid.UUID, now time.Time) error
}

// RefreshTokenStorage выполняет операции над refresh-токенами.
type RefreshTokenStorage interface {
	// SaveRefreshToken сохраняет новый refresh-token в БД.
	SaveRefreshToken(ctx context.Context, token *models.RefreshToken) error
	// RefreshTokenByHash находит refresh-токен по его хэшу.
	RefreshTokenByHash(ctx context.Context, hash string) (*models.RefreshToken, error)
	// RevokeRefreshTokenIfActive пытается атомарно отозвать ещё активный refresh-токен.
	// Возвращает:
	//	(true, nil)  — токен был активен и отозван сейчас;
	//	(false, nil) — токен существует, но уже был отозван ранее;
	//	(false, ErrNotFound) — токен не найден.
	RevokeRefreshTokenIfActive(ctx context.Context, hash string) (bool, error)
	// RevokeSession отзывает все токены цепочки session_id.
	// Возвращает количество отозванных записей.
	RevokeSession(ctx context.Context, sessionID uuid.UUID) (int64, error)
	// DeleteExpiredTokens удаляет все просроченные токены.
	DeleteExpiredTokens(ctx context.Context, now time.Time) error
}

// GenreStorage выполняет операции над жанрами.
type GenreStorage interface {
	SaveGenre(ctx context.Context, genre *models.Genre) error
	GenreByID(ctx context.Context, id uuid.UUID) (*models.Genre, error)
	GenreByName(ctx context.Context, name string) (*models.Genre, error)
	// ListGenres возвращает жанры; includeDisabled=false скрывает отключённые.
	ListGenres(ctx context.Context, includeDisabled bool) ([]models.Genre, error)
	UpdateGenre(ctx context.Context, id uuid.UUID, upd models.GenreUpdate, now time.Time) (*models.Genre, error)
	// SetGenreDisabled включает/отключает жанр.
	SetGenreDisabled(ctx context.Context, id uuid.UUID, disabled bool, now time.Time) error
}

// ArtistStorage выполняет операции над профилями исполнителей.
type ArtistStorage interface {
	SaveArtist(ctx context.Context, artist *models.Artist) error
	ArtistByID(ctx context.Context, id uuid.UUID) (*models.Artist, error)
	ArtistByUserID(ctx context.Context, userID uuid.UUID) (*models.Artist, error)
	// ListArtists возвращает страницу активных профилей; opts.Query фильтрует по stage_name.
	ListArtists(ctx context.Context, opts models.ListOptions) ([]models.Artist, error)
	UpdateArtist(ctx context.Context, id uuid.UUID, upd models.ArtistUpdate, now time.Time) (*models.Artist, error)
	SetArtistDisabled(ctx context.Context, id uuid.UUID, disabled bool, now time.Time) error
}

// SongStorage выполняет операции над треками.
type SongStorage interface {
	SaveSong(ctx context.Context, song *models.Song) error
	SongByID(ctx context.Context, id uuid.UUID) (*models.Song, error)
	// ListSongs возвращает страницу активных треков; opts.Query ищет по подстроке названия.
	ListSongs(ctx context.Context, opts models.ListOptions) ([]models.Song, error)
	SongsByArtist(ctx context.Context, artistID uuid.UUID, opts models.ListOptions) ([]models.Song, error)
	SongsByGenre(ctx context.Context, genreID uuid.UUID, opts models.ListOptions) ([]models.Song, error)
	UpdateSong(ctx context.Context, id uuid.UUID, upd models.SongUpdate, now time.Time) (*models.Song, error)
	SetSongDisabled(ctx context.Context, id uuid.UUID, disabled bool, now time.Time) error
}

// Storage задает контракт работы с БД.
type Storage interface {
	UserStorage
	RefreshTokenStorage
	GenreStorage
	ArtistStorage
	SongStorage
	Close()
}
