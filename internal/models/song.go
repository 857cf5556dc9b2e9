package models

import (
	"time"

	"github.com/google/uuid"
)

// Song — трек каталога.
type Song struct {
	ID          uuid.UUID
	Title       string
	GenreID     uuid.UUID
	ArtistID    uuid.UUID
	UploadedBy  uuid.UUID
	DurationSec int
	FilePath    string
	CoverImage  string
	ReleaseDate time.Time
	IsDisabled  bool
	DisabledAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SongUpdate — частичное обновление метаданных трека; nil-поле означает "не менять".
type SongUpdate struct {
	Title       *string
	GenreID     *uuid.UUID
	CoverImage  *string
	ReleaseDate *time.Time
}

// ListOptions — параметры постраничных выборок каталога.
type ListOptions struct {
	Limit  int
	Offset int
	// Query — подстрока для поиска (название трека, сценическое имя).
	Query string
}
