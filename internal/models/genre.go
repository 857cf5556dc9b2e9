package models

import (
	"time"

	"github.com/google/uuid"
)

// Genre — жанр каталога.
type Genre struct {
	ID          uuid.UUID
	Name        string
	Description string
	IsDisabled  bool
	DisabledAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// GenreUpdate — частичное обновление жанра; nil-поле означает "не менять".
type GenreUpdate struct {
	Name        *string
	Description *string
}
