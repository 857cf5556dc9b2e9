package models

import (
	"time"

	"github.com/google/uuid"
)

// Artist — профиль исполнителя, привязанный к учетной записи пользователя.
type Artist struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	StageName    string
	Bio          string
	ProfileImage string
	IsDisabled   bool
	DisabledAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ArtistUpdate — частичное обновление профиля; nil-поле означает "не менять".
type ArtistUpdate struct {
	StageName    *string
	Bio          *string
	ProfileImage *string
}
