package models

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken — серверная запись о refresh-токене.
//
// SessionID связывает все токены одной login-сессии в цепочку ротаций:
// при обнаружении повторного использования уже ротированного токена
// отзывается вся цепочка целиком.
type RefreshToken struct {
	RefreshTokenHash string
	UserID           uuid.UUID
	SessionID        uuid.UUID
	CreatedAt        time.Time
	ExpiresAt        time.Time
	Revoked          bool
}
