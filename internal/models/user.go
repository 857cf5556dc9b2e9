package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Role — закрытое перечисление ролей пользователя.
// Новая роль добавляется только здесь и в ParseRole/Valid,
// чтобы ветвления по ролям проверялись на этапе компиляции.
type Role string

const (
	// RoleListener — обычный слушатель (роль по умолчанию при регистрации).
	RoleListener Role = "listener"
	// RoleMusician — исполнитель, владеет профилем артиста и своими треками.
	RoleMusician Role = "musician"
	// RoleAdmin — администратор каталога и пользователей.
	RoleAdmin Role = "admin"
)

// Valid сообщает, входит ли значение в перечисление.
func (r Role) Valid() bool {
	switch r {
	case RoleListener, RoleMusician, RoleAdmin:
		return true
	}

	return false
}

// ParseRole разбирает строковое представление роли.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}

	return r, nil
}

// User — модель пользователя в системе.
//
// PasswordHash никогда не отдается наружу; DeletedAt != nil означает
// мягкое удаление (запись остается в БД, но не участвует в выборках).
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	FirstName    string
	LastName     string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}
