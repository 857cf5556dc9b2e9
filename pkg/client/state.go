package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// AuthState — локальное состояние сессии клиента: пара токенов и
// снапшот профиля из последнего ответа login/refresh.
// Состояние заменяется целиком, поля по отдельности не мутируются.
type AuthState struct {
	AccessToken     string    `json:"access_token"`
	RefreshToken    string    `json:"refresh_token"`
	AccessExpiresAt time.Time `json:"access_expires_at"`

	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// SessionStore — персистентное хранилище AuthState между запусками.
// nil-состояние в Load означает "не залогинен" и не является ошибкой.
type SessionStore interface {
	Load() (*AuthState, error)
	Save(state *AuthState) error
	Clear() error
}

// FileStore хранит состояние в JSON-файле с правами 0600.
// Запись атомарна: во временный файл с последующим rename.
type FileStore struct {
	mu   sync.Mutex
	path string
}

var _ SessionStore = (*FileStore)(nil)

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() (*AuthState, error) {
	const op = "client.state.Load"

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var state AuthState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &state, nil
}

func (s *FileStore) Save(state *AuthState) error {
	const op = "client.state.Save"

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	tmpName := tmp.Name()

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *FileStore) Clear() error {
	const op = "client.state.Clear"

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// MemoryStore — хранилище в памяти, для тестов и короткоживущих клиентов.
type MemoryStore struct {
	mu    sync.Mutex
	state *AuthState
}

var _ SessionStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) Load() (*AuthState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return nil, nil
	}

	cp := *s.state
	return &cp, nil
}

func (s *MemoryStore) Save(state *AuthState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *state
	s.state = &cp
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = nil
	return nil
}
