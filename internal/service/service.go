// service содержит бизнес-логику бэкенда:
// регистрацию/аутентификацию пользователей, выпуск/проверку токенов,
// CRUD каталога (жанры, исполнители, треки) и работу с хранилищем
// через интерфейсы из пакета storage.
//
// Основные аспекты:
//   - Пакет не хранит состояние запроса внутри Service; экземпляр Service
//     безопасен для конкурентного использования из разных горутин при условии,
//     что переданное хранилище (storage.Storage) потокобезопасно.
//   - Ошибки возвращаются наверх и маппятся HTTP-транспортом на статус-коды
//     (см. комментарии к переменным ошибок ниже).
package service

import (
	"errors"

	"github.com/myndaaa/musicplayer-backend/internal/cache"
	"github.com/myndaaa/musicplayer-backend/internal/config"
	"github.com/myndaaa/musicplayer-backend/internal/models"
	"github.com/myndaaa/musicplayer-backend/internal/storage"

	"github.com/google/uuid"
)

var (
	// ErrInvalidCredentials — пара логин/пароль неверна, пользователь не найден
	// или учетная запись отключена. Наружу все три случая неразличимы. HTTP 401.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken — токен (access/refresh) некорректен по формату/подписи
	// или отсутствует в хранилище. HTTP 401.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired — срок действия токена истёк. HTTP 401.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenRevoked — токен отозван (logout/rotation) и недействителен
	// независимо от срока. HTTP 401.
	ErrTokenRevoked = errors.New("token revoked")

	// ErrTokenReused — повторное предъявление уже ротированного refresh-токена;
	// трактуется как компрометация, вся цепочка сессии отзывается. HTTP 401.
	ErrTokenReused = errors.New("refresh token reused")

	// ErrUsernameTaken — логин уже занят другим пользователем. HTTP 409.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrEmailTaken — e-mail уже занят другим пользователем. HTTP 409.
	ErrEmailTaken = errors.New("email already taken")

	// ErrStageNameTaken — сценическое имя уже занято. HTTP 409.
	ErrStageNameTaken = errors.New("stage name already taken")

	// ErrGenreNameTaken — имя жанра уже занято. HTTP 409.
	ErrGenreNameTaken = errors.New("genre name already taken")

	// ErrRefreshTokenCollision — исчерпаны попытки сгенерировать уникальный refresh-токен
	// (редкий случай коллизий при сохранении хэша в БД после нескольких ретраев). HTTP 500.
	ErrRefreshTokenCollision = errors.New("refresh token collision")

	// ErrInvalidEmail — e-mail имеет некорректный формат. HTTP 422.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidUsername — логин не проходит политику валидации. HTTP 422.
	ErrInvalidUsername = errors.New("invalid username")

	// ErrWeakPassword — пароль не удовлетворяет политикам сложности. HTTP 422.
	ErrWeakPassword = errors.New("password is too weak")

	// ErrEmptyPassword — пароль пустой. HTTP 422.
	ErrEmptyPassword = errors.New("password is empty")

	// ErrInvalidInput — прочие ошибки валидации входных данных. HTTP 422.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound — запрошенная сущность не найдена. HTTP 404.
	ErrNotFound = errors.New("not found")

	// ErrPermissionDenied — операция не разрешена роли/владельцу. HTTP 403.
	ErrPermissionDenied = errors.New("permission denied")
)

// Identity — минимальный контекст аутентифицированного пользователя,
// извлекаемый из access-токена без обращения к БД.
type Identity struct {
	UserID   uuid.UUID
	Username string
	Email    string
	Role     models.Role
}

// Service описывает бизнес-логику бэкенда.
type Service struct {
	storage storage.Storage
	cfg     config.Config
	rcache  cache.RefreshCache // может быть nil, если кэш не сконфигурирован
}

// New создаёт новый экземпляр Service.
func New(storage storage.Storage, cfg config.Config) *Service {
	return &Service{
		storage: storage,
		cfg:     cfg,
	}
}

// SetRefreshCache устанавливает кэш refresh-токенов (опционально).
func (s *Service) SetRefreshCache(c cache.RefreshCache) {
	s.rcache = c
}

// normalizeList приводит limit/offset к допустимым значениям по конфигу.
func (s *Service) normalizeList(opts models.ListOptions) models.ListOptions {
	if opts.Limit <= 0 {
		opts.Limit = s.cfg.Limits.Default
	}

	if s.cfg.Limits.Max > 0 && opts.Limit > s.cfg.Limits.Max {
		opts.Limit = s.cfg.Limits.Max
	}

	if opts.Offset < 0 {
		opts.Offset = 0
	}

	return opts
}
