package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/myndaaa/musicplayer-backend/internal/models"
	"github.com/myndaaa/musicplayer-backend/internal/pkg/log"
	"github.com/myndaaa/musicplayer-backend/internal/pkg/redact"
	"github.com/myndaaa/musicplayer-backend/internal/storage"
)

// dummyHash — bcrypt-хэш заведомо неизвестного пароля; сравнение с ним
// выравнивает время ответа между "пользователь не найден" и "пароль неверен".
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// SignupParams — данные регистрации слушателя.
type SignupParams struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// ArtistSignupParams — данные регистрации исполнителя.
type ArtistSignupParams struct {
	SignupParams
	StageName    string
	Bio          string
	ProfileImage string
}

// ProfileUpdate — частичное обновление профиля; nil-поле означает "не менять".
type ProfileUpdate struct {
	Email     *string
	FirstName *string
	LastName  *string
}

// RegisterListener регистрирует нового слушателя.
func (s *Service) RegisterListener(ctx context.Context, params SignupParams) (*models.User, error) {
	const op = "service.auth.RegisterListener"

	user, err := s.registerUser(ctx, params, models.RoleListener)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// RegisterArtist регистрирует исполнителя: учетную запись с ролью musician
// и профиль артиста одним действием. Если сценическое имя занято,
// созданная учетная запись помечается удалённой (компенсация).
func (s *Service) RegisterArtist(ctx context.Context, params ArtistSignupParams) (*models.User, *models.Artist, error) {
	const op = "service.auth.RegisterArtist"

	lg := log.From(ctx)

	stageName := strings.TrimSpace(params.StageName)
	if stageName == "" || len([]rune(stageName)) > 50 {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidInput)
	}

	user, err := s.registerUser(ctx, params.SignupParams, models.RoleMusician)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	artist := &models.Artist{
		ID:           uuid.New(),
		UserID:       user.ID,
		StageName:    stageName,
		Bio:          strings.TrimSpace(params.Bio),
		ProfileImage: strings.TrimSpace(params.ProfileImage),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.storage.SaveArtist(ctx, artist); err != nil {
		// Компенсируем уже созданную учетную запись.
		if delErr := s.storage.SoftDeleteUser(ctx, user.ID, time.Now().UTC()); delErr != nil {
			lg.Error("artist_signup_compensation_failed",
				slog.String("op", op),
				slog.String("user_id", user.ID.String()),
				slog.String("err", delErr.Error()),
			)
		}

		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, nil, fmt.Errorf("%s: %w", op, ErrStageNameTaken)
		}

		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, artist, nil
}

// registerUser — общая часть регистрации слушателя/исполнителя.
func (s *Service) registerUser(ctx context.Context, params SignupParams, role models.Role) (*models.User, error) {
	username, err := validateUsername(params.Username)
	if err != nil {
		return nil, err
	}

	normEmail, err := validateEmail(params.Email)
	if err != nil {
		return nil, ErrInvalidEmail
	}

	if err := validatePassword(params.Password); err != nil {
		return nil, err
	}

	// Предварительная проверка логина ради адресной ошибки Conflict.
	_, err = s.storage.UserByUsername(ctx, username)
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	hashedPassword, err := hashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        normEmail,
		PasswordHash: hashedPassword,
		Role:         role,
		FirstName:    strings.TrimSpace(params.FirstName),
		LastName:     strings.TrimSpace(params.LastName),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.storage.SaveUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			// Логин мы уже проверили; остаётся конфликт по email
			// (либо гонка по логину — для клиента разница несущественна).
			return nil, ErrEmailTaken
		}

		return nil, err
	}

	return user, nil
}

// LoginUser выполняет вход по логину+паролю и открывает новую сессию.
func (s *Service) LoginUser(ctx context.Context, username, password string) (*models.TokenPair, *models.User, error) {
	const op = "service.auth.LoginUser"

	lg := log.From(ctx)

	username = strings.TrimSpace(username)
	if username == "" || len(password) == 0 {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	user, err := s.storage.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// Холостое сравнение выравнивает время с веткой "пароль неверен".
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
			return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}

		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	if !checkPassword(user.PasswordHash, password) {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	if !user.IsActive {
		// Наружу неотличимо от неверных кредов; причина остаётся в логах.
		lg.Warn("login_inactive_account",
			slog.String("op", op),
			slog.String("username", redact.Username(username)),
		)
		return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	pair, err := s.issueTokenPair(ctx, user, uuid.New())
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return pair, user, nil
}

// RefreshToken обновляет пару токенов по refresh-токену с ротацией.
// Повторное предъявление уже ротированного токена трактуется как кража:
// вся цепочка сессии отзывается, и легитимный клиент тоже теряет сессию.
func (s *Service) RefreshToken(ctx context.Context, refreshToken string) (*models.TokenPair, *models.User, error) {
	const op = "service.auth.RefreshToken"

	lg := log.From(ctx)

	token, err := s.validateRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, ErrTokenRevoked) && token != nil {
			s.revokeSessionChain(ctx, token.SessionID)
			return nil, nil, fmt.Errorf("%s: %w", op, ErrTokenReused)
		}

		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.storage.UserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}

		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	if !user.IsActive {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	// Ротация: только первая из конкурентных попыток отзывает старый токен,
	// проигравшая наблюдает его уже отозванным — это сигнал повторного
	// использования, по которому гасится вся цепочка.
	hash := refreshHash(refreshToken)
	revoked, err := s.storage.RevokeRefreshTokenIfActive(ctx, hash)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}

		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	if !revoked {
		lg.Warn("refresh_reuse_detected",
			slog.String("op", op),
			slog.String("user_id", token.UserID.String()),
			slog.String("session_id", token.SessionID.String()),
		)
		s.revokeSessionChain(ctx, token.SessionID)
		return nil, nil, fmt.Errorf("%s: %w", op, ErrTokenReused)
	}

	s.markRevokedInCache(ctx, hash)

	pair, err := s.issueTokenPair(ctx, user, token.SessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return pair, user, nil
}

// RevokeToken отзывает refresh-токен (logout).
// Повторный logout того же токена — не ошибка.
func (s *Service) RevokeToken(ctx context.Context, refreshToken string) error {
	const op = "service.auth.RevokeToken"

	hash := refreshHash(refreshToken)

	_, err := s.storage.RevokeRefreshTokenIfActive(ctx, hash)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	s.markRevokedInCache(ctx, hash)

	return nil
}

// ValidateToken проверяет access-токен и возвращает Identity.
func (s *Service) ValidateToken(ctx context.Context, accessToken string) (*Identity, error) {
	const op = "service.auth.ValidateToken"

	identity, err := s.validateAccessToken(accessToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return identity, nil
}

// Profile возвращает актуальный профиль пользователя из хранилища.
func (s *Service) Profile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	const op = "service.auth.Profile"

	user, err := s.storage.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// Токен ещё валиден, но учетной записи уже нет.
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// UpdateProfile обновляет имя/фамилию/email пользователя.
func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, upd ProfileUpdate) (*models.User, error) {
	const op = "service.auth.UpdateProfile"

	user, err := s.storage.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if upd.Email != nil {
		normEmail, err := validateEmail(*upd.Email)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidEmail)
		}
		user.Email = normEmail
	}

	if upd.FirstName != nil {
		user.FirstName = strings.TrimSpace(*upd.FirstName)
	}

	if upd.LastName != nil {
		user.LastName = strings.TrimSpace(*upd.LastName)
	}

	user.UpdatedAt = time.Now().UTC()

	if err := s.storage.UpdateUserProfile(ctx, user); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, fmt.Errorf("%s: %w", op, ErrEmailTaken)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// revokeSessionChain отзывает цепочку сессии; ошибка не прерывает основной поток.
func (s *Service) revokeSessionChain(ctx context.Context, sessionID uuid.UUID) {
	lg := log.From(ctx)

	n, err := s.storage.RevokeSession(ctx, sessionID)
	if err != nil {
		lg.Error("session_chain_revoke_failed",
			slog.String("session_id", sessionID.String()),
			slog.String("err", err.Error()),
		)
		return
	}

	lg.Warn("session_chain_revoked",
		slog.String("session_id", sessionID.String()),
		slog.Int64("tokens_revoked", n),
	)
}

// issueTokenPair выпускает новую пару access+refresh токенов в рамках sessionID.
func (s *Service) issueTokenPair(ctx context.Context, user *models.User, sessionID uuid.UUID) (*models.TokenPair, error) {
	const op = "service.auth.issueTokenPair"

	now := time.Now().UTC()

	accessToken, err := s.generateAccessToken(ctx, user, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	plain, err := s.generateRefreshToken(ctx, user.ID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.TokenPair{
		AccessToken:     accessToken,
		RefreshToken:    plain,
		AccessExpiresAt: now.Add(s.cfg.Auth.AccessTokenTTL),
	}, nil
}

// hashPassword хэширует пароль с помощью bcrypt.
func hashPassword(password string) (string, error) {
	const op = "service.auth.hashPassword"

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return string(bytes), nil
}

// checkPassword сравнивает пароль с хэшем.
func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// validateEmail проверяет базовый формат email и обрезает пробелы снаружи.
func validateEmail(raw string) (string, error) {
	email := strings.TrimSpace(raw)
	if email == "" {
		return "", ErrInvalidEmail
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return "", ErrInvalidEmail
	}

	return strings.ToLower(email), nil
}

// validateUsername проверяет логин: 3..50 символов, буквы/цифры/._-,
// начинается с буквы или цифры.
func validateUsername(raw string) (string, error) {
	username := strings.TrimSpace(raw)

	runes := []rune(username)
	if len(runes) < 3 || len(runes) > 50 {
		return "", ErrInvalidUsername
	}

	if !unicode.IsLetter(runes[0]) && !unicode.IsDigit(runes[0]) {
		return "", ErrInvalidUsername
	}

	for _, r := range runes {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
		case r == '.' || r == '_' || r == '-':
		default:
			return "", ErrInvalidUsername
		}
	}

	return username, nil
}

// validatePassword проверяет минимальные требования к паролю.
// Политика по умолчанию: длина >= 8, хотя бы одна строчная, заглавная, цифра и спецсимвол.
func validatePassword(pw string) error {
	if len(pw) == 0 {
		return ErrEmptyPassword
	}

	if len([]rune(pw)) < 8 {
		return ErrWeakPassword
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range pw {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if !(hasLower && hasUpper && hasDigit && hasSpecial) {
		return ErrWeakPassword
	}

	return nil
}
