package service

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/myndaaa/musicplayer-backend/internal/cache"
	"github.com/myndaaa/musicplayer-backend/internal/models"
	"github.com/myndaaa/musicplayer-backend/internal/storage"
)

func testUser() *models.User {
	return &models.User{
		ID:       uuid.New(),
		Username: "listener01",
		Email:    "listener@example.com",
		Role:     models.RoleListener,
	}
}

func TestGenerateAccessToken_AndValidate_OK(t *testing.T) {
	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	user := testUser()
	now := time.Now().UTC()

	at, err := svc.generateAccessToken(context.Background(), user, now)
	require.NoError(t, err)

	identity, err := svc.validateAccessToken(at)
	require.NoError(t, err)
	require.Equal(t, user.ID, identity.UserID)
	require.Equal(t, user.Username, identity.Username)
	require.Equal(t, user.Email, identity.Email)
	require.Equal(t, user.Role, identity.Role)
}

func TestValidateAccessToken_WrongAlg_WrongIssuer_WrongAudience(t *testing.T) {
	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	cfg := testCfg().Auth
	secret := []byte(cfg.JWTSecret)
	uid := uuid.New()
	now := time.Now().UTC()

	baseClaims := func() jwt.MapClaims {
		return jwt.MapClaims{
			"uid":      uid.String(),
			"username": "u",
			"email":    "a@b.c",
			"role":     "listener",
			"iss":      cfg.Issuer,
			"sub":      uid.String(),
			"aud":      cfg.Audience,
			"exp":      now.Add(cfg.AccessTokenTTL).Unix(),
			"iat":      now.Unix(),
		}
	}

	t.Run("wrong alg", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS512, baseClaims())
		signed, err := token.SignedString(secret)
		require.NoError(t, err)

		_, err = svc.validateAccessToken(signed)
		require.Error(t, err)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		claims := baseClaims()
		claims["iss"] = "another-issuer"
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString(secret)
		require.NoError(t, err)

		_, err = svc.validateAccessToken(signed)
		require.Error(t, err)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong audience", func(t *testing.T) {
		claims := baseClaims()
		claims["aud"] = []string{"unexpected-aud"}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString(secret)
		require.NoError(t, err)

		_, err = svc.validateAccessToken(signed)
		require.Error(t, err)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("bad role claim", func(t *testing.T) {
		claims := baseClaims()
		claims["role"] = "superuser"
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString(secret)
		require.NoError(t, err)

		_, err = svc.validateAccessToken(signed)
		require.Error(t, err)
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestValidateAccessToken_Expired(t *testing.T) {
	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	cfg := svc.cfg
	cfg.Auth.AccessTokenTTL = -10 * time.Second
	svc.cfg = cfg

	at, err := svc.generateAccessToken(context.Background(), testUser(), time.Now().UTC())
	require.NoError(t, err)

	_, err = svc.validateAccessToken(at)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestGenerateRefreshToken_SavesHash_AndRespectsTTL(t *testing.T) {
	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	uid := uuid.New()
	sid := uuid.New()

	var saved *models.RefreshToken
	st.EXPECT().
		SaveRefreshToken(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rt *models.RefreshToken) error {
			saved = rt
			return nil
		})

	plain, err := svc.generateRefreshToken(context.Background(), uid, sid)
	require.NoError(t, err)

	sum := sha256.Sum256([]byte(plain))
	expectedHash := base64.RawURLEncoding.EncodeToString(sum[:])
	require.Equal(t, expectedHash, saved.RefreshTokenHash)

	require.WithinDuration(t, saved.CreatedAt.Add(svc.cfg.Auth.RefreshTokenTTL), saved.ExpiresAt, time.Second)

	require.Equal(t, uid, saved.UserID)
	require.Equal(t, sid, saved.SessionID)
	require.False(t, saved.Revoked)
}

func TestGenerateRefreshToken_CollisionRetries_ThenSuccess(t *testing.T) {
	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	gomock.InOrder(
		st.EXPECT().
			SaveRefreshToken(gomock.Any(), gomock.Any()).
			Return(fmtWrap(storage.ErrAlreadyExists)),
		st.EXPECT().
			SaveRefreshToken(gomock.Any(), gomock.Any()).
			Return(nil),
	)

	plain, err := svc.generateRefreshToken(context.Background(), uuid.New(), uuid.New())
	require.NoError(t, err)
	require.NotEmpty(t, plain)
}

func TestGenerateRefreshToken_CollisionExceeded_ReturnsErr(t *testing.T) {
	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	for i := 0; i < 5; i++ {
		st.EXPECT().
			SaveRefreshToken(gomock.Any(), gomock.Any()).
			Return(fmtWrap(storage.ErrAlreadyExists))
	}

	_, err := svc.generateRefreshToken(context.Background(), uuid.New(), uuid.New())
	require.Error(t, err)
	require.ErrorIs(t, err, ErrRefreshTokenCollision)
}

func TestValidateRefreshToken_Success(t *testing.T) {
	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	uid := uuid.New()
	plain := "refresh-plain-example"
	expectedHash := refreshHash(plain)

	var lookupHash string
	st.EXPECT().
		RefreshTokenByHash(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, h string) (*models.RefreshToken, error) {
			lookupHash = h
			return &models.RefreshToken{
				RefreshTokenHash: expectedHash,
				UserID:           uid,
				SessionID:        uuid.New(),
				CreatedAt:        time.Now().UTC().Add(-time.Hour),
				ExpiresAt:        time.Now().UTC().Add(time.Hour),
				Revoked:          false,
			}, nil
		})

	token, err := svc.validateRefreshToken(context.Background(), plain)
	require.NoError(t, err)
	require.Equal(t, expectedHash, lookupHash)
	require.Equal(t, uid, token.UserID)
}

func TestValidateRefreshToken_Revoked_ReturnsTokenWithError(t *testing.T) {
	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	sid := uuid.New()
	st.EXPECT().
		RefreshTokenByHash(gomock.Any(), gomock.Any()).
		Return(&models.RefreshToken{
			RefreshTokenHash: "h",
			UserID:           uuid.New(),
			SessionID:        sid,
			CreatedAt:        time.Now().UTC().Add(-time.Hour),
			ExpiresAt:        time.Now().UTC().Add(time.Hour),
			Revoked:          true,
		}, nil)

	// Вместе с ErrTokenRevoked возвращается сама запись: вызывающему
	// нужен SessionID для отзыва цепочки.
	token, err := svc.validateRefreshToken(context.Background(), "any")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrTokenRevoked)
	require.NotNil(t, token)
	require.Equal(t, sid, token.SessionID)
}

func TestValidateRefreshToken_Expired(t *testing.T) {
	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().
		RefreshTokenByHash(gomock.Any(), gomock.Any()).
		Return(&models.RefreshToken{
			RefreshTokenHash: "h",
			UserID:           uuid.New(),
			SessionID:        uuid.New(),
			CreatedAt:        time.Now().UTC().Add(-2 * time.Hour),
			ExpiresAt:        time.Now().UTC().Add(-time.Minute),
			Revoked:          false,
		}, nil)

	_, err := svc.validateRefreshToken(context.Background(), "any")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateRefreshToken_NotFound_ReturnsInvalidToken(t *testing.T) {
	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().
		RefreshTokenByHash(gomock.Any(), gomock.Any()).
		Return(nil, fmtWrap(storage.ErrNotFound))

	_, err := svc.validateRefreshToken(context.Background(), "any")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidToken)
}

// fakeRefreshCache - кэш в памяти для юнит-тестов быстрых отказов.
type fakeRefreshCache struct {
	entries map[string]*cache.RefreshEntry
}

func newFakeRefreshCache() *fakeRefreshCache {
	return &fakeRefreshCache{entries: make(map[string]*cache.RefreshEntry)}
}

func (f *fakeRefreshCache) Get(_ context.Context, hash string) (*cache.RefreshEntry, bool, error) {
	e, ok := f.entries[hash]
	return e, ok, nil
}

func (f *fakeRefreshCache) Set(_ context.Context, hash string, entry *cache.RefreshEntry, _ time.Duration) error {
	f.entries[hash] = entry
	return nil
}

func (f *fakeRefreshCache) MarkRevoked(_ context.Context, hash string) error {
	if e, ok := f.entries[hash]; ok {
		e.Revoked = true
	}
	return nil
}

func (f *fakeRefreshCache) Close() error { return nil }

func TestValidateRefreshToken_RevokedCacheHit_SkipsStorage(t *testing.T) {
	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	fc := newFakeRefreshCache()
	svc.SetRefreshCache(fc)

	sid := uuid.New()
	plain := "cached-revoked"
	hash := refreshHash(plain)

	fc.entries[hash] = &cache.RefreshEntry{
		UserID:    uuid.New(),
		SessionID: sid,
		Revoked:   true,
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}

	// Обращения к хранилищу нет: мок без EXPECT упал бы на вызове.
	token, err := svc.validateRefreshToken(context.Background(), plain)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrTokenRevoked)
	require.Equal(t, sid, token.SessionID)
}

func TestRevokeToken_MarksRevokedInCache(t *testing.T) {
	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	fc := newFakeRefreshCache()
	svc.SetRefreshCache(fc)

	plain := "to-revoke"
	hash := refreshHash(plain)
	fc.entries[hash] = &cache.RefreshEntry{
		UserID:    uuid.New(),
		SessionID: uuid.New(),
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}

	st.EXPECT().RevokeRefreshTokenIfActive(gomock.Any(), hash).Return(true, nil)

	require.NoError(t, svc.RevokeToken(context.Background(), plain))
	require.True(t, fc.entries[hash].Revoked)
}

func TestGenerateRefreshToken_StorageOtherError_IsPropagated(t *testing.T) {
	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().
		SaveRefreshToken(gomock.Any(), gomock.Any()).
		Return(errors.New("db down"))

	_, err := svc.generateRefreshToken(context.Background(), uuid.New(), uuid.New())
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrRefreshTokenCollision)
}

// fmtWrap - оборачивает ошибку из storage, имитируя fmt.Errorf("%w").
func fmtWrap(err error) error { return fmt.Errorf("wrapped: %w", err) }
