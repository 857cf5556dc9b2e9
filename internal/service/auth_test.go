package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/myndaaa/musicplayer-backend/internal/config"
	"github.com/myndaaa/musicplayer-backend/internal/models"
	"github.com/myndaaa/musicplayer-backend/internal/storage"
	"github.com/myndaaa/musicplayer-backend/mocks"
)

func testCfg() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       "unit-secret",
			AccessTokenTTL:  30 * time.Second,
			RefreshTokenTTL: 24 * time.Hour,
			Issuer:          "musicplayer-backend",
			Audience:        []string{"musicplayer-app"},
		},
		Limits: config.LimitsConfig{
			Default: 20,
			Max:     100,
		},
	}
}

func newSvc(t *testing.T) (*Service, *mocks.MockStorage, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStorage(ctrl)
	svc := New(st, testCfg())
	return svc, st, ctrl
}

func mustHashPW(t *testing.T, pw string) string {
	t.Helper()
	h, err := hashPassword(pw)
	require.NoError(t, err)
	return h
}

func signupParams() SignupParams {
	return SignupParams{
		Username:  "listener01",
		Email:     "Listener@Example.com",
		Password:  "Abcdef1!",
		FirstName: "Anna",
		LastName:  "Kern",
	}
}

func TestRegisterListener_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().UserByUsername(gomock.Any(), "listener01").Return(nil, storage.ErrNotFound)

	var saved *models.User
	st.EXPECT().SaveUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			saved = u
			return nil
		})

	user, err := svc.RegisterListener(context.Background(), signupParams())
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, user.ID)
	require.Equal(t, models.RoleListener, user.Role)
	require.Equal(t, "listener@example.com", user.Email) // email нормализуется
	require.True(t, user.IsActive)

	// В хранилище уходит bcrypt-хэш, не исходный пароль.
	require.NotEqual(t, "Abcdef1!", saved.PasswordHash)
	require.True(t, checkPassword(saved.PasswordHash, "Abcdef1!"))
}

func TestRegisterListener_ValidationErrors(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	p := signupParams()
	p.Username = "x"
	_, err := svc.RegisterListener(context.Background(), p)
	require.ErrorIs(t, err, ErrInvalidUsername)

	p = signupParams()
	p.Email = "not-an-email"
	_, err = svc.RegisterListener(context.Background(), p)
	require.ErrorIs(t, err, ErrInvalidEmail)

	p = signupParams()
	p.Password = ""
	_, err = svc.RegisterListener(context.Background(), p)
	require.ErrorIs(t, err, ErrEmptyPassword)

	p = signupParams()
	p.Password = "abcdefgh" // нет верхнего регистра, цифр, спецсимволов
	_, err = svc.RegisterListener(context.Background(), p)
	require.ErrorIs(t, err, ErrWeakPassword)
}

func TestRegisterListener_UsernameTaken_OnLookup(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().UserByUsername(gomock.Any(), "listener01").
		Return(&models.User{ID: uuid.New(), Username: "listener01"}, nil)

	_, err := svc.RegisterListener(context.Background(), signupParams())
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegisterListener_SaveAlreadyExists_MapsToEmailTaken(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().UserByUsername(gomock.Any(), "listener01").Return(nil, storage.ErrNotFound)
	st.EXPECT().SaveUser(gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyExists)

	_, err := svc.RegisterListener(context.Background(), signupParams())
	require.Error(t, err)
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterArtist_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().UserByUsername(gomock.Any(), "listener01").Return(nil, storage.ErrNotFound)
	st.EXPECT().SaveUser(gomock.Any(), gomock.Any()).Return(nil)
	st.EXPECT().SaveArtist(gomock.Any(), gomock.Any()).Return(nil)

	user, artist, err := svc.RegisterArtist(context.Background(), ArtistSignupParams{
		SignupParams: signupParams(),
		StageName:    "DJ Anna",
		Bio:          "bio",
	})
	require.NoError(t, err)
	require.Equal(t, models.RoleMusician, user.Role)
	require.Equal(t, user.ID, artist.UserID)
	require.Equal(t, "DJ Anna", artist.StageName)
}

func TestRegisterArtist_StageNameTaken_CompensatesUser(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	var createdID uuid.UUID
	st.EXPECT().UserByUsername(gomock.Any(), "listener01").Return(nil, storage.ErrNotFound)
	st.EXPECT().SaveUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			createdID = u.ID
			return nil
		})
	st.EXPECT().SaveArtist(gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyExists)

	// Учетная запись компенсируется мягким удалением.
	st.EXPECT().SoftDeleteUser(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID, _ time.Time) error {
			require.Equal(t, createdID, id)
			return nil
		})

	_, _, err := svc.RegisterArtist(context.Background(), ArtistSignupParams{
		SignupParams: signupParams(),
		StageName:    "DJ Anna",
	})
	require.Error(t, err)
	require.ErrorIs(t, err, ErrStageNameTaken)
}

func TestRegisterArtist_EmptyStageName(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	_, _, err := svc.RegisterArtist(context.Background(), ArtistSignupParams{
		SignupParams: signupParams(),
		StageName:    "   ",
	})
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestLoginUser_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	pw := "Abcdef1!"
	user := &models.User{
		ID:           uuid.New(),
		Username:     "listener01",
		Email:        "listener@example.com",
		PasswordHash: mustHashPW(t, pw),
		Role:         models.RoleListener,
		IsActive:     true,
	}

	st.EXPECT().UserByUsername(gomock.Any(), "listener01").Return(user, nil)
	st.EXPECT().SaveRefreshToken(gomock.Any(), gomock.Any()).Return(nil)

	tp, got, err := svc.LoginUser(context.Background(), "listener01", pw)
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)
	require.NotEmpty(t, tp.AccessToken)
	require.NotEmpty(t, tp.RefreshToken)
	require.WithinDuration(t, time.Now().Add(svc.cfg.Auth.AccessTokenTTL), tp.AccessExpiresAt, 2*time.Second)
}

func TestLoginUser_NoOracle(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	// Пользователь не найден, пароль неверен и отключённая учетная запись
	// наружу неразличимы: всегда ErrInvalidCredentials.
	st.EXPECT().UserByUsername(gomock.Any(), "ghost").Return(nil, storage.ErrNotFound)
	_, _, err := svc.LoginUser(context.Background(), "ghost", "Abcdef1!")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	user := &models.User{
		ID:           uuid.New(),
		Username:     "listener01",
		PasswordHash: mustHashPW(t, "Abcdef1!"),
		IsActive:     true,
	}
	st.EXPECT().UserByUsername(gomock.Any(), "listener01").Return(user, nil)
	_, _, err = svc.LoginUser(context.Background(), "listener01", "WRONG1!a")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	inactive := &models.User{
		ID:           uuid.New(),
		Username:     "sleeper",
		PasswordHash: mustHashPW(t, "Abcdef1!"),
		IsActive:     false,
	}
	st.EXPECT().UserByUsername(gomock.Any(), "sleeper").Return(inactive, nil)
	_, _, err = svc.LoginUser(context.Background(), "sleeper", "Abcdef1!")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUser_EmptyInput(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	_, _, err := svc.LoginUser(context.Background(), "", "Abcdef1!")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.LoginUser(context.Background(), "listener01", "")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshToken_OK_WithRotation(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	userID := uuid.New()
	sessionID := uuid.New()
	user := &models.User{ID: userID, Username: "u", Role: models.RoleListener, IsActive: true}

	plain := "some-refresh-plain"
	hash := refreshHash(plain)

	st.EXPECT().RefreshTokenByHash(gomock.Any(), hash).Return(&models.RefreshToken{
		RefreshTokenHash: hash,
		UserID:           userID,
		SessionID:        sessionID,
		CreatedAt:        time.Now().Add(-time.Hour),
		ExpiresAt:        time.Now().Add(time.Hour),
		Revoked:          false,
	}, nil)
	st.EXPECT().UserByID(gomock.Any(), userID).Return(user, nil)
	st.EXPECT().RevokeRefreshTokenIfActive(gomock.Any(), hash).Return(true, nil)

	// Новый токен выпускается в той же цепочке сессии.
	var saved *models.RefreshToken
	st.EXPECT().SaveRefreshToken(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rt *models.RefreshToken) error {
			saved = rt
			return nil
		})

	tp, got, err := svc.RefreshToken(context.Background(), plain)
	require.NoError(t, err)
	require.Equal(t, userID, got.ID)
	require.NotEmpty(t, tp.AccessToken)
	require.NotEqual(t, plain, tp.RefreshToken)
	require.Equal(t, sessionID, saved.SessionID)
}

func TestRefreshToken_Reuse_RevokesSessionChain(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	sessionID := uuid.New()
	plain := "stolen-refresh"
	hash := refreshHash(plain)

	// Токен уже ротирован (revoked): повторное предъявление гасит цепочку.
	st.EXPECT().RefreshTokenByHash(gomock.Any(), hash).Return(&models.RefreshToken{
		RefreshTokenHash: hash,
		UserID:           uuid.New(),
		SessionID:        sessionID,
		CreatedAt:        time.Now().Add(-time.Hour),
		ExpiresAt:        time.Now().Add(time.Hour),
		Revoked:          true,
	}, nil)
	st.EXPECT().RevokeSession(gomock.Any(), sessionID).Return(int64(2), nil)

	_, _, err := svc.RefreshToken(context.Background(), plain)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrTokenReused)
}

func TestRefreshToken_LostRace_TreatedAsReuse(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	userID := uuid.New()
	sessionID := uuid.New()
	plain := "raced-refresh"
	hash := refreshHash(plain)

	// Валидация видит активный токен, но атомарную ротацию уже выиграл
	// конкурентный запрос: (false, nil) - сигнал переиспользования.
	st.EXPECT().RefreshTokenByHash(gomock.Any(), hash).Return(&models.RefreshToken{
		RefreshTokenHash: hash,
		UserID:           userID,
		SessionID:        sessionID,
		CreatedAt:        time.Now().Add(-time.Hour),
		ExpiresAt:        time.Now().Add(time.Hour),
		Revoked:          false,
	}, nil)
	st.EXPECT().UserByID(gomock.Any(), userID).
		Return(&models.User{ID: userID, IsActive: true}, nil)
	st.EXPECT().RevokeRefreshTokenIfActive(gomock.Any(), hash).Return(false, nil)
	st.EXPECT().RevokeSession(gomock.Any(), sessionID).Return(int64(3), nil)

	_, _, err := svc.RefreshToken(context.Background(), plain)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrTokenReused)
}

func TestRefreshToken_ConcurrentRotation_OneWinner(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	userID := uuid.New()
	sessionID := uuid.New()
	user := &models.User{ID: userID, IsActive: true}

	plain := "contended-refresh"
	hash := refreshHash(plain)

	active := &models.RefreshToken{
		RefreshTokenHash: hash,
		UserID:           userID,
		SessionID:        sessionID,
		CreatedAt:        time.Now().Add(-time.Hour),
		ExpiresAt:        time.Now().Add(time.Hour),
	}

	st.EXPECT().RefreshTokenByHash(gomock.Any(), hash).Return(active, nil).Times(2)
	st.EXPECT().UserByID(gomock.Any(), userID).Return(user, nil).Times(2)

	// Атомарность ротации моделируем на стороне мока: первый вызов
	// выигрывает, второй наблюдает уже отозванный токен.
	var mu sync.Mutex
	revoked := false
	st.EXPECT().RevokeRefreshTokenIfActive(gomock.Any(), hash).
		DoAndReturn(func(_ context.Context, _ string) (bool, error) {
			mu.Lock()
			defer mu.Unlock()
			if revoked {
				return false, nil
			}
			revoked = true
			return true, nil
		}).Times(2)

	st.EXPECT().SaveRefreshToken(gomock.Any(), gomock.Any()).Return(nil)
	st.EXPECT().RevokeSession(gomock.Any(), sessionID).Return(int64(1), nil)

	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, _, err := svc.RefreshToken(context.Background(), plain)
			errs <- err
		}()
	}

	var okCount, reusedCount int
	for i := 0; i < 2; i++ {
		err := <-errs
		switch {
		case err == nil:
			okCount++
		case errors.Is(err, ErrTokenReused):
			reusedCount++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	require.Equal(t, 1, okCount)
	require.Equal(t, 1, reusedCount)
}

func TestRefreshToken_NotFound_Expired_InactiveUser(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	plain := "r"
	hash := refreshHash(plain)

	// Not found -> ErrInvalidToken.
	st.EXPECT().RefreshTokenByHash(gomock.Any(), hash).Return(nil, storage.ErrNotFound)
	_, _, err := svc.RefreshToken(context.Background(), plain)
	require.ErrorIs(t, err, ErrInvalidToken)

	// Expired.
	st.EXPECT().RefreshTokenByHash(gomock.Any(), hash).Return(&models.RefreshToken{
		RefreshTokenHash: hash, UserID: uuid.New(), SessionID: uuid.New(),
		CreatedAt: time.Now().Add(-2 * time.Hour), ExpiresAt: time.Now().Add(-time.Minute),
	}, nil)
	_, _, err = svc.RefreshToken(context.Background(), plain)
	require.ErrorIs(t, err, ErrTokenExpired)

	// Учетная запись деактивирована после выпуска токена.
	userID := uuid.New()
	st.EXPECT().RefreshTokenByHash(gomock.Any(), hash).Return(&models.RefreshToken{
		RefreshTokenHash: hash, UserID: userID, SessionID: uuid.New(),
		CreatedAt: time.Now().Add(-time.Hour), ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
	st.EXPECT().UserByID(gomock.Any(), userID).
		Return(&models.User{ID: userID, IsActive: false}, nil)
	_, _, err = svc.RefreshToken(context.Background(), plain)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestRevokeToken_IdempotentLogout(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	plain := "r"
	hash := refreshHash(plain)

	// Активный токен отзывается.
	st.EXPECT().RevokeRefreshTokenIfActive(gomock.Any(), hash).Return(true, nil)
	require.NoError(t, svc.RevokeToken(context.Background(), plain))

	// Повторный logout того же токена - тоже успех.
	st.EXPECT().RevokeRefreshTokenIfActive(gomock.Any(), hash).Return(false, nil)
	require.NoError(t, svc.RevokeToken(context.Background(), plain))

	// Неизвестный токен -> ErrInvalidToken.
	st.EXPECT().RevokeRefreshTokenIfActive(gomock.Any(), hash).Return(false, storage.ErrNotFound)
	err := svc.RevokeToken(context.Background(), plain)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogoutThenRefresh_ChainRevoked(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	sessionID := uuid.New()
	plain := "logged-out"
	hash := refreshHash(plain)

	st.EXPECT().RevokeRefreshTokenIfActive(gomock.Any(), hash).Return(true, nil)
	require.NoError(t, svc.RevokeToken(context.Background(), plain))

	// Попытка refresh после logout видит отозванный токен.
	st.EXPECT().RefreshTokenByHash(gomock.Any(), hash).Return(&models.RefreshToken{
		RefreshTokenHash: hash, UserID: uuid.New(), SessionID: sessionID,
		CreatedAt: time.Now().Add(-time.Hour), ExpiresAt: time.Now().Add(time.Hour),
		Revoked: true,
	}, nil)
	st.EXPECT().RevokeSession(gomock.Any(), sessionID).Return(int64(0), nil)

	_, _, err := svc.RefreshToken(context.Background(), plain)
	require.ErrorIs(t, err, ErrTokenReused)
}

func TestValidateToken_RoundTrip(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	user := &models.User{
		ID:       uuid.New(),
		Username: "listener01",
		Email:    "listener@example.com",
		Role:     models.RoleMusician,
	}

	at, err := svc.generateAccessToken(context.Background(), user, time.Now().UTC())
	require.NoError(t, err)

	identity, err := svc.ValidateToken(context.Background(), at)
	require.NoError(t, err)
	require.Equal(t, user.ID, identity.UserID)
	require.Equal(t, user.Username, identity.Username)
	require.Equal(t, user.Email, identity.Email)
	require.Equal(t, models.RoleMusician, identity.Role)
}

func TestProfile_NotFound_MapsToInvalidToken(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	userID := uuid.New()
	st.EXPECT().UserByID(gomock.Any(), userID).Return(nil, storage.ErrNotFound)

	_, err := svc.Profile(context.Background(), userID)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestUpdateProfile_OK_AndEmailConflict(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	userID := uuid.New()
	user := &models.User{ID: userID, Username: "u", Email: "old@example.com", IsActive: true}

	newEmail := "New@Example.com"
	first := "Pyotr"

	st.EXPECT().UserByID(gomock.Any(), userID).Return(user, nil)
	st.EXPECT().UpdateUserProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			require.Equal(t, "new@example.com", u.Email)
			require.Equal(t, "Pyotr", u.FirstName)
			return nil
		})

	got, err := svc.UpdateProfile(context.Background(), userID, ProfileUpdate{
		Email:     &newEmail,
		FirstName: &first,
	})
	require.NoError(t, err)
	require.Equal(t, "new@example.com", got.Email)

	// Конфликт уникальности email.
	st.EXPECT().UserByID(gomock.Any(), userID).Return(user, nil)
	st.EXPECT().UpdateUserProfile(gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyExists)

	_, err = svc.UpdateProfile(context.Background(), userID, ProfileUpdate{Email: &newEmail})
	require.ErrorIs(t, err, ErrEmailTaken)
}
