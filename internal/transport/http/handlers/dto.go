package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/myndaaa/musicplayer-backend/internal/models"
)

// DTO-слой HTTP API. Времена сериализуются в RFC 3339 (UTC),
// идентификаторы — строковые UUID.

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type signupRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type artistSignupRequest struct {
	signupRequest
	StageName    string `json:"stage_name"`
	Bio          string `json:"bio"`
	ProfileImage string `json:"profile_image"`
}

type updateProfileRequest struct {
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// authResponse — ответ login/refresh: пара токенов + снапшот профиля,
// который клиент кэширует локально.
type authResponse struct {
	userResponse
	AccessToken     string    `json:"access_token"`
	RefreshToken    string    `json:"refresh_token"`
	AccessExpiresAt time.Time `json:"access_expires_at"`
}

type artistResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	StageName    string    `json:"stage_name"`
	Bio          string    `json:"bio,omitempty"`
	ProfileImage string    `json:"profile_image,omitempty"`
	IsDisabled   bool      `json:"is_disabled"`
	CreatedAt    time.Time `json:"created_at"`
}

type artistSignupResponse struct {
	User   userResponse   `json:"user"`
	Artist artistResponse `json:"artist"`
}

type updateArtistRequest struct {
	StageName    *string `json:"stage_name"`
	Bio          *string `json:"bio"`
	ProfileImage *string `json:"profile_image"`
}

type genreResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	IsDisabled  bool      `json:"is_disabled"`
	CreatedAt   time.Time `json:"created_at"`
}

type createGenreRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type updateGenreRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type songResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	GenreID     string    `json:"genre_id"`
	ArtistID    string    `json:"artist_id"`
	DurationSec int       `json:"duration_sec"`
	FilePath    string    `json:"file_path"`
	CoverImage  string    `json:"cover_image,omitempty"`
	ReleaseDate time.Time `json:"release_date"`
	IsDisabled  bool      `json:"is_disabled"`
	CreatedAt   time.Time `json:"created_at"`
}

type uploadSongRequest struct {
	Title       string     `json:"title"`
	GenreID     uuid.UUID  `json:"genre_id"`
	ArtistID    *uuid.UUID `json:"artist_id"` // обязателен только для администратора
	DurationSec int        `json:"duration_sec"`
	FilePath    string     `json:"file_path"`
	CoverImage  string     `json:"cover_image"`
	ReleaseDate *time.Time `json:"release_date"`
}

type updateSongRequest struct {
	Title       *string    `json:"title"`
	GenreID     *uuid.UUID `json:"genre_id"`
	CoverImage  *string    `json:"cover_image"`
	ReleaseDate *time.Time `json:"release_date"`
}

func userToResponse(u *models.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		Role:      string(u.Role),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

func authToResponse(pair *models.TokenPair, u *models.User) authResponse {
	return authResponse{
		userResponse:    userToResponse(u),
		AccessToken:     pair.AccessToken,
		RefreshToken:    pair.RefreshToken,
		AccessExpiresAt: pair.AccessExpiresAt,
	}
}

func artistToResponse(a *models.Artist) artistResponse {
	return artistResponse{
		ID:           a.ID.String(),
		UserID:       a.UserID.String(),
		StageName:    a.StageName,
		Bio:          a.Bio,
		ProfileImage: a.ProfileImage,
		IsDisabled:   a.IsDisabled,
		CreatedAt:    a.CreatedAt,
	}
}

func artistsToResponse(list []models.Artist) []artistResponse {
	out := make([]artistResponse, 0, len(list))
	for i := range list {
		out = append(out, artistToResponse(&list[i]))
	}
	return out
}

func genreToResponse(g *models.Genre) genreResponse {
	return genreResponse{
		ID:          g.ID.String(),
		Name:        g.Name,
		Description: g.Description,
		IsDisabled:  g.IsDisabled,
		CreatedAt:   g.CreatedAt,
	}
}

func genresToResponse(list []models.Genre) []genreResponse {
	out := make([]genreResponse, 0, len(list))
	for i := range list {
		out = append(out, genreToResponse(&list[i]))
	}
	return out
}

func songToResponse(s *models.Song) songResponse {
	return songResponse{
		ID:          s.ID.String(),
		Title:       s.Title,
		GenreID:     s.GenreID.String(),
		ArtistID:    s.ArtistID.String(),
		DurationSec: s.DurationSec,
		FilePath:    s.FilePath,
		CoverImage:  s.CoverImage,
		ReleaseDate: s.ReleaseDate,
		IsDisabled:  s.IsDisabled,
		CreatedAt:   s.CreatedAt,
	}
}

func songsToResponse(list []models.Song) []songResponse {
	out := make([]songResponse, 0, len(list))
	for i := range list {
		out = append(out, songToResponse(&list[i]))
	}
	return out
}
