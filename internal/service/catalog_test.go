package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/myndaaa/musicplayer-backend/internal/models"
	"github.com/myndaaa/musicplayer-backend/internal/storage"
)

func adminIdentity() *Identity {
	return &Identity{UserID: uuid.New(), Username: "admin", Role: models.RoleAdmin}
}

func musicianIdentity() *Identity {
	return &Identity{UserID: uuid.New(), Username: "dj", Role: models.RoleMusician}
}

func listenerIdentity() *Identity {
	return &Identity{UserID: uuid.New(), Username: "fan", Role: models.RoleListener}
}

func TestCreateGenre_AdminOnly(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	_, err := svc.CreateGenre(context.Background(), listenerIdentity(), "Jazz", "")
	require.ErrorIs(t, err, ErrPermissionDenied)

	_, err = svc.CreateGenre(context.Background(), musicianIdentity(), "Jazz", "")
	require.ErrorIs(t, err, ErrPermissionDenied)

	st.EXPECT().SaveGenre(gomock.Any(), gomock.Any()).Return(nil)
	genre, err := svc.CreateGenre(context.Background(), adminIdentity(), "  Jazz  ", "smooth")
	require.NoError(t, err)
	require.Equal(t, "Jazz", genre.Name) // имя обрезается
}

func TestCreateGenre_NameConflict(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().SaveGenre(gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyExists)

	_, err := svc.CreateGenre(context.Background(), adminIdentity(), "Jazz", "")
	require.ErrorIs(t, err, ErrGenreNameTaken)
}

func TestGenreByID_DisabledHiddenFromNonAdmin(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	id := uuid.New()
	disabled := &models.Genre{ID: id, Name: "Vaporwave", IsDisabled: true}

	// Анониму и слушателю отключённый жанр неотличим от несуществующего.
	st.EXPECT().GenreByID(gomock.Any(), id).Return(disabled, nil)
	_, err := svc.GenreByID(context.Background(), nil, id)
	require.ErrorIs(t, err, ErrNotFound)

	st.EXPECT().GenreByID(gomock.Any(), id).Return(disabled, nil)
	_, err = svc.GenreByID(context.Background(), listenerIdentity(), id)
	require.ErrorIs(t, err, ErrNotFound)

	// Администратор видит.
	st.EXPECT().GenreByID(gomock.Any(), id).Return(disabled, nil)
	got, err := svc.GenreByID(context.Background(), adminIdentity(), id)
	require.NoError(t, err)
	require.True(t, got.IsDisabled)
}

func TestListGenres_IncludeDisabledRequiresAdmin(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	_, err := svc.ListGenres(context.Background(), nil, true)
	require.ErrorIs(t, err, ErrPermissionDenied)

	_, err = svc.ListGenres(context.Background(), listenerIdentity(), true)
	require.ErrorIs(t, err, ErrPermissionDenied)

	st.EXPECT().ListGenres(gomock.Any(), true).Return([]models.Genre{{Name: "Jazz"}}, nil)
	genres, err := svc.ListGenres(context.Background(), adminIdentity(), true)
	require.NoError(t, err)
	require.Len(t, genres, 1)
}

func TestUpdateGenre_EmptyUpdateRejected(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	_, err := svc.UpdateGenre(context.Background(), adminIdentity(), uuid.New(), models.GenreUpdate{})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestListArtists_NormalizesLimits(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	// limit<=0 -> Default, limit>Max -> Max, offset<0 -> 0.
	st.EXPECT().ListArtists(gomock.Any(), models.ListOptions{Limit: 20, Offset: 0}).
		Return([]models.Artist{}, nil)
	_, err := svc.ListArtists(context.Background(), models.ListOptions{Limit: 0, Offset: -5})
	require.NoError(t, err)

	st.EXPECT().ListArtists(gomock.Any(), models.ListOptions{Limit: 100, Offset: 40}).
		Return([]models.Artist{}, nil)
	_, err = svc.ListArtists(context.Background(), models.ListOptions{Limit: 1000, Offset: 40})
	require.NoError(t, err)
}

func TestOwnArtistProfile_RequiresMusician(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	_, err := svc.OwnArtistProfile(context.Background(), listenerIdentity())
	require.ErrorIs(t, err, ErrPermissionDenied)

	musician := musicianIdentity()
	st.EXPECT().ArtistByUserID(gomock.Any(), musician.UserID).
		Return(&models.Artist{ID: uuid.New(), UserID: musician.UserID, StageName: "DJ"}, nil)

	artist, err := svc.OwnArtistProfile(context.Background(), musician)
	require.NoError(t, err)
	require.Equal(t, musician.UserID, artist.UserID)
}

func TestUploadSong_MusicianUsesOwnProfile(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	musician := musicianIdentity()
	artistID := uuid.New()
	genreID := uuid.New()

	st.EXPECT().ArtistByUserID(gomock.Any(), musician.UserID).
		Return(&models.Artist{ID: artistID, UserID: musician.UserID}, nil)
	st.EXPECT().GenreByID(gomock.Any(), genreID).
		Return(&models.Genre{ID: genreID, Name: "Jazz"}, nil)

	var saved *models.Song
	st.EXPECT().SaveSong(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, song *models.Song) error {
			saved = song
			return nil
		})

	song, err := svc.UploadSong(context.Background(), musician, UploadSongParams{
		Title: "Night Drive",
		// ArtistID намеренно чужой: для musician он игнорируется.
		ArtistID:    uuid.New(),
		GenreID:     genreID,
		DurationSec: 185,
		FilePath:    "s3://bucket/night-drive.mp3",
	})
	require.NoError(t, err)
	require.Equal(t, artistID, song.ArtistID)
	require.Equal(t, musician.UserID, saved.UploadedBy)
	require.False(t, saved.ReleaseDate.IsZero())
}

func TestUploadSong_DisabledProfileOrListener_Denied(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	params := UploadSongParams{
		Title: "x", GenreID: uuid.New(), DurationSec: 10, FilePath: "f",
	}

	_, err := svc.UploadSong(context.Background(), listenerIdentity(), params)
	require.ErrorIs(t, err, ErrPermissionDenied)

	musician := musicianIdentity()
	st.EXPECT().ArtistByUserID(gomock.Any(), musician.UserID).
		Return(&models.Artist{ID: uuid.New(), UserID: musician.UserID, IsDisabled: true}, nil)

	_, err = svc.UploadSong(context.Background(), musician, params)
	require.ErrorIs(t, err, ErrPermissionDenied)
}

func TestUploadSong_ValidationErrors(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	musician := musicianIdentity()
	artist := &models.Artist{ID: uuid.New(), UserID: musician.UserID}
	genreID := uuid.New()

	// Пустое название.
	st.EXPECT().ArtistByUserID(gomock.Any(), musician.UserID).Return(artist, nil)
	_, err := svc.UploadSong(context.Background(), musician, UploadSongParams{
		Title: "   ", GenreID: genreID, DurationSec: 10, FilePath: "f",
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	// Нулевая длительность.
	st.EXPECT().ArtistByUserID(gomock.Any(), musician.UserID).Return(artist, nil)
	_, err = svc.UploadSong(context.Background(), musician, UploadSongParams{
		Title: "t", GenreID: genreID, DurationSec: 0, FilePath: "f",
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	// Отключённый жанр.
	st.EXPECT().ArtistByUserID(gomock.Any(), musician.UserID).Return(artist, nil)
	st.EXPECT().GenreByID(gomock.Any(), genreID).
		Return(&models.Genre{ID: genreID, IsDisabled: true}, nil)
	_, err = svc.UploadSong(context.Background(), musician, UploadSongParams{
		Title: "t", GenreID: genreID, DurationSec: 10, FilePath: "f",
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateSongMetadata_OwnerOrAdmin(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	songID := uuid.New()
	artistID := uuid.New()
	song := &models.Song{ID: songID, ArtistID: artistID, Title: "Old"}

	newTitle := "New"

	// Администратор меняет любой трек.
	st.EXPECT().SongByID(gomock.Any(), songID).Return(song, nil)
	st.EXPECT().UpdateSong(gomock.Any(), songID, gomock.Any(), gomock.Any()).
		Return(&models.Song{ID: songID, ArtistID: artistID, Title: newTitle}, nil)

	updated, err := svc.UpdateSongMetadata(context.Background(), adminIdentity(), songID, models.SongUpdate{Title: &newTitle})
	require.NoError(t, err)
	require.Equal(t, newTitle, updated.Title)

	// Musician-владелец.
	owner := musicianIdentity()
	st.EXPECT().SongByID(gomock.Any(), songID).Return(song, nil)
	st.EXPECT().ArtistByUserID(gomock.Any(), owner.UserID).
		Return(&models.Artist{ID: artistID, UserID: owner.UserID}, nil)
	st.EXPECT().UpdateSong(gomock.Any(), songID, gomock.Any(), gomock.Any()).
		Return(&models.Song{ID: songID, ArtistID: artistID, Title: newTitle}, nil)

	_, err = svc.UpdateSongMetadata(context.Background(), owner, songID, models.SongUpdate{Title: &newTitle})
	require.NoError(t, err)

	// Чужой musician.
	stranger := musicianIdentity()
	st.EXPECT().SongByID(gomock.Any(), songID).Return(song, nil)
	st.EXPECT().ArtistByUserID(gomock.Any(), stranger.UserID).
		Return(&models.Artist{ID: uuid.New(), UserID: stranger.UserID}, nil)

	_, err = svc.UpdateSongMetadata(context.Background(), stranger, songID, models.SongUpdate{Title: &newTitle})
	require.ErrorIs(t, err, ErrPermissionDenied)
}

func TestSetSongDisabled_AdminOnly(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	id := uuid.New()

	err := svc.SetSongDisabled(context.Background(), musicianIdentity(), id, true)
	require.ErrorIs(t, err, ErrPermissionDenied)

	st.EXPECT().SetSongDisabled(gomock.Any(), id, true, gomock.Any()).Return(nil)
	require.NoError(t, svc.SetSongDisabled(context.Background(), adminIdentity(), id, true))

	st.EXPECT().SetSongDisabled(gomock.Any(), id, false, gomock.Any()).Return(storage.ErrNotFound)
	err = svc.SetSongDisabled(context.Background(), adminIdentity(), id, false)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDisableOwnArtistProfile(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	musician := musicianIdentity()
	artistID := uuid.New()

	st.EXPECT().ArtistByUserID(gomock.Any(), musician.UserID).
		Return(&models.Artist{ID: artistID, UserID: musician.UserID}, nil)
	st.EXPECT().SetArtistDisabled(gomock.Any(), artistID, true, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ bool, now time.Time) error {
			require.WithinDuration(t, time.Now().UTC(), now, 2*time.Second)
			return nil
		})

	require.NoError(t, svc.DisableOwnArtistProfile(context.Background(), musician))
}
