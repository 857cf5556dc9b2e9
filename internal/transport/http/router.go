// Пакет http собирает HTTP-роутер сервиса: маршруты, цепочку мидлваров
// и правила доступа к ним.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/myndaaa/musicplayer-backend/internal/models"
	"github.com/myndaaa/musicplayer-backend/internal/service"
	"github.com/myndaaa/musicplayer-backend/internal/transport/http/handlers"
	"github.com/myndaaa/musicplayer-backend/internal/transport/http/middleware"
)

// Options — зависимости роутера.
// Registerer nil отключает метрики (удобно в тестах).
type Options struct {
	Logger     *slog.Logger
	Timeout    time.Duration
	Registerer prometheus.Registerer
}

// NewRouter настраивает полный роутер API.
//
// Порядок мидлваров важен: Recover снаружи, чтобы ловить паники всех
// нижележащих; RequestID и Logging до всего остального, чтобы каждый
// запрос был трассируем; Authenticate до Timeout, чтобы Identity была
// в контексте на момент любых проверок.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	h := handlers.New(svc)

	r := chi.NewRouter()

	r.Use(middleware.Recover())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(opts.Logger))
	if opts.Registerer != nil {
		r.Use(middleware.Metrics(opts.Registerer))
	}
	r.Use(middleware.Authenticate(svc))
	r.Use(middleware.Timeout(opts.Timeout))

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/refresh", h.Refresh)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth())
			r.Post("/logout", h.Logout)
			r.Get("/me", h.Me)
		})
	})

	r.Route("/users", func(r chi.Router) {
		r.Post("/signup", h.SignupListener)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth())
			r.Patch("/me", h.UpdateMe)
		})
	})

	r.Route("/artists", func(r chi.Router) {
		r.Post("/signup", h.SignupArtist)
		r.Get("/", h.ListArtists)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(models.RoleMusician))
			r.Get("/me", h.MyArtistProfile)
			r.Patch("/me", h.UpdateMyArtistProfile)
			r.Delete("/me", h.DisableMyArtistProfile)
		})

		r.Get("/{id}", h.GetArtist)
		r.Get("/{id}/songs", h.SongsByArtist)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(models.RoleAdmin))
			r.Put("/{id}/disabled", h.SetArtistDisabled)
		})
	})

	r.Route("/genres", func(r chi.Router) {
		r.Get("/", h.ListGenres)
		r.Get("/by-name/{name}", h.GetGenreByName)
		r.Get("/{id}", h.GetGenre)
		r.Get("/{id}/songs", h.SongsByGenre)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(models.RoleAdmin))
			r.Post("/", h.CreateGenre)
			r.Patch("/{id}", h.UpdateGenre)
			r.Put("/{id}/disabled", h.SetGenreDisabled)
		})
	})

	r.Route("/songs", func(r chi.Router) {
		r.Get("/", h.ListSongs)
		r.Get("/{id}", h.GetSong)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(models.RoleMusician, models.RoleAdmin))
			r.Post("/", h.UploadSong)
			r.Patch("/{id}", h.UpdateSong)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(models.RoleAdmin))
			r.Put("/{id}/disabled", h.SetSongDisabled)
		})
	})

	return r
}
