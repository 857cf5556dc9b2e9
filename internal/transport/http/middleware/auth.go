package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	logctx "github.com/myndaaa/musicplayer-backend/internal/pkg/log"
	"github.com/myndaaa/musicplayer-backend/internal/service"
	"github.com/myndaaa/musicplayer-backend/internal/transport/http/httperr"

	"github.com/myndaaa/musicplayer-backend/internal/models"
)

type identityCtxKey struct{}

// IdentityFrom достаёт Identity аутентифицированного пользователя из контекста.
// nil означает анонимный запрос.
func IdentityFrom(ctx context.Context) *service.Identity {
	if v := ctx.Value(identityCtxKey{}); v != nil {
		if id, ok := v.(*service.Identity); ok {
			return id
		}
	}

	return nil
}

// withIdentity кладёт Identity в контекст.
func withIdentity(ctx context.Context, id *service.Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey{}, id)
}

// bearerToken извлекает Bearer-токен из заголовка Authorization.
func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}

	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) || len(auth) <= len(prefix) {
		return ""
	}

	return strings.TrimSpace(auth[len(prefix):])
}

// Authenticate проверяет Bearer-токен, если он предъявлен, и кладёт Identity
// в контекст. Отсутствующий или невалидный токен НЕ прерывает запрос:
// публичные эндпойнты остаются доступны анонимно, а защищённые закрывает
// RequireAuth/RequireRole.
func Authenticate(svc *service.Service) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token != "" {
				identity, err := svc.ValidateToken(r.Context(), token)
				if err != nil {
					// Причина остаётся в логах, клиент увидит единый 401
					// только на защищённых маршрутах.
					logctx.From(r.Context()).Warn("access_token_rejected",
						slog.String("err", err.Error()),
					)
				} else {
					r = r.WithContext(withIdentity(r.Context(), identity))
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth закрывает маршрут для анонимных запросов единым 401.
func RequireAuth() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if IdentityFrom(r.Context()) == nil {
				httperr.WriteError(w, r, service.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireRole пропускает только перечисленные роли; анонимы получают 401,
// аутентифицированные без нужной роли — 403.
func RequireRole(roles ...models.Role) Middleware {
	allowed := make(map[models.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := IdentityFrom(r.Context())
			if identity == nil {
				httperr.WriteError(w, r, service.ErrInvalidToken)
				return
			}

			if _, ok := allowed[identity.Role]; !ok {
				httperr.WriteError(w, r, service.ErrPermissionDenied)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
