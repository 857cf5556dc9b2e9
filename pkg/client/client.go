// Пакет client — Go-клиент API с локальным кэшем сессии.
//
// Клиент хранит пару токенов и снапшот профиля в SessionStore и сам
// занимается их жизненным циклом: подставляет access-токен в запросы,
// по 401 прозрачно ротирует refresh-токен (конкурентные запросы
// коалесцируются в одну ротацию) и повторяет исходный запрос один раз.
// Если ротация невозможна, локальное состояние очищается и вызов
// возвращает ErrSessionExpired: пользователю нужен повторный login.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Ошибки клиента.
var (
	// ErrNotLoggedIn — нет сохранённой сессии, нужен Login.
	ErrNotLoggedIn = errors.New("not logged in")
	// ErrSessionExpired — refresh-токен мёртв (истёк, отозван или
	// переиспользован), локальное состояние очищено.
	ErrSessionExpired = errors.New("session expired")
	// ErrUnexpectedStatus — сервер ответил статусом, который клиент
	// не умеет обрабатывать.
	ErrUnexpectedStatus = errors.New("unexpected status")
)

// Client — HTTP-клиент API с автоматическим управлением токенами.
// Безопасен для конкурентного использования.
type Client struct {
	base  string
	httpc *http.Client
	store SessionStore

	mu    sync.RWMutex
	state *AuthState

	// коалесцирует конкурентные ротации в одну.
	refreshGroup singleflight.Group
}

// Option настраивает Client.
type Option func(*Client)

// WithHTTPClient заменяет транспорт (таймауты, прокси, TLS).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// New создаёт клиент и поднимает сохранённую сессию из store, если есть.
func New(baseURL string, store SessionStore, opts ...Option) (*Client, error) {
	const op = "client.New"

	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%s: invalid base url %q", op, baseURL)
	}

	c := &Client{
		base:  strings.TrimRight(baseURL, "/"),
		httpc: &http.Client{Timeout: 30 * time.Second},
		store: store,
	}

	for _, opt := range opts {
		opt(c)
	}

	state, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	c.state = state

	return c, nil
}

// authPayload — ответ login/refresh.
type authPayload struct {
	ID              string    `json:"id"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	Role            string    `json:"role"`
	AccessToken     string    `json:"access_token"`
	RefreshToken    string    `json:"refresh_token"`
	AccessExpiresAt time.Time `json:"access_expires_at"`
}

// Profile — профиль текущего пользователя.
type Profile struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// IsLoggedIn сообщает, есть ли у клиента сохранённая сессия.
// Токены при этом могут быть уже просрочены: это выяснится при
// первом запросе.
func (c *Client) IsLoggedIn() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.state != nil
}

// Login аутентифицирует пользователя и сохраняет новую сессию,
// затирая предыдущую.
func (c *Client) Login(ctx context.Context, username, password string) error {
	const op = "client.Login"

	body := map[string]string{"username": username, "password": password}

	var payload authPayload
	status, err := c.postJSON(ctx, "/auth/login", "", body, &payload)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	switch status {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return fmt.Errorf("%s: invalid credentials", op)
	default:
		return fmt.Errorf("%s: %w: %d", op, ErrUnexpectedStatus, status)
	}

	if err := c.replaceState(payloadToState(&payload)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Logout отзывает refresh-токен на сервере и очищает локальную сессию.
// Отзыв best-effort: локальное состояние очищается даже при недоступном
// сервере, чтобы пользователь гарантированно разлогинился.
func (c *Client) Logout(ctx context.Context) error {
	const op = "client.Logout"

	c.mu.RLock()
	state := c.state
	c.mu.RUnlock()

	if state == nil {
		return nil
	}

	body := map[string]string{"refresh_token": state.RefreshToken}
	_, _ = c.postJSON(ctx, "/auth/logout", state.AccessToken, body, nil)

	if err := c.replaceState(nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Me возвращает профиль текущего пользователя.
func (c *Client) Me(ctx context.Context) (*Profile, error) {
	const op = "client.Me"

	var profile Profile
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &profile); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &profile, nil
}

// Do выполняет произвольный аутентифицированный запрос к API.
// path — путь относительно базового URL, in/out — JSON-тела (nil — без тела).
func (c *Client) Do(ctx context.Context, method, path string, in, out any) error {
	const op = "client.Do"

	if err := c.do(ctx, method, path, in, out); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// do — общий путь аутентифицированных запросов: подставляет access-токен,
// по 401 делает одну попытку ротации и один повтор запроса.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	c.mu.RLock()
	state := c.state
	c.mu.RUnlock()

	if state == nil {
		return ErrNotLoggedIn
	}

	status, err := c.roundTrip(ctx, method, path, state.AccessToken, in, out)
	if err != nil {
		return err
	}

	if status != http.StatusUnauthorized {
		return statusToErr(status)
	}

	// 401: access-токен мёртв. Ротируем refresh и повторяем один раз.
	token, err := c.refreshSession(ctx, state.RefreshToken)
	if err != nil {
		return err
	}

	status, err = c.roundTrip(ctx, method, path, token, in, out)
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized {
		// Повтор со свежим токеном тоже отвергнут: дальше не ретраим.
		return ErrSessionExpired
	}

	return statusToErr(status)
}

// refreshSession ротирует refresh-токен. Конкурентные вызовы
// коалесцируются: ротацию выполняет один, остальные получают её результат.
// Невосстановимый отказ ротации очищает локальное состояние.
func (c *Client) refreshSession(ctx context.Context, staleRefresh string) (string, error) {
	v, err, _ := c.refreshGroup.Do("refresh", func() (any, error) {
		c.mu.RLock()
		state := c.state
		c.mu.RUnlock()

		if state == nil {
			return nil, ErrNotLoggedIn
		}

		// Кто-то уже успел ротировать, пока мы ждали: используем результат.
		if state.RefreshToken != staleRefresh {
			return state.AccessToken, nil
		}

		body := map[string]string{"refresh_token": state.RefreshToken}

		var payload authPayload
		status, err := c.postJSON(ctx, "/auth/refresh", "", body, &payload)
		if err != nil {
			// Сетевая ошибка: состояние не трогаем, ротацию можно повторить.
			return nil, err
		}

		switch status {
		case http.StatusOK:
			if err := c.replaceState(payloadToState(&payload)); err != nil {
				return nil, err
			}

			return payload.AccessToken, nil

		case http.StatusUnauthorized:
			// Refresh мёртв: сессию уже не спасти.
			_ = c.replaceState(nil)
			return nil, ErrSessionExpired

		default:
			return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, status)
		}
	})
	if err != nil {
		return "", err
	}

	return v.(string), nil
}

// replaceState атомарно заменяет состояние в памяти и в store.
// nil очищает сессию.
func (c *Client) replaceState(state *AuthState) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if state == nil {
		c.state = nil
		return c.store.Clear()
	}

	if err := c.store.Save(state); err != nil {
		return err
	}
	c.state = state

	return nil
}

// roundTrip выполняет один HTTP-запрос с JSON-телом и разбором ответа.
func (c *Client) roundTrip(ctx context.Context, method, path, token string, in, out any) (int, error) {
	var bodyReader io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return 0, err
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, bodyReader)
	if err != nil {
		return 0, err
	}

	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if out != nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return 0, err
		}
	}

	return resp.StatusCode, nil
}

// postJSON — запрос без логики ретраев, для auth-эндпойнтов.
func (c *Client) postJSON(ctx context.Context, path, token string, in, out any) (int, error) {
	return c.roundTrip(ctx, http.MethodPost, path, token, in, out)
}

func payloadToState(p *authPayload) *AuthState {
	return &AuthState{
		AccessToken:     p.AccessToken,
		RefreshToken:    p.RefreshToken,
		AccessExpiresAt: p.AccessExpiresAt,
		UserID:          p.ID,
		Username:        p.Username,
		Email:           p.Email,
		Role:            p.Role,
	}
}

// statusToErr переводит не-2xx статусы в ошибки.
func statusToErr(status int) error {
	if status >= 200 && status < 300 {
		return nil
	}

	return fmt.Errorf("%w: %d", ErrUnexpectedStatus, status)
}
