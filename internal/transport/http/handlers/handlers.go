package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/myndaaa/musicplayer-backend/internal/models"
	"github.com/myndaaa/musicplayer-backend/internal/service"
)

// Handlers агрегирует зависимости HTTP-слоя.
type Handlers struct {
	Service *service.Service
}

func New(s *service.Service) *Handlers {
	return &Handlers{Service: s}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через httperr.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// listOptions разбирает limit/offset/q из query-параметров.
// Некорректные значения молча заменяются нулями: нормализацию делает сервис.
func listOptions(r *http.Request) models.ListOptions {
	q := r.URL.Query()

	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	return models.ListOptions{
		Limit:  limit,
		Offset: offset,
		Query:  q.Get("q"),
	}
}
