// Package logout реализует HTTP-обработчик выхода из консоли.
package logout

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
)

// SessionStore описывает интерфейс хранилища сессии для выхода.
type SessionStore interface {
	Logout(ctx context.Context)
}

// Handler обрабатывает выход оператора.
type Handler struct {
	log      *slog.Logger
	sessions SessionStore
}

// New создает новый Handler с переданными логгером и хранилищем сессии.
func New(log *slog.Logger, sessions SessionStore) *Handler {
	return &Handler{log: log, sessions: sessions}
}

// ServeHTTP очищает сессию и возвращает оператора на главную.
// Выход не ошибается: после него консоль всегда неаутентифицирована.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.logout"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	h.sessions.Logout(r.Context())
	log.Info("operator logged out")

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
