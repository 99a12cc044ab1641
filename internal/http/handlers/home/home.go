// Package home реализует HTTP-обработчик главной страницы консоли.
package home

import (
	"log/slog"
	"net/http"

	"github.com/magabrotheeeer/inventory-console/internal/http/view"
	"github.com/magabrotheeeer/inventory-console/internal/models"
)

// SessionSource отдаёт текущую сессию оператора.
type SessionSource interface {
	Current() *models.Session
}

// Handler обрабатывает запросы главной страницы.
type Handler struct {
	log      *slog.Logger
	sessions SessionSource
	views    *view.Renderer
}

// New создает новый Handler с переданными логгером, источником сессии и рендерером.
func New(log *slog.Logger, sessions SessionSource, views *view.Renderer) *Handler {
	return &Handler{log: log, sessions: sessions, views: views}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, http.StatusOK, "home", view.Page{
		Session: h.sessions.Current(),
	})
}
