// Package notfound реализует обработчик неизвестных маршрутов.
package notfound

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/inventory-console/internal/http/view"
	"github.com/magabrotheeeer/inventory-console/internal/models"
)

// SessionSource отдаёт текущую сессию оператора.
type SessionSource interface {
	Current() *models.Session
}

// Handler отдаёт страницу 404 для любого незнакомого пути.
type Handler struct {
	log      *slog.Logger
	sessions SessionSource
	views    *view.Renderer
}

// New создает новый Handler с переданными логгером, источником сессии
// и рендерером.
func New(log *slog.Logger, sessions SessionSource, views *view.Renderer) *Handler {
	return &Handler{log: log, sessions: sessions, views: views}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.notfound"
	h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	).Info("unknown route", slog.String("path", r.URL.Path))

	session := h.sessions.Current()
	h.views.Render(w, http.StatusNotFound, "notfound", view.Page{
		Session:     session,
		ShowSidebar: session != nil,
	})
}
