// Package productlist реализует HTTP-обработчик страницы каталога.
//
// Поиск — фильтрация уже загруженной коллекции по подстроке названия
// или артикула без учёта регистра, не запрос к серверу. Действия
// изменения видны только роли admin, это решают capability-функции
// guard прямо в шаблоне.
package productlist

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/inventory-console/internal/http/view"
	"github.com/magabrotheeeer/inventory-console/internal/lib/sl"
	"github.com/magabrotheeeer/inventory-console/internal/models"
	"github.com/magabrotheeeer/inventory-console/internal/services/catalog"
)

// Service описывает интерфейс сервиса каталога для страницы списка.
type Service interface {
	List(ctx context.Context) ([]models.Product, error)
}

// SessionSource отдаёт текущую сессию оператора.
type SessionSource interface {
	Current() *models.Session
}

// Handler обрабатывает запросы страницы каталога.
type Handler struct {
	log      *slog.Logger
	service  Service
	sessions SessionSource
	views    *view.Renderer
}

// New создает новый Handler с переданными логгером, сервисом каталога,
// источником сессии и рендерером.
func New(log *slog.Logger, service Service, sessions SessionSource, views *view.Renderer) *Handler {
	return &Handler{log: log, service: service, sessions: sessions, views: views}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.productlist"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	session := h.sessions.Current()
	query := r.URL.Query().Get("q")

	products, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to load products", sl.Err(err))
		h.views.Render(w, http.StatusBadGateway, "products", view.Page{
			Session:     session,
			ShowSidebar: session != nil,
			Error:       "Failed to load products.",
			Data:        view.ProductsData{Query: query},
		})
		return
	}

	log.Info("products loaded", slog.Int("count", len(products)))
	h.views.Render(w, http.StatusOK, "products", view.Page{
		Session:     session,
		ShowSidebar: session != nil,
		Data: view.ProductsData{
			Products: catalog.Filter(products, query),
			Query:    query,
		},
	})
}
