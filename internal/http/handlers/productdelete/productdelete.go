// Package productdelete реализует HTTP-обработчик удаления товара.
//
// Подтверждение намерения — забота страницы каталога (confirm перед
// отправкой формы), обработчик просто выполняет удаление. После успеха
// отображаемая коллекция перефильтровывается по id вместо повторной
// загрузки с сервера: гонка параллельного удаления и обновления списка
// решается локально.
package productdelete

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/inventory-console/internal/backend"
	"github.com/magabrotheeeer/inventory-console/internal/http/view"
	"github.com/magabrotheeeer/inventory-console/internal/lib/sl"
	"github.com/magabrotheeeer/inventory-console/internal/models"
	"github.com/magabrotheeeer/inventory-console/internal/services/catalog"
)

// Service описывает интерфейс сервиса каталога для удаления товара.
type Service interface {
	List(ctx context.Context) ([]models.Product, error)
	Delete(ctx context.Context, id string) error
}

// SessionSource отдаёт текущую сессию оператора.
type SessionSource interface {
	Current() *models.Session
}

// Handler обрабатывает удаление товара.
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
	const op = "handlers.productdelete"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	session := h.sessions.Current()
	id := chi.URLParam(r, "id")

	// Коллекция, которую страница держала перед удалением.
	products, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to load products", sl.Err(err))
		h.render(w, http.StatusBadGateway, session, view.Page{
			Error: "Failed to load products.",
			Data:  view.ProductsData{},
		})
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, backend.ErrProductNotFound) {
			// Товар уже удалён кем-то другим: состояние просто сходится.
			log.Info("product already gone", slog.String("id", id))
			h.render(w, http.StatusOK, session, view.Page{
				Data: view.ProductsData{Products: catalog.RemoveByID(products, id)},
			})
			return
		}
		log.Error("failed to delete product", sl.Err(err))
		h.render(w, http.StatusBadGateway, session, view.Page{
			Error: "Failed to delete product. Try again.",
			Data:  view.ProductsData{Products: products},
		})
		return
	}

	log.Info("product deleted", slog.String("id", id))
	h.render(w, http.StatusOK, session, view.Page{
		Flash: "Product deleted.",
		Data:  view.ProductsData{Products: catalog.RemoveByID(products, id)},
	})
}

func (h *Handler) render(w http.ResponseWriter, status int, session *models.Session, page view.Page) {
	page.Session = session
	page.ShowSidebar = session != nil
	h.views.Render(w, status, "products", page)
}
