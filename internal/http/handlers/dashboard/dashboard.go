// Package dashboard реализует HTTP-обработчики аналитической панели.
//
// Панель пересчитывает сводки из свежей выгрузки каталога при каждом
// запросе, ничего не кэшируя. Помимо HTML-страницы те же данные
// отдаются JSON-эндпоинтом для скриптов оператора.
package dashboard

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/inventory-console/internal/http/response"
	"github.com/magabrotheeeer/inventory-console/internal/http/view"
	"github.com/magabrotheeeer/inventory-console/internal/lib/sl"
	"github.com/magabrotheeeer/inventory-console/internal/lib/stats"
	"github.com/magabrotheeeer/inventory-console/internal/models"
)

// Service описывает интерфейс сервиса каталога для панели.
type Service interface {
	List(ctx context.Context) ([]models.Product, error)
}

// SessionSource отдаёт текущую сессию оператора.
type SessionSource interface {
	Current() *models.Session
}

// Summary агрегированные показатели каталога для JSON-эндпоинта.
type Summary struct {
	TotalProducts   int                   `json:"total_products"`
	TotalCategories int                   `json:"total_categories"`
	Categories      []stats.CategoryCount `json:"categories"`
	Days            []stats.DayCount      `json:"days"`
}

// Handler обрабатывает запросы аналитической панели.
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

// ServeHTTP отдаёт HTML-страницу панели.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.dashboard"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	session := h.sessions.Current()

	products, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to load products", sl.Err(err))
		h.views.Render(w, http.StatusBadGateway, "dashboard", view.Page{
			Session:     session,
			ShowSidebar: session != nil,
			Error:       "Failed to load products.",
			Data:        view.DashboardData{},
		})
		return
	}

	summary := summarize(products)
	log.Info("dashboard rendered",
		slog.Int("products", summary.TotalProducts),
		slog.Int("categories", summary.TotalCategories),
	)
	h.views.Render(w, http.StatusOK, "dashboard", view.Page{
		Session:     session,
		ShowSidebar: session != nil,
		Data: view.DashboardData{
			TotalProducts:   summary.TotalProducts,
			TotalCategories: summary.TotalCategories,
			Categories:      summary.Categories,
			Days:            summary.Days,
		},
	})
}

// Data отдаёт те же сводки JSON-ом.
func (h *Handler) Data(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.dashboard.data"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	products, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to load products", sl.Err(err))
		w.WriteHeader(http.StatusBadGateway)
		render.JSON(w, r, response.Error("failed to load products"))
		return
	}

	render.JSON(w, r, response.OKWithData(summarize(products)))
}

func summarize(products []models.Product) Summary {
	categories := stats.CategoryCounts(products)
	return Summary{
		TotalProducts:   len(products),
		TotalCategories: len(categories),
		Categories:      categories,
		Days:            stats.CountByDay(products, time.Now()),
	}
}
