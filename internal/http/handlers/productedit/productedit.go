// Package productedit реализует HTTP-обработчики страницы редактирования товара.
//
// GET загружает товар из внешнего API и заполняет форму, POST отправляет
// изменения. Изображение необязательно: без него сервер сохраняет прежнее.
package productedit

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/inventory-console/internal/backend"
	"github.com/magabrotheeeer/inventory-console/internal/http/handlers/productform"
	"github.com/magabrotheeeer/inventory-console/internal/http/response"
	"github.com/magabrotheeeer/inventory-console/internal/http/view"
	"github.com/magabrotheeeer/inventory-console/internal/lib/sl"
	"github.com/magabrotheeeer/inventory-console/internal/models"
)

// Service описывает интерфейс сервиса каталога для редактирования товара.
type Service interface {
	Get(ctx context.Context, id string) (*models.Product, error)
	Update(ctx context.Context, id string, form models.ProductForm, image *models.ImageUpload) (*models.Product, error)
}

// SessionSource отдаёт текущую сессию оператора.
type SessionSource interface {
	Current() *models.Session
}

// Handler обрабатывает запросы страницы редактирования товара.
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

// ServeHTTP отдаёт форму редактирования, заполненную данными товара.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.productedit"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	product, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, backend.ErrProductNotFound) {
			log.Error("product not found", slog.String("id", id))
			h.renderNotFound(w)
			return
		}
		log.Error("failed to load product", sl.Err(err))
		h.render(w, http.StatusBadGateway, "Failed to load product", view.ProductFormData{ProductID: id})
		return
	}

	h.render(w, http.StatusOK, "", view.ProductFormData{
		ProductID: product.ID,
		Image:     product.Image,
		Form: models.ProductForm{
			Name:        product.Name,
			SKU:         product.SKU,
			Category:    product.Category,
			Quantity:    product.Quantity,
			Price:       product.Price,
			Description: product.Description,
		},
	})
}

// Submit обрабатывает отправку формы редактирования.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.productedit.submit"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	form, image, err := productform.Parse(r)
	formData := view.ProductFormData{Form: form, ProductID: id}
	if err != nil {
		log.Error("failed to parse form", sl.Err(err))
		msg := "invalid form submission"
		if errors.Is(err, productform.ErrInvalidPrice) {
			msg = err.Error()
		}
		h.render(w, http.StatusBadRequest, msg, formData)
		return
	}

	product, err := h.service.Update(r.Context(), id, form, image)
	if err != nil {
		var validationErrs validator.ValidationErrors
		switch {
		case errors.As(err, &validationErrs):
			log.Error("validation failed", sl.Err(err))
			h.render(w, http.StatusUnprocessableEntity, response.ValidationMessage(validationErrs), formData)
		case errors.Is(err, backend.ErrProductNotFound):
			log.Error("product not found", slog.String("id", id))
			h.renderNotFound(w)
		default:
			log.Error("failed to update product", sl.Err(err))
			h.render(w, http.StatusBadGateway, "Failed to update product", formData)
		}
		return
	}

	log.Info("product updated", slog.String("id", product.ID))
	http.Redirect(w, r, "/products", http.StatusSeeOther)
}

func (h *Handler) render(w http.ResponseWriter, status int, errMsg string, data view.ProductFormData) {
	session := h.sessions.Current()
	h.views.Render(w, status, "product_edit", view.Page{
		Session:     session,
		ShowSidebar: session != nil,
		Error:       errMsg,
		Data:        data,
	})
}

func (h *Handler) renderNotFound(w http.ResponseWriter) {
	session := h.sessions.Current()
	h.views.Render(w, http.StatusNotFound, "notfound", view.Page{
		Session:     session,
		ShowSidebar: session != nil,
	})
}
