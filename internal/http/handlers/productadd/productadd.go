// Package productadd реализует HTTP-обработчики страницы создания товара.
//
// Handler принимает multipart-форму с полями товара и изображением,
// делегирует создание сервису каталога и возвращает оператора в каталог.
// Нарушенные предусловия — пустые поля, нечисловая цена, отсутствующее
// изображение — рендерятся встроенным сообщением без сетевых вызовов.
package productadd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/inventory-console/internal/http/handlers/productform"
	"github.com/magabrotheeeer/inventory-console/internal/http/response"
	"github.com/magabrotheeeer/inventory-console/internal/http/view"
	"github.com/magabrotheeeer/inventory-console/internal/lib/sl"
	"github.com/magabrotheeeer/inventory-console/internal/models"
	"github.com/magabrotheeeer/inventory-console/internal/services/catalog"
)

// Service описывает интерфейс сервиса каталога для создания товара.
type Service interface {
	Create(ctx context.Context, form models.ProductForm, image *models.ImageUpload) (*models.Product, error)
}

// SessionSource отдаёт текущую сессию оператора.
type SessionSource interface {
	Current() *models.Session
}

// Handler обрабатывает запросы страницы создания товара.
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

// ServeHTTP отдаёт пустую форму создания товара.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "", view.ProductFormData{})
}

// Submit обрабатывает отправку формы создания товара.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.productadd"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	form, image, err := productform.Parse(r)
	if err != nil {
		log.Error("failed to parse form", sl.Err(err))
		msg := "invalid form submission"
		if errors.Is(err, productform.ErrInvalidPrice) {
			msg = err.Error()
		}
		h.render(w, http.StatusBadRequest, msg, view.ProductFormData{Form: form})
		return
	}

	product, err := h.service.Create(r.Context(), form, image)
	if err != nil {
		var validationErrs validator.ValidationErrors
		switch {
		case errors.As(err, &validationErrs):
			log.Error("validation failed", sl.Err(err))
			h.render(w, http.StatusUnprocessableEntity, response.ValidationMessage(validationErrs), view.ProductFormData{Form: form})
		case errors.Is(err, catalog.ErrImageRequired):
			log.Error("image missing", sl.Err(err))
			h.render(w, http.StatusUnprocessableEntity, "Image is required!", view.ProductFormData{Form: form})
		default:
			log.Error("failed to create product", sl.Err(err))
			h.render(w, http.StatusBadGateway, "Failed to create product", view.ProductFormData{Form: form})
		}
		return
	}

	log.Info("product created", slog.String("id", product.ID))
	http.Redirect(w, r, "/products", http.StatusSeeOther)
}

func (h *Handler) render(w http.ResponseWriter, status int, errMsg string, data view.ProductFormData) {
	session := h.sessions.Current()
	h.views.Render(w, status, "product_add", view.Page{
		Session:     session,
		ShowSidebar: session != nil,
		Error:       errMsg,
		Data:        data,
	})
}
