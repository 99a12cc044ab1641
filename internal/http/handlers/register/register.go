// Package register реализует HTTP-обработчики страницы регистрации.
//
// Роль новой учётной записи всегда user: форма её не спрашивает,
// клиент внешнего API её не принимает. Контракт совпадает со входом —
// успешная регистрация заменяет текущую сессию.
package register

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/inventory-console/internal/backend"
	"github.com/magabrotheeeer/inventory-console/internal/guard"
	"github.com/magabrotheeeer/inventory-console/internal/http/response"
	"github.com/magabrotheeeer/inventory-console/internal/http/view"
	"github.com/magabrotheeeer/inventory-console/internal/lib/sl"
	"github.com/magabrotheeeer/inventory-console/internal/models"
)

// Request — структура входных данных для регистрации.
type Request struct {
	Name     string `validate:"required,min=2"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// SessionStore описывает интерфейс хранилища сессии для регистрации.
type SessionStore interface {
	Register(ctx context.Context, name, email, password string) (*models.Session, error)
	Current() *models.Session
}

// Handler обрабатывает HTTP-запросы страницы регистрации.
type Handler struct {
	log      *slog.Logger
	sessions SessionStore
	views    *view.Renderer
	validate *validator.Validate
}

// New создает новый Handler с переданными логгером, хранилищем сессии и рендерером.
func New(log *slog.Logger, sessions SessionStore, views *view.Renderer) *Handler {
	return &Handler{
		log:      log,
		sessions: sessions,
		views:    views,
		validate: validator.New(),
	}
}

// ServeHTTP отдаёт форму регистрации.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if session := h.sessions.Current(); session != nil {
		http.Redirect(w, r, guard.DefaultRoute(session), http.StatusSeeOther)
		return
	}
	h.render(w, http.StatusOK, "", view.AuthFormData{})
}

// Submit обрабатывает отправку формы регистрации.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.register"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := r.ParseForm(); err != nil {
		log.Error("failed to parse form", sl.Err(err))
		h.render(w, http.StatusBadRequest, "invalid form submission", view.AuthFormData{})
		return
	}

	req := Request{
		Name:     r.PostFormValue("name"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}
	formData := view.AuthFormData{Name: req.Name, Email: req.Email}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		h.render(w, http.StatusUnprocessableEntity, response.ValidationMessage(err.(validator.ValidationErrors)), formData)
		return
	}

	session, err := h.sessions.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		var authErr *backend.AuthError
		if errors.As(err, &authErr) {
			log.Error("registration rejected", sl.Err(err))
			h.render(w, http.StatusUnprocessableEntity, authErr.Message, formData)
			return
		}
		log.Error("registration failed", sl.Err(err))
		h.render(w, http.StatusBadGateway, "failed to register, try again", formData)
		return
	}

	log.Info("registration success", slog.String("email", req.Email))
	http.Redirect(w, r, guard.DefaultRoute(session), http.StatusSeeOther)
}

func (h *Handler) render(w http.ResponseWriter, status int, errMsg string, data view.AuthFormData) {
	h.views.Render(w, status, "register", view.Page{
		Error: errMsg,
		Data:  data,
	})
}
