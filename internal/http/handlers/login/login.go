// Package login реализует HTTP-обработчики страницы входа.
//
// GET отдаёт форму, POST декодирует её, валидирует поля и делегирует
// вход хранилищу сессии. Отклонённые учётные данные рендерятся
// встроенным сообщением на той же странице; после успешного входа
// оператор возвращается на исходно запрошенный маршрут или на
// маршрут по умолчанию для его роли.
package login

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

// Request — структура входных данных для авторизации.
type Request struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// SessionStore описывает интерфейс хранилища сессии для входа.
type SessionStore interface {
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Current() *models.Session
}

// Handler обрабатывает HTTP-запросы страницы входа.
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

// ServeHTTP отдаёт форму входа. Аутентифицированный оператор сразу
// уходит на маршрут по умолчанию для своей роли.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if session := h.sessions.Current(); session != nil {
		http.Redirect(w, r, guard.DefaultRoute(session), http.StatusSeeOther)
		return
	}
	h.render(w, http.StatusOK, "", view.AuthFormData{Next: r.URL.Query().Get("next")})
}

// Submit обрабатывает отправку формы входа.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.login"
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
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}
	formData := view.AuthFormData{Email: req.Email, Next: r.PostFormValue("next")}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		h.render(w, http.StatusUnprocessableEntity, response.ValidationMessage(err.(validator.ValidationErrors)), formData)
		return
	}

	session, err := h.sessions.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		var authErr *backend.AuthError
		if errors.As(err, &authErr) {
			log.Error("login rejected", sl.Err(err))
			h.render(w, http.StatusUnauthorized, authErr.Message, formData)
			return
		}
		log.Error("login failed", sl.Err(err))
		h.render(w, http.StatusBadGateway, "failed to login, try again", formData)
		return
	}

	log.Info("login success", slog.String("email", req.Email), slog.String("role", string(session.Role)))
	http.Redirect(w, r, guard.NextOrDefault(session, formData.Next), http.StatusSeeOther)
}

func (h *Handler) render(w http.ResponseWriter, status int, errMsg string, data view.AuthFormData) {
	h.views.Render(w, status, "login", view.Page{
		Error: errMsg,
		Data:  data,
	})
}
