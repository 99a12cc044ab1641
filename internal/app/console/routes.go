package console

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/inventory-console/internal/guard"
	"github.com/magabrotheeeer/inventory-console/internal/http/handlers/dashboard"
	"github.com/magabrotheeeer/inventory-console/internal/http/handlers/home"
	"github.com/magabrotheeeer/inventory-console/internal/http/handlers/login"
	"github.com/magabrotheeeer/inventory-console/internal/http/handlers/logout"
	"github.com/magabrotheeeer/inventory-console/internal/http/handlers/notfound"
	"github.com/magabrotheeeer/inventory-console/internal/http/handlers/productadd"
	"github.com/magabrotheeeer/inventory-console/internal/http/handlers/productdelete"
	"github.com/magabrotheeeer/inventory-console/internal/http/handlers/productedit"
	"github.com/magabrotheeeer/inventory-console/internal/http/handlers/productlist"
	"github.com/magabrotheeeer/inventory-console/internal/http/handlers/register"
	"github.com/magabrotheeeer/inventory-console/internal/http/mware"
	"github.com/magabrotheeeer/inventory-console/internal/http/view"
	"github.com/magabrotheeeer/inventory-console/internal/models"
	"github.com/magabrotheeeer/inventory-console/internal/services/catalog"
	"github.com/magabrotheeeer/inventory-console/internal/session"
)

// RegisterRoutes регистрирует все маршруты консоли.
func RegisterRoutes(r chi.Router, logger *slog.Logger, store *session.Store, catalogService *catalog.Service, views *view.Renderer) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		mware.RateLimit(rate.NewLimiter(rate.Limit(20), 40), logger),
	)

	// Открытые страницы
	r.Get("/", home.New(logger, store, views).ServeHTTP)
	loginHandler := login.New(logger, store, views)
	r.Get("/login", loginHandler.ServeHTTP)
	r.Post("/login", loginHandler.Submit)
	registerHandler := register.New(logger, store, views)
	r.Get("/register", registerHandler.ServeHTTP)
	r.Post("/register", registerHandler.Submit)
	r.Post("/logout", logout.New(logger, store).ServeHTTP)

	// Каталог доступен любой аутентифицированной роли
	r.Group(func(r chi.Router) {
		r.Use(guard.Middleware(store, "", logger))
		r.Get("/products", productlist.New(logger, catalogService, store, views).ServeHTTP)
	})

	// Действия изменения и аналитика только для роли admin
	r.Group(func(r chi.Router) {
		r.Use(guard.Middleware(store, models.RoleAdmin, logger))

		dashboardHandler := dashboard.New(logger, catalogService, store, views)
		r.Get("/dashboard", dashboardHandler.ServeHTTP)
		r.Get("/dashboard/data", dashboardHandler.Data)

		addHandler := productadd.New(logger, catalogService, store, views)
		r.Get("/products/add", addHandler.ServeHTTP)
		r.Post("/products/add", addHandler.Submit)

		editHandler := productedit.New(logger, catalogService, store, views)
		r.Get("/products/edit/{id}", editHandler.ServeHTTP)
		r.Post("/products/edit/{id}", editHandler.Submit)

		r.Post("/products/delete/{id}", productdelete.New(logger, catalogService, store, views).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())

	r.NotFound(notfound.New(logger, store, views).ServeHTTP)
}
