// Package console собирает приложение: хранилище сессии, клиент
// внешнего inventory API, сервис каталога и HTTP-сервер консоли.
package console

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/inventory-console/internal/backend"
	"github.com/magabrotheeeer/inventory-console/internal/config"
	"github.com/magabrotheeeer/inventory-console/internal/http/view"
	"github.com/magabrotheeeer/inventory-console/internal/services/catalog"
	"github.com/magabrotheeeer/inventory-console/internal/session"
)

// App держит HTTP-сервер консоли и его зависимости.
type App struct {
	server *http.Server
	logger *slog.Logger
	store  *session.Store
}

// New собирает приложение из конфига. Клиент API и хранилище сессии
// связаны циклически: клиент подписывает запросы токеном из хранилища,
// хранилище входит в систему через клиента. Цикл разрывается
// SetTokenSource после создания обоих.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	storage, err := newSessionStorage(ctx, cfg.SessionStorage)
	if err != nil {
		return nil, err
	}

	client := backend.New(cfg.APIClient)
	store, err := session.NewStore(ctx, client, storage, logger)
	if err != nil {
		return nil, err
	}
	client.SetTokenSource(store)

	views, err := view.New(logger)
	if err != nil {
		return nil, err
	}

	catalogService := catalog.New(logger, client)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, store, catalogService, views)

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		store:  store,
	}, nil
}

func newSessionStorage(ctx context.Context, cfg config.SessionStorage) (session.Storage, error) {
	switch cfg.Type {
	case "file":
		return session.NewFileStorage(cfg.FilePath), nil
	case "redis":
		return session.NewRedisStorage(ctx, cfg.RedisConnection)
	default:
		return nil, fmt.Errorf("unknown session storage type: %q", cfg.Type)
	}
}

// Run запускает сервер и останавливает его при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		return a.server.Shutdown(timeoutCtx)
	}
}
