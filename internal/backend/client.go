package backend

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/inventory-console/internal/config"
	"github.com/magabrotheeeer/inventory-console/internal/metrics"
)

// TokenSource отдаёт bearer-токен текущей сессии.
// Пустая строка означает отсутствие сессии, заголовок не ставится.
type TokenSource interface {
	Token() string
}

// Client клиент внешнего inventory API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// New создаёт новый клиент inventory API с базовым URL и таймаутом из конфига.
func New(cfg config.APIClient) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// SetTokenSource задаёт источник bearer-токена. Вызывается один раз
// при сборке приложения, после создания хранилища сессии.
func (c *Client) SetTokenSource(tokens TokenSource) {
	c.tokens = tokens
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}

// do выполняет запрос, фиксирует метрики и оборачивает транспортные
// ошибки в NetworkError. Закрыть тело ответа должен вызывающий.
func (c *Client) do(op string, req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ObserveAPIRequest(op, 0, time.Since(start))
		return nil, &NetworkError{Op: op, Err: err}
	}
	metrics.ObserveAPIRequest(op, resp.StatusCode, time.Since(start))
	return resp, nil
}

func is2xx(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}
