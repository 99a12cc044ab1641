package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/magabrotheeeer/inventory-console/internal/models"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

// Login аутентифицирует оператора во внешнем API и возвращает сессию.
// Отклонённые учётные данные превращаются в AuthError с сообщением
// сервера, если оно было.
func (c *Client) Login(ctx context.Context, email, password string) (*models.Session, error) {
	const op = "backend.Login"
	return c.authCall(ctx, op, "/auth/login", loginRequest{
		Email:    email,
		Password: password,
	})
}

// Register создаёт учётную запись во внешнем API и возвращает сессию.
// Роль всегда user, клиент никогда не запрашивает admin.
func (c *Client) Register(ctx context.Context, name, email, password string) (*models.Session, error) {
	const op = "backend.Register"
	return c.authCall(ctx, op, "/auth/register", registerRequest{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     models.RoleUser,
	})
}

func (c *Client) authCall(ctx context.Context, op, path string, body any) (*models.Session, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, &buf, "application/json")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp, err := c.do(op, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		apiErr := decodeAPIError(resp)
		msg := "invalid credentials"
		if apiErr.Message != "" && apiErr.Message != http.StatusText(resp.StatusCode) {
			msg = apiErr.Message
		}
		return nil, &AuthError{Message: msg}
	}

	var session models.Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", op, err)
	}
	return &session, nil
}
