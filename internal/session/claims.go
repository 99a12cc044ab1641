package session

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims кастомные данные bearer-токена внешнего API.
type TokenClaims struct {
	Role                 string `json:"role"` // Роль пользователя
	jwt.RegisteredClaims        // Стандартные claims JWT (ExpiresAt, IssuedAt и пр.)
}

// ParseClaims разбирает токен без проверки подписи: ключ знает только
// внешний API, консоль использует claims исключительно для логирования
// срока жизни токена при восстановлении сессии. Консоль никогда не
// принимает решений о доступе по этим данным.
func ParseClaims(tokenStr string) (*TokenClaims, error) {
	const op = "session.ParseClaims"

	claims := &TokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenStr, claims); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return claims, nil
}
