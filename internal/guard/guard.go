// Package guard принимает решения о доступе к защищённым страницам.
//
// Check — чистая функция над сессией и требуемой ролью, единственное
// место в консоли, где сравниваются роли. Middleware применяет решение
// к маршруту до рендеринга страницы, capability-функции — к видимости
// действий в шаблонах. Обе стороны используют одну и ту же логику.
package guard

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/magabrotheeeer/inventory-console/internal/models"
)

// Decision результат проверки доступа.
type Decision int

const (
	// Allow страница рендерится.
	Allow Decision = iota
	// RedirectLogin сессии нет, оператор отправляется на /login.
	RedirectLogin
	// RedirectHome сессия есть, но роль не подходит; оператор
	// отправляется на безопасный маршрут по умолчанию.
	RedirectHome
)

// Check решает, можно ли рендерить страницу. Пустая required означает
// «любая аутентифицированная сессия». Вычисляется синхронно, до
// монтирования страницы.
func Check(s *models.Session, required models.Role) Decision {
	if s == nil {
		return RedirectLogin
	}
	if required != "" && s.Role != required {
		return RedirectHome
	}
	return Allow
}

// CanManageProducts сообщает, видны ли оператору действия создания,
// редактирования и удаления товаров.
func CanManageProducts(s *models.Session) bool {
	return Check(s, models.RoleAdmin) == Allow
}

// CanViewDashboard сообщает, доступен ли оператору дашборд.
func CanViewDashboard(s *models.Session) bool {
	return Check(s, models.RoleAdmin) == Allow
}

// DefaultRoute маршрут по умолчанию для сессии: дашборд для admin,
// каталог для user, главная без сессии.
func DefaultRoute(s *models.Session) string {
	switch {
	case s == nil:
		return "/"
	case s.Role == models.RoleAdmin:
		return "/dashboard"
	default:
		return "/products"
	}
}

// adminPrefixes маршруты, закрытые ролью admin. Единственный список,
// по нему же строятся защищённые группы маршрутов.
var adminPrefixes = []string{
	"/dashboard",
	"/products/add",
	"/products/edit/",
	"/products/delete/",
}

// RequiredRoleFor возвращает роль, необходимую для маршрута.
// Пустая роль — маршрут не требует admin.
func RequiredRoleFor(path string) models.Role {
	for _, prefix := range adminPrefixes {
		if path == strings.TrimSuffix(prefix, "/") || strings.HasPrefix(path, prefix) {
			return models.RoleAdmin
		}
	}
	return ""
}

// NextOrDefault возвращает маршрут, куда отправить оператора после
// входа: исходно запрошенный, если он безопасен и подходит по роли,
// иначе маршрут по умолчанию для его роли.
func NextOrDefault(s *models.Session, next string) string {
	if s == nil {
		return "/"
	}
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return DefaultRoute(s)
	}
	if Check(s, RequiredRoleFor(next)) != Allow {
		return DefaultRoute(s)
	}
	return next
}

// SessionSource отдаёт текущую сессию оператора.
type SessionSource interface {
	Current() *models.Session
}

// Middleware возвращает HTTP middleware, который применяет Check
// к каждому запросу группы маршрутов.
//
// Без сессии оператор перенаправляется на /login с исходным путём
// в параметре next, при несовпадении роли — на главную.
func Middleware(sessions SessionSource, required models.Role, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := sessions.Current()

			switch Check(session, required) {
			case RedirectLogin:
				log.Info("redirecting unauthenticated request",
					slog.String("path", r.URL.Path))
				http.Redirect(w, r, "/login?next="+url.QueryEscape(r.URL.Path), http.StatusSeeOther)
			case RedirectHome:
				log.Info("redirecting request with insufficient role",
					slog.String("path", r.URL.Path),
					slog.String("role", string(session.Role)))
				http.Redirect(w, r, "/", http.StatusSeeOther)
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}
