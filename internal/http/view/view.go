// Package view рендерит HTML-страницы консоли из встроенных шаблонов.
//
// Каждая страница собирается из общего layout, партиалов (sidebar,
// spinner) и собственного content-блока. Видимость действий в шаблонах
// решают capability-функции пакета guard — та же логика, что закрывает
// маршруты.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/magabrotheeeer/inventory-console/internal/guard"
	"github.com/magabrotheeeer/inventory-console/internal/lib/sl"
	"github.com/magabrotheeeer/inventory-console/internal/lib/stats"
	"github.com/magabrotheeeer/inventory-console/internal/models"
)

//go:embed templates
var files embed.FS

// pageNames все страницы консоли. Для каждой собирается свой шаблон.
var pageNames = []string{
	"home",
	"login",
	"register",
	"dashboard",
	"products",
	"product_add",
	"product_edit",
	"notfound",
}

// Page общие данные любой страницы.
type Page struct {
	Session     *models.Session
	ShowSidebar bool
	Error       string // Встроенное сообщение об ошибке последнего действия
	Flash       string // Сообщение об успехе последнего действия
	Data        any    // Данные конкретной страницы
}

// AuthFormData данные форм входа и регистрации.
type AuthFormData struct {
	Name  string
	Email string
	Next  string
}

// ProductsData данные страницы каталога.
type ProductsData struct {
	Products []models.Product
	Query    string
}

// ProductFormData данные форм создания и редактирования товара.
type ProductFormData struct {
	Form      models.ProductForm
	ProductID string
	Image     string
}

// DashboardData данные дашборда.
type DashboardData struct {
	TotalProducts   int
	TotalCategories int
	Categories      []stats.CategoryCount
	Days            []stats.DayCount
}

// Renderer держит разобранные шаблоны страниц.
type Renderer struct {
	log   *slog.Logger
	pages map[string]*template.Template
}

// New разбирает встроенные шаблоны. Ошибка здесь — ошибка сборки
// приложения, консоль без шаблонов не поднимается.
func New(log *slog.Logger) (*Renderer, error) {
	const op = "view.New"

	funcs := template.FuncMap{
		"canManageProducts": guard.CanManageProducts,
		"canViewDashboard":  guard.CanViewDashboard,
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.New("layout.tmpl").Funcs(funcs).ParseFS(files,
			"templates/layout.tmpl",
			"templates/partials/*.tmpl",
			"templates/pages/"+name+".tmpl",
		)
		if err != nil {
			return nil, fmt.Errorf("%s: parse %s: %w", op, name, err)
		}
		pages[name] = tmpl
	}
	return &Renderer{log: log, pages: pages}, nil
}

// Render выполняет шаблон страницы в буфер и отдаёт результат целиком,
// чтобы ошибка шаблона не оставила оператору полстраницы.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, page Page) {
	const op = "view.Render"
	log := r.log.With(slog.String("op", op), slog.String("page", name))

	tmpl, ok := r.pages[name]
	if !ok {
		log.Error("unknown page template")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", page); err != nil {
		log.Error("failed to execute template", sl.Err(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
