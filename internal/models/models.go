// Package models содержит доменные структуры консоли инвентаря:
// сессию оператора, товар каталога и вспомогательные типы для приёма
// данных из HTML-форм перед отправкой во внешний REST API.
package models

import "io"

// Role роль пользователя, admin или user.
type Role string

const (
	// RoleAdmin имеет доступ к дашборду и операциям изменения каталога.
	RoleAdmin Role = "admin"
	// RoleUser имеет доступ только к просмотру каталога.
	RoleUser Role = "user"
)

// Session представляет аутентифицированного оператора консоли.
// Создаётся при успешном login/register, заменяется при каждом успешном
// вызове аутентификации, уничтожается при logout. Это единственное
// состояние, которое консоль сохраняет между перезапусками.
type Session struct {
	ID    string `json:"id"`    // Идентификатор пользователя во внешнем API
	Name  string `json:"name"`  // Имя пользователя
	Email string `json:"email"` // Электронная почта
	Role  Role   `json:"role"`  // Роль пользователя
	Token string `json:"token"` // Bearer-токен для исходящих запросов
}

// ProductOwner владелец товара, необязательная ссылка из внешнего API.
// В контроле доступа не участвует.
type ProductOwner struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Product представляет товар каталога. Владелец данных — внешний API,
// консоль держит только временные копии. Quantity приходит строкой,
// как отдаёт внешний API.
type Product struct {
	ID          string        `json:"_id"`
	Name        string        `json:"name"`
	SKU         string        `json:"sku"`
	Category    string        `json:"category"`
	Quantity    string        `json:"quantity"`
	Price       float64       `json:"price"`
	Description string        `json:"description"`
	Image       string        `json:"image"`
	Owner       *ProductOwner `json:"user,omitempty"`
	CreatedAt   string        `json:"createdAt,omitempty"`
	UpdatedAt   string        `json:"updatedAt,omitempty"`
}

// ProductForm используется для приёма данных формы создания и
// редактирования товара, прежде чем кодировать их в multipart-запрос.
// Все текстовые поля обязательны, цена неотрицательна.
type ProductForm struct {
	Name        string  `json:"name" validate:"required"`              // Название товара
	SKU         string  `json:"sku" validate:"required"`               // Артикул
	Category    string  `json:"category" validate:"required"`          // Категория
	Quantity    string  `json:"quantity" validate:"required,numeric"`  // Количество
	Price       float64 `json:"price" validate:"gte=0"`                // Цена (>=0)
	Description string  `json:"description" validate:"required"`       // Описание
}

// ImageUpload прикреплённое изображение товара.
// Content читается ровно один раз при кодировании multipart-тела.
type ImageUpload struct {
	Filename string
	Content  io.Reader
}
