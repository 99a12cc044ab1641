// Package productform разбирает multipart-формы создания и
// редактирования товара в доменные структуры. Общий код страниц
// productadd и productedit.
package productform

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/magabrotheeeer/inventory-console/internal/models"
)

// maxMemory верхняя граница памяти под разбор multipart-формы,
// остальное уходит во временные файлы.
const maxMemory = 32 << 20

// ErrInvalidPrice возвращается, когда цена в форме не является числом.
var ErrInvalidPrice = errors.New("field Price can contain only numbers")

// Parse разбирает multipart-форму в ProductForm и вложенное изображение.
// Отсутствующее изображение — не ошибка: обязательность решает сервис
// каталога, у создания и редактирования она разная.
func Parse(r *http.Request) (models.ProductForm, *models.ImageUpload, error) {
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		return models.ProductForm{}, nil, err
	}

	form := models.ProductForm{
		Name:        r.PostFormValue("name"),
		SKU:         r.PostFormValue("sku"),
		Category:    r.PostFormValue("category"),
		Quantity:    r.PostFormValue("quantity"),
		Description: r.PostFormValue("description"),
	}

	if raw := r.PostFormValue("price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return form, nil, ErrInvalidPrice
		}
		form.Price = price
	}

	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return form, nil, nil
	}
	if err != nil {
		return form, nil, err
	}
	return form, &models.ImageUpload{Filename: header.Filename, Content: file}, nil
}
