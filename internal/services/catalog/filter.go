package catalog

import (
	"strings"

	"github.com/magabrotheeeer/inventory-console/internal/models"
)

// Filter возвращает товары, у которых название или артикул содержит
// query без учёта регистра. Пустой query возвращает вход без изменений,
// относительный порядок всегда сохраняется. Фильтрация выполняется
// по уже загруженной коллекции, это не запрос к серверу.
func Filter(products []models.Product, query string) []models.Product {
	if query == "" {
		return products
	}
	query = strings.ToLower(query)

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.SKU), query) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// RemoveByID возвращает коллекцию без товара с указанным id.
// Используется после успешного удаления: отображаемое состояние
// перефильтровывается вместо повторной загрузки с сервера.
func RemoveByID(products []models.Product, id string) []models.Product {
	remaining := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.ID != id {
			remaining = append(remaining, p)
		}
	}
	return remaining
}
