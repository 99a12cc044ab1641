// Package stats содержит чистые функции агрегации каталога для
// дашборда: количество товаров по категориям и по дням создания.
// Ничего не сохраняется, результат пересчитывается при каждой загрузке.
package stats

import (
	"sort"
	"time"

	"github.com/magabrotheeeer/inventory-console/internal/models"
)

// UncategorizedBucket категория по умолчанию для товаров без категории.
const UncategorizedBucket = "Uncategorized"

// CategoryCount количество товаров в одной категории.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// DayCount количество товаров, созданных в один день.
type DayCount struct {
	Date  string `json:"date"` // День в формате 2006-01-02
	Count int    `json:"count"`
}

// CountByCategory считает товары по категориям. Товар без категории
// попадает в корзину Uncategorized.
func CountByCategory(products []models.Product) map[string]int {
	counts := make(map[string]int)
	for _, p := range products {
		category := p.Category
		if category == "" {
			category = UncategorizedBucket
		}
		counts[category]++
	}
	return counts
}

// CategoryCounts отдаёт те же счётчики отсортированным срезом:
// по убыванию количества, при равенстве — по имени категории.
func CategoryCounts(products []models.Product) []CategoryCount {
	counts := CountByCategory(products)

	result := make([]CategoryCount, 0, len(counts))
	for category, count := range counts {
		result = append(result, CategoryCount{Category: category, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Category < result[j].Category
	})
	return result
}

// CountByDay считает товары по дню создания в хронологическом порядке.
// Товар без даты создания или с нечитаемой датой относится ко дню now —
// так ведёт себя и загрузка каталога: новый товар виден сразу.
func CountByDay(products []models.Product, now time.Time) []DayCount {
	counts := make(map[string]int)
	for _, p := range products {
		day := now
		if p.CreatedAt != "" {
			if parsed, err := time.Parse(time.RFC3339, p.CreatedAt); err == nil {
				day = parsed
			}
		}
		counts[day.Format("2006-01-02")]++
	}

	result := make([]DayCount, 0, len(counts))
	for date, count := range counts {
		result = append(result, DayCount{Date: date, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date < result[j].Date
	})
	return result
}
