package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/inventory-console/internal/models"
)

func TestCountByCategory(t *testing.T) {
	products := []models.Product{
		{ID: "p1", Category: "A"},
		{ID: "p2", Category: "A"},
		{ID: "p3"},
	}

	counts := CountByCategory(products)

	assert.Equal(t, map[string]int{"A": 2, "Uncategorized": 1}, counts)
}

func TestCountByCategory_Empty(t *testing.T) {
	assert.Empty(t, CountByCategory(nil))
}

func TestCategoryCounts_Sorted(t *testing.T) {
	products := []models.Product{
		{Category: "B"},
		{Category: "A"},
		{Category: "A"},
		{Category: "C"},
	}

	counts := CategoryCounts(products)

	require.Len(t, counts, 3)
	assert.Equal(t, CategoryCount{Category: "A", Count: 2}, counts[0])
	// При равном количестве порядок по имени.
	assert.Equal(t, CategoryCount{Category: "B", Count: 1}, counts[1])
	assert.Equal(t, CategoryCount{Category: "C", Count: 1}, counts[2])
}

func TestCountByDay(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	products := []models.Product{
		{ID: "p1", CreatedAt: "2025-06-01T09:30:00.000Z"},
		{ID: "p2", CreatedAt: "2025-06-01T18:00:00.000Z"},
		{ID: "p3", CreatedAt: "2025-06-03T08:00:00.000Z"},
		{ID: "p4"},                           // без даты — относится к now
		{ID: "p5", CreatedAt: "not-a-date"},  // нечитаемая дата — тоже к now
	}

	counts := CountByDay(products, now)

	require.Len(t, counts, 3)
	assert.Equal(t, DayCount{Date: "2025-06-01", Count: 2}, counts[0])
	assert.Equal(t, DayCount{Date: "2025-06-03", Count: 1}, counts[1])
	assert.Equal(t, DayCount{Date: "2025-06-10", Count: 2}, counts[2])
}

func TestCountByDay_Empty(t *testing.T) {
	assert.Empty(t, CountByDay(nil, time.Now()))
}
