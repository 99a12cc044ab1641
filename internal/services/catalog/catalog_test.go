package catalog

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/inventory-console/internal/models"
)

// MockAPI реализует интерфейс catalog.API
type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) ListProducts(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockAPI) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockAPI) CreateProduct(ctx context.Context, form models.ProductForm, image *models.ImageUpload) (*models.Product, error) {
	args := m.Called(ctx, form, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockAPI) UpdateProduct(ctx context.Context, id string, form models.ProductForm, image *models.ImageUpload) (*models.Product, error) {
	args := m.Called(ctx, id, form, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockAPI) DeleteProduct(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func validForm() models.ProductForm {
	return models.ProductForm{
		Name:        "Chair",
		SKU:         "SKU-1",
		Category:    "Furniture",
		Quantity:    "10",
		Price:       49.9,
		Description: "Oak chair",
	}
}

func validImage() *models.ImageUpload {
	return &models.ImageUpload{Filename: "chair.png", Content: strings.NewReader("png")}
}

func TestCreate_ValidationShortCircuits(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.ProductForm)
		noImage bool
	}{
		{name: "пустое название", mutate: func(f *models.ProductForm) { f.Name = "" }},
		{name: "пустой артикул", mutate: func(f *models.ProductForm) { f.SKU = "" }},
		{name: "пустая категория", mutate: func(f *models.ProductForm) { f.Category = "" }},
		{name: "пустое количество", mutate: func(f *models.ProductForm) { f.Quantity = "" }},
		{name: "нечисловое количество", mutate: func(f *models.ProductForm) { f.Quantity = "many" }},
		{name: "отрицательная цена", mutate: func(f *models.ProductForm) { f.Price = -1 }},
		{name: "пустое описание", mutate: func(f *models.ProductForm) { f.Description = "" }},
		{name: "нет изображения", mutate: func(_ *models.ProductForm) {}, noImage: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := new(MockAPI)
			service := New(testLogger(), api)

			form := validForm()
			tt.mutate(&form)
			image := validImage()
			if tt.noImage {
				image = nil
			}

			_, err := service.Create(context.Background(), form, image)

			require.Error(t, err)
			if tt.noImage {
				assert.ErrorIs(t, err, ErrImageRequired)
			} else {
				var validationErrs validator.ValidationErrors
				assert.ErrorAs(t, err, &validationErrs)
			}
			// Ни одного сетевого вызова при нарушенном предусловии.
			api.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCreate_Success(t *testing.T) {
	api := new(MockAPI)
	created := &models.Product{ID: "new-id", Name: "Chair"}
	api.On("CreateProduct", mock.Anything, validForm(), mock.AnythingOfType("*models.ImageUpload")).
		Return(created, nil)

	service := New(testLogger(), api)

	product, err := service.Create(context.Background(), validForm(), validImage())
	require.NoError(t, err)
	assert.Equal(t, "new-id", product.ID)
	api.AssertExpectations(t)
}

func TestUpdate_ImageOptional(t *testing.T) {
	api := new(MockAPI)
	updated := &models.Product{ID: "p1", Name: "Chair"}
	api.On("UpdateProduct", mock.Anything, "p1", validForm(), (*models.ImageUpload)(nil)).
		Return(updated, nil)

	service := New(testLogger(), api)

	product, err := service.Update(context.Background(), "p1", validForm(), nil)
	require.NoError(t, err)
	assert.Equal(t, "p1", product.ID)
	api.AssertExpectations(t)
}

func TestUpdate_ValidationShortCircuits(t *testing.T) {
	api := new(MockAPI)
	service := New(testLogger(), api)

	form := validForm()
	form.Name = ""

	_, err := service.Update(context.Background(), "p1", form, nil)

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	api.AssertNotCalled(t, "UpdateProduct", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestFilter(t *testing.T) {
	products := []models.Product{
		{ID: "p1", Name: "Office Chair", SKU: "SKU-1"},
		{ID: "p2", Name: "Desk", SKU: "SKU-2"},
		{ID: "p3", Name: "chair pad", SKU: "ACC-9"},
	}

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{"пустой запрос возвращает всё", "", []string{"p1", "p2", "p3"}},
		{"совпадение по артикулу без учёта регистра", "sku-1", []string{"p1"}},
		{"совпадение по названию без учёта регистра", "CHAIR", []string{"p1", "p3"}},
		{"подстрока артикула", "sku", []string{"p1", "p2"}},
		{"без совпадений", "lamp", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := Filter(products, tt.query)

			ids := make([]string, 0, len(filtered))
			for _, p := range filtered {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.expected, ids, "порядок должен сохраняться")
		})
	}
}

func TestFilter_Deterministic(t *testing.T) {
	products := []models.Product{
		{ID: "p1", Name: "Office Chair", SKU: "SKU-1"},
		{ID: "p2", Name: "Desk", SKU: "SKU-2"},
	}

	first := Filter(products, "sku")
	second := Filter(products, "sku")

	assert.Equal(t, first, second)
}

func TestRemoveByID(t *testing.T) {
	products := []models.Product{
		{ID: "p1", Name: "Chair"},
		{ID: "p2", Name: "Desk"},
		{ID: "p3", Name: "Lamp"},
	}

	remaining := RemoveByID(products, "p2")

	require.Len(t, remaining, 2)
	assert.Equal(t, "p1", remaining[0].ID)
	assert.Equal(t, "p3", remaining[1].ID)

	// Неизвестный id ничего не трогает.
	assert.Len(t, RemoveByID(products, "missing"), 3)
}
