// Package catalog реализует бизнес-логику работы с каталогом товаров:
// проверку предусловий перед сетевыми вызовами и делегирование
// CRUD-операций клиенту внешнего inventory API.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/inventory-console/internal/models"
)

// ErrImageRequired возвращается при создании товара без изображения.
var ErrImageRequired = errors.New("image is required")

// API описывает интерфейс клиента внешнего inventory API.
type API interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	CreateProduct(ctx context.Context, form models.ProductForm, image *models.ImageUpload) (*models.Product, error)
	UpdateProduct(ctx context.Context, id string, form models.ProductForm, image *models.ImageUpload) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// Service сервис каталога поверх клиента внешнего API.
type Service struct {
	log      *slog.Logger
	api      API
	validate *validator.Validate
}

// New создаёт новый Service с переданными логгером и клиентом API.
func New(log *slog.Logger, api API) *Service {
	return &Service{
		log:      log,
		api:      api,
		validate: validator.New(),
	}
}

// List возвращает все товары каталога.
func (s *Service) List(ctx context.Context) ([]models.Product, error) {
	return s.api.ListProducts(ctx)
}

// Get возвращает один товар по id.
func (s *Service) Get(ctx context.Context, id string) (*models.Product, error) {
	return s.api.GetProduct(ctx, id)
}

// Create валидирует форму и создаёт товар. Нарушенное предусловие —
// пустое поле или отсутствующее изображение — обрывает операцию до
// единого сетевого вызова.
func (s *Service) Create(ctx context.Context, form models.ProductForm, image *models.ImageUpload) (*models.Product, error) {
	const op = "catalog.Create"

	if err := s.validate.Struct(form); err != nil {
		return nil, err
	}
	if image == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrImageRequired)
	}
	return s.api.CreateProduct(ctx, form, image)
}

// Update валидирует форму и обновляет товар. Изображение необязательно,
// без него сервер сохраняет прежнее.
func (s *Service) Update(ctx context.Context, id string, form models.ProductForm, image *models.ImageUpload) (*models.Product, error) {
	if err := s.validate.Struct(form); err != nil {
		return nil, err
	}
	return s.api.UpdateProduct(ctx, id, form, image)
}

// Delete удаляет товар по id.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.api.DeleteProduct(ctx, id)
}
