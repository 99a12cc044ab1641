package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/magabrotheeeer/inventory-console/internal/models"
)

// productsEnvelope ожидаемая форма ответа GET /products.
// Отсутствующее поле products — определённый пустой результат,
// а не ошибка декодирования.
type productsEnvelope struct {
	Products []models.Product `json:"products"`
}

type productEnvelope struct {
	Product models.Product `json:"product"`
}

// ListProducts возвращает все товары каталога.
// Ответ без поля products даёт пустую коллекцию.
func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	const op = "backend.ListProducts"

	req, err := c.newRequest(ctx, http.MethodGet, "/products", nil, "")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	resp, err := c.do(op, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		return nil, decodeAPIError(resp)
	}

	var envelope productsEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", op, err)
	}
	if envelope.Products == nil {
		return []models.Product{}, nil
	}
	return envelope.Products, nil
}

// GetProduct возвращает один товар по id.
// Неизвестный id превращается в ErrProductNotFound.
func (c *Client) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	const op = "backend.GetProduct"

	req, err := c.newRequest(ctx, http.MethodGet, "/products/"+url.PathEscape(id), nil, "")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	resp, err := c.do(op, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%s: %w", op, ErrProductNotFound)
	}
	if !is2xx(resp.StatusCode) {
		return nil, decodeAPIError(resp)
	}

	var envelope productEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", op, err)
	}
	return &envelope.Product, nil
}

// CreateProduct создаёт товар, кодируя поля формы и изображение
// в multipart form data. Валидация полей выполняется выше,
// в сервисе каталога, до любого сетевого вызова.
func (c *Client) CreateProduct(ctx context.Context, form models.ProductForm, image *models.ImageUpload) (*models.Product, error) {
	const op = "backend.CreateProduct"
	return c.submitProduct(ctx, op, http.MethodPost, "/products", form, image)
}

// UpdateProduct обновляет товар. Изображение необязательно:
// без него сервер сохраняет прежнее.
func (c *Client) UpdateProduct(ctx context.Context, id string, form models.ProductForm, image *models.ImageUpload) (*models.Product, error) {
	const op = "backend.UpdateProduct"
	return c.submitProduct(ctx, op, http.MethodPut, "/products/"+url.PathEscape(id), form, image)
}

// DeleteProduct удаляет товар по id. Подтверждение намерения —
// забота страницы, клиент просто выполняет запрос.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	const op = "backend.DeleteProduct"

	req, err := c.newRequest(ctx, http.MethodDelete, "/products/"+url.PathEscape(id), nil, "")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	resp, err := c.do(op, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", op, ErrProductNotFound)
	}
	if !is2xx(resp.StatusCode) {
		return decodeAPIError(resp)
	}
	return nil
}

func (c *Client) submitProduct(ctx context.Context, op, method, path string, form models.ProductForm, image *models.ImageUpload) (*models.Product, error) {
	body, contentType, err := encodeProductForm(form, image)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	req, err := c.newRequest(ctx, method, path, body, contentType)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	resp, err := c.do(op, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%s: %w", op, ErrProductNotFound)
	}
	if !is2xx(resp.StatusCode) {
		return nil, decodeAPIError(resp)
	}

	var envelope productEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", op, err)
	}
	return &envelope.Product, nil
}

func encodeProductForm(form models.ProductForm, image *models.ImageUpload) (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fields := map[string]string{
		"name":        form.Name,
		"sku":         form.SKU,
		"category":    form.Category,
		"quantity":    form.Quantity,
		"price":       strconv.FormatFloat(form.Price, 'f', -1, 64),
		"description": form.Description,
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, "", err
		}
	}

	if image != nil {
		part, err := writer.CreateFormFile("image", image.Filename)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, image.Content); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return &buf, writer.FormDataContentType(), nil
}
