package productdelete

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/inventory-console/internal/backend"
	"github.com/magabrotheeeer/inventory-console/internal/http/view"
	"github.com/magabrotheeeer/inventory-console/internal/models"
)

// MockService реализует интерфейс productdelete.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	if products, ok := args.Get(0).([]models.Product); ok {
		return products, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSessionSource реализует интерфейс productdelete.SessionSource
type MockSessionSource struct {
	mock.Mock
}

func (m *MockSessionSource) Current() *models.Session {
	args := m.Called()
	if session, ok := args.Get(0).(*models.Session); ok {
		return session
	}
	return nil
}

func TestProductDeleteHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	views, err := view.New(logger)
	require.NoError(t, err)

	catalog := []models.Product{
		{ID: "p1", Name: "Keyboard", SKU: "KB-100"},
		{ID: "p2", Name: "Mouse", SKU: "MS-200"},
	}

	tests := []struct {
		name            string
		id              string
		setupMock       func(*MockService)
		expectedStatus  int
		expectedBody    []string
		notExpectedBody []string
	}{
		{
			name: "успешное удаление перефильтровывает список без повторной загрузки",
			id:   "p1",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything).Return(catalog, nil).Once()
				m.On("Delete", mock.Anything, "p1").Return(nil)
			},
			expectedStatus:  http.StatusOK,
			expectedBody:    []string{"Product deleted.", "Mouse"},
			notExpectedBody: []string{"Keyboard"},
		},
		{
			name: "товар уже удалён параллельно",
			id:   "p1",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything).Return(catalog, nil).Once()
				m.On("Delete", mock.Anything, "p1").Return(backend.ErrProductNotFound)
			},
			expectedStatus:  http.StatusOK,
			expectedBody:    []string{"Mouse"},
			notExpectedBody: []string{"Keyboard", "Failed to delete"},
		},
		{
			name: "ошибка удаления оставляет список без изменений",
			id:   "p2",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything).Return(catalog, nil).Once()
				m.On("Delete", mock.Anything, "p2").Return(errors.New("connection refused"))
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   []string{"Failed to delete product. Try again.", "Keyboard", "Mouse"},
		},
		{
			name: "ошибка загрузки списка",
			id:   "p1",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything).Return(nil, errors.New("connection refused")).Once()
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   []string{"Failed to load products."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)
			mockSessions := new(MockSessionSource)
			mockSessions.On("Current").Return(&models.Session{ID: "u1", Role: models.RoleAdmin, Token: "tok"})

			handler := New(logger, mockService, mockSessions, views)

			req := httptest.NewRequest(http.MethodPost, "/products/delete/"+tt.id, nil)
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "req-id"))

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			for _, want := range tt.expectedBody {
				assert.Contains(t, w.Body.String(), want)
			}
			for _, unwanted := range tt.notExpectedBody {
				assert.NotContains(t, w.Body.String(), unwanted)
			}

			mockService.AssertExpectations(t)
		})
	}
}
