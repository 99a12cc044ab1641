package session

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/inventory-console/internal/backend"
	"github.com/magabrotheeeer/inventory-console/internal/models"
)

// MockAuthAPI реализует интерфейс session.AuthAPI
type MockAuthAPI struct {
	mock.Mock
}

func (m *MockAuthAPI) Login(ctx context.Context, email, password string) (*models.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockAuthAPI) Register(ctx context.Context, name, email, password string) (*models.Session, error) {
	args := m.Called(ctx, name, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

// memoryStorage фейковая реализация порта Storage для тестов.
type memoryStorage struct {
	saved *models.Session
}

func (m *memoryStorage) Load(_ context.Context) (*models.Session, error)    { return m.saved, nil }
func (m *memoryStorage) Save(_ context.Context, s *models.Session) error    { m.saved = s; return nil }
func (m *memoryStorage) Clear(_ context.Context) error                      { m.saved = nil; return nil }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func adminSession() *models.Session {
	return &models.Session{
		ID:    "u1",
		Name:  "Alice",
		Email: "alice@example.com",
		Role:  models.RoleAdmin,
		Token: "jwt-token",
	}
}

func TestStore_LoginReplacesAndPersists(t *testing.T) {
	api := new(MockAuthAPI)
	api.On("Login", mock.Anything, "alice@example.com", "secret123").
		Return(adminSession(), nil)

	storage := &memoryStorage{}
	store, err := NewStore(context.Background(), api, storage, testLogger())
	require.NoError(t, err)

	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, store.Token())

	session, err := store.Login(context.Background(), "alice@example.com", "secret123")
	require.NoError(t, err)

	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, "jwt-token", store.Token())
	assert.Equal(t, session.Email, store.Current().Email)
	require.NotNil(t, storage.saved)
	assert.Equal(t, "alice@example.com", storage.saved.Email)

	api.AssertExpectations(t)
}

func TestStore_LoginFailureKeepsState(t *testing.T) {
	api := new(MockAuthAPI)
	api.On("Login", mock.Anything, "alice@example.com", "wrong").
		Return(nil, &backend.AuthError{Message: "wrong email or password"})

	store, err := NewStore(context.Background(), api, &memoryStorage{}, testLogger())
	require.NoError(t, err)

	_, err = store.Login(context.Background(), "alice@example.com", "wrong")

	var authErr *backend.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "wrong email or password", authErr.Message)
	assert.False(t, store.IsAuthenticated())
}

func TestStore_LogoutClearsEverything(t *testing.T) {
	storage := &memoryStorage{saved: adminSession()}
	store, err := NewStore(context.Background(), new(MockAuthAPI), storage, testLogger())
	require.NoError(t, err)
	require.True(t, store.IsAuthenticated())

	store.Logout(context.Background())

	assert.False(t, store.IsAuthenticated())
	assert.Nil(t, storage.saved)

	// Повторное восстановление после logout — неаутентифицированный запуск.
	rehydrated, err := NewStore(context.Background(), new(MockAuthAPI), storage, testLogger())
	require.NoError(t, err)
	assert.False(t, rehydrated.IsAuthenticated())
}

func TestStore_RehydratesFromStorage(t *testing.T) {
	storage := &memoryStorage{saved: adminSession()}

	store, err := NewStore(context.Background(), new(MockAuthAPI), storage, testLogger())
	require.NoError(t, err)

	require.True(t, store.IsAuthenticated())
	assert.Equal(t, models.RoleAdmin, store.Current().Role)
	assert.Equal(t, "jwt-token", store.Token())
}

func TestStore_CurrentReturnsCopy(t *testing.T) {
	storage := &memoryStorage{saved: adminSession()}
	store, err := NewStore(context.Background(), new(MockAuthAPI), storage, testLogger())
	require.NoError(t, err)

	first := store.Current()
	first.Role = models.RoleUser

	assert.Equal(t, models.RoleAdmin, store.Current().Role)
}

func TestFileStorage_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	storage := NewFileStorage(path)

	loaded, err := storage.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, loaded)

	require.NoError(t, storage.Save(context.Background(), adminSession()))

	loaded, err = storage.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "alice@example.com", loaded.Email)

	require.NoError(t, storage.Clear(context.Background()))
	require.NoError(t, storage.Clear(context.Background()), "повторная очистка не ошибка")

	loaded, err = storage.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestParseClaims(t *testing.T) {
	expires := time.Now().Add(24 * time.Hour).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, TokenClaims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	})
	signed, err := token.SignedString([]byte("remote-api-secret"))
	require.NoError(t, err)

	claims, err := ParseClaims(signed)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.Time.Equal(expires))

	_, err = ParseClaims("not-a-jwt")
	assert.Error(t, err)
}
