package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/magabrotheeeer/inventory-console/internal/lib/sl"
	"github.com/magabrotheeeer/inventory-console/internal/models"
)

// AuthAPI описывает интерфейс вызовов аутентификации внешнего API.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Register(ctx context.Context, name, email, password string) (*models.Session, error)
}

// Store хранилище текущей сессии оператора. Единственное разделяемое
// изменяемое состояние консоли, все обращения под мьютексом.
type Store struct {
	mu      sync.RWMutex
	current *models.Session

	api     AuthAPI
	storage Storage
	log     *slog.Logger
}

// NewStore создаёт Store и восстанавливает сессию из хранилища до
// первого решения о рендеринге. Наличие сохранённой сессии считается
// аутентификацией: консоль доверяет кэшу, пока внешний API не откажет.
func NewStore(ctx context.Context, api AuthAPI, storage Storage, log *slog.Logger) (*Store, error) {
	const op = "session.NewStore"
	log = log.With(slog.String("op", op))

	s := &Store{api: api, storage: storage, log: log}

	saved, err := storage.Load(ctx)
	if err != nil {
		return nil, err
	}
	if saved != nil {
		s.current = saved
		log.Info("session rehydrated",
			slog.String("email", saved.Email),
			slog.String("role", string(saved.Role)))
		if claims, err := ParseClaims(saved.Token); err == nil && claims.ExpiresAt != nil {
			log.Info("token expiry", slog.Time("expires_at", claims.ExpiresAt.Time))
		}
	}
	return s, nil
}

// Login аутентифицирует оператора и заменяет текущую сессию.
// Каждый успешный вход перезаписывает сохранённое состояние.
func (s *Store) Login(ctx context.Context, email, password string) (*models.Session, error) {
	session, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	s.replace(ctx, session)
	return session, nil
}

// Register создаёт учётную запись и заменяет текущую сессию.
func (s *Store) Register(ctx context.Context, name, email, password string) (*models.Session, error) {
	session, err := s.api.Register(ctx, name, email, password)
	if err != nil {
		return nil, err
	}
	s.replace(ctx, session)
	return session, nil
}

// Logout очищает сессию в памяти и в хранилище. Никогда не ошибается:
// сбой хранилища логируется, оператор в любом случае разлогинен.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := s.storage.Clear(ctx); err != nil {
		s.log.Error("failed to clear persisted session", sl.Err(err))
	}
}

// Current возвращает копию текущей сессии, nil если её нет.
func (s *Store) Current() *models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	copied := *s.current
	return &copied
}

// IsAuthenticated сообщает, есть ли текущая сессия.
func (s *Store) IsAuthenticated() bool {
	return s.Current() != nil
}

// Token реализует backend.TokenSource: bearer-токен текущей сессии,
// пустая строка без сессии.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return ""
	}
	return s.current.Token
}

func (s *Store) replace(ctx context.Context, session *models.Session) {
	s.mu.Lock()
	s.current = session
	s.mu.Unlock()

	if err := s.storage.Save(ctx, session); err != nil {
		// Сессия остаётся рабочей в памяти, но перезапуск её потеряет.
		s.log.Error("failed to persist session", sl.Err(err))
	}
}
