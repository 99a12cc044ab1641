// Package session хранит текущую сессию оператора консоли.
//
// Store держит сессию в памяти и сохраняет её через порт Storage —
// единственный сериализованный объект под одним ключом. Реализации
// порта: файл на диске и redis. Ни один другой компонент не пишет
// в хранилище напрямую.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/magabrotheeeer/inventory-console/internal/models"
)

// Storage порт для сохранения единственной сессии оператора.
// Load возвращает (nil, nil), когда сохранённой сессии нет.
type Storage interface {
	Load(ctx context.Context) (*models.Session, error)
	Save(ctx context.Context, s *models.Session) error
	Clear(ctx context.Context) error
}

// FileStorage реализация Storage поверх одного JSON-файла.
type FileStorage struct {
	path string
}

// NewFileStorage создаёт файловое хранилище сессии по указанному пути.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Load читает сессию из файла. Отсутствие файла — не ошибка.
func (f *FileStorage) Load(_ context.Context) (*models.Session, error) {
	const op = "session.FileStorage.Load"

	raw, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var s models.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &s, nil
}

// Save перезаписывает файл сессии. Файл читается только консолью,
// права 0600.
func (f *FileStorage) Save(_ context.Context, s *models.Session) error {
	const op = "session.FileStorage.Save"

	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := os.WriteFile(f.path, raw, 0o600); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Clear удаляет файл сессии. Отсутствие файла — не ошибка.
func (f *FileStorage) Clear(_ context.Context) error {
	const op = "session.FileStorage.Clear"

	err := os.Remove(f.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
