// internal/defs/loader.go
package defs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"math-defense/pkg/logger"

	"github.com/sirupsen/logrus"
)

// DecodeCatalog разбирает документ каталога. Чтение строгое: неизвестные
// поля, лишние данные после массива и некорректные группы — ошибка.
func DecodeCatalog(data []byte) (Catalog, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var catalog Catalog
	if err := dec.Decode(&catalog); err != nil {
		return nil, fmt.Errorf("failed to unmarshal level catalog: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to unmarshal level catalog: trailing data after levels array")
	}
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("invalid level catalog: %w", err)
	}
	// Первый уровень на первой сложности открыт всегда
	catalog[0].Unlocked[0] = true
	return catalog, nil
}

// EncodeCatalog сериализует каталог в читаемый JSON с отступами.
func EncodeCatalog(catalog Catalog) ([]byte, error) {
	data, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal level catalog: %w", err)
	}
	return append(data, '\n'), nil
}

// FileStore хранит каталог уровней (вместе с флагами открытия) в файле.
type FileStore struct {
	path string
	log  *logrus.Entry
}

// NewFileStore создаёт хранилище для файла по указанному пути.
func NewFileStore(path string) *FileStore {
	return &FileStore{
		path: path,
		log:  logger.Log.WithField("catalog", path),
	}
}

// Path возвращает путь к файлу каталога.
func (s *FileStore) Path() string {
	return s.path
}

// Load читает и разбирает каталог с диска.
func (s *FileStore) Load() (Catalog, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level catalog: %w", err)
	}
	return DecodeCatalog(data)
}

// Save перезаписывает файл каталога. Запись идёт через временный файл,
// чтобы прерванная запись не оставила повреждённый документ.
func (s *FileStore) Save(catalog Catalog) error {
	data, err := EncodeCatalog(catalog)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".levels-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp catalog file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write level catalog: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write level catalog: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace level catalog: %w", err)
	}

	s.log.Debug("Level catalog saved")
	return nil
}

// LoadOrCreate читает каталог, а при любой ошибке берёт встроенный
// и записывает его на диск. Ошибка записи только логируется.
func (s *FileStore) LoadOrCreate() Catalog {
	catalog, err := s.Load()
	if err == nil {
		s.log.WithField("levels", len(catalog)).Info("Loaded level catalog")
		return catalog
	}

	s.log.WithError(err).Warn("Level catalog unavailable, using built-in default")
	catalog = DefaultCatalog()
	if err := s.Save(catalog); err != nil {
		s.log.WithError(err).Error("Failed to write default level catalog")
	}
	return catalog
}
