// internal/config/env.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	ResourceDirEnv     = "MATH_DEFENSE_RESOURCES"
	DefaultResourceDir = "./resources"

	SeedEnv  = "MATH_DEFENSE_SEED"  // фиксированный сид генератора волн
	PprofEnv = "MATH_DEFENSE_PPROF" // адрес pprof, например localhost:6060
)

// LoadEnv подгружает .env из рабочей директории, если он есть.
// Отсутствие файла — не ошибка.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var present []string
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		present = append(present, f)
	}
	if len(present) == 0 {
		return nil
	}
	return godotenv.Load(present...)
}

// ResourceDir возвращает директорию ресурсов из окружения или ./resources.
func ResourceDir() string {
	if dir := os.Getenv(ResourceDirEnv); dir != "" {
		return dir
	}
	return DefaultResourceDir
}

// Seed возвращает сид из окружения; 0 — сид от текущего времени.
func Seed() (int64, error) {
	raw := os.Getenv(SeedEnv)
	if raw == "" {
		return 0, nil
	}
	seed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", SeedEnv, raw, err)
	}
	return seed, nil
}

// PprofAddr — адрес для net/http/pprof; пустой — профилировщик выключен.
func PprofAddr() string {
	return os.Getenv(PprofEnv)
}
