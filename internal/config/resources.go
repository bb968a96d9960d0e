// internal/config/resources.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrMissingResource — обязательный файл ресурса не найден.
var ErrMissingResource = errors.New("missing resource")

// ResourceFiles перечисляет все файлы, без которых игра не запускается:
// спрайты, фоны уровней, шрифты и звуки.
func ResourceFiles(backgrounds []string) []string {
	files := make([]string, 0, len(ImageKeys)+len(backgrounds)+len(FontFiles)+len(SoundFiles))
	for _, key := range ImageKeys {
		files = append(files, ImageFile(key))
	}
	for _, key := range backgrounds {
		files = append(files, ImageFile(key))
	}
	for _, f := range FontFiles {
		files = append(files, f)
	}
	for _, f := range SoundFiles {
		files = append(files, f)
	}
	sort.Strings(files)
	return files
}

// CheckResources проверяет, что все файлы на месте, и перечисляет
// отсутствующие в одной ошибке.
func CheckResources(dir string, backgrounds []string) error {
	var missing []string
	for _, f := range ResourceFiles(backgrounds) {
		if _, err := os.Stat(filepath.Join(dir, f)); err != nil {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w in %s: %s", ErrMissingResource, dir, strings.Join(missing, ", "))
	}
	return nil
}
