// pkg/logger/logger.go
package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log — глобальный логгер приложения.
// До вызова Init пишет в stderr с уровнем info, поэтому пакеты ядра
// могут логировать и в тестах.
var Log = logrus.New()

// Init настраивает глобальный логгер. Вызывается один раз в main.
func Init() {
	Log = logrus.New()

	// Уровень из LOG_LEVEL, по умолчанию info
	level, err := logrus.ParseLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// LOG_FORMAT=json — для сбора логов, иначе читаемый текст
	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	Log.SetOutput(os.Stdout)
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
