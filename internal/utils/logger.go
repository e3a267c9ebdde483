package utils

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var Logger = logrus.New()

// serviceHook stamps every entry with the service name as a structured
// field, so aggregators can filter on it instead of parsing messages.
type serviceHook struct {
	service string
}

func (h *serviceHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *serviceHook) Fire(entry *logrus.Entry) error {
	entry.Data["service"] = h.service
	return nil
}

// InitLogger configures the process-wide logger. Level comes from LOG_LEVEL
// and defaults to info.
func InitLogger(service string) {
	Logger.SetOutput(os.Stdout)
	Logger.SetLevel(logLevelFromEnv())
	Logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	Logger.AddHook(&serviceHook{service: service})
}

func logLevelFromEnv() logrus.Level {
	raw := os.Getenv("LOG_LEVEL")
	if raw == "" {
		return logrus.InfoLevel
	}
	level, err := logrus.ParseLevel(strings.ToLower(raw))
	if err != nil {
		Logger.Warnf("Unknown LOG_LEVEL %q, using info", raw)
		return logrus.InfoLevel
	}
	return level
}
