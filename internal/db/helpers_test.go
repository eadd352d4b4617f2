package db

import (
	"io"

	"github.com/Project-Sylos/Mirage/internal/locale"
	"github.com/sirupsen/logrus"
)

func testLocales() locale.Set {
	return locale.Set{
		"en": locale.Definition{
			"title": "English",
			"person": map[string]any{
				"first_name": []any{"Ada", "Grace"},
			},
		},
	}
}

func nullLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
