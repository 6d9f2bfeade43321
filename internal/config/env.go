package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	ferrors "github.com/zzft/ftsite/internal/foundation/errors"
)

var envFiles = []string{".env", ".env.local"}

// loadEnvFiles loads the first existing .env file. Variables already set in
// the process environment are not overridden.
func loadEnvFiles() error {
	for _, path := range envFiles {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return ferrors.WrapError(err, ferrors.CategoryConfig, "failed to load env file").
				WithContext("path", path).
				Build()
		}
		slog.Debug("Loaded environment variables", "path", path)
		return nil
	}
	return nil
}
