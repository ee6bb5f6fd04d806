package safe

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/secmon-lab/issueflow/pkg/utils/logging"
)

// Close closes closer and only logs a failure. io.EOF is not a failure.
func Close(closer io.Closer) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil && !errors.Is(err, io.EOF) {
		logging.Default().Warn("failed to close resource", slog.Any("error", err))
	}
}

// Remove deletes a leftover file and only logs a failure. A file already gone is fine.
func Remove(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logging.Default().Warn("failed to remove file", slog.String("path", path), slog.Any("error", err))
	}
}
