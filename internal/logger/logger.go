// логгер приложения: строчный лог в файл, отдельно от stdout
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// New открывает (перезаписывает) файл лога и возвращает логгер, привязанный к запуску через run_id.
// Вызывающий код обязан закрыть возвращённый io.Closer
func New(path string) (*slog.Logger, io.Closer, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return NewWithWriter(file), file, nil
}

// NewWithWriter нужен тестам и тем, кто хочет писать лог не в файл
func NewWithWriter(w io.Writer) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(handler).With("run_id", uuid.NewString())
}

// Discard - логгер, который ничего не пишет
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
