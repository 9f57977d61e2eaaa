// Package sl содержит мелкие помощники для логгера slog.
package sl

import "log/slog"

// Err оборачивает ошибку в slog.Attr с ключом "error",
// чтобы все обработчики логировали ошибки единообразно.
//
// Пример:
//
//	log.Error("failed to save document", sl.Err(err))
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}
