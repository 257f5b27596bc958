package worker

import (
	"context"
)

// Worker - фоновая задача с управляемым жизненным циклом
type Worker interface {
	// Start блокируется до остановки воркера или отмены ctx
	Start(ctx context.Context) error

	// Stop останавливает воркер
	Stop() error

	// Name возвращает имя воркера
	Name() string
}
