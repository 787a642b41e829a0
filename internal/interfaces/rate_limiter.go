package interfaces

import "context"

// ограничение частоты запросов к внешнему сервису
type RateLimiter interface {
	Wait(ctx context.Context) error
}
