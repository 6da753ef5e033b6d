package repository

import (
	"context"

	"github.com/listing-service/internal/domain"
)

// StreamRepository - поток событий об изменении объявлений (Redis Streams).
// Сообщение несет JSON в поле "data".
type StreamRepository interface {
	PublishToStream(ctx context.Context, stream string, data interface{}) error

	// CreateConsumerGroup идемпотентна: существующая группа не считается ошибкой
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// ConsumeBatch читает до count еще не доставленных сообщений; пустой результат без ошибки при таймауте
	ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error)

	AckMessage(ctx context.Context, stream, group, messageID string) error
	AckMessages(ctx context.Context, stream, group string, messageIDs []string) error
}
