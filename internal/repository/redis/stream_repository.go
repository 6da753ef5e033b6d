package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/listing-service/internal/domain"
	"github.com/listing-service/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// payloadField - поле записи стрима с JSON события
const payloadField = "data"

type streamRepository struct {
	client      *redis.Client
	readTimeout time.Duration
	logger      *zap.Logger
}

// NewStreamRepository - readTimeout задает, сколько XREADGROUP ждет новых записей; отрицательное значение - не ждать
func NewStreamRepository(client *redis.Client, readTimeout time.Duration, logger *zap.Logger) repository.StreamRepository {
	return &streamRepository{
		client:      client,
		readTimeout: readTimeout,
		logger:      logger.Named("stream"),
	}
}

func (r *streamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode stream payload: %w", err)
	}

	id, err := r.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]interface{}{payloadField: string(payload)},
	}).Result()
	if err != nil {
		r.logger.Error("XADD failed", zap.String("stream", stream), zap.Error(err))
		return fmt.Errorf("publish to %s: %w", stream, err)
	}

	r.logger.Debug("Published", zap.String("stream", stream), zap.String("message_id", id))
	return nil
}

// CreateConsumerGroup - группа читает только записи, добавленные после ее создания; MKSTREAM создает пустой стрим
func (r *streamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	err := r.client.XGroupCreateMkStream(ctx, stream, group, "$").Err()
	switch {
	case err == nil:
		r.logger.Info("Consumer group created", zap.String("stream", stream), zap.String("group", group))
		return nil
	case strings.HasPrefix(err.Error(), "BUSYGROUP"):
		return nil
	default:
		return fmt.Errorf("create consumer group %s on %s: %w", group, stream, err)
	}
}

func (r *streamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error) {
	streams, err := r.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    group,
		Consumer: consumer,
		Streams:  []string{stream, ">"},
		Count:    int64(count),
		Block:    r.readTimeout,
	}).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s as %s/%s: %w", stream, group, consumer, err)
	}

	var messages []domain.StreamMessage
	for _, s := range streams {
		for _, entry := range s.Messages {
			messages = append(messages, r.toMessage(entry))
		}
	}
	return messages, nil
}

// toMessage - запись без поля data отдается с пустым Data, воркер подтвердит ее как битую
func (r *streamRepository) toMessage(entry redis.XMessage) domain.StreamMessage {
	payload, ok := entry.Values[payloadField].(string)
	if !ok {
		r.logger.Warn("Stream entry without payload", zap.String("message_id", entry.ID))
	}
	return domain.StreamMessage{ID: entry.ID, Data: payload}
}

func (r *streamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	return r.AckMessages(ctx, stream, group, []string{messageID})
}

func (r *streamRepository) AckMessages(ctx context.Context, stream, group string, messageIDs []string) error {
	if len(messageIDs) == 0 {
		return nil
	}

	if err := r.client.XAck(ctx, stream, group, messageIDs...).Err(); err != nil {
		r.logger.Error("XACK failed",
			zap.String("stream", stream),
			zap.Strings("message_ids", messageIDs),
			zap.Error(err),
		)
		return fmt.Errorf("ack %d messages on %s: %w", len(messageIDs), stream, err)
	}
	return nil
}
