package listing

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/listing-service/internal/domain"
	"github.com/listing-service/internal/domain/repository"
	"github.com/listing-service/internal/usecase"
	"github.com/listing-service/internal/worker"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

const (
	maxBatchSize    = 20                     // максимум сообщений за раз
	emptyQueueSleep = 100 * time.Millisecond // пауза если очередь пуста
	errorSleep      = time.Second            // пауза после ошибки чтения
	retryDelay      = 200 * time.Millisecond
)

// ListingEventWorker обрабатывает события объявлений из stream:listing:events:
// пишет журнал активности и сбрасывает кеш объявления и выдачи "рядом"
type ListingEventWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	cacheRepo    repository.CacheRepository
	activity     *zap.Logger
	consumerName string
	maxRetries   int
	retryDelay   time.Duration
}

// NewListingEventWorker создает новый ListingEventWorker.
// activity - файловый логгер журнала активности объявлений
func NewListingEventWorker(
	streamRepo repository.StreamRepository,
	cacheRepo repository.CacheRepository,
	activity *zap.Logger,
	consumerGroup string,
	maxRetries int,
	logger *zap.Logger,
) *ListingEventWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	if activity == nil {
		activity = zap.NewNop()
	}
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &ListingEventWorker{
		BaseWorker:   worker.NewBaseWorker("listing-events", consumerGroup, logger),
		streamRepo:   streamRepo,
		cacheRepo:    cacheRepo,
		activity:     activity,
		consumerName: consumerName,
		maxRetries:   maxRetries,
		retryDelay:   retryDelay,
	}
}

// Start запускает воркер
func (w *ListingEventWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting ListingEventWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("max_batch_size", maxBatchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamListingEvents, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.processBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				w.Pause(ctx, errorSleep)
				continue
			}

			if processed == 0 {
				w.Pause(ctx, emptyQueueSleep)
			}
		}
	}
}

// processBatch читает и обрабатывает batch сообщений.
// Возвращает количество прочитанных сообщений
func (w *ListingEventWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamListingEvents,
		w.ConsumerGroup(),
		w.consumerName,
		maxBatchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil
	}

	logger.Debug("Processing batch", zap.Int("message_count", len(messages)))

	messageIDs := make([]string, 0, len(messages))
	for _, msg := range messages {
		event, err := parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			// ACK битое сообщение чтобы не застревало
			_ = w.streamRepo.AckMessage(ctx, domain.StreamListingEvents, w.ConsumerGroup(), msg.ID)
			continue
		}

		if err := w.handleWithRetry(ctx, event); err != nil {
			logger.Error("Dropping listing event after retries",
				zap.String("message_id", msg.ID),
				zap.String("event_id", event.EventID.String()),
				zap.Int64("listing_id", event.ListingID),
				zap.Error(err))
		}
		messageIDs = append(messageIDs, msg.ID)
	}

	if len(messageIDs) > 0 {
		if err := w.streamRepo.AckMessages(ctx, domain.StreamListingEvents, w.ConsumerGroup(), messageIDs); err != nil {
			logger.Error("Failed to ack messages", zap.Error(err))
			// Не критично - сообщения будут переобработаны
		}
	}

	return len(messages), nil
}

func (w *ListingEventWorker) handleWithRetry(ctx context.Context, event *domain.ListingEvent) error {
	backoff := retry.WithMaxRetries(uint64(w.maxRetries), retry.NewConstant(w.retryDelay))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := w.handleEvent(ctx, event); err != nil {
			w.Logger().Warn("Listing event failed, retrying",
				zap.String("event_id", event.EventID.String()),
				zap.Error(err))
			return retry.RetryableError(err)
		}
		return nil
	})
}

// handleEvent пишет строку журнала активности и сбрасывает кеш
func (w *ListingEventWorker) handleEvent(ctx context.Context, event *domain.ListingEvent) error {
	if err := w.cacheRepo.Delete(ctx, usecase.ListingCacheKey(event.ListingID)); err != nil {
		return fmt.Errorf("failed to drop listing cache: %w", err)
	}
	if _, err := w.cacheRepo.Incr(ctx, usecase.NearbyGenerationKey); err != nil {
		return fmt.Errorf("failed to bump nearby generation: %w", err)
	}

	w.activity.Info("Listing activity",
		zap.String("event_id", event.EventID.String()),
		zap.String("type", string(event.Type)),
		zap.Int64("listing_id", event.ListingID),
		zap.Int64("user_id", event.UserID),
		zap.String("place_id", event.PlaceID),
		zap.Time("occurred_at", event.OccurredAt))

	return nil
}

// parseMessage парсит сообщение из стрима в ListingEvent
func parseMessage(msg domain.StreamMessage) (*domain.ListingEvent, error) {
	if msg.Data == "" {
		return nil, fmt.Errorf("missing or invalid 'data' field")
	}

	var event domain.ListingEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if !event.Valid() {
		return nil, fmt.Errorf("invalid event: type %q, listing %d", event.Type, event.ListingID)
	}

	return &event, nil
}
