package redis_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/listing-service/internal/domain"
	"github.com/listing-service/internal/domain/repository"
	redisRepo "github.com/listing-service/internal/repository/redis"
)

const (
	testStream = "test:stream:listing:events"
	testGroup  = "test-group"
)

// getTestRedisClient creates a Redis client backed by an in-process miniredis
func getTestRedisClient(t *testing.T) *redis.Client {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func newRepo(client *redis.Client) repository.StreamRepository {
	return redisRepo.NewStreamRepository(client, 50*time.Millisecond, zap.NewNop())
}

// TestStreamRepository_CreateConsumerGroup tests consumer group creation
func TestStreamRepository_CreateConsumerGroup(t *testing.T) {
	client := getTestRedisClient(t)
	repo := newRepo(client)
	ctx := context.Background()

	err := repo.CreateConsumerGroup(ctx, testStream, testGroup)
	require.NoError(t, err)

	// XPENDING fails with NOGROUP when the group is missing
	pending, err := client.XPending(ctx, testStream, testGroup).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(0), pending.Count)

	// Creating again should not error (BUSYGROUP handled)
	err = repo.CreateConsumerGroup(ctx, testStream, testGroup)
	assert.NoError(t, err)
}

// TestStreamRepository_PublishToStream tests message publishing
func TestStreamRepository_PublishToStream(t *testing.T) {
	client := getTestRedisClient(t)
	repo := newRepo(client)
	ctx := context.Background()

	listing := &domain.Listing{ID: 7, UserID: 2, PlaceID: "place-1"}
	event := domain.NewListingEvent(domain.ListingCreated, listing, time.Now())

	require.NoError(t, repo.PublishToStream(ctx, testStream, event))

	messages, err := client.XRange(ctx, testStream, "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, messages, 1)

	dataStr, ok := messages[0].Values["data"].(string)
	require.True(t, ok)

	var received domain.ListingEvent
	require.NoError(t, json.Unmarshal([]byte(dataStr), &received))
	assert.Equal(t, event.EventID, received.EventID)
	assert.Equal(t, domain.ListingCreated, received.Type)
	assert.Equal(t, int64(7), received.ListingID)
}

// TestStreamRepository_ConsumeBatch tests reading through a consumer group
func TestStreamRepository_ConsumeBatch(t *testing.T) {
	client := getTestRedisClient(t)
	repo := newRepo(client)
	ctx := context.Background()

	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, testGroup))

	for i := int64(1); i <= 3; i++ {
		event := domain.NewListingEvent(domain.ListingUpdated, &domain.Listing{ID: i}, time.Now())
		require.NoError(t, repo.PublishToStream(ctx, testStream, event))
	}

	batch, err := repo.ConsumeBatch(ctx, testStream, testGroup, "consumer-1", 2)
	require.NoError(t, err)
	assert.Len(t, batch, 2)

	batch2, err := repo.ConsumeBatch(ctx, testStream, testGroup, "consumer-1", 10)
	require.NoError(t, err)
	require.Len(t, batch2, 1)

	var event domain.ListingEvent
	require.NoError(t, json.Unmarshal([]byte(batch2[0].Data), &event))
	assert.Equal(t, int64(3), event.ListingID)
}

// TestStreamRepository_ConsumeBatch_Empty returns no messages after the block timeout
func TestStreamRepository_ConsumeBatch_Empty(t *testing.T) {
	client := getTestRedisClient(t)
	repo := newRepo(client)
	ctx := context.Background()

	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, testGroup))

	batch, err := repo.ConsumeBatch(ctx, testStream, testGroup, "consumer-1", 10)
	assert.NoError(t, err)
	assert.Empty(t, batch)
}

// TestStreamRepository_AckMessages tests message acknowledgment
func TestStreamRepository_AckMessages(t *testing.T) {
	client := getTestRedisClient(t)
	repo := newRepo(client)
	ctx := context.Background()

	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, testGroup))
	for i := int64(1); i <= 2; i++ {
		event := domain.NewListingEvent(domain.ListingDeleted, &domain.Listing{ID: i}, time.Now())
		require.NoError(t, repo.PublishToStream(ctx, testStream, event))
	}

	batch, err := repo.ConsumeBatch(ctx, testStream, testGroup, "consumer-1", 10)
	require.NoError(t, err)
	require.Len(t, batch, 2)

	pending, err := client.XPending(ctx, testStream, testGroup).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(2), pending.Count)

	require.NoError(t, repo.AckMessage(ctx, testStream, testGroup, batch[0].ID))
	require.NoError(t, repo.AckMessages(ctx, testStream, testGroup, []string{batch[1].ID}))

	pending, err = client.XPending(ctx, testStream, testGroup).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(0), pending.Count)

	assert.NoError(t, repo.AckMessages(ctx, testStream, testGroup, nil))
}

// TestStreamRepository_ConsumeBatch_MissingPayload surfaces entries without a data field as empty messages
func TestStreamRepository_ConsumeBatch_MissingPayload(t *testing.T) {
	client := getTestRedisClient(t)
	repo := newRepo(client)
	ctx := context.Background()

	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, testGroup))
	require.NoError(t, client.XAdd(ctx, &redis.XAddArgs{
		Stream: testStream,
		Values: map[string]interface{}{"other": "x"},
	}).Err())

	batch, err := repo.ConsumeBatch(ctx, testStream, testGroup, "consumer-1", 10)
	require.NoError(t, err)
	require.Len(t, batch, 1)
	assert.NotEmpty(t, batch[0].ID)
	assert.Empty(t, batch[0].Data)
}
