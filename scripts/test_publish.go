//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/listing-service/internal/domain"
	"github.com/listing-service/internal/usecase"
	"github.com/redis/go-redis/v9"
)

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	listingID := flag.Int64("listing", 1, "listing id carried by the event")
	eventType := flag.String("type", string(domain.ListingUpdated), "listing.created | listing.updated | listing.deleted")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	event := domain.NewListingEvent(domain.ListingEventType(*eventType), &domain.Listing{
		ID:      *listingID,
		UserID:  1,
		PlaceID: "test-place",
	}, time.Now())
	if !event.Valid() {
		log.Fatalf("Invalid event type %q", *eventType)
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	generation, err := counter(ctx, client)
	if err != nil {
		log.Fatalf("Failed to read nearby generation: %v", err)
	}

	// Публикация в стрим
	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: domain.StreamListingEvents,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Event published\n")
	fmt.Printf("   Stream: %s\n", domain.StreamListingEvents)
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Event ID: %s\n", event.EventID)
	fmt.Printf("   Listing: %d (%s)\n", event.ListingID, event.Type)

	// Воркер увеличивает счетчик поколения кеша "рядом" после обработки
	fmt.Printf("\nWaiting for the worker (nearby generation %d)...\n", generation)

	timeout := time.After(30 * time.Second)
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			fmt.Println("Timeout waiting for the worker")
			return
		case <-ticker.C:
			current, err := counter(ctx, client)
			if err != nil {
				continue
			}
			if current > generation {
				fmt.Printf("Processed: nearby generation %d -> %d\n", generation, current)
				return
			}
		}
	}
}

func counter(ctx context.Context, client *redis.Client) (int64, error) {
	n, err := client.Get(ctx, usecase.NearbyGenerationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return n, err
}
