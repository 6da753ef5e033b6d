package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names
const (
	StreamListingEvents = "stream:listing:events"
)

// ListingEventType - тип события объявления
type ListingEventType string

const (
	ListingCreated ListingEventType = "listing.created"
	ListingUpdated ListingEventType = "listing.updated"
	ListingDeleted ListingEventType = "listing.deleted"
)

// ListingEvent - событие жизненного цикла объявления
type ListingEvent struct {
	EventID    uuid.UUID        `json:"event_id"`
	Type       ListingEventType `json:"type"`
	ListingID  int64            `json:"listing_id"`
	UserID     int64            `json:"user_id"`
	PlaceID    string           `json:"place_id"`
	OccurredAt time.Time        `json:"occurred_at"`
}

// NewListingEvent создает событие для объявления
func NewListingEvent(eventType ListingEventType, listing *Listing, at time.Time) ListingEvent {
	return ListingEvent{
		EventID:    uuid.New(),
		Type:       eventType,
		ListingID:  listing.ID,
		UserID:     listing.UserID,
		PlaceID:    listing.PlaceID,
		OccurredAt: at.UTC(),
	}
}

// Valid проверяет обязательные поля события
func (e *ListingEvent) Valid() bool {
	switch e.Type {
	case ListingCreated, ListingUpdated, ListingDeleted:
	default:
		return false
	}
	return e.ListingID > 0
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
