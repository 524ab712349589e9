package record

import (
	"time"

	"github.com/asaidimu/go-events"
)

// EventType defines the possible lifecycle event types for record operations.
type EventType string

const (
	RecordCreateStart   EventType = "record:create:start"
	RecordCreateSuccess EventType = "record:create:success"
	RecordCreateFailed  EventType = "record:create:failed"
	RecordSaveStart     EventType = "record:save:start"
	RecordSaveSuccess   EventType = "record:save:success"
	RecordSaveFailed    EventType = "record:save:failed"
	RecordDeleteStart   EventType = "record:delete:start"
	RecordDeleteSuccess EventType = "record:delete:success"
	RecordDeleteFailed  EventType = "record:delete:failed"
	RecordQueryStart    EventType = "record:query:start"
	RecordQuerySuccess  EventType = "record:query:success"
	RecordQueryFailed   EventType = "record:query:failed"
)

// Event is the payload published on the lifecycle bus.
type Event struct {
	Type       EventType     `json:"type"`
	Operation  string        `json:"operation"`
	Collection string        `json:"collection"`
	Key        string        `json:"key,omitempty"`
	Error      *string       `json:"error,omitempty"`
	Timestamp  time.Time     `json:"timestamp"`
	Duration   time.Duration `json:"duration"`
}

// Bus carries record lifecycle events.
type Bus = events.TypedEventBus[Event]

// NewBus builds a lifecycle event bus with default settings.
func NewBus() (*Bus, error) {
	return events.NewTypedEventBus[Event](events.DefaultConfig())
}

func createEvent(eventType EventType, operation, collection, key string, errStr *string, start time.Time) Event {
	return Event{
		Type:       eventType,
		Operation:  operation,
		Collection: collection,
		Key:        key,
		Error:      errStr,
		Timestamp:  start,
		Duration:   time.Since(start),
	}
}
