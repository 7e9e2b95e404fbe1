package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gofrs/uuid/v5"
)

type Kind string

const (
	KindCreated Kind = "created"
	KindUpdated Kind = "updated"
	KindDeleted Kind = "deleted"
)

type Entity string

const (
	EntityTransaction Entity = "transaction"
	EntityAccount     Entity = "account"
)

// Event notifies listeners that a record changed. It carries the id only;
// consumers read the record back from the API.
type Event struct {
	Kind       Kind      `json:"kind"`
	Entity     Entity    `json:"entity"`
	ID         uuid.UUID `json:"id"`
	OccurredAt time.Time `json:"occurredAt"`
}

func NewEvent(kind Kind, entity Entity, id uuid.UUID) Event {
	return Event{
		Kind:       kind,
		Entity:     entity,
		ID:         id,
		OccurredAt: time.Now().UTC(),
	}
}

// RoutingKey is "<entity>.<kind>", e.g. "transaction.created".
func (e Event) RoutingKey() string {
	return string(e.Entity) + "." + string(e.Kind)
}

func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// Publisher delivers change events.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error {
	return nil
}
