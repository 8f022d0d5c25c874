package models

// Operations recorded in entity events.
const (
	OperationCreated = "created"
	OperationUpdated = "updated"
	OperationDeleted = "deleted"
)

// EntityEvent describes a committed change to an entity.
type EntityEvent struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier for the event.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix timestamp (in seconds) of the change.
	Entity    string `json:"entity"`    // Entity is the table name of the changed entity.
	EntityID  string `json:"entity_id"` // EntityID identifies the changed row.
	Operation string `json:"operation"` // Operation is one of created, updated or deleted.
	ActorID   string `json:"actor_id"`  // ActorID is the user that performed the change, empty for anonymous sign-ups.
}
