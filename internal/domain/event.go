package domain

import (
	"context"
	"time"
)

// Mode describes how an event is held. The set of known values is open: any
// non-empty string is preserved as-is so listings from external organizers are
// not rejected, but the known constants should be preferred.
type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
	ModeHybrid  Mode = "hybrid"
)

// Known reports whether the mode is one of the predefined variants.
func (m Mode) Known() bool {
	switch m {
	case ModeOnline, ModeOffline, ModeHybrid:
		return true
	}
	return false
}

// Event represents a single listed happening.
// Date is stored canonically as YYYY-MM-DD and Time as 24-hour HH:MM; both are
// normalized by the event service before every write. Slug is derived from
// Title and unique across all events.
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Overview    string    `json:"overview"`
	Image       string    `json:"image"`
	Venue       string    `json:"venue"`
	Location    string    `json:"location"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Mode        Mode      `json:"mode"`
	Audience    string    `json:"audience"`
	Agenda      []string  `json:"agenda"`
	Organizer   string    `json:"organizer"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EventUpdate carries the mutable fields for a partial event update. Nil
// pointers and nil slices leave the persisted value unchanged.
type EventUpdate struct {
	Title       *string
	Description *string
	Overview    *string
	Image       *string
	Venue       *string
	Location    *string
	Date        *string
	Time        *string
	Mode        *Mode
	Audience    *string
	Agenda      []string
	Organizer   *string
	Tags        []string
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id string) error
	// ExistsByID reports whether an event with the given id exists. Used as the
	// pre-write referential guard for bookings.
	ExistsByID(ctx context.Context, id string) (bool, error)
}

// EventService defines the event write path: every create and update runs the
// full normalization and validation pass before anything is persisted.
type EventService interface {
	CreateEvent(ctx context.Context, event *Event) error
	GetEventBySlug(ctx context.Context, slug string) (*Event, error)
	ListEvents(ctx context.Context) ([]*Event, error)
	UpdateEvent(ctx context.Context, eventID string, update *EventUpdate) (*Event, error)
	DeleteEvent(ctx context.Context, eventID string) error
}
