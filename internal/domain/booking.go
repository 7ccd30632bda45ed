package domain

import (
	"context"
	"time"
)

// Booking represents one email's RSVP to one event.
// EventID is a plain reference with no store-level foreign key; the booking
// service verifies the event exists before every write. Email is stored
// lowercased and trimmed. Duplicate (event, email) pairs are allowed.
// swagger:model Booking
type Booking struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBooking returns a new Booking. ID is set by the repository on create.
func NewBooking(eventID, email string, createdAt, updatedAt time.Time) *Booking {
	return &Booking{
		EventID:   eventID,
		Email:     email,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// BookingRepository defines storage operations for bookings.
type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context) ([]*Booking, error)
	ListByEventID(ctx context.Context, eventID string) ([]*Booking, error)
	UpdateEmail(ctx context.Context, id, email string) (*Booking, error)
	Delete(ctx context.Context, id string) error
}

// BookingService defines the booking write path. CreateBooking and UpdateEmail
// run the referential and email-format guards before anything is persisted.
type BookingService interface {
	CreateBooking(ctx context.Context, eventID, email string) (*Booking, error)
	ListBookings(ctx context.Context, eventID string) ([]*Booking, error)
	UpdateEmail(ctx context.Context, bookingID, email string) (*Booking, error)
	DeleteBooking(ctx context.Context, bookingID string) error
}
