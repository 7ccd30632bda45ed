package controllers

import (
	"context"
	"io"
	"log/slog"

	"eventbook/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	createEventErr   error
	getBySlugErr     error
	getBySlugResult  *domain.Event
	listEventsErr    error
	listEventsResult []*domain.Event
	updateEventErr   error
	updateResult     *domain.Event
	deleteEventErr   error

	lastCreated  *domain.Event
	lastSlug     string
	lastUpdateID string
	lastUpdate   *domain.EventUpdate
	lastDeleteID string
}

func (f *fakeEventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	f.lastCreated = event
	if f.createEventErr != nil {
		return f.createEventErr
	}
	event.ID = "ev-1"
	event.Slug = "test-event"
	return nil
}

func (f *fakeEventService) GetEventBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	f.lastSlug = slug
	if f.getBySlugErr != nil {
		return nil, f.getBySlugErr
	}
	return f.getBySlugResult, nil
}

func (f *fakeEventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	if f.listEventsErr != nil {
		return nil, f.listEventsErr
	}
	return f.listEventsResult, nil
}

func (f *fakeEventService) UpdateEvent(ctx context.Context, eventID string, update *domain.EventUpdate) (*domain.Event, error) {
	f.lastUpdateID = eventID
	f.lastUpdate = update
	if f.updateEventErr != nil {
		return nil, f.updateEventErr
	}
	return f.updateResult, nil
}

func (f *fakeEventService) DeleteEvent(ctx context.Context, eventID string) error {
	f.lastDeleteID = eventID
	return f.deleteEventErr
}

// fakeBookingService implements domain.BookingService for handler tests.
type fakeBookingService struct {
	createErr    error
	createResult *domain.Booking
	listErr      error
	listResult   []*domain.Booking
	updateErr    error
	updateResult *domain.Booking
	deleteErr    error

	lastCreateEventID string
	lastCreateEmail   string
	lastListEventID   string
	lastUpdateID      string
	lastUpdateEmail   string
	lastDeleteID      string
}

func (f *fakeBookingService) CreateBooking(ctx context.Context, eventID, email string) (*domain.Booking, error) {
	f.lastCreateEventID = eventID
	f.lastCreateEmail = email
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createResult, nil
}

func (f *fakeBookingService) ListBookings(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	f.lastListEventID = eventID
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listResult, nil
}

func (f *fakeBookingService) UpdateEmail(ctx context.Context, bookingID, email string) (*domain.Booking, error) {
	f.lastUpdateID = bookingID
	f.lastUpdateEmail = email
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateResult, nil
}

func (f *fakeBookingService) DeleteBooking(ctx context.Context, bookingID string) error {
	f.lastDeleteID = bookingID
	return f.deleteErr
}

// fakeAuthService implements domain.AuthService for handler tests.
type fakeAuthService struct {
	token     string
	err       error
	lastEmail string
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (string, error) {
	f.lastEmail = email
	if f.err != nil {
		return "", f.err
	}
	return f.token, nil
}
