package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventbook/internal/domain"
)

const unknownEventID = "3f0e8a3c-9c62-4c7a-9f2e-6f1a2b3c4d5e"

type bookingFixture struct {
	svc       domain.BookingService
	bookings  *mockBookingRepository
	events    *mockEventRepository
	email     *fakeEmailService
	analytics *fakeAnalytics
	eventID   string
}

// existingEventID is a well-formed uuid so the reference guard's format check
// passes.
const existingEventID = "0b7f3d0e-2a61-4b7e-8c7d-0a1b2c3d4e5f"

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	events := newMockEventRepository()
	e := validEvent()
	e.ID = existingEventID
	e.Slug = "test-event"
	events.events[e.ID] = e

	bookings := newMockBookingRepository()
	email := newFakeEmailService()
	analytics := &fakeAnalytics{}
	svc := NewBookingService(bookings, events, email, analytics, testLogger(), 2*time.Second)
	return &bookingFixture{
		svc:       svc,
		bookings:  bookings,
		events:    events,
		email:     email,
		analytics: analytics,
		eventID:   existingEventID,
	}
}

func TestBookingService_CreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("success normalizes email", func(t *testing.T) {
		f := newBookingFixture(t)

		booking, err := f.svc.CreateBooking(ctx, f.eventID, "  Test@Example.COM  ")
		require.NoError(t, err)
		assert.Equal(t, "test@example.com", booking.Email)
		assert.Equal(t, f.eventID, booking.EventID)
		assert.NotEmpty(t, booking.ID)
	})

	t.Run("missing event reference", func(t *testing.T) {
		f := newBookingFixture(t)

		_, err := f.svc.CreateBooking(ctx, "", "test@example.com")
		require.ErrorIs(t, err, domain.ErrMissingEventReference)
	})

	t.Run("dangling event reference", func(t *testing.T) {
		f := newBookingFixture(t)

		for _, email := range []string{"test@example.com", "other@mail.org", "a.b+c@d.co"} {
			_, err := f.svc.CreateBooking(ctx, unknownEventID, email)
			require.ErrorIs(t, err, domain.ErrEventReferenceDangling)
		}
	})

	t.Run("malformed event id is treated as dangling", func(t *testing.T) {
		f := newBookingFixture(t)

		_, err := f.svc.CreateBooking(ctx, "not-a-uuid", "test@example.com")
		require.ErrorIs(t, err, domain.ErrEventReferenceDangling)
	})

	t.Run("invalid email", func(t *testing.T) {
		f := newBookingFixture(t)

		for _, email := range []string{"", "plainaddress", "a b@example.com", "a@b", "a@b.c"} {
			_, err := f.svc.CreateBooking(ctx, f.eventID, email)
			require.ErrorIs(t, err, domain.ErrInvalidEmail, "email %q", email)
		}
	})

	t.Run("two bookings with different emails get distinct identities", func(t *testing.T) {
		f := newBookingFixture(t)

		first, err := f.svc.CreateBooking(ctx, f.eventID, "a@example.com")
		require.NoError(t, err)
		second, err := f.svc.CreateBooking(ctx, f.eventID, "b@example.com")
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("duplicate booking by the same email is allowed", func(t *testing.T) {
		// Pins current behavior: no uniqueness constraint on (event, email).
		f := newBookingFixture(t)

		first, err := f.svc.CreateBooking(ctx, f.eventID, "again@example.com")
		require.NoError(t, err)
		second, err := f.svc.CreateBooking(ctx, f.eventID, "again@example.com")
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("sends confirmation email", func(t *testing.T) {
		f := newBookingFixture(t)

		_, err := f.svc.CreateBooking(ctx, f.eventID, "notify@example.com")
		require.NoError(t, err)

		select {
		case data := <-f.email.sent:
			assert.Equal(t, "notify@example.com", data.Email)
			assert.Equal(t, "Tech Conference 2025", data.EventTitle)
		case <-time.After(2 * time.Second):
			t.Fatal("confirmation email was not sent")
		}
	})
}

func TestBookingService_ListBookings(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	_, err := f.svc.CreateBooking(ctx, f.eventID, "a@example.com")
	require.NoError(t, err)
	_, err = f.svc.CreateBooking(ctx, f.eventID, "b@example.com")
	require.NoError(t, err)

	all, err := f.svc.ListBookings(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byEvent, err := f.svc.ListBookings(ctx, f.eventID)
	require.NoError(t, err)
	assert.Len(t, byEvent, 2)

	none, err := f.svc.ListBookings(ctx, unknownEventID)
	require.NoError(t, err)
	assert.Empty(t, none)
	assert.NotNil(t, none)
}

func TestBookingService_UpdateEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("success re-normalizes email", func(t *testing.T) {
		f := newBookingFixture(t)

		booking, err := f.svc.CreateBooking(ctx, f.eventID, "old@example.com")
		require.NoError(t, err)

		updated, err := f.svc.UpdateEmail(ctx, booking.ID, "  New@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, "new@example.com", updated.Email)
	})

	t.Run("invalid email rejected", func(t *testing.T) {
		f := newBookingFixture(t)

		booking, err := f.svc.CreateBooking(ctx, f.eventID, "old@example.com")
		require.NoError(t, err)

		_, err = f.svc.UpdateEmail(ctx, booking.ID, "nope")
		require.ErrorIs(t, err, domain.ErrInvalidEmail)
	})

	t.Run("event deleted since booking", func(t *testing.T) {
		f := newBookingFixture(t)

		booking, err := f.svc.CreateBooking(ctx, f.eventID, "old@example.com")
		require.NoError(t, err)

		require.NoError(t, f.events.Delete(ctx, f.eventID))
		_, err = f.svc.UpdateEmail(ctx, booking.ID, "new@example.com")
		require.ErrorIs(t, err, domain.ErrEventReferenceDangling)
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newBookingFixture(t)

		_, err := f.svc.UpdateEmail(ctx, "bk-missing", "new@example.com")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestBookingService_DeleteBooking(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	booking, err := f.svc.CreateBooking(ctx, f.eventID, "gone@example.com")
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteBooking(ctx, booking.ID))
	require.ErrorIs(t, f.svc.DeleteBooking(ctx, booking.ID), domain.ErrNotFound)
}

func TestBookingService_EventDeletionLeavesBookingsReadable(t *testing.T) {
	// Pins the known gap: deleting an event does not cascade to bookings.
	ctx := context.Background()
	f := newBookingFixture(t)

	_, err := f.svc.CreateBooking(ctx, f.eventID, "kept@example.com")
	require.NoError(t, err)

	require.NoError(t, f.events.Delete(ctx, f.eventID))

	remaining, err := f.svc.ListBookings(ctx, f.eventID)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestNormalizeEmail(t *testing.T) {
	got, err := NormalizeEmail("  MiXeD@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "mixed@example.com", got)

	// Idempotent on its own output.
	again, err := NormalizeEmail(got)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}
