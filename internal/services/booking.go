package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"eventbook/internal/domain"
)

// emailPattern matches a non-whitespace local part, a domain part, and a TLD
// of at least two characters. Input is lowercased before matching.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)

type bookingService struct {
	bookingRepo    domain.BookingRepository
	eventRepo      domain.EventRepository
	emailService   domain.EmailService
	analytics      domain.AnalyticsTracker
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewBookingService creates a BookingService. The email service and analytics
// tracker are notified after a successful create without blocking it.
func NewBookingService(
	bookingRepo domain.BookingRepository,
	eventRepo domain.EventRepository,
	emailService domain.EmailService,
	analytics domain.AnalyticsTracker,
	logger *slog.Logger,
	timeout time.Duration,
) domain.BookingService {
	return &bookingService{
		bookingRepo:    bookingRepo,
		eventRepo:      eventRepo,
		emailService:   emailService,
		analytics:      analytics,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, eventID, email string) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return nil, domain.ErrMissingEventReference
	}
	event, err := s.guardEventReference(ctx, eventID)
	if err != nil {
		return nil, err
	}

	email, err = NormalizeEmail(email)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	booking := domain.NewBooking(eventID, email, now, now)
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.notifyCreated(booking, event)
	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var bookings []*domain.Booking
	var err error
	if eventID = strings.TrimSpace(eventID); eventID != "" {
		bookings, err = s.bookingRepo.ListByEventID(ctx, eventID)
	} else {
		bookings, err = s.bookingRepo.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	if bookings == nil {
		bookings = []*domain.Booking{}
	}
	return bookings, nil
}

func (s *bookingService) UpdateEmail(ctx context.Context, bookingID, email string) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	booking, err := s.bookingRepo.GetByID(ctx, strings.TrimSpace(bookingID))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}

	// Same guards as create: the event must still exist and the new email
	// must be well-formed.
	if _, err := s.guardEventReference(ctx, booking.EventID); err != nil {
		return nil, err
	}
	email, err = NormalizeEmail(email)
	if err != nil {
		return nil, err
	}

	updated, err := s.bookingRepo.UpdateEmail(ctx, booking.ID, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update booking email: %w", err)
	}
	return updated, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, bookingID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.bookingRepo.Delete(ctx, strings.TrimSpace(bookingID)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete booking: %w", err)
	}
	return nil
}

// guardEventReference confirms the referenced event exists at this point in
// time. A concurrent delete between this check and the booking commit is
// accepted as a rare race; there is no transaction spanning both tables. The
// event record is returned for the confirmation email when available.
// A syntactically invalid id cannot reference an existing event and fails the
// same way an unknown one does, before it ever reaches the uuid column.
func (s *bookingService) guardEventReference(ctx context.Context, eventID string) (*domain.Event, error) {
	if _, err := uuid.Parse(eventID); err != nil {
		return nil, domain.ErrEventReferenceDangling
	}
	exists, err := s.eventRepo.ExistsByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event existence: %w", err)
	}
	if !exists {
		return nil, domain.ErrEventReferenceDangling
	}
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrEventReferenceDangling
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

// NormalizeEmail lowercases and trims the address, then validates its shape.
// Normalization is idempotent; validation failures return ErrInvalidEmail.
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidEmail, email)
	}
	return email, nil
}

// notifyCreated sends the confirmation email and records an analytics event,
// both fire-and-forget.
func (s *bookingService) notifyCreated(booking *domain.Booking, event *domain.Event) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := s.emailService.SendBookingConfirmation(ctx, &domain.BookingConfirmationEmailData{
			Email:      booking.Email,
			EventTitle: event.Title,
			EventDate:  event.Date,
			EventTime:  event.Time,
			EventVenue: event.Venue,
		})
		if err != nil {
			s.logger.Warn("booking confirmation email failed", "booking_id", booking.ID, "err", err)
		}
		if err := s.analytics.Track(ctx, "booking_created", map[string]any{
			"event_id": booking.EventID,
		}); err != nil {
			s.logger.Warn("analytics track failed", "action", "booking_created", "err", err)
		}
	}()
}
