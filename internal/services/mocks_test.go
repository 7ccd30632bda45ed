package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"eventbook/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// mockEventRepository is an in-memory EventRepository.
type mockEventRepository struct {
	mu      sync.Mutex
	events  map[string]*domain.Event
	nextID  int
	err     error
	creates int
	updates int
}

func newMockEventRepository() *mockEventRepository {
	return &mockEventRepository{events: map[string]*domain.Event{}}
}

func (m *mockEventRepository) Create(ctx context.Context, event *domain.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	for _, e := range m.events {
		if e.Slug == event.Slug {
			return domain.ErrConflict
		}
	}
	m.nextID++
	event.ID = fmt.Sprintf("ev-%d", m.nextID)
	cp := *event
	m.events[event.ID] = &cp
	m.creates++
	return nil
}

func (m *mockEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	e, ok := m.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (m *mockEventRepository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, e := range m.events {
		if e.Slug == slug {
			cp := *e
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockEventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]*domain.Event, 0, len(m.events))
	for _, e := range m.events {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (m *mockEventRepository) Update(ctx context.Context, event *domain.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.events[event.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, e := range m.events {
		if id != event.ID && e.Slug == event.Slug {
			return domain.ErrConflict
		}
	}
	cp := *event
	m.events[event.ID] = &cp
	m.updates++
	return nil
}

func (m *mockEventRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.events[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.events, id)
	return nil
}

func (m *mockEventRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.events[id]
	return ok, nil
}

// mockBookingRepository is an in-memory BookingRepository.
type mockBookingRepository struct {
	mu       sync.Mutex
	bookings map[string]*domain.Booking
	nextID   int
	err      error
}

func newMockBookingRepository() *mockBookingRepository {
	return &mockBookingRepository{bookings: map[string]*domain.Booking{}}
}

func (m *mockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.nextID++
	b.ID = fmt.Sprintf("bk-%d", m.nextID)
	cp := *b
	m.bookings[b.ID] = &cp
	return nil
}

func (m *mockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (m *mockBookingRepository) List(ctx context.Context) ([]*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]*domain.Booking, 0, len(m.bookings))
	for _, b := range m.bookings {
		cp := *b
		out = append(out, &cp)
	}
	return out, nil
}

func (m *mockBookingRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.Booking, 0)
	for _, b := range m.bookings {
		if b.EventID == eventID {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *mockBookingRepository) UpdateEmail(ctx context.Context, id, email string) (*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	b.Email = email
	cp := *b
	return &cp, nil
}

func (m *mockBookingRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.bookings[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.bookings, id)
	return nil
}

// fakeRevalidator records revalidated paths.
type fakeRevalidator struct {
	mu    sync.Mutex
	paths []string
}

func (f *fakeRevalidator) Revalidate(ctx context.Context, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.paths = append(f.paths, path)
	return nil
}

// fakeAnalytics records tracked events.
type fakeAnalytics struct {
	mu     sync.Mutex
	events []string
}

func (f *fakeAnalytics) Track(ctx context.Context, event string, properties map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

// fakeEmailService signals on sent so tests can wait for the async send.
type fakeEmailService struct {
	sent chan *domain.BookingConfirmationEmailData
}

func newFakeEmailService() *fakeEmailService {
	return &fakeEmailService{sent: make(chan *domain.BookingConfirmationEmailData, 8)}
}

func (f *fakeEmailService) SendBookingConfirmation(ctx context.Context, data *domain.BookingConfirmationEmailData) error {
	f.sent <- data
	return nil
}
