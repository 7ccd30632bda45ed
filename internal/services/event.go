package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"eventbook/internal/domain"
	"eventbook/internal/normalize"
)

type eventService struct {
	eventRepo      domain.EventRepository
	revalidator    domain.RevalidationTrigger
	analytics      domain.AnalyticsTracker
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewEventService creates an EventService. The revalidator and analytics
// tracker are notified after successful writes without blocking them.
func NewEventService(
	eventRepo domain.EventRepository,
	revalidator domain.RevalidationTrigger,
	analytics domain.AnalyticsTracker,
	logger *slog.Logger,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		revalidator:    revalidator,
		analytics:      analytics,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now

	if err := normalizeEvent(event, true); err != nil {
		return err
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return err
		}
		return fmt.Errorf("create event: %w", err)
	}

	s.notifyWrite(event, "event_created")
	return nil
}

func (s *eventService) GetEventBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event by slug: %w", err)
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, eventID string, update *domain.EventUpdate) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	titleChanged := applyUpdate(event, update)
	event.UpdatedAt = time.Now()

	if err := normalizeEvent(event, titleChanged); err != nil {
		return nil, err
	}
	if err := s.eventRepo.Update(ctx, event); err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("update event: %w", err)
	}

	s.notifyWrite(event, "event_updated")
	return event, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, eventID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}
	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}

	s.notifyWrite(event, "event_deleted")
	return nil
}

// applyUpdate copies the set fields of update onto event and reports whether
// the title changed, which decides whether the slug is regenerated.
func applyUpdate(event *domain.Event, update *domain.EventUpdate) bool {
	if update == nil {
		return false
	}
	titleChanged := false
	if update.Title != nil && strings.TrimSpace(*update.Title) != event.Title {
		event.Title = *update.Title
		titleChanged = true
	}
	if update.Description != nil {
		event.Description = *update.Description
	}
	if update.Overview != nil {
		event.Overview = *update.Overview
	}
	if update.Image != nil {
		event.Image = *update.Image
	}
	if update.Venue != nil {
		event.Venue = *update.Venue
	}
	if update.Location != nil {
		event.Location = *update.Location
	}
	if update.Date != nil {
		event.Date = *update.Date
	}
	if update.Time != nil {
		event.Time = *update.Time
	}
	if update.Mode != nil {
		event.Mode = *update.Mode
	}
	if update.Audience != nil {
		event.Audience = *update.Audience
	}
	if update.Agenda != nil {
		event.Agenda = update.Agenda
	}
	if update.Organizer != nil {
		event.Organizer = *update.Organizer
	}
	if update.Tags != nil {
		event.Tags = update.Tags
	}
	return titleChanged
}

// normalizeEvent runs the full pre-write pass on the candidate record, in
// place: slug regeneration (when the title changed or no slug exists yet),
// date/time canonicalization, required-string checks, and the agenda/tags
// collection checks. Nothing is persisted when any step fails.
func normalizeEvent(event *domain.Event, titleChanged bool) error {
	event.Title = strings.TrimSpace(event.Title)
	event.Description = strings.TrimSpace(event.Description)
	event.Overview = strings.TrimSpace(event.Overview)
	event.Image = strings.TrimSpace(event.Image)
	event.Venue = strings.TrimSpace(event.Venue)
	event.Location = strings.TrimSpace(event.Location)
	event.Mode = domain.Mode(strings.TrimSpace(string(event.Mode)))
	event.Audience = strings.TrimSpace(event.Audience)
	event.Organizer = strings.TrimSpace(event.Organizer)

	if titleChanged || event.Slug == "" {
		event.Slug = normalize.Slugify(event.Title)
	}

	date, err := normalize.Date(event.Date)
	if err != nil {
		return domain.NewFieldError("date", err)
	}
	event.Date = date

	tm, err := normalize.Time(event.Time)
	if err != nil {
		return domain.NewFieldError("time", err)
	}
	event.Time = tm

	required := []struct {
		name  string
		value string
	}{
		{"title", event.Title},
		{"slug", event.Slug},
		{"description", event.Description},
		{"overview", event.Overview},
		{"image", event.Image},
		{"venue", event.Venue},
		{"location", event.Location},
		{"date", event.Date},
		{"time", event.Time},
		{"mode", string(event.Mode)},
		{"audience", event.Audience},
		{"organizer", event.Organizer},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return domain.NewFieldError(f.name, domain.ErrRequiredFieldEmpty)
		}
	}

	agenda, err := normalizeStringList("agenda", event.Agenda)
	if err != nil {
		return err
	}
	event.Agenda = agenda

	tags, err := normalizeStringList("tags", event.Tags)
	if err != nil {
		return err
	}
	event.Tags = tags

	return nil
}

// normalizeStringList trims every element and rejects empty lists and blank
// elements with an EmptyCollection failure for the named field.
func normalizeStringList(field string, values []string) ([]string, error) {
	if len(values) == 0 {
		return nil, domain.NewFieldError(field, domain.ErrEmptyCollection)
	}
	out := make([]string, len(values))
	for i, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			return nil, domain.NewFieldError(field, domain.ErrEmptyCollection)
		}
		out[i] = v
	}
	return out, nil
}

// notifyWrite triggers frontend revalidation and records an analytics event.
// Both run off the request context and only log on failure; the write path
// never waits on them.
func (s *eventService) notifyWrite(event *domain.Event, action string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		for _, path := range []string{"/", "/events/" + event.Slug} {
			if err := s.revalidator.Revalidate(ctx, path); err != nil {
				s.logger.Warn("revalidation failed", "path", path, "err", err)
			}
		}
		if err := s.analytics.Track(ctx, action, map[string]any{
			"event_id": event.ID,
			"slug":     event.Slug,
		}); err != nil {
			s.logger.Warn("analytics track failed", "action", action, "err", err)
		}
	}()
}
