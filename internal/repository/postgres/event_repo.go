package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"eventbook/internal/database"
	"eventbook/internal/domain"
)

const eventColumns = `id, title, slug, description, overview, image, venue, location, date, time, mode, audience, agenda, organizer, tags, created_at, updated_at`

type eventRepository struct {
	provider database.Provider
}

// NewEventRepository returns an EventRepository backed by the shared postgres
// handle. The handle is resolved lazily through the provider on every call.
func NewEventRepository(provider database.Provider) domain.EventRepository {
	return &eventRepository{provider: provider}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO events (title, slug, description, overview, image, venue, location, date, time, mode, audience, agenda, organizer, tags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id
	`
	err = db.QueryRowContext(ctx, query,
		e.Title, e.Slug, e.Description, e.Overview, e.Image, e.Venue, e.Location,
		e.Date, e.Time, string(e.Mode), e.Audience, pq.Array(e.Agenda), e.Organizer,
		pq.Array(e.Tags), e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
	if err != nil {
		return mapUniqueViolation(err, "slug")
	}
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	return scanEvent(db.QueryRowContext(ctx, query, id))
}

func (r *eventRepository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + eventColumns + ` FROM events WHERE slug = $1`
	return scanEvent(db.QueryRowContext(ctx, query, slug))
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY date, time`
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return err
	}
	query := `
		UPDATE events
		SET title = $2, slug = $3, description = $4, overview = $5, image = $6,
		    venue = $7, location = $8, date = $9, time = $10, mode = $11,
		    audience = $12, agenda = $13, organizer = $14, tags = $15, updated_at = $16
		WHERE id = $1
	`
	result, err := db.ExecContext(ctx, query,
		e.ID, e.Title, e.Slug, e.Description, e.Overview, e.Image, e.Venue,
		e.Location, e.Date, e.Time, string(e.Mode), e.Audience, pq.Array(e.Agenda),
		e.Organizer, pq.Array(e.Tags), e.UpdatedAt,
	)
	if err != nil {
		return mapUniqueViolation(err, "slug")
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return err
	}
	result, err := db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return false, err
	}
	var exists bool
	err = db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM events WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var mode string
	err := row.Scan(
		&e.ID, &e.Title, &e.Slug, &e.Description, &e.Overview, &e.Image, &e.Venue,
		&e.Location, &e.Date, &e.Time, &mode, &e.Audience, pq.Array(&e.Agenda),
		&e.Organizer, pq.Array(&e.Tags), &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	e.Mode = domain.Mode(mode)
	return e, nil
}

// mapUniqueViolation converts a postgres unique-constraint violation into
// domain.ErrConflict so callers never see driver error codes.
func mapUniqueViolation(err error, field string) error {
	var perr *pq.Error
	if errors.As(err, &perr) && perr.Code == "23505" {
		return fmt.Errorf("%w: %s", domain.ErrConflict, field)
	}
	return err
}
