package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventbook/internal/database"
	"eventbook/internal/domain"
)

type bookingRepository struct {
	provider database.Provider
}

// NewBookingRepository returns a BookingRepository backed by the shared
// postgres handle.
func NewBookingRepository(provider database.Provider) domain.BookingRepository {
	return &bookingRepository{provider: provider}
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO bookings (event_id, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err = db.QueryRowContext(ctx, query, b.EventID, b.Email, b.CreatedAt, b.UpdatedAt).Scan(&b.ID)
	if err != nil {
		return mapUniqueViolation(err, "booking")
	}
	return nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return nil, err
	}
	query := `SELECT id, event_id, email, created_at, updated_at FROM bookings WHERE id = $1`
	b := &domain.Booking{}
	err = db.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.EventID, &b.Email, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) List(ctx context.Context) ([]*domain.Booking, error) {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return nil, err
	}
	query := `SELECT id, event_id, email, created_at, updated_at FROM bookings ORDER BY created_at DESC`
	return r.queryBookings(ctx, db, query)
}

func (r *bookingRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return nil, err
	}
	query := `SELECT id, event_id, email, created_at, updated_at FROM bookings WHERE event_id = $1 ORDER BY created_at DESC`
	return r.queryBookings(ctx, db, query, eventID)
}

func (r *bookingRepository) UpdateEmail(ctx context.Context, id, email string) (*domain.Booking, error) {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return nil, err
	}
	query := `
		UPDATE bookings SET email = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, event_id, email, created_at, updated_at
	`
	b := &domain.Booking{}
	err = db.QueryRowContext(ctx, query, id, email).Scan(&b.ID, &b.EventID, &b.Email, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) Delete(ctx context.Context, id string) error {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return err
	}
	result, err := db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *bookingRepository) queryBookings(ctx context.Context, db *sql.DB, query string, args ...any) ([]*domain.Booking, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		b := &domain.Booking{}
		if err := rows.Scan(&b.ID, &b.EventID, &b.Email, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
