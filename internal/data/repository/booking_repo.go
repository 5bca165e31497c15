package repository

import (
	"context"
	"fmt"

	"theater-booking/internal/data/entity"
	"theater-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	CreateTx(ctx context.Context, tx pgx.Tx, booking *entity.Booking) error
	FindByReference(ctx context.Context, reference string) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	UpdateStatusTx(ctx context.Context, tx pgx.Tx, bookingID uuid.UUID, status entity.BookingStatus) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, booking_reference, user_id, event_id, customer_name,
	customer_email, customer_phone, total_amount, loyalty_discount, status,
	created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.BookingReference,
		&booking.UserID,
		&booking.EventID,
		&booking.CustomerName,
		&booking.CustomerEmail,
		&booking.CustomerPhone,
		&booking.TotalAmount,
		&booking.LoyaltyDiscount,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// CreateTx inserts the booking inside the caller's transaction so the
// booking row and its seat claims commit or roll back together.
func (r *bookingRepository) CreateTx(ctx context.Context, tx pgx.Tx, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, booking_reference, user_id, event_id, customer_name,
			customer_email, customer_phone, total_amount, loyalty_discount, status,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := tx.Exec(ctx, query,
		booking.ID,
		booking.BookingReference,
		booking.UserID,
		booking.EventID,
		booking.CustomerName,
		booking.CustomerEmail,
		booking.CustomerPhone,
		booking.TotalAmount,
		booking.LoyaltyDiscount,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_reference", booking.BookingReference),
			zap.String("user_id", booking.UserID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.BookingReference, err)
	}

	return nil
}

func (r *bookingRepository) FindByReference(ctx context.Context, reference string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_reference = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, reference))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by reference",
			zap.Error(err),
			zap.String("booking_reference", reference),
		)
		return nil, fmt.Errorf("find booking by reference %s: %w", reference, err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (r *bookingRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE user_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count bookings by user ID %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) UpdateStatusTx(ctx context.Context, tx pgx.Tx, bookingID uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := tx.Exec(ctx, query, bookingID, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", bookingID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	return nil
}
