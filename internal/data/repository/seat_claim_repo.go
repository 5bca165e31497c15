package repository

import (
	"context"
	"errors"
	"fmt"

	"theater-booking/internal/data/entity"
	"theater-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// ErrSeatAlreadyClaimed wraps the unique violation raised when another
// booking holds one of the requested (event, seat) pairs. Callers roll
// back the whole booking on it.
var ErrSeatAlreadyClaimed = errors.New("seat already claimed for event")

const uniqueViolationCode = "23505"

type SeatClaimRepository interface {
	ClaimBatchTx(ctx context.Context, tx pgx.Tx, claims []*entity.SeatClaim) error
	DeleteByBookingTx(ctx context.Context, tx pgx.Tx, bookingID uuid.UUID) error
	FindSeatIDsByEvent(ctx context.Context, eventID uuid.UUID) ([]uuid.UUID, error)
	CountByEvent(ctx context.Context, eventID uuid.UUID) (int64, error)
}

type seatClaimRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSeatClaimRepository(db database.PgxIface, log *zap.Logger) SeatClaimRepository {
	return &seatClaimRepository{
		db:  db,
		log: log.With(zap.String("repository", "seat_claim")),
	}
}

// ClaimBatchTx inserts one claim per seat inside the booking transaction.
// The (event_id, seat_id) primary key makes this the single atomicity
// boundary for seat occupancy: if any insert hits a unique violation the
// whole transaction is rolled back by the caller and no seat is kept.
func (r *seatClaimRepository) ClaimBatchTx(ctx context.Context, tx pgx.Tx, claims []*entity.SeatClaim) error {
	query := `
		INSERT INTO seat_claims (event_id, seat_id, booking_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	for _, claim := range claims {
		_, err := tx.Exec(ctx, query,
			claim.EventID,
			claim.SeatID,
			claim.BookingID,
			claim.CreatedAt,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
				r.log.Warn("Seat claim conflict",
					zap.String("event_id", claim.EventID.String()),
					zap.String("seat_id", claim.SeatID.String()),
				)
				return fmt.Errorf("claim seat %s for event %s: %w",
					claim.SeatID.String(), claim.EventID.String(), ErrSeatAlreadyClaimed)
			}

			r.log.Error("Failed to claim seat",
				zap.Error(err),
				zap.String("event_id", claim.EventID.String()),
				zap.String("seat_id", claim.SeatID.String()),
			)
			return fmt.Errorf("claim seat %s for event %s: %w",
				claim.SeatID.String(), claim.EventID.String(), err)
		}
	}

	return nil
}

func (r *seatClaimRepository) DeleteByBookingTx(ctx context.Context, tx pgx.Tx, bookingID uuid.UUID) error {
	query := `DELETE FROM seat_claims WHERE booking_id = $1`

	_, err := tx.Exec(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to delete seat claims by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return fmt.Errorf("delete seat claims by booking ID %s: %w", bookingID.String(), err)
	}

	return nil
}

func (r *seatClaimRepository) FindSeatIDsByEvent(ctx context.Context, eventID uuid.UUID) ([]uuid.UUID, error) {
	query := `SELECT seat_id FROM seat_claims WHERE event_id = $1`

	rows, err := r.db.Query(ctx, query, eventID)
	if err != nil {
		r.log.Error("Failed to find claimed seats by event",
			zap.Error(err),
			zap.String("event_id", eventID.String()),
		)
		return nil, fmt.Errorf("find claimed seats by event %s: %w", eventID.String(), err)
	}
	defer rows.Close()

	var seatIDs []uuid.UUID
	for rows.Next() {
		var seatID uuid.UUID
		if err := rows.Scan(&seatID); err != nil {
			r.log.Error("Failed to scan seat ID row", zap.Error(err))
			return nil, fmt.Errorf("scan seat ID row: %w", err)
		}
		seatIDs = append(seatIDs, seatID)
	}

	return seatIDs, nil
}

func (r *seatClaimRepository) CountByEvent(ctx context.Context, eventID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM seat_claims WHERE event_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, eventID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count claimed seats by event",
			zap.Error(err),
			zap.String("event_id", eventID.String()),
		)
		return 0, fmt.Errorf("count claimed seats by event %s: %w", eventID.String(), err)
	}

	return count, nil
}
