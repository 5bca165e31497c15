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

type SeatRepository interface {
	CreateBatch(ctx context.Context, seats []*entity.Seat) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Seat, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Seat, error)
	FindAll(ctx context.Context, section string) ([]*entity.Seat, error)
	Count(ctx context.Context) (int64, error)
}

type seatRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSeatRepository(db database.PgxIface, log *zap.Logger) SeatRepository {
	return &seatRepository{
		db:  db,
		log: log.With(zap.String("repository", "seat")),
	}
}

const seatColumns = `id, seat_number, seat_row, section, category, created_at`

func scanSeat(row pgx.Row) (*entity.Seat, error) {
	var seat entity.Seat
	err := row.Scan(
		&seat.ID,
		&seat.SeatNumber,
		&seat.SeatRow,
		&seat.Section,
		&seat.Category,
		&seat.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &seat, nil
}

func (r *seatRepository) CreateBatch(ctx context.Context, seats []*entity.Seat) error {
	if len(seats) == 0 {
		return nil
	}

	query := `
		INSERT INTO seats (id, seat_number, seat_row, section, category, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	for _, seat := range seats {
		_, err := r.db.Exec(ctx, query,
			seat.ID,
			seat.SeatNumber,
			seat.SeatRow,
			seat.Section,
			seat.Category,
			seat.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to create seat",
				zap.Error(err),
				zap.String("section", seat.Section),
				zap.String("seat_row", seat.SeatRow),
				zap.String("seat_number", seat.SeatNumber),
			)
			return fmt.Errorf("create seat %s/%s%s: %w", seat.Section, seat.SeatRow, seat.SeatNumber, err)
		}
	}

	return nil
}

func (r *seatRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Seat, error) {
	query := `SELECT ` + seatColumns + ` FROM seats WHERE id = $1`

	seat, err := scanSeat(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find seat by ID",
			zap.Error(err),
			zap.String("seat_id", id.String()),
		)
		return nil, fmt.Errorf("find seat by ID %s: %w", id.String(), err)
	}

	return seat, nil
}

func (r *seatRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Seat, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT ` + seatColumns + ` FROM seats WHERE id = ANY($1)`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		r.log.Error("Failed to find seats by IDs", zap.Error(err), zap.Int("count", len(ids)))
		return nil, fmt.Errorf("find seats by IDs: %w", err)
	}
	defer rows.Close()

	var seats []*entity.Seat
	for rows.Next() {
		seat, err := scanSeat(rows)
		if err != nil {
			r.log.Error("Failed to scan seat row", zap.Error(err))
			return nil, fmt.Errorf("scan seat row: %w", err)
		}
		seats = append(seats, seat)
	}

	return seats, nil
}

func (r *seatRepository) FindAll(ctx context.Context, section string) ([]*entity.Seat, error) {
	query := `SELECT ` + seatColumns + ` FROM seats`
	args := []any{}
	if section != "" {
		query += ` WHERE section = $1`
		args = append(args, section)
	}
	// numeric seat order within a row, not lexicographic
	query += ` ORDER BY section, seat_row, seat_number::int`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find seats",
			zap.Error(err),
			zap.String("section", section),
		)
		return nil, fmt.Errorf("find seats: %w", err)
	}
	defer rows.Close()

	var seats []*entity.Seat
	for rows.Next() {
		seat, err := scanSeat(rows)
		if err != nil {
			r.log.Error("Failed to scan seat row", zap.Error(err))
			return nil, fmt.Errorf("scan seat row: %w", err)
		}
		seats = append(seats, seat)
	}

	return seats, nil
}

func (r *seatRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM seats`).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count seats", zap.Error(err))
		return 0, fmt.Errorf("count seats: %w", err)
	}

	return count, nil
}
