package repository

import (
	"context"
	"fmt"
	"time"

	"theater-booking/internal/data/entity"
	"theater-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)

	// Business queries
	FindUpcoming(ctx context.Context, from time.Time) ([]*entity.Event, error)
}

type eventRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewEventRepository(db database.PgxIface, log *zap.Logger) EventRepository {
	return &eventRepository{
		db:  db,
		log: log.With(zap.String("repository", "event")),
	}
}

const eventColumns = `id, title, description, base_price, event_date, event_type,
	release_date, image_url, duration, is_active, created_at, updated_at`

func scanEvent(row pgx.Row) (*entity.Event, error) {
	var event entity.Event
	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.BasePrice,
		&event.EventDate,
		&event.EventType,
		&event.ReleaseDate,
		&event.ImageURL,
		&event.Duration,
		&event.IsActive,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	query := `
		INSERT INTO events (id, title, description, base_price, event_date, event_type,
			release_date, image_url, duration, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		event.ID,
		event.Title,
		event.Description,
		event.BasePrice,
		event.EventDate,
		event.EventType,
		event.ReleaseDate,
		event.ImageURL,
		event.Duration,
		event.IsActive,
		event.CreatedAt,
		event.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create event",
			zap.Error(err),
			zap.String("title", event.Title),
		)
		return fmt.Errorf("create event %s: %w", event.Title, err)
	}

	return nil
}

func (r *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	event, err := scanEvent(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find event by ID",
			zap.Error(err),
			zap.String("event_id", id.String()),
		)
		return nil, fmt.Errorf("find event by ID %s: %w", id.String(), err)
	}

	return event, nil
}

func (r *eventRepository) FindUpcoming(ctx context.Context, from time.Time) ([]*entity.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE event_date >= $1 AND is_active
		ORDER BY event_date ASC
	`

	rows, err := r.db.Query(ctx, query, from)
	if err != nil {
		r.log.Error("Failed to find upcoming events", zap.Error(err))
		return nil, fmt.Errorf("find upcoming events: %w", err)
	}
	defer rows.Close()

	var events []*entity.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			r.log.Error("Failed to scan event row", zap.Error(err))
			return nil, fmt.Errorf("scan event row: %w", err)
		}
		events = append(events, event)
	}

	return events, nil
}
