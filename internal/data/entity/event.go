package entity

import "time"

type EventType string

const (
	EventTypeMatinee EventType = "matinee"
	EventTypeEvening EventType = "evening"
)

type Event struct {
	Base
	Title       string    `db:"title"`
	Description string    `db:"description"`
	BasePrice   float64   `db:"base_price"`
	EventDate   time.Time `db:"event_date"`
	EventType   EventType `db:"event_type"`
	ReleaseDate time.Time `db:"release_date"`
	ImageURL    *string   `db:"image_url"`
	Duration    int       `db:"duration"` // minutes
	IsActive    bool      `db:"is_active"`
}
