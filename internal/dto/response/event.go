package response

import (
	"time"

	"theater-booking/internal/data/entity"

	"github.com/google/uuid"
)

type EventResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	BasePrice   float64   `json:"base_price"`
	EventDate   time.Time `json:"event_date"`
	EventType   string    `json:"event_type"`
	ReleaseDate time.Time `json:"release_date"`
	ImageURL    *string   `json:"image_url,omitempty"`
	Duration    int       `json:"duration"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewEventResponse(event *entity.Event) EventResponse {
	return EventResponse{
		ID:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		BasePrice:   event.BasePrice,
		EventDate:   event.EventDate,
		EventType:   string(event.EventType),
		ReleaseDate: event.ReleaseDate,
		ImageURL:    event.ImageURL,
		Duration:    event.Duration,
		IsActive:    event.IsActive,
		CreatedAt:   event.CreatedAt,
	}
}

func NewEventResponses(events []*entity.Event) []EventResponse {
	responses := make([]EventResponse, 0, len(events))
	for _, event := range events {
		responses = append(responses, NewEventResponse(event))
	}
	return responses
}
