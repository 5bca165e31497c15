package usecase

import (
	"context"
	"fmt"
	"time"

	"theater-booking/internal/data/entity"
	"theater-booking/internal/data/repository"
	"theater-booking/internal/dto/request"
	"theater-booking/internal/dto/response"
	"theater-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EventService interface {
	CreateEvent(ctx context.Context, req *request.CreateEventRequest) (*response.EventResponse, error)
	GetUpcomingEvents(ctx context.Context) ([]response.EventResponse, error)
	GetEventByID(ctx context.Context, eventID uuid.UUID) (*response.EventResponse, error)
}

type eventService struct {
	eventRepo repository.EventRepository
	log       *zap.Logger
}

func NewEventService(eventRepo repository.EventRepository, log *zap.Logger) EventService {
	return &eventService{
		eventRepo: eventRepo,
		log:       log.With(zap.String("service", "event")),
	}
}

func (s *eventService) CreateEvent(ctx context.Context, req *request.CreateEventRequest) (*response.EventResponse, error) {
	eventDate, err := time.Parse(time.RFC3339, req.EventDate)
	if err != nil {
		return nil, fmt.Errorf("create event: parse event date: %w", err)
	}
	releaseDate, err := time.Parse(time.RFC3339, req.ReleaseDate)
	if err != nil {
		return nil, fmt.Errorf("create event: parse release date: %w", err)
	}

	now := time.Now()
	event := &entity.Event{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       req.Title,
		Description: req.Description,
		BasePrice:   req.BasePrice,
		EventDate:   eventDate,
		EventType:   entity.EventType(req.EventType),
		ReleaseDate: releaseDate,
		ImageURL:    req.ImageURL,
		Duration:    req.Duration,
		IsActive:    true,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.log.Info("Event created",
		zap.String("event_id", event.ID.String()),
		zap.String("title", event.Title),
	)

	resp := response.NewEventResponse(event)
	return &resp, nil
}

func (s *eventService) GetUpcomingEvents(ctx context.Context) ([]response.EventResponse, error) {
	events, err := s.eventRepo.FindUpcoming(ctx, time.Now())
	if err != nil {
		return nil, fmt.Errorf("get upcoming events: %w", err)
	}

	return response.NewEventResponses(events), nil
}

func (s *eventService) GetEventByID(ctx context.Context, eventID uuid.UUID) (*response.EventResponse, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event by ID: %w", err)
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	resp := response.NewEventResponse(event)
	return &resp, nil
}
