package usecase

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"theater-booking/internal/data/entity"
	"theater-booking/internal/data/repository"
	"theater-booking/internal/dto/response"
	"theater-booking/internal/pricing"
	"theater-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SeatService interface {
	InitializeTheaterLayout(ctx context.Context) (int, error)
	GetAvailableSeats(ctx context.Context, eventID uuid.UUID, section string) (*response.AvailableSeatsResponse, error)
	GetSeatPricing(ctx context.Context, eventID, seatID uuid.UUID) (*response.SeatPricingResponse, error)
}

type seatService struct {
	seatRepo  repository.SeatRepository
	eventRepo repository.EventRepository
	claimRepo repository.SeatClaimRepository
	log       *zap.Logger
}

func NewSeatService(
	seatRepo repository.SeatRepository,
	eventRepo repository.EventRepository,
	claimRepo repository.SeatClaimRepository,
	log *zap.Logger,
) SeatService {
	return &seatService{
		seatRepo:  seatRepo,
		eventRepo: eventRepo,
		claimRepo: claimRepo,
		log:       log.With(zap.String("service", "seat")),
	}
}

// InitializeTheaterLayout seeds the fixed seat inventory from the house
// layout. Idempotent: a non-empty inventory is left untouched.
func (s *seatService) InitializeTheaterLayout(ctx context.Context) (int, error) {
	count, err := s.seatRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("initialize layout: %w", err)
	}
	if count > 0 {
		s.log.Info("Seat inventory already initialized", zap.Int64("seats", count))
		return 0, nil
	}

	now := time.Now()
	var seats []*entity.Seat
	for _, row := range pricing.Layout() {
		for number := 1; number <= row.SeatCount; number++ {
			seats = append(seats, &entity.Seat{
				BaseSimple: entity.BaseSimple{
					ID:        utils.GenerateUUID(),
					CreatedAt: now,
				},
				SeatNumber: strconv.Itoa(number),
				SeatRow:    row.Row,
				Section:    row.Section,
				Category:   pricing.Classify(row.Section, row.Row, number),
			})
		}
	}

	if err := s.seatRepo.CreateBatch(ctx, seats); err != nil {
		return 0, fmt.Errorf("initialize layout: %w", err)
	}

	s.log.Info("Seat inventory initialized", zap.Int("seats", len(seats)))
	return len(seats), nil
}

// GetAvailableSeats lists unclaimed seats for an event, priced at the
// adult list price. The availability block always covers the whole house
// even when the seat list is filtered to one section.
func (s *seatService) GetAvailableSeats(ctx context.Context, eventID uuid.UUID, section string) (*response.AvailableSeatsResponse, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get available seats: %w", err)
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	if !event.IsActive {
		return nil, ErrEventInactive
	}

	seats, err := s.seatRepo.FindAll(ctx, section)
	if err != nil {
		return nil, fmt.Errorf("get available seats: %w", err)
	}

	claimedIDs, err := s.claimRepo.FindSeatIDsByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get available seats: %w", err)
	}
	claimed := make(map[uuid.UUID]struct{}, len(claimedIDs))
	for _, id := range claimedIDs {
		claimed[id] = struct{}{}
	}

	available := make([]response.SeatResponse, 0, len(seats))
	for _, seat := range seats {
		if _, taken := claimed[seat.ID]; taken {
			continue
		}
		number, err := strconv.Atoi(seat.SeatNumber)
		if err != nil {
			return nil, fmt.Errorf("get available seats: seat %s has non-numeric number %q", seat.ID.String(), seat.SeatNumber)
		}
		price := pricing.SeatPrice(event.BasePrice, string(event.EventType),
			seat.Section, seat.SeatRow, number, pricing.ConcessionAdult, false)
		available = append(available, response.NewSeatResponse(seat, price))
	}

	totalSeats, err := s.seatRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("get available seats: %w", err)
	}

	return &response.AvailableSeatsResponse{
		Event: response.EventSummaryResponse{
			ID:        event.ID,
			Title:     event.Title,
			EventType: string(event.EventType),
			BasePrice: event.BasePrice,
		},
		Seats:        available,
		Availability: buildAvailability(totalSeats, int64(len(claimedIDs))),
	}, nil
}

func (s *seatService) GetSeatPricing(ctx context.Context, eventID, seatID uuid.UUID) (*response.SeatPricingResponse, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get seat pricing: %w", err)
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	seat, err := s.seatRepo.FindByID(ctx, seatID)
	if err != nil {
		return nil, fmt.Errorf("get seat pricing: %w", err)
	}
	if seat == nil {
		return nil, ErrSeatNotFound
	}

	number, err := strconv.Atoi(seat.SeatNumber)
	if err != nil {
		return nil, fmt.Errorf("get seat pricing: seat %s has non-numeric number %q", seat.ID.String(), seat.SeatNumber)
	}

	return &response.SeatPricingResponse{
		SeatID:       seat.ID,
		SeatRow:      seat.SeatRow,
		SeatNumber:   seat.SeatNumber,
		Section:      seat.Section,
		Category:     seat.Category,
		BasePrice:    event.BasePrice,
		Multiplier:   pricing.Multiplier(seat.Section, string(event.EventType), seat.Category),
		Price:        pricing.SeatPrice(event.BasePrice, string(event.EventType), seat.Section, seat.SeatRow, number, pricing.ConcessionAdult, false),
		LoyaltyPrice: pricing.SeatPrice(event.BasePrice, string(event.EventType), seat.Section, seat.SeatRow, number, pricing.ConcessionAdult, true),
	}, nil
}

// buildAvailability derives the occupancy projection. Nothing here is
// persisted; the claim ledger is the only source of truth.
func buildAvailability(totalSeats, bookedSeats int64) response.AvailabilityResponse {
	availability := response.AvailabilityResponse{
		TotalSeats:     totalSeats,
		BookedSeats:    bookedSeats,
		AvailableSeats: totalSeats - bookedSeats,
	}
	if totalSeats > 0 {
		availability.IsSoldOut = bookedSeats >= totalSeats
		pct := float64(bookedSeats) / float64(totalSeats) * 100
		availability.PercentageBooked = roundToOneDecimal(pct)
	}
	return availability
}

func roundToOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
