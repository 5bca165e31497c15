package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"theater-booking/internal/data/entity"
	"theater-booking/internal/data/repository"
	"theater-booking/internal/dto/request"
	"theater-booking/internal/dto/response"
	"theater-booking/internal/pricing"
	"theater-booking/pkg/cache"
	"theater-booking/pkg/database"
	"theater-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// earlyAccessWindow is how long before the general release date booking
// opens for everyone. Inside the window only loyalty members may book.
const earlyAccessWindow = 7 * 24 * time.Hour

// cancellationWindow is the minimum gap between cancellation and the
// event start.
const cancellationWindow = 24 * time.Hour

type BookingService interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, userID uuid.UUID, reference string) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID, page *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBookingByReference(ctx context.Context, userID uuid.UUID, role, reference string) (*response.BookingResponse, error)
	GetEventAvailability(ctx context.Context, eventID uuid.UUID) (*response.AvailabilityResponse, error)
}

type bookingService struct {
	db    database.PgxIface
	repo  *repository.Repository
	cache *cache.Client
	log   *zap.Logger
}

func NewBookingService(db database.PgxIface, repo *repository.Repository, cacheClient *cache.Client, log *zap.Logger) BookingService {
	return &bookingService{
		db:    db,
		repo:  repo,
		cache: cacheClient,
		log:   log.With(zap.String("service", "booking")),
	}
}

// CreateBooking runs the whole booking pipeline: eligibility checks,
// concession and price resolution, then a single transaction that writes
// the booking, its priced seats and the seat claims. A claim conflict
// rolls everything back; partial bookings never survive.
func (s *bookingService) CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return nil, ErrEventNotFound
	}
	event, err := s.repo.Event.FindByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	if !event.IsActive {
		return nil, ErrEventInactive
	}

	now := time.Now()
	if now.Before(event.ReleaseDate.Add(-earlyAccessWindow)) && !user.IsLoyaltyMember {
		return nil, ErrEarlyAccess
	}

	totalSeats, err := s.repo.Seat.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	claimedCount, err := s.repo.SeatClaim.CountByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	if totalSeats > 0 && claimedCount >= totalSeats {
		return nil, ErrSoldOut
	}

	seatIDs := make([]uuid.UUID, 0, len(req.SeatIDs))
	for _, raw := range req.SeatIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, ErrSeatNotFound
		}
		seatIDs = append(seatIDs, id)
	}
	seats, err := s.repo.Seat.FindByIDs(ctx, seatIDs)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	if len(seats) != len(seatIDs) {
		return nil, ErrSeatNotFound
	}

	// Advisory pre-check so most conflicts are reported before opening a
	// transaction. The claim insert remains the real gate.
	claimedIDs, err := s.repo.SeatClaim.FindSeatIDsByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	claimed := make(map[uuid.UUID]struct{}, len(claimedIDs))
	for _, id := range claimedIDs {
		claimed[id] = struct{}{}
	}
	var conflictLabels []string
	for _, seat := range seats {
		if _, taken := claimed[seat.ID]; taken {
			conflictLabels = append(conflictLabels, seatLabel(seat))
		}
	}
	if len(conflictLabels) > 0 {
		return nil, &SeatsUnavailableError{SeatLabels: conflictLabels}
	}

	concessions := pricing.EligibleConcessions(req.Concessions, len(seats))
	concession := pricing.BestConcession(concessions)

	seatResponses := make([]response.BookingSeatResponse, 0, len(seats))
	seatPrices := make([]float64, len(seats))
	var totalAmount float64
	for i, seat := range seats {
		number, err := strconv.Atoi(seat.SeatNumber)
		if err != nil {
			return nil, fmt.Errorf("create booking: seat %s has non-numeric number %q", seat.ID.String(), seat.SeatNumber)
		}
		price := pricing.SeatPrice(event.BasePrice, string(event.EventType),
			seat.Section, seat.SeatRow, number, concession, user.IsLoyaltyMember)
		seatPrices[i] = price
		totalAmount += price
		seatResponses = append(seatResponses, response.BookingSeatResponse{
			SeatID:         seat.ID,
			SeatRow:        seat.SeatRow,
			SeatNumber:     seat.SeatNumber,
			Section:        seat.Section,
			Category:       seat.Category,
			Price:          price,
			ConcessionType: concession,
		})
	}
	totalAmount = math.Round(totalAmount*100) / 100

	customerPhone := req.Phone
	if customerPhone == "" && user.Phone != nil {
		customerPhone = *user.Phone
	}

	booking := &entity.Booking{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingReference: utils.GenerateBookingReference(),
		UserID:           user.ID,
		EventID:          event.ID,
		CustomerName:     user.Name,
		CustomerEmail:    user.Email,
		CustomerPhone:    customerPhone,
		TotalAmount:      totalAmount,
		LoyaltyDiscount:  user.IsLoyaltyMember,
		Status:           entity.BookingStatusConfirmed,
	}

	bookingSeats := make([]*entity.BookingSeat, 0, len(seats))
	claims := make([]*entity.SeatClaim, 0, len(seats))
	for i, seat := range seats {
		bookingSeats = append(bookingSeats, &entity.BookingSeat{
			BaseSimple: entity.BaseSimple{
				ID:        utils.GenerateUUID(),
				CreatedAt: now,
			},
			BookingID:      booking.ID,
			SeatID:         seat.ID,
			Price:          seatPrices[i],
			ConcessionType: concession,
		})
		claims = append(claims, &entity.SeatClaim{
			EventID:   event.ID,
			SeatID:    seat.ID,
			BookingID: booking.ID,
			CreatedAt: now,
		})
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("create booking: begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.repo.Booking.CreateTx(ctx, tx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	if err := s.repo.BookingSeat.CreateBatchTx(ctx, tx, bookingSeats); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	if err := s.repo.SeatClaim.ClaimBatchTx(ctx, tx, claims); err != nil {
		if errors.Is(err, repository.ErrSeatAlreadyClaimed) {
			return nil, s.claimConflict(ctx, eventID, seats)
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("create booking: commit: %w", err)
	}

	s.invalidateAvailability(ctx, eventID)

	s.log.Info("Booking created",
		zap.String("booking_reference", booking.BookingReference),
		zap.String("event_id", event.ID.String()),
		zap.Int("seats", len(seats)),
		zap.Float64("total_amount", totalAmount),
	)

	resp := response.NewBookingResponse(booking, seatResponses)
	return &resp, nil
}

// CancelBooking releases the booking's seat claims and marks it
// cancelled. The priced seat rows stay for history.
func (s *bookingService) CancelBooking(ctx context.Context, userID uuid.UUID, reference string) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByReference(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if booking.UserID != userID {
		return nil, ErrNotBookingOwner
	}
	if booking.Status == entity.BookingStatusCancelled {
		return nil, ErrAlreadyCancelled
	}

	event, err := s.repo.Event.FindByID(ctx, booking.EventID)
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}
	if event != nil && time.Until(event.EventDate) < cancellationWindow {
		return nil, ErrCancellationWindow
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("cancel booking: begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.repo.Booking.UpdateStatusTx(ctx, tx, booking.ID, entity.BookingStatusCancelled); err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}
	if err := s.repo.SeatClaim.DeleteByBookingTx(ctx, tx, booking.ID); err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("cancel booking: commit: %w", err)
	}

	s.invalidateAvailability(ctx, booking.EventID)

	s.log.Info("Booking cancelled",
		zap.String("booking_reference", booking.BookingReference),
		zap.String("event_id", booking.EventID.String()),
	)

	booking.Status = entity.BookingStatusCancelled
	resp := response.NewBookingResponse(booking, nil)
	return &resp, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID uuid.UUID, page *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.FindByUserID(ctx, userID, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("get user bookings: %w", err)
	}
	total, err := s.repo.Booking.CountByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user bookings: %w", err)
	}

	items := make([]response.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		items = append(items, response.NewBookingResponse(booking, nil))
	}

	currentPage := page.Page
	if currentPage < 1 {
		currentPage = 1
	}
	resp := response.NewPaginatedResponse(items, currentPage, page.Limit(), total,
		utils.CalculateTotalPages(total, page.Limit()))
	return &resp, nil
}

// GetBookingByReference returns one booking with its priced seats.
// Customers only see their own bookings; admins see all.
func (s *bookingService) GetBookingByReference(ctx context.Context, userID uuid.UUID, role, reference string) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByReference(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if booking.UserID != userID && role != string(entity.RoleAdmin) {
		return nil, ErrNotBookingOwner
	}

	bookingSeats, err := s.repo.BookingSeat.FindByBookingID(ctx, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	seatIDs := make([]uuid.UUID, 0, len(bookingSeats))
	for _, bs := range bookingSeats {
		seatIDs = append(seatIDs, bs.SeatID)
	}
	seats, err := s.repo.Seat.FindByIDs(ctx, seatIDs)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	seatByID := make(map[uuid.UUID]*entity.Seat, len(seats))
	for _, seat := range seats {
		seatByID[seat.ID] = seat
	}

	seatResponses := make([]response.BookingSeatResponse, 0, len(bookingSeats))
	for _, bs := range bookingSeats {
		sr := response.BookingSeatResponse{
			SeatID:         bs.SeatID,
			Price:          bs.Price,
			ConcessionType: bs.ConcessionType,
		}
		if seat, ok := seatByID[bs.SeatID]; ok {
			sr.SeatRow = seat.SeatRow
			sr.SeatNumber = seat.SeatNumber
			sr.Section = seat.Section
			sr.Category = seat.Category
		}
		seatResponses = append(seatResponses, sr)
	}

	resp := response.NewBookingResponse(booking, seatResponses)
	return &resp, nil
}

// GetEventAvailability derives the occupancy snapshot for an event,
// served through a short lived cache when one is configured.
func (s *bookingService) GetEventAvailability(ctx context.Context, eventID uuid.UUID) (*response.AvailabilityResponse, error) {
	key := availabilityCacheKey(eventID)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key); err != nil {
			s.log.Warn("Availability cache read failed", zap.Error(err))
		} else if cached != "" {
			var availability response.AvailabilityResponse
			if err := json.Unmarshal([]byte(cached), &availability); err == nil {
				return &availability, nil
			}
		}
	}

	event, err := s.repo.Event.FindByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get availability: %w", err)
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	totalSeats, err := s.repo.Seat.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("get availability: %w", err)
	}
	bookedSeats, err := s.repo.SeatClaim.CountByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get availability: %w", err)
	}

	availability := buildAvailability(totalSeats, bookedSeats)

	if s.cache != nil {
		if payload, err := json.Marshal(availability); err == nil {
			if err := s.cache.Set(ctx, key, string(payload)); err != nil {
				s.log.Warn("Availability cache write failed", zap.Error(err))
			}
		}
	}

	return &availability, nil
}

// claimConflict rebuilds the conflicting seat labels after a lost race so
// the caller gets the same error shape as the pre-check.
func (s *bookingService) claimConflict(ctx context.Context, eventID uuid.UUID, seats []*entity.Seat) error {
	claimedIDs, err := s.repo.SeatClaim.FindSeatIDsByEvent(ctx, eventID)
	if err != nil {
		return &SeatsUnavailableError{SeatLabels: []string{"unknown"}}
	}
	claimed := make(map[uuid.UUID]struct{}, len(claimedIDs))
	for _, id := range claimedIDs {
		claimed[id] = struct{}{}
	}

	var labels []string
	for _, seat := range seats {
		if _, taken := claimed[seat.ID]; taken {
			labels = append(labels, seatLabel(seat))
		}
	}
	if len(labels) == 0 {
		labels = []string{"unknown"}
	}
	return &SeatsUnavailableError{SeatLabels: labels}
}

func (s *bookingService) invalidateAvailability(ctx context.Context, eventID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, availabilityCacheKey(eventID)); err != nil {
		s.log.Warn("Availability cache invalidation failed",
			zap.Error(err),
			zap.String("event_id", eventID.String()),
		)
	}
}

func availabilityCacheKey(eventID uuid.UUID) string {
	return "availability:" + eventID.String()
}

func seatLabel(seat *entity.Seat) string {
	return seat.SeatRow + "-" + seat.SeatNumber
}
