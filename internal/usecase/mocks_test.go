package usecase

import (
	"context"
	"time"

	"theater-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
)

// ==================== REPOSITORY MOCKS ====================

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(ctx context.Context, event *entity.Event) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockEventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	args := m.Called(ctx, id)
	event, _ := args.Get(0).(*entity.Event)
	return event, args.Error(1)
}

func (m *MockEventRepository) FindUpcoming(ctx context.Context, from time.Time) ([]*entity.Event, error) {
	args := m.Called(ctx, from)
	events, _ := args.Get(0).([]*entity.Event)
	return events, args.Error(1)
}

type MockSeatRepository struct {
	mock.Mock
}

func (m *MockSeatRepository) CreateBatch(ctx context.Context, seats []*entity.Seat) error {
	return m.Called(ctx, seats).Error(0)
}

func (m *MockSeatRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Seat, error) {
	args := m.Called(ctx, id)
	seat, _ := args.Get(0).(*entity.Seat)
	return seat, args.Error(1)
}

func (m *MockSeatRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Seat, error) {
	args := m.Called(ctx, ids)
	seats, _ := args.Get(0).([]*entity.Seat)
	return seats, args.Error(1)
}

func (m *MockSeatRepository) FindAll(ctx context.Context, section string) ([]*entity.Seat, error) {
	args := m.Called(ctx, section)
	seats, _ := args.Get(0).([]*entity.Seat)
	return seats, args.Error(1)
}

func (m *MockSeatRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) CreateTx(ctx context.Context, tx pgx.Tx, booking *entity.Booking) error {
	return m.Called(ctx, tx, booking).Error(0)
}

func (m *MockBookingRepository) FindByReference(ctx context.Context, reference string) (*entity.Booking, error) {
	args := m.Called(ctx, reference)
	booking, _ := args.Get(0).(*entity.Booking)
	return booking, args.Error(1)
}

func (m *MockBookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	args := m.Called(ctx, userID, limit, offset)
	bookings, _ := args.Get(0).([]*entity.Booking)
	return bookings, args.Error(1)
}

func (m *MockBookingRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatusTx(ctx context.Context, tx pgx.Tx, bookingID uuid.UUID, status entity.BookingStatus) error {
	return m.Called(ctx, tx, bookingID, status).Error(0)
}

type MockBookingSeatRepository struct {
	mock.Mock
}

func (m *MockBookingSeatRepository) CreateBatchTx(ctx context.Context, tx pgx.Tx, bookingSeats []*entity.BookingSeat) error {
	return m.Called(ctx, tx, bookingSeats).Error(0)
}

func (m *MockBookingSeatRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.BookingSeat, error) {
	args := m.Called(ctx, bookingID)
	bookingSeats, _ := args.Get(0).([]*entity.BookingSeat)
	return bookingSeats, args.Error(1)
}

type MockSeatClaimRepository struct {
	mock.Mock
}

func (m *MockSeatClaimRepository) ClaimBatchTx(ctx context.Context, tx pgx.Tx, claims []*entity.SeatClaim) error {
	return m.Called(ctx, tx, claims).Error(0)
}

func (m *MockSeatClaimRepository) DeleteByBookingTx(ctx context.Context, tx pgx.Tx, bookingID uuid.UUID) error {
	return m.Called(ctx, tx, bookingID).Error(0)
}

func (m *MockSeatClaimRepository) FindSeatIDsByEvent(ctx context.Context, eventID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, eventID)
	ids, _ := args.Get(0).([]uuid.UUID)
	return ids, args.Error(1)
}

func (m *MockSeatClaimRepository) CountByEvent(ctx context.Context, eventID uuid.UUID) (int64, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).(int64), args.Error(1)
}

// ==================== DATABASE STUBS ====================

// stubTx satisfies pgx.Tx for services that only pass the handle through
// to mocked repositories. Commit and rollback are counted so tests can
// assert transaction outcomes.
type stubTx struct {
	commits   int
	rollbacks int
}

func (t *stubTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }

func (t *stubTx) Commit(ctx context.Context) error {
	t.commits++
	return nil
}

func (t *stubTx) Rollback(ctx context.Context) error {
	t.rollbacks++
	return nil
}

func (t *stubTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}

func (t *stubTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *stubTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }

func (t *stubTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}

func (t *stubTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (t *stubTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (t *stubTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (t *stubTx) Conn() *pgx.Conn                                              { return nil }

// stubDB hands out a shared stubTx from Begin.
type stubDB struct {
	tx *stubTx
}

func newStubDB() *stubDB {
	return &stubDB{tx: &stubTx{}}
}

func (d *stubDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (d *stubDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }

func (d *stubDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (d *stubDB) Begin(ctx context.Context) (pgx.Tx, error) { return d.tx, nil }
func (d *stubDB) Ping(ctx context.Context) error            { return nil }
func (d *stubDB) Close()                                    {}
