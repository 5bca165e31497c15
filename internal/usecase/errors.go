package usecase

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the services. Handlers map these to HTTP
// statuses with errors.Is instead of matching message strings.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDeactivated = errors.New("account is deactivated")
	ErrUserNotFound       = errors.New("user not found")

	ErrEventNotFound = errors.New("event not found")
	ErrEventInactive = errors.New("event is not open for booking")
	ErrEarlyAccess   = errors.New("booking not yet open, early access is limited to loyalty members")
	ErrSoldOut       = errors.New("event is sold out")

	ErrSeatNotFound = errors.New("seat not found")

	ErrBookingNotFound    = errors.New("booking not found")
	ErrNotBookingOwner    = errors.New("booking belongs to another customer")
	ErrAlreadyCancelled   = errors.New("booking is already cancelled")
	ErrCancellationWindow = errors.New("bookings can only be cancelled up to 24 hours before the event")
)

// SeatsUnavailableError reports which requested seats are already taken,
// either from the pre-check or from a claim conflict lost to a concurrent
// booking.
type SeatsUnavailableError struct {
	SeatLabels []string
}

func (e *SeatsUnavailableError) Error() string {
	return fmt.Sprintf("seats no longer available: %s", strings.Join(e.SeatLabels, ", "))
}
