package request

type CreateBookingRequest struct {
	EventID     string   `json:"event_id" validate:"required,uuid4"`
	SeatIDs     []string `json:"seat_ids" validate:"required,min=1,dive,uuid4"`
	Concessions []string `json:"concessions" validate:"omitempty,dive,oneof=adult child senior group"`
	Phone       string   `json:"phone" validate:"required,min=6,max=20"`
}
