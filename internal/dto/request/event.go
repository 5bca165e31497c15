package request

type CreateEventRequest struct {
	Title       string  `json:"title" validate:"required,min=2,max=200"`
	Description string  `json:"description" validate:"required"`
	BasePrice   float64 `json:"base_price" validate:"required,gt=0"`
	EventDate   string  `json:"event_date" validate:"required"`
	EventType   string  `json:"event_type" validate:"required,oneof=matinee evening"`
	ReleaseDate string  `json:"release_date" validate:"required"`
	ImageURL    *string `json:"image_url,omitempty" validate:"omitempty,url"`
	Duration    int     `json:"duration" validate:"required,gt=0"` // minutes
}
