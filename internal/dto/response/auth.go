package response

import (
	"time"

	"theater-booking/internal/data/entity"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           *string   `json:"phone,omitempty"`
	DateOfBirth     string    `json:"date_of_birth"`
	Role            string    `json:"role"`
	IsLoyaltyMember bool      `json:"is_loyalty_member"`
	LoyaltySince    *string   `json:"loyalty_since,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func NewUserResponse(user *entity.User) UserResponse {
	resp := UserResponse{
		ID:              user.ID,
		Name:            user.Name,
		Email:           user.Email,
		Phone:           user.Phone,
		DateOfBirth:     user.DateOfBirth.Format("2006-01-02"),
		Role:            string(user.Role),
		IsLoyaltyMember: user.IsLoyaltyMember,
		CreatedAt:       user.CreatedAt,
	}
	if user.LoyaltySince != nil {
		since := user.LoyaltySince.Format("2006-01-02")
		resp.LoyaltySince = &since
	}
	return resp
}
