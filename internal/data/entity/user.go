package entity

import "time"

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

type User struct {
	Base
	Name            string     `db:"name"`
	Email           string     `db:"email"`
	PasswordHash    string     `db:"password"`
	Phone           *string    `db:"phone"`
	DateOfBirth     time.Time  `db:"date_of_birth"`
	Role            UserRole   `db:"role"`
	IsLoyaltyMember bool       `db:"is_loyalty_member"`
	LoyaltySince    *time.Time `db:"loyalty_since"`
	IsActive        bool       `db:"is_active"`
}

// Age returns the user's age in whole years at the given time.
func (u *User) Age(at time.Time) int {
	age := at.Year() - u.DateOfBirth.Year()
	if at.Month() < u.DateOfBirth.Month() ||
		(at.Month() == u.DateOfBirth.Month() && at.Day() < u.DateOfBirth.Day()) {
		age--
	}
	return age
}
