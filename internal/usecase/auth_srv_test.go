package usecase

import (
	"context"
	"testing"
	"time"

	"theater-booking/internal/data/entity"
	"theater-booking/internal/dto/request"
	"theater-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

var testJWTConfig = utils.JWTConfig{Secret: "test-secret", ExpiryHours: 24}

func newAuthFixture() (*MockUserRepository, AuthService) {
	userRepo := new(MockUserRepository)
	service := NewAuthService(userRepo, testJWTConfig, zap.NewNop())
	return userRepo, service
}

func TestRegisterAdultAutoEnrollsLoyalty(t *testing.T) {
	userRepo, service := newAuthFixture()
	userRepo.On("FindByEmail", mock.Anything, "ada@example.com").Return(nil, nil)
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.IsLoyaltyMember && u.LoyaltySince != nil
	})).Return(nil)

	resp, err := service.Register(context.Background(), &request.RegisterRequest{
		Name:        "Ada Lovelace",
		Email:       "ada@example.com",
		Password:    "correct-horse",
		DateOfBirth: "1990-03-14",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.True(t, resp.User.IsLoyaltyMember)
	userRepo.AssertExpectations(t)
}

func TestRegisterMinorNotEnrolled(t *testing.T) {
	userRepo, service := newAuthFixture()
	dob := time.Now().AddDate(-16, 0, 0).Format("2006-01-02")
	userRepo.On("FindByEmail", mock.Anything, mock.Anything).Return(nil, nil)
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return !u.IsLoyaltyMember && u.LoyaltySince == nil
	})).Return(nil)

	resp, err := service.Register(context.Background(), &request.RegisterRequest{
		Name:        "Young Patron",
		Email:       "young@example.com",
		Password:    "correct-horse",
		DateOfBirth: dob,
	})

	assert.NoError(t, err)
	assert.False(t, resp.User.IsLoyaltyMember)
	userRepo.AssertExpectations(t)
}

func TestRegisterEmailTaken(t *testing.T) {
	userRepo, service := newAuthFixture()
	userRepo.On("FindByEmail", mock.Anything, "ada@example.com").Return(makeCustomer(false), nil)

	_, err := service.Register(context.Background(), &request.RegisterRequest{
		Name:        "Ada Lovelace",
		Email:       "ada@example.com",
		Password:    "correct-horse",
		DateOfBirth: "1990-03-14",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	hash, err := utils.HashPassword("correct-horse")
	assert.NoError(t, err)

	user := makeCustomer(false)
	user.PasswordHash = hash

	t.Run("success", func(t *testing.T) {
		userRepo, service := newAuthFixture()
		userRepo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)

		resp, err := service.Login(context.Background(), &request.LoginRequest{
			Email:    user.Email,
			Password: "correct-horse",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Token)

		parsedID, err := utils.ParseToken(testJWTConfig.Secret, resp.Token)
		assert.NoError(t, err)
		assert.Equal(t, user.ID, parsedID)
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepo, service := newAuthFixture()
		userRepo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)

		_, err := service.Login(context.Background(), &request.LoginRequest{
			Email:    user.Email,
			Password: "wrong",
		})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		userRepo, service := newAuthFixture()
		userRepo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

		_, err := service.Login(context.Background(), &request.LoginRequest{
			Email:    "nobody@example.com",
			Password: "correct-horse",
		})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("deactivated account", func(t *testing.T) {
		inactive := makeCustomer(false)
		inactive.PasswordHash = hash
		inactive.IsActive = false

		userRepo, service := newAuthFixture()
		userRepo.On("FindByEmail", mock.Anything, inactive.Email).Return(inactive, nil)

		_, err := service.Login(context.Background(), &request.LoginRequest{
			Email:    inactive.Email,
			Password: "correct-horse",
		})

		assert.ErrorIs(t, err, ErrAccountDeactivated)
	})
}

func TestUpdateMeCorrectedBirthDateEnrollsLoyalty(t *testing.T) {
	userRepo, service := newAuthFixture()
	user := makeCustomer(false)
	user.DateOfBirth = time.Now().AddDate(-16, 0, 0)

	userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	userRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.IsLoyaltyMember
	})).Return(nil)

	correctedDOB := "1985-06-01"
	resp, err := service.UpdateMe(context.Background(), user.ID, &request.UpdateMeRequest{
		DateOfBirth: &correctedDOB,
	})

	assert.NoError(t, err)
	assert.True(t, resp.IsLoyaltyMember)
	userRepo.AssertExpectations(t)
}

func TestUpdatePassword(t *testing.T) {
	hash, err := utils.HashPassword("old-password")
	assert.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		userRepo, service := newAuthFixture()
		user := makeCustomer(false)
		user.PasswordHash = hash
		userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
		userRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return utils.CheckPassword(u.PasswordHash, "new-password")
		})).Return(nil)

		resp, err := service.UpdatePassword(context.Background(), user.ID, &request.UpdatePasswordRequest{
			CurrentPassword: "old-password",
			NewPassword:     "new-password",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		userRepo.AssertExpectations(t)
	})

	t.Run("wrong current password", func(t *testing.T) {
		userRepo, service := newAuthFixture()
		user := makeCustomer(false)
		user.PasswordHash = hash
		userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

		_, err := service.UpdatePassword(context.Background(), user.ID, &request.UpdatePasswordRequest{
			CurrentPassword: "wrong",
			NewPassword:     "new-password",
		})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestGetMeNotFound(t *testing.T) {
	userRepo, service := newAuthFixture()
	userID := uuid.New()
	userRepo.On("FindByID", mock.Anything, userID).Return(nil, nil)

	_, err := service.GetMe(context.Background(), userID)

	assert.ErrorIs(t, err, ErrUserNotFound)
}
