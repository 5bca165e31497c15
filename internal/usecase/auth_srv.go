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

// Customers aged 18 or over at signup are enrolled into the loyalty
// programme automatically.
const loyaltyEnrollmentAge = 18

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	GetMe(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
	UpdateMe(ctx context.Context, userID uuid.UUID, req *request.UpdateMeRequest) (*response.UserResponse, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, req *request.UpdatePasswordRequest) (*response.AuthResponse, error)
}

type authService struct {
	userRepo  repository.UserRepository
	jwtConfig utils.JWTConfig
	log       *zap.Logger
}

func NewAuthService(userRepo repository.UserRepository, jwtConfig utils.JWTConfig, log *zap.Logger) AuthService {
	return &authService{
		userRepo:  userRepo,
		jwtConfig: jwtConfig,
		log:       log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	dateOfBirth, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("register: parse date of birth: %w", err)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		DateOfBirth:  dateOfBirth,
		Role:         entity.RoleCustomer,
		IsActive:     true,
	}
	if req.Phone != "" {
		user.Phone = &req.Phone
	}
	if user.Age(now) >= loyaltyEnrollmentAge {
		user.IsLoyaltyMember = true
		user.LoyaltySince = &now
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.Bool("loyalty_member", user.IsLoyaltyMember),
	)

	return s.authResponse(user)
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if user == nil || !utils.CheckPassword(user.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrAccountDeactivated
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))

	return s.authResponse(user)
}

func (s *authService) GetMe(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get me: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	resp := response.NewUserResponse(user)
	return &resp, nil
}

func (s *authService) UpdateMe(ctx context.Context, userID uuid.UUID, req *request.UpdateMeRequest) (*response.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("update me: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.DateOfBirth != nil {
		dateOfBirth, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return nil, fmt.Errorf("update me: parse date of birth: %w", err)
		}
		user.DateOfBirth = dateOfBirth
	}

	// Enrollment is one way: a corrected date of birth can add loyalty
	// membership but never revokes it.
	now := time.Now()
	if !user.IsLoyaltyMember && user.Age(now) >= loyaltyEnrollmentAge {
		user.IsLoyaltyMember = true
		user.LoyaltySince = &now
	}
	user.UpdatedAt = now

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update me: %w", err)
	}

	resp := response.NewUserResponse(user)
	return &resp, nil
}

// UpdatePassword verifies the current password, stores the new hash and
// issues a fresh token.
func (s *authService) UpdatePassword(ctx context.Context, userID uuid.UUID, req *request.UpdatePasswordRequest) (*response.AuthResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("update password: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if !utils.CheckPassword(user.PasswordHash, req.CurrentPassword) {
		return nil, ErrInvalidCredentials
	}

	passwordHash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return nil, fmt.Errorf("update password: hash password: %w", err)
	}
	user.PasswordHash = passwordHash
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update password: %w", err)
	}

	s.log.Info("Password updated", zap.String("user_id", userID.String()))
	return s.authResponse(user)
}

func (s *authService) authResponse(user *entity.User) (*response.AuthResponse, error) {
	token, err := utils.GenerateToken(s.jwtConfig.Secret, user.ID, s.jwtConfig.ExpiryHours)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &response.AuthResponse{
		Token: token,
		User:  response.NewUserResponse(user),
	}, nil
}
