package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/john-g1t/testing-service/internal/models"
	"github.com/john-g1t/testing-service/internal/repositories"
	"github.com/john-g1t/testing-service/internal/utils"
)

type userService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *utils.Validator
	hasher    utils.PasswordHasher
}

func NewUserService(repo repositories.Repository, logger *slog.Logger, validator *utils.Validator, hasher utils.PasswordHasher) UserService {
	return &userService{
		repo:      repo,
		logger:    logger,
		validator: validator,
		hasher:    hasher,
	}
}

func (s *userService) Register(ctx context.Context, req *RegisterUserRequest) (*models.User, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	if _, err := s.repo.User().GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !repositories.IsNotFoundError(err) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	}
	if err := s.repo.User().Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User registered", "user_id", user.ID)

	return user, nil
}

func (s *userService) GetByID(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.repo.User().GetByID(ctx, userID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *userService) Exists(ctx context.Context, userID uint) (bool, error) {
	exists, err := s.repo.User().Exists(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("failed to check user: %w", err)
	}
	return exists, nil
}
