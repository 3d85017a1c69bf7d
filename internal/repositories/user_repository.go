package repositories

import (
	"context"

	"github.com/john-g1t/testing-service/internal/models"
)

// UserRepository is the storage port for users (minimal for the attempt
// engine: existence checks and lookups).
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Count(ctx context.Context) (int64, error)
}
