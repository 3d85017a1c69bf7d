package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repository aggregates the per-entity storage ports. Services hold one
// Repository and never touch gorm directly.
type Repository interface {
	User() UserRepository
	Test() TestRepository
	Question() QuestionRepository
	AnswerOption() AnswerOptionRepository
	Attempt() AttemptRepository
	UserAnswer() UserAnswerRepository

	// WithTransaction runs fn against a Repository bound to a single
	// transaction; returning an error rolls everything back.
	WithTransaction(ctx context.Context, fn func(Repository) error) error

	Ping(ctx context.Context) error
	Close() error
}

// IsNotFoundError reports whether err is the storage layer's missing-row
// error, as opposed to a real failure.
func IsNotFoundError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// ===== SHARED FILTER STRUCTS =====

type TestFilters struct {
	CreatedBy  *uint  `json:"created_by"`
	ActiveOnly bool   `json:"active_only"`
	Limit      int    `json:"limit"`
	Offset     int    `json:"offset"`
	SortBy     string `json:"sort_by"`    // "created_at", "title"
	SortOrder  string `json:"sort_order"` // "asc", "desc"
}

type AttemptFilters struct {
	UserID       *uint `json:"user_id"`
	TestID       *uint `json:"test_id"`
	FinishedOnly bool  `json:"finished_only"`
	Limit        int   `json:"limit"`
	Offset       int   `json:"offset"`
}
