package services

import (
	"context"
	"fmt"
	"time"

	"github.com/john-g1t/testing-service/internal/events"
	"github.com/john-g1t/testing-service/internal/models"
	"github.com/john-g1t/testing-service/internal/repositories"
)

// ===== TIME WINDOW ENFORCEMENT =====

// checkTestWindow validates that a test accepts new attempts at the given
// instant: active flag first, then the optional [StartTime, EndTime] bounds.
// Used only at start; the per-attempt deadline is a separate concern.
func checkTestWindow(test *models.Test, now time.Time) error {
	if !test.IsActive {
		return ErrTestInactive
	}
	if test.StartTime != nil && now.Before(*test.StartTime) {
		return ErrTestNotYetOpen
	}
	if test.EndTime != nil && now.After(*test.EndTime) {
		return ErrTestWindowClosed
	}
	return nil
}

// clampFinishTime caps a late finish at startedAt + timeLimit. The deadline
// is independent of the test's own end time: an attempt started just before
// the window closes may legitimately run past it.
func clampFinishTime(test *models.Test, attempt *models.TestAttempt, now time.Time) time.Time {
	if test.TimeLimit == nil {
		return now
	}
	deadline := attempt.StartedAt.Add(time.Duration(*test.TimeLimit) * time.Minute)
	if now.After(deadline) {
		return deadline
	}
	return now
}

// ===== HELPER FUNCTIONS =====

func (s *attemptService) getAttempt(ctx context.Context, attemptID uint) (*models.TestAttempt, error) {
	attempt, err := s.repo.Attempt().GetByID(ctx, attemptID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrAttemptNotFound
		}
		return nil, fmt.Errorf("failed to get attempt: %w", err)
	}
	return attempt, nil
}

// publish sends a lifecycle event best-effort; a broker failure never fails
// the operation that already committed.
func (s *attemptService) publish(ctx context.Context, event *events.AttemptEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishAttemptEvent(ctx, event); err != nil {
		s.logger.Error("Failed to publish attempt event",
			"event_type", event.Type,
			"attempt_id", event.AttemptID,
			"error", err)
	}
}
