package events

import (
	"time"

	"github.com/google/uuid"
)

type AttemptEventType string

const (
	AttemptStarted  AttemptEventType = "attempt.started"
	AttemptFinished AttemptEventType = "attempt.finished"
)

// AttemptEvent is the wire payload published after a lifecycle transition.
// Score and FinishedAt are only set on attempt.finished.
type AttemptEvent struct {
	ID            string           `json:"id"`
	Type          AttemptEventType `json:"type"`
	Source        string           `json:"source"`
	Timestamp     time.Time        `json:"timestamp"`
	AttemptID     uint             `json:"attempt_id"`
	UserID        uint             `json:"user_id"`
	TestID        uint             `json:"test_id"`
	AttemptNumber int              `json:"attempt_number"`
	Score         *int             `json:"score,omitempty"`
	FinishedAt    *time.Time       `json:"finished_at,omitempty"`
}

func NewAttemptStartedEvent(attemptID, userID, testID uint, attemptNumber int) *AttemptEvent {
	return &AttemptEvent{
		ID:            uuid.NewString(),
		Type:          AttemptStarted,
		Source:        "testing-service",
		Timestamp:     time.Now(),
		AttemptID:     attemptID,
		UserID:        userID,
		TestID:        testID,
		AttemptNumber: attemptNumber,
	}
}

func NewAttemptFinishedEvent(attemptID, userID, testID uint, attemptNumber, score int, finishedAt time.Time) *AttemptEvent {
	return &AttemptEvent{
		ID:            uuid.NewString(),
		Type:          AttemptFinished,
		Source:        "testing-service",
		Timestamp:     time.Now(),
		AttemptID:     attemptID,
		UserID:        userID,
		TestID:        testID,
		AttemptNumber: attemptNumber,
		Score:         &score,
		FinishedAt:    &finishedAt,
	}
}
