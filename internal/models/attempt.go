package models

import "time"

// TestAttempt is one user's timed run through a test. FinishedAt is nil while
// the attempt is in progress and set exactly once at finish; a finished
// attempt is terminal. AttemptNumber is 1-based per (user, test) pair and the
// unique index makes racing starts fail the insert instead of duplicating a
// number.
type TestAttempt struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	UserID        uint       `json:"user_id" gorm:"not null;index;uniqueIndex:idx_attempt_user_test_number"`
	TestID        uint       `json:"test_id" gorm:"not null;index;uniqueIndex:idx_attempt_user_test_number"`
	StartedAt     time.Time  `json:"started_at" gorm:"not null"`
	FinishedAt    *time.Time `json:"finished_at"`
	Score         int        `json:"score" gorm:"not null;default:0"`
	AttemptNumber int        `json:"attempt_number" gorm:"not null;uniqueIndex:idx_attempt_user_test_number"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Answers []UserAnswer `json:"answers,omitempty" gorm:"foreignKey:AttemptID"`
}

func (TestAttempt) TableName() string {
	return "test_attempts"
}

// IsFinished reports whether the attempt has reached its terminal state.
func (a *TestAttempt) IsFinished() bool {
	return a.FinishedAt != nil
}

// UserAnswer is an append-only submission row. Repeated submissions for the
// same question produce additional rows; the scoring engine sums across all
// of them.
type UserAnswer struct {
	ID             uint    `json:"id" gorm:"primaryKey"`
	AttemptID      uint    `json:"attempt_id" gorm:"not null;index"`
	QuestionID     uint    `json:"question_id" gorm:"not null;index"`
	AnswerOptionID *uint   `json:"answer_option_id"`
	AnswerText     *string `json:"answer_text" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
}

func (UserAnswer) TableName() string {
	return "user_answers"
}
