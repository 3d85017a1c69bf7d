package models

import "time"

type AnswerType string

const (
	AnswerSingle   AnswerType = "single"
	AnswerMultiple AnswerType = "multiple"
	AnswerText     AnswerType = "text"
)

// Question belongs to exactly one Test. The answer type is a display hint for
// the taking UI; aggregation is driven purely by which options were selected.
type Question struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	TestID     uint       `json:"test_id" gorm:"not null;index"`
	Text       string     `json:"text" gorm:"not null;type:text" validate:"required,min=1"`
	AnswerType AnswerType `json:"answer_type" gorm:"not null;size:20" validate:"required,answer_type"`
	MaxPoints  *int       `json:"max_points" validate:"omitempty,min=0"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Options []AnswerOption `json:"options,omitempty" gorm:"foreignKey:QuestionID"`
}

func (Question) TableName() string {
	return "questions"
}

// AnswerOption is one selectable choice for a question. A nil Score counts
// as zero during aggregation.
type AnswerOption struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	QuestionID uint   `json:"question_id" gorm:"not null;index"`
	OptionText string `json:"option_text" gorm:"not null;type:text" validate:"required,min=1"`
	Score      *int   `json:"score"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (AnswerOption) TableName() string {
	return "answer_options"
}
