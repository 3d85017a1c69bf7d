package models

import (
	"time"

	"gorm.io/gorm"
)

// Test is a timed, multi-question assessment. TimeLimit is the per-attempt
// budget in minutes; StartTime/EndTime bound when new attempts may begin.
// All optional fields are nil when the creator did not set them.
type Test struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	CreatedBy   uint       `json:"created_by" gorm:"not null;index"`
	Title       string     `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description *string    `json:"description" gorm:"type:text" validate:"omitempty,max=1000"`
	TimeLimit   *int       `json:"time_limit" validate:"omitempty,min=1"` // minutes per attempt
	MaxAttempts *int       `json:"max_attempts" validate:"omitempty,min=1"`
	IsActive    bool       `json:"is_active" gorm:"default:true;index"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Questions []Question    `json:"questions,omitempty" gorm:"foreignKey:TestID"`
	Attempts  []TestAttempt `json:"attempts,omitempty" gorm:"foreignKey:TestID"`
}

func (Test) TableName() string {
	return "tests"
}
