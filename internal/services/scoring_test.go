package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/john-g1t/testing-service/internal/models"
)

func TestScoreAnswers(t *testing.T) {
	options := map[uint]*models.AnswerOption{
		1: {ID: 1, Score: intPtr(5)},
		2: {ID: 2, Score: intPtr(3)},
		3: {ID: 3, Score: nil},
	}

	tests := []struct {
		name    string
		answers []*models.UserAnswer
		want    int
	}{
		{
			name:    "no answers",
			answers: nil,
			want:    0,
		},
		{
			name: "single scored option",
			answers: []*models.UserAnswer{
				{AnswerOptionID: uintPtr(1)},
			},
			want: 5,
		},
		{
			name: "multiple options summed",
			answers: []*models.UserAnswer{
				{AnswerOptionID: uintPtr(1)},
				{AnswerOptionID: uintPtr(2)},
			},
			want: 8,
		},
		{
			name: "free text contributes nothing",
			answers: []*models.UserAnswer{
				{AnswerOptionID: uintPtr(1)},
				{AnswerText: stringPtr("an essay")},
			},
			want: 5,
		},
		{
			name: "nil option score contributes nothing",
			answers: []*models.UserAnswer{
				{AnswerOptionID: uintPtr(3)},
				{AnswerOptionID: uintPtr(2)},
			},
			want: 3,
		},
		{
			name: "unresolvable option contributes nothing",
			answers: []*models.UserAnswer{
				{AnswerOptionID: uintPtr(99)},
				{AnswerOptionID: uintPtr(1)},
			},
			want: 5,
		},
		{
			name: "duplicate rows all counted",
			answers: []*models.UserAnswer{
				{QuestionID: 7, AnswerOptionID: uintPtr(1)},
				{QuestionID: 7, AnswerOptionID: uintPtr(1)},
			},
			want: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScoreAnswers(tt.answers, options))
		})
	}
}
