package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/john-g1t/testing-service/internal/models"
)

type questionPayload struct {
	Text       string            `json:"text" validate:"required"`
	AnswerType models.AnswerType `json:"answer_type" validate:"required,answer_type"`
}

func TestValidateAnswerType(t *testing.T) {
	v := NewValidator()

	for _, answerType := range []models.AnswerType{models.AnswerSingle, models.AnswerMultiple, models.AnswerText} {
		assert.NoError(t, v.Validate(questionPayload{Text: "q", AnswerType: answerType}), string(answerType))
	}

	assert.Error(t, v.Validate(questionPayload{Text: "q", AnswerType: "checkbox"}))
	assert.Error(t, v.Validate(questionPayload{Text: "", AnswerType: models.AnswerSingle}))
}
