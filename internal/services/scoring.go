package services

import (
	"context"
	"fmt"

	"github.com/john-g1t/testing-service/internal/models"
)

// ScoreAnswers aggregates submitted answers into a total. Each answer with a
// resolvable option and a present score contributes that score; free-text
// answers, unresolvable options (e.g. deleted) and nil scores contribute 0.
// Every row counts: duplicate answers to the same question are all summed.
func ScoreAnswers(answers []*models.UserAnswer, options map[uint]*models.AnswerOption) int {
	total := 0
	for _, answer := range answers {
		if answer.AnswerOptionID == nil {
			continue
		}
		option, ok := options[*answer.AnswerOptionID]
		if !ok || option.Score == nil {
			continue
		}
		total += *option.Score
	}
	return total
}

// scoreAttempt resolves the selected options in one batch and feeds them to
// ScoreAnswers.
func (s *attemptService) scoreAttempt(ctx context.Context, answers []*models.UserAnswer) (int, error) {
	ids := make([]uint, 0, len(answers))
	seen := make(map[uint]bool, len(answers))
	for _, answer := range answers {
		if answer.AnswerOptionID == nil || seen[*answer.AnswerOptionID] {
			continue
		}
		seen[*answer.AnswerOptionID] = true
		ids = append(ids, *answer.AnswerOptionID)
	}

	options, err := s.repo.AnswerOption().GetByIDs(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve answer options: %w", err)
	}

	byID := make(map[uint]*models.AnswerOption, len(options))
	for _, option := range options {
		byID[option.ID] = option
	}

	return ScoreAnswers(answers, byID), nil
}
