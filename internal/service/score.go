package service

import (
	"context"
	"fmt"

	"spam_detector/internal/repository"
)

// ScoreCalculator computes the spam likelihood of a phone number: the share
// of the registered population that has reported it, as a percentage in
// [0, 100]. With no registered users the score is defined as 0.
type ScoreCalculator struct {
	userRepo   repository.UserRepository
	reportRepo repository.SpamReportRepository
}

// NewScoreCalculator creates a new ScoreCalculator
func NewScoreCalculator(userRepo repository.UserRepository, reportRepo repository.SpamReportRepository) *ScoreCalculator {
	return &ScoreCalculator{userRepo: userRepo, reportRepo: reportRepo}
}

// Score computes the spam likelihood of a single phone number
func (c *ScoreCalculator) Score(ctx context.Context, phone string) (float64, error) {
	total, err := c.userRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count users for score: %w", err)
	}
	if total == 0 {
		return 0, nil
	}

	count, err := c.reportRepo.CountByPhone(ctx, phone)
	if err != nil {
		return 0, fmt.Errorf("failed to count reports for score: %w", err)
	}
	return float64(count) * 100.0 / float64(total), nil
}

// ScoreMap computes scores for every reported phone number in two queries.
// Phone numbers absent from the map implicitly score 0. Name search uses
// this instead of Score to avoid recounting reports per candidate row.
func (c *ScoreCalculator) ScoreMap(ctx context.Context) (map[string]float64, error) {
	scores := make(map[string]float64)

	total, err := c.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users for score map: %w", err)
	}
	if total == 0 {
		return scores, nil
	}

	counts, err := c.reportRepo.CountsGroupedByPhone(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load grouped report counts: %w", err)
	}
	for phone, count := range counts {
		scores[phone] = float64(count) * 100.0 / float64(total)
	}
	return scores, nil
}
