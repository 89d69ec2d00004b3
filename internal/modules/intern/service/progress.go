package service

import (
	"fmt"
	"math"

	"anoa.com/internfundraiser/internal/modules/intern/dto"
	"anoa.com/internfundraiser/pkg/apperror"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ComputeProgress derives the unlocked flag of every reward from raisedAmount and finds
// the first locked reward in the order given. Rewards are not sorted here; callers that
// cannot vouch for their ordering should run ValidateRewards first.
//
// Percentage is truncated to two decimals so a locked reward never reports 100.
func ComputeProgress(raisedAmount float64, rewards []dto.RewardResponse) (dto.ProgressResponse, error) {
	if !isAmount(raisedAmount) || raisedAmount < 0 {
		return dto.ProgressResponse{}, fmt.Errorf("%w: raised amount must be a non-negative number, got %v", apperror.ErrInvalidInput, raisedAmount)
	}

	raised := decimal.NewFromFloat(raisedAmount)
	progress := dto.ProgressResponse{
		DonationsRaised: raisedAmount,
		Percentage:      100,
		TotalRewards:    len(rewards),
		Rewards:         make([]dto.RewardResponse, 0, len(rewards)),
	}

	var nextThreshold decimal.Decimal
	for _, reward := range rewards {
		if !isAmount(reward.Threshold) || reward.Threshold <= 0 {
			return dto.ProgressResponse{}, fmt.Errorf("%w: reward %d threshold must be positive, got %v", apperror.ErrInvalidInput, reward.ID, reward.Threshold)
		}

		threshold := decimal.NewFromFloat(reward.Threshold)
		reward.Unlocked = raised.GreaterThanOrEqual(threshold)
		progress.Rewards = append(progress.Rewards, reward)

		if reward.Unlocked {
			progress.UnlockedCount++
			continue
		}

		progress.LockedCount++
		if progress.NextReward == nil {
			next := reward
			progress.NextReward = &next
			nextThreshold = threshold
		}
	}

	if progress.NextReward != nil {
		percentage := decimal.Min(raised.Div(nextThreshold).Mul(hundred), hundred)
		progress.Percentage = percentage.Truncate(2).InexactFloat64()
		progress.Remaining = nextThreshold.Sub(raised).Round(2).InexactFloat64()
	}

	if progress.TotalRewards > 0 {
		progress.CompletionPercentage = decimal.NewFromInt(int64(progress.UnlockedCount)).
			Mul(hundred).
			Div(decimal.NewFromInt(int64(progress.TotalRewards))).
			Round(0).
			InexactFloat64()
	}

	return progress, nil
}

// ValidateRewards checks what ComputeProgress trusts: positive thresholds in strictly
// ascending order and unique ids.
func ValidateRewards(rewards []dto.RewardResponse) error {
	seen := make(map[int]struct{}, len(rewards))
	for i, reward := range rewards {
		if !isAmount(reward.Threshold) || reward.Threshold <= 0 {
			return fmt.Errorf("%w: reward %d threshold must be positive, got %v", apperror.ErrInvalidInput, reward.ID, reward.Threshold)
		}
		if _, dup := seen[reward.ID]; dup {
			return fmt.Errorf("%w: duplicate reward id %d", apperror.ErrInvalidInput, reward.ID)
		}
		seen[reward.ID] = struct{}{}

		if i > 0 && reward.Threshold <= rewards[i-1].Threshold {
			return fmt.Errorf("%w: reward %d threshold %v is not above previous threshold %v",
				apperror.ErrInvalidInput, reward.ID, reward.Threshold, rewards[i-1].Threshold)
		}
	}
	return nil
}

func isAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
