package dto

import "anoa.com/internfundraiser/internal/entity"

type RewardResponse struct {
	ID          int     `json:"id" validate:"gt=0"`
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Unlocked    bool    `json:"unlocked"`
	Threshold   float64 `json:"threshold" validate:"gt=0"`
}

// InternResponse is the participant payload of GET /api/intern.
type InternResponse struct {
	Name                string           `json:"name" validate:"required"`
	ReferralCode        string           `json:"referralCode" validate:"required"`
	DonationsRaised     float64          `json:"donationsRaised" validate:"gte=0"`
	Currency            string           `json:"currency" validate:"required,len=3"`
	Rewards             []RewardResponse `json:"rewards" validate:"dive"`
	LeaderboardPosition int              `json:"leaderboardPosition" validate:"gte=1"`
	TotalInterns        int              `json:"totalInterns" validate:"gtefield=LeaderboardPosition"`
}

// ProgressResponse describes how far an intern is along the reward ladder.
// NextReward is nil once every reward is unlocked.
type ProgressResponse struct {
	DonationsRaised      float64          `json:"donationsRaised"`
	NextReward           *RewardResponse  `json:"nextReward"`
	Percentage           float64          `json:"percentage"`
	Remaining            float64          `json:"remaining"`
	UnlockedCount        int              `json:"unlockedCount"`
	LockedCount          int              `json:"lockedCount"`
	TotalRewards         int              `json:"totalRewards"`
	CompletionPercentage float64          `json:"completionPercentage"`
	Rewards              []RewardResponse `json:"rewards"`
}

// NewInternResponse maps stored records to the wire shape. Unlocked flags are left
// false; they are derived by the progress calculator.
func NewInternResponse(intern entity.Intern, rewards []entity.Reward) InternResponse {
	res := InternResponse{
		Name:                intern.Name,
		ReferralCode:        intern.ReferralCode,
		DonationsRaised:     intern.DonationsRaised.InexactFloat64(),
		Currency:            intern.Currency,
		Rewards:             make([]RewardResponse, 0, len(rewards)),
		LeaderboardPosition: intern.LeaderboardPosition,
		TotalInterns:        intern.TotalInterns,
	}

	for _, reward := range rewards {
		res.Rewards = append(res.Rewards, RewardResponse{
			ID:          int(reward.ID),
			Title:       reward.Title,
			Description: reward.Description,
			Threshold:   reward.Threshold.InexactFloat64(),
		})
	}

	return res
}
