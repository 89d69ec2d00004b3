package dto

import "anoa.com/internfundraiser/internal/entity"

// LeaderboardEntry is one ranked participant. Rank is 1-based.
type LeaderboardEntry struct {
	Rank            int     `json:"rank" validate:"gte=1"`
	Name            string  `json:"name" validate:"required"`
	ReferralCode    string  `json:"referralCode" validate:"required"`
	DonationsRaised float64 `json:"donationsRaised" validate:"gte=0"`
	Badges          int     `json:"badges" validate:"gte=0"`
}

// Summary aggregates the raised amounts of a leaderboard.
type Summary struct {
	Count     int     `json:"count"`
	Total     float64 `json:"total"`
	Average   float64 `json:"average"`
	LeaderGap float64 `json:"leaderGap"`
	TopRaised float64 `json:"topRaised"`
}

// Snapshot is pushed to websocket subscribers.
type Snapshot struct {
	Entries []LeaderboardEntry `json:"entries"`
	Summary Summary            `json:"summary"`
}

func NewLeaderboardEntries(entries []entity.LeaderboardEntry) []LeaderboardEntry {
	res := make([]LeaderboardEntry, 0, len(entries))
	for _, entry := range entries {
		res = append(res, LeaderboardEntry{
			Rank:            entry.Rank,
			Name:            entry.Name,
			ReferralCode:    entry.ReferralCode,
			DonationsRaised: entry.DonationsRaised.InexactFloat64(),
			Badges:          entry.Badges,
		})
	}
	return res
}
