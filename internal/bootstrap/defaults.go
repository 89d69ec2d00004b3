package bootstrap

import (
	"anoa.com/internfundraiser/internal/entity"
	"github.com/shopspring/decimal"
)

// DefaultIntern is the demo participant served when no database is configured.
// The dashboard client falls back to the same record when the API is unreachable.
func DefaultIntern() entity.Intern {
	return entity.Intern{
		ID:                  1,
		Name:                "Jahswill Johnson",
		ReferralCode:        "jahswill2025",
		DonationsRaised:     decimal.RequireFromString("15750.50"),
		Currency:            "USD",
		LeaderboardPosition: 3,
		TotalInterns:        50,
	}
}

// DefaultRewards is the reward ladder in ascending threshold order.
func DefaultRewards() []entity.Reward {
	return []entity.Reward{
		{ID: 1, Title: "First Donation Shoutout", Description: "Get featured on our social media", Threshold: decimal.NewFromInt(100)},
		{ID: 2, Title: "Bronze Badge", Description: "Unlock Bronze Fundraiser Badge", Threshold: decimal.NewFromInt(500)},
		{ID: 3, Title: "Silver Badge", Description: "Unlock Silver Fundraiser Badge", Threshold: decimal.NewFromInt(2000)},
		{ID: 4, Title: "Gold Badge", Description: "Unlock Gold Fundraiser Badge", Threshold: decimal.NewFromInt(5000)},
		{ID: 5, Title: "Platinum Access", Description: "Exclusive mentor session and bonus resources", Threshold: decimal.NewFromInt(10000)},
		{ID: 6, Title: "Diamond Elite", Description: "VIP networking event access", Threshold: decimal.NewFromInt(25000)},
	}
}

// DefaultLeaderboard is ordered by rank, which is descending raised amount.
func DefaultLeaderboard() []entity.LeaderboardEntry {
	return []entity.LeaderboardEntry{
		{ID: 1, Rank: 1, Name: "Sarah Chen", ReferralCode: "sarah2025", DonationsRaised: decimal.RequireFromString("22340.75"), Badges: 6},
		{ID: 2, Rank: 2, Name: "Marcus Thompson", ReferralCode: "marcus2025", DonationsRaised: decimal.RequireFromString("18990.25"), Badges: 5},
		{ID: 3, Rank: 3, Name: "Jahswill Johnson", ReferralCode: "jahswill2025", DonationsRaised: decimal.RequireFromString("15750.50"), Badges: 5},
		{ID: 4, Rank: 4, Name: "Emma Rodriguez", ReferralCode: "emma2025", DonationsRaised: decimal.RequireFromString("14230.00"), Badges: 5},
		{ID: 5, Rank: 5, Name: "David Kim", ReferralCode: "david2025", DonationsRaised: decimal.RequireFromString("12870.90"), Badges: 4},
	}
}
