package service

import (
	"anoa.com/internfundraiser/internal/modules/leaderboard/dto"
	"github.com/shopspring/decimal"
)

// Aggregate sums the raised amounts of entries. Entries are expected in rank order
// (descending raised amount) and are not re-sorted, so LeaderGap compares the first two
// entries as given.
func Aggregate(entries []dto.LeaderboardEntry) dto.Summary {
	summary := dto.Summary{Count: len(entries)}
	if len(entries) == 0 {
		return summary
	}

	total := decimal.Zero
	for _, entry := range entries {
		total = total.Add(decimal.NewFromFloat(entry.DonationsRaised))
	}

	first := decimal.NewFromFloat(entries[0].DonationsRaised)
	summary.Total = total.Round(2).InexactFloat64()
	summary.Average = total.Div(decimal.NewFromInt(int64(len(entries)))).Round(2).InexactFloat64()
	summary.TopRaised = first.InexactFloat64()

	if len(entries) >= 2 {
		summary.LeaderGap = first.Sub(decimal.NewFromFloat(entries[1].DonationsRaised)).Round(2).InexactFloat64()
	}

	return summary
}
