package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Intern struct {
	ID                  uint            `gorm:"primaryKey" json:"id"`
	Name                string          `gorm:"size:100;not null" json:"name"`
	ReferralCode        string          `gorm:"size:50;uniqueIndex;not null" json:"referral_code"`
	DonationsRaised     decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"donations_raised"`
	Currency            string          `gorm:"size:3;not null;default:'USD'" json:"currency"`
	LeaderboardPosition int             `gorm:"not null" json:"leaderboard_position"`
	TotalInterns        int             `gorm:"not null" json:"total_interns"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// Reward is a milestone definition shared by every intern.
// Whether it is unlocked is derived from an intern's raised amount and never stored.
type Reward struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Title       string          `gorm:"size:100;not null" json:"title"`
	Description string          `gorm:"size:255" json:"description"`
	Threshold   decimal.Decimal `gorm:"type:numeric(14,2);uniqueIndex;not null" json:"threshold"`
}

type LeaderboardEntry struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	Rank            int             `gorm:"uniqueIndex;not null" json:"rank"`
	Name            string          `gorm:"size:100;not null" json:"name"`
	ReferralCode    string          `gorm:"size:50;uniqueIndex;not null" json:"referral_code"`
	DonationsRaised decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"donations_raised"`
	Badges          int             `gorm:"not null;default:0" json:"badges"`
}
