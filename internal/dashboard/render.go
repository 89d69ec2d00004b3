package dashboard

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	internDto "anoa.com/internfundraiser/internal/modules/intern/dto"
	internService "anoa.com/internfundraiser/internal/modules/intern/service"
	leaderboardDto "anoa.com/internfundraiser/internal/modules/leaderboard/dto"
	leaderboardService "anoa.com/internfundraiser/internal/modules/leaderboard/service"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"NGN": "₦",
}

var (
	headingColor  = color.New(color.FgHiMagenta, color.Bold)
	labelColor    = color.New(color.FgHiBlack)
	valueColor    = color.New(color.FgHiBlue, color.Bold)
	unlockedColor = color.New(color.FgHiGreen, color.Bold)
	lockedColor   = color.New(color.FgHiBlack)
	warnColor     = color.New(color.FgHiYellow)
)

// FormatCurrency renders amount with thousands separators and two decimals.
// Unknown currency codes are printed as a prefix.
func FormatCurrency(amount float64, currency string) string {
	formatted := humanize.FormatFloat("#,###.##", amount)
	if symbol, ok := currencySymbols[strings.ToUpper(currency)]; ok {
		return symbol + formatted
	}
	if currency == "" {
		return formatted
	}
	return strings.ToUpper(currency) + " " + formatted
}

type Renderer struct {
	out io.Writer
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// RenderDashboard prints the intern's stats, progress to the next reward and the
// reward list. Unlocked flags are recomputed from the raised amount.
func (r *Renderer) RenderDashboard(intern internDto.InternResponse, fallback bool) error {
	progress, err := internService.ComputeProgress(intern.DonationsRaised, intern.Rewards)
	if err != nil {
		return fmt.Errorf("compute progress: %w", err)
	}

	r.banner(fallback)
	headingColor.Fprintf(r.out, "Welcome back, %s!\n\n", firstName(intern.Name))

	r.stat("Total raised", FormatCurrency(intern.DonationsRaised, intern.Currency))
	r.stat("Referral code", intern.ReferralCode)
	r.stat("Leaderboard rank", fmt.Sprintf("#%d of %d", intern.LeaderboardPosition, intern.TotalInterns))
	r.stat("Rewards unlocked", fmt.Sprintf("%d/%d", progress.UnlockedCount, progress.TotalRewards))
	fmt.Fprintln(r.out)

	if progress.NextReward == nil {
		unlockedColor.Fprintln(r.out, "All rewards unlocked!")
	} else {
		headingColor.Fprintf(r.out, "Next reward: %s\n", progress.NextReward.Title)
		fmt.Fprintf(r.out, "%s %s%% (%s to go)\n",
			progressBar(progress.Percentage, 30),
			strconv.FormatFloat(progress.Percentage, 'f', 2, 64),
			FormatCurrency(progress.Remaining, intern.Currency),
		)
	}
	fmt.Fprintln(r.out)

	headingColor.Fprintln(r.out, "Rewards")
	for _, reward := range progress.Rewards {
		threshold := FormatCurrency(reward.Threshold, intern.Currency)
		if reward.Unlocked {
			unlockedColor.Fprintf(r.out, "  [x] %s (%s)\n", reward.Title, threshold)
		} else {
			lockedColor.Fprintf(r.out, "  [ ] %s (%s)\n", reward.Title, threshold)
		}
		if reward.Description != "" {
			labelColor.Fprintf(r.out, "      %s\n", reward.Description)
		}
	}

	return nil
}

// RenderLeaderboard prints the ranking table followed by its summary.
func (r *Renderer) RenderLeaderboard(entries []leaderboardDto.LeaderboardEntry, currency string, fallback bool) error {
	r.banner(fallback)
	headingColor.Fprintln(r.out, "Leaderboard")

	table := tablewriter.NewWriter(r.out)
	if err := table.Append([]string{"Rank", "Name", "Referral Code", "Raised", "Badges"}); err != nil {
		return fmt.Errorf("append header row: %w", err)
	}
	for _, entry := range entries {
		row := []string{
			fmt.Sprintf("#%d", entry.Rank),
			entry.Name,
			entry.ReferralCode,
			FormatCurrency(entry.DonationsRaised, currency),
			strconv.Itoa(entry.Badges),
		}
		if err := table.Append(row); err != nil {
			return fmt.Errorf("append row: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	fmt.Fprintln(r.out)

	summary := leaderboardService.Aggregate(entries)
	r.stat("Participants", strconv.Itoa(summary.Count))
	r.stat("Total raised", FormatCurrency(summary.Total, currency))
	r.stat("Average raised", FormatCurrency(summary.Average, currency))
	if len(entries) > 0 {
		r.stat("Top performer", entries[0].Name)
	}
	r.stat("Leader gap", FormatCurrency(summary.LeaderGap, currency))

	return nil
}

func (r *Renderer) banner(fallback bool) {
	if fallback {
		warnColor.Fprintln(r.out, "API unavailable, showing demo data")
	}
}

func (r *Renderer) stat(label, value string) {
	fmt.Fprintf(r.out, "%s %s\n", labelColor.Sprintf("%-18s", label+":"), valueColor.Sprint(value))
}

func firstName(name string) string {
	if fields := strings.Fields(name); len(fields) > 0 {
		return fields[0]
	}
	return "there"
}

func progressBar(percentage float64, width int) string {
	filled := int(percentage / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
