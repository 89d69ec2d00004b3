package dashboard

import (
	"bytes"
	"testing"

	"anoa.com/internfundraiser/internal/bootstrap"
	internDto "anoa.com/internfundraiser/internal/modules/intern/dto"
	leaderboardDto "anoa.com/internfundraiser/internal/modules/leaderboard/dto"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$15,750.50", FormatCurrency(15750.5, "USD"))
	assert.Equal(t, "$0.00", FormatCurrency(0, "usd"))
	assert.Equal(t, "€1,000.00", FormatCurrency(1000, "EUR"))
	assert.Equal(t, "JPY 2,500.00", FormatCurrency(2500, "JPY"))
	assert.Equal(t, "12.30", FormatCurrency(12.3, ""))
}

func TestRenderDashboard(t *testing.T) {
	var out bytes.Buffer
	intern := internDto.NewInternResponse(bootstrap.DefaultIntern(), bootstrap.DefaultRewards())

	require.NoError(t, NewRenderer(&out).RenderDashboard(intern, false))

	text := out.String()
	assert.Contains(t, text, "Welcome back, Jahswill!")
	assert.Contains(t, text, "$15,750.50")
	assert.Contains(t, text, "jahswill2025")
	assert.Contains(t, text, "#3 of 50")
	assert.Contains(t, text, "5/6")
	assert.Contains(t, text, "Next reward: Diamond Elite")
	assert.Contains(t, text, "63.00%")
	assert.Contains(t, text, "$9,249.50 to go")
	assert.Contains(t, text, "[x] Platinum Access")
	assert.Contains(t, text, "[ ] Diamond Elite")
	assert.NotContains(t, text, "demo data")
}

func TestRenderDashboard_AllUnlocked(t *testing.T) {
	var out bytes.Buffer
	intern := internDto.NewInternResponse(bootstrap.DefaultIntern(), bootstrap.DefaultRewards())
	intern.DonationsRaised = 30000

	require.NoError(t, NewRenderer(&out).RenderDashboard(intern, true))

	assert.Contains(t, out.String(), "All rewards unlocked!")
	assert.Contains(t, out.String(), "6/6")
	assert.Contains(t, out.String(), "showing demo data")
}

func TestRenderDashboard_InvalidAmount(t *testing.T) {
	intern := internDto.NewInternResponse(bootstrap.DefaultIntern(), bootstrap.DefaultRewards())
	intern.DonationsRaised = -1

	assert.Error(t, NewRenderer(&bytes.Buffer{}).RenderDashboard(intern, false))
}

func TestRenderLeaderboard(t *testing.T) {
	var out bytes.Buffer
	entries := leaderboardDto.NewLeaderboardEntries(bootstrap.DefaultLeaderboard())

	require.NoError(t, NewRenderer(&out).RenderLeaderboard(entries, "USD", false))

	text := out.String()
	assert.Contains(t, text, "Sarah Chen")
	assert.Contains(t, text, "$22,340.75")
	assert.Contains(t, text, "$84,182.40")
	assert.Contains(t, text, "$16,836.48")
	assert.Contains(t, text, "$3,350.50")
	assert.Contains(t, text, "Top performer")
}

func TestRenderLeaderboard_Empty(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, NewRenderer(&out).RenderLeaderboard(nil, "USD", false))

	assert.Contains(t, out.String(), "$0.00")
	assert.NotContains(t, out.String(), "Top performer")
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "[----]", progressBar(0, 4))
	assert.Equal(t, "[##--]", progressBar(50, 4))
	assert.Equal(t, "[####]", progressBar(100, 4))
}
