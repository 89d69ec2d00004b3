package bootstrap

import (
	"context"
	"errors"
	"testing"

	internDto "anoa.com/internfundraiser/internal/modules/intern/dto"
	internService "anoa.com/internfundraiser/internal/modules/intern/service"
	"anoa.com/internfundraiser/pkg/validator"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: mockDB, DriverName: "postgres"}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestDefaultDatasetIsConsistent(t *testing.T) {
	intern := internDto.NewInternResponse(DefaultIntern(), DefaultRewards())
	require.NoError(t, validator.Struct(intern))
	require.NoError(t, internService.ValidateRewards(intern.Rewards))

	entries := DefaultLeaderboard()
	for i, entry := range entries {
		assert.Equal(t, i+1, entry.Rank)
		if i > 0 {
			assert.True(t, entry.DonationsRaised.LessThanOrEqual(entries[i-1].DonationsRaised), "rank %d out of order", entry.Rank)
		}
	}

	var found bool
	for _, entry := range entries {
		if entry.ReferralCode == DefaultIntern().ReferralCode {
			found = true
			assert.Equal(t, DefaultIntern().LeaderboardPosition, entry.Rank)
			assert.True(t, entry.DonationsRaised.Equal(DefaultIntern().DonationsRaised))
		}
	}
	assert.True(t, found, "default intern should appear on the leaderboard")
}

func TestDefaultsReturnFreshCopies(t *testing.T) {
	rewards := DefaultRewards()
	rewards[0].Title = "changed"
	assert.Equal(t, "First Donation Shoutout", DefaultRewards()[0].Title)
}

func TestSeed_SkipsPopulatedTables(t *testing.T) {
	db, mock := newMockDB(t)

	for _, table := range []string{"interns", "rewards", "leaderboard_entries"} {
		mock.ExpectQuery(`SELECT count\(\*\) FROM "` + table + `"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	}

	require.NoError(t, Seed(context.Background(), db, zap.NewNop()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeed_PropagatesCountError(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "interns"`).
		WillReturnError(errors.New("relation does not exist"))

	err := Seed(context.Background(), db, zap.NewNop())
	assert.ErrorContains(t, err, "failed to count")
	assert.NoError(t, mock.ExpectationsWereMet())
}
