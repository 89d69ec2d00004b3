package repository

import (
	"context"
	"errors"
	"testing"

	"anoa.com/internfundraiser/internal/entity"
	"anoa.com/internfundraiser/pkg/apperror"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockInternRepository(t *testing.T) (InternRepository, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: mockDB, DriverName: "postgres"}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewInternRepository(gormDB), mock
}

func TestInternRepository_FindProfile(t *testing.T) {
	t.Run("returns first intern", func(t *testing.T) {
		repo, mock := newMockInternRepository(t)

		rows := sqlmock.NewRows([]string{"id", "name", "referral_code", "donations_raised", "currency", "leaderboard_position", "total_interns"}).
			AddRow(1, "Jahswill Johnson", "jahswill2025", "15750.50", "USD", 3, 50)
		mock.ExpectQuery(`SELECT \* FROM "interns" ORDER BY id ASC.* LIMIT .*`).WillReturnRows(rows)

		intern, err := repo.FindProfile(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "jahswill2025", intern.ReferralCode)
		assert.True(t, intern.DonationsRaised.Equal(decimal.RequireFromString("15750.5")))
		assert.Equal(t, 50, intern.TotalInterns)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps missing row to not found", func(t *testing.T) {
		repo, mock := newMockInternRepository(t)

		mock.ExpectQuery(`SELECT \* FROM "interns"`).WillReturnError(gorm.ErrRecordNotFound)

		intern, err := repo.FindProfile(context.Background())
		assert.Nil(t, intern)
		assert.ErrorIs(t, err, apperror.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wraps driver errors", func(t *testing.T) {
		repo, mock := newMockInternRepository(t)

		mock.ExpectQuery(`SELECT \* FROM "interns"`).WillReturnError(errors.New("connection refused"))

		_, err := repo.FindProfile(context.Background())
		assert.ErrorContains(t, err, "failed to load intern")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestInternRepository_FindRewards(t *testing.T) {
	repo, mock := newMockInternRepository(t)

	rows := sqlmock.NewRows([]string{"id", "title", "description", "threshold"}).
		AddRow(1, "First Donation Shoutout", "Get featured on our social media", "100.00").
		AddRow(2, "Bronze Badge", "Unlock Bronze Fundraiser Badge", "500.00")
	mock.ExpectQuery(`SELECT \* FROM "rewards" ORDER BY threshold ASC`).WillReturnRows(rows)

	rewards, err := repo.FindRewards(context.Background())
	require.NoError(t, err)
	require.Len(t, rewards, 2)
	assert.Equal(t, "Bronze Badge", rewards[1].Title)
	assert.True(t, rewards[1].Threshold.Equal(decimal.NewFromInt(500)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemoryRepository(t *testing.T) {
	intern := entity.Intern{ID: 1, Name: "Ada", ReferralCode: "ada2025", DonationsRaised: decimal.NewFromInt(10)}
	rewards := []entity.Reward{{ID: 1, Title: "First", Threshold: decimal.NewFromInt(5)}}
	repo := NewMemoryRepository(intern, rewards)

	got, err := repo.FindProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ada2025", got.ReferralCode)

	got.Name = "mutated"
	again, _ := repo.FindProfile(context.Background())
	assert.Equal(t, "Ada", again.Name)

	ladder, err := repo.FindRewards(context.Background())
	require.NoError(t, err)
	ladder[0].Title = "mutated"
	ladder, _ = repo.FindRewards(context.Background())
	assert.Equal(t, "First", ladder[0].Title)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = repo.FindProfile(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
