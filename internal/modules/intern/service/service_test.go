package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"anoa.com/internfundraiser/internal/entity"
	"anoa.com/internfundraiser/internal/modules/intern/repository"
	"anoa.com/internfundraiser/pkg/apperror"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubRepository struct {
	intern     *entity.Intern
	rewards    []entity.Reward
	profileErr error
	rewardsErr error
}

func (r *stubRepository) FindProfile(ctx context.Context) (*entity.Intern, error) {
	return r.intern, r.profileErr
}

func (r *stubRepository) FindRewards(ctx context.Context) ([]entity.Reward, error) {
	return r.rewards, r.rewardsErr
}

func sampleIntern(raised string) entity.Intern {
	return entity.Intern{
		ID:                  1,
		Name:                "Jahswill Johnson",
		ReferralCode:        "jahswill2025",
		DonationsRaised:     decimal.RequireFromString(raised),
		Currency:            "USD",
		LeaderboardPosition: 3,
		TotalInterns:        50,
	}
}

func sampleRewards() []entity.Reward {
	thresholds := []int64{100, 500, 2000, 5000, 10000, 25000}
	rewards := make([]entity.Reward, 0, len(thresholds))
	for i, threshold := range thresholds {
		rewards = append(rewards, entity.Reward{ID: uint(i + 1), Title: "reward", Threshold: decimal.NewFromInt(threshold)})
	}
	return rewards
}

func TestInternService_GetIntern(t *testing.T) {
	svc := NewInternService(repository.NewMemoryRepository(sampleIntern("15750.50"), sampleRewards()), nil, zap.NewNop())

	intern, err := svc.GetIntern(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Jahswill Johnson", intern.Name)
	assert.Equal(t, 15750.5, intern.DonationsRaised)
	require.Len(t, intern.Rewards, 6)
	for _, reward := range intern.Rewards[:5] {
		assert.True(t, reward.Unlocked, "reward %d", reward.ID)
	}
	assert.False(t, intern.Rewards[5].Unlocked)
}

func TestInternService_GetProgress(t *testing.T) {
	svc := NewInternService(repository.NewMemoryRepository(sampleIntern("30000"), sampleRewards()), nil, zap.NewNop())

	progress, err := svc.GetProgress(context.Background())
	require.NoError(t, err)

	assert.Nil(t, progress.NextReward)
	assert.Equal(t, 100.0, progress.Percentage)
	assert.Equal(t, 6, progress.UnlockedCount)
}

func TestInternService_RejectsUnsortedLadder(t *testing.T) {
	rewards := sampleRewards()
	rewards[0], rewards[1] = rewards[1], rewards[0]
	intern := sampleIntern("100")
	svc := NewInternService(&stubRepository{intern: &intern, rewards: rewards}, nil, zap.NewNop())

	_, err := svc.GetIntern(context.Background())
	assert.ErrorIs(t, err, apperror.ErrInternal)
	assert.NotErrorIs(t, err, apperror.ErrInvalidInput)
	assert.Equal(t, http.StatusInternalServerError, apperror.MapErrorToStatus(err))
}

func TestInternService_RejectsInvalidProfile(t *testing.T) {
	intern := sampleIntern("100")
	intern.Currency = ""
	svc := NewInternService(&stubRepository{intern: &intern, rewards: sampleRewards()}, nil, zap.NewNop())

	_, err := svc.GetIntern(context.Background())
	assert.ErrorContains(t, err, "Currency is required")
	assert.Equal(t, http.StatusInternalServerError, apperror.MapErrorToStatus(err))
}

func TestInternService_RepositoryErrorsAreInternal(t *testing.T) {
	intern := sampleIntern("100")

	svc := NewInternService(&stubRepository{profileErr: apperror.ErrNotFound}, nil, zap.NewNop())
	_, err := svc.GetIntern(context.Background())
	assert.ErrorIs(t, err, apperror.ErrInternal)
	assert.Equal(t, http.StatusInternalServerError, apperror.MapErrorToStatus(err))

	boom := errors.New("boom")
	svc = NewInternService(&stubRepository{intern: &intern, rewardsErr: boom}, nil, zap.NewNop())
	_, err = svc.GetProgress(context.Background())
	assert.ErrorIs(t, err, boom)
}
