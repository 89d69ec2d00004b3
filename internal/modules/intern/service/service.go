package service

import (
	"context"
	"errors"
	"fmt"

	"anoa.com/internfundraiser/internal/modules/intern/dto"
	internRepo "anoa.com/internfundraiser/internal/modules/intern/repository"
	"anoa.com/internfundraiser/pkg/apperror"
	"anoa.com/internfundraiser/pkg/cache"
	"anoa.com/internfundraiser/pkg/validator"
	"go.uber.org/zap"
)

const cacheKeyIntern = "intern:profile"

type InternService interface {
	// GetIntern returns the participant with unlocked flags derived from the raised amount.
	GetIntern(ctx context.Context) (*dto.InternResponse, error)
	GetProgress(ctx context.Context) (*dto.ProgressResponse, error)
}

type internService struct {
	repo  internRepo.InternRepository
	cache *cache.JSONCache
	log   *zap.Logger
}

// NewInternService accepts a nil cache, which disables caching.
func NewInternService(repo internRepo.InternRepository, cache *cache.JSONCache, log *zap.Logger) InternService {
	return &internService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

func (s *internService) GetIntern(ctx context.Context) (*dto.InternResponse, error) {
	var cached dto.InternResponse
	found, err := s.cache.Get(ctx, cacheKeyIntern, &cached)
	if err != nil {
		s.log.Warn("intern cache read failed", zap.Error(err))
	}
	if found {
		return &cached, nil
	}

	intern, err := s.repo.FindProfile(ctx)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, fmt.Errorf("%w: intern profile is missing", apperror.ErrInternal)
		}
		return nil, err
	}
	rewards, err := s.repo.FindRewards(ctx)
	if err != nil {
		return nil, err
	}

	res := dto.NewInternResponse(*intern, rewards)
	if err := validator.Struct(res); err != nil {
		return nil, corrupted("stored intern "+intern.ReferralCode+" is invalid", err)
	}
	if err := ValidateRewards(res.Rewards); err != nil {
		return nil, corrupted("stored reward ladder is invalid", err)
	}

	progress, err := ComputeProgress(res.DonationsRaised, res.Rewards)
	if err != nil {
		return nil, corrupted("stored intern progress is invalid", err)
	}
	res.Rewards = progress.Rewards

	if err := s.cache.Set(ctx, cacheKeyIntern, res); err != nil {
		s.log.Warn("intern cache write failed", zap.Error(err))
	}

	return &res, nil
}

func (s *internService) GetProgress(ctx context.Context) (*dto.ProgressResponse, error) {
	intern, err := s.GetIntern(ctx)
	if err != nil {
		return nil, err
	}

	progress, err := ComputeProgress(intern.DonationsRaised, intern.Rewards)
	if err != nil {
		return nil, corrupted("stored intern progress is invalid", err)
	}
	return &progress, nil
}

// corrupted reports bad stored data as an internal error. The cause is formatted, not wrapped.
func corrupted(what string, err error) error {
	return fmt.Errorf("%w: %s: %v", apperror.ErrInternal, what, err)
}
