package service

import (
	"context"
	"fmt"

	leaderboardDto "anoa.com/internfundraiser/internal/modules/leaderboard/dto"
	leaderboardRepo "anoa.com/internfundraiser/internal/modules/leaderboard/repository"
	"anoa.com/internfundraiser/pkg/apperror"
	"anoa.com/internfundraiser/pkg/cache"
	"anoa.com/internfundraiser/pkg/validator"
	"go.uber.org/zap"
)

const cacheKeyLeaderboard = "leaderboard:entries"

type LeaderboardService interface {
	GetLeaderboard(ctx context.Context) ([]leaderboardDto.LeaderboardEntry, error)
	GetSummary(ctx context.Context) (*leaderboardDto.Summary, error)
	GetSnapshot(ctx context.Context) (*leaderboardDto.Snapshot, error)
}

type leaderboardService struct {
	repo  leaderboardRepo.LeaderboardRepository
	cache *cache.JSONCache
	log   *zap.Logger
}

func NewLeaderboardService(repo leaderboardRepo.LeaderboardRepository, cache *cache.JSONCache, log *zap.Logger) LeaderboardService {
	return &leaderboardService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

func (s *leaderboardService) GetLeaderboard(ctx context.Context) ([]leaderboardDto.LeaderboardEntry, error) {
	var cached []leaderboardDto.LeaderboardEntry
	found, err := s.cache.Get(ctx, cacheKeyLeaderboard, &cached)
	if err != nil {
		s.log.Warn("leaderboard cache read failed", zap.Error(err))
	}
	if found {
		return cached, nil
	}

	stored, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	entries := leaderboardDto.NewLeaderboardEntries(stored)
	for i, entry := range entries {
		if err := validator.Struct(entry); err != nil {
			return nil, fmt.Errorf("%w: leaderboard entry %d is invalid: %v", apperror.ErrInternal, i, err)
		}
		if entry.Rank != i+1 {
			return nil, fmt.Errorf("%w: leaderboard entry %s has rank %d at position %d", apperror.ErrInternal, entry.ReferralCode, entry.Rank, i+1)
		}
	}

	if err := s.cache.Set(ctx, cacheKeyLeaderboard, entries); err != nil {
		s.log.Warn("leaderboard cache write failed", zap.Error(err))
	}

	return entries, nil
}

func (s *leaderboardService) GetSummary(ctx context.Context) (*leaderboardDto.Summary, error) {
	entries, err := s.GetLeaderboard(ctx)
	if err != nil {
		return nil, err
	}

	summary := Aggregate(entries)
	return &summary, nil
}

func (s *leaderboardService) GetSnapshot(ctx context.Context) (*leaderboardDto.Snapshot, error) {
	entries, err := s.GetLeaderboard(ctx)
	if err != nil {
		return nil, err
	}

	return &leaderboardDto.Snapshot{
		Entries: entries,
		Summary: Aggregate(entries),
	}, nil
}
