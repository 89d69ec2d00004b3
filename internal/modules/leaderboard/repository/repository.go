package repository

import (
	"context"
	"fmt"

	"anoa.com/internfundraiser/internal/entity"
	"gorm.io/gorm"
)

type LeaderboardRepository interface {
	// FindAll returns every entry ordered by rank.
	FindAll(ctx context.Context) ([]entity.LeaderboardEntry, error)
}

type leaderboardRepository struct {
	db *gorm.DB
}

func NewLeaderboardRepository(db *gorm.DB) LeaderboardRepository {
	return &leaderboardRepository{db: db}
}

func (r *leaderboardRepository) FindAll(ctx context.Context) ([]entity.LeaderboardEntry, error) {
	var entries []entity.LeaderboardEntry
	if err := r.db.WithContext(ctx).Order("rank ASC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}
	return entries, nil
}

type memoryRepository struct {
	entries []entity.LeaderboardEntry
}

func NewMemoryRepository(entries []entity.LeaderboardEntry) LeaderboardRepository {
	return &memoryRepository{entries: append([]entity.LeaderboardEntry(nil), entries...)}
}

func (r *memoryRepository) FindAll(ctx context.Context) ([]entity.LeaderboardEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]entity.LeaderboardEntry(nil), r.entries...), nil
}
