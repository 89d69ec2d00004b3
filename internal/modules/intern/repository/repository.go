package repository

import (
	"context"
	"errors"
	"fmt"

	"anoa.com/internfundraiser/internal/entity"
	"anoa.com/internfundraiser/pkg/apperror"
	"gorm.io/gorm"
)

type InternRepository interface {
	FindProfile(ctx context.Context) (*entity.Intern, error)
	// FindRewards returns the reward ladder ordered by ascending threshold.
	FindRewards(ctx context.Context) ([]entity.Reward, error)
}

type internRepository struct {
	db *gorm.DB
}

func NewInternRepository(db *gorm.DB) InternRepository {
	return &internRepository{db: db}
}

func (r *internRepository) FindProfile(ctx context.Context) (*entity.Intern, error) {
	var intern entity.Intern
	if err := r.db.WithContext(ctx).Order("id ASC").First(&intern).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load intern: %w", err)
	}
	return &intern, nil
}

func (r *internRepository) FindRewards(ctx context.Context) ([]entity.Reward, error) {
	var rewards []entity.Reward
	if err := r.db.WithContext(ctx).Order("threshold ASC").Find(&rewards).Error; err != nil {
		return nil, fmt.Errorf("failed to load rewards: %w", err)
	}
	return rewards, nil
}

type memoryRepository struct {
	intern  entity.Intern
	rewards []entity.Reward
}

// NewMemoryRepository serves a fixed intern and reward ladder held in process memory.
func NewMemoryRepository(intern entity.Intern, rewards []entity.Reward) InternRepository {
	return &memoryRepository{
		intern:  intern,
		rewards: append([]entity.Reward(nil), rewards...),
	}
}

func (r *memoryRepository) FindProfile(ctx context.Context) (*entity.Intern, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	intern := r.intern
	return &intern, nil
}

func (r *memoryRepository) FindRewards(ctx context.Context) ([]entity.Reward, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]entity.Reward(nil), r.rewards...), nil
}
