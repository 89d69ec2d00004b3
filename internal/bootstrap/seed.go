package bootstrap

import (
	"context"
	"fmt"

	"anoa.com/internfundraiser/internal/entity"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Intern{},
		&entity.Reward{},
		&entity.LeaderboardEntry{},
	)
}

// Seed inserts the default dataset into every empty table. Tables that already hold
// rows are left untouched.
func Seed(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
	db = db.WithContext(ctx)

	intern := DefaultIntern()
	if err := seedTable(db, log, &entity.Intern{}, &intern); err != nil {
		return err
	}

	rewards := DefaultRewards()
	if err := seedTable(db, log, &entity.Reward{}, &rewards); err != nil {
		return err
	}

	entries := DefaultLeaderboard()
	return seedTable(db, log, &entity.LeaderboardEntry{}, &entries)
}

func seedTable(db *gorm.DB, log *zap.Logger, model any, rows any) error {
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count %T: %w", model, err)
	}

	if count > 0 {
		log.Debug("table already seeded, skipping", zap.String("model", fmt.Sprintf("%T", model)), zap.Int64("rows", count))
		return nil
	}

	if err := db.Create(rows).Error; err != nil {
		return fmt.Errorf("failed to seed %T: %w", model, err)
	}

	log.Info("table seeded", zap.String("model", fmt.Sprintf("%T", model)))
	return nil
}
