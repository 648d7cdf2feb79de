package repositories

import (
	"context"

	"consa/internal/database"
	. "consa/internal/models"
	logger "consa/pkg/logger"

	"github.com/google/uuid"
)

type RecommendationRunRepository interface {
	Create(ctx context.Context, run *RecommendationRun) error
	GetLatestForUser(ctx context.Context, userID uuid.UUID) (*RecommendationRun, error)
}

type recommendationRunRepository struct {
	db  database.DB
	log logger.Logger
}

func NewRecommendationRunRepository(db database.DB) RecommendationRunRepository {
	return &recommendationRunRepository{
		db:  db,
		log: logger.New("recommendationRunRepository"),
	}
}

func (r *recommendationRunRepository) Create(
	ctx context.Context,
	run *RecommendationRun,
) error {
	log := r.log.Function("Create")

	if err := r.db.SQLWithContext(ctx).Create(run).Error; err != nil {
		return log.Err("failed to create recommendation run", err, "userID", run.UserID)
	}

	return nil
}

func (r *recommendationRunRepository) GetLatestForUser(
	ctx context.Context,
	userID uuid.UUID,
) (*RecommendationRun, error) {
	log := r.log.Function("GetLatestForUser")

	var run RecommendationRun
	err := r.db.SQLWithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&run).Error
	if err != nil {
		return nil, log.Err("failed to get latest recommendation run", err, "userID", userID)
	}

	return &run, nil
}
