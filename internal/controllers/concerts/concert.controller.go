package concertController

import (
	"context"

	. "consa/internal/models"
	"consa/internal/repositories"
	logger "consa/pkg/logger"

	"github.com/google/uuid"
)

type ConcertController struct {
	concertRepo repositories.ConcertRepository
	log         logger.Logger
}

type ConcertControllerInterface interface {
	SaveConcert(ctx context.Context, user *User, concert Concert) error
	RemoveConcert(ctx context.Context, user *User, songkickID int64) error
	GetSavedConcerts(ctx context.Context, userID uuid.UUID) ([]Concert, error)
}

func New(concertRepo repositories.ConcertRepository) ConcertControllerInterface {
	return &ConcertController{
		concertRepo: concertRepo,
		log:         logger.New("concertController"),
	}
}

// SaveConcert persists the concert (insert or refresh by Songkick ID) and
// associates it with the user's saved list.
func (cc *ConcertController) SaveConcert(
	ctx context.Context,
	user *User,
	concert Concert,
) error {
	log := cc.log.Function("SaveConcert")

	if concert.SongkickID == 0 {
		return log.ErrMsg("songkick id is required")
	}
	if concert.Artist == "" {
		return log.ErrMsg("artist is required")
	}

	if err := cc.concertRepo.SaveForUser(ctx, user, &concert); err != nil {
		return log.Err("failed to save concert", err,
			"userID", user.ID, "songkickID", concert.SongkickID)
	}

	log.Info("Concert saved", "userID", user.ID, "songkickID", concert.SongkickID)
	return nil
}

// RemoveConcert removes the concert from the user's saved list. The concert
// row itself stays; other users may have saved it.
func (cc *ConcertController) RemoveConcert(
	ctx context.Context,
	user *User,
	songkickID int64,
) error {
	log := cc.log.Function("RemoveConcert")

	if songkickID == 0 {
		return log.ErrMsg("songkick id is required")
	}

	if err := cc.concertRepo.RemoveUserConcert(ctx, user, songkickID); err != nil {
		return log.Err("failed to remove concert from profile", err,
			"userID", user.ID, "songkickID", songkickID)
	}

	log.Info("Concert removed", "userID", user.ID, "songkickID", songkickID)
	return nil
}

// GetSavedConcerts returns the user's saved concerts ordered by start datetime
func (cc *ConcertController) GetSavedConcerts(
	ctx context.Context,
	userID uuid.UUID,
) ([]Concert, error) {
	log := cc.log.Function("GetSavedConcerts")

	concerts, err := cc.concertRepo.GetUserConcerts(ctx, userID)
	if err != nil {
		return nil, log.Err("failed to load saved concerts", err, "userID", userID)
	}

	if concerts == nil {
		concerts = []Concert{}
	}

	return concerts, nil
}
