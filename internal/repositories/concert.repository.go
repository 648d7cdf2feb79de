package repositories

import (
	"context"

	appContext "consa/internal/context"
	"consa/internal/database"
	. "consa/internal/models"
	logger "consa/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ConcertRepository interface {
	GetBySongkickID(ctx context.Context, songkickID int64) (*Concert, error)
	Upsert(ctx context.Context, concert *Concert) error
	SaveForUser(ctx context.Context, user *User, concert *Concert) error
	Update(ctx context.Context, concert *Concert) error
	GetAllSaved(ctx context.Context) ([]Concert, error)
	AddUserConcert(ctx context.Context, user *User, concert *Concert) error
	RemoveUserConcert(ctx context.Context, user *User, songkickID int64) error
	GetUserConcerts(ctx context.Context, userID uuid.UUID) ([]Concert, error)
}

type concertRepository struct {
	db  database.DB
	log logger.Logger
}

func NewConcertRepository(db database.DB) ConcertRepository {
	return &concertRepository{
		db:  db,
		log: logger.New("concertRepository"),
	}
}

func (r *concertRepository) GetBySongkickID(
	ctx context.Context,
	songkickID int64,
) (*Concert, error) {
	log := r.log.Function("GetBySongkickID")

	var concert Concert
	if err := r.db.SQLWithContext(ctx).First(&concert, "songkick_id = ?", songkickID).Error; err != nil {
		return nil, log.Err("failed to get concert", err, "songkickID", songkickID)
	}

	return &concert, nil
}

// Upsert inserts the concert or refreshes its mutable fields when a row with
// the same Songkick ID already exists.
func (r *concertRepository) Upsert(ctx context.Context, concert *Concert) error {
	log := r.log.Function("Upsert")

	err := r.db.SQLWithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "songkick_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"display_name", "songkick_url", "venue_name", "venue_lat", "venue_lng",
				"city", "start_date", "start_datetime", "end_date", "end_datetime",
				"image_url", "updated_at",
			}),
		}).
		Create(concert).Error
	if err != nil {
		return log.Err("failed to upsert concert", err, "songkickID", concert.SongkickID)
	}

	return nil
}

// SaveForUser upserts the concert and links it to the user in one transaction
func (r *concertRepository) SaveForUser(
	ctx context.Context,
	user *User,
	concert *Concert,
) error {
	log := r.log.Function("SaveForUser")

	err := r.db.SQLWithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := appContext.WithTransaction(ctx, tx)

		if err := r.Upsert(txCtx, concert); err != nil {
			return err
		}

		return r.AddUserConcert(txCtx, user, concert)
	})
	if err != nil {
		return log.Err("failed to save concert for user", err,
			"userID", user.ID, "songkickID", concert.SongkickID)
	}

	return nil
}

func (r *concertRepository) Update(ctx context.Context, concert *Concert) error {
	log := r.log.Function("Update")

	if err := r.db.SQLWithContext(ctx).Save(concert).Error; err != nil {
		return log.Err("failed to update concert", err, "songkickID", concert.SongkickID)
	}

	return nil
}

// GetAllSaved returns every concert at least one user has saved
func (r *concertRepository) GetAllSaved(ctx context.Context) ([]Concert, error) {
	log := r.log.Function("GetAllSaved")

	var concerts []Concert
	err := r.db.SQLWithContext(ctx).
		Where("songkick_id IN (SELECT DISTINCT songkick_id FROM users_concerts)").
		Find(&concerts).Error
	if err != nil {
		return nil, log.Err("failed to get saved concerts", err)
	}

	return concerts, nil
}

func (r *concertRepository) AddUserConcert(
	ctx context.Context,
	user *User,
	concert *Concert,
) error {
	log := r.log.Function("AddUserConcert")

	err := r.db.SQLWithContext(ctx).
		Model(user).
		Association("Concerts").
		Append(concert)
	if err != nil {
		return log.Err("failed to associate concert with user", err,
			"userID", user.ID, "songkickID", concert.SongkickID)
	}

	return nil
}

func (r *concertRepository) RemoveUserConcert(
	ctx context.Context,
	user *User,
	songkickID int64,
) error {
	log := r.log.Function("RemoveUserConcert")

	err := r.db.SQLWithContext(ctx).
		Model(user).
		Association("Concerts").
		Delete(&Concert{SongkickID: songkickID})
	if err != nil {
		return log.Err("failed to remove concert from user", err,
			"userID", user.ID, "songkickID", songkickID)
	}

	return nil
}

// GetUserConcerts returns a user's saved concerts ordered by start datetime
func (r *concertRepository) GetUserConcerts(
	ctx context.Context,
	userID uuid.UUID,
) ([]Concert, error) {
	log := r.log.Function("GetUserConcerts")

	var concerts []Concert
	err := r.db.SQLWithContext(ctx).
		Joins("JOIN users_concerts ON users_concerts.songkick_id = concerts.songkick_id").
		Where("users_concerts.user_id = ?", userID).
		Order("concerts.start_datetime").
		Find(&concerts).Error
	if err != nil {
		return nil, log.Err("failed to get user concerts", err, "userID", userID)
	}

	return concerts, nil
}
