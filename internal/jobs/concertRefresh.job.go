package jobs

import (
	"context"

	recommendationController "consa/internal/controllers/recommendation"
	. "consa/internal/models"
	"consa/internal/repositories"
	"consa/internal/services"
	logger "consa/pkg/logger"
)

// ConcertRefreshJob re-queries upcoming events for every saved concert's
// artist and refreshes the stored venue and date fields. Songkick moves and
// reschedules events; without the refresh a saved concert goes stale.
type ConcertRefreshJob struct {
	concertRepo     repositories.ConcertRepository
	songkickService *services.SongkickService
	log             logger.Logger
	schedule        services.Schedule
}

func NewConcertRefreshJob(
	concertRepo repositories.ConcertRepository,
	songkickService *services.SongkickService,
	schedule services.Schedule,
) *ConcertRefreshJob {
	log := logger.New("concertRefreshJob")
	log.Info("Creating new concert refresh job", "schedule", schedule)

	return &ConcertRefreshJob{
		concertRepo:     concertRepo,
		songkickService: songkickService,
		log:             log,
		schedule:        schedule,
	}
}

func (j *ConcertRefreshJob) Name() string {
	return "ConcertRefresh"
}

func (j *ConcertRefreshJob) Schedule() services.Schedule {
	return j.schedule
}

func (j *ConcertRefreshJob) Execute(ctx context.Context) error {
	log := j.log.Function("Execute")
	defer log.Timer("concert refresh")()

	concerts, err := j.concertRepo.GetAllSaved(ctx)
	if err != nil {
		return log.Err("failed to load saved concerts", err)
	}

	if len(concerts) == 0 {
		log.Info("No saved concerts to refresh")
		return nil
	}

	refreshed, failed := 0, 0
	for _, concert := range concerts {
		if err := j.refreshConcert(ctx, concert); err != nil {
			// One stale record is better than aborting the whole sweep
			log.Warn("failed to refresh concert",
				"songkickID", concert.SongkickID, "artist", concert.Artist, "error", err)
			failed++
			continue
		}
		refreshed++
	}

	log.Info("Concert refresh completed", "refreshed", refreshed, "failed", failed)
	return nil
}

func (j *ConcertRefreshJob) refreshConcert(ctx context.Context, concert Concert) error {
	rawEvents, err := j.songkickService.SearchEvents(ctx, concert.Artist, "")
	if err != nil {
		return err
	}

	candidate := ArtistCandidate{
		SpotifyID:  concert.SpotifyID,
		ArtistName: concert.Artist,
		ImageURL:   concert.ImageURL,
		Source:     concert.Source,
	}

	for _, fresh := range recommendationController.CreateConcertList(rawEvents, candidate) {
		if fresh.SongkickID != concert.SongkickID {
			continue
		}

		return j.concertRepo.Upsert(ctx, &fresh)
	}

	// Event no longer listed upstream; keep the stored record as-is
	return nil
}
