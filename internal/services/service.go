package services

import (
	"consa/config"
	"consa/internal/database"
)

type Service struct {
	Spotify   *SpotifyService
	Songkick  *SongkickService
	Session   *SessionService
	Scheduler *SchedulerService
}

func New(db database.DB, config config.Config) Service {
	return Service{
		Spotify:   NewSpotifyService(config),
		Songkick:  NewSongkickService(config, db.Cache.ClientAPI),
		Session:   NewSessionService(config, db.Cache.Session),
		Scheduler: NewSchedulerService(),
	}
}
