package seed

import (
	"time"

	"consa/config"
	. "consa/internal/models"
	logger "consa/pkg/logger"

	"gorm.io/gorm"
)

func Seed(db *gorm.DB, config config.Config, log logger.Logger) error {
	log = log.Function("seed")
	log.Info("Seeding development data")

	users := []struct {
		email    string
		password string
	}{
		{email: "admin@example.com", password: "password"},
		{email: "test@example.com", password: "password"},
	}

	for _, u := range users {
		var existing User
		if err := db.First(&existing, "email = ?", u.email).Error; err == nil {
			log.Info("User already exists", "email", u.email)
			continue
		}

		user := User{Email: u.email}
		if err := user.SetPassword(u.password); err != nil {
			return log.Err("failed to hash seed password", err, "email", u.email)
		}

		log.Info("Seeding user", "email", u.email)
		if err := db.Create(&user).Error; err != nil {
			log.Er("failed to create user", err, "email", u.email)
		}
	}

	start := time.Date(2026, time.September, 12, 20, 0, 0, 0, time.UTC)
	startDate := time.Date(2026, time.September, 12, 0, 0, 0, 0, time.UTC)
	source := "Seed"
	concerts := []Concert{
		{
			SongkickID:    24426754,
			DisplayName:   "Phoenix at Fox Theater",
			SongkickURL:   "https://www.songkick.com/concerts/24426754",
			Artist:        "Phoenix",
			SpotifyID:     "1xU878Z1QtMldPVRfh3Olk",
			Source:        &source,
			VenueName:     "Fox Theater",
			City:          "Oakland, CA, US",
			StartDate:     &startDate,
			StartDatetime: &start,
		},
	}

	for _, concert := range concerts {
		var existing Concert
		if err := db.First(&existing, "songkick_id = ?", concert.SongkickID).Error; err == nil {
			log.Info("Concert already exists", "songkickID", concert.SongkickID)
			continue
		}

		log.Info("Seeding concert", "songkickID", concert.SongkickID)
		if err := db.Create(&concert).Error; err != nil {
			log.Er("failed to create concert", err, "songkickID", concert.SongkickID)
		}
	}

	return nil
}
