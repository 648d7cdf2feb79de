package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RecommendationRun records one aggregation run for diagnostics: which seeds
// were used, how many candidates came out, and how many seed lookups failed.
// The continue-on-partial-failure behavior of the expander means failures are
// otherwise invisible in the response shape.
type RecommendationRun struct {
	BaseUUIDModel
	UserID         uuid.UUID      `gorm:"type:uuid;index;not null" json:"userId"`
	LocationID     string         `gorm:"type:text"                json:"locationId"`
	Seeds          datatypes.JSON `gorm:"type:jsonb"               json:"seeds"`
	CandidateCount int            `gorm:"type:int"                 json:"candidateCount"`
	FailedSeeds    int            `gorm:"type:int"                 json:"failedSeeds"`
	ConcertCount   int            `gorm:"type:int"                 json:"concertCount"`
}
