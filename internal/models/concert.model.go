package models

import (
	"time"
)

// Concert is one upcoming event, shaped from the Songkick events API and
// persisted when a user saves it. SongkickID is the upstream event
// identifier and serves as the primary key.
type Concert struct {
	SongkickID  int64      `gorm:"primaryKey"      json:"songkickId"`
	DisplayName string     `gorm:"type:text"       json:"displayName"`
	SongkickURL string     `gorm:"type:text"       json:"songkickUrl"`
	Artist      string     `gorm:"type:text;not null" json:"artist"`
	SpotifyID   string     `gorm:"type:text;index" json:"spotifyId"`
	ImageURL    *string    `gorm:"type:text"       json:"imageUrl,omitempty"`
	Source      *string    `gorm:"type:text"       json:"source,omitempty"`
	VenueName   string     `gorm:"type:text"       json:"venueName"`
	VenueLat    *float64   `gorm:"type:float"      json:"venueLat,omitempty"`
	VenueLng    *float64   `gorm:"type:float"      json:"venueLng,omitempty"`
	City        string     `gorm:"type:text"       json:"city"`

	// StartDate is the calendar date at midnight; StartDatetime carries the
	// time of day when the upstream payload included one. Both are nil when
	// the event had no usable start information.
	StartDate     *time.Time `gorm:"type:timestamp" json:"startDate,omitempty"`
	StartDatetime *time.Time `gorm:"type:timestamp;index" json:"startDatetime,omitempty"`

	// End fields are populated only for multi-day events (festivals)
	EndDate     *time.Time `gorm:"type:timestamp" json:"endDate,omitempty"`
	EndDatetime *time.Time `gorm:"type:timestamp" json:"endDatetime,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	Users []User `gorm:"many2many:users_concerts;joinForeignKey:songkick_id;joinReferences:user_id" json:"-"`
}

// IsMultiDay reports whether the concert spans more than one day (festival)
func (c *Concert) IsMultiDay() bool {
	return c.EndDate != nil
}
