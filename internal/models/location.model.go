package models

// MetroArea is a geographic grouping returned by the events-lookup location
// search, used to scope event queries. Not persisted.
type MetroArea struct {
	SongkickID  int64    `json:"songkickId"`
	DisplayName string   `json:"displayName"`
	Country     string   `json:"country"`
	State       *string  `json:"state,omitempty"`
	URI         string   `json:"uri,omitempty"`
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`
}
