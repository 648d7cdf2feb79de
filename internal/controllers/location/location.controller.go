package locationController

import (
	"context"

	. "consa/internal/models"
	"consa/internal/services"
	"consa/internal/utils"
	logger "consa/pkg/logger"
)

type LocationController struct {
	songkickService *services.SongkickService
	log             logger.Logger
}

type LocationControllerInterface interface {
	SearchLocations(ctx context.Context, searchTerm string) ([]MetroArea, error)
}

func New(songkickService *services.SongkickService) LocationControllerInterface {
	return &LocationController{
		songkickService: songkickService,
		log:             logger.New("locationController"),
	}
}

// SearchLocations returns the metro areas matching a location search term.
// Distinct cities often map to one metro area, so results are deduplicated.
func (lc *LocationController) SearchLocations(
	ctx context.Context,
	searchTerm string,
) ([]MetroArea, error) {
	log := lc.log.Function("SearchLocations")

	rawResults, err := lc.songkickService.SearchLocations(ctx, searchTerm)
	if err != nil {
		return nil, log.Err("location search failed", err, "searchTerm", searchTerm)
	}

	return CreateLocationList(rawResults), nil
}

// CreateLocationList deduplicates metro areas by identifier in first-seen
// order; the first city to name a metro area supplies its display fields.
func CreateLocationList(rawResults []services.SongkickLocationResult) []MetroArea {
	metros := utils.NewUniqueList[int64, MetroArea]()

	for _, result := range rawResults {
		raw := result.MetroArea

		metro := MetroArea{
			SongkickID:  raw.ID,
			DisplayName: raw.DisplayName,
			Country:     raw.Country.DisplayName,
			URI:         raw.URI,
			Lat:         raw.Lat,
			Lng:         raw.Lng,
		}
		if raw.State != nil && raw.State.DisplayName != "" {
			state := raw.State.DisplayName
			metro.State = &state
		}

		metros.Add(raw.ID, metro)
	}

	values := metros.Values()
	if values == nil {
		values = []MetroArea{}
	}

	return values
}
