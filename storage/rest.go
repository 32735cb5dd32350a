package storage

import (
	"strconv"
	"time"
)

type RestModel struct {
	Id           uint32    `json:"-"`
	Name         string    `json:"name"`
	LocationType string    `json:"locationType"`
	Description  string    `json:"description"`
	ItemCount    int64     `json:"itemCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (r RestModel) GetName() string {
	return "storage-locations"
}

func (r RestModel) GetID() string {
	return strconv.Itoa(int(r.Id))
}

func (r *RestModel) SetID(id string) error {
	v, err := strconv.Atoi(id)
	if err != nil {
		return err
	}
	r.Id = uint32(v)
	return nil
}

func Transform(m Model) (RestModel, error) {
	return RestModel{
		Id:           m.id,
		Name:         m.name,
		LocationType: m.locationType,
		Description:  m.description,
		ItemCount:    m.itemCount,
		CreatedAt:    m.createdAt,
	}, nil
}

type BootstrapRestModel struct {
	Id      uint32 `json:"-"`
	Created int    `json:"created"`
}

func (r BootstrapRestModel) GetName() string {
	return "storage-location-bootstraps"
}

func (r BootstrapRestModel) GetID() string {
	return strconv.Itoa(int(r.Id))
}

type LocationStatisticsRestModel struct {
	Id           uint32   `json:"id"`
	Name         string   `json:"name"`
	LocationType string   `json:"locationType"`
	ItemCount    int64    `json:"itemCount"`
	Categories   []string `json:"categories"`
}

type StatisticsRestModel struct {
	Id             uint32                        `json:"-"`
	TotalLocations int                           `json:"totalLocations"`
	Locations      []LocationStatisticsRestModel `json:"locations"`
}

func (r StatisticsRestModel) GetName() string {
	return "storage-location-statistics"
}

func (r StatisticsRestModel) GetID() string {
	return strconv.Itoa(int(r.Id))
}

func TransformStatistics(ownerId uint32, s Statistics) (StatisticsRestModel, error) {
	rm := StatisticsRestModel{
		Id:             ownerId,
		TotalLocations: s.TotalLocations(),
		Locations:      make([]LocationStatisticsRestModel, 0),
	}
	for _, ls := range s.Locations() {
		rm.Locations = append(rm.Locations, LocationStatisticsRestModel{
			Id:           ls.Id(),
			Name:         ls.Name(),
			LocationType: ls.LocationType(),
			ItemCount:    ls.ItemCount(),
			Categories:   ls.Categories(),
		})
	}
	return rm, nil
}
