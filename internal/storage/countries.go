package storage

import (
	"context"
	"fmt"
	"time"

	"evalgo.org/maritime/internal/dashboard"
)

// CountryWindow is the look-back period for visited countries.
const CountryWindow = 365 * 24 * time.Hour

// CountriesVisited returns the distinct countries of the departure and
// arrival ports of every voyage that ended within [now-365d, now], sorted
// ascending. It returns an empty slice when no voyage qualifies.
func (s *Storage) CountriesVisited(ctx context.Context, now time.Time) ([]string, error) {
	now = now.UTC()
	from := now.Add(-CountryWindow)

	var rows []struct {
		Departure string
		Arrival   string
	}
	err := s.db.WithContext(ctx).
		Table("voyages").
		Select("dp.country AS departure, ap.country AS arrival").
		Joins("JOIN ports dp ON dp.id = voyages.departure_port_id").
		Joins("JOIN ports ap ON ap.id = voyages.arrival_port_id").
		Where("voyages.voyage_end >= ? AND voyages.voyage_end <= ?", from, now).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query visited countries: %w", err)
	}

	countries := make([]string, 0, len(rows)*2)
	for _, r := range rows {
		countries = append(countries, r.Departure, r.Arrival)
	}
	return dashboard.CollectCountries(countries...), nil
}
