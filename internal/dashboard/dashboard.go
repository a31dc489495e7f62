// Package dashboard computes the read-side aggregations shown on the
// dashboard: ships by speed band, ports by country, voyages by month and the
// countries visited recently. Every function is pure and total over its
// input, so an empty input yields empty (or zero-count) output.
package dashboard

import (
	"sort"
	"strings"
	"time"

	"evalgo.org/maritime/internal/logging"
	"evalgo.org/maritime/models"
)

// Speed band labels in display order.
const (
	BandSlow   = "0-15 kn"
	BandMedium = "16-25 kn"
	BandFast   = "26+ kn"
)

// SpeedBucket is the number of ships whose max speed falls into a band.
type SpeedBucket struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

// CountryCount is the number of ports located in a country.
type CountryCount struct {
	Country string `json:"country"`
	Count   int    `json:"count"`
}

// MonthCount is the number of voyages that started in a month (YYYY-MM).
type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// Summary bundles every dashboard series with the record totals.
type Summary struct {
	TotalShips       int            `json:"totalShips"`
	TotalPorts       int            `json:"totalPorts"`
	TotalVoyages     int            `json:"totalVoyages"`
	ShipSpeeds       []SpeedBucket  `json:"shipSpeeds"`
	PortsByCountry   []CountryCount `json:"portsByCountry"`
	VoyagesByMonth   []MonthCount   `json:"voyagesByMonth"`
	CountriesVisited []string       `json:"countriesVisited"`
	GeneratedAt      time.Time      `json:"generatedAt"`
}

// ShipSpeedBuckets counts ships per speed band: [0,15], (15,25] and above 25
// knots. All three bands are always returned, in that order.
func ShipSpeedBuckets(ships []models.Ship) []SpeedBucket {
	buckets := []SpeedBucket{
		{Range: BandSlow},
		{Range: BandMedium},
		{Range: BandFast},
	}
	for _, s := range ships {
		switch {
		case s.MaxSpeed <= 15:
			buckets[0].Count++
		case s.MaxSpeed <= 25:
			buckets[1].Count++
		default:
			buckets[2].Count++
		}
	}
	return buckets
}

// PortsByCountry groups ports by country, largest group first. Ties are
// ordered by country name.
func PortsByCountry(ports []models.Port) []CountryCount {
	counts := make(map[string]int)
	for _, p := range ports {
		counts[p.Country]++
	}

	out := make([]CountryCount, 0, len(counts))
	for country, n := range counts {
		out = append(out, CountryCount{Country: country, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Country < out[j].Country
	})
	return out
}

// VoyagesByMonth groups voyages by the UTC month of their start instant,
// oldest month first. Voyages without a start instant are skipped.
func VoyagesByMonth(voyages []models.Voyage, log *logging.Logger) []MonthCount {
	counts := make(map[string]int)
	for _, v := range voyages {
		if v.VoyageStart.IsZero() {
			if log != nil {
				log.Warn("voyage without start skipped in monthly series", "voyage_id", v.ID)
			}
			continue
		}
		counts[v.VoyageStart.UTC().Format("2006-01")]++
	}

	out := make([]MonthCount, 0, len(counts))
	for month, n := range counts {
		out = append(out, MonthCount{Month: month, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// CollectCountries deduplicates country names and sorts them ascending.
// Blank names are dropped; case is preserved.
func CollectCountries(countries ...string) []string {
	seen := make(map[string]struct{}, len(countries))
	out := make([]string, 0, len(countries))
	for _, c := range countries {
		if strings.TrimSpace(c) == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Build assembles a Summary from full record lists and the visited countries.
func Build(ships []models.Ship, ports []models.Port, voyages []models.Voyage, countries []string, now time.Time, log *logging.Logger) *Summary {
	if countries == nil {
		countries = []string{}
	}
	return &Summary{
		TotalShips:       len(ships),
		TotalPorts:       len(ports),
		TotalVoyages:     len(voyages),
		ShipSpeeds:       ShipSpeedBuckets(ships),
		PortsByCountry:   PortsByCountry(ports),
		VoyagesByMonth:   VoyagesByMonth(voyages, log),
		CountriesVisited: countries,
		GeneratedAt:      now.UTC(),
	}
}
