package client

import (
	"strings"
	"time"
)

// Counts holds the number of rows per table.
type Counts struct {
	Ships   int64 `json:"ships"`
	Ports   int64 `json:"ports"`
	Voyages int64 `json:"voyages"`
}

// Health is the server health report.
type Health struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Version  string `json:"version"`
	Database string `json:"database,omitempty"`
	Error    string `json:"error,omitempty"`
}

// SpeedBucket is the number of ships in a speed band such as "16-25 kn".
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

// Summary is the dashboard report returned by GET /api/dashboard.
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

// FieldError is one failed field of a validated document.
type FieldError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// ValidationResult is the outcome of POST /api/validate/:type.
type ValidationResult struct {
	Valid  bool         `json:"valid"`
	Errors []FieldError `json:"errors,omitempty"`
}

// Fields returns the errors keyed by field name, first message wins.
func (r *ValidationResult) Fields() map[string]string {
	out := make(map[string]string, len(r.Errors))
	for _, e := range r.Errors {
		if _, ok := out[e.Field]; !ok {
			out[e.Field] = e.Message
		}
	}
	return out
}

func (r *ValidationResult) Error() string {
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, e.Field+": "+e.Message)
	}
	return strings.Join(msgs, "; ")
}
