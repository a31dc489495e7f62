package models

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// Voyage represents a recorded transit between two ports.
//
// DeparturePortID and ArrivalPortID are non-owning references to Port rows.
// The store enforces them with RESTRICT foreign keys, so a referenced port
// cannot be deleted. DeparturePort and ArrivalPort are populated on reads
// through a joined query and are ignored on writes.
//
// Example JSON representation:
//
//	{
//	  "id": 1001,
//	  "voyageDate": "2025-04-15T00:00:00Z",
//	  "departurePortId": 101,
//	  "arrivalPortId": 103,
//	  "voyageStart": "2025-04-15T08:00:00Z",
//	  "voyageEnd": "2025-04-18T16:00:00Z",
//	  "departurePort": {"id": 101, "name": "Port of Rotterdam", "country": "Netherlands"},
//	  "arrivalPort": {"id": 103, "name": "Port of Hamburg", "country": "Germany"}
//	}
type Voyage struct {
	// ID is the store-assigned surrogate key
	ID uint `json:"id" gorm:"primaryKey"`

	// VoyageDate is the nominal calendar date of the voyage
	VoyageDate datatypes.Date `json:"voyageDate" gorm:"not null;index"`

	// DeparturePortID references the port the voyage leaves from
	DeparturePortID uint `json:"departurePortId" gorm:"not null;index" validate:"required"`

	// ArrivalPortID references the port the voyage arrives at
	ArrivalPortID uint `json:"arrivalPortId" gorm:"not null;index" validate:"required"`

	// VoyageStart is the departure instant (timezone aware, stored as UTC)
	VoyageStart time.Time `json:"voyageStart" gorm:"not null"`

	// VoyageEnd is the arrival instant (timezone aware, stored as UTC)
	VoyageEnd time.Time `json:"voyageEnd" gorm:"not null;index"`

	DeparturePort *Port `json:"departurePort,omitempty" gorm:"foreignKey:DeparturePortID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" validate:"-"`
	ArrivalPort   *Port `json:"arrivalPort,omitempty" gorm:"foreignKey:ArrivalPortID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" validate:"-"`
}

// TableName pins the table name used by the store.
func (Voyage) TableName() string {
	return "voyages"
}

// Date returns the voyage date as a time.Time.
func (v *Voyage) Date() time.Time {
	return time.Time(v.VoyageDate)
}

// Normalize converts the voyage instants to UTC and truncates the voyage
// date to midnight UTC. Nested ports are dropped since they are never
// written through a voyage.
func (v *Voyage) Normalize() {
	v.VoyageStart = v.VoyageStart.UTC()
	v.VoyageEnd = v.VoyageEnd.UTC()
	y, m, d := v.Date().Date()
	v.VoyageDate = datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
	v.DeparturePort = nil
	v.ArrivalPort = nil
}

// UnmarshalJSON accepts voyageDate either as a plain calendar date
// ("2025-04-15") or as an RFC 3339 timestamp.
func (v *Voyage) UnmarshalJSON(data []byte) error {
	type voyage Voyage
	aux := struct {
		*voyage
		VoyageDate json.RawMessage `json:"voyageDate"`
	}{voyage: (*voyage)(v)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(aux.VoyageDate) == 0 || string(aux.VoyageDate) == "null" {
		return nil
	}

	var raw string
	if err := json.Unmarshal(aux.VoyageDate, &raw); err != nil {
		return fmt.Errorf("voyageDate must be a string: %w", err)
	}
	date, err := ParseDate(raw)
	if err != nil {
		return err
	}
	v.VoyageDate = date
	return nil
}

// ParseDate reads a calendar date in 2006-01-02 form or an RFC 3339
// timestamp. Plain dates are midnight UTC.
func ParseDate(s string) (datatypes.Date, error) {
	if t, err := time.ParseInLocation(time.DateOnly, s, time.UTC); err == nil {
		return datatypes.Date(t), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return datatypes.Date{}, fmt.Errorf("voyageDate must look like 2025-04-15 or 2025-04-15T00:00:00Z, got %q", s)
	}
	return datatypes.Date(t), nil
}
