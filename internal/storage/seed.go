package storage

import (
	"context"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"evalgo.org/maritime/models"
)

// SampleData is the record set inserted by Seed.
type SampleData struct {
	Ports   []models.Port
	Ships   []models.Ship
	Voyages []models.Voyage
}

// DefaultSampleData returns the sample fleet, ports and two voyages.
func DefaultSampleData() SampleData {
	day := func(y int, m time.Month, d int) datatypes.Date {
		return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
	}
	at := func(m time.Month, d, h int) time.Time {
		return time.Date(2025, m, d, h, 0, 0, 0, time.UTC)
	}

	return SampleData{
		Ports: []models.Port{
			{ID: 101, Name: "Port of Rotterdam", Country: "Netherlands"},
			{ID: 102, Name: "Port of Singapore", Country: "Singapore"},
			{ID: 103, Name: "Port of Hamburg", Country: "Germany"},
			{ID: 104, Name: "Port of Los Angeles", Country: "USA"},
			{ID: 105, Name: "Port of Constanta", Country: "Romania"},
		},
		Ships: []models.Ship{
			{ID: 1, Name: "Ocean Voyager", MaxSpeed: 25},
			{ID: 2, Name: "Sea Serpent", MaxSpeed: 18},
			{ID: 3, Name: "Coastal Runner", MaxSpeed: 35},
		},
		Voyages: []models.Voyage{
			{
				ID:              1001,
				VoyageDate:      day(2025, time.April, 15),
				DeparturePortID: 101,
				ArrivalPortID:   103,
				VoyageStart:     at(time.April, 15, 8),
				VoyageEnd:       at(time.April, 18, 16),
			},
			{
				ID:              1002,
				VoyageDate:      day(2025, time.April, 20),
				DeparturePortID: 102,
				ArrivalPortID:   104,
				VoyageStart:     at(time.April, 20, 12),
				VoyageEnd:       at(time.May, 5, 10),
			},
		},
	}
}

// Seed inserts data when all three tables are empty. It reports whether
// anything was written. On postgres the id sequences are moved past the
// explicit ids so later inserts do not collide.
func (s *Storage) Seed(ctx context.Context, data SampleData) (bool, error) {
	counts, err := s.Counts(ctx)
	if err != nil {
		return false, err
	}
	if counts.Ships+counts.Ports+counts.Voyages > 0 {
		s.log.Info("seed skipped, database not empty",
			"ships", counts.Ships, "ports", counts.Ports, "voyages", counts.Voyages)
		return false, nil
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(data.Ports) > 0 {
			if err := tx.Create(&data.Ports).Error; err != nil {
				return fmt.Errorf("failed to seed ports: %w", err)
			}
		}
		if len(data.Ships) > 0 {
			if err := tx.Create(&data.Ships).Error; err != nil {
				return fmt.Errorf("failed to seed ships: %w", err)
			}
		}
		for i := range data.Voyages {
			data.Voyages[i].Normalize()
		}
		if len(data.Voyages) > 0 {
			if err := tx.Omit(clause.Associations).Create(&data.Voyages).Error; err != nil {
				return fmt.Errorf("failed to seed voyages: %w", err)
			}
		}
		return resetSequences(tx)
	})
	if err != nil {
		return false, err
	}

	s.log.Info("database seeded",
		"ships", len(data.Ships), "ports", len(data.Ports), "voyages", len(data.Voyages))
	return true, nil
}

func resetSequences(tx *gorm.DB) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	for _, table := range []string{"ships", "ports", "voyages"} {
		stmt := fmt.Sprintf(
			"SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), COALESCE((SELECT MAX(id) FROM %[1]s), 1))",
			table)
		if err := tx.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to reset %s id sequence: %w", table, err)
		}
	}
	return nil
}
