package storage

import (
	"context"
	"fmt"
	"time"

	"evalgo.org/maritime/internal/dashboard"
	"evalgo.org/maritime/models"
)

// Counts holds the number of rows per table.
type Counts struct {
	Ships   int64 `json:"ships"`
	Ports   int64 `json:"ports"`
	Voyages int64 `json:"voyages"`
}

// Counts returns the row count of each table.
func (s *Storage) Counts(ctx context.Context) (*Counts, error) {
	c := &Counts{}
	db := s.db.WithContext(ctx)
	if err := db.Model(&models.Ship{}).Count(&c.Ships).Error; err != nil {
		return nil, fmt.Errorf("failed to count ships: %w", err)
	}
	if err := db.Model(&models.Port{}).Count(&c.Ports).Error; err != nil {
		return nil, fmt.Errorf("failed to count ports: %w", err)
	}
	if err := db.Model(&models.Voyage{}).Count(&c.Voyages).Error; err != nil {
		return nil, fmt.Errorf("failed to count voyages: %w", err)
	}
	return c, nil
}

// Dashboard loads every record and computes the dashboard summary as of now.
func (s *Storage) Dashboard(ctx context.Context, now time.Time) (*dashboard.Summary, error) {
	ships, err := s.ListShips(ctx)
	if err != nil {
		return nil, err
	}
	ports, err := s.ListPorts(ctx)
	if err != nil {
		return nil, err
	}
	voyages, err := s.ListVoyages(ctx)
	if err != nil {
		return nil, err
	}
	countries, err := s.CountriesVisited(ctx, now)
	if err != nil {
		return nil, err
	}
	return dashboard.Build(ships, ports, voyages, countries, now, s.log), nil
}
