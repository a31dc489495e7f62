package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"evalgo.org/maritime/models"
)

// voyageColumns are the columns written by create and update.
var voyageColumns = []string{
	"voyage_date",
	"departure_port_id",
	"arrival_port_id",
	"voyage_start",
	"voyage_end",
}

// voyages starts a voyage query that loads both ports in the same statement.
func (s *Storage) voyages(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Joins("DeparturePort").
		Joins("ArrivalPort")
}

// ListVoyages returns all voyages, newest voyage date first, with the
// departure and arrival ports embedded.
func (s *Storage) ListVoyages(ctx context.Context) ([]models.Voyage, error) {
	voyages := []models.Voyage{}
	err := s.voyages(ctx).
		Order("voyages.voyage_date DESC").
		Order("voyages.id DESC").
		Find(&voyages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list voyages: %w", err)
	}
	return voyages, nil
}

// GetVoyage retrieves a voyage by id with both ports embedded.
func (s *Storage) GetVoyage(ctx context.Context, id uint) (*models.Voyage, error) {
	var voyage models.Voyage
	err := s.voyages(ctx).Where("voyages.id = ?", id).Take(&voyage).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("voyage", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get voyage %d: %w", id, err)
	}
	return &voyage, nil
}

// CreateVoyage validates both port references and inserts the voyage in
// one transaction. On success voyage is reloaded with its ports embedded.
func (s *Storage) CreateVoyage(ctx context.Context, voyage *models.Voyage) error {
	voyage.Normalize()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkPorts(tx, voyage.DeparturePortID, voyage.ArrivalPortID); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Create(voyage).Error; err != nil {
			return fmt.Errorf("failed to create voyage: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	created, err := s.GetVoyage(ctx, voyage.ID)
	if err != nil {
		return err
	}
	*voyage = *created
	s.log.Debug("voyage created", "id", voyage.ID)
	return nil
}

// UpdateVoyage overwrites an existing voyage after checking that it exists
// and that both referenced ports exist.
func (s *Storage) UpdateVoyage(ctx context.Context, voyage *models.Voyage) error {
	voyage.Normalize()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &models.Voyage{}, "voyage", voyage.ID); err != nil {
			return err
		}
		if err := checkPorts(tx, voyage.DeparturePortID, voyage.ArrivalPortID); err != nil {
			return err
		}
		err := tx.Model(&models.Voyage{ID: voyage.ID}).
			Omit(clause.Associations).
			Select(voyageColumns).
			Updates(voyage).Error
		if err != nil {
			return fmt.Errorf("failed to update voyage %d: %w", voyage.ID, err)
		}
		return nil
	})
}

// DeleteVoyage removes a voyage.
func (s *Storage) DeleteVoyage(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Voyage{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete voyage %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound("voyage", id)
	}
	return nil
}

// checkPorts fails with ErrInvalidPortReference unless both ids name
// existing ports. Departure and arrival may be the same port.
func checkPorts(tx *gorm.DB, departure, arrival uint) error {
	if departure == 0 || arrival == 0 {
		return fmt.Errorf("departure %d, arrival %d: %w", departure, arrival, ErrInvalidPortReference)
	}

	ids := []uint{departure}
	if arrival != departure {
		ids = append(ids, arrival)
	}

	var n int64
	if err := tx.Model(&models.Port{}).Where("id IN ?", ids).Count(&n).Error; err != nil {
		return fmt.Errorf("failed to check voyage ports: %w", err)
	}
	if n != int64(len(ids)) {
		return fmt.Errorf("departure %d, arrival %d: %w", departure, arrival, ErrInvalidPortReference)
	}
	return nil
}
