package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"evalgo.org/maritime/models"
)

// ListShips returns all ships ordered by id.
func (s *Storage) ListShips(ctx context.Context) ([]models.Ship, error) {
	ships := []models.Ship{}
	if err := s.db.WithContext(ctx).Order("id").Find(&ships).Error; err != nil {
		return nil, fmt.Errorf("failed to list ships: %w", err)
	}
	return ships, nil
}

// GetShip retrieves a ship by id.
func (s *Storage) GetShip(ctx context.Context, id uint) (*models.Ship, error) {
	var ship models.Ship
	err := s.db.WithContext(ctx).Take(&ship, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("ship", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ship %d: %w", id, err)
	}
	return &ship, nil
}

// CreateShip inserts a ship. A zero ID lets the store assign one; the
// assigned id is written back into ship.
func (s *Storage) CreateShip(ctx context.Context, ship *models.Ship) error {
	if err := s.db.WithContext(ctx).Create(ship).Error; err != nil {
		return fmt.Errorf("failed to create ship: %w", err)
	}
	s.log.Debug("ship created", "id", ship.ID)
	return nil
}

// UpdateShip overwrites the mutable fields of an existing ship.
// Zero values are written too, so a max speed of 0 is kept.
func (s *Storage) UpdateShip(ctx context.Context, ship *models.Ship) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &models.Ship{}, "ship", ship.ID); err != nil {
			return err
		}
		err := tx.Model(&models.Ship{ID: ship.ID}).
			Select("name", "max_speed").
			Updates(ship).Error
		if err != nil {
			return fmt.Errorf("failed to update ship %d: %w", ship.ID, err)
		}
		return nil
	})
}

// DeleteShip removes a ship. Ships are never referenced, so the only
// failure mode besides the store itself is ErrNotFound.
func (s *Storage) DeleteShip(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Ship{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete ship %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound("ship", id)
	}
	return nil
}
