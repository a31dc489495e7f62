package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"evalgo.org/maritime/models"
)

// ListPorts returns all ports ordered by id.
func (s *Storage) ListPorts(ctx context.Context) ([]models.Port, error) {
	ports := []models.Port{}
	if err := s.db.WithContext(ctx).Order("id").Find(&ports).Error; err != nil {
		return nil, fmt.Errorf("failed to list ports: %w", err)
	}
	return ports, nil
}

// GetPort retrieves a port by id.
func (s *Storage) GetPort(ctx context.Context, id uint) (*models.Port, error) {
	var port models.Port
	err := s.db.WithContext(ctx).Take(&port, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("port", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get port %d: %w", id, err)
	}
	return &port, nil
}

// CreatePort inserts a port and writes the assigned id back into port.
func (s *Storage) CreatePort(ctx context.Context, port *models.Port) error {
	if err := s.db.WithContext(ctx).Create(port).Error; err != nil {
		return fmt.Errorf("failed to create port: %w", err)
	}
	s.log.Debug("port created", "id", port.ID)
	return nil
}

// UpdatePort overwrites the name and country of an existing port.
func (s *Storage) UpdatePort(ctx context.Context, port *models.Port) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &models.Port{}, "port", port.ID); err != nil {
			return err
		}
		err := tx.Model(&models.Port{ID: port.ID}).
			Select("name", "country").
			Updates(port).Error
		if err != nil {
			return fmt.Errorf("failed to update port %d: %w", port.ID, err)
		}
		return nil
	})
}

// DeletePort removes a port unless a voyage references it as departure or
// arrival. The reference check and the delete share one transaction; a
// foreign key violation raised by the store is reported the same way.
func (s *Storage) DeletePort(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &models.Port{}, "port", id); err != nil {
			return err
		}

		refs, err := countPortReferences(tx, id)
		if err != nil {
			return err
		}
		if refs > 0 {
			return fmt.Errorf("port %d (%d voyages): %w", id, refs, ErrPortInUse)
		}

		res := tx.Delete(&models.Port{}, id)
		if errors.Is(res.Error, gorm.ErrForeignKeyViolated) {
			return fmt.Errorf("port %d: %w", id, ErrPortInUse)
		}
		if res.Error != nil {
			return fmt.Errorf("failed to delete port %d: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return notFound("port", id)
		}
		return nil
	})
}

func countPortReferences(tx *gorm.DB, id uint) (int64, error) {
	var n int64
	err := tx.Model(&models.Voyage{}).
		Where("departure_port_id = ? OR arrival_port_id = ?", id, id).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count voyages for port %d: %w", id, err)
	}
	return n, nil
}

// VoyagesForPort returns the voyages that depart from or arrive at the port,
// newest first, with both ports embedded.
func (s *Storage) VoyagesForPort(ctx context.Context, id uint) ([]models.Voyage, error) {
	voyages := []models.Voyage{}
	err := s.voyages(ctx).
		Where("voyages.departure_port_id = ? OR voyages.arrival_port_id = ?", id, id).
		Order("voyages.voyage_date DESC").
		Order("voyages.id DESC").
		Find(&voyages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list voyages for port %d: %w", id, err)
	}
	return voyages, nil
}

// PortUsage returns, per port id, how many voyages reference the port.
// Ports without voyages are absent from the map.
func (s *Storage) PortUsage(ctx context.Context) (map[uint]int64, error) {
	var rows []struct {
		PortID uint
		Total  int64
	}
	err := s.db.WithContext(ctx).
		Table("ports").
		Select("ports.id AS port_id, COUNT(voyages.id) AS total").
		Joins("JOIN voyages ON voyages.departure_port_id = ports.id OR voyages.arrival_port_id = ports.id").
		Group("ports.id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute port usage: %w", err)
	}

	usage := make(map[uint]int64, len(rows))
	for _, r := range rows {
		usage[r.PortID] = r.Total
	}
	return usage, nil
}
