package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"evalgo.org/maritime/models"
)

// listVoyages handles GET /api/voyages
// @Summary List voyages
// @Description Get all voyages, newest voyage date first, with departure and arrival ports embedded
// @Tags Voyages
// @Produce json
// @Success 200 {array} models.Voyage "List of voyages"
// @Router /voyages [get]
func (s *Server) listVoyages(c echo.Context) error {
	voyages, err := s.storage.ListVoyages(c.Request().Context())
	if err != nil {
		return storageError(err, "Voyage", 0)
	}
	return c.JSON(http.StatusOK, voyages)
}

// getVoyage handles GET /api/voyages/:id
// @Summary Get voyage by ID
// @Tags Voyages
// @Produce json
// @Param id path int true "Voyage ID"
// @Success 200 {object} models.Voyage "Voyage"
// @Failure 404 {object} APIError "Voyage not found"
// @Router /voyages/{id} [get]
func (s *Server) getVoyage(c echo.Context) error {
	id := pathID(c)

	voyage, err := s.storage.GetVoyage(c.Request().Context(), id)
	if err != nil {
		return storageError(err, "Voyage", id)
	}
	return c.JSON(http.StatusOK, voyage)
}

// createVoyage handles POST /api/voyages
// @Summary Create voyage
// @Description Both port ids must reference existing ports
// @Tags Voyages
// @Accept json
// @Produce json
// @Param voyage body models.Voyage true "Voyage"
// @Success 201 {object} models.Voyage "Created voyage with ports"
// @Header 201 {string} Location "URL of the created voyage"
// @Failure 400 {object} APIError "Validation failed or invalid port id"
// @Router /voyages [post]
func (s *Server) createVoyage(c echo.Context) error {
	var voyage models.Voyage
	if err := bindBody(c, &voyage); err != nil {
		return err
	}
	voyage.ID = 0

	if result := s.validator.ValidateVoyage(&voyage); !result.Valid {
		return ValidationError("Validation failed", result.Fields())
	}

	if err := s.storage.CreateVoyage(c.Request().Context(), &voyage); err != nil {
		return storageError(err, "Voyage", 0)
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/voyages/%d", voyage.ID))
	return c.JSON(http.StatusCreated, voyage)
}

// updateVoyage handles PUT /api/voyages/:id
// @Summary Update voyage
// @Tags Voyages
// @Accept json
// @Param id path int true "Voyage ID"
// @Param voyage body models.Voyage true "Voyage"
// @Success 204 "Updated"
// @Failure 400 {object} APIError "ID mismatch, validation failed or invalid port id"
// @Failure 404 {object} APIError "Voyage not found"
// @Router /voyages/{id} [put]
func (s *Server) updateVoyage(c echo.Context) error {
	id := pathID(c)

	var voyage models.Voyage
	if err := bindBody(c, &voyage); err != nil {
		return err
	}
	if voyage.ID != id {
		return IDMismatchError("voyage", id, voyage.ID)
	}

	if result := s.validator.ValidateVoyage(&voyage); !result.Valid {
		return ValidationError("Validation failed", result.Fields())
	}

	if err := s.storage.UpdateVoyage(c.Request().Context(), &voyage); err != nil {
		return storageError(err, "Voyage", id)
	}
	return c.NoContent(http.StatusNoContent)
}

// deleteVoyage handles DELETE /api/voyages/:id
// @Summary Delete voyage
// @Tags Voyages
// @Param id path int true "Voyage ID"
// @Success 204 "Deleted"
// @Failure 404 {object} APIError "Voyage not found"
// @Router /voyages/{id} [delete]
func (s *Server) deleteVoyage(c echo.Context) error {
	id := pathID(c)

	if err := s.storage.DeleteVoyage(c.Request().Context(), id); err != nil {
		return storageError(err, "Voyage", id)
	}
	return c.NoContent(http.StatusNoContent)
}
