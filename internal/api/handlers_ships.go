package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"evalgo.org/maritime/models"
)

// listShips handles GET /api/ships
// @Summary List ships
// @Description Get all ships ordered by id
// @Tags Ships
// @Produce json
// @Success 200 {array} models.Ship "List of ships"
// @Failure 500 {object} APIError "Internal server error"
// @Router /ships [get]
func (s *Server) listShips(c echo.Context) error {
	ships, err := s.storage.ListShips(c.Request().Context())
	if err != nil {
		return storageError(err, "Ship", 0)
	}
	return c.JSON(http.StatusOK, ships)
}

// getShip handles GET /api/ships/:id
// @Summary Get ship by ID
// @Tags Ships
// @Produce json
// @Param id path int true "Ship ID"
// @Success 200 {object} models.Ship "Ship"
// @Failure 400 {object} APIError "Invalid ID"
// @Failure 404 {object} APIError "Ship not found"
// @Router /ships/{id} [get]
func (s *Server) getShip(c echo.Context) error {
	id := pathID(c)

	ship, err := s.storage.GetShip(c.Request().Context(), id)
	if err != nil {
		return storageError(err, "Ship", id)
	}
	return c.JSON(http.StatusOK, ship)
}

// createShip handles POST /api/ships
// @Summary Create ship
// @Description Create a ship; any id in the body is ignored
// @Tags Ships
// @Accept json
// @Produce json
// @Param ship body models.Ship true "Ship"
// @Success 201 {object} models.Ship "Created ship"
// @Header 201 {string} Location "URL of the created ship"
// @Failure 400 {object} APIError "Validation failed"
// @Router /ships [post]
func (s *Server) createShip(c echo.Context) error {
	var ship models.Ship
	if err := bindBody(c, &ship); err != nil {
		return err
	}
	models.TrimShip(&ship)
	ship.ID = 0

	if result := s.validator.ValidateShip(&ship); !result.Valid {
		return ValidationError("Validation failed", result.Fields())
	}

	if err := s.storage.CreateShip(c.Request().Context(), &ship); err != nil {
		return storageError(err, "Ship", 0)
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/ships/%d", ship.ID))
	return c.JSON(http.StatusCreated, ship)
}

// updateShip handles PUT /api/ships/:id
// @Summary Update ship
// @Description Replace a ship; the body id must equal the path id
// @Tags Ships
// @Accept json
// @Param id path int true "Ship ID"
// @Param ship body models.Ship true "Ship"
// @Success 204 "Updated"
// @Failure 400 {object} APIError "ID mismatch or validation failed"
// @Failure 404 {object} APIError "Ship not found"
// @Router /ships/{id} [put]
func (s *Server) updateShip(c echo.Context) error {
	id := pathID(c)

	var ship models.Ship
	if err := bindBody(c, &ship); err != nil {
		return err
	}
	if ship.ID != id {
		return IDMismatchError("ship", id, ship.ID)
	}
	models.TrimShip(&ship)

	if result := s.validator.ValidateShip(&ship); !result.Valid {
		return ValidationError("Validation failed", result.Fields())
	}

	if err := s.storage.UpdateShip(c.Request().Context(), &ship); err != nil {
		return storageError(err, "Ship", id)
	}
	return c.NoContent(http.StatusNoContent)
}

// deleteShip handles DELETE /api/ships/:id
// @Summary Delete ship
// @Tags Ships
// @Param id path int true "Ship ID"
// @Success 204 "Deleted"
// @Failure 404 {object} APIError "Ship not found"
// @Router /ships/{id} [delete]
func (s *Server) deleteShip(c echo.Context) error {
	id := pathID(c)

	if err := s.storage.DeleteShip(c.Request().Context(), id); err != nil {
		return storageError(err, "Ship", id)
	}
	return c.NoContent(http.StatusNoContent)
}
