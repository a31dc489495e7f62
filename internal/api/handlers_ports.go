package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"evalgo.org/maritime/models"
)

// listPorts handles GET /api/ports
// @Summary List ports
// @Tags Ports
// @Produce json
// @Success 200 {array} models.Port "List of ports"
// @Router /ports [get]
func (s *Server) listPorts(c echo.Context) error {
	ports, err := s.storage.ListPorts(c.Request().Context())
	if err != nil {
		return storageError(err, "Port", 0)
	}
	return c.JSON(http.StatusOK, ports)
}

// getPort handles GET /api/ports/:id
// @Summary Get port by ID
// @Tags Ports
// @Produce json
// @Param id path int true "Port ID"
// @Success 200 {object} models.Port "Port"
// @Failure 404 {object} APIError "Port not found"
// @Router /ports/{id} [get]
func (s *Server) getPort(c echo.Context) error {
	id := pathID(c)

	port, err := s.storage.GetPort(c.Request().Context(), id)
	if err != nil {
		return storageError(err, "Port", id)
	}
	return c.JSON(http.StatusOK, port)
}

// listPortVoyages handles GET /api/ports/:id/voyages
// @Summary List voyages touching a port
// @Description Voyages that depart from or arrive at the port, newest first
// @Tags Ports
// @Produce json
// @Param id path int true "Port ID"
// @Success 200 {array} models.Voyage "Voyages with both ports embedded"
// @Failure 404 {object} APIError "Port not found"
// @Router /ports/{id}/voyages [get]
func (s *Server) listPortVoyages(c echo.Context) error {
	id := pathID(c)
	ctx := c.Request().Context()

	if _, err := s.storage.GetPort(ctx, id); err != nil {
		return storageError(err, "Port", id)
	}

	voyages, err := s.storage.VoyagesForPort(ctx, id)
	if err != nil {
		return storageError(err, "Port", id)
	}
	return c.JSON(http.StatusOK, voyages)
}

// createPort handles POST /api/ports
// @Summary Create port
// @Tags Ports
// @Accept json
// @Produce json
// @Param port body models.Port true "Port"
// @Success 201 {object} models.Port "Created port"
// @Header 201 {string} Location "URL of the created port"
// @Failure 400 {object} APIError "Validation failed"
// @Router /ports [post]
func (s *Server) createPort(c echo.Context) error {
	var port models.Port
	if err := bindBody(c, &port); err != nil {
		return err
	}
	models.TrimPort(&port)
	port.ID = 0

	if result := s.validator.ValidatePort(&port); !result.Valid {
		return ValidationError("Validation failed", result.Fields())
	}

	if err := s.storage.CreatePort(c.Request().Context(), &port); err != nil {
		return storageError(err, "Port", 0)
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/ports/%d", port.ID))
	return c.JSON(http.StatusCreated, port)
}

// updatePort handles PUT /api/ports/:id
// @Summary Update port
// @Tags Ports
// @Accept json
// @Param id path int true "Port ID"
// @Param port body models.Port true "Port"
// @Success 204 "Updated"
// @Failure 400 {object} APIError "ID mismatch or validation failed"
// @Failure 404 {object} APIError "Port not found"
// @Router /ports/{id} [put]
func (s *Server) updatePort(c echo.Context) error {
	id := pathID(c)

	var port models.Port
	if err := bindBody(c, &port); err != nil {
		return err
	}
	if port.ID != id {
		return IDMismatchError("port", id, port.ID)
	}
	models.TrimPort(&port)

	if result := s.validator.ValidatePort(&port); !result.Valid {
		return ValidationError("Validation failed", result.Fields())
	}

	if err := s.storage.UpdatePort(c.Request().Context(), &port); err != nil {
		return storageError(err, "Port", id)
	}
	return c.NoContent(http.StatusNoContent)
}

// deletePort handles DELETE /api/ports/:id
// @Summary Delete port
// @Description Fails with 400 while any voyage departs from or arrives at the port
// @Tags Ports
// @Param id path int true "Port ID"
// @Success 204 "Deleted"
// @Failure 400 {object} APIError "Port referenced by voyages"
// @Failure 404 {object} APIError "Port not found"
// @Router /ports/{id} [delete]
func (s *Server) deletePort(c echo.Context) error {
	id := pathID(c)

	if err := s.storage.DeletePort(c.Request().Context(), id); err != nil {
		return storageError(err, "Port", id)
	}
	return c.NoContent(http.StatusNoContent)
}
