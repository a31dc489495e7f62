package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"evalgo.org/maritime/internal/validation"
)

// validateRecord handles POST /api/validate/:type
// @Summary Validate a record without saving it
// @Description Runs the same field validation as create for a ship, port or voyage document
// @Tags Validation
// @Accept json
// @Produce json
// @Param type path string true "Record type (ship, port, voyage)"
// @Success 200 {object} validation.ValidationResult "Document is valid"
// @Failure 400 {object} validation.ValidationResult "Document is invalid"
// @Router /validate/{type} [post]
func (s *Server) validateRecord(c echo.Context) error {
	kind := c.Param("type")

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return BadRequestError("Failed to read request body", err.Error())
	}

	result, err := s.validator.ValidateDocument(kind, body)
	if errors.Is(err, validation.ErrUnknownKind) {
		return BadRequestError("Invalid record type", "Type must be 'ship', 'port' or 'voyage'")
	}
	if err != nil {
		return InternalError("Validation error", err.Error())
	}

	if result.Valid {
		return c.JSON(http.StatusOK, result)
	}
	return c.JSON(http.StatusBadRequest, result)
}
