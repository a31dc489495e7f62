package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// idContextKey holds the parsed :id path parameter.
const idContextKey = "maritime.id"

// ValidateContentType rejects ship, port and voyage writes whose body is
// not JSON. Bodiless writes pass so the handler can report the missing body.
func ValidateContentType(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		switch req.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
		default:
			return next(c)
		}
		if req.ContentLength == 0 {
			return next(c)
		}

		contentType := req.Header.Get(echo.HeaderContentType)
		if !strings.HasPrefix(contentType, echo.MIMEApplicationJSON) {
			return BadRequestError(
				"Invalid Content-Type",
				"Records must be sent as 'application/json'. Got: "+contentType,
			)
		}
		return next(c)
	}
}

// ValidateAcceptHeader rejects API requests that cannot take a JSON answer.
// The HTML pages live outside /api and are not affected.
func ValidateAcceptHeader(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		accept := c.Request().Header.Get(echo.HeaderAccept)
		if accept == "" || acceptsJSON(accept) {
			return next(c)
		}
		return BadRequestError(
			"Invalid Accept header",
			"The API only answers with JSON; use /web for HTML pages. Got: "+accept,
		)
	}
}

func acceptsJSON(accept string) bool {
	for _, part := range strings.Split(accept, ",") {
		mediaType := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		switch mediaType {
		case echo.MIMEApplicationJSON, "application/*", "*/*":
			return true
		}
	}
	return false
}

// ValidateIDFormat middleware requires the :id path parameter to be a
// non-negative integer and stores the parsed value on the context.
func ValidateIDFormat(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := c.Param("id")

		// If no ID param, skip validation
		if raw == "" {
			return next(c)
		}

		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return BadRequestError(
				"Invalid ID format",
				"ID must be a non-negative integer. Got: "+raw,
			)
		}

		c.Set(idContextKey, uint(id))
		return next(c)
	}
}

// pathID returns the id parsed by ValidateIDFormat.
func pathID(c echo.Context) uint {
	if id, ok := c.Get(idContextKey).(uint); ok {
		return id
	}
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id)
}

// SecurityHeaders sets the browser hardening headers on every response,
// API and web pages alike.
func SecurityHeaders(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		h := c.Response().Header()
		h.Set(echo.HeaderXContentTypeOptions, "nosniff")
		h.Set(echo.HeaderXFrameOptions, "DENY")
		h.Set(echo.HeaderXXSSProtection, "1; mode=block")
		h.Set(echo.HeaderReferrerPolicy, "strict-origin-when-cross-origin")
		return next(c)
	}
}
