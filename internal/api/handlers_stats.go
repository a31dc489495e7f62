package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// getCountriesVisited handles GET /api/countryvisits/lastyear
// @Summary Countries visited in the last year
// @Description Distinct departure and arrival countries of voyages that ended within the last 365 days, sorted ascending
// @Tags Statistics
// @Produce json
// @Success 200 {array} string "Country names"
// @Router /countryvisits/lastyear [get]
func (s *Server) getCountriesVisited(c echo.Context) error {
	countries, err := s.storage.CountriesVisited(c.Request().Context(), s.now())
	if err != nil {
		return InternalError("Failed to compute visited countries", err.Error())
	}
	return c.JSON(http.StatusOK, countries)
}

// getDashboard handles GET /api/dashboard
// @Summary Dashboard summary
// @Description Ships by speed band, ports by country, voyages by month and visited countries
// @Tags Statistics
// @Produce json
// @Success 200 {object} dashboard.Summary "Dashboard summary"
// @Router /dashboard [get]
func (s *Server) getDashboard(c echo.Context) error {
	summary, err := s.storage.Dashboard(c.Request().Context(), s.now())
	if err != nil {
		return InternalError("Failed to build dashboard", err.Error())
	}
	return c.JSON(http.StatusOK, summary)
}

// getStatistics handles GET /api/stats
// @Summary Record counts
// @Tags Statistics
// @Produce json
// @Success 200 {object} storage.Counts "Rows per table"
// @Router /stats [get]
func (s *Server) getStatistics(c echo.Context) error {
	counts, err := s.storage.Counts(c.Request().Context())
	if err != nil {
		return InternalError("Failed to get statistics", err.Error())
	}
	return c.JSON(http.StatusOK, counts)
}
