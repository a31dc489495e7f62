// Package web serves the server-rendered maritime UI: a dashboard and list
// pages for ships, ports and voyages with inline create, edit and delete
// forms. Writes redirect back to the list page with a flash message.
package web

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"evalgo.org/maritime/internal/logging"
	"evalgo.org/maritime/internal/storage"
	"evalgo.org/maritime/internal/validation"
	"evalgo.org/maritime/models"
)

// Handler handles web UI requests.
type Handler struct {
	storage   *storage.Storage
	validator *validation.Validator
	log       *logging.Logger
	now       func() time.Time
}

// NewHandler creates a new web handler.
func NewHandler(store *storage.Storage, v *validation.Validator, log *logging.Logger, now func() time.Time) *Handler {
	if v == nil {
		v = validation.New()
	}
	if log == nil {
		log = logging.NewNop()
	}
	if now == nil {
		now = time.Now
	}
	return &Handler{
		storage:   store,
		validator: v,
		log:       log,
		now:       now,
	}
}

// Register mounts the web routes on e.
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/", h.Dashboard)

	g := e.Group("/web")
	g.GET("/ships", h.ShipsList)
	g.POST("/ships/create", h.CreateShip)
	g.POST("/ships/:id/update", h.UpdateShip)
	g.POST("/ships/:id/delete", h.DeleteShip)
	g.GET("/ports", h.PortsList)
	g.POST("/ports/create", h.CreatePort)
	g.POST("/ports/:id/update", h.UpdatePort)
	g.POST("/ports/:id/delete", h.DeletePort)
	g.GET("/voyages", h.VoyagesList)
	g.POST("/voyages/create", h.CreateVoyage)
	g.POST("/voyages/:id/update", h.UpdateVoyage)
	g.POST("/voyages/:id/delete", h.DeleteVoyage)

	e.RouteNotFound("/*", h.NotFound)
}

// Dashboard renders the main dashboard.
func (h *Handler) Dashboard(c echo.Context) error {
	summary, err := h.storage.Dashboard(c.Request().Context(), h.now())
	if err != nil {
		h.log.Error("failed to load dashboard", "error", err.Error())
		return RenderStatus(c, http.StatusInternalServerError,
			DashboardPage(nil, Flash{Error: "Failed to load dashboard data."}))
	}
	return Render(c, DashboardPage(summary, flashFrom(c)))
}

// NotFound renders the not-found page.
func (h *Handler) NotFound(c echo.Context) error {
	return RenderStatus(c, http.StatusNotFound, NotFoundPage(c.Request().URL.Path))
}

// ShipsList renders the ships list page.
func (h *Handler) ShipsList(c echo.Context) error {
	view := ShipsView{EditID: editID(c), Flash: flashFrom(c)}

	ships, err := h.storage.ListShips(c.Request().Context())
	if err != nil {
		h.log.Error("failed to load ships", "error", err.Error())
		view.Flash.Error = "Failed to load ships."
		return RenderStatus(c, http.StatusInternalServerError, ShipsPage(view))
	}
	view.Ships = ships
	return Render(c, ShipsPage(view))
}

// CreateShip handles the ship create form.
func (h *Handler) CreateShip(c echo.Context) error {
	ship, err := shipFromForm(c)
	if err != nil {
		return redirectError(c, "/web/ships", err.Error())
	}
	if result := h.validator.ValidateShip(ship); !result.Valid {
		return redirectError(c, "/web/ships", result.Error())
	}
	if err := h.storage.CreateShip(c.Request().Context(), ship); err != nil {
		return redirectError(c, "/web/ships", h.failure(err, "Ship", 0))
	}
	return redirectNotice(c, "/web/ships", fmt.Sprintf("Ship %q created.", ship.Name))
}

// UpdateShip handles the inline ship edit form.
func (h *Handler) UpdateShip(c echo.Context) error {
	id, err := formID(c)
	if err != nil {
		return redirectError(c, "/web/ships", err.Error())
	}
	ship, err := shipFromForm(c)
	if err != nil {
		return redirectError(c, editURL("/web/ships", id), err.Error())
	}
	ship.ID = id
	if result := h.validator.ValidateShip(ship); !result.Valid {
		return redirectError(c, editURL("/web/ships", id), result.Error())
	}
	if err := h.storage.UpdateShip(c.Request().Context(), ship); err != nil {
		return redirectError(c, "/web/ships", h.failure(err, "Ship", id))
	}
	return redirectNotice(c, "/web/ships", fmt.Sprintf("Ship %d updated.", id))
}

// DeleteShip handles ship deletion.
func (h *Handler) DeleteShip(c echo.Context) error {
	id, err := formID(c)
	if err != nil {
		return redirectError(c, "/web/ships", err.Error())
	}
	if err := h.storage.DeleteShip(c.Request().Context(), id); err != nil {
		return redirectError(c, "/web/ships", h.failure(err, "Ship", id))
	}
	return redirectNotice(c, "/web/ships", fmt.Sprintf("Ship %d deleted.", id))
}

// PortsList renders the ports list page.
func (h *Handler) PortsList(c echo.Context) error {
	ctx := c.Request().Context()
	view := PortsView{EditID: editID(c), Flash: flashFrom(c)}

	ports, err := h.storage.ListPorts(ctx)
	if err != nil {
		h.log.Error("failed to load ports", "error", err.Error())
		view.Flash.Error = "Failed to load ports."
		return RenderStatus(c, http.StatusInternalServerError, PortsPage(view))
	}
	view.Ports = ports

	usage, err := h.storage.PortUsage(ctx)
	if err != nil {
		h.log.Warn("failed to load port usage", "error", err.Error())
	}
	view.Usage = usage

	return Render(c, PortsPage(view))
}

// CreatePort handles the port create form.
func (h *Handler) CreatePort(c echo.Context) error {
	port := portFromForm(c)
	if result := h.validator.ValidatePort(port); !result.Valid {
		return redirectError(c, "/web/ports", result.Error())
	}
	if err := h.storage.CreatePort(c.Request().Context(), port); err != nil {
		return redirectError(c, "/web/ports", h.failure(err, "Port", 0))
	}
	return redirectNotice(c, "/web/ports", fmt.Sprintf("Port %q created.", port.Name))
}

// UpdatePort handles the inline port edit form.
func (h *Handler) UpdatePort(c echo.Context) error {
	id, err := formID(c)
	if err != nil {
		return redirectError(c, "/web/ports", err.Error())
	}
	port := portFromForm(c)
	port.ID = id
	if result := h.validator.ValidatePort(port); !result.Valid {
		return redirectError(c, editURL("/web/ports", id), result.Error())
	}
	if err := h.storage.UpdatePort(c.Request().Context(), port); err != nil {
		return redirectError(c, "/web/ports", h.failure(err, "Port", id))
	}
	return redirectNotice(c, "/web/ports", fmt.Sprintf("Port %d updated.", id))
}

// DeletePort handles port deletion. Ports used by voyages stay and the
// reason is shown as a flash error.
func (h *Handler) DeletePort(c echo.Context) error {
	id, err := formID(c)
	if err != nil {
		return redirectError(c, "/web/ports", err.Error())
	}
	if err := h.storage.DeletePort(c.Request().Context(), id); err != nil {
		return redirectError(c, "/web/ports", h.failure(err, "Port", id))
	}
	return redirectNotice(c, "/web/ports", fmt.Sprintf("Port %d deleted.", id))
}

// VoyagesList renders the voyages list page.
func (h *Handler) VoyagesList(c echo.Context) error {
	ctx := c.Request().Context()
	view := VoyagesView{EditID: editID(c), Flash: flashFrom(c)}

	voyages, err := h.storage.ListVoyages(ctx)
	if err != nil {
		h.log.Error("failed to load voyages", "error", err.Error())
		view.Flash.Error = "Failed to load voyages."
		return RenderStatus(c, http.StatusInternalServerError, VoyagesPage(view))
	}
	view.Voyages = voyages

	ports, err := h.storage.ListPorts(ctx)
	if err != nil {
		h.log.Error("failed to load ports", "error", err.Error())
		view.Flash.Error = "Failed to load ports."
	}
	view.Ports = ports

	return Render(c, VoyagesPage(view))
}

// CreateVoyage handles the voyage create form.
func (h *Handler) CreateVoyage(c echo.Context) error {
	voyage, err := voyageFromForm(c)
	if err != nil {
		return redirectError(c, "/web/voyages", err.Error())
	}
	if result := h.validator.ValidateVoyage(voyage); !result.Valid {
		return redirectError(c, "/web/voyages", result.Error())
	}
	if err := h.storage.CreateVoyage(c.Request().Context(), voyage); err != nil {
		return redirectError(c, "/web/voyages", h.failure(err, "Voyage", 0))
	}
	return redirectNotice(c, "/web/voyages", fmt.Sprintf("Voyage %d created.", voyage.ID))
}

// UpdateVoyage handles the inline voyage edit form.
func (h *Handler) UpdateVoyage(c echo.Context) error {
	id, err := formID(c)
	if err != nil {
		return redirectError(c, "/web/voyages", err.Error())
	}
	voyage, err := voyageFromForm(c)
	if err != nil {
		return redirectError(c, editURL("/web/voyages", id), err.Error())
	}
	voyage.ID = id
	if result := h.validator.ValidateVoyage(voyage); !result.Valid {
		return redirectError(c, editURL("/web/voyages", id), result.Error())
	}
	if err := h.storage.UpdateVoyage(c.Request().Context(), voyage); err != nil {
		return redirectError(c, "/web/voyages", h.failure(err, "Voyage", id))
	}
	return redirectNotice(c, "/web/voyages", fmt.Sprintf("Voyage %d updated.", id))
}

// DeleteVoyage handles voyage deletion.
func (h *Handler) DeleteVoyage(c echo.Context) error {
	id, err := formID(c)
	if err != nil {
		return redirectError(c, "/web/voyages", err.Error())
	}
	if err := h.storage.DeleteVoyage(c.Request().Context(), id); err != nil {
		return redirectError(c, "/web/voyages", h.failure(err, "Voyage", id))
	}
	return redirectNotice(c, "/web/voyages", fmt.Sprintf("Voyage %d deleted.", id))
}

// failure turns a storage error into a message for the flash banner.
func (h *Handler) failure(err error, resource string, id uint) string {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return fmt.Sprintf("%s with ID %d not found.", resource, id)
	case errors.Is(err, storage.ErrPortInUse):
		return fmt.Sprintf("Cannot delete Port ID %d because it is referenced by existing Voyages.", id)
	case errors.Is(err, storage.ErrInvalidPortReference):
		return "Invalid Departure or Arrival Port ID provided."
	default:
		h.log.Error("web write failed", "resource", resource, "id", id, "error", err.Error())
		return fmt.Sprintf("Failed to save %s.", strings.ToLower(resource))
	}
}

func shipFromForm(c echo.Context) (*models.Ship, error) {
	ship := &models.Ship{Name: c.FormValue("name")}
	models.TrimShip(ship)

	raw := strings.TrimSpace(c.FormValue("maxSpeed"))
	if raw == "" {
		return ship, nil
	}
	speed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("max speed must be a number, got %q", raw)
	}
	ship.MaxSpeed = speed
	return ship, nil
}

func portFromForm(c echo.Context) *models.Port {
	port := &models.Port{
		Name:    c.FormValue("name"),
		Country: c.FormValue("country"),
	}
	models.TrimPort(port)
	return port
}

func voyageFromForm(c echo.Context) (*models.Voyage, error) {
	v := &models.Voyage{}

	dep, err := optionalID(c.FormValue("departurePortId"))
	if err != nil {
		return nil, fmt.Errorf("departure port: %w", err)
	}
	arr, err := optionalID(c.FormValue("arrivalPortId"))
	if err != nil {
		return nil, fmt.Errorf("arrival port: %w", err)
	}
	v.DeparturePortID, v.ArrivalPortID = dep, arr

	if raw := strings.TrimSpace(c.FormValue("voyageDate")); raw != "" {
		if v.VoyageDate, err = models.ParseDate(raw); err != nil {
			return nil, err
		}
	}
	if v.VoyageStart, err = parseInstant(c.FormValue("voyageStart")); err != nil {
		return nil, fmt.Errorf("voyage start: %w", err)
	}
	if v.VoyageEnd, err = parseInstant(c.FormValue("voyageEnd")); err != nil {
		return nil, fmt.Errorf("voyage end: %w", err)
	}
	return v, nil
}

// parseInstant accepts datetime-local values (read as UTC) and RFC 3339.
func parseInstant(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	for _, layout := range []string{datetimeLayout, "2006-01-02T15:04:05", time.RFC3339} {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date and time %q", raw)
}

func optionalID(raw string) (uint, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return uint(id), nil
}

func formID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", c.Param("id"))
	}
	return uint(id), nil
}

func editID(c echo.Context) uint {
	id, _ := optionalID(c.QueryParam("edit"))
	return id
}

func flashFrom(c echo.Context) Flash {
	return Flash{
		Notice: c.QueryParam("notice"),
		Error:  c.QueryParam("error"),
	}
}

func editURL(base string, id uint) string {
	return fmt.Sprintf("%s?edit=%d", base, id)
}

func redirectError(c echo.Context, target, msg string) error {
	return redirectWith(c, target, "error", msg)
}

func redirectNotice(c echo.Context, target, msg string) error {
	return redirectWith(c, target, "notice", msg)
}

func redirectWith(c echo.Context, target, key, msg string) error {
	u, err := url.Parse(target)
	if err != nil {
		return err
	}
	q := u.Query()
	q.Set(key, msg)
	u.RawQuery = q.Encode()
	return c.Redirect(http.StatusSeeOther, u.String())
}
