package web

import (
	"strconv"

	"github.com/a-h/templ"

	"evalgo.org/maritime/internal/dashboard"
	"evalgo.org/maritime/models"
)

// Input formats used by the HTML forms. Instants are entered and shown in UTC.
const (
	dateLayout     = "2006-01-02"
	datetimeLayout = "2006-01-02T15:04"
	displayLayout  = "2006-01-02 15:04 UTC"
)

// DashboardPage renders record totals, the three chart series and the
// countries visited in the last year.
func DashboardPage(summary *dashboard.Summary, flash Flash) templ.Component {
	if summary == nil {
		summary = &dashboard.Summary{ShipSpeeds: dashboard.ShipSpeedBuckets(nil)}
	}
	body := generated("DashboardPage", func(h *html) {
		h.raw(`<div class="cards">`)
		card(h, summary.TotalShips, "Ships")
		card(h, summary.TotalPorts, "Ports")
		card(h, summary.TotalVoyages, "Voyages")
		h.raw(`</div>`)

		h.raw(`<h2>Ships by max speed</h2><table id="ship-speeds"><tr><th>Range</th><th>Ships</th><th></th></tr>`)
		for _, b := range summary.ShipSpeeds {
			seriesRow(h, b.Range, b.Count)
		}
		h.raw(`</table>`)

		h.raw(`<h2>Ports by country</h2><table id="ports-by-country"><tr><th>Country</th><th>Ports</th><th></th></tr>`)
		if len(summary.PortsByCountry) == 0 {
			h.raw(`<tr><td colspan="3">No ports recorded.</td></tr>`)
		}
		for _, cc := range summary.PortsByCountry {
			seriesRow(h, cc.Country, cc.Count)
		}
		h.raw(`</table>`)

		h.raw(`<h2>Voyages by month</h2><table id="voyages-by-month"><tr><th>Month</th><th>Voyages</th><th></th></tr>`)
		if len(summary.VoyagesByMonth) == 0 {
			h.raw(`<tr><td colspan="3">No voyages recorded.</td></tr>`)
		}
		for _, mc := range summary.VoyagesByMonth {
			seriesRow(h, mc.Month, mc.Count)
		}
		h.raw(`</table>`)

		h.raw(`<h2>Countries visited in the last year</h2><ul id="countries">`)
		if len(summary.CountriesVisited) == 0 {
			h.raw(`<li>None</li>`)
		}
		for _, country := range summary.CountriesVisited {
			h.raw(`<li>`)
			h.text(country)
			h.raw(`</li>`)
		}
		h.raw(`</ul>`)
	})
	return withBody(Layout("Dashboard", "/", flash), body)
}

func card(h *html, total int, label string) {
	h.raw(`<div class="card"><strong>`)
	h.count(int64(total))
	h.raw(`</strong>`)
	h.text(label)
	h.raw(`</div>`)
}

// seriesRow is one chart row: label, count and a bar scaled to the count.
func seriesRow(h *html, label string, n int) {
	h.raw(`<tr><td>`)
	h.text(label)
	h.raw(`</td><td>`)
	h.count(int64(n))
	h.raw(`</td><td><span class="bar" style="width:`)
	h.count(int64(n) * 12)
	h.raw(`px"></span></td></tr>`)
}

// rowActions writes the edit link and delete button of a listed record.
// deletable false renders a disabled button instead of the delete form.
func rowActions(h *html, base string, id uint, deletable bool) {
	h.raw(`<a href="`)
	h.text(base)
	h.raw(`?edit=`)
	h.id(id)
	h.raw(`">Edit</a> `)
	if !deletable {
		h.raw(`<button type="button" disabled title="Referenced by voyages">Delete</button>`)
		return
	}
	h.raw(`<form class="inline" method="post" action="`)
	h.text(base)
	h.raw(`/`)
	h.id(id)
	h.raw(`/delete"><button type="submit">Delete</button></form>`)
}

// editFormOpen starts the inline edit row of a record.
func editFormOpen(h *html, base string, id uint, colspan int) {
	h.raw(`<tr><td>`)
	h.id(id)
	h.raw(`</td><td colspan="`)
	h.count(int64(colspan))
	h.raw(`"><form method="post" action="`)
	h.text(base)
	h.raw(`/`)
	h.id(id)
	h.raw(`/update">`)
}

func editFormClose(h *html, base string) {
	h.raw(`<button type="submit">Save</button> <a href="`)
	h.text(base)
	h.raw(`">Cancel</a></form></td></tr>`)
}

// ShipsView is the data behind the ships page.
type ShipsView struct {
	Ships  []models.Ship
	EditID uint
	Flash  Flash
}

// ShipsPage lists ships with an inline create form and, when EditID names
// a listed ship, an inline edit row.
func ShipsPage(v ShipsView) templ.Component {
	const base = "/web/ships"
	body := generated("ShipsPage", func(h *html) {
		h.raw(`<form method="post" action="/web/ships/create">`)
		h.raw(`<input name="name" placeholder="Name" maxlength="100" required> `)
		h.raw(`<input name="maxSpeed" type="number" step="0.1" min="0" max="1000" placeholder="Max speed (kn)" required> `)
		h.raw(`<button type="submit">Add ship</button></form>`)

		h.raw(`<table id="ships"><tr><th>ID</th><th>Name</th><th>Max speed (kn)</th><th></th></tr>`)
		if len(v.Ships) == 0 {
			h.raw(`<tr><td colspan="4">No ships found.</td></tr>`)
		}
		for _, s := range v.Ships {
			if s.ID == v.EditID {
				editFormOpen(h, base, s.ID, 3)
				h.raw(`<input name="name" value="`)
				h.text(s.Name)
				h.raw(`" maxlength="100" required> <input name="maxSpeed" type="number" step="0.1" min="0" max="1000" value="`)
				h.text(formatSpeed(s.MaxSpeed))
				h.raw(`" required> `)
				editFormClose(h, base)
				continue
			}
			h.raw(`<tr><td>`)
			h.id(s.ID)
			h.raw(`</td><td>`)
			h.text(s.Name)
			h.raw(`</td><td>`)
			h.text(formatSpeed(s.MaxSpeed))
			h.raw(`</td><td>`)
			rowActions(h, base, s.ID, true)
			h.raw(`</td></tr>`)
		}
		h.raw(`</table>`)
	})
	return withBody(Layout("Ships", base, v.Flash), body)
}

// PortsView is the data behind the ports page.
type PortsView struct {
	Ports  []models.Port
	Usage  map[uint]int64
	EditID uint
	Flash  Flash
}

// PortsPage lists ports with the number of voyages using each one.
func PortsPage(v PortsView) templ.Component {
	const base = "/web/ports"
	body := generated("PortsPage", func(h *html) {
		h.raw(`<form method="post" action="/web/ports/create">`)
		h.raw(`<input name="name" placeholder="Name" maxlength="100" required> `)
		h.raw(`<input name="country" placeholder="Country" maxlength="100" required> `)
		h.raw(`<button type="submit">Add port</button></form>`)

		h.raw(`<table id="ports"><tr><th>ID</th><th>Name</th><th>Country</th><th>Voyages</th><th></th></tr>`)
		if len(v.Ports) == 0 {
			h.raw(`<tr><td colspan="5">No ports found.</td></tr>`)
		}
		for _, p := range v.Ports {
			if p.ID == v.EditID {
				editFormOpen(h, base, p.ID, 4)
				h.raw(`<input name="name" value="`)
				h.text(p.Name)
				h.raw(`" maxlength="100" required> <input name="country" value="`)
				h.text(p.Country)
				h.raw(`" maxlength="100" required> `)
				editFormClose(h, base)
				continue
			}
			used := v.Usage[p.ID]
			h.raw(`<tr><td>`)
			h.id(p.ID)
			h.raw(`</td><td>`)
			h.text(p.Name)
			h.raw(`</td><td>`)
			h.text(p.Country)
			h.raw(`</td><td>`)
			h.count(used)
			h.raw(`</td><td>`)
			rowActions(h, base, p.ID, used == 0)
			h.raw(`</td></tr>`)
		}
		h.raw(`</table>`)
	})
	return withBody(Layout("Ports", base, v.Flash), body)
}

// VoyagesView is the data behind the voyages page.
type VoyagesView struct {
	Voyages []models.Voyage
	Ports   []models.Port
	EditID  uint
	Flash   Flash
}

// VoyagesPage lists voyages, newest first, with port pickers for create
// and edit.
func VoyagesPage(v VoyagesView) templ.Component {
	const base = "/web/voyages"
	body := generated("VoyagesPage", func(h *html) {
		if len(v.Ports) == 0 {
			h.raw(`<p>Add ports before recording voyages.</p>`)
		} else {
			h.raw(`<form method="post" action="/web/voyages/create">`)
			voyageInputs(h, v.Ports, nil)
			h.raw(`<button type="submit">Add voyage</button></form>`)
		}

		h.raw(`<table id="voyages"><tr><th>ID</th><th>Date</th><th>Departure</th><th>Arrival</th><th>Start</th><th>End</th><th></th></tr>`)
		if len(v.Voyages) == 0 {
			h.raw(`<tr><td colspan="7">No voyages found.</td></tr>`)
		}
		for i := range v.Voyages {
			voyage := &v.Voyages[i]
			if voyage.ID == v.EditID {
				editFormOpen(h, base, voyage.ID, 6)
				voyageInputs(h, v.Ports, voyage)
				editFormClose(h, base)
				continue
			}
			h.raw(`<tr><td>`)
			h.id(voyage.ID)
			for _, cell := range []string{
				voyage.Date().Format(dateLayout),
				portLabel(voyage.DeparturePort, voyage.DeparturePortID),
				portLabel(voyage.ArrivalPort, voyage.ArrivalPortID),
				voyage.VoyageStart.UTC().Format(displayLayout),
				voyage.VoyageEnd.UTC().Format(displayLayout),
			} {
				h.raw(`</td><td>`)
				h.text(cell)
			}
			h.raw(`</td><td>`)
			rowActions(h, base, voyage.ID, true)
			h.raw(`</td></tr>`)
		}
		h.raw(`</table>`)
	})
	return withBody(Layout("Voyages", base, v.Flash), body)
}

func voyageInputs(h *html, ports []models.Port, voyage *models.Voyage) {
	var date, start, end string
	var dep, arr uint
	if voyage != nil {
		date = voyage.Date().Format(dateLayout)
		start = voyage.VoyageStart.UTC().Format(datetimeLayout)
		end = voyage.VoyageEnd.UTC().Format(datetimeLayout)
		dep, arr = voyage.DeparturePortID, voyage.ArrivalPortID
	}

	input(h, "voyageDate", "date", date)
	portSelect(h, "departurePortId", ports, dep)
	portSelect(h, "arrivalPortId", ports, arr)
	input(h, "voyageStart", "datetime-local", start)
	input(h, "voyageEnd", "datetime-local", end)
}

func input(h *html, name, typ, value string) {
	h.raw(`<input name="`)
	h.text(name)
	h.raw(`" type="`)
	h.text(typ)
	h.raw(`" value="`)
	h.text(value)
	h.raw(`" required> `)
}

func portSelect(h *html, name string, ports []models.Port, selected uint) {
	h.raw(`<select name="`)
	h.text(name)
	h.raw(`" required><option value="">-- `)
	h.text(name)
	h.raw(` --</option>`)
	for i := range ports {
		h.raw(`<option value="`)
		h.id(ports[i].ID)
		if ports[i].ID == selected {
			h.raw(`" selected>`)
		} else {
			h.raw(`">`)
		}
		h.text(portLabel(&ports[i], ports[i].ID))
		h.raw(`</option>`)
	}
	h.raw(`</select> `)
}

func portLabel(p *models.Port, id uint) string {
	if p == nil {
		return "#" + strconv.FormatUint(uint64(id), 10)
	}
	return p.Name + " (" + p.Country + ")"
}

func formatSpeed(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
