package commands

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"

	"evalgo.org/maritime/internal/config"
	"evalgo.org/maritime/internal/validation"
	"evalgo.org/maritime/models"
	"evalgo.org/maritime/pkg/maritime/client"
)

func TestPrintResultFormats(t *testing.T) {
	ships := []models.Ship{{ID: 1, Name: "Ocean Voyager", MaxSpeed: 25}}

	var buf bytes.Buffer
	require.NoError(t, printResult(&buf, "table", ships, printShips))
	assert.Contains(t, buf.String(), "Ocean Voyager")
	assert.Contains(t, buf.String(), "Total: 1 ships")

	buf.Reset()
	require.NoError(t, printResult(&buf, "json", ships, printShips))
	assert.Contains(t, buf.String(), `"maxSpeed": 25`)

	buf.Reset()
	require.NoError(t, printResult(&buf, "yaml", ships, printShips))
	assert.Contains(t, buf.String(), "maxSpeed: 25")

	assert.Error(t, printResult(&buf, "xml", ships, printShips))
}

func TestPrintYAMLUsesAPIFieldNames(t *testing.T) {
	day := time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)
	voyages := []models.Voyage{{
		ID:              1001,
		VoyageDate:      datatypes.Date(day),
		DeparturePortID: 101,
		ArrivalPortID:   103,
		VoyageStart:     day.Add(8 * time.Hour),
		VoyageEnd:       day.Add(80 * time.Hour),
	}}

	var buf bytes.Buffer
	require.NoError(t, printYAML(&buf, voyages))

	var doc []map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc, 1)
	assert.Equal(t, 101, doc[0]["departurePortId"])
	assert.Equal(t, "2025-04-15T00:00:00Z", doc[0]["voyageDate"])
}

func TestPrintVoyagesWithoutPorts(t *testing.T) {
	var buf bytes.Buffer
	printVoyages(&buf, []models.Voyage{{ID: 7, DeparturePortID: 101, ArrivalPortID: 102}})
	assert.Contains(t, buf.String(), "#101")
	assert.Contains(t, buf.String(), "#102")
}

func TestPrintDashboard(t *testing.T) {
	var buf bytes.Buffer
	printDashboard(&buf, &client.Summary{
		TotalShips:       3,
		ShipSpeeds:       []client.SpeedBucket{{Range: "0-15 kn"}, {Range: "16-25 kn", Count: 2}, {Range: "26+ kn", Count: 1}},
		CountriesVisited: []string{"Germany", "Netherlands"},
	})
	assert.Contains(t, buf.String(), "Ships: 3")
	assert.Contains(t, buf.String(), "26+ kn")
	assert.Contains(t, buf.String(), "Germany, Netherlands")
}

func TestPrintValidation(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, printValidation(&buf, &client.ValidationResult{Valid: true}))
	assert.Contains(t, buf.String(), "Document is valid")

	buf.Reset()
	err := printValidation(&buf, &client.ValidationResult{
		Errors: []client.FieldError{{Field: "name", Message: "name is required"}},
	})
	assert.Error(t, err)
	assert.Contains(t, buf.String(), "name: name is required")
}

func TestValidateLocalMatchesRemoteShape(t *testing.T) {
	local, err := validation.New().ValidateDocument("ship", []byte(`{"name":"","maxSpeed":-3}`))
	require.NoError(t, err)

	result := fromLocal(local)
	assert.False(t, result.Valid)
	assert.Equal(t, local.Fields(), result.Fields())

	var buf bytes.Buffer
	assert.Error(t, printValidation(&buf, result))
	assert.Contains(t, buf.String(), "maxSpeed: maxSpeed must be at least 0 (value: -3)")
}

func TestQueryVoyagesByPort(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/ports/103/voyages" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1001,"voyageDate":"2025-04-15T00:00:00Z","departurePortId":101,"arrivalPortId":103,
			"departurePort":{"id":101,"name":"Port of Rotterdam","country":"Netherlands"},
			"arrivalPort":{"id":103,"name":"Port of Hamburg","country":"Germany"}}]`))
	}))
	t.Cleanup(srv.Close)

	queryAPIURL, queryFormat, queryVoyagesPort = srv.URL, "table", 103
	t.Cleanup(func() { queryAPIURL, queryFormat, queryVoyagesPort = "", "table", 0 })

	var buf bytes.Buffer
	queryVoyagesCmd.SetOut(&buf)
	queryVoyagesCmd.SetContext(context.Background())
	t.Cleanup(func() { queryVoyagesCmd.SetOut(nil) })

	require.NoError(t, runQueryVoyages(queryVoyagesCmd, nil))
	assert.Contains(t, buf.String(), "Port of Hamburg")
	assert.Contains(t, buf.String(), "Total: 1 voyages")
}

func TestNewClientDefaultsToLocalhost(t *testing.T) {
	cfg = &config.Config{Server: config.ServerConfig{Host: "0.0.0.0", Port: 9090}}
	queryAPIURL = ""
	t.Cleanup(func() { cfg = nil })

	c, err := newClient()
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestInitConfigRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: {}\n"), 0644))

	initConfigPath, initConfigForce = path, false
	t.Cleanup(func() { initConfigPath, initConfigForce = "config.yaml", false })

	assert.Error(t, runInitConfig(initConfigCmd, nil))

	initConfigForce = true
	require.NoError(t, runInitConfig(initConfigCmd, nil))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DriverSQLite, loaded.Database.Driver)
	assert.Equal(t, []string{"http://localhost:4200", "https://localhost:4200"}, loaded.Security.AllowedOrigins)
}
