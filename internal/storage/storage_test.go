package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"evalgo.org/maritime/internal/config"
	"evalgo.org/maritime/internal/logging"
	"evalgo.org/maritime/internal/storage"
	"evalgo.org/maritime/internal/storage/storagetest"
	"evalgo.org/maritime/models"
)

func voyage(dep, arr uint, end time.Time) *models.Voyage {
	start := end.Add(-72 * time.Hour)
	return &models.Voyage{
		VoyageDate:      datatypes.Date(start),
		DeparturePortID: dep,
		ArrivalPortID:   arr,
		VoyageStart:     start,
		VoyageEnd:       end,
	}
}

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"maritime.db", "maritime.db?_foreign_keys=on"},
		{"file:maritime.db?cache=shared", "file:maritime.db?cache=shared&_foreign_keys=on"},
		{"file:maritime.db?_foreign_keys=on", "file:maritime.db?_foreign_keys=on"},
		{"file:maritime.db?_fk=1", "file:maritime.db?_fk=1"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, storage.SQLiteDSN(tt.in))
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := storage.Open(config.DatabaseConfig{Driver: "oracle", DSN: "x"}, logging.NewNop())
	assert.Error(t, err)

	_, err = storage.Open(config.DatabaseConfig{Driver: config.DriverSQLite, DSN: " "}, logging.NewNop())
	assert.Error(t, err)

	cfg := storagetest.Config()
	cfg.LogLevel = "chatty"
	_, err = storage.Open(cfg, logging.NewNop())
	assert.Error(t, err)
}

func TestShipCRUD(t *testing.T) {
	ctx := context.Background()
	s := storagetest.New(t)

	ships, err := s.ListShips(ctx)
	require.NoError(t, err)
	assert.NotNil(t, ships)
	assert.Empty(t, ships)

	ship := &models.Ship{Name: "Ocean Voyager", MaxSpeed: 25}
	require.NoError(t, s.CreateShip(ctx, ship))
	require.NotZero(t, ship.ID)

	got, err := s.GetShip(ctx, ship.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ocean Voyager", got.Name)

	// Zero values are persisted on update.
	require.NoError(t, s.UpdateShip(ctx, &models.Ship{ID: ship.ID, Name: "Ocean Voyager II", MaxSpeed: 0}))
	got, err = s.GetShip(ctx, ship.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ocean Voyager II", got.Name)
	assert.Equal(t, 0.0, got.MaxSpeed)

	err = s.UpdateShip(ctx, &models.Ship{ID: 999, Name: "Ghost"})
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, s.DeleteShip(ctx, ship.ID))
	_, err = s.GetShip(ctx, ship.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.ErrorIs(t, s.DeleteShip(ctx, ship.ID), storage.ErrNotFound)
}

func TestDeleteUnreferencedPort(t *testing.T) {
	ctx := context.Background()
	s := storagetest.New(t)

	port := &models.Port{Name: "Port of Hamburg", Country: "Germany"}
	require.NoError(t, s.CreatePort(ctx, port))

	require.NoError(t, s.DeletePort(ctx, port.ID))

	_, err := s.GetPort(ctx, port.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.ErrorIs(t, s.DeletePort(ctx, port.ID), storage.ErrNotFound)
}

func TestDeleteReferencedPort(t *testing.T) {
	ctx := context.Background()
	s := storagetest.New(t)

	dep := &models.Port{Name: "Port of Rotterdam", Country: "Netherlands"}
	arr := &models.Port{Name: "Port of Hamburg", Country: "Germany"}
	require.NoError(t, s.CreatePort(ctx, dep))
	require.NoError(t, s.CreatePort(ctx, arr))
	require.NoError(t, s.CreateVoyage(ctx, voyage(dep.ID, arr.ID, time.Now())))

	for _, id := range []uint{dep.ID, arr.ID} {
		err := s.DeletePort(ctx, id)
		assert.ErrorIs(t, err, storage.ErrPortInUse)

		_, err = s.GetPort(ctx, id)
		assert.NoError(t, err, "port %d must still exist", id)
	}
}

func TestForeignKeyRestrictsPortDelete(t *testing.T) {
	ctx := context.Background()
	s := storagetest.New(t)

	dep := &models.Port{Name: "A", Country: "X"}
	arr := &models.Port{Name: "B", Country: "Y"}
	require.NoError(t, s.CreatePort(ctx, dep))
	require.NoError(t, s.CreatePort(ctx, arr))
	require.NoError(t, s.CreateVoyage(ctx, voyage(dep.ID, arr.ID, time.Now())))

	// Bypass the repository guard; the schema itself must refuse.
	err := s.DB().Delete(&models.Port{}, dep.ID).Error
	assert.Error(t, err)
}

func TestUpdatePort(t *testing.T) {
	ctx := context.Background()
	s := storagetest.New(t)

	port := &models.Port{Name: "Port of Hamburg", Country: "Germany"}
	require.NoError(t, s.CreatePort(ctx, port))

	require.NoError(t, s.UpdatePort(ctx, &models.Port{ID: port.ID, Name: "Hamburg", Country: "Deutschland"}))
	got, err := s.GetPort(ctx, port.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hamburg", got.Name)
	assert.Equal(t, "Deutschland", got.Country)

	assert.ErrorIs(t, s.UpdatePort(ctx, &models.Port{ID: 4242, Name: "x", Country: "y"}), storage.ErrNotFound)
}

func TestCreateVoyageInvalidPorts(t *testing.T) {
	ctx := context.Background()
	s := storagetest.New(t)

	port := &models.Port{Name: "Port of Rotterdam", Country: "Netherlands"}
	require.NoError(t, s.CreatePort(ctx, port))

	tests := []struct {
		name     string
		dep, arr uint
	}{
		{"missing departure", 999, port.ID},
		{"missing arrival", port.ID, 999},
		{"both missing", 998, 999},
		{"zero departure", 0, port.ID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.CreateVoyage(ctx, voyage(tt.dep, tt.arr, time.Now()))
			assert.ErrorIs(t, err, storage.ErrInvalidPortReference)
		})
	}

	voyages, err := s.ListVoyages(ctx)
	require.NoError(t, err)
	assert.Empty(t, voyages)
}

func TestCreateVoyageEmbedsPorts(t *testing.T) {
	ctx := context.Background()
	s := storagetest.New(t)

	dep := &models.Port{Name: "Port of Rotterdam", Country: "Netherlands"}
	arr := &models.Port{Name: "Port of Hamburg", Country: "Germany"}
	require.NoError(t, s.CreatePort(ctx, dep))
	require.NoError(t, s.CreatePort(ctx, arr))

	cest := time.FixedZone("CEST", 2*60*60)
	v := &models.Voyage{
		VoyageDate:      datatypes.Date(time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)),
		DeparturePortID: dep.ID,
		ArrivalPortID:   arr.ID,
		VoyageStart:     time.Date(2025, 4, 15, 10, 0, 0, 0, cest),
		VoyageEnd:       time.Date(2025, 4, 18, 18, 0, 0, 0, cest),
	}
	require.NoError(t, s.CreateVoyage(ctx, v))
	require.NotZero(t, v.ID)
	require.NotNil(t, v.DeparturePort)
	require.NotNil(t, v.ArrivalPort)
	assert.Equal(t, "Port of Rotterdam", v.DeparturePort.Name)
	assert.Equal(t, "Germany", v.ArrivalPort.Country)

	got, err := s.GetVoyage(ctx, v.ID)
	require.NoError(t, err)
	assert.True(t, got.VoyageStart.Equal(time.Date(2025, 4, 15, 8, 0, 0, 0, time.UTC)))
	assert.Equal(t, 2025, got.Date().Year())
	assert.Equal(t, time.April, got.Date().Month())
	assert.Equal(t, 15, got.Date().Day())
	require.NotNil(t, got.DeparturePort)
	assert.Equal(t, dep.ID, got.DeparturePort.ID)
}

func TestUpdateVoyage(t *testing.T) {
	ctx := context.Background()
	s := storagetest.NewSeeded(t)

	v, err := s.GetVoyage(ctx, 1001)
	require.NoError(t, err)

	v.ArrivalPortID = 105
	require.NoError(t, s.UpdateVoyage(ctx, v))

	got, err := s.GetVoyage(ctx, 1001)
	require.NoError(t, err)
	assert.Equal(t, uint(105), got.ArrivalPortID)
	require.NotNil(t, got.ArrivalPort)
	assert.Equal(t, "Romania", got.ArrivalPort.Country)

	v.ArrivalPortID = 999
	assert.ErrorIs(t, s.UpdateVoyage(ctx, v), storage.ErrInvalidPortReference)

	missing := voyage(101, 102, time.Now())
	missing.ID = 4711
	assert.ErrorIs(t, s.UpdateVoyage(ctx, missing), storage.ErrNotFound)
}

func TestListVoyagesOrder(t *testing.T) {
	ctx := context.Background()
	s := storagetest.NewSeeded(t)

	voyages, err := s.ListVoyages(ctx)
	require.NoError(t, err)
	require.Len(t, voyages, 2)
	assert.Equal(t, uint(1002), voyages[0].ID)
	assert.Equal(t, uint(1001), voyages[1].ID)
	for _, v := range voyages {
		assert.NotNil(t, v.DeparturePort)
		assert.NotNil(t, v.ArrivalPort)
	}
}

func TestDeleteVoyageReleasesPort(t *testing.T) {
	ctx := context.Background()
	s := storagetest.NewSeeded(t)

	assert.ErrorIs(t, s.DeletePort(ctx, 101), storage.ErrPortInUse)
	require.NoError(t, s.DeleteVoyage(ctx, 1001))
	assert.ErrorIs(t, s.DeleteVoyage(ctx, 1001), storage.ErrNotFound)
	require.NoError(t, s.DeletePort(ctx, 101))
}

func TestVoyagesForPortAndUsage(t *testing.T) {
	ctx := context.Background()
	s := storagetest.NewSeeded(t)

	voyages, err := s.VoyagesForPort(ctx, 103)
	require.NoError(t, err)
	require.Len(t, voyages, 1)
	assert.Equal(t, uint(1001), voyages[0].ID)

	voyages, err = s.VoyagesForPort(ctx, 105)
	require.NoError(t, err)
	assert.Empty(t, voyages)

	usage, err := s.PortUsage(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[uint]int64{101: 1, 102: 1, 103: 1, 104: 1}, usage)
}

func TestCountriesVisited(t *testing.T) {
	ctx := context.Background()
	s := storagetest.New(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	ports := []*models.Port{
		{ID: 1, Name: "Port A", Country: "CountryX"},
		{ID: 2, Name: "Port B", Country: "CountryY"},
		{ID: 3, Name: "Port C", Country: "CountryZ"},
		{ID: 4, Name: "Port D", Country: "CountryX"},
	}
	for _, p := range ports {
		require.NoError(t, s.CreatePort(ctx, p))
	}

	for _, v := range []*models.Voyage{
		voyage(1, 2, now.AddDate(0, -6, 0)),
		voyage(3, 2, now.AddDate(0, -3, 0)),
		voyage(1, 3, now.AddDate(0, -2, 0)),
		voyage(1, 4, now.AddDate(0, -1, 0)),
		voyage(2, 3, now.AddDate(-2, 0, 0)),
	} {
		require.NoError(t, s.CreateVoyage(ctx, v))
	}

	got, err := s.CountriesVisited(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, []string{"CountryX", "CountryY", "CountryZ"}, got)
}

func TestCountriesVisitedWindow(t *testing.T) {
	ctx := context.Background()
	s := storagetest.New(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for _, p := range []*models.Port{
		{ID: 1, Name: "Old", Country: "Oldland"},
		{ID: 2, Name: "Edge", Country: "Edgeland"},
		{ID: 3, Name: "Future", Country: "Futureland"},
	} {
		require.NoError(t, s.CreatePort(ctx, p))
	}

	require.NoError(t, s.CreateVoyage(ctx, voyage(1, 1, now.Add(-storage.CountryWindow-time.Second))))
	require.NoError(t, s.CreateVoyage(ctx, voyage(2, 2, now.Add(-storage.CountryWindow))))
	require.NoError(t, s.CreateVoyage(ctx, voyage(3, 3, now.Add(time.Hour))))

	got, err := s.CountriesVisited(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, []string{"Edgeland"}, got)
}

func TestCountriesVisitedEmpty(t *testing.T) {
	s := storagetest.New(t)

	got, err := s.CountriesVisited(context.Background(), time.Now())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	s := storagetest.NewSeeded(t)

	counts, err := s.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, &storage.Counts{Ships: 3, Ports: 5, Voyages: 2}, counts)

	seeded, err := s.Seed(ctx, storage.DefaultSampleData())
	require.NoError(t, err)
	assert.False(t, seeded)

	// New rows continue after the explicit ids.
	ship := &models.Ship{Name: "Harbour Tug", MaxSpeed: 12}
	require.NoError(t, s.CreateShip(ctx, ship))
	assert.Greater(t, ship.ID, uint(3))
}

func TestDashboard(t *testing.T) {
	s := storagetest.NewSeeded(t)
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	summary, err := s.Dashboard(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalShips)
	assert.Equal(t, 5, summary.TotalPorts)
	assert.Equal(t, 2, summary.TotalVoyages)
	assert.Equal(t, 0, summary.ShipSpeeds[0].Count)
	assert.Equal(t, 2, summary.ShipSpeeds[1].Count)
	assert.Equal(t, 1, summary.ShipSpeeds[2].Count)
	require.Len(t, summary.VoyagesByMonth, 1)
	assert.Equal(t, "2025-04", summary.VoyagesByMonth[0].Month)
	assert.Equal(t, 2, summary.VoyagesByMonth[0].Count)
	assert.Equal(t, []string{"Germany", "Netherlands", "Singapore", "USA"}, summary.CountriesVisited)
}

func TestPing(t *testing.T) {
	s := storagetest.New(t)
	assert.NoError(t, s.Ping(context.Background()))
	assert.Equal(t, "sqlite", s.Driver())
}
