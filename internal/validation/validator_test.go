package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"evalgo.org/maritime/models"
)

func TestNew(t *testing.T) {
	v := New()
	assert.NotNil(t, v)
	assert.NotNil(t, v.structValidator)
}

func TestValidateShip(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		ship      models.Ship
		wantValid bool
		wantField string
	}{
		{"valid", models.Ship{Name: "Ocean Voyager", MaxSpeed: 25}, true, ""},
		{"zero speed", models.Ship{Name: "Anchor", MaxSpeed: 0}, true, ""},
		{"upper bound", models.Ship{Name: "Rocket", MaxSpeed: 1000}, true, ""},
		{"missing name", models.Ship{MaxSpeed: 10}, false, "name"},
		{"long name", models.Ship{Name: strings.Repeat("a", 101), MaxSpeed: 10}, false, "name"},
		{"negative speed", models.Ship{Name: "Reverse", MaxSpeed: -1}, false, "maxSpeed"},
		{"too fast", models.Ship{Name: "Warp", MaxSpeed: 1000.5}, false, "maxSpeed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := v.ValidateShip(&tt.ship)
			assert.Equal(t, tt.wantValid, result.Valid)
			if tt.wantField != "" {
				assert.Contains(t, result.Fields(), tt.wantField)
			} else {
				assert.Empty(t, result.Errors)
			}
		})
	}
}

func TestValidatePort(t *testing.T) {
	v := New()

	result := v.ValidatePort(&models.Port{Name: "Port of Hamburg", Country: "Germany"})
	assert.True(t, result.Valid)

	result = v.ValidatePort(&models.Port{})
	assert.False(t, result.Valid)
	fields := result.Fields()
	assert.Equal(t, "name is required", fields["name"])
	assert.Equal(t, "country is required", fields["country"])

	result = v.ValidatePort(&models.Port{Name: "x", Country: strings.Repeat("c", 101)})
	assert.False(t, result.Valid)
	assert.Equal(t, "country must be at most 100 characters", result.Fields()["country"])
}

func TestValidateVoyage(t *testing.T) {
	v := New()
	start := time.Date(2025, 4, 15, 8, 0, 0, 0, time.UTC)

	valid := models.Voyage{
		VoyageDate:      datatypes.Date(start),
		DeparturePortID: 101,
		ArrivalPortID:   103,
		VoyageStart:     start,
		VoyageEnd:       start.Add(80 * time.Hour),
	}
	assert.True(t, v.ValidateVoyage(&valid).Valid)

	// End before start is accepted.
	backwards := valid
	backwards.VoyageEnd = start.Add(-time.Hour)
	assert.True(t, v.ValidateVoyage(&backwards).Valid)

	result := v.ValidateVoyage(&models.Voyage{})
	assert.False(t, result.Valid)
	fields := result.Fields()
	for _, f := range []string{"departurePortId", "arrivalPortId", "voyageDate", "voyageStart", "voyageEnd"} {
		assert.Contains(t, fields, f)
	}
}

func TestValidateDocument(t *testing.T) {
	v := New()

	result, err := v.ValidateDocument("ship", []byte(`{"name":"  Sea Serpent ","maxSpeed":18}`))
	require.NoError(t, err)
	assert.True(t, result.Valid)

	result, err = v.ValidateDocument("Port", []byte(`{"name":"   ","country":"Germany"}`))
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Fields(), "name")

	result, err = v.ValidateDocument("voyage", []byte(`{"voyageDate":"2025-04-15T00:00:00Z","departurePortId":1,"arrivalPortId":2,"voyageStart":"2025-04-15T08:00:00Z","voyageEnd":"2025-04-18T16:00:00+02:00"}`))
	require.NoError(t, err)
	assert.True(t, result.Valid, result.Error())

	result, err = v.ValidateDocument("voyage", []byte(`{"voyageDate":"2025-04-15","departurePortId":1,"arrivalPortId":2,"voyageStart":"2025-04-15T08:00:00Z","voyageEnd":"2025-04-18T08:00:00Z"}`))
	require.NoError(t, err)
	assert.True(t, result.Valid, result.Error())

	result, err = v.ValidateDocument("voyage", []byte(`{"voyageDate":"15/04/2025"}`))
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, "document", result.Errors[0].Field)

	result, err = v.ValidateDocument("ship", []byte(`{not json`))
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, "document", result.Errors[0].Field)

	_, err = v.ValidateDocument("submarine", []byte(`{}`))
	assert.ErrorIs(t, err, ErrUnknownKind)
}
