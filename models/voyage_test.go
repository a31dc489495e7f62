package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestVoyageNormalize(t *testing.T) {
	cet := time.FixedZone("CET", 2*60*60)
	v := Voyage{
		VoyageDate:    datatypes.Date(time.Date(2025, 4, 15, 13, 45, 0, 0, cet)),
		VoyageStart:   time.Date(2025, 4, 15, 8, 0, 0, 0, cet),
		VoyageEnd:     time.Date(2025, 4, 18, 16, 0, 0, 0, cet),
		DeparturePort: &Port{ID: 1},
		ArrivalPort:   &Port{ID: 2},
	}

	v.Normalize()

	assert.Equal(t, time.UTC, v.VoyageStart.Location())
	assert.Equal(t, time.Date(2025, 4, 15, 6, 0, 0, 0, time.UTC), v.VoyageStart)
	assert.Equal(t, time.Date(2025, 4, 18, 14, 0, 0, 0, time.UTC), v.VoyageEnd)
	assert.Equal(t, time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC), v.Date())
	assert.Nil(t, v.DeparturePort)
	assert.Nil(t, v.ArrivalPort)
}

func TestTrimPort(t *testing.T) {
	p := Port{Name: "  Port of Hamburg ", Country: "\tGermany\n"}
	TrimPort(&p)
	assert.Equal(t, "Port of Hamburg", p.Name)
	assert.Equal(t, "Germany", p.Country)
}

func TestVoyageUnmarshalDate(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		want    time.Time
		wantErr bool
	}{
		{"plain date", `"2025-05-10"`, time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC), false},
		{"utc timestamp", `"2025-05-10T00:00:00Z"`, time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC), false},
		{"offset timestamp", `"2025-05-10T22:30:00-02:00"`, time.Date(2025, 5, 11, 0, 30, 0, 0, time.UTC), false},
		{"null", `null`, time.Time{}, false},
		{"day first", `"10.05.2025"`, time.Time{}, true},
		{"number", `20250510`, time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Voyage
			err := json.Unmarshal([]byte(`{"id":9,"voyageDate":`+tt.date+`,"departurePortId":101,"arrivalPortId":103}`), &v)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uint(9), v.ID)
			assert.Equal(t, uint(101), v.DeparturePortID)
			assert.Equal(t, uint(103), v.ArrivalPortID)
			assert.True(t, tt.want.Equal(v.Date()), "got %v", v.Date())
		})
	}
}

func TestVoyageUnmarshalKeepsPorts(t *testing.T) {
	var v Voyage
	require.NoError(t, json.Unmarshal([]byte(`{"voyageDate":"2025-04-15","departurePort":{"id":101,"name":"Port of Rotterdam","country":"Netherlands"}}`), &v))
	require.NotNil(t, v.DeparturePort)
	assert.Equal(t, "Netherlands", v.DeparturePort.Country)
}
