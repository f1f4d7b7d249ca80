package timeslot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/evcharge-admin-api/internal/domain/timeslot"
)

func TestBuild_CantidadPorBanda(t *testing.T) {
	cases := []struct {
		kwh      int
		bandSize int
	}{
		{7, 3}, {22, 8}, {60, 8}, {80, 8},
	}
	for _, tc := range cases {
		for connectors := 1; connectors <= 3; connectors++ {
			slots := timeslot.Build("uid", connectors, tc.kwh)
			assert.Len(t, slots, connectors*tc.bandSize, "kwh=%d conectores=%d", tc.kwh, connectors)
		}
	}
}

func TestBuild_KwhNoReconocido_SinFranjas(t *testing.T) {
	for _, kwh := range []int{0, 11, 50, 150} {
		assert.Empty(t, timeslot.Build("uid", 2, kwh), "kwh=%d", kwh)
	}
}

func TestBuild_Kwh22_RangoYConectores(t *testing.T) {
	slots := timeslot.Build("evse-1", 2, 22)
	assert.Len(t, slots, 16)
	assert.Equal(t, 1, slots[0].ConnectorID)
	assert.Equal(t, 4, slots[0].SettingTimeslotID)
	assert.Equal(t, 11, slots[7].SettingTimeslotID)
	assert.Equal(t, 2, slots[8].ConnectorID)
	for _, s := range slots {
		assert.Equal(t, "evse-1", s.EVSEUID)
		assert.Equal(t, "ONLINE", s.Status)
	}
}

func TestBandFor(t *testing.T) {
	b, ok := timeslot.BandFor(7)
	assert.True(t, ok)
	assert.Equal(t, timeslot.Band{First: 1, Last: 3}, b)

	_, ok = timeslot.BandFor(43)
	assert.False(t, ok)
}
