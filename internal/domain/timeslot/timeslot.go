// Package timeslot resuelve las bandas de franjas horarias por capacidad (kWh) de un EVSE.
package timeslot

import "github.com/jhoicas/evcharge-admin-api/internal/domain/entity"

// Band rango cerrado [First, Last] de setting_timeslot_id.
type Band struct {
	First int
	Last  int
}

// Size cantidad de franjas de la banda.
func (b Band) Size() int { return b.Last - b.First + 1 }

var bands = map[int]Band{
	7:  {First: 1, Last: 3},
	22: {First: 4, Last: 11},
	60: {First: 12, Last: 19},
	80: {First: 20, Last: 27},
}

// BandFor devuelve la banda de la capacidad; ok=false si la capacidad no es reconocida.
func BandFor(kwh int) (Band, bool) {
	b, ok := bands[kwh]
	return b, ok
}

// Build genera una franja por cada combinación conector x franja de la banda.
// Una capacidad no reconocida produce cero franjas sin error.
func Build(evseUID string, connectorCount, kwh int) []entity.Timeslot {
	band, ok := BandFor(kwh)
	if !ok || connectorCount <= 0 {
		return nil
	}
	out := make([]entity.Timeslot, 0, connectorCount*band.Size())
	for connectorID := 1; connectorID <= connectorCount; connectorID++ {
		for slot := band.First; slot <= band.Last; slot++ {
			out = append(out, entity.Timeslot{
				EVSEUID:           evseUID,
				ConnectorID:       connectorID,
				SettingTimeslotID: slot,
				Status:            entity.TimeslotStatusOnline,
			})
		}
	}
	return out
}
