package entity

import "time"

// Etiquetas de tipo de estacionamiento.
const (
	ParkingTagOutdoor = "OUTDOOR"
	ParkingTagIndoor  = "INDOOR"
)

var outdoorParkingTypes = map[int64]struct{}{1: {}, 3: {}, 4: {}, 5: {}}

// ParkingTag clasifica un tipo de estacionamiento como OUTDOOR o INDOOR.
func ParkingTag(parkingTypeID int64) string {
	if _, ok := outdoorParkingTypes[parkingTypeID]; ok {
		return ParkingTagOutdoor
	}
	return ParkingTagIndoor
}

// Location ubicación física. CPOOwnerID nil = ubicación sin vincular.
type Location struct {
	ID         int64
	CPOOwnerID *int64
	Name       string
	Address    string
	Lat        float64
	Lng        float64
	City       string
	Region     string
	PostalCode string
	Images     []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ParkingTypeAssoc asociación ubicación-tipo de estacionamiento con su etiqueta.
type ParkingTypeAssoc struct {
	ParkingTypeID int64
	LocationID    int64
	Tag           string
}
