package dto

import "time"

// RegisterLocationRequest cuerpo de POST /locations.
type RegisterLocationRequest struct {
	CPOOwnerID          *int64   `json:"cpo_owner_id" validate:"omitempty,gt=0"`
	Name                string   `json:"name" validate:"required"`
	Address             string   `json:"address" validate:"required"`
	Facilities          []int64  `json:"facilities" validate:"dive,gt=0"`
	ParkingTypes        []int64  `json:"parking_types" validate:"dive,gt=0"`
	ParkingRestrictions []int64  `json:"parking_restrictions" validate:"dive,gt=0"`
	Images              []string `json:"images"`
}

// RegisterLocationResponse resultado del registro cuando no fue exitoso por completo.
type RegisterLocationResponse struct {
	Status       string `json:"status"`
	LocationID   int64  `json:"location_id"`
	AffectedRows int64  `json:"affected_rows"`
}

// BindLocationParams parámetros de PATCH /locations/:action/:location_id/:cpo_owner_id.
type BindLocationParams struct {
	Action     string `params:"action" validate:"required,oneof=bind unbind"`
	LocationID int64  `params:"location_id" validate:"required,gt=0"`
	CPOOwnerID int64  `params:"cpo_owner_id" validate:"required,gt=0"`
}

// SearchLocationParams parámetros de GET /locations/search/:name/:limit/:offset.
type SearchLocationParams struct {
	Name   string `params:"name" validate:"required"`
	Limit  int    `params:"limit" validate:"min=0,max=500"`
	Offset int    `params:"offset" validate:"min=0"`
}

// LocationResponse ubicación en listados.
type LocationResponse struct {
	ID          int64     `json:"id"`
	CPOOwnerID  *int64    `json:"cpo_owner_id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	AddressLat  float64   `json:"address_lat"`
	AddressLng  float64   `json:"address_lng"`
	City        string    `json:"city"`
	Region      string    `json:"region"`
	PostalCode  string    `json:"postal_code"`
	Images      []string  `json:"images"`
	DateCreated time.Time `json:"date_created"`
}

// LocationListResponse respuesta de GET /locations.
type LocationListResponse struct {
	Locations     []LocationResponse `json:"locations"`
	TotalReturned int                `json:"total_returned_locations"`
	Total         int64              `json:"total_locations"`
	Limit         int                `json:"limit"`
	Offset        int                `json:"offset"`
}

// LocationDefaultsResponse vocabularios para el formulario de ubicación.
type LocationDefaultsResponse struct {
	Facilities          []ReferenceItemResponse `json:"facilities"`
	ParkingTypes        []ReferenceItemResponse `json:"parking_types"`
	ParkingRestrictions []ReferenceItemResponse `json:"parking_restrictions"`
}

// UploadedImage archivo de imagen recibido por POST /locations/upload.
type UploadedImage struct {
	Name    string
	Content []byte
}
