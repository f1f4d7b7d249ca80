package entity

import "strings"

// AddressComponent componente tipado de una dirección geocodificada.
type AddressComponent struct {
	LongName  string
	ShortName string
	Types     []string
}

// GeocodedAddress respuesta normalizada de la pasarela de geocodificación (primer resultado).
type GeocodedAddress struct {
	Components       []AddressComponent
	FormattedAddress string
	Lat              float64
	Lng              float64
}

// Component devuelve el primer componente que contiene el tipo indicado.
func (g *GeocodedAddress) Component(kind string) (AddressComponent, bool) {
	for _, c := range g.Components {
		for _, t := range c.Types {
			if t == kind {
				return c, true
			}
		}
	}
	return AddressComponent{}, false
}

// City nombre largo del componente "locality".
func (g *GeocodedAddress) City() string {
	c, _ := g.Component("locality")
	return c.LongName
}

// Region abreviatura de "administrative_area_level_1": tres primeras letras en mayúsculas.
func (g *GeocodedAddress) Region() string {
	c, ok := g.Component("administrative_area_level_1")
	if !ok {
		return ""
	}
	r := []rune(strings.TrimSpace(c.ShortName))
	if len(r) > 3 {
		r = r[:3]
	}
	return strings.ToUpper(strings.TrimSpace(string(r)))
}

// PostalCode código postal si existe.
func (g *GeocodedAddress) PostalCode() string {
	c, _ := g.Component("postal_code")
	return c.LongName
}

// CountryCode nombre corto del componente "country" (ej. PH).
func (g *GeocodedAddress) CountryCode() string {
	c, _ := g.Component("country")
	return c.ShortName
}
