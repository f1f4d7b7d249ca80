// Package partyid deriva el party id de un socio comercial a partir de su nombre.
package partyid

import (
	"context"
	"strconv"
	"strings"
	"unicode"

	"github.com/jhoicas/evcharge-admin-api/internal/domain"
	"github.com/jhoicas/evcharge-admin-api/internal/domain/entity"
)

// ExistingIDs fuente de los party ids ya emitidos.
type ExistingIDs interface {
	ListPartyIDs(ctx context.Context) ([]string, error)
}

// Generator emite party ids sin colisión consultando los ids existentes en cada llamada.
type Generator struct {
	existing ExistingIDs
}

// NewGenerator construye el generador.
func NewGenerator(existing ExistingIDs) *Generator {
	return &Generator{existing: existing}
}

// Generate devuelve el primer party id libre para companyName.
func (g *Generator) Generate(ctx context.Context, companyName string) (string, error) {
	ids, err := g.existing.ListPartyIDs(ctx)
	if err != nil {
		return "", err
	}
	return Derive(companyName, ids)
}

// Derive es la parte pura del algoritmo: semilla de dos caracteres más un carácter de sondeo.
// Se prueba cada carácter restante del nombre y luego los dígitos 0-9; si todos colisionan
// devuelve PARTY_ID_EXHAUSTED.
func Derive(companyName string, existing []string) (string, error) {
	name := normalize(companyName)
	if len([]rune(name)) < 2 {
		return "", domain.NewValidationError("company_name", "debe tener al menos dos caracteres no vacíos")
	}

	taken := make(map[string]struct{}, len(existing))
	for _, id := range existing {
		taken[strings.ToUpper(id)] = struct{}{}
	}

	runes := []rune(name)
	seed := string(runes[:2])
	for _, r := range runes[2:] {
		candidate := seed + string(r)
		if _, ok := taken[candidate]; !ok {
			return candidate, nil
		}
	}
	for d := 0; d <= 9; d++ {
		candidate := seed + strconv.Itoa(d)
		if _, ok := taken[candidate]; !ok {
			return candidate, nil
		}
	}
	return "", domain.NewStatusError(string(entity.StatusPartyIDExhausted))
}

func normalize(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
