package partyid_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/evcharge-admin-api/internal/domain"
	"github.com/jhoicas/evcharge-admin-api/internal/domain/partyid"
)

type staticIDs struct {
	ids   []string
	err   error
	calls int
}

func (s *staticIDs) ListPartyIDs(context.Context) ([]string, error) {
	s.calls++
	return s.ids, s.err
}

// ──────────────────────────────────────────────────────────────────────────────
// Derive
// ──────────────────────────────────────────────────────────────────────────────

func TestDerive_SinExistentes(t *testing.T) {
	id, err := partyid.Derive("ABC Corp", nil)
	require.NoError(t, err)
	assert.Equal(t, "ABC", id)
}

func TestDerive_Deterministico(t *testing.T) {
	existing := []string{"ABC", "ABT"}
	first, err := partyid.Derive("ABC Traders", existing)
	require.NoError(t, err)
	assert.Equal(t, "ABR", first)

	for i := 0; i < 5; i++ {
		again, err := partyid.Derive("ABC Traders", existing)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestDerive_MinusculasYEspacios(t *testing.T) {
	id, err := partyid.Derive("  ne w  ", nil)
	require.NoError(t, err)
	assert.Equal(t, "NEW", id)
}

func TestDerive_ExistentesEnMinusculas_Colisionan(t *testing.T) {
	id, err := partyid.Derive("abc corp", []string{"abc"})
	require.NoError(t, err)
	assert.Equal(t, "ABO", id)
}

func TestDerive_SondeoAgotado_UsaDigito(t *testing.T) {
	id, err := partyid.Derive("ABC", []string{"ABC"})
	require.NoError(t, err)
	assert.Equal(t, "AB0", id)
}

func TestDerive_TodoOcupado_RetornaExhausted(t *testing.T) {
	existing := []string{"ABC"}
	for d := '0'; d <= '9'; d++ {
		existing = append(existing, "AB"+string(d))
	}
	_, err := partyid.Derive("ABC", existing)
	require.Error(t, err)
	assert.True(t, domain.IsStatus(err, "PARTY_ID_EXHAUSTED"))
}

func TestDerive_NombreCorto_ErrorDeValidacion(t *testing.T) {
	_, err := partyid.Derive(" A ", nil)
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "company_name")
}

// ──────────────────────────────────────────────────────────────────────────────
// Generator
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerator_ConsultaExistentesEnCadaLlamada(t *testing.T) {
	src := &staticIDs{ids: []string{"ABC"}}
	gen := partyid.NewGenerator(src)

	id, err := gen.Generate(context.Background(), "ABC Traders")
	require.NoError(t, err)
	assert.Equal(t, "ABT", id)

	_, err = gen.Generate(context.Background(), "ABC Traders")
	require.NoError(t, err)
	assert.Equal(t, 2, src.calls)
}

func TestGenerator_PropagaErrorDeFuente(t *testing.T) {
	boom := errors.New("db caída")
	gen := partyid.NewGenerator(&staticIDs{err: boom})

	_, err := gen.Generate(context.Background(), "ABC Traders")
	assert.ErrorIs(t, err, boom)
}
