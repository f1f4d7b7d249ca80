package location_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/evcharge-admin-api/internal/application/audit"
	"github.com/jhoicas/evcharge-admin-api/internal/application/audittest"
	"github.com/jhoicas/evcharge-admin-api/internal/application/dto"
	"github.com/jhoicas/evcharge-admin-api/internal/application/location"
	"github.com/jhoicas/evcharge-admin-api/internal/domain"
	"github.com/jhoicas/evcharge-admin-api/internal/domain/entity"
	"github.com/jhoicas/evcharge-admin-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeGeocoder struct {
	result *entity.GeocodedAddress
	err    error
	calls  int
}

func (g *fakeGeocoder) Geocode(context.Context, string) (*entity.GeocodedAddress, error) {
	g.calls++
	return g.result, g.err
}

type fakeLocationRepo struct {
	locations       []*entity.Location
	facilities      int
	parkingTypes    []entity.ParkingTypeAssoc
	restrictions    int
	restrictionRows int64
	parkingErr      error
	bindStatus      entity.ProcedureStatus
	bindArgs        [][2]int64
}

func (r *fakeLocationRepo) Create(_ context.Context, l *entity.Location) (int64, error) {
	r.locations = append(r.locations, l)
	return int64(len(r.locations)), nil
}

func (r *fakeLocationRepo) AddFacilities(_ context.Context, _ int64, ids []int64) (int64, error) {
	r.facilities += len(ids)
	return int64(len(ids)), nil
}

func (r *fakeLocationRepo) AddParkingTypes(_ context.Context, a []entity.ParkingTypeAssoc) (int64, error) {
	if r.parkingErr != nil {
		return 0, r.parkingErr
	}
	r.parkingTypes = append(r.parkingTypes, a...)
	return int64(len(a)), nil
}

func (r *fakeLocationRepo) AddParkingRestrictions(_ context.Context, _ int64, ids []int64) (int64, error) {
	r.restrictions += len(ids)
	return r.restrictionRows, nil
}

func (r *fakeLocationRepo) Bind(_ context.Context, cpo, loc int64) (entity.ProcedureStatus, error) {
	r.bindArgs = append(r.bindArgs, [2]int64{cpo, loc})
	return r.bindStatus, nil
}

func (r *fakeLocationRepo) Unbind(ctx context.Context, cpo, loc int64) (entity.ProcedureStatus, error) {
	return r.Bind(ctx, cpo, loc)
}

func (r *fakeLocationRepo) List(context.Context, int, int) ([]*entity.Location, error) {
	return r.locations, nil
}
func (r *fakeLocationRepo) Count(context.Context) (int64, error) { return int64(len(r.locations)), nil }
func (r *fakeLocationRepo) ListUnbound(context.Context) ([]*entity.Location, error) {
	return nil, nil
}
func (r *fakeLocationRepo) ListForCPO(context.Context, int64) ([]*entity.Location, error) {
	return nil, nil
}
func (r *fakeLocationRepo) SearchByName(context.Context, string, int, int) ([]*entity.Location, error) {
	return nil, nil
}

// fakeTxRunner aplica fn sobre el repo compartido; en error descarta lo escrito.
type fakeTxRunner struct {
	repo      *fakeLocationRepo
	rollbacks int
}

func (f *fakeTxRunner) RunLocationRegistration(ctx context.Context, fn func(repository.LocationRepository) error) error {
	snapshot := *f.repo
	if err := fn(f.repo); err != nil {
		*f.repo = snapshot
		f.rollbacks++
		return err
	}
	return nil
}

type memImages struct{ saved []string }

func (m *memImages) Save(_ context.Context, name string, _ []byte) (string, error) {
	m.saved = append(m.saved, name)
	return "stored-" + name, nil
}

func cabuyao() *entity.GeocodedAddress {
	return &entity.GeocodedAddress{
		Components: []entity.AddressComponent{
			{LongName: "Cabuyao", ShortName: "Cabuyao", Types: []string{"locality", "political"}},
			{LongName: "Laguna", ShortName: "laguna", Types: []string{"administrative_area_level_2"}},
			{LongName: "Calabarzon", ShortName: "Calabarzon", Types: []string{"administrative_area_level_1"}},
			{LongName: "4025", ShortName: "4025", Types: []string{"postal_code"}},
			{LongName: "Philippines", ShortName: "PH", Types: []string{"country"}},
		},
		FormattedAddress: "Cabuyao, Laguna, Philippines",
		Lat:              14.27,
		Lng:              121.12,
	}
}

type harness struct {
	uc      *location.UseCase
	repo    *fakeLocationRepo
	geo     *fakeGeocoder
	tx      *fakeTxRunner
	images  *memImages
	auditDB *audittest.Repo
}

func newHarness(geo *entity.GeocodedAddress) *harness {
	repo := &fakeLocationRepo{restrictionRows: 1, bindStatus: entity.StatusSuccess}
	g := &fakeGeocoder{result: geo}
	tx := &fakeTxRunner{repo: repo}
	images := &memImages{}
	auditDB := &audittest.Repo{}
	uc := location.NewUseCase(tx, repo, g, images, nil, audit.NewRecorder(auditDB, nil), 5)
	return &harness{uc: uc, repo: repo, geo: g, tx: tx, images: images, auditDB: auditDB}
}

func request() dto.RegisterLocationRequest {
	return dto.RegisterLocationRequest{
		Name:                "SM Cabuyao",
		Address:             "Cabuyao, Laguna",
		Facilities:          []int64{1, 2},
		ParkingTypes:        []int64{1, 2, 3, 4, 5, 6},
		ParkingRestrictions: []int64{1},
		Images:              []string{"a.png"},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_Exito_CamposEnriquecidos(t *testing.T) {
	h := newHarness(cabuyao())

	out, err := h.uc.Register(context.Background(), 1, request())
	require.NoError(t, err)
	assert.Equal(t, "SUCCESS", out.Status)

	require.Len(t, h.repo.locations, 1)
	loc := h.repo.locations[0]
	assert.Equal(t, "Cabuyao", loc.City)
	assert.Equal(t, "CAL", loc.Region)
	assert.Equal(t, "4025", loc.PostalCode)
	assert.Equal(t, "Cabuyao, Laguna, Philippines", loc.Address)
	assert.InDelta(t, 14.27, loc.Lat, 1e-9)
	assert.Equal(t, 2, h.repo.facilities)
	assert.Equal(t, []string{"ADD new location/success"}, h.auditDB.Lines())
}

func TestRegister_EtiquetasDeEstacionamiento(t *testing.T) {
	h := newHarness(cabuyao())

	_, err := h.uc.Register(context.Background(), 1, request())
	require.NoError(t, err)

	tags := map[int64]string{}
	for _, a := range h.repo.parkingTypes {
		tags[a.ParkingTypeID] = a.Tag
	}
	assert.Equal(t, map[int64]string{
		1: "OUTDOOR", 2: "INDOOR", 3: "OUTDOOR", 4: "OUTDOOR", 5: "OUTDOOR", 6: "INDOOR",
	}, tags)
}

func TestRegister_SinComponentes_LocationNotFound(t *testing.T) {
	h := newHarness(&entity.GeocodedAddress{})

	_, err := h.uc.Register(context.Background(), 1, request())
	require.Error(t, err)
	assert.True(t, domain.IsStatus(err, "LOCATION_NOT_FOUND"))
	assert.Empty(t, h.repo.locations)
	assert.Equal(t, 0, h.repo.facilities)
	assert.Equal(t, []string{"ATTEMPT to ADD new location/failed"}, h.auditDB.Lines())
}

func TestRegister_ErrorDeGeocodificacion_SePropaga(t *testing.T) {
	h := newHarness(nil)
	boom := errors.New("timeout")
	h.geo.err = boom

	_, err := h.uc.Register(context.Background(), 1, request())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"ATTEMPT to ADD new location/failed"}, h.auditDB.Lines())
}

func TestRegister_FalloIntermedio_RollbackSinFilasParciales(t *testing.T) {
	h := newHarness(cabuyao())
	h.repo.parkingErr = errors.New("fk violation")

	_, err := h.uc.Register(context.Background(), 1, request())
	require.Error(t, err)
	assert.Equal(t, 1, h.tx.rollbacks)
	assert.Empty(t, h.repo.locations)
	assert.Equal(t, 0, h.repo.facilities)
	assert.Equal(t, []string{"ATTEMPT to ADD new location/failed"}, h.auditDB.Lines())
}

func TestRegister_RestriccionesSinFilas_AuditaFalloYDevuelveResultado(t *testing.T) {
	h := newHarness(cabuyao())
	h.repo.restrictionRows = 0

	out, err := h.uc.Register(context.Background(), 1, request())
	require.NoError(t, err)
	assert.Equal(t, "PARKING_RESTRICTIONS_NOT_ADDED", out.Status)
	assert.Equal(t, int64(1), out.LocationID)
	assert.Equal(t, int64(0), out.AffectedRows)
	assert.Equal(t, []string{"ATTEMPT to ADD new location/failed"}, h.auditDB.Lines())
}

func TestRegister_RegionVaciaSinComponente(t *testing.T) {
	geo := cabuyao()
	geo.Components = geo.Components[:1]
	h := newHarness(geo)

	_, err := h.uc.Register(context.Background(), 1, request())
	require.NoError(t, err)
	assert.Equal(t, "", h.repo.locations[0].Region)
	assert.Equal(t, "", h.repo.locations[0].PostalCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Bind / Upload
// ──────────────────────────────────────────────────────────────────────────────

func TestBind_ArgumentosYAuditoria(t *testing.T) {
	h := newHarness(cabuyao())

	status, err := h.uc.Bind(context.Background(), 1, "bind", 20, 5)
	require.NoError(t, err)
	assert.Equal(t, "SUCCESS", status)
	assert.Equal(t, [][2]int64{{5, 20}}, h.repo.bindArgs)
	require.Len(t, h.auditDB.Entries, 1)
	assert.Equal(t, "BIND location to CPO with ID of 5", h.auditDB.Entries[0].Action)
	require.NotNil(t, h.auditDB.Entries[0].CPOID)
	assert.Equal(t, int64(5), *h.auditDB.Entries[0].CPOID)
}

func TestUnbind_Fallido(t *testing.T) {
	h := newHarness(cabuyao())
	h.repo.bindStatus = entity.StatusAlreadyUnbound

	_, err := h.uc.Bind(context.Background(), 1, "unbind", 20, 5)
	assert.True(t, domain.IsStatus(err, "ALREADY_UNBINDED"))
	assert.Equal(t, []string{"ATTEMPT to UNBIND location from CPO with ID of 5/failed"}, h.auditDB.Lines())
}

func TestUploadImages_Validaciones(t *testing.T) {
	h := newHarness(cabuyao())

	names, err := h.uc.UploadImages(context.Background(), []dto.UploadedImage{{Name: "a.PNG"}, {Name: "b.jpeg"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"stored-a.PNG", "stored-b.jpeg"}, names)

	_, err = h.uc.UploadImages(context.Background(), []dto.UploadedImage{{Name: "a.gif"}})
	var ve *domain.ValidationError
	assert.ErrorAs(t, err, &ve)

	six := make([]dto.UploadedImage, 6)
	for i := range six {
		six[i] = dto.UploadedImage{Name: "x.png"}
	}
	_, err = h.uc.UploadImages(context.Background(), six)
	assert.ErrorAs(t, err, &ve)
}
