package evse_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/evcharge-admin-api/internal/application/audit"
	"github.com/jhoicas/evcharge-admin-api/internal/application/audittest"
	"github.com/jhoicas/evcharge-admin-api/internal/application/dto"
	"github.com/jhoicas/evcharge-admin-api/internal/application/evse"
	"github.com/jhoicas/evcharge-admin-api/internal/application/reference"
	"github.com/jhoicas/evcharge-admin-api/internal/domain"
	"github.com/jhoicas/evcharge-admin-api/internal/domain/entity"
	"github.com/jhoicas/evcharge-admin-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes: almacén en memoria con semántica de transacción
// ──────────────────────────────────────────────────────────────────────────────

type store struct {
	evses        []*entity.EVSE
	connectors   []entity.Connector
	timeslots    []entity.Timeslot
	paymentTypes [][2]any
	capabilities [][2]any
}

// fakeEVSERepo escribe en un store (el confirmado o el de la tx en curso).
type fakeEVSERepo struct {
	s              *store
	registerStatus entity.ProcedureStatus
	registerErr    error
	capabilityErr  error
	bindStatus     entity.ProcedureStatus
	bindCalls      []string
}

func (r *fakeEVSERepo) Register(_ context.Context, e *entity.EVSE) (entity.ProcedureStatus, error) {
	if r.registerErr != nil {
		return "", r.registerErr
	}
	if r.registerStatus.IsSuccess() {
		r.s.evses = append(r.s.evses, e)
	}
	return r.registerStatus, nil
}

func (r *fakeEVSERepo) AddPaymentTypes(_ context.Context, uid string, ids []int64) error {
	for _, id := range ids {
		r.s.paymentTypes = append(r.s.paymentTypes, [2]any{uid, id})
	}
	return nil
}

func (r *fakeEVSERepo) AddCapabilities(_ context.Context, uid string, ids []int64) error {
	if r.capabilityErr != nil {
		return r.capabilityErr
	}
	for _, id := range ids {
		r.s.capabilities = append(r.s.capabilities, [2]any{id, uid})
	}
	return nil
}

func (r *fakeEVSERepo) Bind(_ context.Context, locationID int64, uid string) (entity.ProcedureStatus, error) {
	r.bindCalls = append(r.bindCalls, "bind")
	return r.bindStatus, nil
}

func (r *fakeEVSERepo) Unbind(_ context.Context, locationID int64, uid string) (entity.ProcedureStatus, error) {
	r.bindCalls = append(r.bindCalls, "unbind")
	return r.bindStatus, nil
}

func (r *fakeEVSERepo) List(_ context.Context, limit, offset int) ([]*entity.EVSE, error) {
	return r.s.evses, nil
}

func (r *fakeEVSERepo) Count(context.Context) (int64, error) { return int64(len(r.s.evses)), nil }

func (r *fakeEVSERepo) SearchBySerialNumber(_ context.Context, serial string, limit, offset int) ([]*entity.EVSE, error) {
	return nil, nil
}

type fakeConnectorRepo struct{ s *store }

func (r *fakeConnectorRepo) AddConnectors(_ context.Context, cs []entity.Connector) error {
	r.s.connectors = append(r.s.connectors, cs...)
	return nil
}

func (r *fakeConnectorRepo) AddTimeslots(_ context.Context, ts []entity.Timeslot) error {
	r.s.timeslots = append(r.s.timeslots, ts...)
	return nil
}

// fakeTxRunner da a fn repos sobre un store temporal y lo fusiona solo si fn devuelve nil.
type fakeTxRunner struct {
	committed *store
	template  *fakeEVSERepo
	commits   int
	rollbacks int
}

func (f *fakeTxRunner) RunEVSERegistration(ctx context.Context, fn func(repository.EVSERepository, repository.ConnectorRepository) error) error {
	pending := &store{}
	evseRepo := *f.template
	evseRepo.s = pending
	if err := fn(&evseRepo, &fakeConnectorRepo{s: pending}); err != nil {
		f.rollbacks++
		return err
	}
	f.committed.evses = append(f.committed.evses, pending.evses...)
	f.committed.connectors = append(f.committed.connectors, pending.connectors...)
	f.committed.timeslots = append(f.committed.timeslots, pending.timeslots...)
	f.committed.paymentTypes = append(f.committed.paymentTypes, pending.paymentTypes...)
	f.committed.capabilities = append(f.committed.capabilities, pending.capabilities...)
	f.commits++
	return nil
}

type noCache struct{}

func (noCache) Get(context.Context, string, any) (bool, error) { return false, nil }
func (noCache) Set(context.Context, string, any, time.Duration) error { return nil }

type harness struct {
	uc      *evse.UseCase
	store   *store
	tx      *fakeTxRunner
	repo    *fakeEVSERepo
	auditDB *audittest.Repo
}

func newHarness(status entity.ProcedureStatus) *harness {
	s := &store{}
	repo := &fakeEVSERepo{s: s, registerStatus: status, bindStatus: entity.StatusSuccess}
	tx := &fakeTxRunner{committed: s, template: repo}
	auditDB := &audittest.Repo{}
	uc := evse.NewUseCase(tx, repo, reference.NewCatalog(nil, noCache{}, 0), audit.NewRecorder(auditDB, nil)).
		WithUIDGenerator(func() string { return "evse-uid-1" })
	return &harness{uc: uc, store: s, tx: tx, repo: repo, auditDB: auditDB}
}

func connector() dto.ConnectorRequest {
	return dto.ConnectorRequest{
		Standard: "TYPE_2", Format: "SOCKET", PowerType: "AC",
		MaxVoltage: 230, MaxAmperage: 32, MaxElectricPower: 7400, RateSetting: 22,
	}
}

func registerRequest(kwh int, connectors int) dto.RegisterEVSERequest {
	req := dto.RegisterEVSERequest{
		Model: "M1", Vendor: "V1", SerialNumber: "SN-1", BoxSerialNumber: "BOX-1",
		FirmwareVersion: "1.0", ICCID: "ICCID", IMSI: "IMSI", MeterType: "AC", MeterSerialNumber: "MSN",
		KWH: kwh, PaymentTypes: []int64{1, 2}, Capabilities: []int64{3},
	}
	for i := 0; i < connectors; i++ {
		req.Connectors = append(req.Connectors, connector())
	}
	return req
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_DosConectoresKwh22_Commit(t *testing.T) {
	h := newHarness(entity.StatusSuccess)

	status, err := h.uc.Register(context.Background(), 1, registerRequest(22, 2))
	require.NoError(t, err)
	assert.Equal(t, "SUCCESS", status)

	require.Len(t, h.store.connectors, 2)
	assert.Equal(t, 1, h.store.connectors[0].ConnectorID)
	assert.Equal(t, 2, h.store.connectors[1].ConnectorID)
	assert.Equal(t, "AVAILABLE", h.store.connectors[0].Status)
	assert.Len(t, h.store.timeslots, 16)
	assert.Len(t, h.store.paymentTypes, 2)
	assert.Len(t, h.store.capabilities, 1)
	assert.Equal(t, 1, h.tx.commits)

	assert.Equal(t, []string{"REGISTER new EVSE/success"}, h.auditDB.Lines())
}

func TestRegister_CantidadDeFranjasPorKwh(t *testing.T) {
	cases := map[int]int{7: 3, 22: 8, 60: 8, 80: 8, 11: 0, 100: 0}
	for kwh, band := range cases {
		h := newHarness(entity.StatusSuccess)
		_, err := h.uc.Register(context.Background(), 1, registerRequest(kwh, 3))
		require.NoError(t, err, "kwh=%d no debe producir error", kwh)
		assert.Len(t, h.store.timeslots, 3*band, "kwh=%d", kwh)
	}
}

func TestRegister_DuplicateSerial_RollbackYUnaAuditoriaFallida(t *testing.T) {
	h := newHarness(entity.StatusDuplicateSerial)

	_, err := h.uc.Register(context.Background(), 1, registerRequest(22, 2))
	require.Error(t, err)
	assert.Equal(t, "DUPLICATE_SERIAL", err.Error())
	assert.True(t, domain.IsStatus(err, "DUPLICATE_SERIAL"))

	assert.Empty(t, h.store.evses)
	assert.Empty(t, h.store.connectors)
	assert.Empty(t, h.store.timeslots)
	assert.Empty(t, h.store.paymentTypes)
	assert.Empty(t, h.store.capabilities)
	assert.Equal(t, 1, h.tx.rollbacks)

	assert.Equal(t, []string{"ATTEMPT to REGISTER new EVSE/failed"}, h.auditDB.Lines())
}

func TestRegister_FalloAMitad_RollbackTotal(t *testing.T) {
	h := newHarness(entity.StatusSuccess)
	boom := errors.New("conexión perdida")
	h.repo.capabilityErr = boom

	_, err := h.uc.Register(context.Background(), 1, registerRequest(7, 1))
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, h.store.connectors)
	assert.Empty(t, h.store.timeslots)
	assert.Empty(t, h.store.paymentTypes)
	assert.Equal(t, []string{"ATTEMPT to REGISTER new EVSE/failed"}, h.auditDB.Lines())
}

func TestRegister_SinConectores_ErrorDeValidacionSinAuditoria(t *testing.T) {
	h := newHarness(entity.StatusSuccess)

	_, err := h.uc.Register(context.Background(), 1, registerRequest(22, 0))
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, 0, h.tx.commits+h.tx.rollbacks)
	assert.Empty(t, h.auditDB.Lines())
}

// ──────────────────────────────────────────────────────────────────────────────
// Bind / Unbind
// ──────────────────────────────────────────────────────────────────────────────

func TestBind_Exito_AuditaTexto(t *testing.T) {
	h := newHarness(entity.StatusSuccess)

	status, err := h.uc.Bind(context.Background(), 1, "bind", 10, "uid-9")
	require.NoError(t, err)
	assert.Equal(t, "SUCCESS", status)
	assert.Equal(t, []string{"BIND EVSE with ID of uid-9 to Location with ID of 10/success"}, h.auditDB.Lines())
}

func TestUnbind_EstadoNoExitoso_ErrorDeNegocio(t *testing.T) {
	h := newHarness(entity.StatusSuccess)
	h.repo.bindStatus = entity.StatusAlreadyUnbound

	_, err := h.uc.Bind(context.Background(), 1, "unbind", 10, "uid-9")
	assert.True(t, domain.IsStatus(err, "ALREADY_UNBINDED"))
	assert.Equal(t, []string{"unbind"}, h.repo.bindCalls)
	assert.Equal(t, []string{"ATTEMPT to UNBIND EVSE with ID of uid-9 from Location with ID of 10/failed"}, h.auditDB.Lines())
}

func TestBind_AccionInvalida(t *testing.T) {
	h := newHarness(entity.StatusSuccess)

	_, err := h.uc.Bind(context.Background(), 1, "attach", 10, "uid-9")
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Empty(t, h.repo.bindCalls)
}

// ──────────────────────────────────────────────────────────────────────────────
// List
// ──────────────────────────────────────────────────────────────────────────────

func TestList_ValoresPorDefecto(t *testing.T) {
	h := newHarness(entity.StatusSuccess)
	h.store.evses = []*entity.EVSE{{UID: "a"}, {UID: "b"}}

	out, err := h.uc.List(context.Background(), dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 10, out.Limit)
	assert.Equal(t, 0, out.Offset)
	assert.Equal(t, 2, out.TotalReturned)
	assert.Equal(t, int64(2), out.Total)
}
