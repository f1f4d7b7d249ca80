package evse

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jhoicas/evcharge-admin-api/internal/application/audit"
	"github.com/jhoicas/evcharge-admin-api/internal/application/dto"
	"github.com/jhoicas/evcharge-admin-api/internal/application/reference"
	"github.com/jhoicas/evcharge-admin-api/internal/domain"
	"github.com/jhoicas/evcharge-admin-api/internal/domain/entity"
	"github.com/jhoicas/evcharge-admin-api/internal/domain/repository"
	"github.com/jhoicas/evcharge-admin-api/internal/domain/timeslot"
)

// Acciones de vinculación.
const (
	ActionBind   = "bind"
	ActionUnbind = "unbind"
)

// UseCase registro, vinculación y consultas de EVSE.
type UseCase struct {
	txRunner TxRunner
	evseRepo repository.EVSERepository
	catalog  *reference.Catalog
	audit    *audit.Recorder
	newUID   func() string
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	evseRepo repository.EVSERepository,
	catalog *reference.Catalog,
	recorder *audit.Recorder,
) *UseCase {
	return &UseCase{
		txRunner: txRunner,
		evseRepo: evseRepo,
		catalog:  catalog,
		audit:    recorder,
		newUID:   func() string { return uuid.New().String() },
	}
}

// WithUIDGenerator reemplaza el generador de identidades (tests).
func (uc *UseCase) WithUIDGenerator(gen func() string) *UseCase {
	uc.newUID = gen
	return uc
}

// Register crea el EVSE, sus conectores, franjas, tipos de pago y capacidades en una sola transacción.
// Un estado distinto de SUCCESS en la creación aborta sin escribir nada más.
func (uc *UseCase) Register(ctx context.Context, adminID int64, in dto.RegisterEVSERequest) (string, error) {
	if len(in.Connectors) == 0 {
		return "", domain.NewValidationError("connectors", "Please provide at least one connector")
	}

	entry := audit.Entry{
		AdminID: adminID,
		Success: "REGISTER new EVSE",
		Failure: "ATTEMPT to REGISTER new EVSE",
	}
	return audit.Run(ctx, uc.audit, entry, func(ctx context.Context) (string, error) {
		uid := uc.newUID()
		var status entity.ProcedureStatus

		err := uc.txRunner.RunEVSERegistration(ctx, func(evseRepo repository.EVSERepository, connectorRepo repository.ConnectorRepository) error {
			st, err := evseRepo.Register(ctx, &entity.EVSE{
				UID:               uid,
				Model:             in.Model,
				Vendor:            in.Vendor,
				SerialNumber:      in.SerialNumber,
				BoxSerialNumber:   in.BoxSerialNumber,
				FirmwareVersion:   in.FirmwareVersion,
				ICCID:             in.ICCID,
				IMSI:              in.IMSI,
				MeterType:         in.MeterType,
				MeterSerialNumber: in.MeterSerialNumber,
				LocationID:        in.LocationID,
			})
			if err != nil {
				return err
			}
			if !st.IsSuccess() {
				return domain.NewStatusError(st.String())
			}

			connectors := buildConnectors(uid, in.Connectors)
			if err := connectorRepo.AddConnectors(ctx, connectors); err != nil {
				return err
			}
			if slots := timeslot.Build(uid, len(connectors), in.KWH); len(slots) > 0 {
				if err := connectorRepo.AddTimeslots(ctx, slots); err != nil {
					return err
				}
			}
			if len(in.PaymentTypes) > 0 {
				if err := evseRepo.AddPaymentTypes(ctx, uid, in.PaymentTypes); err != nil {
					return err
				}
			}
			if len(in.Capabilities) > 0 {
				if err := evseRepo.AddCapabilities(ctx, uid, in.Capabilities); err != nil {
					return err
				}
			}
			status = st
			return nil
		})
		if err != nil {
			return "", err
		}
		return status.String(), nil
	})
}

func buildConnectors(uid string, in []dto.ConnectorRequest) []entity.Connector {
	out := make([]entity.Connector, 0, len(in))
	for i, c := range in {
		out = append(out, entity.Connector{
			EVSEUID:          uid,
			ConnectorID:      i + 1,
			Standard:         c.Standard,
			Format:           c.Format,
			PowerType:        c.PowerType,
			MaxVoltage:       c.MaxVoltage,
			MaxAmperage:      c.MaxAmperage,
			MaxElectricPower: c.MaxElectricPower,
			RateSetting:      c.RateSetting,
			Status:           entity.ConnectorStatusAvailable,
		})
	}
	return out
}

// Bind vincula o desvincula un EVSE de una ubicación según action.
func (uc *UseCase) Bind(ctx context.Context, adminID int64, action string, locationID int64, evseUID string) (string, error) {
	var success string
	var call func(context.Context, int64, string) (entity.ProcedureStatus, error)
	switch action {
	case ActionBind:
		success = fmt.Sprintf("BIND EVSE with ID of %s to Location with ID of %d", evseUID, locationID)
		call = uc.evseRepo.Bind
	case ActionUnbind:
		success = fmt.Sprintf("UNBIND EVSE with ID of %s from Location with ID of %d", evseUID, locationID)
		call = uc.evseRepo.Unbind
	default:
		return "", domain.NewValidationError("action", "Invalid action. Valid actions are: [bind, unbind]")
	}

	entry := audit.Entry{AdminID: adminID, Success: success, Failure: "ATTEMPT to " + success}
	return audit.Run(ctx, uc.audit, entry, func(ctx context.Context) (string, error) {
		st, err := call(ctx, locationID, evseUID)
		if err != nil {
			return "", err
		}
		if !st.IsSuccess() {
			return "", domain.NewStatusError(st.String())
		}
		return st.String(), nil
	})
}

// List listado paginado, primero los EVSE vinculados.
func (uc *UseCase) List(ctx context.Context, page dto.PageRequest) (*dto.EVSEListResponse, error) {
	page.DefaultPage()
	items, err := uc.evseRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.evseRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	out := toEVSEResponses(items)
	return &dto.EVSEListResponse{
		EVSEs:         out,
		TotalReturned: len(out),
		Total:         total,
		Limit:         page.Limit,
		Offset:        page.Offset,
	}, nil
}

// SearchBySerialNumber búsqueda por subcadena del número de serie, sin distinguir mayúsculas.
func (uc *UseCase) SearchBySerialNumber(ctx context.Context, serialNumber string, page dto.PageRequest) ([]dto.EVSEResponse, error) {
	page.DefaultPage()
	items, err := uc.evseRepo.SearchBySerialNumber(ctx, strings.ToLower(strings.TrimSpace(serialNumber)), page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toEVSEResponses(items), nil
}

// Defaults vocabularios del formulario de EVSE.
func (uc *UseCase) Defaults(ctx context.Context) (*dto.EVSEDefaultsResponse, error) {
	return uc.catalog.EVSEDefaults(ctx)
}

func toEVSEResponses(items []*entity.EVSE) []dto.EVSEResponse {
	out := make([]dto.EVSEResponse, 0, len(items))
	for _, e := range items {
		out = append(out, dto.EVSEResponse{
			UID:               e.UID,
			EVSECode:          e.EVSECode,
			EVSEID:            e.EVSEID,
			Model:             e.Model,
			Vendor:            e.Vendor,
			SerialNumber:      e.SerialNumber,
			BoxSerialNumber:   e.BoxSerialNumber,
			FirmwareVersion:   e.FirmwareVersion,
			ICCID:             e.ICCID,
			IMSI:              e.IMSI,
			MeterSerialNumber: e.MeterSerialNumber,
			Status:            e.Status,
			CPOLocationID:     e.LocationID,
			DateCreated:       e.CreatedAt,
		})
	}
	return out
}
