package merchant

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jhoicas/evcharge-admin-api/internal/application/audit"
	"github.com/jhoicas/evcharge-admin-api/internal/application/dto"
	"github.com/jhoicas/evcharge-admin-api/internal/application/ports"
	"github.com/jhoicas/evcharge-admin-api/internal/domain"
	"github.com/jhoicas/evcharge-admin-api/internal/domain/entity"
	"github.com/jhoicas/evcharge-admin-api/internal/domain/partyid"
	"github.com/jhoicas/evcharge-admin-api/internal/domain/repository"
)

// Acciones sobre la cuenta del CPO.
const (
	ActionActivate   = "activate"
	ActionDeactivate = "deactivate"
)

// searchPlaceholder llega cuando el cliente no reemplazó el parámetro de ruta.
const searchPlaceholder = ":cpo_owner_name"

var (
	usernamePattern      = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	contactNumberPattern = regexp.MustCompile(`^(?:\+639|09)\d{9}$`)
	contactEmailPattern  = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,})+$`)
)

// duplicateStatus estado reportado por campo cuando otro CPO ya usa el valor.
var duplicateStatus = map[string]entity.ProcedureStatus{
	entity.CPOFieldUsername:      entity.StatusUsernameExists,
	entity.CPOFieldOwnerName:     entity.StatusCPOOwnerNameExists,
	entity.CPOFieldContactName:   entity.StatusContactNameExists,
	entity.CPOFieldContactNumber: entity.StatusContactNumberExists,
	entity.CPOFieldContactEmail:  entity.StatusContactEmailExists,
}

// Deps dependencias del caso de uso de merchants.
type Deps struct {
	TxRunner    TxRunner
	CPORepo     repository.CPORepository
	RFIDRepo    repository.RFIDRepository
	TopupRepo   repository.TopupRepository
	PartnerRepo repository.PartnerRepository
	Geocoder    ports.Geocoder
	Mailer      ports.Mailer
	Recorder    *audit.Recorder
}

// UseCase alta y mantenimiento de CPOs, tarjetas RFID, recargas y socios comerciales.
type UseCase struct {
	txRunner    TxRunner
	cpoRepo     repository.CPORepository
	rfidRepo    repository.RFIDRepository
	topupRepo   repository.TopupRepository
	partnerRepo repository.PartnerRepository
	partyIDs    *partyid.Generator
	geocoder    ports.Geocoder
	mailer      ports.Mailer
	audit       *audit.Recorder
	now         func() time.Time
	newPassword func() (string, error)
}

// NewUseCase construye el caso de uso.
func NewUseCase(d Deps) *UseCase {
	return &UseCase{
		txRunner:    d.TxRunner,
		cpoRepo:     d.CPORepo,
		rfidRepo:    d.RFIDRepo,
		topupRepo:   d.TopupRepo,
		partnerRepo: d.PartnerRepo,
		partyIDs:    partyid.NewGenerator(d.PartnerRepo),
		geocoder:    d.Geocoder,
		mailer:      d.Mailer,
		audit:       d.Recorder,
		now:         time.Now,
		newPassword: generateTempPassword,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// WithPasswordGenerator reemplaza el generador de contraseñas temporales (tests).
func (uc *UseCase) WithPasswordGenerator(gen func() (string, error)) *UseCase {
	uc.newPassword = gen
	return uc
}

// ────────────────────────────────────────────────────────────────────────────
// CPOs
// ────────────────────────────────────────────────────────────────────────────

// ListCPOs listado paginado de operadores.
func (uc *UseCase) ListCPOs(ctx context.Context, page dto.PageRequest) (*dto.CPOListResponse, error) {
	page.DefaultPage()
	items, err := uc.cpoRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.cpoRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	out := toCPOResponses(items)
	return &dto.CPOListResponse{
		CPOs:          out,
		TotalReturned: len(out),
		Total:         total,
		Limit:         page.Limit,
		Offset:        page.Offset,
	}, nil
}

// RegisterCPO da de alta el operador con una contraseña temporal y se la envía por correo.
// El correo sale solo si el almacén confirmó el alta.
func (uc *UseCase) RegisterCPO(ctx context.Context, adminID int64, in dto.RegisterCPORequest) (string, error) {
	entry := audit.Entry{
		AdminID: adminID,
		Success: "REGISTER Charging Point Operator",
		Failure: "ATTEMPT to REGISTER Charging Point Operator",
	}
	return audit.Run(ctx, uc.audit, entry, func(ctx context.Context) (string, error) {
		password, err := uc.newPassword()
		if err != nil {
			return "", err
		}
		hash, err := hashPassword(password)
		if err != nil {
			return "", err
		}

		st, err := uc.cpoRepo.Register(ctx, entity.NewCPO{
			PartyID:       strings.ToUpper(in.PartyID),
			CPOOwnerName:  in.CPOOwnerName,
			ContactName:   in.ContactName,
			ContactNumber: in.ContactNumber,
			ContactEmail:  in.ContactEmail,
			Username:      in.Username,
			PasswordHash:  hash,
		})
		if err != nil {
			return "", err
		}
		if !st.IsSuccess() {
			return "", domain.NewStatusErrorWithData("Bad Request", st.String())
		}

		if err := uc.mailer.SendCPOCredentials(ctx, in.ContactEmail, in.Username, password); err != nil {
			return "", fmt.Errorf("enviar credenciales: %w", err)
		}
		return st.String(), nil
	})
}

// CheckRegisterCPO valida el formato del valor y consulta al almacén si está disponible.
func (uc *UseCase) CheckRegisterCPO(ctx context.Context, field, value string) (string, error) {
	switch {
	case field == entity.CPOFieldUsername && !usernamePattern.MatchString(value):
		return "", domain.NewStatusErrorWithData(entity.StatusInvalidUsername.String(),
			"Username must only contains letters, numbers, and underscores")
	case field == entity.CPOFieldContactNumber && !contactNumberPattern.MatchString(value):
		return "", domain.NewStatusErrorWithData(entity.StatusInvalidContactNumber.String(),
			"Contact number must be a valid number. (E.g. +639112231123 or 09112231123)")
	case field == entity.CPOFieldContactEmail && !contactEmailPattern.MatchString(value):
		return "", domain.NewStatusErrorWithData(entity.StatusInvalidContactEmail.String(),
			"Contact email must be a valid email. (E.g. email@gmail.com)")
	}

	st, err := uc.cpoRepo.CheckRegister(ctx, field, value)
	if err != nil {
		return "", err
	}
	if !st.IsSuccess() {
		return "", domain.NewStatusError(st.String())
	}
	return st.String(), nil
}

// SearchCPOByName búsqueda por subcadena del nombre; sin nombre devuelve la primera página.
func (uc *UseCase) SearchCPOByName(ctx context.Context, name string) ([]dto.CPOResponse, error) {
	page := dto.PageRequest{}
	page.DefaultPage()

	var items []*entity.CPO
	var err error
	name = strings.TrimSpace(name)
	if name == "" || name == searchPlaceholder {
		items, err = uc.cpoRepo.List(ctx, page.Limit, page.Offset)
	} else {
		items, err = uc.cpoRepo.SearchByName(ctx, strings.ToLower(name), page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	return toCPOResponses(items), nil
}

// UpdateCPOByID actualiza los campos permitidos del CPO. Las verificaciones de duplicados y la
// escritura comparten transacción.
func (uc *UseCase) UpdateCPOByID(ctx context.Context, adminID, id int64, fields map[string]string) (string, error) {
	entry := audit.Entry{
		AdminID: adminID,
		Success: fmt.Sprintf("UPDATE Charging Point Operator with id of %d", id),
		Failure: "ATTEMPT to UPDATE Charging Point Operator",
	}
	return audit.RunWithOutcome(ctx, uc.audit, entry, func(ctx context.Context) (string, audit.Outcome, error) {
		for key := range fields {
			if _, ok := duplicateStatus[key]; !ok {
				return "", audit.Outcome{}, domain.NewStatusError(
					"Valid inputs are: " + strings.Join(entity.CPOUpdatableFields, ", "))
			}
		}
		if len(fields) == 0 {
			return entity.StatusNoChangesApplied.String(),
				audit.SuccessAs("ATTEMPT to UPDATE Charging Point Operator - No Changes Applied"), nil
		}

		err := uc.txRunner.RunCPOUpdate(ctx, func(cpoRepo repository.CPORepository) error {
			errs := map[string]string{}
			for _, field := range entity.CPOUpdatableFields {
				value, ok := fields[field]
				if !ok {
					continue
				}
				taken, err := cpoRepo.FieldTaken(ctx, field, value, id)
				if err != nil {
					return err
				}
				if taken {
					errs[field] = duplicateStatus[field].String()
				}
			}
			if len(errs) > 0 {
				return domain.NewStatusErrorWithData(entity.StatusInvalidRequest.String(), map[string]any{"errors": errs})
			}

			affected, err := cpoRepo.UpdateFields(ctx, id, fields)
			if err != nil {
				return err
			}
			if affected == 0 {
				return domain.NewStatusError(entity.StatusCPOIDDoesNotExists.String())
			}
			return nil
		})
		if err != nil {
			return "", audit.Outcome{}, err
		}
		return entity.StatusSuccess.String(), audit.Success(), nil
	})
}

// ChangeCPOAccountStatus activa o desactiva la cuenta de usuario del CPO.
// Sin filas afectadas devuelve NO_CHANGES_APPLIED y no audita.
func (uc *UseCase) ChangeCPOAccountStatus(ctx context.Context, adminID int64, action string, userID int64) (string, error) {
	var status, verb string
	switch action {
	case ActionActivate:
		status, verb = entity.UserStatusActive, "ACTIVATE"
	case ActionDeactivate:
		status, verb = entity.UserStatusInactive, "DEACTIVATE"
	}

	entry := audit.Entry{
		AdminID: adminID,
		Success: fmt.Sprintf("%s Charging Point Operator account with id of %d", verb, userID),
		Failure: "ATTEMPT to DEACTIVATE Charging Point Operator account",
	}
	return audit.RunWithOutcome(ctx, uc.audit, entry, func(ctx context.Context) (string, audit.Outcome, error) {
		if status == "" {
			return "", audit.Outcome{}, domain.NewStatusErrorWithData(entity.StatusInvalidAction.String(),
				map[string]string{"message": "Valid actions are: activate, and deactivate"})
		}
		affected, err := uc.cpoRepo.SetUserStatus(ctx, userID, status)
		if err != nil {
			return "", audit.Outcome{}, err
		}
		if affected == 0 {
			return entity.StatusNoChangesApplied.String(), audit.Skip(), nil
		}
		return entity.StatusSuccess.String(), audit.Success(), nil
	})
}

func toCPOResponses(items []*entity.CPO) []dto.CPOResponse {
	out := make([]dto.CPOResponse, 0, len(items))
	for _, c := range items {
		out = append(out, dto.CPOResponse{
			ID:            c.ID,
			UserID:        c.UserID,
			PartyID:       c.PartyID,
			CPOOwnerName:  c.CPOOwnerName,
			ContactName:   c.ContactName,
			ContactNumber: c.ContactNumber,
			ContactEmail:  c.ContactEmail,
			Username:      c.Username,
			UserStatus:    c.UserStatus,
			DateCreated:   c.CreatedAt,
		})
	}
	return out
}
