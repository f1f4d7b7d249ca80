package merchant

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/evcharge-admin-api/internal/application/audit"
	"github.com/jhoicas/evcharge-admin-api/internal/application/dto"
	"github.com/jhoicas/evcharge-admin-api/internal/domain"
	"github.com/jhoicas/evcharge-admin-api/internal/domain/entity"
)

// ────────────────────────────────────────────────────────────────────────────
// RFID
// ────────────────────────────────────────────────────────────────────────────

// AddRFID asigna una tarjeta al CPO mediante la función del almacén.
func (uc *UseCase) AddRFID(ctx context.Context, adminID, cpoOwnerID int64, tag string) (string, error) {
	entry := audit.Entry{
		AdminID: adminID,
		Success: fmt.Sprintf("ADD RFID to Charging Point Operator with id of %d", cpoOwnerID),
		Failure: "ATTEMPT to ADD RFID to Charging Point Operator",
	}
	return audit.Run(ctx, uc.audit, entry, func(ctx context.Context) (string, error) {
		st, err := uc.rfidRepo.Add(ctx, cpoOwnerID, tag)
		if err != nil {
			return "", err
		}
		if !st.IsSuccess() {
			return "", domain.NewStatusError(st.String())
		}
		return st.String(), nil
	})
}

// AddRFIDs inserta un lote de tarjetas físicas sin asignar. Si alguna etiqueta ya existe,
// en el almacén o repetida en el mismo lote, no se inserta ninguna.
func (uc *UseCase) AddRFIDs(ctx context.Context, cpoOwnerID int64, tags []string) (string, error) {
	if len(tags) == 0 {
		return "", domain.NewValidationError("rfids", "Please provide at least one RFID")
	}

	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		if _, dup := seen[tag]; dup {
			return "", rfidExists(tag)
		}
		seen[tag] = struct{}{}
	}

	existing, err := uc.rfidRepo.ExistingTags(ctx, tags)
	if err != nil {
		return "", err
	}
	if len(existing) > 0 {
		taken := make(map[string]struct{}, len(existing))
		for _, tag := range existing {
			taken[tag] = struct{}{}
		}
		for _, tag := range tags {
			if _, ok := taken[tag]; ok {
				return "", rfidExists(tag)
			}
		}
	}

	if err := uc.rfidRepo.BulkInsert(ctx, cpoOwnerID, tags); err != nil {
		return "", err
	}
	return entity.StatusSuccess.String(), nil
}

func rfidExists(tag string) error {
	return domain.NewStatusError(fmt.Sprintf("%s: %s", entity.StatusRFIDExists, tag))
}

// ────────────────────────────────────────────────────────────────────────────
// Recargas
// ────────────────────────────────────────────────────────────────────────────

// Topup acredita saldo al CPO. Un monto no positivo se rechaza sin tocar el almacén.
func (uc *UseCase) Topup(ctx context.Context, adminID, cpoOwnerID int64, amount decimal.Decimal) (*dto.TopupResponse, error) {
	entry := audit.Entry{
		AdminID: adminID,
		Success: fmt.Sprintf("TOPUP to CPO with id of %d", cpoOwnerID),
		Failure: fmt.Sprintf("ATTEMPT to TOPUP to CPO with id of %d", cpoOwnerID),
	}
	return audit.Run(ctx, uc.audit, entry, func(ctx context.Context) (*dto.TopupResponse, error) {
		if !amount.IsPositive() {
			return nil, domain.NewStatusError(entity.StatusInvalidAmount.String())
		}
		res, err := uc.topupRepo.Topup(ctx, cpoOwnerID, amount)
		if err != nil {
			return nil, err
		}
		if !res.Status.IsSuccess() {
			return nil, domain.NewStatusError(res.Status.String())
		}
		return &dto.TopupResponse{Status: res.Status.String(), NewBalance: res.CurrentBalance}, nil
	})
}

// GetTopups recargas del CPO que todavía pueden anularse.
func (uc *UseCase) GetTopups(ctx context.Context, cpoOwnerID int64) ([]dto.TopupLogResponse, error) {
	since := uc.now().Add(-entity.VoidWindow)
	items, err := uc.topupRepo.ListVoidable(ctx, cpoOwnerID, since)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopupLogResponse, 0, len(items))
	for _, t := range items {
		out = append(out, dto.TopupLogResponse{
			ID:              t.ID,
			CPOOwnerID:      t.CPOOwnerID,
			ReferenceNumber: t.ReferenceNumber,
			Amount:          t.Amount,
			Type:            t.Type,
			PaymentType:     t.PaymentType,
			DateCreated:     t.CreatedAt,
			VoidableUntil:   t.VoidableUntil(),
		})
	}
	return out, nil
}

// VoidTopup anula una recarga por su número de referencia.
func (uc *UseCase) VoidTopup(ctx context.Context, adminID int64, referenceID string) (*dto.VoidTopupResponse, error) {
	entry := audit.Entry{
		AdminID: adminID,
		Success: "VOID Topup with reference ID of " + referenceID,
		Failure: "ATTEMPT to VOID Topup",
	}
	return audit.Run(ctx, uc.audit, entry, func(ctx context.Context) (*dto.VoidTopupResponse, error) {
		res, err := uc.topupRepo.Void(ctx, referenceID)
		if err != nil {
			return nil, err
		}
		if !res.Status.IsSuccess() {
			return nil, domain.NewStatusError(res.Status.String())
		}
		return &dto.VoidTopupResponse{
			Status:          res.Status.String(),
			CurrentBalance:  res.CurrentBalance,
			ReferenceNumber: res.ReferenceNumber,
		}, nil
	})
}
