package merchant

import (
	"context"

	"github.com/jhoicas/evcharge-admin-api/internal/application/audit"
	"github.com/jhoicas/evcharge-admin-api/internal/application/dto"
	"github.com/jhoicas/evcharge-admin-api/internal/domain"
	"github.com/jhoicas/evcharge-admin-api/internal/domain/entity"
)

// ListCompanyPartnerDetails socios comerciales registrados.
func (uc *UseCase) ListCompanyPartnerDetails(ctx context.Context) ([]dto.CompanyPartnerResponse, error) {
	items, err := uc.partnerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CompanyPartnerResponse, 0, len(items))
	for _, p := range items {
		out = append(out, dto.CompanyPartnerResponse{
			ID:          p.ID,
			CompanyName: p.CompanyName,
			PartyID:     p.PartyID,
			CountryCode: p.CountryCode,
			Status:      p.Status,
			DateCreated: p.CreatedAt,
		})
	}
	return out, nil
}

// RegisterCompanyPartnerDetails geocodifica la dirección para obtener el país, genera el party id
// a partir del nombre y registra al socio.
func (uc *UseCase) RegisterCompanyPartnerDetails(ctx context.Context, adminID int64, in dto.CompanyPartnerRequest) (*dto.RegisterPartnerResponse, error) {
	entry := audit.Entry{
		AdminID: adminID,
		Success: "CREATED Company Partner Details",
		Failure: "ATTEMPT to create partner details",
	}
	return audit.RunWithOutcome(ctx, uc.audit, entry, func(ctx context.Context) (*dto.RegisterPartnerResponse, audit.Outcome, error) {
		countryCode, err := uc.countryOf(ctx, in.Address)
		if err != nil {
			return nil, audit.Outcome{}, err
		}
		partyID, err := uc.partyIDs.Generate(ctx, in.CompanyName)
		if err != nil {
			return nil, audit.Outcome{}, err
		}
		id, err := uc.partnerRepo.Create(ctx, &entity.CompanyPartnerDetails{
			CompanyName: in.CompanyName,
			PartyID:     partyID,
			CountryCode: countryCode,
		})
		if err != nil {
			return nil, audit.Outcome{}, err
		}
		if id == 0 {
			return &dto.RegisterPartnerResponse{Message: entity.StatusNoChangesApplied.String()}, audit.Failed(), nil
		}
		return &dto.RegisterPartnerResponse{PartyID: partyID, Message: entity.StatusSuccess.String()}, audit.Success(), nil
	})
}

// UpdateCompanyPartnerDetails vuelve a geocodificar la dirección y actualiza el código de país.
func (uc *UseCase) UpdateCompanyPartnerDetails(ctx context.Context, adminID, id int64, address string) (string, error) {
	entry := audit.Entry{
		AdminID: adminID,
		Success: "UPDATE Company Partner Details",
		Failure: "ATTEMPT to update company partner details",
	}
	return audit.RunWithOutcome(ctx, uc.audit, entry, func(ctx context.Context) (string, audit.Outcome, error) {
		countryCode, err := uc.countryOf(ctx, address)
		if err != nil {
			return "", audit.Outcome{}, err
		}
		affected, err := uc.partnerRepo.UpdateCountryCode(ctx, id, countryCode)
		if err != nil {
			return "", audit.Outcome{}, err
		}
		if affected == 0 {
			return entity.StatusNoChangesApplied.String(), audit.Failed(), nil
		}
		return entity.StatusSuccess.String(), audit.Success(), nil
	})
}

func (uc *UseCase) countryOf(ctx context.Context, address string) (string, error) {
	geo, err := uc.geocoder.Geocode(ctx, address)
	if err != nil {
		return "", err
	}
	if geo == nil || len(geo.Components) == 0 {
		return "", domain.NewStatusError(entity.StatusLocationNotFound.String())
	}
	return geo.CountryCode(), nil
}
