package location

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jhoicas/evcharge-admin-api/internal/application/audit"
	"github.com/jhoicas/evcharge-admin-api/internal/application/dto"
	"github.com/jhoicas/evcharge-admin-api/internal/application/ports"
	"github.com/jhoicas/evcharge-admin-api/internal/application/reference"
	"github.com/jhoicas/evcharge-admin-api/internal/domain"
	"github.com/jhoicas/evcharge-admin-api/internal/domain/entity"
	"github.com/jhoicas/evcharge-admin-api/internal/domain/repository"
)

// Acciones de vinculación.
const (
	ActionBind   = "bind"
	ActionUnbind = "unbind"
)

var allowedImageExt = map[string]struct{}{".png": {}, ".svg": {}, ".jpg": {}, ".jpeg": {}}

// UseCase registro, vinculación y consultas de ubicaciones.
type UseCase struct {
	txRunner     TxRunner
	locationRepo repository.LocationRepository
	geocoder     ports.Geocoder
	images       ports.ImageStore
	catalog      *reference.Catalog
	audit        *audit.Recorder
	maxImages    int
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	locationRepo repository.LocationRepository,
	geocoder ports.Geocoder,
	images ports.ImageStore,
	catalog *reference.Catalog,
	recorder *audit.Recorder,
	maxImages int,
) *UseCase {
	if maxImages <= 0 {
		maxImages = 5
	}
	return &UseCase{
		txRunner:     txRunner,
		locationRepo: locationRepo,
		geocoder:     geocoder,
		images:       images,
		catalog:      catalog,
		audit:        recorder,
		maxImages:    maxImages,
	}
}

// Register geocodifica la dirección, inserta la ubicación y sus facilidades, tipos y restricciones
// de estacionamiento dentro de una transacción.
// Si se enviaron restricciones y ninguna fila quedó insertada, se confirma lo insertado, se audita
// como fallo y se devuelve PARKING_RESTRICTIONS_NOT_ADDED con el id creado.
func (uc *UseCase) Register(ctx context.Context, adminID int64, in dto.RegisterLocationRequest) (dto.RegisterLocationResponse, error) {
	entry := audit.Entry{
		AdminID: adminID,
		CPOID:   in.CPOOwnerID,
		Success: "ADD new location",
		Failure: "ATTEMPT to ADD new location",
	}
	return audit.RunWithOutcome(ctx, uc.audit, entry, func(ctx context.Context) (dto.RegisterLocationResponse, audit.Outcome, error) {
		var out dto.RegisterLocationResponse

		geo, err := uc.geocoder.Geocode(ctx, in.Address)
		if err != nil {
			return out, audit.Outcome{}, err
		}
		if geo == nil || len(geo.Components) == 0 {
			return out, audit.Outcome{}, domain.NewStatusError(string(entity.StatusLocationNotFound))
		}

		loc := &entity.Location{
			CPOOwnerID: in.CPOOwnerID,
			Name:       strings.TrimSpace(in.Name),
			Address:    geo.FormattedAddress,
			Lat:        geo.Lat,
			Lng:        geo.Lng,
			City:       geo.City(),
			Region:     geo.Region(),
			PostalCode: geo.PostalCode(),
			Images:     in.Images,
		}

		var restricted int64
		err = uc.txRunner.RunLocationRegistration(ctx, func(repo repository.LocationRepository) error {
			id, err := repo.Create(ctx, loc)
			if err != nil {
				return err
			}
			loc.ID = id
			if len(in.Facilities) > 0 {
				if _, err := repo.AddFacilities(ctx, id, in.Facilities); err != nil {
					return err
				}
			}
			if len(in.ParkingTypes) > 0 {
				assocs := make([]entity.ParkingTypeAssoc, 0, len(in.ParkingTypes))
				for _, pt := range in.ParkingTypes {
					assocs = append(assocs, entity.ParkingTypeAssoc{ParkingTypeID: pt, LocationID: id, Tag: entity.ParkingTag(pt)})
				}
				if _, err := repo.AddParkingTypes(ctx, assocs); err != nil {
					return err
				}
			}
			if len(in.ParkingRestrictions) > 0 {
				n, err := repo.AddParkingRestrictions(ctx, id, in.ParkingRestrictions)
				if err != nil {
					return err
				}
				restricted = n
			}
			return nil
		})
		if err != nil {
			return out, audit.Outcome{}, err
		}

		out.LocationID = loc.ID
		out.AffectedRows = restricted
		if len(in.ParkingRestrictions) > 0 && restricted < 1 {
			out.Status = string(entity.StatusParkingRestrictionsFail)
			return out, audit.Failed(), nil
		}
		out.Status = string(entity.StatusSuccess)
		return out, audit.Success(), nil
	})
}

// Bind vincula o desvincula una ubicación de un CPO según action.
func (uc *UseCase) Bind(ctx context.Context, adminID int64, action string, locationID, cpoOwnerID int64) (string, error) {
	var success string
	var call func(context.Context, int64, int64) (entity.ProcedureStatus, error)
	switch action {
	case ActionBind:
		success = fmt.Sprintf("BIND location to CPO with ID of %d", cpoOwnerID)
		call = uc.locationRepo.Bind
	case ActionUnbind:
		success = fmt.Sprintf("UNBIND location from CPO with ID of %d", cpoOwnerID)
		call = uc.locationRepo.Unbind
	default:
		return "", domain.NewValidationError("action", "Invalid action. Valid actions are: [bind, unbind]")
	}

	entry := audit.Entry{AdminID: adminID, CPOID: &cpoOwnerID, Success: success, Failure: "ATTEMPT to " + success}
	return audit.Run(ctx, uc.audit, entry, func(ctx context.Context) (string, error) {
		st, err := call(ctx, cpoOwnerID, locationID)
		if err != nil {
			return "", err
		}
		if !st.IsSuccess() {
			return "", domain.NewStatusError(st.String())
		}
		return st.String(), nil
	})
}

// List listado paginado de ubicaciones.
func (uc *UseCase) List(ctx context.Context, page dto.PageRequest) (*dto.LocationListResponse, error) {
	page.DefaultPage()
	items, err := uc.locationRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.locationRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	out := toLocationResponses(items)
	return &dto.LocationListResponse{
		Locations:     out,
		TotalReturned: len(out),
		Total:         total,
		Limit:         page.Limit,
		Offset:        page.Offset,
	}, nil
}

// ListUnbound ubicaciones sin CPO.
func (uc *UseCase) ListUnbound(ctx context.Context) ([]dto.LocationResponse, error) {
	items, err := uc.locationRepo.ListUnbound(ctx)
	if err != nil {
		return nil, err
	}
	return toLocationResponses(items), nil
}

// ListForCPO ubicaciones del CPO seguidas de las no vinculadas.
func (uc *UseCase) ListForCPO(ctx context.Context, cpoOwnerID int64) ([]dto.LocationResponse, error) {
	items, err := uc.locationRepo.ListForCPO(ctx, cpoOwnerID)
	if err != nil {
		return nil, err
	}
	return toLocationResponses(items), nil
}

// SearchByName búsqueda por subcadena del nombre, sin distinguir mayúsculas.
func (uc *UseCase) SearchByName(ctx context.Context, name string, page dto.PageRequest) ([]dto.LocationResponse, error) {
	page.DefaultPage()
	items, err := uc.locationRepo.SearchByName(ctx, strings.ToLower(strings.TrimSpace(name)), page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toLocationResponses(items), nil
}

// Defaults vocabularios del formulario de ubicación.
func (uc *UseCase) Defaults(ctx context.Context) (*dto.LocationDefaultsResponse, error) {
	return uc.catalog.LocationDefaults(ctx)
}

// UploadImages guarda hasta maxImages imágenes png/svg/jpg/jpeg y devuelve los nombres almacenados.
func (uc *UseCase) UploadImages(ctx context.Context, files []dto.UploadedImage) ([]string, error) {
	if len(files) > uc.maxImages {
		return nil, domain.NewValidationError("images", fmt.Sprintf("Maximum of %d images only", uc.maxImages))
	}
	for _, f := range files {
		if _, ok := allowedImageExt[strings.ToLower(filepath.Ext(f.Name))]; !ok {
			return nil, domain.NewValidationError("images", "Only .png, .svg, .jpg and .jpeg format allowed")
		}
	}
	names := make([]string, 0, len(files))
	for _, f := range files {
		name, err := uc.images.Save(ctx, f.Name, f.Content)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

func toLocationResponses(items []*entity.Location) []dto.LocationResponse {
	out := make([]dto.LocationResponse, 0, len(items))
	for _, l := range items {
		images := l.Images
		if images == nil {
			images = []string{}
		}
		out = append(out, dto.LocationResponse{
			ID:          l.ID,
			CPOOwnerID:  l.CPOOwnerID,
			Name:        l.Name,
			Address:     l.Address,
			AddressLat:  l.Lat,
			AddressLng:  l.Lng,
			City:        l.City,
			Region:      l.Region,
			PostalCode:  l.PostalCode,
			Images:      images,
			DateCreated: l.CreatedAt,
		})
	}
	return out
}
