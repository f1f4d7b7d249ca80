// Package reports contiene el tablero de administración y su exportación a PDF.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/evcharge-admin-api/internal/application/dto"
	"github.com/jhoicas/evcharge-admin-api/internal/application/ports"
	"github.com/jhoicas/evcharge-admin-api/internal/domain/entity"
	"github.com/jhoicas/evcharge-admin-api/internal/domain/repository"
)

// DashboardUseCase agrega los totales de CPOs, RFIDs, EVSEs, ubicaciones y recargas.
//
// Fuente de datos: ReportsRepository (consultas read-only).
type DashboardUseCase struct {
	reportsRepo repository.ReportsRepository
	pdf         ports.DashboardPDFGenerator
	now         func() time.Time
}

// NewDashboardUseCase construye el caso de uso. pdf puede ser nil si no se exporta.
func NewDashboardUseCase(reportsRepo repository.ReportsRepository, pdf ports.DashboardPDFGenerator) *DashboardUseCase {
	return &DashboardUseCase{reportsRepo: reportsRepo, pdf: pdf, now: time.Now}
}

// GetDashboard construye el DashboardResponse.
func (uc *DashboardUseCase) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	d, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	return toDashboardResponse(d), nil
}

// ExportDashboardPDF genera el reporte PDF con los mismos agregados de GetDashboard.
func (uc *DashboardUseCase) ExportDashboardPDF(ctx context.Context) ([]byte, error) {
	if uc.pdf == nil {
		return nil, fmt.Errorf("dashboard: generador PDF no configurado")
	}
	d, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	out, err := uc.pdf.GenerateDashboard(d, uc.now())
	if err != nil {
		return nil, fmt.Errorf("dashboard: generar PDF: %w", err)
	}
	return out, nil
}

// load ejecuta las cinco consultas en paralelo.
func (uc *DashboardUseCase) load(ctx context.Context) (*entity.Dashboard, error) {
	type countResult struct {
		total int64
		err   error
	}
	type rfidResult struct {
		info entity.RFIDInfo
		err  error
	}
	type evseResult struct {
		info entity.EVSEInfo
		err  error
	}
	type locationResult struct {
		info entity.LocationInfo
		err  error
	}
	type topupResult struct {
		info entity.TopupInfo
		err  error
	}

	cpoCh := make(chan countResult, 1)
	rfidCh := make(chan rfidResult, 1)
	evseCh := make(chan evseResult, 1)
	locationCh := make(chan locationResult, 1)
	topupCh := make(chan topupResult, 1)

	go func() {
		total, err := uc.reportsRepo.TotalCPOs(ctx)
		cpoCh <- countResult{total, err}
	}()
	go func() {
		info, err := uc.reportsRepo.RFIDInfo(ctx)
		rfidCh <- rfidResult{info, err}
	}()
	go func() {
		info, err := uc.reportsRepo.EVSEInfo(ctx)
		evseCh <- evseResult{info, err}
	}()
	go func() {
		info, err := uc.reportsRepo.LocationInfo(ctx)
		locationCh <- locationResult{info, err}
	}()
	go func() {
		info, err := uc.reportsRepo.TopupInfo(ctx)
		topupCh <- topupResult{info, err}
	}()

	cpos := <-cpoCh
	rfid := <-rfidCh
	evse := <-evseCh
	location := <-locationCh
	topup := <-topupCh

	if cpos.err != nil {
		return nil, fmt.Errorf("dashboard: total de CPOs: %w", cpos.err)
	}
	if rfid.err != nil {
		return nil, fmt.Errorf("dashboard: RFIDs: %w", rfid.err)
	}
	if evse.err != nil {
		return nil, fmt.Errorf("dashboard: EVSEs: %w", evse.err)
	}
	if location.err != nil {
		return nil, fmt.Errorf("dashboard: ubicaciones: %w", location.err)
	}
	if topup.err != nil {
		return nil, fmt.Errorf("dashboard: recargas: %w", topup.err)
	}

	return &entity.Dashboard{
		TotalCPOs: cpos.total,
		RFID:      rfid.info,
		EVSE:      evse.info,
		Location:  location.info,
		Topup:     topup.info,
	}, nil
}

func toDashboardResponse(d *entity.Dashboard) *dto.DashboardResponse {
	return &dto.DashboardResponse{
		TotalCPOs: d.TotalCPOs,
		RFIDInfo: dto.RFIDInfoResponse{
			TotalAssigned:   d.RFID.TotalAssigned,
			TotalUnassigned: d.RFID.TotalUnassigned,
			Total:           d.RFID.Total,
			AssignedAsOf:    d.RFID.AssignedAsOf,
			UnassignedAsOf:  d.RFID.UnassignedAsOf,
			TotalAsOf:       d.RFID.TotalAsOf,
		},
		EVSEInfo: dto.EVSEInfoResponse{
			TotalAssigned:   d.EVSE.TotalAssigned,
			TotalUnassigned: d.EVSE.TotalUnassigned,
			Total:           d.EVSE.Total,
			AssignedAsOf:    d.EVSE.AssignedAsOf,
			UnassignedAsOf:  d.EVSE.UnassignedAsOf,
			TotalAsOf:       d.EVSE.TotalAsOf,
		},
		LocationInfo: dto.LocationInfoResponse{
			TotalAssigned:   d.Location.TotalAssigned,
			TotalUnassigned: d.Location.TotalUnassigned,
			Total:           d.Location.Total,
			TotalAsOf:       d.Location.TotalAsOf,
		},
		TopupInfo: dto.TopupInfoResponse{
			TotalSales:     d.Topup.TotalSales.Round(2),
			TotalVoids:     d.Topup.TotalVoids.Round(2),
			TotalCardSales: d.Topup.TotalCardSales.Round(2),
			TotalMayaSales: d.Topup.TotalMayaSales.Round(2),
			SalesAsOf:      d.Topup.SalesAsOf,
		},
	}
}
