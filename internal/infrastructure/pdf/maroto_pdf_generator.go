// Package pdf genera el reporte del tablero de administración en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título del reporte  │  fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL DE CPOs                                              │
//	│  TABLA: Recurso | Asignados | Sin asignar | Total | Al      │
//	│         (RFID, EVSE, ubicaciones)                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RECARGAS: ventas / anulaciones / tarjeta / Maya            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/evcharge-admin-api/internal/application/ports"
	"github.com/jhoicas/evcharge-admin-api/internal/domain/entity"
)

var _ ports.DashboardPDFGenerator = (*MarotoPDFGenerator)(nil)

const dateLayout = "2006-01-02 15:04"

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 110, Blue: 80}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa ports.DashboardPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	author string
}

// NewMarotoPDFGenerator construye el generador; author se escribe en los metadatos.
func NewMarotoPDFGenerator(author string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{author: author}
}

// GenerateDashboard genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateDashboard(d *entity.Dashboard, generatedAt time.Time) ([]byte, error) {
	if d == nil {
		return nil, fmt.Errorf("pdf: tablero vacío")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Admin Dashboard Report", true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(totalCPOsRow(d.TotalCPOs))
	m.AddRows(line.NewRow(4))

	m.AddRows(sectionTitle("Inventory"))
	m.AddRows(tableHeaderRow())
	m.AddRows(
		countRow("RFID cards", d.RFID.TotalAssigned, d.RFID.TotalUnassigned, d.RFID.Total, d.RFID.TotalAsOf),
		countRow("EVSEs", d.EVSE.TotalAssigned, d.EVSE.TotalUnassigned, d.EVSE.Total, d.EVSE.TotalAsOf),
		countRow("Locations", d.Location.TotalAssigned, d.Location.TotalUnassigned, d.Location.Total, d.Location.TotalAsOf),
	)

	m.AddRows(line.NewRow(4))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(sectionTitle("Top-ups"))
	m.AddRows(topupRows(d.Topup)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("EV CHARGING ADMIN", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Dashboard report", props.Text{Size: 9, Top: 8, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Generated: "+generatedAt.Format(dateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func totalCPOsRow(total int64) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Charging Point Operators: %d", total), props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 4,
			}),
		),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(strings.ToUpper(title), props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		}),
	))
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1,
		}))
	}
	return row.New(7).Add(
		h("Resource", 3, align.Left),
		h("Assigned", 2, align.Right),
		h("Unassigned", 2, align.Right),
		h("Total", 2, align.Right),
		h("As of", 3, align.Right),
	)
}

func countRow(label string, assigned, unassigned, total int64, asOf *time.Time) core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1}))
	}
	return row.New(6).Add(
		cell(label, 3, align.Left),
		cell(formatCount(assigned), 2, align.Right),
		cell(formatCount(unassigned), 2, align.Right),
		cell(formatCount(total), 2, align.Right),
		cell(formatDate(asOf), 3, align.Right),
	)
}

func topupRows(t entity.TopupInfo) []core.Row {
	amountRow := func(label string, amount decimal.Decimal) core.Row {
		return row.New(6).Add(
			col.New(6).Add(text.New(label, props.Text{Size: 9, Top: 1})),
			col.New(6).Add(text.New("PHP "+formatMoney(amount), props.Text{Size: 9, Align: align.Right, Top: 1})),
		)
	}
	return []core.Row{
		amountRow("Top-up sales", t.TotalSales),
		amountRow("Voided top-ups", t.TotalVoids),
		amountRow("Card sales", t.TotalCardSales),
		amountRow("Maya sales", t.TotalMayaSales),
		row.New(6).Add(col.New(12).Add(text.New("Sales as of "+formatDate(t.SalesAsOf), props.Text{
			Size: 7, Top: 2, Color: colorGray,
		}))),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(dateLayout)
}

func formatCount(n int64) string {
	return groupThousands(fmt.Sprintf("%d", n))
}

// formatMoney dos decimales con comas de miles. Ej: 1234567.5 → "1,234,567.50"
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	return sign + groupThousands(intPart) + "." + frac
}

func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
