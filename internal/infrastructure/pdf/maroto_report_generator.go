// Package pdf implementa la renderización de los reportes del taller como PDF
// tabular A4 usando Maroto v2.
//
// Layout de la página:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte  │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Subtítulo (conteo de filas)                                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: cabecera + una fila por registro                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda de generación                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
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

	"github.com/jhoicas/Autopartes-api/internal/application/reports"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa reports.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

var _ reports.PDFGenerator = (*MarotoReportGenerator)(nil)

// GenerateTablePDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateTablePDF(_ context.Context, doc *reports.TableDocument) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(doc.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow(doc))
	for _, r := range tableRows(doc) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + subtítulo (izq) y fecha de generación (der).
func headerRow(doc *reports.TableDocument) core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")

	return row.New(16).Add(
		col.New(8).Add(
			text.New(doc.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(doc.Subtitle, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla con los anchos declarados en el documento.
func tableHeaderRow(doc *reports.TableDocument) core.Row {
	cols := make([]core.Col, 0, len(doc.Columns))
	for i, label := range doc.Columns {
		cols = append(cols, col.New(doc.Widths[i]).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Left,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...)
}

// tableRows: una fila por registro del documento.
func tableRows(doc *reports.TableDocument) []core.Row {
	result := make([]core.Row, 0, len(doc.Rows))
	for _, cells := range doc.Rows {
		cols := make([]core.Col, 0, len(cells))
		for i, cell := range cells {
			cols = append(cols, col.New(doc.Widths[i]).Add(text.New(cell, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1, Right: 1,
			})))
		}
		result = append(result, row.New(7).Add(cols...))
	}
	return result
}

// footerRow: leyenda de generación.
func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Reporte generado automáticamente por el sistema de inventario del taller. "+
				"Los valores reflejan el estado al momento de la generación.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}
