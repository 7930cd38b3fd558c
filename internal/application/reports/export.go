package reports

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/Autopartes-api/internal/application/dto"
	"github.com/jhoicas/Autopartes-api/internal/application/usecase"
	"github.com/jhoicas/Autopartes-api/internal/domain"
	"github.com/jhoicas/Autopartes-api/internal/domain/entity"
	"github.com/jhoicas/Autopartes-api/internal/domain/repository"
	"github.com/jhoicas/Autopartes-api/internal/domain/stock"
)

// Formatos de exportación soportados.
const (
	FormatPDF = "pdf"
	FormatCSV = "csv"
)

// printer formatea montos y cantidades con separador de miles es-CO.
var printer = message.NewPrinter(language.MustParse("es-CO"))

// ExportUseCase arma el dataset de cada tipo de reporte, lo renderiza como PDF
// o CSV y deja el registro de auditoría en la tabla de reportes.
type ExportUseCase struct {
	partRepo  repository.PartRepository
	movRepo   repository.MovementRepository
	statsRepo repository.StatsRepository
	reports   *usecase.ReportUseCase
	generator PDFGenerator
}

// NewExportUseCase construye el caso de uso inyectando todas sus dependencias.
func NewExportUseCase(
	partRepo repository.PartRepository,
	movRepo repository.MovementRepository,
	statsRepo repository.StatsRepository,
	reports *usecase.ReportUseCase,
	generator PDFGenerator,
) *ExportUseCase {
	return &ExportUseCase{
		partRepo:  partRepo,
		movRepo:   movRepo,
		statsRepo: statsRepo,
		reports:   reports,
		generator: generator,
	}
}

// Export genera el reporte pedido en el formato pedido.
//
// Retorna:
//   - (contenido, filename, contentType, nil) si todo sale bien.
//   - *domain.ValidationError si el tipo o el formato no son válidos.
func (uc *ExportUseCase) Export(ctx context.Context, reportType, format string) (content []byte, filename, contentType string, err error) {
	v := domain.NewValidation()
	switch reportType {
	case entity.ReportTypeInventory, entity.ReportTypeLowStock,
		entity.ReportTypeMovements, entity.ReportTypeSupplierAnalysis:
	default:
		v.Add("type", "debe ser inventory, low-stock, movements o supplier-analysis")
	}
	if format != FormatPDF && format != FormatCSV {
		v.Add("format", "debe ser pdf o csv")
	}
	if v.HasErrors() {
		return nil, "", "", v
	}

	doc, err := uc.buildDocument(ctx, reportType)
	if err != nil {
		return nil, "", "", err
	}

	switch format {
	case FormatCSV:
		content, err = renderCSV(doc)
		contentType = "text/csv; charset=utf-8"
	case FormatPDF:
		content, err = uc.generator.GenerateTablePDF(ctx, doc)
		contentType = "application/pdf"
	}
	if err != nil {
		return nil, "", "", fmt.Errorf("reports: renderizar %s: %w", format, err)
	}

	now := time.Now()
	if _, err := uc.reports.Create(ctx, dto.CreateReportRequest{
		Name:      doc.Title,
		Type:      reportType,
		DateRange: now.Format("2006-01-02"),
	}); err != nil {
		return nil, "", "", err
	}

	filename = fmt.Sprintf("reporte_%s_%s.%s", reportType, now.Format("20060102"), format)
	return content, filename, contentType, nil
}

// buildDocument arma la tabla del reporte consultando los repositorios.
func (uc *ExportUseCase) buildDocument(ctx context.Context, reportType string) (*TableDocument, error) {
	switch reportType {
	case entity.ReportTypeInventory:
		parts, err := uc.partRepo.List(ctx, "")
		if err != nil {
			return nil, err
		}
		return partsDocument("Reporte de Inventario", parts), nil

	case entity.ReportTypeLowStock:
		parts, err := uc.partRepo.ListLowStock(ctx)
		if err != nil {
			return nil, err
		}
		return partsDocument("Reporte de Stock Bajo", parts), nil

	case entity.ReportTypeMovements:
		movs, err := uc.movRepo.List(ctx)
		if err != nil {
			return nil, err
		}
		return movementsDocument(movs), nil

	case entity.ReportTypeSupplierAnalysis:
		rows, err := uc.statsRepo.SupplierBreakdown(ctx)
		if err != nil {
			return nil, err
		}
		return supplierDocument(rows), nil
	}
	return nil, domain.ErrInvalidInput
}

// stockStatusLabel etiqueta en español del estado de stock para los reportes.
var stockStatusLabel = map[string]string{
	stock.StatusOutOfStock: "Agotado",
	stock.StatusLowStock:   "Stock bajo",
	stock.StatusInStock:    "Disponible",
}

func partsDocument(title string, parts []*entity.Part) *TableDocument {
	doc := &TableDocument{
		Title:    title,
		Subtitle: printer.Sprintf("%d repuestos", len(parts)),
		Columns:  []string{"N° Parte", "Nombre", "Cant.", "Mín.", "Precio Unit.", "Valor", "Estado"},
		Widths:   []int{2, 3, 1, 1, 2, 2, 1},
	}
	for _, p := range parts {
		value := p.UnitPrice.Mul(decimal.NewFromInt(int64(p.Quantity)))
		doc.Rows = append(doc.Rows, []string{
			p.PartNumber,
			p.Name,
			printer.Sprintf("%d", p.Quantity),
			printer.Sprintf("%d", p.MinimumStock),
			"$" + formatAmount(p.UnitPrice),
			"$" + formatAmount(value),
			stockStatusLabel[stock.Classify(p.Quantity, p.MinimumStock)],
		})
	}
	return doc
}

func movementsDocument(movs []*entity.MovementWithPart) *TableDocument {
	doc := &TableDocument{
		Title:    "Reporte de Movimientos",
		Subtitle: printer.Sprintf("%d movimientos", len(movs)),
		Columns:  []string{"Fecha", "Tipo", "Repuesto", "N° Parte", "Cant.", "Motivo"},
		Widths:   []int{2, 1, 3, 2, 1, 3},
	}
	for _, m := range movs {
		tipo := "Entrada"
		if m.Type == entity.MovementTypeOut {
			tipo = "Salida"
		}
		doc.Rows = append(doc.Rows, []string{
			m.CreatedAt.Format("02/01/2006 15:04"),
			tipo,
			m.PartName,
			m.PartNumber,
			printer.Sprintf("%d", m.Quantity),
			m.Reason,
		})
	}
	return doc
}

func supplierDocument(rows []repository.SupplierStatsRow) *TableDocument {
	doc := &TableDocument{
		Title:    "Análisis por Proveedor",
		Subtitle: printer.Sprintf("%d proveedores", len(rows)),
		Columns:  []string{"Proveedor", "Repuestos", "Unidades", "Valor Inventario"},
		Widths:   []int{5, 2, 2, 3},
	}
	for _, r := range rows {
		doc.Rows = append(doc.Rows, []string{
			r.SupplierName,
			printer.Sprintf("%d", r.PartCount),
			printer.Sprintf("%d", r.TotalUnits),
			"$" + formatAmount(r.InventoryValue),
		})
	}
	return doc
}

// renderCSV escribe cabecera + filas con encoding/csv (UTF-8, coma).
func renderCSV(doc *TableDocument) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(doc.Columns); err != nil {
		return nil, err
	}
	if err := w.WriteAll(doc.Rows); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// formatAmount formatea un monto sin decimales con separador de miles es-CO.
func formatAmount(d decimal.Decimal) string {
	return printer.Sprintf("%d", d.Round(0).IntPart())
}
