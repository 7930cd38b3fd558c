package reports_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Autopartes-api/internal/application/reports"
	"github.com/jhoicas/Autopartes-api/internal/application/usecase"
	"github.com/jhoicas/Autopartes-api/internal/domain"
	"github.com/jhoicas/Autopartes-api/internal/domain/entity"
	"github.com/jhoicas/Autopartes-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type stubPartRepo struct {
	parts []*entity.Part
}

func (r *stubPartRepo) Create(context.Context, *entity.Part) error { return nil }
func (r *stubPartRepo) GetByID(context.Context, string) (*entity.Part, error) {
	return nil, nil
}
func (r *stubPartRepo) GetByPartNumber(context.Context, string) (*entity.Part, error) {
	return nil, nil
}
func (r *stubPartRepo) GetForUpdate(context.Context, string) (*entity.Part, error) {
	return nil, nil
}
func (r *stubPartRepo) List(context.Context, string) ([]*entity.Part, error) {
	return r.parts, nil
}
func (r *stubPartRepo) ListLowStock(context.Context) ([]*entity.Part, error) {
	var out []*entity.Part
	for _, p := range r.parts {
		if p.Quantity <= p.MinimumStock {
			out = append(out, p)
		}
	}
	return out, nil
}
func (r *stubPartRepo) Update(context.Context, *entity.Part) error         { return nil }
func (r *stubPartRepo) UpdateQuantity(context.Context, string, int) error  { return nil }
func (r *stubPartRepo) Delete(context.Context, string) (bool, error)       { return false, nil }

type stubMovementRepo struct {
	movements []*entity.MovementWithPart
}

func (r *stubMovementRepo) Create(context.Context, *entity.Movement) error { return nil }
func (r *stubMovementRepo) GetByID(context.Context, string) (*entity.MovementWithPart, error) {
	return nil, nil
}
func (r *stubMovementRepo) List(context.Context) ([]*entity.MovementWithPart, error) {
	return r.movements, nil
}
func (r *stubMovementRepo) ListByPart(context.Context, string) ([]*entity.MovementWithPart, error) {
	return nil, nil
}

type stubStatsRepo struct {
	rows []repository.SupplierStatsRow
}

func (r *stubStatsRepo) Overview(context.Context) (*repository.StatsResult, error) {
	return &repository.StatsResult{}, nil
}
func (r *stubStatsRepo) SupplierBreakdown(context.Context) ([]repository.SupplierStatsRow, error) {
	return r.rows, nil
}

type stubReportRepo struct {
	created []*entity.Report
}

func (r *stubReportRepo) Create(_ context.Context, rep *entity.Report) error {
	r.created = append(r.created, rep)
	return nil
}
func (r *stubReportRepo) GetByID(context.Context, string) (*entity.Report, error) {
	return nil, nil
}
func (r *stubReportRepo) List(context.Context) ([]*entity.Report, error) { return nil, nil }
func (r *stubReportRepo) Delete(context.Context, string) (bool, error)   { return false, nil }

// stubPDF devuelve bytes fijos; el render real lo hace Maroto en infraestructura.
type stubPDF struct {
	lastDoc *reports.TableDocument
}

func (g *stubPDF) GenerateTablePDF(_ context.Context, doc *reports.TableDocument) ([]byte, error) {
	g.lastDoc = doc
	return []byte("%PDF-fake"), nil
}

type exportFixture struct {
	uc         *reports.ExportUseCase
	reportRepo *stubReportRepo
	pdf        *stubPDF
}

func buildExportFixture(t *testing.T) exportFixture {
	t.Helper()
	now := time.Now()
	partRepo := &stubPartRepo{parts: []*entity.Part{
		{ID: "p1", Name: "Filtro, de aire", PartNumber: "FLT-9", Quantity: 0, MinimumStock: 3,
			UnitPrice: decimal.NewFromInt(25000), CreatedAt: now, UpdatedAt: now},
		{ID: "p2", Name: "Correa", PartNumber: "COR-2", Quantity: 20, MinimumStock: 3,
			UnitPrice: decimal.NewFromInt(40000), CreatedAt: now, UpdatedAt: now},
	}}
	movRepo := &stubMovementRepo{movements: []*entity.MovementWithPart{
		{
			Movement: entity.Movement{ID: "m1", PartID: "p1", Type: entity.MovementTypeIn,
				Quantity: 5, Reason: "compra", CreatedAt: now},
			PartName: "Filtro, de aire", PartNumber: "FLT-9",
		},
	}}
	statsRepo := &stubStatsRepo{rows: []repository.SupplierStatsRow{
		{SupplierID: "s1", SupplierName: "Importadora Andina", PartCount: 2, TotalUnits: 20,
			InventoryValue: decimal.NewFromInt(825000)},
	}}
	reportRepo := &stubReportRepo{}
	pdf := &stubPDF{}
	uc := reports.NewExportUseCase(partRepo, movRepo, statsRepo,
		usecase.NewReportUseCase(reportRepo), pdf)
	return exportFixture{uc: uc, reportRepo: reportRepo, pdf: pdf}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestExport_CSVInventario(t *testing.T) {
	f := buildExportFixture(t)

	content, filename, contentType, err := f.uc.Export(context.Background(),
		entity.ReportTypeInventory, reports.FormatCSV)
	require.NoError(t, err)

	assert.Contains(t, contentType, "text/csv")
	assert.True(t, strings.HasPrefix(filename, "reporte_inventory_"))
	assert.True(t, strings.HasSuffix(filename, ".csv"))

	csvText := string(content)
	lines := strings.Split(strings.TrimSpace(csvText), "\n")
	require.Len(t, lines, 3, "cabecera + 2 repuestos")
	assert.Contains(t, lines[0], "N° Parte")
	// El nombre con coma debe quedar entre comillas CSV
	assert.Contains(t, csvText, `"Filtro, de aire"`)
	assert.Contains(t, csvText, "Agotado")
}

func TestExport_CSVStockBajo_SoloIncluyeBajoElMinimo(t *testing.T) {
	f := buildExportFixture(t)

	content, _, _, err := f.uc.Export(context.Background(),
		entity.ReportTypeLowStock, reports.FormatCSV)
	require.NoError(t, err)

	csvText := string(content)
	assert.Contains(t, csvText, "FLT-9")
	assert.NotContains(t, csvText, "COR-2", "un repuesto sobre el mínimo no entra en stock bajo")
}

func TestExport_PDFDelegaEnElGenerador(t *testing.T) {
	f := buildExportFixture(t)

	content, _, contentType, err := f.uc.Export(context.Background(),
		entity.ReportTypeMovements, reports.FormatPDF)
	require.NoError(t, err)

	assert.Equal(t, "application/pdf", contentType)
	assert.Equal(t, []byte("%PDF-fake"), content)
	require.NotNil(t, f.pdf.lastDoc)
	assert.Equal(t, "Reporte de Movimientos", f.pdf.lastDoc.Title)
	require.Len(t, f.pdf.lastDoc.Rows, 1)
	assert.Equal(t, "Entrada", f.pdf.lastDoc.Rows[0][1])
}

func TestExport_RegistraMetadatos(t *testing.T) {
	f := buildExportFixture(t)

	_, _, _, err := f.uc.Export(context.Background(),
		entity.ReportTypeSupplierAnalysis, reports.FormatCSV)
	require.NoError(t, err)

	require.Len(t, f.reportRepo.created, 1)
	assert.Equal(t, entity.ReportTypeSupplierAnalysis, f.reportRepo.created[0].Type)
	assert.Equal(t, "Análisis por Proveedor", f.reportRepo.created[0].Name)
}

func TestExport_TipoOFormatoInvalido(t *testing.T) {
	f := buildExportFixture(t)

	_, _, _, err := f.uc.Export(context.Background(), "sales", "xlsx")
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Fields, 2)
}
