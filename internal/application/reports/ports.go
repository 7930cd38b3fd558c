package reports

import "context"

// TableDocument es la representación tabular neutra de un reporte: la arma el
// caso de uso y la consumen los renderizadores PDF y CSV.
type TableDocument struct {
	Title    string
	Subtitle string
	Columns  []string
	// Widths reparte las 12 columnas de la grilla del PDF; debe sumar 12 y
	// tener la misma longitud que Columns. El CSV lo ignora.
	Widths []int
	Rows   [][]string
}

// PDFGenerator renderiza un TableDocument como PDF.
type PDFGenerator interface {
	GenerateTablePDF(ctx context.Context, doc *TableDocument) ([]byte, error)
}
