package export

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"github.com/talentohr/hris-backend-go/internal/domain/report"
)

// maroto lays content on a 12-column grid, which caps tabular PDF output at
// twelve columns per form.
const pdfMaxColumns = 12

// PDF renders the dataset as an A4 landscape table: company header, title,
// period line, header row, data rows, totals row.
func PDF(g report.Generator, tenant report.TenantContext, ds *report.Dataset, params report.Params) (*report.File, error) {
	def := g.Definition()
	if len(def.Headers) > pdfMaxColumns {
		return nil, &report.UnsupportedExportError{Code: def.Code, Format: report.FormatPDF}
	}

	cfg := config.NewBuilder().
		WithOrientation(orientation.Horizontal).
		WithPageSize(pagesize.A4).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(8, text.NewCol(12, tenant.CompanyName, props.Text{Size: 14, Style: fontstyle.Bold}))
	m.AddRow(6, text.NewCol(12, def.Title, props.Text{Size: 11}))
	m.AddRow(6, text.NewCol(12, params.PeriodLabel(def.Granularity), props.Text{Size: 9}))
	if reg := registrationLine(def.Agency, tenant); reg != "" {
		m.AddRow(5, text.NewCol(12, reg, props.Text{Size: 8}))
	}
	m.AddRow(3, col.New(12))

	sizes := columnSizes(len(def.Headers))

	headerCols := make([]core.Col, len(def.Headers))
	for i, h := range def.Headers {
		headerCols[i] = text.NewCol(sizes[i], h, props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Center})
	}
	m.AddRows(row.New(7).Add(headerCols...))

	for i, r := range ds.Rows {
		cells := g.ExcelRow(r, i+1)
		dataCols := make([]core.Col, 0, len(cells))
		for c, v := range cells {
			if c >= len(sizes) {
				break
			}
			a := align.Left
			if _, money := v.(decimal.Decimal); money {
				a = align.Right
			}
			dataCols = append(dataCols, text.NewCol(sizes[c], cellString(v), props.Text{Size: 7, Align: a}))
		}
		m.AddRows(row.New(5).Add(dataCols...))
	}

	totalCells := []any{"TOTAL"}
	if tm, ok := g.(report.TotalsMapper); ok {
		totalCells = tm.ExcelTotals(ds.Totals)
	}
	totalCols := make([]core.Col, 0, len(totalCells))
	for c, v := range totalCells {
		if c >= len(sizes) {
			break
		}
		a := align.Left
		if _, money := v.(decimal.Decimal); money {
			a = align.Right
		}
		totalCols = append(totalCols, text.NewCol(sizes[c], cellString(v), props.Text{Size: 7, Style: fontstyle.Bold, Align: a}))
	}
	m.AddRows(row.New(6).Add(totalCols...))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}

	return &report.File{
		Content:     doc.GetBytes(),
		Name:        Filename(def, report.FormatPDF, params.PeriodSlug(def.Granularity)),
		ContentType: report.FormatPDF.ContentType(),
	}, nil
}

// columnSizes splits the 12-unit grid across n columns, giving leftover
// units to the first column (usually the employee name).
func columnSizes(n int) []int {
	if n == 0 {
		return nil
	}
	base := pdfMaxColumns / n
	rest := pdfMaxColumns % n
	sizes := make([]int, n)
	for i := range sizes {
		sizes[i] = base
	}
	sizes[0] += rest
	return sizes
}
