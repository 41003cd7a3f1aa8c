package export

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/talentohr/hris-backend-go/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

const excelSheet = "Sheet1"

// Excel renders the dataset as a spreadsheet: title block, styled header
// row, one row per aggregated record, and a totals row. Everything happens
// in memory; no temporary files are written.
func Excel(g report.Generator, tenant report.TenantContext, ds *report.Dataset, params report.Params) (*report.File, error) {
	def := g.Definition()
	f := excelize.NewFile()
	defer f.Close()

	regLine := registrationLine(def.Agency, tenant)

	// Title block. The header row offset shifts down by one when the
	// registration-number line is present.
	setString(f, 1, 1, tenant.CompanyName)
	setString(f, 1, 2, def.Title)
	setString(f, 1, 3, params.PeriodLabel(def.Granularity))
	headerRow := 5
	if regLine != "" {
		setString(f, 1, 4, regLine)
		headerRow = 6
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"305496"}},
		Border:    thinBorders(),
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return nil, fmt.Errorf("create money style: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		NumFmt: 4,
		Border: []excelize.Border{{Type: "top", Color: "000000", Style: 1}},
	})
	if err != nil {
		return nil, fmt.Errorf("create totals style: %w", err)
	}

	widths := make([]int, len(def.Headers))
	for c, h := range def.Headers {
		cell := Cell(c+1, headerRow)
		if err := f.SetCellValue(excelSheet, cell, h); err != nil {
			return nil, fmt.Errorf("write header cell %s: %w", cell, err)
		}
		widths[c] = max(widths[c], len(h))
	}
	if len(def.Headers) > 0 {
		if err := f.SetCellStyle(excelSheet, Cell(1, headerRow), Cell(len(def.Headers), headerRow), headerStyle); err != nil {
			return nil, fmt.Errorf("style header row: %w", err)
		}
	}

	rowNum := headerRow
	for i, row := range ds.Rows {
		rowNum++
		cells := g.ExcelRow(row, i+1)
		for c, v := range cells {
			if err := setCell(f, c+1, rowNum, v, moneyStyle); err != nil {
				return nil, err
			}
			if c < len(widths) {
				widths[c] = max(widths[c], len(cellString(v)))
			}
		}
	}

	// Totals row
	rowNum++
	totalCells := []any{"TOTAL"}
	if tm, ok := g.(report.TotalsMapper); ok {
		totalCells = tm.ExcelTotals(ds.Totals)
	}
	for c, v := range totalCells {
		if err := setCell(f, c+1, rowNum, v, 0); err != nil {
			return nil, err
		}
		if c < len(widths) {
			widths[c] = max(widths[c], len(cellString(v)))
		}
	}
	if len(def.Headers) > 0 {
		if err := f.SetCellStyle(excelSheet, Cell(1, rowNum), Cell(len(def.Headers), rowNum), totalStyle); err != nil {
			return nil, fmt.Errorf("style totals row: %w", err)
		}
	}

	// Auto-size columns to content
	for c, w := range widths {
		name := ColumnName(c + 1)
		if err := f.SetColWidth(excelSheet, name, name, float64(w)+4); err != nil {
			return nil, fmt.Errorf("size column %s: %w", name, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	return &report.File{
		Content:     buf.Bytes(),
		Name:        Filename(def, report.FormatExcel, params.PeriodSlug(def.Granularity)),
		ContentType: report.FormatExcel.ContentType(),
	}, nil
}

func setString(f *excelize.File, col, row int, v string) {
	// Title-block writes cannot fail on a fresh in-memory workbook.
	_ = f.SetCellValue(excelSheet, Cell(col, row), v)
}

// setCell writes one mapped value, converting decimals to numeric cells with
// the money number format.
func setCell(f *excelize.File, col, row int, v any, moneyStyle int) error {
	cell := Cell(col, row)
	switch c := v.(type) {
	case decimal.Decimal:
		val, _ := c.Float64()
		if err := f.SetCellValue(excelSheet, cell, val); err != nil {
			return fmt.Errorf("write cell %s: %w", cell, err)
		}
		if moneyStyle != 0 {
			if err := f.SetCellStyle(excelSheet, cell, cell, moneyStyle); err != nil {
				return fmt.Errorf("style cell %s: %w", cell, err)
			}
		}
	default:
		if err := f.SetCellValue(excelSheet, cell, v); err != nil {
			return fmt.Errorf("write cell %s: %w", cell, err)
		}
	}
	return nil
}

func thinBorders() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
}

// registrationLine returns the employer registration number line for the
// agency, or "" when the tenant profile has none on file.
func registrationLine(agency report.Agency, tenant report.TenantContext) string {
	switch agency {
	case report.AgencyBIR:
		if tenant.TIN == "" {
			return ""
		}
		if tenant.RDOCode != "" {
			return fmt.Sprintf("TIN: %s  RDO Code: %s", tenant.TIN, tenant.RDOCode)
		}
		return "TIN: " + tenant.TIN
	case report.AgencySSS:
		if tenant.SSSEmployerNumber == "" {
			return ""
		}
		return "Employer SSS No.: " + tenant.SSSEmployerNumber
	case report.AgencyPhilHealth:
		if tenant.PhilHealthEmployerNumber == "" {
			return ""
		}
		return "PhilHealth Employer No.: " + tenant.PhilHealthEmployerNumber
	case report.AgencyPagIBIG:
		if tenant.PagIBIGEmployerNumber == "" {
			return ""
		}
		return "Pag-IBIG Employer ID: " + tenant.PagIBIGEmployerNumber
	}
	return ""
}
