package export

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentohr/hris-backend-go/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

func TestExcelLayout(t *testing.T) {
	g := &stubGenerator{formats: []report.Format{report.FormatExcel}}
	ds := &report.Dataset{
		Rows: []report.Row{
			stubRow{Name: "SANTOS", Amount: decimal.RequireFromString("1500.5")},
			stubRow{Name: "REYES", Amount: decimal.RequireFromString("2000")},
		},
	}
	tenant := report.TenantContext{CompanyName: "Acme Manila Inc"}

	file, err := Excel(g, tenant, ds, testParams)
	require.NoError(t, err)
	assert.Equal(t, "sss_stub_2025-03.xlsx", file.Name)

	wb, err := excelize.OpenReader(bytes.NewReader(file.Content))
	require.NoError(t, err)
	defer wb.Close()

	get := func(cell string) string {
		v, err := wb.GetCellValue(excelSheet, cell, excelize.Options{RawCellValue: true})
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Acme Manila Inc", get("A1"))
	assert.Equal(t, "Stub Report", get("A2"))
	assert.Equal(t, "For the month of March 2025", get("A3"))

	// No employer registration number on file: header row stays at 5.
	assert.Equal(t, "No.", get("A5"))
	assert.Equal(t, "Name", get("B5"))
	assert.Equal(t, "Amount", get("C5"))

	assert.Equal(t, "1", get("A6"))
	assert.Equal(t, "SANTOS", get("B6"))
	assert.Equal(t, "1500.5", get("C6"))
	assert.Equal(t, "REYES", get("B7"))

	// No TotalsMapper: bare label row.
	assert.Equal(t, "TOTAL", get("A8"))
}

func TestExcelRegistrationLineShiftsHeader(t *testing.T) {
	g := &stubGenerator{formats: []report.Format{report.FormatExcel}}
	tenant := report.TenantContext{
		CompanyName:       "Acme Manila Inc",
		SSSEmployerNumber: "03-9012345-6",
	}

	file, err := Excel(g, tenant, &report.Dataset{}, testParams)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(file.Content))
	require.NoError(t, err)
	defer wb.Close()

	reg, err := wb.GetCellValue(excelSheet, "A4")
	require.NoError(t, err)
	assert.Equal(t, "Employer SSS No.: 03-9012345-6", reg)

	header, err := wb.GetCellValue(excelSheet, "A6")
	require.NoError(t, err)
	assert.Equal(t, "No.", header)
}

func TestPDFOutput(t *testing.T) {
	g := &stubGenerator{formats: []report.Format{report.FormatPDF}}
	ds := &report.Dataset{
		Rows: []report.Row{stubRow{Name: "SANTOS", Amount: decimal.RequireFromString("1500.5")}},
	}

	file, err := PDF(g, report.TenantContext{CompanyName: "Acme"}, ds, testParams)
	require.NoError(t, err)
	assert.Equal(t, "sss_stub_2025-03.pdf", file.Name)
	assert.True(t, bytes.HasPrefix(file.Content, []byte("%PDF")))
}

func TestColumnSizes(t *testing.T) {
	assert.Equal(t, []int{12}, columnSizes(1))
	assert.Equal(t, []int{4, 4, 4}, columnSizes(3))
	assert.Equal(t, []int{4, 2, 2, 2, 2}, columnSizes(5))
	assert.Equal(t, []int{5, 1, 1, 1, 1, 1, 1, 1}, columnSizes(8))
	assert.Nil(t, columnSizes(0))

	for n := 1; n <= pdfMaxColumns; n++ {
		total := 0
		for _, s := range columnSizes(n) {
			total += s
		}
		assert.Equal(t, pdfMaxColumns, total, "n=%d", n)
	}
}
