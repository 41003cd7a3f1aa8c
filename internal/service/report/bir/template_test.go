package bir

import (
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentohr/hris-backend-go/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

// writeTemplate drops a minimal stand-in for the official 2316 workbook into
// a temp dir and returns its path.
func writeTemplate(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	path := filepath.Join(t.TempDir(), "2316_template.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestNewTemplateFillerMissingFile(t *testing.T) {
	_, err := NewTemplateFiller("")
	assert.ErrorIs(t, err, report.ErrTemplateNotFound)

	_, err = NewTemplateFiller(filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.ErrorIs(t, err, report.ErrTemplateNotFound)
}

func TestValidateCellTable(t *testing.T) {
	zero := func(r report.AggregatedEmployeeRecord) decimal.Decimal { return decimal.Zero }

	require.NoError(t, validateCellTable("ok", []templateCell{
		{Item: 1, Row: 10, Value: zero},
		{Item: 2, Row: 11, Value: zero},
	}))

	err := validateCellTable("dup-item", []templateCell{
		{Item: 1, Row: 10, Value: zero},
		{Item: 1, Row: 11, Value: zero},
	})
	assert.ErrorContains(t, err, "duplicate item 1")

	err = validateCellTable("dup-row", []templateCell{
		{Item: 1, Row: 10, Value: zero},
		{Item: 2, Row: 10, Value: zero},
	})
	assert.ErrorContains(t, err, "duplicate row 10")

	err = validateCellTable("gap", []templateCell{
		{Item: 1, Row: 10, Value: zero},
		{Item: 3, Row: 11, Value: zero},
	})
	assert.ErrorContains(t, err, "missing item 2")

	err = validateCellTable("nil-value", []templateCell{
		{Item: 1, Row: 10},
	})
	assert.ErrorContains(t, err, "no value mapping")

	assert.Error(t, validateCellTable("empty", nil))
}

func TestShippedCellTablesAreValid(t *testing.T) {
	require.NoError(t, validateCellTable("Part IV-A", partIVA))
	require.NoError(t, validateCellTable("Part IV-B", partIVB))
}

func TestSanitizeSheetName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"SANTOS_JUAN", "SANTOS_JUAN"},
		{"DELA CRUZ/REYES", "DELA CRUZ_REYES"},
		{`A\B?C*D[E]F:G'H`, "A_B_C_D_E_F_G_H"},
		{"  TRIMMED  ", "TRIMMED"},
		{"ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789", "ABCDEFGHIJKLMNOPQRSTUVWXYZ01234"},
		// Truncation must not split a multibyte rune mid-sequence.
		{strings.Repeat("Ñ", 40), strings.Repeat("Ñ", 31)},
	}
	for _, c := range cases {
		got := SanitizeSheetName(c.in)
		assert.Equal(t, c.want, got)
		assert.LessOrEqual(t, utf8.RuneCountInString(got), 31)
		assert.True(t, utf8.ValidString(got))
	}
}

func TestUniqueSheetName(t *testing.T) {
	used := map[string]bool{}
	assert.Equal(t, "Santos_Juan", uniqueSheetName("Santos_Juan", used))

	used["Santos_Juan"] = true
	assert.Equal(t, "Santos_Juan_2", uniqueSheetName("Santos_Juan", used))

	used["Santos_Juan_2"] = true
	assert.Equal(t, "Santos_Juan_3", uniqueSheetName("Santos_Juan", used))

	// A base already at the cap is shortened to fit the suffix.
	long := strings.Repeat("A", 31)
	used[long] = true
	got := uniqueSheetName(long, used)
	assert.Equal(t, strings.Repeat("A", 29)+"_2", got)
	assert.LessOrEqual(t, utf8.RuneCountInString(got), 31)
}

func certRecord(employeeID string) report.AggregatedEmployeeRecord {
	return report.AggregatedEmployeeRecord{
		EmployeeID:        employeeID,
		LastName:          "Santos",
		FirstName:         "Juan",
		TIN:               "123-456-789-000",
		GrossCompensation: decimal.RequireFromString("600000"),
		ThirteenthMonth:   decimal.RequireFromString("50000"),
		DeMinimis:         decimal.RequireFromString("10000"),
		NonTaxable:        decimal.RequireFromString("60000"),
		Taxable:           decimal.RequireFromString("500000"),
		WithholdingTax:    decimal.RequireFromString("75000"),
	}
}

func TestTemplateFillerSingle(t *testing.T) {
	filler, err := NewTemplateFiller(writeTemplate(t))
	require.NoError(t, err)

	tenant := report.TenantContext{
		CompanyID:   "c1",
		CompanyName: "Acme Manila Inc",
		Address:     "Makati City",
		TIN:         "000-111-222-000",
	}

	f, err := filler.Single(tenant, certRecord("e1"), 2025)
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(0)

	year, err := f.GetCellValue(sheet, identityCells.Year)
	require.NoError(t, err)
	assert.Equal(t, "2025", year)

	name, err := f.GetCellValue(sheet, identityCells.EmployeeName)
	require.NoError(t, err)
	assert.Equal(t, "SANTOS, JUAN", name)

	employer, err := f.GetCellValue(sheet, identityCells.EmployerName)
	require.NoError(t, err)
	assert.Equal(t, "ACME MANILA INC", employer)

	// Item 19, gross compensation, lands in the Part IV-A amount column.
	gross, err := f.GetCellValue(sheet, partIVAColumn+"36")
	require.NoError(t, err)
	assert.Equal(t, "600000", gross)

	// Item 34, exempt 13th month, lands in the Part IV-B amount column.
	exempt, err := f.GetCellValue(sheet, partIVBColumn+"53")
	require.NoError(t, err)
	assert.Equal(t, "50000", exempt)
}

func TestTemplateFillerBatch(t *testing.T) {
	filler, err := NewTemplateFiller(writeTemplate(t))
	require.NoError(t, err)

	recs := []report.AggregatedEmployeeRecord{
		certRecord("e1"),
		{
			EmployeeID: "e2",
			LastName:   "Reyes",
			FirstName:  "Maria",
			TIN:        "222-333-444-000",
		},
	}

	f, err := filler.Batch(report.TenantContext{CompanyName: "Acme"}, recs, 2025)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	require.Len(t, sheets, 2)
	assert.Contains(t, sheets, "Santos_Juan")
	assert.Contains(t, sheets, "Reyes_Maria")

	tin, err := f.GetCellValue("Reyes_Maria", identityCells.EmployeeTIN)
	require.NoError(t, err)
	assert.Equal(t, "222-333-444-000", tin)
}

func TestTemplateFillerBatchHomonyms(t *testing.T) {
	filler, err := NewTemplateFiller(writeTemplate(t))
	require.NoError(t, err)

	first := certRecord("e1")
	second := certRecord("e2")
	second.TIN = "987-654-321-000"

	f, err := filler.Batch(report.TenantContext{CompanyName: "Acme"}, []report.AggregatedEmployeeRecord{first, second}, 2025)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	require.Len(t, sheets, 2)
	assert.Contains(t, sheets, "Santos_Juan")
	assert.Contains(t, sheets, "Santos_Juan_2")

	// Each namesake keeps their own certificate.
	tin, err := f.GetCellValue("Santos_Juan", identityCells.EmployeeTIN)
	require.NoError(t, err)
	assert.Equal(t, "123-456-789-000", tin)

	tin, err = f.GetCellValue("Santos_Juan_2", identityCells.EmployeeTIN)
	require.NoError(t, err)
	assert.Equal(t, "987-654-321-000", tin)
}

func TestTemplateFillerBatchEmpty(t *testing.T) {
	filler, err := NewTemplateFiller(writeTemplate(t))
	require.NoError(t, err)

	_, err = filler.Batch(report.TenantContext{}, nil, 2025)
	assert.ErrorIs(t, err, report.ErrNoDataFound)
}

func TestExcessThirteenthMonth(t *testing.T) {
	under := report.AggregatedEmployeeRecord{ThirteenthMonth: decimal.RequireFromString("50000")}
	assert.True(t, exempt13th(under).Equal(decimal.RequireFromString("50000")))
	assert.True(t, excess13th(under).IsZero())

	over := report.AggregatedEmployeeRecord{ThirteenthMonth: decimal.RequireFromString("120000")}
	assert.True(t, exempt13th(over).Equal(decimal.RequireFromString("90000")))
	assert.True(t, excess13th(over).Equal(decimal.RequireFromString("30000")))
}
