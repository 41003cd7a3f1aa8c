package export

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentohr/hris-backend-go/internal/domain/report"
)

// stubGenerator is a minimal form used to exercise the serializers.
type stubGenerator struct {
	formats    []report.Format
	withDAT    bool
	recordLen  int
	fixedLines map[string]string
}

type stubRow struct {
	Name   string
	Amount decimal.Decimal
}

func (s *stubGenerator) Definition() report.Definition {
	return report.Definition{
		Agency:      report.AgencySSS,
		Code:        "stub",
		Title:       "Stub Report",
		Granularity: report.GranularityMonthly,
		Headers:     []string{"No.", "Name", "Amount"},
		Formats:     s.formats,
	}
}

func (s *stubGenerator) GetData(ctx context.Context, tenant report.TenantContext, params report.Params) (*report.Dataset, error) {
	return nil, errors.New("not used")
}

func (s *stubGenerator) GetSummary(ctx context.Context, tenant report.TenantContext, params report.Params) (*report.Totals, error) {
	return nil, errors.New("not used")
}

func (s *stubGenerator) ExcelRow(row report.Row, seq int) []any {
	r := row.(stubRow)
	return []any{seq, r.Name, r.Amount}
}

// datStub adds the pipe-delimited encoding.
type datStub struct {
	stubGenerator
}

func (s *datStub) DATHeader(tenant report.TenantContext, year int) []string {
	return []string{"H", "STUB", tenant.TIN}
}

func (s *datStub) DATRow(row report.Row, seq int) []string {
	r := row.(stubRow)
	return []string{"D", r.Name, r.Amount.StringFixed(2)}
}

func (s *datStub) DATTrailer(totals report.Totals, year int) []string {
	return []string{"C", totals.GrossCompensation.StringFixed(2)}
}

// fixedStub adds a positional encoding with a 20-char record.
type fixedStub struct {
	stubGenerator
	line string
}

func (s *fixedStub) RecordLength() int { return 20 }

func (s *fixedStub) FixedWidthRow(row report.Row) (string, error) {
	return s.line, nil
}

var testParams = report.Params{Year: 2025, Month: 3}

func TestSerializeRejectsUndeclaredFormat(t *testing.T) {
	g := &stubGenerator{formats: []report.Format{report.FormatCSV}}

	_, err := Serialize(g, report.TenantContext{}, &report.Dataset{}, testParams, report.FormatPDF)
	require.Error(t, err)
	assert.ErrorIs(t, err, report.ErrUnsupportedExport)

	var ue *report.UnsupportedExportError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "stub", ue.Code)
	assert.Equal(t, report.FormatPDF, ue.Format)
}

func TestDATRejectsGeneratorWithoutEncoder(t *testing.T) {
	g := &stubGenerator{formats: []report.Format{report.FormatDAT}}

	_, err := Serialize(g, report.TenantContext{}, &report.Dataset{}, testParams, report.FormatDAT)
	assert.ErrorIs(t, err, report.ErrUnsupportedExport)
}

func TestDATOutput(t *testing.T) {
	g := &datStub{stubGenerator{formats: []report.Format{report.FormatDAT}}}
	ds := &report.Dataset{
		Rows: []report.Row{
			stubRow{Name: "SANTOS", Amount: decimal.RequireFromString("1500.5")},
			stubRow{Name: "REY|ES\r\n", Amount: decimal.RequireFromString("2000")},
		},
		Totals: report.Totals{GrossCompensation: decimal.RequireFromString("3500.5")},
	}

	file, err := DAT(g, report.TenantContext{TIN: "001234567000"}, ds, testParams)
	require.NoError(t, err)
	assert.Equal(t, "sss_stub_2025-03.dat", file.Name)

	lines := strings.Split(strings.TrimSuffix(string(file.Content), "\r\n"), "\r\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "H|STUB|001234567000", lines[0])
	// Money is always two decimal places.
	assert.Equal(t, "D|SANTOS|1500.50", lines[1])
	// Embedded delimiters and line breaks are stripped, not escaped.
	assert.Equal(t, "D|REYES|2000.00", lines[2])
	assert.Equal(t, "C|3500.50", lines[3])
}

func TestFixedWidthEnforcesRecordLength(t *testing.T) {
	ds := &report.Dataset{Rows: []report.Row{stubRow{Name: "X"}}}

	good := &fixedStub{
		stubGenerator: stubGenerator{formats: []report.Format{report.FormatFixedWidth}},
		line:          strings.Repeat("A", 20),
	}
	file, err := FixedWidth(good, report.TenantContext{}, ds, testParams)
	require.NoError(t, err)
	assert.Equal(t, "sss_stub_2025-03.txt", file.Name)
	assert.Equal(t, strings.Repeat("A", 20)+"\r\n", string(file.Content))

	short := &fixedStub{
		stubGenerator: stubGenerator{formats: []report.Format{report.FormatFixedWidth}},
		line:          strings.Repeat("A", 19),
	}
	_, err = FixedWidth(short, report.TenantContext{}, ds, testParams)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line length 19, want 20")
}

func TestCSVOutput(t *testing.T) {
	g := &stubGenerator{formats: []report.Format{report.FormatCSV}}
	ds := &report.Dataset{
		Rows: []report.Row{
			stubRow{Name: "SANTOS, JUAN", Amount: decimal.RequireFromString("1500.5")},
		},
	}

	file, err := CSV(g, report.TenantContext{}, ds, testParams)
	require.NoError(t, err)
	assert.Equal(t, "sss_stub_2025-03.csv", file.Name)

	content := string(file.Content)
	lines := strings.Split(strings.TrimSpace(content), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "No.,Name,Amount", strings.TrimSpace(lines[0]))
	// Comma inside a cell gets quoted by the writer.
	assert.Equal(t, `1,"SANTOS, JUAN",1500.50`, strings.TrimSpace(lines[1]))
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "SANTOS", cellString("SANTOS"))
	assert.Equal(t, "1500.50", cellString(decimal.RequireFromString("1500.5")))
	assert.Equal(t, "7", cellString(7))
	assert.Equal(t, "", cellString(nil))
	// Types without a dedicated case still render visibly.
	assert.Equal(t, "true", cellString(true))
}

func TestPadHelpers(t *testing.T) {
	assert.Equal(t, "ABC   ", PadRight("ABC", 6))
	assert.Equal(t, "ABC", PadRight("ABCDEF", 3))
	assert.Equal(t, "DELA CRUZ JR", AlphaOnly("Dela Cruz, Jr."))
	assert.Equal(t, "0000125050", ZeroPadAmount(decimal.RequireFromString("1250.50"), 10))
	assert.Equal(t, "0000000000", ZeroPadAmount(decimal.RequireFromString("-5"), 10))
	assert.Equal(t, "123456789", DigitsOnly("123-456-789"))
}

func TestFilename(t *testing.T) {
	def := report.Definition{Agency: report.AgencyBIR, Code: "1601c"}
	assert.Equal(t, "bir_1601c_2024-05.xlsx", Filename(def, report.FormatExcel, "2024-05"))
	assert.Equal(t, "bir_1601c_2024.dat", Filename(def, report.FormatDAT, "2024"))

	ecl := report.Definition{Agency: report.AgencySSS, Code: "ecl"}
	assert.Equal(t, "sss_ecl_2024-05.txt", Filename(ecl, report.FormatFixedWidth, "2024-05"))
}
