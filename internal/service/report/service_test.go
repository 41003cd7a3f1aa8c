package report

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentohr/hris-backend-go/internal/domain/report"
)

type fakeGenerator struct {
	code    string
	formats []report.Format
	rows    []report.Row
}

func (f *fakeGenerator) Definition() report.Definition {
	return report.Definition{
		Agency:      report.AgencyBIR,
		Code:        f.code,
		Title:       "Fake " + f.code,
		Granularity: report.GranularityMonthly,
		Headers:     []string{"No.", "Name"},
		Formats:     f.formats,
	}
}

func (f *fakeGenerator) GetData(ctx context.Context, tenant report.TenantContext, params report.Params) (*report.Dataset, error) {
	return &report.Dataset{Rows: f.rows, Totals: report.Totals{EmployeeCount: len(f.rows)}}, nil
}

func (f *fakeGenerator) GetSummary(ctx context.Context, tenant report.TenantContext, params report.Params) (*report.Totals, error) {
	return &report.Totals{EmployeeCount: len(f.rows)}, nil
}

func (f *fakeGenerator) ExcelRow(row report.Row, seq int) []any {
	return []any{seq, row.(string)}
}

func TestDispatcherUnknownCode(t *testing.T) {
	d := NewDispatcher(&fakeGenerator{code: "a"})

	_, err := d.Generator("nope")
	assert.ErrorIs(t, err, report.ErrUnknownReportType)

	_, err = d.Generate(context.Background(), report.TenantContext{}, "nope", report.FormatCSV, report.Params{})
	assert.ErrorIs(t, err, report.ErrUnknownReportType)
}

func TestDispatcherRegistrationOrder(t *testing.T) {
	d := NewDispatcher(
		&fakeGenerator{code: "zeta"},
		&fakeGenerator{code: "alpha"},
	)

	defs := d.AvailableReports()
	require.Len(t, defs, 2)
	assert.Equal(t, "zeta", defs[0].Code)
	assert.Equal(t, "alpha", defs[1].Code)
}

func TestDispatcherGenerateChecksDeclaredFormats(t *testing.T) {
	d := NewDispatcher(&fakeGenerator{code: "a", formats: []report.Format{report.FormatCSV}})

	_, err := d.Generate(context.Background(), report.TenantContext{}, "a", report.FormatDAT, report.Params{Year: 2025, Month: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, report.ErrUnsupportedExport)

	var ue *report.UnsupportedExportError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "a", ue.Code)
	assert.Equal(t, report.FormatDAT, ue.Format)
}

func TestDispatcherGenerateCSV(t *testing.T) {
	d := NewDispatcher(&fakeGenerator{
		code:    "a",
		formats: []report.Format{report.FormatCSV},
		rows:    []report.Row{"SANTOS", "REYES"},
	})

	file, err := d.Generate(context.Background(), report.TenantContext{}, "a", report.FormatCSV, report.Params{Year: 2025, Month: 6})
	require.NoError(t, err)
	assert.Equal(t, "bir_a_2025-06.csv", file.Name)
	assert.Equal(t, "text/csv", file.ContentType)
	assert.NotEmpty(t, file.Content)
}

func TestDispatcherPreviewLimit(t *testing.T) {
	rows := make([]report.Row, 80)
	for i := range rows {
		rows[i] = "EMP"
	}
	d := NewDispatcher(&fakeGenerator{code: "a", rows: rows})

	// Default limit applies when the caller sends none.
	p, err := d.Preview(context.Background(), report.TenantContext{}, "a", report.Params{Year: 2025, Month: 1})
	require.NoError(t, err)
	assert.Len(t, p.Rows, 50)
	assert.Equal(t, 80, p.TotalRows)

	p, err = d.Preview(context.Background(), report.TenantContext{}, "a", report.Params{Year: 2025, Month: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, p.Rows, 10)
	assert.Equal(t, 80, p.TotalRows)
}

func TestDispatcherAvailablePeriods(t *testing.T) {
	d := NewDispatcher(&fakeGenerator{code: "a"})

	periods := d.AvailablePeriods()
	require.NotEmpty(t, periods.Years)
	assert.Equal(t, 2020, periods.Years[len(periods.Years)-1])
	assert.Len(t, periods.Months, 12)
	assert.Len(t, periods.Quarters, 4)
}
