package philhealth

import (
	"context"
	"fmt"

	"github.com/talentohr/hris-backend-go/internal/domain/payroll"
	"github.com/talentohr/hris-backend-go/internal/domain/report"
	"github.com/talentohr/hris-backend-go/internal/service/report/aggregate"
)

// RemittanceGenerator produces the PhilHealth RF-1 monthly remittance
// report.
type RemittanceGenerator struct {
	payrolls payroll.Repository
}

func NewRemittanceGenerator(payrolls payroll.Repository) *RemittanceGenerator {
	return &RemittanceGenerator{payrolls: payrolls}
}

func (g *RemittanceGenerator) Definition() report.Definition {
	return report.Definition{
		Agency:      report.AgencyPhilHealth,
		Code:        "rf1",
		Title:       "PhilHealth RF-1 Employer Remittance Report",
		Granularity: report.GranularityMonthly,
		Headers: []string{
			"No.", "PhilHealth Number", "Employee Name", "EE Premium", "ER Premium", "Total Premium",
		},
		Formats: []report.Format{report.FormatExcel, report.FormatPDF, report.FormatCSV},
	}
}

func (g *RemittanceGenerator) GetData(ctx context.Context, tenant report.TenantContext, params report.Params) (*report.Dataset, error) {
	if err := params.Validate(report.GranularityMonthly); err != nil {
		return nil, err
	}

	start, end := params.Window(report.GranularityMonthly)
	entries, err := g.payrolls.ListForWindow(ctx, tenant.CompanyID, start, end, params.DepartmentIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get payroll data: %w", err)
	}

	recs := aggregate.PayrollEntries(entries)
	recs = aggregate.RequireID(recs, func(r report.AggregatedEmployeeRecord) string { return r.PhilHealthNumber })

	rows := make([]report.Row, len(recs))
	for i := range recs {
		rows[i] = recs[i]
	}
	return &report.Dataset{Rows: rows, Totals: report.SumRecords(recs)}, nil
}

func (g *RemittanceGenerator) GetSummary(ctx context.Context, tenant report.TenantContext, params report.Params) (*report.Totals, error) {
	ds, err := g.GetData(ctx, tenant, params)
	if err != nil {
		return nil, err
	}
	return &ds.Totals, nil
}

func (g *RemittanceGenerator) ExcelRow(row report.Row, seq int) []any {
	r := row.(report.AggregatedEmployeeRecord)
	total := r.PhilHealthEmployee.Add(r.PhilHealthEmployer)
	return []any{seq, r.PhilHealthNumber, r.FullName(), r.PhilHealthEmployee, r.PhilHealthEmployer, total}
}

func (g *RemittanceGenerator) ExcelTotals(totals report.Totals) []any {
	total := totals.PhilHealthEmployee.Add(totals.PhilHealthEmployer)
	return []any{"TOTAL", "", "", totals.PhilHealthEmployee, totals.PhilHealthEmployer, total}
}
