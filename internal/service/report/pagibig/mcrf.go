package pagibig

import (
	"context"
	"fmt"

	"github.com/talentohr/hris-backend-go/internal/domain/payroll"
	"github.com/talentohr/hris-backend-go/internal/domain/report"
	"github.com/talentohr/hris-backend-go/internal/service/report/aggregate"
)

// ContributionGenerator produces the Pag-IBIG MCRF monthly membership savings
// remittance report.
type ContributionGenerator struct {
	payrolls payroll.Repository
}

func NewContributionGenerator(payrolls payroll.Repository) *ContributionGenerator {
	return &ContributionGenerator{payrolls: payrolls}
}

func (g *ContributionGenerator) Definition() report.Definition {
	return report.Definition{
		Agency:      report.AgencyPagIBIG,
		Code:        "mcrf",
		Title:       "Pag-IBIG Membership Savings Remittance Form (MCRF)",
		Granularity: report.GranularityMonthly,
		Headers: []string{
			"No.", "Pag-IBIG MID Number", "Employee Name", "TIN",
			"EE Share", "ER Share", "Total",
		},
		Formats: []report.Format{report.FormatExcel, report.FormatPDF, report.FormatCSV},
	}
}

func (g *ContributionGenerator) GetData(ctx context.Context, tenant report.TenantContext, params report.Params) (*report.Dataset, error) {
	if err := params.Validate(report.GranularityMonthly); err != nil {
		return nil, err
	}

	start, end := params.Window(report.GranularityMonthly)
	entries, err := g.payrolls.ListForWindow(ctx, tenant.CompanyID, start, end, params.DepartmentIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get payroll data: %w", err)
	}

	recs := aggregate.PayrollEntries(entries)
	recs = aggregate.RequireID(recs, func(r report.AggregatedEmployeeRecord) string { return r.PagIBIGNumber })

	rows := make([]report.Row, len(recs))
	for i := range recs {
		rows[i] = recs[i]
	}
	return &report.Dataset{Rows: rows, Totals: report.SumRecords(recs)}, nil
}

func (g *ContributionGenerator) GetSummary(ctx context.Context, tenant report.TenantContext, params report.Params) (*report.Totals, error) {
	ds, err := g.GetData(ctx, tenant, params)
	if err != nil {
		return nil, err
	}
	return &ds.Totals, nil
}

func (g *ContributionGenerator) ExcelRow(row report.Row, seq int) []any {
	r := row.(report.AggregatedEmployeeRecord)
	total := r.PagIBIGEmployee.Add(r.PagIBIGEmployer)
	return []any{seq, r.PagIBIGNumber, r.FullName(), r.TIN, r.PagIBIGEmployee, r.PagIBIGEmployer, total}
}

func (g *ContributionGenerator) ExcelTotals(totals report.Totals) []any {
	total := totals.PagIBIGEmployee.Add(totals.PagIBIGEmployer)
	return []any{"TOTAL", "", "", "", totals.PagIBIGEmployee, totals.PagIBIGEmployer, total}
}
