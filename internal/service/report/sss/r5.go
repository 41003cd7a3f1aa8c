package sss

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/talentohr/hris-backend-go/internal/domain/payroll"
	"github.com/talentohr/hris-backend-go/internal/domain/report"
	"github.com/talentohr/hris-backend-go/internal/service/report/aggregate"
)

// RemittanceLine is one category line of the R-5 employer remittance return.
type RemittanceLine struct {
	Category string
	Employee decimal.Decimal
	Employer decimal.Decimal
	Total    decimal.Decimal
}

// RemittanceReturnGenerator produces the SSS R-5 employer contribution
// payment return: category totals rather than a per-employee listing.
type RemittanceReturnGenerator struct {
	payrolls payroll.Repository
}

func NewRemittanceReturnGenerator(payrolls payroll.Repository) *RemittanceReturnGenerator {
	return &RemittanceReturnGenerator{payrolls: payrolls}
}

func (g *RemittanceReturnGenerator) Definition() report.Definition {
	return report.Definition{
		Agency:      report.AgencySSS,
		Code:        "r5",
		Title:       "SSS R-5 Employer Contribution Payment Return",
		Granularity: report.GranularityMonthly,
		Headers:     []string{"Category", "EE Share", "ER Share", "Total"},
		Formats:     []report.Format{report.FormatExcel, report.FormatPDF, report.FormatCSV},
	}
}

func (g *RemittanceReturnGenerator) GetData(ctx context.Context, tenant report.TenantContext, params report.Params) (*report.Dataset, error) {
	if err := params.Validate(report.GranularityMonthly); err != nil {
		return nil, err
	}

	start, end := params.Window(report.GranularityMonthly)
	entries, err := g.payrolls.ListForWindow(ctx, tenant.CompanyID, start, end, params.DepartmentIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get payroll data: %w", err)
	}

	recs := aggregate.PayrollEntries(entries)
	recs = aggregate.RequireID(recs, func(r report.AggregatedEmployeeRecord) string { return r.SSSNumber })
	totals := report.SumRecords(recs)

	ss := RemittanceLine{
		Category: "SS Contributions",
		Employee: totals.SSSEmployee,
		Employer: totals.SSSEmployer,
		Total:    totals.SSSEmployee.Add(totals.SSSEmployer),
	}
	ec := RemittanceLine{
		Category: "EC Contributions",
		Employer: totals.SSSEC,
		Total:    totals.SSSEC,
	}

	return &report.Dataset{Rows: []report.Row{ss, ec}, Totals: totals}, nil
}

func (g *RemittanceReturnGenerator) GetSummary(ctx context.Context, tenant report.TenantContext, params report.Params) (*report.Totals, error) {
	ds, err := g.GetData(ctx, tenant, params)
	if err != nil {
		return nil, err
	}
	return &ds.Totals, nil
}

func (g *RemittanceReturnGenerator) ExcelRow(row report.Row, seq int) []any {
	l := row.(RemittanceLine)
	return []any{l.Category, l.Employee, l.Employer, l.Total}
}

func (g *RemittanceReturnGenerator) ExcelTotals(totals report.Totals) []any {
	grand := totals.SSSEmployee.Add(totals.SSSEmployer).Add(totals.SSSEC)
	return []any{"TOTAL", totals.SSSEmployee, totals.SSSEmployer.Add(totals.SSSEC), grand}
}
