package bir

import (
	"context"
	"fmt"

	"github.com/talentohr/hris-backend-go/internal/domain/payroll"
	"github.com/talentohr/hris-backend-go/internal/domain/report"
	"github.com/talentohr/hris-backend-go/internal/service/report/aggregate"
)

// AnnualReturnGenerator produces BIR Form 1604-CF, the annual information
// return of income taxes withheld on compensation and final withholding
// taxes.
type AnnualReturnGenerator struct {
	payrolls payroll.Repository
}

func NewAnnualReturnGenerator(payrolls payroll.Repository) *AnnualReturnGenerator {
	return &AnnualReturnGenerator{payrolls: payrolls}
}

func (g *AnnualReturnGenerator) Definition() report.Definition {
	return report.Definition{
		Agency:      report.AgencyBIR,
		Code:        "1604cf",
		Title:       "Annual Information Return of Income Taxes Withheld on Compensation",
		Granularity: report.GranularityAnnual,
		Headers: []string{
			"No.", "TIN", "Employee Name", "Gross Compensation", "13th Month Pay",
			"De Minimis", "Non-Taxable", "Taxable Compensation", "Tax Withheld",
		},
		Formats: []report.Format{report.FormatExcel, report.FormatPDF, report.FormatCSV},
	}
}

func (g *AnnualReturnGenerator) GetData(ctx context.Context, tenant report.TenantContext, params report.Params) (*report.Dataset, error) {
	if err := params.Validate(report.GranularityAnnual); err != nil {
		return nil, err
	}

	start, end := params.Window(report.GranularityAnnual)
	entries, err := g.payrolls.ListForWindow(ctx, tenant.CompanyID, start, end, params.DepartmentIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get payroll data: %w", err)
	}

	// A full year of semi-monthly entries still collapses to one row per
	// employee.
	recs := aggregate.PayrollEntries(entries)
	recs = aggregate.RequireID(recs, func(r report.AggregatedEmployeeRecord) string { return r.TIN })

	rows := make([]report.Row, len(recs))
	for i := range recs {
		rows[i] = recs[i]
	}
	return &report.Dataset{Rows: rows, Totals: report.SumRecords(recs)}, nil
}

func (g *AnnualReturnGenerator) GetSummary(ctx context.Context, tenant report.TenantContext, params report.Params) (*report.Totals, error) {
	ds, err := g.GetData(ctx, tenant, params)
	if err != nil {
		return nil, err
	}
	return &ds.Totals, nil
}

func (g *AnnualReturnGenerator) ExcelRow(row report.Row, seq int) []any {
	r := row.(report.AggregatedEmployeeRecord)
	return []any{
		seq, r.TIN, r.FullName(), r.GrossCompensation, r.ThirteenthMonth,
		r.DeMinimis, r.NonTaxable, r.Taxable, r.WithholdingTax,
	}
}

func (g *AnnualReturnGenerator) ExcelTotals(totals report.Totals) []any {
	return []any{
		"TOTAL", "", "", totals.GrossCompensation, totals.ThirteenthMonth,
		totals.DeMinimis, totals.NonTaxable, totals.Taxable, totals.WithholdingTax,
	}
}
