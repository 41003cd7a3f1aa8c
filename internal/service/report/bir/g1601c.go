package bir

import (
	"context"
	"fmt"
	"strings"

	"github.com/talentohr/hris-backend-go/internal/domain/payroll"
	"github.com/talentohr/hris-backend-go/internal/domain/report"
	"github.com/talentohr/hris-backend-go/internal/service/report/aggregate"
	"github.com/talentohr/hris-backend-go/internal/service/report/export"
)

// MonthlyRemittanceGenerator produces BIR Form 1601-C, the monthly remittance
// return of income taxes withheld on compensation.
type MonthlyRemittanceGenerator struct {
	payrolls payroll.Repository
}

func NewMonthlyRemittanceGenerator(payrolls payroll.Repository) *MonthlyRemittanceGenerator {
	return &MonthlyRemittanceGenerator{payrolls: payrolls}
}

func (g *MonthlyRemittanceGenerator) Definition() report.Definition {
	return report.Definition{
		Agency:      report.AgencyBIR,
		Code:        "1601c",
		Title:       "Monthly Remittance Return of Income Taxes Withheld on Compensation",
		Granularity: report.GranularityMonthly,
		Headers: []string{
			"No.", "TIN", "Employee Name", "Gross Compensation",
			"Non-Taxable", "Taxable Compensation", "Tax Withheld",
		},
		Formats: []report.Format{report.FormatExcel, report.FormatPDF, report.FormatCSV, report.FormatDAT},
	}
}

func (g *MonthlyRemittanceGenerator) GetData(ctx context.Context, tenant report.TenantContext, params report.Params) (*report.Dataset, error) {
	if err := params.Validate(report.GranularityMonthly); err != nil {
		return nil, err
	}

	start, end := params.Window(report.GranularityMonthly)
	entries, err := g.payrolls.ListForWindow(ctx, tenant.CompanyID, start, end, params.DepartmentIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get payroll data: %w", err)
	}

	recs := aggregate.PayrollEntries(entries)
	recs = aggregate.RequireID(recs, func(r report.AggregatedEmployeeRecord) string { return r.TIN })

	rows := make([]report.Row, len(recs))
	for i := range recs {
		rows[i] = recs[i]
	}
	return &report.Dataset{Rows: rows, Totals: report.SumRecords(recs)}, nil
}

func (g *MonthlyRemittanceGenerator) GetSummary(ctx context.Context, tenant report.TenantContext, params report.Params) (*report.Totals, error) {
	ds, err := g.GetData(ctx, tenant, params)
	if err != nil {
		return nil, err
	}
	return &ds.Totals, nil
}

func (g *MonthlyRemittanceGenerator) ExcelRow(row report.Row, seq int) []any {
	r := row.(report.AggregatedEmployeeRecord)
	return []any{
		seq, r.TIN, r.FullName(),
		r.GrossCompensation, r.NonTaxable, r.Taxable, r.WithholdingTax,
	}
}

func (g *MonthlyRemittanceGenerator) ExcelTotals(totals report.Totals) []any {
	return []any{
		"TOTAL", "", "",
		totals.GrossCompensation, totals.NonTaxable, totals.Taxable, totals.WithholdingTax,
	}
}

func (g *MonthlyRemittanceGenerator) DATHeader(tenant report.TenantContext, year int) []string {
	return []string{
		"H", "1601C",
		export.DigitsOnly(tenant.TIN),
		strings.ToUpper(tenant.CompanyName),
		strings.ToUpper(tenant.Address),
		fmt.Sprintf("%04d", year),
	}
}

func (g *MonthlyRemittanceGenerator) DATRow(row report.Row, seq int) []string {
	r := row.(report.AggregatedEmployeeRecord)
	return []string{
		"D", "1601C", fmt.Sprintf("%d", seq),
		export.DigitsOnly(r.TIN),
		strings.ToUpper(r.LastName),
		strings.ToUpper(r.FirstName),
		strings.ToUpper(r.MiddleName),
		r.GrossCompensation.StringFixed(2),
		r.NonTaxable.StringFixed(2),
		r.Taxable.StringFixed(2),
		r.WithholdingTax.StringFixed(2),
	}
}

func (g *MonthlyRemittanceGenerator) DATTrailer(totals report.Totals, year int) []string {
	return []string{
		"C", "1601C",
		fmt.Sprintf("%d", totals.EmployeeCount),
		totals.GrossCompensation.StringFixed(2),
		totals.Taxable.StringFixed(2),
		totals.WithholdingTax.StringFixed(2),
	}
}
