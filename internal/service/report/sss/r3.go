package sss

import (
	"context"
	"fmt"
	"strings"

	"github.com/talentohr/hris-backend-go/internal/domain/payroll"
	"github.com/talentohr/hris-backend-go/internal/domain/report"
	"github.com/talentohr/hris-backend-go/internal/service/report/aggregate"
	"github.com/talentohr/hris-backend-go/internal/service/report/export"
)

// ContributionListGenerator produces the SSS R-3 monthly contribution
// collection list.
type ContributionListGenerator struct {
	payrolls payroll.Repository
}

func NewContributionListGenerator(payrolls payroll.Repository) *ContributionListGenerator {
	return &ContributionListGenerator{payrolls: payrolls}
}

func (g *ContributionListGenerator) Definition() report.Definition {
	return report.Definition{
		Agency:      report.AgencySSS,
		Code:        "r3",
		Title:       "SSS R-3 Contribution Collection List",
		Granularity: report.GranularityMonthly,
		Headers: []string{
			"No.", "SSS Number", "Employee Name", "EE Contribution",
			"ER Contribution", "EC Contribution", "Total",
		},
		Formats: []report.Format{report.FormatExcel, report.FormatPDF, report.FormatCSV, report.FormatDAT},
	}
}

func (g *ContributionListGenerator) GetData(ctx context.Context, tenant report.TenantContext, params report.Params) (*report.Dataset, error) {
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

	rows := make([]report.Row, len(recs))
	for i := range recs {
		rows[i] = recs[i]
	}
	return &report.Dataset{Rows: rows, Totals: report.SumRecords(recs)}, nil
}

func (g *ContributionListGenerator) GetSummary(ctx context.Context, tenant report.TenantContext, params report.Params) (*report.Totals, error) {
	ds, err := g.GetData(ctx, tenant, params)
	if err != nil {
		return nil, err
	}
	return &ds.Totals, nil
}

func (g *ContributionListGenerator) ExcelRow(row report.Row, seq int) []any {
	r := row.(report.AggregatedEmployeeRecord)
	total := r.SSSEmployee.Add(r.SSSEmployer).Add(r.SSSEC)
	return []any{seq, r.SSSNumber, r.FullName(), r.SSSEmployee, r.SSSEmployer, r.SSSEC, total}
}

func (g *ContributionListGenerator) ExcelTotals(totals report.Totals) []any {
	total := totals.SSSEmployee.Add(totals.SSSEmployer).Add(totals.SSSEC)
	return []any{"TOTAL", "", "", totals.SSSEmployee, totals.SSSEmployer, totals.SSSEC, total}
}

func (g *ContributionListGenerator) DATHeader(tenant report.TenantContext, year int) []string {
	return []string{
		"H", "R3",
		export.DigitsOnly(tenant.SSSEmployerNumber),
		strings.ToUpper(tenant.CompanyName),
		strings.ToUpper(tenant.Address),
		fmt.Sprintf("%04d", year),
	}
}

func (g *ContributionListGenerator) DATRow(row report.Row, seq int) []string {
	r := row.(report.AggregatedEmployeeRecord)
	return []string{
		"D", "R3", fmt.Sprintf("%d", seq),
		export.DigitsOnly(r.SSSNumber),
		strings.ToUpper(r.LastName),
		strings.ToUpper(r.FirstName),
		strings.ToUpper(r.MiddleName),
		r.SSSEmployee.StringFixed(2),
		r.SSSEmployer.StringFixed(2),
		r.SSSEC.StringFixed(2),
	}
}

func (g *ContributionListGenerator) DATTrailer(totals report.Totals, year int) []string {
	return []string{
		"C", "R3",
		fmt.Sprintf("%d", totals.EmployeeCount),
		totals.SSSEmployee.StringFixed(2),
		totals.SSSEmployer.StringFixed(2),
		totals.SSSEC.StringFixed(2),
	}
}
