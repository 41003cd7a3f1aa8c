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

// Alphalist schedule variants. The year-end alphabetical list of employees is
// split by category; the schedule is a required argument, never defaulted.
const (
	ScheduleTaxable    = "7.1" // employees with tax withheld
	ScheduleZeroTax    = "7.2" // employees whose annual withholding is exactly zero
	ScheduleTerminated = "7.3" // employees terminated within the year
)

// AlphalistGenerator produces the BIR year-end alphalist of employees.
type AlphalistGenerator struct {
	payrolls payroll.Repository
}

func NewAlphalistGenerator(payrolls payroll.Repository) *AlphalistGenerator {
	return &AlphalistGenerator{payrolls: payrolls}
}

func (g *AlphalistGenerator) Definition() report.Definition {
	return report.Definition{
		Agency:      report.AgencyBIR,
		Code:        "alphalist",
		Title:       "Annual Alphabetical List of Employees",
		Granularity: report.GranularityAnnual,
		Headers: []string{
			"No.", "TIN", "Employee Name", "Employment Status", "Gross Compensation",
			"Non-Taxable", "Taxable Compensation", "Tax Withheld",
		},
		Formats:   []report.Format{report.FormatExcel, report.FormatPDF, report.FormatCSV, report.FormatDAT},
		Schedules: []string{ScheduleTaxable, ScheduleZeroTax, ScheduleTerminated},
	}
}

func (g *AlphalistGenerator) GetData(ctx context.Context, tenant report.TenantContext, params report.Params) (*report.Dataset, error) {
	if err := params.Validate(report.GranularityAnnual); err != nil {
		return nil, err
	}
	keep, err := scheduleFilter(params.Schedule, params.Year)
	if err != nil {
		return nil, err
	}

	start, end := params.Window(report.GranularityAnnual)
	entries, err := g.payrolls.ListForWindow(ctx, tenant.CompanyID, start, end, params.DepartmentIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get payroll data: %w", err)
	}

	recs := aggregate.PayrollEntries(entries)
	recs = aggregate.RequireID(recs, func(r report.AggregatedEmployeeRecord) string { return r.TIN })

	var rows []report.Row
	var kept []report.AggregatedEmployeeRecord
	for _, r := range recs {
		if keep(r) {
			kept = append(kept, r)
			rows = append(rows, r)
		}
	}
	return &report.Dataset{Rows: rows, Totals: report.SumRecords(kept)}, nil
}

// scheduleFilter fails fast on an unrecognized schedule.
func scheduleFilter(schedule string, year int) (func(report.AggregatedEmployeeRecord) bool, error) {
	switch schedule {
	case ScheduleTaxable:
		return func(r report.AggregatedEmployeeRecord) bool {
			return r.WithholdingTax.IsPositive()
		}, nil
	case ScheduleZeroTax:
		return func(r report.AggregatedEmployeeRecord) bool {
			return r.WithholdingTax.IsZero()
		}, nil
	case ScheduleTerminated:
		return func(r report.AggregatedEmployeeRecord) bool {
			return r.TerminationDate != nil && r.TerminationDate.Year() == year
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", report.ErrInvalidSchedule, schedule)
}

func (g *AlphalistGenerator) GetSummary(ctx context.Context, tenant report.TenantContext, params report.Params) (*report.Totals, error) {
	ds, err := g.GetData(ctx, tenant, params)
	if err != nil {
		return nil, err
	}
	return &ds.Totals, nil
}

func (g *AlphalistGenerator) ExcelRow(row report.Row, seq int) []any {
	r := row.(report.AggregatedEmployeeRecord)
	return []any{
		seq, r.TIN, r.FullName(), r.EmploymentStatus,
		r.GrossCompensation, r.NonTaxable, r.Taxable, r.WithholdingTax,
	}
}

func (g *AlphalistGenerator) ExcelTotals(totals report.Totals) []any {
	return []any{
		"TOTAL", "", "", "",
		totals.GrossCompensation, totals.NonTaxable, totals.Taxable, totals.WithholdingTax,
	}
}

func (g *AlphalistGenerator) DATHeader(tenant report.TenantContext, year int) []string {
	return []string{
		"H", "ALPHALIST",
		export.DigitsOnly(tenant.TIN),
		strings.ToUpper(tenant.CompanyName),
		strings.ToUpper(tenant.Address),
		fmt.Sprintf("%04d", year),
	}
}

func (g *AlphalistGenerator) DATRow(row report.Row, seq int) []string {
	r := row.(report.AggregatedEmployeeRecord)
	return []string{
		"D", "ALPHALIST", fmt.Sprintf("%d", seq),
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

func (g *AlphalistGenerator) DATTrailer(totals report.Totals, year int) []string {
	return []string{
		"C", "ALPHALIST",
		fmt.Sprintf("%d", totals.EmployeeCount),
		totals.GrossCompensation.StringFixed(2),
		totals.WithholdingTax.StringFixed(2),
	}
}
