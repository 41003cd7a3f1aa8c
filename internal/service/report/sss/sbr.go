package sss

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/talentohr/hris-backend-go/internal/domain/payroll"
	"github.com/talentohr/hris-backend-go/internal/domain/report"
	"github.com/talentohr/hris-backend-go/internal/service/report/aggregate"
)

// BankReceiptDetail is the single detail line of the special bank receipt.
type BankReceiptDetail struct {
	EmployerNumber string
	EmployerName   string
	Period         string
	EmployeeCount  int
	TotalAmount    decimal.Decimal
}

// BankReceiptGenerator produces the SSS SBR (special bank receipt) detail
// used when remitting over the counter.
type BankReceiptGenerator struct {
	payrolls payroll.Repository
}

func NewBankReceiptGenerator(payrolls payroll.Repository) *BankReceiptGenerator {
	return &BankReceiptGenerator{payrolls: payrolls}
}

func (g *BankReceiptGenerator) Definition() report.Definition {
	return report.Definition{
		Agency:      report.AgencySSS,
		Code:        "sbr",
		Title:       "SSS Special Bank Receipt Details",
		Granularity: report.GranularityMonthly,
		Headers:     []string{"Employer Number", "Employer Name", "Applicable Period", "Employees", "Amount Due"},
		Formats:     []report.Format{report.FormatExcel, report.FormatPDF, report.FormatCSV},
	}
}

func (g *BankReceiptGenerator) GetData(ctx context.Context, tenant report.TenantContext, params report.Params) (*report.Dataset, error) {
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

	detail := BankReceiptDetail{
		EmployerNumber: tenant.SSSEmployerNumber,
		EmployerName:   tenant.CompanyName,
		Period:         params.PeriodLabel(report.GranularityMonthly),
		EmployeeCount:  totals.EmployeeCount,
		TotalAmount:    totals.SSSEmployee.Add(totals.SSSEmployer).Add(totals.SSSEC),
	}

	return &report.Dataset{Rows: []report.Row{detail}, Totals: totals}, nil
}

func (g *BankReceiptGenerator) GetSummary(ctx context.Context, tenant report.TenantContext, params report.Params) (*report.Totals, error) {
	ds, err := g.GetData(ctx, tenant, params)
	if err != nil {
		return nil, err
	}
	return &ds.Totals, nil
}

func (g *BankReceiptGenerator) ExcelRow(row report.Row, seq int) []any {
	d := row.(BankReceiptDetail)
	return []any{d.EmployerNumber, d.EmployerName, d.Period, d.EmployeeCount, d.TotalAmount}
}
