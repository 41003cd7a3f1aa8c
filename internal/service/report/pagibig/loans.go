package pagibig

import (
	"context"
	"fmt"

	"github.com/talentohr/hris-backend-go/internal/domain/loan"
	"github.com/talentohr/hris-backend-go/internal/domain/report"
	"github.com/talentohr/hris-backend-go/internal/service/report/aggregate"
)

// loanRemittanceGenerator is the shared body of the STL and HDL remittance
// reports. Both list amortization payments collected through payroll for one
// Pag-IBIG loan program over a month.
type loanRemittanceGenerator struct {
	loans loan.Repository
	def   report.Definition
	types []loan.Type
}

var loanHeaders = []string{
	"No.", "Pag-IBIG MID Number", "Employee Name", "Loan Reference Number",
	"Principal", "Amount Remitted", "Outstanding Balance",
}

// NewShortTermLoanGenerator builds the Pag-IBIG STL remittance report.
func NewShortTermLoanGenerator(loans loan.Repository) report.Generator {
	return &loanRemittanceGenerator{
		loans: loans,
		def: report.Definition{
			Agency:      report.AgencyPagIBIG,
			Code:        "stl",
			Title:       "Pag-IBIG Short-Term Loan Remittance Report",
			Granularity: report.GranularityMonthly,
			Headers:     loanHeaders,
			Formats:     []report.Format{report.FormatExcel, report.FormatPDF, report.FormatCSV},
		},
		types: []loan.Type{loan.TypePagIBIGShort},
	}
}

// NewHousingLoanGenerator builds the Pag-IBIG HDL remittance report.
func NewHousingLoanGenerator(loans loan.Repository) report.Generator {
	return &loanRemittanceGenerator{
		loans: loans,
		def: report.Definition{
			Agency:      report.AgencyPagIBIG,
			Code:        "hdl",
			Title:       "Pag-IBIG Housing Loan Remittance Report",
			Granularity: report.GranularityMonthly,
			Headers:     loanHeaders,
			Formats:     []report.Format{report.FormatExcel, report.FormatPDF, report.FormatCSV},
		},
		types: []loan.Type{loan.TypePagIBIGHousing},
	}
}

func (g *loanRemittanceGenerator) Definition() report.Definition {
	return g.def
}

func (g *loanRemittanceGenerator) GetData(ctx context.Context, tenant report.TenantContext, params report.Params) (*report.Dataset, error) {
	if err := params.Validate(report.GranularityMonthly); err != nil {
		return nil, err
	}

	start, end := params.Window(report.GranularityMonthly)
	pays, err := g.loans.ListForWindow(ctx, tenant.CompanyID, g.types, start, end, params.DepartmentIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get loan payments: %w", err)
	}

	recs := aggregate.LoanPayments(pays)
	recs = aggregate.RequireLoanID(recs, func(r report.LoanRemittanceRecord) string { return r.PagIBIGNumber })

	rows := make([]report.Row, len(recs))
	for i := range recs {
		rows[i] = recs[i]
	}
	return &report.Dataset{Rows: rows, Totals: report.SumLoanRecords(recs)}, nil
}

func (g *loanRemittanceGenerator) GetSummary(ctx context.Context, tenant report.TenantContext, params report.Params) (*report.Totals, error) {
	ds, err := g.GetData(ctx, tenant, params)
	if err != nil {
		return nil, err
	}
	return &ds.Totals, nil
}

func (g *loanRemittanceGenerator) ExcelRow(row report.Row, seq int) []any {
	r := row.(report.LoanRemittanceRecord)
	return []any{seq, r.PagIBIGNumber, r.FullName(), r.ReferenceNumber, r.Principal, r.AmountPaid, r.Balance}
}

func (g *loanRemittanceGenerator) ExcelTotals(totals report.Totals) []any {
	return []any{"TOTAL", "", "", "", "", totals.LoanAmount, totals.LoanBalance}
}
