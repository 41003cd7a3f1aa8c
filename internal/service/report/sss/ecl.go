package sss

import (
	"context"
	"fmt"

	"github.com/talentohr/hris-backend-go/internal/domain/payroll"
	"github.com/talentohr/hris-backend-go/internal/domain/report"
	"github.com/talentohr/hris-backend-go/internal/service/report/aggregate"
	"github.com/talentohr/hris-backend-go/internal/service/report/export"
)

// eclRecordLength is fixed by the SSS bank-tellering spec; every line is
// exactly this long.
const eclRecordLength = 118

// ECL field widths, in positional order.
const (
	eclSSSNumberWidth = 10
	eclLastNameWidth  = 25
	eclFirstNameWidth = 25
	eclMiddleWidth    = 25
	eclSuffixWidth    = 5
	eclBirthWidth     = 8 // MMDDYYYY
	eclAmountWidth    = 10
)

// CollectionListGenerator produces the SSS electronic collection list, the
// fixed-width positional file submitted through accredited banks. It always
// emits a .txt file.
type CollectionListGenerator struct {
	payrolls payroll.Repository
}

func NewCollectionListGenerator(payrolls payroll.Repository) *CollectionListGenerator {
	return &CollectionListGenerator{payrolls: payrolls}
}

func (g *CollectionListGenerator) Definition() report.Definition {
	return report.Definition{
		Agency:      report.AgencySSS,
		Code:        "ecl",
		Title:       "SSS Electronic Collection List",
		Granularity: report.GranularityMonthly,
		Headers: []string{
			"SSS Number", "Last Name", "First Name", "Middle Name", "Suffix",
			"Birth Date", "SS Contribution", "EC Contribution",
		},
		Formats: []report.Format{report.FormatFixedWidth},
	}
}

func (g *CollectionListGenerator) GetData(ctx context.Context, tenant report.TenantContext, params report.Params) (*report.Dataset, error) {
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

func (g *CollectionListGenerator) GetSummary(ctx context.Context, tenant report.TenantContext, params report.Params) (*report.Totals, error) {
	ds, err := g.GetData(ctx, tenant, params)
	if err != nil {
		return nil, err
	}
	return &ds.Totals, nil
}

// ExcelRow exists to satisfy the generator contract for previews; the ECL
// itself is only ever serialized fixed-width.
func (g *CollectionListGenerator) ExcelRow(row report.Row, seq int) []any {
	r := row.(report.AggregatedEmployeeRecord)
	birth := ""
	if r.BirthDate != nil {
		birth = r.BirthDate.Format("2006-01-02")
	}
	ss := r.SSSEmployee.Add(r.SSSEmployer)
	return []any{r.SSSNumber, r.LastName, r.FirstName, r.MiddleName, r.Suffix, birth, ss, r.SSSEC}
}

func (g *CollectionListGenerator) RecordLength() int { return eclRecordLength }

// FixedWidthRow encodes one employee as the 118-character positional line:
// SSS number, name fields, birth date as MMDDYYYY (blank when absent), and
// the SS and EC amounts as cents with no decimal point.
func (g *CollectionListGenerator) FixedWidthRow(row report.Row) (string, error) {
	r, ok := row.(report.AggregatedEmployeeRecord)
	if !ok {
		return "", fmt.Errorf("unexpected row type %T", row)
	}

	birth := ""
	if r.BirthDate != nil {
		birth = r.BirthDate.Format("01022006")
	}

	line := export.PadRight(export.DigitsOnly(r.SSSNumber), eclSSSNumberWidth) +
		export.PadRight(export.AlphaOnly(r.LastName), eclLastNameWidth) +
		export.PadRight(export.AlphaOnly(r.FirstName), eclFirstNameWidth) +
		export.PadRight(export.AlphaOnly(r.MiddleName), eclMiddleWidth) +
		export.PadRight(export.AlphaOnly(r.Suffix), eclSuffixWidth) +
		export.PadRight(birth, eclBirthWidth) +
		export.ZeroPadAmount(r.SSSEmployee.Add(r.SSSEmployer), eclAmountWidth) +
		export.ZeroPadAmount(r.SSSEC, eclAmountWidth)

	return line, nil
}
