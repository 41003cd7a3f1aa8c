package aggregate

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/talentohr/hris-backend-go/internal/domain/loan"
	"github.com/talentohr/hris-backend-go/internal/domain/payroll"
	"github.com/talentohr/hris-backend-go/internal/domain/report"
)

// ThirteenthMonthCap is the statutory ceiling on tax-exempt 13th-month pay
// and other benefits (TRAIN law, PHP 90,000).
var ThirteenthMonthCap = decimal.NewFromInt(90000)

// Less orders two aggregated records. The default is surname order.
type Less func(a, b report.AggregatedEmployeeRecord) bool

func bySurname(a, b report.AggregatedEmployeeRecord) bool {
	al, bl := strings.ToUpper(a.LastName), strings.ToUpper(b.LastName)
	if al != bl {
		return al < bl
	}
	return strings.ToUpper(a.FirstName) < strings.ToUpper(b.FirstName)
}

// PayrollEntries collapses payroll entries into exactly one record per
// employee, summing every monetary field and deriving the tax split. Draft
// and voided entries are skipped silently. The transform is pure: it reads
// the slice and returns fresh records.
func PayrollEntries(entries []payroll.Entry, order ...Less) []report.AggregatedEmployeeRecord {
	byEmployee := make(map[string]*report.AggregatedEmployeeRecord)
	var ids []string

	for _, e := range entries {
		if !e.Status.Countable() {
			continue
		}

		rec, ok := byEmployee[e.EmployeeID]
		if !ok {
			rec = &report.AggregatedEmployeeRecord{
				EmployeeID:       e.EmployeeID,
				EmployeeCode:     e.EmployeeCode,
				LastName:         e.LastName,
				FirstName:        e.FirstName,
				MiddleName:       e.MiddleName,
				Suffix:           e.Suffix,
				TIN:              e.TIN,
				SSSNumber:        e.SSSNumber,
				PhilHealthNumber: e.PhilHealthNumber,
				PagIBIGNumber:    e.PagIBIGNumber,
				BirthDate:        e.BirthDate,
				HireDate:         e.HireDate,
				TerminationDate:  e.TerminationDate,
				EmploymentStatus: e.EmploymentStatus,
				DepartmentName:   labelOrFallback(e.DepartmentName),
				PositionName:     labelOrFallback(e.PositionName),
			}
			byEmployee[e.EmployeeID] = rec
			ids = append(ids, e.EmployeeID)
		}

		rec.GrossCompensation = rec.GrossCompensation.Add(e.GrossPay)
		rec.ThirteenthMonth = rec.ThirteenthMonth.Add(e.ThirteenthMonth)
		rec.DeMinimis = rec.DeMinimis.Add(e.DeMinimis)
		rec.WithholdingTax = rec.WithholdingTax.Add(e.WithholdingTax)
		rec.SSSEmployee = rec.SSSEmployee.Add(e.SSSEmployee)
		rec.SSSEmployer = rec.SSSEmployer.Add(e.SSSEmployer)
		rec.SSSEC = rec.SSSEC.Add(e.SSSEC)
		rec.PhilHealthEmployee = rec.PhilHealthEmployee.Add(e.PhilHealthEmployee)
		rec.PhilHealthEmployer = rec.PhilHealthEmployer.Add(e.PhilHealthEmployer)
		rec.PagIBIGEmployee = rec.PagIBIGEmployee.Add(e.PagIBIGEmployee)
		rec.PagIBIGEmployer = rec.PagIBIGEmployer.Add(e.PagIBIGEmployer)
		rec.EntryCount++
	}

	result := make([]report.AggregatedEmployeeRecord, 0, len(ids))
	for _, id := range ids {
		rec := byEmployee[id]
		deriveTaxSplit(rec)
		result = append(result, *rec)
	}

	less := bySurname
	if len(order) > 0 && order[0] != nil {
		less = order[0]
	}
	sort.SliceStable(result, func(i, j int) bool { return less(result[i], result[j]) })
	return result
}

// deriveTaxSplit computes the non-taxable portion and floors taxable
// compensation at zero. A negative intermediate value (contributions plus
// exemptions exceeding gross) is floored silently, not flagged.
func deriveTaxSplit(rec *report.AggregatedEmployeeRecord) {
	exempt13th := decimal.Min(rec.ThirteenthMonth, ThirteenthMonthCap)
	rec.NonTaxable = exempt13th.Add(rec.DeMinimis)

	taxable := rec.GrossCompensation.Sub(rec.EmployeeContributions()).Sub(rec.NonTaxable)
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}
	rec.Taxable = taxable
}

// LoanPayments collapses loan amortization payments into one record per
// (employee, loan type). Balance is taken from the latest payment in the
// window; the reference number from the first seen.
func LoanPayments(pays []loan.Payment) []report.LoanRemittanceRecord {
	type key struct {
		employeeID string
		loanType   loan.Type
	}

	byLoan := make(map[key]*report.LoanRemittanceRecord)
	latest := make(map[key]int64)
	var keys []key

	for _, p := range pays {
		k := key{p.EmployeeID, p.LoanType}
		rec, ok := byLoan[k]
		if !ok {
			rec = &report.LoanRemittanceRecord{
				EmployeeID:      p.EmployeeID,
				EmployeeCode:    p.EmployeeCode,
				LastName:        p.LastName,
				FirstName:       p.FirstName,
				MiddleName:      p.MiddleName,
				Suffix:          p.Suffix,
				SSSNumber:       p.SSSNumber,
				PagIBIGNumber:   p.PagIBIGNumber,
				LoanType:        string(p.LoanType),
				ReferenceNumber: p.ReferenceNumber,
				Principal:       p.Principal,
			}
			byLoan[k] = rec
			keys = append(keys, k)
		}

		rec.AmountPaid = rec.AmountPaid.Add(p.Amount)
		rec.PaymentCount++
		if ts := p.PaymentDate.Unix(); ts >= latest[k] {
			latest[k] = ts
			rec.Balance = p.Balance
		}
	}

	result := make([]report.LoanRemittanceRecord, 0, len(keys))
	for _, k := range keys {
		result = append(result, *byLoan[k])
	}

	sort.SliceStable(result, func(i, j int) bool {
		ai, aj := result[i], result[j]
		if ai.LastName != aj.LastName {
			return strings.ToUpper(ai.LastName) < strings.ToUpper(aj.LastName)
		}
		if ai.FirstName != aj.FirstName {
			return strings.ToUpper(ai.FirstName) < strings.ToUpper(aj.FirstName)
		}
		return ai.LoanType < aj.LoanType
	})
	return result
}

// RequireID drops records whose required statutory ID is empty. Employees
// without the ID a form needs are excluded from that form entirely, never
// reported with blanks.
func RequireID(recs []report.AggregatedEmployeeRecord, id func(report.AggregatedEmployeeRecord) string) []report.AggregatedEmployeeRecord {
	out := recs[:0:0]
	for _, r := range recs {
		if strings.TrimSpace(id(r)) != "" {
			out = append(out, r)
		}
	}
	return out
}

// RequireLoanID is RequireID for loan remittance records.
func RequireLoanID(recs []report.LoanRemittanceRecord, id func(report.LoanRemittanceRecord) string) []report.LoanRemittanceRecord {
	out := recs[:0:0]
	for _, r := range recs {
		if strings.TrimSpace(id(r)) != "" {
			out = append(out, r)
		}
	}
	return out
}

func labelOrFallback(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return report.UnknownLabel
	}
	return *s
}
