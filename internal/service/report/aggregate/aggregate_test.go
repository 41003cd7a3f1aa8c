package aggregate

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentohr/hris-backend-go/internal/domain/loan"
	"github.com/talentohr/hris-backend-go/internal/domain/payroll"
	"github.com/talentohr/hris-backend-go/internal/domain/report"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func entry(employeeID, lastName string, status payroll.EntryStatus, gross string) payroll.Entry {
	return payroll.Entry{
		ID:         employeeID + "-" + gross,
		EmployeeID: employeeID,
		LastName:   lastName,
		FirstName:  "Test",
		PayDate:    time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local),
		GrossPay:   d(gross),
		Status:     status,
	}
}

func TestPayrollEntriesOneRecordPerEmployee(t *testing.T) {
	entries := []payroll.Entry{
		entry("e1", "Santos", payroll.EntryStatusApproved, "10000"),
		entry("e2", "Reyes", payroll.EntryStatusPaid, "20000"),
		entry("e1", "Santos", payroll.EntryStatusPaid, "12000"),
	}

	recs := PayrollEntries(entries)
	require.Len(t, recs, 2)

	byID := map[string]report.AggregatedEmployeeRecord{}
	for _, r := range recs {
		byID[r.EmployeeID] = r
	}
	assert.True(t, byID["e1"].GrossCompensation.Equal(d("22000")))
	assert.Equal(t, 2, byID["e1"].EntryCount)
	assert.True(t, byID["e2"].GrossCompensation.Equal(d("20000")))
}

func TestPayrollEntriesSkipsDraftAndVoided(t *testing.T) {
	entries := []payroll.Entry{
		entry("e1", "Santos", payroll.EntryStatusDraft, "10000"),
		entry("e1", "Santos", payroll.EntryStatusVoided, "9000"),
		entry("e1", "Santos", payroll.EntryStatusApproved, "11000"),
	}

	recs := PayrollEntries(entries)
	require.Len(t, recs, 1)
	assert.True(t, recs[0].GrossCompensation.Equal(d("11000")))
	assert.Equal(t, 1, recs[0].EntryCount)
}

func TestPayrollEntriesSurnameOrder(t *testing.T) {
	entries := []payroll.Entry{
		entry("e1", "Villanueva", payroll.EntryStatusPaid, "1000"),
		entry("e2", "Aquino", payroll.EntryStatusPaid, "1000"),
		entry("e3", "Reyes", payroll.EntryStatusPaid, "1000"),
	}

	recs := PayrollEntries(entries)
	require.Len(t, recs, 3)
	assert.Equal(t, "Aquino", recs[0].LastName)
	assert.Equal(t, "Reyes", recs[1].LastName)
	assert.Equal(t, "Villanueva", recs[2].LastName)
}

func TestDeriveTaxSplitCapsThirteenthMonth(t *testing.T) {
	e := entry("e1", "Santos", payroll.EntryStatusPaid, "400000")
	e.ThirteenthMonth = d("120000")
	e.DeMinimis = d("5000")

	recs := PayrollEntries([]payroll.Entry{e})
	require.Len(t, recs, 1)

	// Only the first 90,000 of 13th-month pay is exempt.
	assert.True(t, recs[0].NonTaxable.Equal(d("95000")), "got %s", recs[0].NonTaxable)
	assert.True(t, recs[0].Taxable.Equal(d("305000")), "got %s", recs[0].Taxable)
}

func TestDeriveTaxSplitFloorsNegativeTaxable(t *testing.T) {
	e := entry("e1", "Santos", payroll.EntryStatusPaid, "50000")
	e.ThirteenthMonth = d("60000")
	e.SSSEmployee = d("2000")

	recs := PayrollEntries([]payroll.Entry{e})
	require.Len(t, recs, 1)
	assert.True(t, recs[0].Taxable.IsZero(), "got %s", recs[0].Taxable)
}

func TestPayrollEntriesLabelFallback(t *testing.T) {
	withDept := entry("e1", "Santos", payroll.EntryStatusPaid, "1000")
	dept := "Engineering"
	withDept.DepartmentName = &dept

	withoutDept := entry("e2", "Reyes", payroll.EntryStatusPaid, "1000")

	recs := PayrollEntries([]payroll.Entry{withDept, withoutDept})
	require.Len(t, recs, 2)

	byID := map[string]report.AggregatedEmployeeRecord{}
	for _, r := range recs {
		byID[r.EmployeeID] = r
	}
	assert.Equal(t, "Engineering", byID["e1"].DepartmentName)
	assert.Equal(t, report.UnknownLabel, byID["e2"].DepartmentName)
	assert.Equal(t, report.UnknownLabel, byID["e2"].PositionName)
}

func TestRequireIDExcludesBlankIDs(t *testing.T) {
	recs := []report.AggregatedEmployeeRecord{
		{EmployeeID: "e1", TIN: "123-456-789-000"},
		{EmployeeID: "e2", TIN: ""},
		{EmployeeID: "e3", TIN: "   "},
	}

	kept := RequireID(recs, func(r report.AggregatedEmployeeRecord) string { return r.TIN })
	require.Len(t, kept, 1)
	assert.Equal(t, "e1", kept[0].EmployeeID)
}

func payment(employeeID string, lt loan.Type, date time.Time, amount, balance string) loan.Payment {
	return loan.Payment{
		EmployeeID:    employeeID,
		LoanType:      lt,
		LastName:      "Santos",
		FirstName:     "Juan",
		PagIBIGNumber: "121212121212",
		PaymentDate:   date,
		Amount:        d(amount),
		Balance:       d(balance),
	}
}

func TestLoanPaymentsGroupsByEmployeeAndType(t *testing.T) {
	jan := time.Date(2025, 1, 31, 0, 0, 0, 0, time.Local)
	feb := time.Date(2025, 2, 28, 0, 0, 0, 0, time.Local)

	pays := []loan.Payment{
		payment("e1", loan.TypePagIBIGShort, jan, "1500", "13500"),
		payment("e1", loan.TypePagIBIGShort, feb, "1500", "12000"),
		payment("e1", loan.TypePagIBIGHousing, jan, "3000", "450000"),
	}

	recs := LoanPayments(pays)
	require.Len(t, recs, 2)

	byType := map[string]report.LoanRemittanceRecord{}
	for _, r := range recs {
		byType[r.LoanType] = r
	}

	stl := byType[string(loan.TypePagIBIGShort)]
	assert.True(t, stl.AmountPaid.Equal(d("3000")))
	assert.Equal(t, 2, stl.PaymentCount)
	// Balance comes from the latest payment in the window.
	assert.True(t, stl.Balance.Equal(d("12000")), "got %s", stl.Balance)

	hdl := byType[string(loan.TypePagIBIGHousing)]
	assert.True(t, hdl.AmountPaid.Equal(d("3000")))
	assert.True(t, hdl.Balance.Equal(d("450000")))
}

func TestRequireLoanIDExcludesBlankIDs(t *testing.T) {
	recs := []report.LoanRemittanceRecord{
		{EmployeeID: "e1", PagIBIGNumber: "121212121212"},
		{EmployeeID: "e2", PagIBIGNumber: ""},
	}

	kept := RequireLoanID(recs, func(r report.LoanRemittanceRecord) string { return r.PagIBIGNumber })
	require.Len(t, kept, 1)
	assert.Equal(t, "e1", kept[0].EmployeeID)
}

func TestSumRecordsControlTotals(t *testing.T) {
	e1 := entry("e1", "Santos", payroll.EntryStatusPaid, "10000")
	e1.WithholdingTax = d("500")
	e2 := entry("e2", "Reyes", payroll.EntryStatusPaid, "20000")
	e2.WithholdingTax = d("1500")

	recs := PayrollEntries([]payroll.Entry{e1, e2})
	totals := report.SumRecords(recs)

	assert.True(t, totals.GrossCompensation.Equal(d("30000")))
	assert.True(t, totals.WithholdingTax.Equal(d("2000")))
	assert.Equal(t, 2, totals.EmployeeCount)
}
