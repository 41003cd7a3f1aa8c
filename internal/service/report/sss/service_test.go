package sss

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentohr/hris-backend-go/internal/domain/payroll"
	"github.com/talentohr/hris-backend-go/internal/domain/report"
)

type fakePayrollRepo struct {
	entries []payroll.Entry
}

func (f *fakePayrollRepo) ListForWindow(ctx context.Context, companyID string, start, end time.Time, departmentIDs []string) ([]payroll.Entry, error) {
	var out []payroll.Entry
	for _, e := range f.entries {
		if !e.PayDate.Before(start) && !e.PayDate.After(end) {
			out = append(out, e)
		}
	}
	return out, nil
}

func sssEntry(employeeID, lastName, sssNumber string, ee, er, ec string) payroll.Entry {
	return payroll.Entry{
		EmployeeID:  employeeID,
		LastName:    lastName,
		FirstName:   "Juan",
		SSSNumber:   sssNumber,
		PayDate:     time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local),
		GrossPay:    decimal.RequireFromString("30000"),
		SSSEmployee: decimal.RequireFromString(ee),
		SSSEmployer: decimal.RequireFromString(er),
		SSSEC:       decimal.RequireFromString(ec),
		Status:      payroll.EntryStatusPaid,
	}
}

var tenant = report.TenantContext{CompanyID: "c1", CompanyName: "Acme", SSSEmployerNumber: "03-9012345-6"}

func TestContributionListExcludesEmployeesWithoutSSSNumber(t *testing.T) {
	repo := &fakePayrollRepo{entries: []payroll.Entry{
		sssEntry("e1", "Santos", "34-1234567-8", "1350", "2880", "30"),
		sssEntry("e2", "Reyes", "", "1125", "2400", "30"),
	}}
	g := NewContributionListGenerator(repo)

	ds, err := g.GetData(context.Background(), tenant, report.Params{Year: 2025, Month: 3})
	require.NoError(t, err)
	require.Len(t, ds.Rows, 1)
	assert.Equal(t, "e1", ds.Rows[0].(report.AggregatedEmployeeRecord).EmployeeID)
}

func TestCollectionListLineLayout(t *testing.T) {
	birth := time.Date(1990, 12, 5, 0, 0, 0, 0, time.Local)
	e := sssEntry("e1", "Dela Cruz", "34-1234567-8", "1350", "2880", "30")
	e.BirthDate = &birth

	repo := &fakePayrollRepo{entries: []payroll.Entry{e}}
	g := NewCollectionListGenerator(repo)

	ds, err := g.GetData(context.Background(), tenant, report.Params{Year: 2025, Month: 3})
	require.NoError(t, err)
	require.Len(t, ds.Rows, 1)

	line, err := g.FixedWidthRow(ds.Rows[0])
	require.NoError(t, err)
	require.Len(t, line, eclRecordLength)

	// Positional slices per the bank-tellering layout.
	assert.Equal(t, "3412345678", line[0:10])
	assert.Equal(t, "DELA CRUZ", strings.TrimRight(line[10:35], " "))
	assert.Equal(t, "JUAN", strings.TrimRight(line[35:60], " "))
	assert.Equal(t, "12051990", line[90:98])
	// SS contribution: EE 1350 + ER 2880 = 4230.00 -> cents, zero-padded.
	assert.Equal(t, "0000423000", line[98:108])
	assert.Equal(t, "0000003000", line[108:118])
}

func TestCollectionListBlankBirthDate(t *testing.T) {
	repo := &fakePayrollRepo{entries: []payroll.Entry{
		sssEntry("e1", "Santos", "34-1234567-8", "1350", "2880", "30"),
	}}
	g := NewCollectionListGenerator(repo)

	ds, err := g.GetData(context.Background(), tenant, report.Params{Year: 2025, Month: 3})
	require.NoError(t, err)

	line, err := g.FixedWidthRow(ds.Rows[0])
	require.NoError(t, err)
	require.Len(t, line, eclRecordLength)
	assert.Equal(t, strings.Repeat(" ", 8), line[90:98])
}

func TestServiceCoercesECLTextFormats(t *testing.T) {
	repo := &fakePayrollRepo{entries: []payroll.Entry{
		sssEntry("e1", "Santos", "34-1234567-8", "1350", "2880", "30"),
	}}
	svc := NewService(repo)

	// Asking for csv still yields the positional .txt file.
	file, err := svc.Generate(context.Background(), tenant, "ecl", report.FormatCSV, report.Params{Year: 2025, Month: 3})
	require.NoError(t, err)
	assert.Equal(t, "sss_ecl_2025-03.txt", file.Name)

	lines := strings.Split(strings.TrimSuffix(string(file.Content), "\r\n"), "\r\n")
	require.Len(t, lines, 1)
	assert.Len(t, lines[0], eclRecordLength)
}

func TestServiceECLRejectsExcel(t *testing.T) {
	svc := NewService(&fakePayrollRepo{})

	_, err := svc.Generate(context.Background(), tenant, "ecl", report.FormatExcel, report.Params{Year: 2025, Month: 3})
	require.Error(t, err)
	assert.ErrorIs(t, err, report.ErrUnsupportedExport)
}

func TestServiceRegistersAllForms(t *testing.T) {
	svc := NewService(&fakePayrollRepo{})

	var codes []string
	for _, def := range svc.AvailableReports() {
		codes = append(codes, def.Code)
	}
	assert.Equal(t, []string{"r3", "r5", "sbr", "ecl"}, codes)
}
