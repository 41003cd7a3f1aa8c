package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnknownLabel is substituted when a display-name lookup across modules
// fails; lookup failures never abort report generation.
const UnknownLabel = "N/A"

// Agency enum
type Agency string

const (
	AgencyBIR        Agency = "bir"
	AgencySSS        Agency = "sss"
	AgencyPhilHealth Agency = "philhealth"
	AgencyPagIBIG    Agency = "pagibig"
)

// Format enum - output formats a generator may declare support for.
type Format string

const (
	FormatExcel      Format = "excel"
	FormatPDF        Format = "pdf"
	FormatCSV        Format = "csv"
	FormatDAT        Format = "dat"
	FormatFixedWidth Format = "fixed_width"
)

// ParseFormat maps a query-parameter value to the format enum.
func ParseFormat(s string) (Format, bool) {
	switch f := Format(s); f {
	case FormatExcel, FormatPDF, FormatCSV, FormatDAT, FormatFixedWidth:
		return f, true
	}
	return "", false
}

// Extension returns the file extension for the format.
func (f Format) Extension() string {
	switch f {
	case FormatExcel:
		return "xlsx"
	case FormatPDF:
		return "pdf"
	case FormatCSV:
		return "csv"
	case FormatDAT:
		return "dat"
	case FormatFixedWidth:
		return "txt"
	}
	return "bin"
}

// ContentType returns the MIME type reported to the caller for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatExcel:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatPDF:
		return "application/pdf"
	case FormatCSV:
		return "text/csv"
	}
	return "text/plain"
}

// Definition is the static description of one concrete report form.
type Definition struct {
	Agency      Agency
	Code        string
	Title       string
	Granularity Granularity
	Headers     []string
	Formats     []Format
	Schedules   []string
}

// Supports reports whether the form declares the output format.
func (d Definition) Supports(f Format) bool {
	for _, s := range d.Formats {
		if s == f {
			return true
		}
	}
	return false
}

// AggregatedEmployeeRecord is one employee's summary over a reporting window.
// It is derived from payroll entries on every call and never persisted, except
// as a BIR 2316 certificate snapshot.
type AggregatedEmployeeRecord struct {
	EmployeeID   string
	EmployeeCode string
	LastName     string
	FirstName    string
	MiddleName   string
	Suffix       string

	TIN              string
	SSSNumber        string
	PhilHealthNumber string
	PagIBIGNumber    string

	BirthDate        *time.Time
	HireDate         time.Time
	TerminationDate  *time.Time
	EmploymentStatus string
	DepartmentName   string
	PositionName     string

	GrossCompensation decimal.Decimal
	ThirteenthMonth   decimal.Decimal
	DeMinimis         decimal.Decimal
	NonTaxable        decimal.Decimal
	Taxable           decimal.Decimal
	WithholdingTax    decimal.Decimal

	SSSEmployee        decimal.Decimal
	SSSEmployer        decimal.Decimal
	SSSEC              decimal.Decimal
	PhilHealthEmployee decimal.Decimal
	PhilHealthEmployer decimal.Decimal
	PagIBIGEmployee    decimal.Decimal
	PagIBIGEmployer    decimal.Decimal

	// EntryCount is how many payroll entries collapsed into this record.
	EntryCount int
}

// FullName returns "Lastname, Firstname Middlename Suffix" as stored; forms
// that require upper case apply it at the serialization edge.
func (r AggregatedEmployeeRecord) FullName() string {
	name := r.LastName + ", " + r.FirstName
	if r.MiddleName != "" {
		name += " " + r.MiddleName
	}
	if r.Suffix != "" {
		name += " " + r.Suffix
	}
	return name
}

// EmployeeContributions is the sum of the employee shares of all mandatory
// contributions; it reduces taxable compensation.
func (r AggregatedEmployeeRecord) EmployeeContributions() decimal.Decimal {
	return r.SSSEmployee.Add(r.PhilHealthEmployee).Add(r.PagIBIGEmployee)
}

// LoanRemittanceRecord is one employee's loan amortization summary per loan
// type over a reporting window.
type LoanRemittanceRecord struct {
	EmployeeID      string
	EmployeeCode    string
	LastName        string
	FirstName       string
	MiddleName      string
	Suffix          string
	SSSNumber       string
	PagIBIGNumber   string
	LoanType        string
	ReferenceNumber string
	Principal       decimal.Decimal
	AmountPaid      decimal.Decimal
	Balance         decimal.Decimal
	PaymentCount    int
}

// FullName returns "Lastname, Firstname Middlename Suffix".
func (r LoanRemittanceRecord) FullName() string {
	name := r.LastName + ", " + r.FirstName
	if r.MiddleName != "" {
		name += " " + r.MiddleName
	}
	if r.Suffix != "" {
		name += " " + r.Suffix
	}
	return name
}

// Totals carries the control totals of one generated dataset. Only the fields
// relevant to the report are populated.
type Totals struct {
	GrossCompensation  decimal.Decimal
	ThirteenthMonth    decimal.Decimal
	DeMinimis          decimal.Decimal
	NonTaxable         decimal.Decimal
	Taxable            decimal.Decimal
	WithholdingTax     decimal.Decimal
	SSSEmployee        decimal.Decimal
	SSSEmployer        decimal.Decimal
	SSSEC              decimal.Decimal
	PhilHealthEmployee decimal.Decimal
	PhilHealthEmployer decimal.Decimal
	PagIBIGEmployee    decimal.Decimal
	PagIBIGEmployer    decimal.Decimal
	LoanAmount         decimal.Decimal
	LoanBalance        decimal.Decimal
	EmployeeCount      int
}

// SumRecords computes control totals over aggregated employee records.
func SumRecords(recs []AggregatedEmployeeRecord) Totals {
	var t Totals
	for _, r := range recs {
		t.GrossCompensation = t.GrossCompensation.Add(r.GrossCompensation)
		t.ThirteenthMonth = t.ThirteenthMonth.Add(r.ThirteenthMonth)
		t.DeMinimis = t.DeMinimis.Add(r.DeMinimis)
		t.NonTaxable = t.NonTaxable.Add(r.NonTaxable)
		t.Taxable = t.Taxable.Add(r.Taxable)
		t.WithholdingTax = t.WithholdingTax.Add(r.WithholdingTax)
		t.SSSEmployee = t.SSSEmployee.Add(r.SSSEmployee)
		t.SSSEmployer = t.SSSEmployer.Add(r.SSSEmployer)
		t.SSSEC = t.SSSEC.Add(r.SSSEC)
		t.PhilHealthEmployee = t.PhilHealthEmployee.Add(r.PhilHealthEmployee)
		t.PhilHealthEmployer = t.PhilHealthEmployer.Add(r.PhilHealthEmployer)
		t.PagIBIGEmployee = t.PagIBIGEmployee.Add(r.PagIBIGEmployee)
		t.PagIBIGEmployer = t.PagIBIGEmployer.Add(r.PagIBIGEmployer)
	}
	t.EmployeeCount = len(recs)
	return t
}

// SumLoanRecords computes control totals over loan remittance records.
func SumLoanRecords(recs []LoanRemittanceRecord) Totals {
	var t Totals
	for _, r := range recs {
		t.LoanAmount = t.LoanAmount.Add(r.AmountPaid)
		t.LoanBalance = t.LoanBalance.Add(r.Balance)
	}
	t.EmployeeCount = len(recs)
	return t
}

// CertificateSnapshot is a stored point-in-time copy of one employee's annual
// aggregate, keyed uniquely by (employee, tax year). BIR 2316 only.
type CertificateSnapshot struct {
	ID         string
	CompanyID  string
	EmployeeID string
	TaxYear    int

	GrossCompensation  decimal.Decimal
	NonTaxable         decimal.Decimal
	Taxable            decimal.Decimal
	WithholdingTax     decimal.Decimal
	ThirteenthMonth    decimal.Decimal
	DeMinimis          decimal.Decimal
	SSSEmployee        decimal.Decimal
	PhilHealthEmployee decimal.Decimal
	PagIBIGEmployee    decimal.Decimal

	GeneratedAt time.Time
	GeneratedBy string
}

// File is the result of a report generation call.
type File struct {
	Content     []byte
	Name        string
	ContentType string
}
