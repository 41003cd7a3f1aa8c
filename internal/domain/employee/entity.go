package employee

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	UserID       *string
	CompanyID    string
	DepartmentID string
	PositionID   string
	EmployeeCode string
	LastName     string
	FirstName    string
	MiddleName   string
	Suffix       string
	Gender       Gender
	PhoneNumber  string
	Address      *string
	PlaceOfBirth *string
	DOB          *time.Time

	// Statutory registration numbers. Empty means the employee is not
	// registered with that agency.
	TIN              string
	SSSNumber        string
	PhilHealthNumber string
	PagIBIGNumber    string

	HireDate         time.Time
	TerminationDate  *time.Time
	EmploymentType   EmploymentType
	EmploymentStatus EmploymentStatus
	BaseSalary       *decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time

	// Joined fields
	DepartmentName *string
	PositionName   *string
}

// FullName returns "LASTNAME, FIRSTNAME MIDDLENAME SUFFIX" as printed on
// statutory forms.
func (e Employee) FullName() string {
	name := e.LastName + ", " + e.FirstName
	if e.MiddleName != "" {
		name += " " + e.MiddleName
	}
	if e.Suffix != "" {
		name += " " + e.Suffix
	}
	return strings.ToUpper(name)
}

type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
)

type EmploymentType string

const (
	EmploymentTypeRegular      EmploymentType = "regular"
	EmploymentTypeProbationary EmploymentType = "probationary"
	EmploymentTypeContractual  EmploymentType = "contractual"
	EmploymentTypeProjectBased EmploymentType = "project_based"
	EmploymentTypePartTime     EmploymentType = "part_time"
)

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusResigned   EmploymentStatus = "resigned"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)
