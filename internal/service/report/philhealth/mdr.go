package philhealth

import (
	"context"
	"fmt"
	"strings"

	"github.com/talentohr/hris-backend-go/internal/domain/employee"
	"github.com/talentohr/hris-backend-go/internal/domain/report"
)

// MemberDataGenerator produces the PhilHealth MDR listing of member data
// records for active employees. The report covers an explicit date range so
// HR can align it with an enrollment or audit window.
type MemberDataGenerator struct {
	employees employee.Repository
}

func NewMemberDataGenerator(employees employee.Repository) *MemberDataGenerator {
	return &MemberDataGenerator{employees: employees}
}

func (g *MemberDataGenerator) Definition() report.Definition {
	return report.Definition{
		Agency:      report.AgencyPhilHealth,
		Code:        "mdr",
		Title:       "PhilHealth Member Data Record",
		Granularity: report.GranularityDateRange,
		Headers: []string{
			"No.", "PhilHealth Number", "Employee Name", "Date of Birth", "Gender",
			"Address", "Date Hired", "Employment Status",
		},
		Formats: []report.Format{report.FormatExcel, report.FormatPDF, report.FormatCSV},
	}
}

func (g *MemberDataGenerator) GetData(ctx context.Context, tenant report.TenantContext, params report.Params) (*report.Dataset, error) {
	if err := params.Validate(report.GranularityDateRange); err != nil {
		return nil, err
	}

	employees, err := g.employees.ListActive(ctx, tenant.CompanyID, params.DepartmentIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get active employees: %w", err)
	}

	_, end := params.Window(report.GranularityDateRange)
	var rows []report.Row
	for _, e := range employees {
		if strings.TrimSpace(e.PhilHealthNumber) == "" {
			continue
		}
		// Only members already on board by the end of the window.
		if e.HireDate.After(end) {
			continue
		}
		rows = append(rows, e)
	}
	return &report.Dataset{Rows: rows, Totals: report.Totals{EmployeeCount: len(rows)}}, nil
}

func (g *MemberDataGenerator) GetSummary(ctx context.Context, tenant report.TenantContext, params report.Params) (*report.Totals, error) {
	ds, err := g.GetData(ctx, tenant, params)
	if err != nil {
		return nil, err
	}
	return &ds.Totals, nil
}

func (g *MemberDataGenerator) ExcelRow(row report.Row, seq int) []any {
	e := row.(employee.Employee)
	birth := ""
	if e.DOB != nil {
		birth = e.DOB.Format("2006-01-02")
	}
	address := report.UnknownLabel
	if e.Address != nil && *e.Address != "" {
		address = *e.Address
	}
	return []any{
		seq, e.PhilHealthNumber, e.FullName(), birth, string(e.Gender),
		address, e.HireDate.Format("2006-01-02"), string(e.EmploymentStatus),
	}
}
