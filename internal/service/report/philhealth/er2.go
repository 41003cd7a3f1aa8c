package philhealth

import (
	"context"
	"fmt"
	"strings"

	"github.com/talentohr/hris-backend-go/internal/domain/employee"
	"github.com/talentohr/hris-backend-go/internal/domain/report"
)

// NewHireGenerator produces the PhilHealth ER-2 report of newly hired
// employees for a month. It reads the employee registry, not payroll.
type NewHireGenerator struct {
	employees employee.Repository
}

func NewNewHireGenerator(employees employee.Repository) *NewHireGenerator {
	return &NewHireGenerator{employees: employees}
}

func (g *NewHireGenerator) Definition() report.Definition {
	return report.Definition{
		Agency:      report.AgencyPhilHealth,
		Code:        "er2",
		Title:       "PhilHealth ER-2 Report of Newly Hired Employees",
		Granularity: report.GranularityMonthly,
		Headers: []string{
			"No.", "PhilHealth Number", "Employee Name", "Date of Birth", "Position", "Date Hired",
		},
		Formats: []report.Format{report.FormatExcel, report.FormatPDF, report.FormatCSV},
	}
}

func (g *NewHireGenerator) GetData(ctx context.Context, tenant report.TenantContext, params report.Params) (*report.Dataset, error) {
	if err := params.Validate(report.GranularityMonthly); err != nil {
		return nil, err
	}

	start, end := params.Window(report.GranularityMonthly)
	hires, err := g.employees.ListHiredBetween(ctx, tenant.CompanyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get new hires: %w", err)
	}

	var rows []report.Row
	for _, e := range hires {
		if strings.TrimSpace(e.PhilHealthNumber) == "" {
			continue
		}
		rows = append(rows, e)
	}
	return &report.Dataset{Rows: rows, Totals: report.Totals{EmployeeCount: len(rows)}}, nil
}

func (g *NewHireGenerator) GetSummary(ctx context.Context, tenant report.TenantContext, params report.Params) (*report.Totals, error) {
	ds, err := g.GetData(ctx, tenant, params)
	if err != nil {
		return nil, err
	}
	return &ds.Totals, nil
}

func (g *NewHireGenerator) ExcelRow(row report.Row, seq int) []any {
	e := row.(employee.Employee)
	birth := ""
	if e.DOB != nil {
		birth = e.DOB.Format("2006-01-02")
	}
	position := report.UnknownLabel
	if e.PositionName != nil && *e.PositionName != "" {
		position = *e.PositionName
	}
	return []any{seq, e.PhilHealthNumber, e.FullName(), birth, position, e.HireDate.Format("2006-01-02")}
}
