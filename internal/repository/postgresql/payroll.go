package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/talentohr/hris-backend-go/internal/domain/payroll"
	"github.com/talentohr/hris-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db database.Querier
}

func NewPayrollRepository(db *database.DB) payroll.Repository {
	return &payrollRepositoryImpl{db: db}
}

// ListForWindow implements payroll.Repository.
func (p *payrollRepositoryImpl) ListForWindow(ctx context.Context, companyID string, start, end time.Time, departmentIDs []string) ([]payroll.Entry, error) {
	query := `
		SELECT pe.id, pe.company_id, pe.employee_id, pe.period_year, pe.period_month, pe.period_sequence, pe.pay_date,
			pe.basic_pay, pe.overtime_pay, pe.holiday_pay, pe.night_differential,
			pe.thirteenth_month, pe.de_minimis, pe.other_earnings, pe.gross_pay,
			pe.sss_employee, pe.sss_employer, pe.sss_ec,
			pe.philhealth_employee, pe.philhealth_employer,
			pe.pagibig_employee, pe.pagibig_employer,
			pe.withholding_tax, pe.other_deductions, pe.net_pay,
			pe.status, pe.paid_at, pe.notes, pe.created_at, pe.updated_at,
			e.employee_code, e.last_name, e.first_name, e.middle_name, e.suffix,
			e.tin, e.sss_number, e.philhealth_number, e.pagibig_number,
			e.dob, e.hire_date, e.termination_date, e.employment_status, e.department_id,
			d.name AS department_name, pos.name AS position_name
		FROM payroll_entries pe
		JOIN employees e ON e.id = pe.employee_id
		LEFT JOIN departments d ON d.id = e.department_id
		LEFT JOIN positions pos ON pos.id = e.position_id
		WHERE pe.company_id = $1
			AND pe.pay_date BETWEEN $2 AND $3
			AND pe.status IN ($4, $5)
			AND ($6::uuid[] IS NULL OR e.department_id = ANY($6))
		ORDER BY e.last_name, e.first_name, pe.pay_date
	`

	var depts any
	if len(departmentIDs) > 0 {
		depts = departmentIDs
	}

	rows, err := p.db.Query(ctx, query, companyID, start, end,
		payroll.EntryStatusApproved, payroll.EntryStatusPaid, depts)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll entries: %w", err)
	}
	defer rows.Close()

	var entries []payroll.Entry
	for rows.Next() {
		var en payroll.Entry
		err := rows.Scan(
			&en.ID, &en.CompanyID, &en.EmployeeID, &en.PeriodYear, &en.PeriodMonth, &en.PeriodSequence, &en.PayDate,
			&en.BasicPay, &en.OvertimePay, &en.HolidayPay, &en.NightDifferential,
			&en.ThirteenthMonth, &en.DeMinimis, &en.OtherEarnings, &en.GrossPay,
			&en.SSSEmployee, &en.SSSEmployer, &en.SSSEC,
			&en.PhilHealthEmployee, &en.PhilHealthEmployer,
			&en.PagIBIGEmployee, &en.PagIBIGEmployer,
			&en.WithholdingTax, &en.OtherDeductions, &en.NetPay,
			&en.Status, &en.PaidAt, &en.Notes, &en.CreatedAt, &en.UpdatedAt,
			&en.EmployeeCode, &en.LastName, &en.FirstName, &en.MiddleName, &en.Suffix,
			&en.TIN, &en.SSSNumber, &en.PhilHealthNumber, &en.PagIBIGNumber,
			&en.BirthDate, &en.HireDate, &en.TerminationDate, &en.EmploymentStatus, &en.DepartmentID,
			&en.DepartmentName, &en.PositionName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll entry: %w", err)
		}
		entries = append(entries, en)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
