package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/talentohr/hris-backend-go/internal/domain/employee"
	"github.com/talentohr/hris-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db database.Querier
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.user_id, e.company_id, e.department_id, e.position_id, e.employee_code,
	e.last_name, e.first_name, e.middle_name, e.suffix, e.gender, e.phone_number,
	e.address, e.place_of_birth, e.dob,
	e.tin, e.sss_number, e.philhealth_number, e.pagibig_number,
	e.hire_date, e.termination_date, e.employment_type, e.employment_status,
	e.base_salary, e.created_at, e.updated_at, e.deleted_at,
	d.name AS department_name, p.name AS position_name
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.UserID, &emp.CompanyID, &emp.DepartmentID, &emp.PositionID, &emp.EmployeeCode,
		&emp.LastName, &emp.FirstName, &emp.MiddleName, &emp.Suffix, &emp.Gender, &emp.PhoneNumber,
		&emp.Address, &emp.PlaceOfBirth, &emp.DOB,
		&emp.TIN, &emp.SSSNumber, &emp.PhilHealthNumber, &emp.PagIBIGNumber,
		&emp.HireDate, &emp.TerminationDate, &emp.EmploymentType, &emp.EmploymentStatus,
		&emp.BaseSalary, &emp.CreatedAt, &emp.UpdatedAt, &emp.DeletedAt,
		&emp.DepartmentName, &emp.PositionName,
	)
	return emp, err
}

// GetByID implements employee.Repository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, companyID, employeeID string) (*employee.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		LEFT JOIN positions p ON p.id = e.position_id
		WHERE e.id = $1 AND e.company_id = $2 AND e.deleted_at IS NULL
	`

	emp, err := scanEmployee(e.db.QueryRow(ctx, query, employeeID, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee with id %s: %w", employeeID, err)
	}

	return &emp, nil
}

// ListActive implements employee.Repository.
func (e *employeeRepositoryImpl) ListActive(ctx context.Context, companyID string, departmentIDs []string) ([]employee.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		LEFT JOIN positions p ON p.id = e.position_id
		WHERE e.company_id = $1 AND e.employment_status = $2 AND e.deleted_at IS NULL
			AND ($3::uuid[] IS NULL OR e.department_id = ANY($3))
		ORDER BY e.last_name, e.first_name
	`

	var depts any
	if len(departmentIDs) > 0 {
		depts = departmentIDs
	}

	rows, err := e.db.Query(ctx, query, companyID, employee.EmploymentStatusActive, depts)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}

// ListHiredBetween implements employee.Repository.
func (e *employeeRepositoryImpl) ListHiredBetween(ctx context.Context, companyID string, start, end time.Time) ([]employee.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		LEFT JOIN positions p ON p.id = e.position_id
		WHERE e.company_id = $1 AND e.hire_date BETWEEN $2 AND $3 AND e.deleted_at IS NULL
		ORDER BY e.hire_date, e.last_name
	`

	rows, err := e.db.Query(ctx, query, companyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees hired between %s and %s: %w",
			start.Format("2006-01-02"), end.Format("2006-01-02"), err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}

func collectEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return employees, nil
}
