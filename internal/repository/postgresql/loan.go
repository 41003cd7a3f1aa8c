package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/talentohr/hris-backend-go/internal/domain/loan"
	"github.com/talentohr/hris-backend-go/internal/pkg/database"
)

type loanRepositoryImpl struct {
	db database.Querier
}

func NewLoanRepository(db *database.DB) loan.Repository {
	return &loanRepositoryImpl{db: db}
}

// ListForWindow implements loan.Repository.
func (l *loanRepositoryImpl) ListForWindow(ctx context.Context, companyID string, types []loan.Type, start, end time.Time, departmentIDs []string) ([]loan.Payment, error) {
	query := `
		SELECT lp.id, lp.company_id, lp.employee_id, lp.loan_id, el.loan_type, el.reference_number,
			el.principal, lp.payment_date, lp.amount, lp.balance, lp.created_at,
			e.employee_code, e.last_name, e.first_name, e.middle_name, e.suffix,
			e.sss_number, e.pagibig_number
		FROM loan_payments lp
		JOIN employee_loans el ON el.id = lp.loan_id
		JOIN employees e ON e.id = lp.employee_id
		WHERE lp.company_id = $1
			AND lp.payment_date BETWEEN $2 AND $3
			AND ($4::text[] IS NULL OR el.loan_type = ANY($4))
			AND ($5::uuid[] IS NULL OR e.department_id = ANY($5))
		ORDER BY e.last_name, e.first_name, lp.payment_date
	`

	var loanTypes any
	if len(types) > 0 {
		names := make([]string, len(types))
		for i, t := range types {
			names[i] = string(t)
		}
		loanTypes = names
	}
	var depts any
	if len(departmentIDs) > 0 {
		depts = departmentIDs
	}

	rows, err := l.db.Query(ctx, query, companyID, start, end, loanTypes, depts)
	if err != nil {
		return nil, fmt.Errorf("failed to list loan payments: %w", err)
	}
	defer rows.Close()

	var payments []loan.Payment
	for rows.Next() {
		var pay loan.Payment
		err := rows.Scan(
			&pay.ID, &pay.CompanyID, &pay.EmployeeID, &pay.LoanID, &pay.LoanType, &pay.ReferenceNumber,
			&pay.Principal, &pay.PaymentDate, &pay.Amount, &pay.Balance, &pay.CreatedAt,
			&pay.EmployeeCode, &pay.LastName, &pay.FirstName, &pay.MiddleName, &pay.Suffix,
			&pay.SSSNumber, &pay.PagIBIGNumber,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan loan payment: %w", err)
		}
		payments = append(payments, pay)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}
