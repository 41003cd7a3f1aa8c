package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/talentohr/hris-backend-go/internal/domain/report"
	"github.com/talentohr/hris-backend-go/internal/pkg/database"
)

type certificateRepositoryImpl struct {
	db database.Querier
}

func NewCertificateRepository(db *database.DB) report.CertificateRepository {
	return &certificateRepositoryImpl{db: db}
}

const certificateColumns = `
	id, company_id, employee_id, tax_year,
	gross_compensation, non_taxable, taxable, withholding_tax,
	thirteenth_month, de_minimis,
	sss_employee, philhealth_employee, pagibig_employee,
	generated_at, generated_by
`

// Upsert implements report.CertificateRepository.
func (c *certificateRepositoryImpl) Upsert(ctx context.Context, snap *report.CertificateSnapshot) error {
	query := `
		INSERT INTO certificate_snapshots (` + certificateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (employee_id, tax_year) DO UPDATE SET
			gross_compensation = EXCLUDED.gross_compensation,
			non_taxable = EXCLUDED.non_taxable,
			taxable = EXCLUDED.taxable,
			withholding_tax = EXCLUDED.withholding_tax,
			thirteenth_month = EXCLUDED.thirteenth_month,
			de_minimis = EXCLUDED.de_minimis,
			sss_employee = EXCLUDED.sss_employee,
			philhealth_employee = EXCLUDED.philhealth_employee,
			pagibig_employee = EXCLUDED.pagibig_employee,
			generated_at = EXCLUDED.generated_at,
			generated_by = EXCLUDED.generated_by
	`

	_, err := c.db.Exec(ctx, query,
		snap.ID, snap.CompanyID, snap.EmployeeID, snap.TaxYear,
		snap.GrossCompensation, snap.NonTaxable, snap.Taxable, snap.WithholdingTax,
		snap.ThirteenthMonth, snap.DeMinimis,
		snap.SSSEmployee, snap.PhilHealthEmployee, snap.PagIBIGEmployee,
		snap.GeneratedAt, snap.GeneratedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert certificate snapshot for employee %s year %d: %w",
			snap.EmployeeID, snap.TaxYear, err)
	}

	return nil
}

func scanCertificate(row pgx.Row) (report.CertificateSnapshot, error) {
	var snap report.CertificateSnapshot
	err := row.Scan(
		&snap.ID, &snap.CompanyID, &snap.EmployeeID, &snap.TaxYear,
		&snap.GrossCompensation, &snap.NonTaxable, &snap.Taxable, &snap.WithholdingTax,
		&snap.ThirteenthMonth, &snap.DeMinimis,
		&snap.SSSEmployee, &snap.PhilHealthEmployee, &snap.PagIBIGEmployee,
		&snap.GeneratedAt, &snap.GeneratedBy,
	)
	return snap, err
}

// GetByEmployeeYear implements report.CertificateRepository.
func (c *certificateRepositoryImpl) GetByEmployeeYear(ctx context.Context, companyID, employeeID string, taxYear int) (*report.CertificateSnapshot, error) {
	query := `
		SELECT ` + certificateColumns + `
		FROM certificate_snapshots
		WHERE company_id = $1 AND employee_id = $2 AND tax_year = $3
	`

	snap, err := scanCertificate(c.db.QueryRow(ctx, query, companyID, employeeID, taxYear))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, report.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to get certificate snapshot: %w", err)
	}

	return &snap, nil
}

// ListByYear implements report.CertificateRepository.
func (c *certificateRepositoryImpl) ListByYear(ctx context.Context, companyID string, taxYear int) ([]report.CertificateSnapshot, error) {
	query := `
		SELECT ` + certificateColumns + `
		FROM certificate_snapshots
		WHERE company_id = $1 AND tax_year = $2
		ORDER BY generated_at
	`

	rows, err := c.db.Query(ctx, query, companyID, taxYear)
	if err != nil {
		return nil, fmt.Errorf("failed to list certificate snapshots: %w", err)
	}
	defer rows.Close()

	var snaps []report.CertificateSnapshot
	for rows.Next() {
		snap, err := scanCertificate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan certificate snapshot: %w", err)
		}
		snaps = append(snaps, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return snaps, nil
}
