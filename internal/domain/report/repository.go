package report

import "context"

// CertificateRepository persists BIR 2316 certificate snapshots.
type CertificateRepository interface {
	// Upsert inserts or replaces the snapshot for (employee, tax year).
	// Calling it again with the same key overwrites the previous snapshot.
	Upsert(ctx context.Context, snap *CertificateSnapshot) error

	GetByEmployeeYear(ctx context.Context, companyID, employeeID string, taxYear int) (*CertificateSnapshot, error)

	ListByYear(ctx context.Context, companyID string, taxYear int) ([]CertificateSnapshot, error)
}
