package employee

import (
	"context"
	"time"
)

// Repository defines the employee read surface consumed by the compliance
// report pipeline. Write operations belong to the employee management module.
type Repository interface {
	GetByID(ctx context.Context, companyID, employeeID string) (*Employee, error)

	// ListActive returns non-deleted active employees, ordered by surname.
	ListActive(ctx context.Context, companyID string, departmentIDs []string) ([]Employee, error)

	// ListHiredBetween returns employees whose hire date falls inside the
	// range, regardless of current status. Used by new-hire statutory reports.
	ListHiredBetween(ctx context.Context, companyID string, start, end time.Time) ([]Employee, error)
}
