package payroll

import (
	"context"
	"time"
)

// Repository defines the payroll read surface consumed by the compliance
// report pipeline. Entries come back with employee fields joined in and are
// ordered by employee surname.
type Repository interface {
	// ListForWindow returns approved and paid entries whose pay date falls
	// inside [start, end]. Draft and voided entries are filtered out in SQL.
	// departmentIDs, when non-empty, restricts the result to those departments.
	ListForWindow(ctx context.Context, companyID string, start, end time.Time, departmentIDs []string) ([]Entry, error)
}
