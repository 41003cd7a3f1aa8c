package loan

import (
	"context"
	"time"
)

type Repository interface {
	// ListForWindow returns payments of the given loan types whose payment
	// date falls inside [start, end], employee fields joined, ordered by
	// employee surname. Empty types means all loan types.
	ListForWindow(ctx context.Context, companyID string, types []Type, start, end time.Time, departmentIDs []string) ([]Payment, error)
}
