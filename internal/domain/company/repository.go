package company

import "context"

type Repository interface {
	GetByID(ctx context.Context, companyID string) (*Company, error)
}
