package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/talentohr/hris-backend-go/internal/domain/company"
	"github.com/talentohr/hris-backend-go/internal/pkg/database"
)

type companyRepositoryImpl struct {
	db database.Querier
}

func NewCompanyRepository(db *database.DB) company.Repository {
	return &companyRepositoryImpl{db: db}
}

// GetByID implements company.Repository.
func (c *companyRepositoryImpl) GetByID(ctx context.Context, companyID string) (*company.Company, error) {
	query := `
		SELECT id, name, username, address, logo_url,
			tin, rdo_code, sss_employer_number, philhealth_employer_number, pagibig_employer_number,
			created_at, updated_at
		FROM companies
		WHERE id = $1
	`

	var comp company.Company
	err := c.db.QueryRow(ctx, query, companyID).Scan(
		&comp.ID, &comp.Name, &comp.Username, &comp.Address, &comp.LogoURL,
		&comp.TIN, &comp.RDOCode, &comp.SSSEmployerNumber, &comp.PhilHealthEmployerNumber, &comp.PagIBIGEmployerNumber,
		&comp.CreatedAt, &comp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, company.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company with id %s: %w", companyID, err)
	}

	return &comp, nil
}
