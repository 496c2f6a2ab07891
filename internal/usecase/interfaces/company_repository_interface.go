package interfaces

import (
	"context"

	"pcg_compliance/internal/domain/entities"
)

// ICompanyRepository reads tenants. Company management lives elsewhere.

type ICompanyRepository interface {
	GetByID(ctx context.Context, id string) (entities.Company, error)
	ListComplianceEnabled(ctx context.Context) ([]entities.Company, error)
}
