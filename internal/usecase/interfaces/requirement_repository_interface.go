package interfaces

import (
	"context"

	"pcg_compliance/internal/domain/entities"
)

type IRequirementRepository interface {
	Create(ctx context.Context, r entities.Requirement) (entities.Requirement, error)
	GetByID(ctx context.Context, id string) (entities.Requirement, error)
	ListByCompany(ctx context.Context, companyID string, onlyActive bool) ([]entities.Requirement, error)
	SetActive(ctx context.Context, id string, active bool) (entities.Requirement, error)
}
