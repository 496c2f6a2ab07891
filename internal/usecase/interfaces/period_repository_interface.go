package interfaces

import (
	"context"
	"time"

	"pcg_compliance/internal/domain/entities"
)

// IPeriodRepository persists compliance periods and their status children.
//
// The state machine needs to:
//   - create a period at most once (Create returns ErrConflict when the id exists)
//   - advance the estado conditionally on the previous value
//   - close the period together with the forced statuses
//
// GetByID and GetStatus return a zero value when nothing is stored.

type IPeriodRepository interface {
	GetByID(ctx context.Context, id string) (entities.CompliancePeriod, error)
	Create(ctx context.Context, p entities.CompliancePeriod) (entities.CompliancePeriod, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.PeriodStatus, now time.Time) (entities.CompliancePeriod, error)
	ListOpenByCompany(ctx context.Context, companyID string) ([]entities.CompliancePeriod, error)
	Close(ctx context.Context, id string, forced []entities.ComplianceStatus, now time.Time) (entities.CompliancePeriod, error)

	GetStatus(ctx context.Context, periodID, subcontractorID string) (entities.ComplianceStatus, error)
	ListStatuses(ctx context.Context, periodID string) ([]entities.ComplianceStatus, error)
	SaveStatus(ctx context.Context, st entities.ComplianceStatus) error
}
