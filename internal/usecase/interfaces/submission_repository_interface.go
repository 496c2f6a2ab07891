package interfaces

import (
	"context"

	"pcg_compliance/internal/domain/entities"
)

// ISubmissionRepository persists document submissions.
//
// Save overwrites by id (re-upload). UpdateReview only applies while the
// stored estado is Cargado and returns ErrConflict otherwise.

type ISubmissionRepository interface {
	GetByID(ctx context.Context, id string) (entities.Submission, error)
	Save(ctx context.Context, s entities.Submission) (entities.Submission, error)
	UpdateReview(ctx context.Context, id string, to entities.SubmissionStatus, review entities.SubmissionReview) (entities.Submission, error)
	ListByPeriod(ctx context.Context, periodID string) ([]entities.Submission, error)
	ListByPeriodAndSubcontractor(ctx context.Context, periodID, subcontractorID string) ([]entities.Submission, error)
}
