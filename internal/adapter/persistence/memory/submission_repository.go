package memory

import (
	"context"
	"sort"
	"sync"

	"pcg_compliance/internal/domain/entities"
	"pcg_compliance/internal/usecase/interfaces"
)

type SubmissionRepository struct {
	mu    sync.RWMutex
	items map[string]entities.Submission
}

var _ interfaces.ISubmissionRepository = (*SubmissionRepository)(nil)

func NewSubmissionRepository() *SubmissionRepository {
	return &SubmissionRepository{items: make(map[string]entities.Submission)}
}

func (r *SubmissionRepository) GetByID(_ context.Context, id string) (entities.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copySubmission(r.items[id]), nil
}

func (r *SubmissionRepository) Save(_ context.Context, s entities.Submission) (entities.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.items[s.ID]; ok && prev.Estado == entities.SubmissionStatusAprobado {
		return entities.Submission{}, interfaces.ErrConflict
	}
	r.items[s.ID] = copySubmission(s)
	return copySubmission(s), nil
}

func (r *SubmissionRepository) UpdateReview(_ context.Context, id string, to entities.SubmissionStatus, review entities.SubmissionReview) (entities.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.items[id]
	if !ok {
		return entities.Submission{}, nil
	}
	if s.Estado != entities.SubmissionStatusCargado {
		return entities.Submission{}, interfaces.ErrConflict
	}
	s.Estado = to
	s.Revision = &review
	s.UpdatedAt = review.FechaRevision
	r.items[id] = s
	return copySubmission(s), nil
}

func (r *SubmissionRepository) ListByPeriod(_ context.Context, periodID string) ([]entities.Submission, error) {
	return r.list(func(s entities.Submission) bool { return s.PeriodID == periodID }), nil
}

func (r *SubmissionRepository) ListByPeriodAndSubcontractor(_ context.Context, periodID, subcontractorID string) ([]entities.Submission, error) {
	return r.list(func(s entities.Submission) bool {
		return s.PeriodID == periodID && s.SubcontractorID == subcontractorID
	}), nil
}

func (r *SubmissionRepository) list(match func(entities.Submission) bool) []entities.Submission {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []entities.Submission{}
	for _, s := range r.items {
		if match(s) {
			out = append(out, copySubmission(s))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func copySubmission(s entities.Submission) entities.Submission {
	if s.Revision != nil {
		rev := *s.Revision
		s.Revision = &rev
	}
	return s
}
