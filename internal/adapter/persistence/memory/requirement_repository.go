package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"pcg_compliance/internal/domain/entities"
	"pcg_compliance/internal/usecase/interfaces"
)

type RequirementRepository struct {
	mu    sync.RWMutex
	items map[string]entities.Requirement
}

var _ interfaces.IRequirementRepository = (*RequirementRepository)(nil)

func NewRequirementRepository() *RequirementRepository {
	return &RequirementRepository{items: make(map[string]entities.Requirement)}
}

func (r *RequirementRepository) Create(_ context.Context, req entities.Requirement) (entities.Requirement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[req.ID]; ok {
		return entities.Requirement{}, interfaces.ErrConflict
	}
	r.items[req.ID] = req
	return req, nil
}

func (r *RequirementRepository) GetByID(_ context.Context, id string) (entities.Requirement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items[id], nil
}

func (r *RequirementRepository) ListByCompany(_ context.Context, companyID string, onlyActive bool) ([]entities.Requirement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []entities.Requirement{}
	for _, req := range r.items {
		if req.CompanyID != companyID || (onlyActive && !req.Activo) {
			continue
		}
		out = append(out, req)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (r *RequirementRepository) SetActive(_ context.Context, id string, active bool) (entities.Requirement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.items[id]
	if !ok {
		return entities.Requirement{}, nil
	}
	req.Activo = active
	req.UpdatedAt = time.Now().UTC()
	r.items[id] = req
	return req, nil
}
