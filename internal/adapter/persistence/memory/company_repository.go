// Package memory holds in-process implementations of the repository
// interfaces. They back STORE_BACKEND=memory and the state machine tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"pcg_compliance/internal/domain/entities"
	"pcg_compliance/internal/usecase/interfaces"
)

type CompanyRepository struct {
	mu    sync.RWMutex
	items map[string]entities.Company
}

var _ interfaces.ICompanyRepository = (*CompanyRepository)(nil)

func NewCompanyRepository(seed ...entities.Company) *CompanyRepository {
	r := &CompanyRepository{items: make(map[string]entities.Company)}
	for _, c := range seed {
		r.items[c.ID] = c
	}
	return r
}

// Save upserts a company. Company management is not exposed over HTTP.
func (r *CompanyRepository) Save(c entities.Company) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[c.ID] = c
}

func (r *CompanyRepository) GetByID(_ context.Context, id string) (entities.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items[id], nil
}

func (r *CompanyRepository) ListComplianceEnabled(_ context.Context) ([]entities.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Company, 0, len(r.items))
	for _, c := range r.items {
		if c.ComplianceModuleEnabled {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
