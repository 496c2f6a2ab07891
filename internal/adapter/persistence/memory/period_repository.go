package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"pcg_compliance/internal/domain/entities"
	"pcg_compliance/internal/usecase/interfaces"
)

// PeriodRepository keeps periods and their statuses under one lock so Close
// applies the status fan-out and the period update together.
type PeriodRepository struct {
	mu       sync.RWMutex
	periods  map[string]entities.CompliancePeriod
	statuses map[string]map[string]entities.ComplianceStatus
	writes   int
}

var _ interfaces.IPeriodRepository = (*PeriodRepository)(nil)

func NewPeriodRepository() *PeriodRepository {
	return &PeriodRepository{
		periods:  make(map[string]entities.CompliancePeriod),
		statuses: make(map[string]map[string]entities.ComplianceStatus),
	}
}

// Writes counts successful mutations; tests use it to assert no-op runs.
func (r *PeriodRepository) Writes() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.writes
}

func (r *PeriodRepository) GetByID(_ context.Context, id string) (entities.CompliancePeriod, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyPeriod(r.periods[id]), nil
}

func (r *PeriodRepository) Create(_ context.Context, p entities.CompliancePeriod) (entities.CompliancePeriod, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.periods[p.ID]; ok {
		return entities.CompliancePeriod{}, interfaces.ErrConflict
	}
	r.periods[p.ID] = copyPeriod(p)
	r.writes++
	return copyPeriod(p), nil
}

func (r *PeriodRepository) UpdateStatus(_ context.Context, id string, from, to entities.PeriodStatus, now time.Time) (entities.CompliancePeriod, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.periods[id]
	if !ok || p.Estado != from {
		return entities.CompliancePeriod{}, interfaces.ErrConflict
	}
	p.Estado = to
	p.UpdatedAt = now
	r.periods[id] = p
	r.writes++
	return copyPeriod(p), nil
}

func (r *PeriodRepository) ListOpenByCompany(_ context.Context, companyID string) ([]entities.CompliancePeriod, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []entities.CompliancePeriod
	for _, p := range r.periods {
		if p.CompanyID == companyID && !p.IsClosed() {
			out = append(out, copyPeriod(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Periodo < out[j].Periodo })
	return out, nil
}

func (r *PeriodRepository) Close(_ context.Context, id string, forced []entities.ComplianceStatus, now time.Time) (entities.CompliancePeriod, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.periods[id]
	if !ok || p.IsClosed() {
		return entities.CompliancePeriod{}, interfaces.ErrConflict
	}
	children := r.statuses[id]
	for _, f := range forced {
		if cur, ok := children[f.SubcontractorID]; ok && cur.Estado == entities.ComplianceVerdictCumple {
			return entities.CompliancePeriod{}, interfaces.ErrConflict
		}
	}

	if children == nil && len(forced) > 0 {
		children = make(map[string]entities.ComplianceStatus, len(forced))
		r.statuses[id] = children
	}
	for _, f := range forced {
		children[f.SubcontractorID] = f
	}
	closedAt := now
	p.Estado = entities.PeriodStatusCerrado
	p.ClosedAt = &closedAt
	p.UpdatedAt = now
	r.periods[id] = p
	r.writes++
	return copyPeriod(p), nil
}

func (r *PeriodRepository) GetStatus(_ context.Context, periodID, subcontractorID string) (entities.ComplianceStatus, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.statuses[periodID][subcontractorID], nil
}

func (r *PeriodRepository) ListStatuses(_ context.Context, periodID string) ([]entities.ComplianceStatus, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	children := r.statuses[periodID]
	out := make([]entities.ComplianceStatus, 0, len(children))
	for _, st := range children {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubcontractorID < out[j].SubcontractorID })
	return out, nil
}

func (r *PeriodRepository) SaveStatus(_ context.Context, st entities.ComplianceStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.periods[st.PeriodID]; ok && p.IsClosed() {
		return interfaces.ErrConflict
	}
	children := r.statuses[st.PeriodID]
	if children == nil {
		children = make(map[string]entities.ComplianceStatus)
		r.statuses[st.PeriodID] = children
	}
	children[st.SubcontractorID] = st
	r.writes++
	return nil
}

func copyPeriod(p entities.CompliancePeriod) entities.CompliancePeriod {
	if p.ClosedAt != nil {
		t := *p.ClosedAt
		p.ClosedAt = &t
	}
	return p
}
