package memory

import (
	"context"
	"sync"
	"time"

	"pcg_compliance/internal/domain/entities"
	"pcg_compliance/internal/usecase/interfaces"
)

type CalendarRepository struct {
	mu    sync.RWMutex
	items map[string]entities.ComplianceCalendar
}

var _ interfaces.ICalendarRepository = (*CalendarRepository)(nil)

func NewCalendarRepository() *CalendarRepository {
	return &CalendarRepository{items: make(map[string]entities.ComplianceCalendar)}
}

func (r *CalendarRepository) GetYear(_ context.Context, companyID string, year int) (entities.ComplianceCalendar, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cal, ok := r.items[entities.CalendarID(companyID, year)]
	if !ok {
		return entities.ComplianceCalendar{}, nil
	}
	return copyCalendar(cal), nil
}

func (r *CalendarRepository) GetMonth(_ context.Context, companyID, periodKey string) (entities.CalendarMonth, bool, error) {
	year, _, err := entities.ParsePeriodKey(periodKey)
	if err != nil {
		return entities.CalendarMonth{}, false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	cal, ok := r.items[entities.CalendarID(companyID, year)]
	if !ok {
		return entities.CalendarMonth{}, false, nil
	}
	m, ok := cal.Months[periodKey]
	return m, ok, nil
}

func (r *CalendarRepository) UpsertMonth(_ context.Context, companyID string, month entities.CalendarMonth) error {
	year, _, err := entities.ParsePeriodKey(month.Periodo)
	if err != nil {
		return err
	}
	id := entities.CalendarID(companyID, year)

	r.mu.Lock()
	defer r.mu.Unlock()
	cal, ok := r.items[id]
	if !ok {
		cal = entities.ComplianceCalendar{ID: id, CompanyID: companyID, Year: year, Months: map[string]entities.CalendarMonth{}}
	}
	if prev, ok := cal.Months[month.Periodo]; ok && !prev.Editable {
		return interfaces.ErrConflict
	}
	cal.Months[month.Periodo] = month
	cal.UpdatedAt = time.Now().UTC()
	r.items[id] = cal
	return nil
}

func (r *CalendarRepository) LockMonth(_ context.Context, companyID, periodKey string) error {
	year, _, err := entities.ParsePeriodKey(periodKey)
	if err != nil {
		return err
	}
	id := entities.CalendarID(companyID, year)

	r.mu.Lock()
	defer r.mu.Unlock()
	cal, ok := r.items[id]
	if !ok {
		return nil
	}
	m, ok := cal.Months[periodKey]
	if !ok {
		return nil
	}
	m.Editable = false
	cal.Months[periodKey] = m
	r.items[id] = cal
	return nil
}

func copyCalendar(c entities.ComplianceCalendar) entities.ComplianceCalendar {
	months := make(map[string]entities.CalendarMonth, len(c.Months))
	for k, v := range c.Months {
		months[k] = v
	}
	c.Months = months
	return c
}
