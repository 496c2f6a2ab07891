package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pcg_compliance/internal/domain/entities"
	"pcg_compliance/internal/usecase/interfaces"
)

var (
	ErrInvalidCalendarMonth = errors.New("invalid calendar month")
	ErrCalendarMonthLocked  = errors.New("calendar month is no longer editable")
	ErrCalendarNotFound     = errors.New("calendar not found")
)

// ICalendarUseCase authors the per-company compliance calendar that periods
// are materialized from.

type ICalendarUseCase interface {
	UpsertMonth(ctx context.Context, companyID string, month entities.CalendarMonth) (entities.CalendarMonth, error)
	GetYear(ctx context.Context, companyID string, year int) (entities.ComplianceCalendar, error)
}

type CalendarUseCase struct {
	repo interfaces.ICalendarRepository
}

var _ ICalendarUseCase = (*CalendarUseCase)(nil)

func NewCalendarUseCase(repo interfaces.ICalendarRepository) *CalendarUseCase {
	return &CalendarUseCase{repo: repo}
}

func (u *CalendarUseCase) UpsertMonth(ctx context.Context, companyID string, month entities.CalendarMonth) (entities.CalendarMonth, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return entities.CalendarMonth{}, ErrInvalidCompanyID
	}
	month.Periodo = strings.TrimSpace(month.Periodo)
	if _, _, err := entities.ParsePeriodKey(month.Periodo); err != nil {
		return entities.CalendarMonth{}, fmt.Errorf("%w: %v", ErrInvalidCalendarMonth, err)
	}
	if err := month.ValidateDates(); err != nil {
		return entities.CalendarMonth{}, fmt.Errorf("%w: %v", ErrInvalidCalendarMonth, err)
	}

	month.CorteCarga = month.CorteCarga.UTC()
	month.LimiteRevision = month.LimiteRevision.UTC()
	month.FechaPago = month.FechaPago.UTC()
	month.Editable = true

	if err := u.repo.UpsertMonth(ctx, companyID, month); err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			return entities.CalendarMonth{}, ErrCalendarMonthLocked
		}
		return entities.CalendarMonth{}, err
	}
	return month, nil
}

func (u *CalendarUseCase) GetYear(ctx context.Context, companyID string, year int) (entities.ComplianceCalendar, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return entities.ComplianceCalendar{}, ErrInvalidCompanyID
	}
	if year < 2000 || year > 9999 {
		return entities.ComplianceCalendar{}, ErrInvalidCalendarMonth
	}

	cal, err := u.repo.GetYear(ctx, companyID, year)
	if err != nil {
		return entities.ComplianceCalendar{}, err
	}
	if cal.ID == "" {
		return entities.ComplianceCalendar{}, ErrCalendarNotFound
	}
	return cal, nil
}
