package interfaces

import (
	"context"

	"pcg_compliance/internal/domain/entities"
)

// ICalendarRepository persists the authored compliance calendar.
//
// Months are stored inside the companyId_year document. UpsertMonth must
// return ErrConflict when the stored month is no longer editable.

type ICalendarRepository interface {
	GetYear(ctx context.Context, companyID string, year int) (entities.ComplianceCalendar, error)
	GetMonth(ctx context.Context, companyID, periodKey string) (entities.CalendarMonth, bool, error)
	UpsertMonth(ctx context.Context, companyID string, month entities.CalendarMonth) error
	LockMonth(ctx context.Context, companyID, periodKey string) error
}
