package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pcg_compliance/internal/domain/entities"
	"pcg_compliance/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

var (
	ErrInvalidCompanyID      = errors.New("invalid company_id")
	ErrInvalidPeriodID       = errors.New("invalid period_id")
	ErrPeriodNotFound        = errors.New("compliance period not found")
	ErrPeriodClosed          = errors.New("compliance period is closed")
	ErrCalendarMonthNotFound = errors.New("calendar month not found")
)

// ProcessResult summarizes one processCompany run.
type ProcessResult struct {
	CompanyID   string
	PeriodKey   string
	PeriodID    string
	Created     bool
	Skipped     bool
	Estado      entities.PeriodStatus
	Transitions []entities.PeriodStatus
	Forced      int
	CaughtUp    []string
}

// IPeriodUseCase drives the compliance period lifecycle.
//
//   - ProcessCompany is the daily state machine step for one company
//   - GetPeriod / ListStatuses are read-only views

type IPeriodUseCase interface {
	ProcessCompany(ctx context.Context, companyID string, now time.Time) (ProcessResult, error)
	GetPeriod(ctx context.Context, periodID string) (entities.CompliancePeriod, error)
	ListStatuses(ctx context.Context, periodID string) ([]entities.ComplianceStatus, error)
}

type PeriodUseCase struct {
	periods   interfaces.IPeriodRepository
	calendars interfaces.ICalendarRepository
	log       zerolog.Logger
}

var _ IPeriodUseCase = (*PeriodUseCase)(nil)

func NewPeriodUseCase(periods interfaces.IPeriodRepository, calendars interfaces.ICalendarRepository, log zerolog.Logger) *PeriodUseCase {
	return &PeriodUseCase{
		periods:   periods,
		calendars: calendars,
		log:       log.With().Str("component", "period-usecase").Logger(),
	}
}

// ProcessCompany materializes the current month's period if needed and
// applies the cutoff and payment-date transitions. Earlier periods that are
// still open are advanced first so a missed month-end still closes.
//
// Re-running with the same now is a no-op. A company without a calendar
// month for the current key is skipped without error.
func (u *PeriodUseCase) ProcessCompany(ctx context.Context, companyID string, now time.Time) (ProcessResult, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return ProcessResult{}, ErrInvalidCompanyID
	}

	now = now.UTC()
	key := entities.PeriodKey(now)
	res := ProcessResult{CompanyID: companyID, PeriodKey: key, PeriodID: entities.PeriodID(companyID, key)}
	log := u.log.With().Str("company_id", companyID).Str("periodo", key).Logger()

	catchUpErr := u.catchUp(ctx, companyID, key, now, &res)

	period, created, err := u.ensurePeriod(ctx, companyID, key, now)
	if errors.Is(err, ErrCalendarMonthNotFound) {
		log.Warn().Msg("calendar month not found, company skipped")
		res.Skipped = true
		return res, catchUpErr
	}
	if err != nil {
		return res, errors.Join(catchUpErr, err)
	}
	res.Created = created

	out, err := u.advance(ctx, period, now)
	res.Estado = out.period.Estado
	res.Transitions = out.transitions
	res.Forced = out.forced
	if err != nil {
		return res, errors.Join(catchUpErr, err)
	}

	log.Info().
		Bool("created", created).
		Str("estado", string(res.Estado)).
		Int("forced", res.Forced).
		Int("caught_up", len(res.CaughtUp)).
		Msg("company processed")
	return res, catchUpErr
}

func (u *PeriodUseCase) catchUp(ctx context.Context, companyID, currentKey string, now time.Time, res *ProcessResult) error {
	open, err := u.periods.ListOpenByCompany(ctx, companyID)
	if err != nil {
		return fmt.Errorf("list open periods: %w", err)
	}

	var errs []error
	for _, p := range open {
		if p.Periodo >= currentKey {
			continue
		}
		out, err := u.advance(ctx, p, now)
		if err != nil {
			u.log.Error().Err(err).Str("period_id", p.ID).Msg("catch-up failed")
			errs = append(errs, err)
			continue
		}
		if len(out.transitions) > 0 {
			res.CaughtUp = append(res.CaughtUp, p.ID)
		}
	}
	return errors.Join(errs...)
}

func (u *PeriodUseCase) ensurePeriod(ctx context.Context, companyID, key string, now time.Time) (entities.CompliancePeriod, bool, error) {
	id := entities.PeriodID(companyID, key)
	existing, err := u.periods.GetByID(ctx, id)
	if err != nil {
		return entities.CompliancePeriod{}, false, err
	}
	if existing.ID != "" {
		return existing, false, nil
	}

	if _, found, err := u.calendars.GetMonth(ctx, companyID, key); err != nil {
		return entities.CompliancePeriod{}, false, err
	} else if !found {
		return entities.CompliancePeriod{}, false, ErrCalendarMonthNotFound
	}

	// A locked month without a period is still materialized on the next run.
	if err := u.calendars.LockMonth(ctx, companyID, key); err != nil {
		return entities.CompliancePeriod{}, false, fmt.Errorf("lock calendar month: %w", err)
	}

	// Snapshot the dates only once they can no longer be edited.
	month, found, err := u.calendars.GetMonth(ctx, companyID, key)
	if err != nil {
		return entities.CompliancePeriod{}, false, err
	}
	if !found {
		return entities.CompliancePeriod{}, false, ErrCalendarMonthNotFound
	}
	month.Periodo = key

	created, err := u.periods.Create(ctx, entities.NewPeriodFromCalendar(companyID, month, now))
	if errors.Is(err, interfaces.ErrConflict) {
		existing, err = u.periods.GetByID(ctx, id)
		if err != nil {
			return entities.CompliancePeriod{}, false, err
		}
		if existing.ID == "" {
			return entities.CompliancePeriod{}, false, fmt.Errorf("create period %s: conflict without a stored period: %w", id, interfaces.ErrConflict)
		}
		return existing, false, nil
	}
	if err != nil {
		return entities.CompliancePeriod{}, false, fmt.Errorf("create period %s: %w", id, err)
	}

	u.log.Info().Str("period_id", id).Msg("period created")
	return created, true, nil
}

type advanceOutcome struct {
	period      entities.CompliancePeriod
	transitions []entities.PeriodStatus
	forced      int
}

func (u *PeriodUseCase) advance(ctx context.Context, p entities.CompliancePeriod, now time.Time) (advanceOutcome, error) {
	out := advanceOutcome{period: p}
	if p.IsClosed() {
		return out, nil
	}

	if now.After(p.CorteCarga) && p.Estado == entities.PeriodStatusAbiertoParaCarga {
		updated, err := u.periods.UpdateStatus(ctx, p.ID, entities.PeriodStatusAbiertoParaCarga, entities.PeriodStatusEnRevision, now)
		switch {
		case errors.Is(err, interfaces.ErrConflict):
			updated, err = u.periods.GetByID(ctx, p.ID)
			if err != nil {
				return out, err
			}
			if updated.ID == "" {
				return out, fmt.Errorf("move period %s to review: conflict without a stored period: %w", p.ID, interfaces.ErrConflict)
			}
		case err != nil:
			return out, fmt.Errorf("move period %s to review: %w", p.ID, err)
		default:
			out.transitions = append(out.transitions, entities.PeriodStatusEnRevision)
		}
		p = updated
		out.period = p
	}

	if !now.Before(p.FechaPago) && !p.IsClosed() {
		statuses, err := u.periods.ListStatuses(ctx, p.ID)
		if err != nil {
			return out, fmt.Errorf("list statuses %s: %w", p.ID, err)
		}
		forced := make([]entities.ComplianceStatus, 0, len(statuses))
		for _, st := range statuses {
			if f, changed := st.ForceNoCumple(now); changed {
				forced = append(forced, f)
			}
		}

		closed, err := u.periods.Close(ctx, p.ID, forced, now)
		if errors.Is(err, interfaces.ErrConflict) {
			current, gerr := u.periods.GetByID(ctx, p.ID)
			if gerr == nil && current.IsClosed() {
				out.period = current
				return out, nil
			}
		}
		if err != nil {
			return out, fmt.Errorf("close period %s: %w", p.ID, err)
		}
		out.period = closed
		out.transitions = append(out.transitions, entities.PeriodStatusCerrado)
		out.forced = len(forced)
		u.log.Info().Str("period_id", p.ID).Int("forced", len(forced)).Msg("period closed")
	}
	return out, nil
}

func (u *PeriodUseCase) GetPeriod(ctx context.Context, periodID string) (entities.CompliancePeriod, error) {
	periodID = strings.TrimSpace(periodID)
	if periodID == "" {
		return entities.CompliancePeriod{}, ErrInvalidPeriodID
	}

	p, err := u.periods.GetByID(ctx, periodID)
	if err != nil {
		return entities.CompliancePeriod{}, err
	}
	if p.ID == "" {
		return entities.CompliancePeriod{}, ErrPeriodNotFound
	}
	return p, nil
}

func (u *PeriodUseCase) ListStatuses(ctx context.Context, periodID string) ([]entities.ComplianceStatus, error) {
	p, err := u.GetPeriod(ctx, periodID)
	if err != nil {
		return nil, err
	}
	return u.periods.ListStatuses(ctx, p.ID)
}
