package usecase

import (
	"context"
	"time"

	"pcg_compliance/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

// CompanyOutcome is the per-company line of a scheduler run.
type CompanyOutcome struct {
	CompanyID string
	Result    ProcessResult
	Err       error
}

// SchedulerReport is logged by the cron wrapper; nobody waits on it.
type SchedulerReport struct {
	StartedAt  time.Time
	FinishedAt time.Time
	Processed  int
	Skipped    int
	Failed     int
	Outcomes   []CompanyOutcome
}

// ISchedulerUseCase runs the daily pass over every company with the
// compliance module enabled.

type ISchedulerUseCase interface {
	RunDaily(ctx context.Context, now time.Time) (SchedulerReport, error)
}

type SchedulerUseCase struct {
	companies interfaces.ICompanyRepository
	periods   IPeriodUseCase
	log       zerolog.Logger
}

var _ ISchedulerUseCase = (*SchedulerUseCase)(nil)

func NewSchedulerUseCase(companies interfaces.ICompanyRepository, periods IPeriodUseCase, log zerolog.Logger) *SchedulerUseCase {
	return &SchedulerUseCase{
		companies: companies,
		periods:   periods,
		log:       log.With().Str("component", "scheduler").Logger(),
	}
}

// RunDaily processes companies one at a time. A failing company is logged
// and counted; the rest are still processed. Only a failure to list the
// companies aborts the run.
func (u *SchedulerUseCase) RunDaily(ctx context.Context, now time.Time) (SchedulerReport, error) {
	report := SchedulerReport{StartedAt: now.UTC()}

	companies, err := u.companies.ListComplianceEnabled(ctx)
	if err != nil {
		u.log.Error().Err(err).Msg("list compliance companies failed")
		report.FinishedAt = time.Now().UTC()
		return report, err
	}
	u.log.Info().Int("companies", len(companies)).Time("now", now).Msg("daily run start")

	for _, c := range companies {
		if err := ctx.Err(); err != nil {
			u.log.Warn().Err(err).Msg("daily run interrupted")
			report.FinishedAt = time.Now().UTC()
			return report, err
		}

		res, err := u.periods.ProcessCompany(ctx, c.ID, now)
		outcome := CompanyOutcome{CompanyID: c.ID, Result: res, Err: err}
		switch {
		case err != nil:
			report.Failed++
			u.log.Error().Err(err).Str("company_id", c.ID).Msg("company processing failed")
		case res.Skipped:
			report.Skipped++
		default:
			report.Processed++
		}
		report.Outcomes = append(report.Outcomes, outcome)
	}

	report.FinishedAt = time.Now().UTC()
	u.log.Info().
		Int("processed", report.Processed).
		Int("skipped", report.Skipped).
		Int("failed", report.Failed).
		Dur("elapsed", report.FinishedAt.Sub(report.StartedAt)).
		Msg("daily run finished")
	return report, nil
}
