package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"pcg_compliance/internal/domain/entities"
	"pcg_compliance/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

var ErrInvalidSubcontractorID = errors.New("invalid subcontractor_id")

// Evaluation is the result of checking a subcontractor against the
// mandatory requirements of its company.
type Evaluation struct {
	Status  entities.ComplianceStatus
	Missing []string
}

// IComplianceStatusUseCase assigns the pre-closure verdict of a
// subcontractor. The scheduler remains the only writer at closure.

type IComplianceStatusUseCase interface {
	Evaluate(ctx context.Context, periodID, subcontractorID, actorUID string) (Evaluation, error)
}

type ComplianceStatusUseCase struct {
	periods      interfaces.IPeriodRepository
	submissions  interfaces.ISubmissionRepository
	requirements interfaces.IRequirementRepository
	log          zerolog.Logger
}

var _ IComplianceStatusUseCase = (*ComplianceStatusUseCase)(nil)

func NewComplianceStatusUseCase(
	periods interfaces.IPeriodRepository,
	submissions interfaces.ISubmissionRepository,
	requirements interfaces.IRequirementRepository,
	log zerolog.Logger,
) *ComplianceStatusUseCase {
	return &ComplianceStatusUseCase{
		periods:      periods,
		submissions:  submissions,
		requirements: requirements,
		log:          log.With().Str("component", "compliance-status-usecase").Logger(),
	}
}

// Evaluate marks the subcontractor Cumple when every active mandatory
// requirement has an Aprobado submission in the period, Pendiente otherwise.
func (u *ComplianceStatusUseCase) Evaluate(ctx context.Context, periodID, subcontractorID, actorUID string) (Evaluation, error) {
	periodID = strings.TrimSpace(periodID)
	subcontractorID = strings.TrimSpace(subcontractorID)
	if periodID == "" {
		return Evaluation{}, ErrInvalidPeriodID
	}
	if subcontractorID == "" {
		return Evaluation{}, ErrInvalidSubcontractorID
	}

	period, err := u.periods.GetByID(ctx, periodID)
	if err != nil {
		return Evaluation{}, err
	}
	if period.ID == "" {
		return Evaluation{}, ErrPeriodNotFound
	}
	if period.IsClosed() {
		return Evaluation{}, ErrPeriodClosed
	}

	reqs, err := u.requirements.ListByCompany(ctx, period.CompanyID, true)
	if err != nil {
		return Evaluation{}, err
	}
	subs, err := u.submissions.ListByPeriodAndSubcontractor(ctx, period.ID, subcontractorID)
	if err != nil {
		return Evaluation{}, err
	}

	approved := make(map[string]bool, len(subs))
	for _, s := range subs {
		if s.Estado == entities.SubmissionStatusAprobado {
			approved[s.RequirementID] = true
		}
	}

	missing := []string{}
	for _, r := range reqs {
		if r.EsObligatorio && !approved[r.ID] {
			missing = append(missing, r.ID)
		}
	}

	verdict := entities.ComplianceVerdictCumple
	if len(missing) > 0 {
		verdict = entities.ComplianceVerdictPendiente
	}
	st := entities.ComplianceStatus{
		PeriodID:        period.ID,
		SubcontractorID: subcontractorID,
		Estado:          verdict,
		FechaAsignacion: time.Now().UTC(),
		AsignadoPorUID:  strings.TrimSpace(actorUID),
	}
	// The write is conditional on the period still being open.
	if err := u.periods.SaveStatus(ctx, st); errors.Is(err, interfaces.ErrConflict) {
		return Evaluation{}, ErrPeriodClosed
	} else if err != nil {
		return Evaluation{}, err
	}

	u.log.Info().
		Str("period_id", period.ID).
		Str("subcontractor_id", subcontractorID).
		Str("estado", string(verdict)).
		Int("missing", len(missing)).
		Msg("compliance evaluated")
	return Evaluation{Status: st, Missing: missing}, nil
}
