package response

import (
	"time"

	"pcg_compliance/internal/domain/entities"
	"pcg_compliance/internal/usecase"
)

type PeriodResponse struct {
	ID             string     `json:"id"`
	CompanyID      string     `json:"companyId"`
	Periodo        string     `json:"periodo"`
	CorteCarga     time.Time  `json:"corteCarga"`
	LimiteRevision time.Time  `json:"limiteRevision"`
	FechaPago      time.Time  `json:"fechaPago"`
	Estado         string     `json:"estado"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
	ClosedAt       *time.Time `json:"closedAt,omitempty"`
}

func FromPeriod(p entities.CompliancePeriod) PeriodResponse {
	return PeriodResponse{
		ID:             p.ID,
		CompanyID:      p.CompanyID,
		Periodo:        p.Periodo,
		CorteCarga:     p.CorteCarga,
		LimiteRevision: p.LimiteRevision,
		FechaPago:      p.FechaPago,
		Estado:         string(p.Estado),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
		ClosedAt:       p.ClosedAt,
	}
}

type StatusResponse struct {
	PeriodID        string    `json:"periodId"`
	SubcontractorID string    `json:"subcontractorId"`
	Estado          string    `json:"estado"`
	FechaAsignacion time.Time `json:"fechaAsignacion"`
	AsignadoPorUID  string    `json:"asignadoPorUid"`
}

func FromStatus(s entities.ComplianceStatus) StatusResponse {
	return StatusResponse{
		PeriodID:        s.PeriodID,
		SubcontractorID: s.SubcontractorID,
		Estado:          string(s.Estado),
		FechaAsignacion: s.FechaAsignacion,
		AsignadoPorUID:  s.AsignadoPorUID,
	}
}

func FromStatuses(list []entities.ComplianceStatus) []StatusResponse {
	out := make([]StatusResponse, 0, len(list))
	for _, s := range list {
		out = append(out, FromStatus(s))
	}
	return out
}

type EvaluationResponse struct {
	Status  StatusResponse `json:"status"`
	Missing []string       `json:"missingRequirements"`
}

func FromEvaluation(e usecase.Evaluation) EvaluationResponse {
	missing := e.Missing
	if missing == nil {
		missing = []string{}
	}
	return EvaluationResponse{Status: FromStatus(e.Status), Missing: missing}
}

type ProcessResponse struct {
	CompanyID   string   `json:"companyId"`
	PeriodKey   string   `json:"periodKey"`
	PeriodID    string   `json:"periodId"`
	Created     bool     `json:"created"`
	Skipped     bool     `json:"skipped"`
	Estado      string   `json:"estado,omitempty"`
	Transitions []string `json:"transitions"`
	Forced      int      `json:"forced"`
	CaughtUp    []string `json:"caughtUp"`
}

func FromProcessResult(r usecase.ProcessResult) ProcessResponse {
	transitions := make([]string, 0, len(r.Transitions))
	for _, t := range r.Transitions {
		transitions = append(transitions, string(t))
	}
	caughtUp := r.CaughtUp
	if caughtUp == nil {
		caughtUp = []string{}
	}
	return ProcessResponse{
		CompanyID:   r.CompanyID,
		PeriodKey:   r.PeriodKey,
		PeriodID:    r.PeriodID,
		Created:     r.Created,
		Skipped:     r.Skipped,
		Estado:      string(r.Estado),
		Transitions: transitions,
		Forced:      r.Forced,
		CaughtUp:    caughtUp,
	}
}
