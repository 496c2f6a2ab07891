package entities

import "time"

// PeriodStatus is the lifecycle of a monthly compliance period.
//
// Transitions are monotonic:
//
//	Abierto para Carga -> En Revisión -> Cerrado
//
// Cerrado is terminal.
type PeriodStatus string

const (
	PeriodStatusAbiertoParaCarga PeriodStatus = "Abierto para Carga"
	PeriodStatusEnRevision       PeriodStatus = "En Revisión"
	PeriodStatusCerrado          PeriodStatus = "Cerrado"
)

func ParsePeriodStatus(v string) (PeriodStatus, error) {
	switch s := PeriodStatus(v); s {
	case PeriodStatusAbiertoParaCarga, PeriodStatusEnRevision, PeriodStatusCerrado:
		return s, nil
	default:
		return "", &InvalidFieldError{Entity: "CompliancePeriod", Field: "estado", Value: v}
	}
}

func (s PeriodStatus) rank() int {
	switch s {
	case PeriodStatusAbiertoParaCarga:
		return 1
	case PeriodStatusEnRevision:
		return 2
	case PeriodStatusCerrado:
		return 3
	default:
		return 0
	}
}

// CanAdvanceTo reports whether moving from s to next keeps the lifecycle
// monotonic.
func (s PeriodStatus) CanAdvanceTo(next PeriodStatus) bool {
	return s.rank() > 0 && next.rank() > s.rank()
}

// CompliancePeriod is the materialized monthly window of a company.
//
// Storage model (DynamoDB):
//   - PK: id (companyId_periodKey)
//   - GSI1 (company_id-index): company_id
//
// Dates are a snapshot of the calendar month at creation time.
type CompliancePeriod struct {
	ID             string       `json:"id"`
	CompanyID      string       `json:"company_id"`
	Periodo        string       `json:"periodo"`
	CorteCarga     time.Time    `json:"corte_carga"`
	LimiteRevision time.Time    `json:"limite_revision"`
	FechaPago      time.Time    `json:"fecha_pago"`
	Estado         PeriodStatus `json:"estado"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
	ClosedAt       *time.Time   `json:"closed_at,omitempty"`
}

func PeriodID(companyID, periodKey string) string {
	return companyID + "_" + periodKey
}

// NewPeriodFromCalendar materializes an open period from an authored month.
func NewPeriodFromCalendar(companyID string, m CalendarMonth, now time.Time) CompliancePeriod {
	return CompliancePeriod{
		ID:             PeriodID(companyID, m.Periodo),
		CompanyID:      companyID,
		Periodo:        m.Periodo,
		CorteCarga:     m.CorteCarga,
		LimiteRevision: m.LimiteRevision,
		FechaPago:      m.FechaPago,
		Estado:         PeriodStatusAbiertoParaCarga,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (p CompliancePeriod) IsClosed() bool {
	return p.Estado == PeriodStatusCerrado
}
