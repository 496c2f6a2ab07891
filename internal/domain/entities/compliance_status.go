package entities

import "time"

// SystemUID marks status assignments made by the scheduler.
const SystemUID = "system"

type ComplianceVerdict string

const (
	ComplianceVerdictPendiente ComplianceVerdict = "Pendiente"
	ComplianceVerdictCumple    ComplianceVerdict = "Cumple"
	ComplianceVerdictNoCumple  ComplianceVerdict = "No Cumple"
)

func ParseComplianceVerdict(v string) (ComplianceVerdict, error) {
	switch s := ComplianceVerdict(v); s {
	case ComplianceVerdictPendiente, ComplianceVerdictCumple, ComplianceVerdictNoCumple:
		return s, nil
	default:
		return "", &InvalidFieldError{Entity: "ComplianceStatus", Field: "estado", Value: v}
	}
}

// ComplianceStatus is the per-subcontractor verdict within a period.
//
// Storage model (DynamoDB):
//   - PK: period_id
//   - SK: subcontractor_id
type ComplianceStatus struct {
	PeriodID        string            `json:"period_id"`
	SubcontractorID string            `json:"subcontractor_id"`
	Estado          ComplianceVerdict `json:"estado"`
	FechaAsignacion time.Time         `json:"fecha_asignacion"`
	AsignadoPorUID  string            `json:"asignado_por_uid"`
}

// ForceNoCumple returns the closure outcome for a status that did not reach
// Cumple. Cumple statuses are returned unchanged with ok=false.
func (s ComplianceStatus) ForceNoCumple(now time.Time) (ComplianceStatus, bool) {
	if s.Estado == ComplianceVerdictCumple {
		return s, false
	}
	s.Estado = ComplianceVerdictNoCumple
	s.FechaAsignacion = now
	s.AsignadoPorUID = SystemUID
	return s, true
}
