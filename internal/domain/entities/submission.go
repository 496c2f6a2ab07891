package entities

import (
	"path"
	"strings"
	"time"
)

// SubmissionStatus is the review cycle of an uploaded document.
//
//	Cargado -> Aprobado
//	Cargado -> Observado -> (re-upload) -> Cargado
type SubmissionStatus string

const (
	SubmissionStatusCargado   SubmissionStatus = "Cargado"
	SubmissionStatusAprobado  SubmissionStatus = "Aprobado"
	SubmissionStatusObservado SubmissionStatus = "Observado"
)

func ParseSubmissionStatus(v string) (SubmissionStatus, error) {
	switch s := SubmissionStatus(v); s {
	case SubmissionStatusCargado, SubmissionStatusAprobado, SubmissionStatusObservado:
		return s, nil
	default:
		return "", &InvalidFieldError{Entity: "Submission", Field: "estado", Value: v}
	}
}

// IsReviewDecision reports whether s is a valid outcome of a review.
func (s SubmissionStatus) IsReviewDecision() bool {
	return s == SubmissionStatusAprobado || s == SubmissionStatusObservado
}

type SubmissionReview struct {
	Comentario     string    `json:"comentario"`
	RevisadoPorUID string    `json:"revisado_por_uid"`
	FechaRevision  time.Time `json:"fecha_revision"`
}

// Submission (entrega documental) is one subcontractor upload for one
// requirement in one period.
//
// Storage model (DynamoDB):
//   - PK: id (periodId_subcontractorId_requirementId)
//   - GSI1 (period_id-index): period_id
type Submission struct {
	ID              string            `json:"id"`
	CompanyID       string            `json:"company_id"`
	PeriodID        string            `json:"period_id"`
	SubcontractorID string            `json:"subcontractor_id"`
	RequirementID   string            `json:"requirement_id"`
	Estado          SubmissionStatus  `json:"estado"`
	FileURL         string            `json:"file_url"`
	StoragePath     string            `json:"storage_path"`
	FileName        string            `json:"file_name"`
	ContentType     string            `json:"content_type"`
	Size            int64             `json:"size"`
	Paginas         int               `json:"paginas"`
	FechaCarga      time.Time         `json:"fecha_carga"`
	Comentario      string            `json:"comentario"`
	Revision        *SubmissionReview `json:"revision,omitempty"`
	UploadedByUID   string            `json:"uploaded_by_uid"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// SubmissionID joins the parts with "_". Callers must pass subcontractor and
// requirement ids accepted by ValidIDSegment so two pairs never collide.
func SubmissionID(periodID, subcontractorID, requirementID string) string {
	return periodID + "_" + subcontractorID + "_" + requirementID
}

// ValidIDSegment reports whether s can be embedded as-is in a composite id
// and in an object path.
func ValidIDSegment(s string) bool {
	if s == "" || s == "." || strings.ContainsAny(s, `/\_`) || strings.Contains(s, "..") {
		return false
	}
	return path.Clean(s) == s
}
