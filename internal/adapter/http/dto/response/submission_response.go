package response

import (
	"time"

	"pcg_compliance/internal/domain/entities"
)

type ReviewResponse struct {
	Comentario     string    `json:"comentario"`
	RevisadoPorUID string    `json:"revisadoPorUid"`
	FechaRevision  time.Time `json:"fechaRevision"`
}

type SubmissionResponse struct {
	ID              string          `json:"id"`
	CompanyID       string          `json:"companyId"`
	PeriodID        string          `json:"periodId"`
	SubcontractorID string          `json:"subcontractorId"`
	RequirementID   string          `json:"requirementId"`
	Estado          string          `json:"estado"`
	FileURL         string          `json:"fileUrl"`
	FileName        string          `json:"fileName"`
	ContentType     string          `json:"contentType"`
	Size            int64           `json:"size"`
	Paginas         int             `json:"paginas,omitempty"`
	FechaCarga      time.Time       `json:"fechaCarga"`
	Comentario      string          `json:"comentario,omitempty"`
	Revision        *ReviewResponse `json:"revision,omitempty"`
}

func FromSubmission(s entities.Submission) SubmissionResponse {
	out := SubmissionResponse{
		ID:              s.ID,
		CompanyID:       s.CompanyID,
		PeriodID:        s.PeriodID,
		SubcontractorID: s.SubcontractorID,
		RequirementID:   s.RequirementID,
		Estado:          string(s.Estado),
		FileURL:         s.FileURL,
		FileName:        s.FileName,
		ContentType:     s.ContentType,
		Size:            s.Size,
		Paginas:         s.Paginas,
		FechaCarga:      s.FechaCarga,
		Comentario:      s.Comentario,
	}
	if s.Revision != nil {
		out.Revision = &ReviewResponse{
			Comentario:     s.Revision.Comentario,
			RevisadoPorUID: s.Revision.RevisadoPorUID,
			FechaRevision:  s.Revision.FechaRevision,
		}
	}
	return out
}

func FromSubmissions(list []entities.Submission) []SubmissionResponse {
	out := make([]SubmissionResponse, 0, len(list))
	for _, s := range list {
		out = append(out, FromSubmission(s))
	}
	return out
}

// SubmissionResultResponse is the {ok:true} envelope of intake and review.
type SubmissionResultResponse struct {
	OK         bool               `json:"ok"`
	Submission SubmissionResponse `json:"submission"`
}

func NewSubmissionResult(s entities.Submission) SubmissionResultResponse {
	return SubmissionResultResponse{OK: true, Submission: FromSubmission(s)}
}
