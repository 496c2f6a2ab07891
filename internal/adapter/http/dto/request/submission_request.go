package request

import "strings"

// SubmitForm is the multipart part of an intake request. The file itself is
// read from the "file" field.
type SubmitForm struct {
	CompanyID       string `form:"companyId" binding:"required"`
	PeriodID        string `form:"periodId" binding:"required"`
	SubcontractorID string `form:"subcontractorId" binding:"required"`
	RequirementID   string `form:"requirementId" binding:"required"`
	Comentario      string `form:"comentario"`
}

type ReviewRequest struct {
	CompanyID    string `json:"companyId" binding:"required"`
	PeriodID     string `json:"periodId" binding:"required"`
	SubmissionID string `json:"submissionId" binding:"required"`
	Decision     string `json:"decision" binding:"required"`
	Comentario   string `json:"comentario"`
}

func (r ReviewRequest) ResolveDecision() string {
	return strings.TrimSpace(r.Decision)
}
