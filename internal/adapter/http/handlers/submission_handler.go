package handlers

import (
	"fmt"
	"io"
	"net/http"

	"pcg_compliance/internal/adapter/http/dto/request"
	"pcg_compliance/internal/adapter/http/dto/response"
	"pcg_compliance/internal/domain/entities"
	"pcg_compliance/internal/infrastructure/auth"
	"pcg_compliance/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SubmissionHandler serves document intake and review decisions.

type SubmissionHandler struct {
	submissions usecase.ISubmissionUseCase
	periods     usecase.IPeriodUseCase
	maxBytes    int64
}

func NewSubmissionHandler(submissions usecase.ISubmissionUseCase, periods usecase.IPeriodUseCase, maxBytes int64) *SubmissionHandler {
	return &SubmissionHandler{submissions: submissions, periods: periods, maxBytes: maxBytes}
}

// Submit godoc
// @Summary      Upload a compliance document
// @Tags         compliance
// @Accept       multipart/form-data
// @Produce      json
// @Param        companyId        formData  string  true   "Company"
// @Param        periodId         formData  string  true   "Period"
// @Param        subcontractorId  formData  string  true   "Subcontractor"
// @Param        requirementId    formData  string  true   "Requirement"
// @Param        comentario       formData  string  false  "Note"
// @Param        file             formData  file    true   "Document"
// @Success      200  {object}  response.SubmissionResultResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /compliance/submissions [post]
func (h *SubmissionHandler) Submit(c *gin.Context) {
	var form request.SubmitForm
	if err := c.ShouldBind(&form); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	caller, ok := principalFor(c, form.CompanyID)
	if !ok || (caller.Role == auth.RoleSubcontratista && caller.SubcontractorID != form.SubcontractorID) {
		abortWith(c, errForbidden)
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	f, err := fh.Open()
	if err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	defer f.Close()

	var r io.Reader = f
	if h.maxBytes > 0 {
		r = io.LimitReader(f, h.maxBytes+1)
	}
	content, err := io.ReadAll(r)
	if err != nil {
		abortWith(c, mapComplianceError(fmt.Errorf("read upload: %w", err)))
		return
	}

	s, err := h.submissions.Submit(c.Request.Context(), usecase.SubmitCommand{
		CompanyID:       form.CompanyID,
		PeriodID:        form.PeriodID,
		SubcontractorID: form.SubcontractorID,
		RequirementID:   form.RequirementID,
		FileName:        fh.Filename,
		ContentType:     fh.Header.Get("Content-Type"),
		Content:         content,
		Comentario:      form.Comentario,
		UploadedByUID:   caller.UID,
	})
	if err != nil {
		abortWith(c, mapComplianceError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewSubmissionResult(s))
}

// Review godoc
// @Summary      Approve or observe a submission
// @Tags         compliance
// @Accept       json
// @Produce      json
// @Param        payload  body      request.ReviewRequest  true  "Decision"
// @Success      200      {object}  response.SubmissionResultResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /compliance/submissions/review [post]
func (h *SubmissionHandler) Review(c *gin.Context) {
	var payload request.ReviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	caller, ok := principalFor(c, payload.CompanyID)
	if !ok {
		abortWith(c, errForbidden)
		return
	}

	decision, err := entities.ParseSubmissionStatus(payload.ResolveDecision())
	if err != nil || !decision.IsReviewDecision() {
		abortWith(c, mapComplianceError(usecase.ErrInvalidDecision))
		return
	}

	s, err := h.submissions.Review(c.Request.Context(), usecase.ReviewCommand{
		SubmissionID: payload.SubmissionID,
		PeriodID:     payload.PeriodID,
		CompanyID:    payload.CompanyID,
		Decision:     decision,
		Comentario:   payload.Comentario,
		ReviewerUID:  caller.UID,
	})
	if err != nil {
		abortWith(c, mapComplianceError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewSubmissionResult(s))
}

// ListByPeriod returns the period's submissions; subcontractors only see
// their own.
func (h *SubmissionHandler) ListByPeriod(c *gin.Context) {
	p, err := h.periods.GetPeriod(c.Request.Context(), c.Param("period_id"))
	if err != nil {
		abortWith(c, mapComplianceError(err))
		return
	}
	caller, ok := principalFor(c, p.CompanyID)
	if !ok {
		abortWith(c, errPeriodNotFound)
		return
	}

	list, err := h.submissions.ListByPeriod(c.Request.Context(), p.ID)
	if err != nil {
		abortWith(c, mapComplianceError(err))
		return
	}
	if caller.Role == auth.RoleSubcontratista {
		own := list[:0:0]
		for _, s := range list {
			if s.SubcontractorID == caller.SubcontractorID {
				own = append(own, s)
			}
		}
		list = own
	}
	c.JSON(http.StatusOK, response.FromSubmissions(list))
}
