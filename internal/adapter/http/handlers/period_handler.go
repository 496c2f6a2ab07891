package handlers

import (
	"net/http"
	"time"

	"pcg_compliance/internal/adapter/http/dto/request"
	"pcg_compliance/internal/adapter/http/dto/response"
	"pcg_compliance/internal/domain/entities"
	"pcg_compliance/internal/infrastructure/auth"
	"pcg_compliance/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PeriodHandler exposes the period lifecycle and per-subcontractor status.

type PeriodHandler struct {
	periods  usecase.IPeriodUseCase
	statuses usecase.IComplianceStatusUseCase
	now      func() time.Time
}

func NewPeriodHandler(periods usecase.IPeriodUseCase, statuses usecase.IComplianceStatusUseCase) *PeriodHandler {
	return &PeriodHandler{periods: periods, statuses: statuses, now: time.Now}
}

// GetPeriod godoc
// @Summary      Get a compliance period
// @Tags         compliance
// @Produce      json
// @Param        period_id  path      string  true  "Period id (companyId_YYYY-MM)"
// @Success      200        {object}  response.PeriodResponse
// @Failure      404        {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /compliance/periods/{period_id} [get]
func (h *PeriodHandler) GetPeriod(c *gin.Context) {
	p, _, ok := h.loadPeriod(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromPeriod(p))
}

// ListStatuses returns every status of the period; subcontractors only see
// their own.
func (h *PeriodHandler) ListStatuses(c *gin.Context) {
	p, caller, ok := h.loadPeriod(c)
	if !ok {
		return
	}

	list, err := h.periods.ListStatuses(c.Request.Context(), p.ID)
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
	c.JSON(http.StatusOK, response.FromStatuses(list))
}

func (h *PeriodHandler) EvaluateStatus(c *gin.Context) {
	p, caller, ok := h.loadPeriod(c)
	if !ok {
		return
	}

	ev, err := h.statuses.Evaluate(c.Request.Context(), p.ID, c.Param("subcontractor_id"), caller.UID)
	if err != nil {
		abortWith(c, mapComplianceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEvaluation(ev))
}

// ProcessCompany godoc
// @Summary      Run the daily period step for one company
// @Description  Replays the scheduler step at the given instant, or now when the body is empty.
// @Tags         compliance
// @Accept       json
// @Produce      json
// @Param        company_id  path      string                   true   "Company"
// @Param        payload     body      request.ProcessRequest   false  "Instant"
// @Success      200         {object}  response.ProcessResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      403         {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /compliance/companies/{company_id}/process [post]
func (h *PeriodHandler) ProcessCompany(c *gin.Context) {
	companyID := c.Param("company_id")
	if _, ok := principalFor(c, companyID); !ok {
		abortWith(c, errForbidden)
		return
	}

	var payload request.ProcessRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			abortWith(c, errInvalidPayload)
			return
		}
	}
	at, err := payload.ResolveAt(h.now())
	if err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	res, err := h.periods.ProcessCompany(c.Request.Context(), companyID, at)
	if err != nil {
		abortWith(c, mapComplianceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProcessResult(res))
}

// loadPeriod hides periods of other companies behind a 404.
func (h *PeriodHandler) loadPeriod(c *gin.Context) (entities.CompliancePeriod, auth.Principal, bool) {
	p, err := h.periods.GetPeriod(c.Request.Context(), c.Param("period_id"))
	if err != nil {
		abortWith(c, mapComplianceError(err))
		return entities.CompliancePeriod{}, auth.Principal{}, false
	}
	caller, ok := principalFor(c, p.CompanyID)
	if !ok {
		abortWith(c, errPeriodNotFound)
		return entities.CompliancePeriod{}, auth.Principal{}, false
	}
	return p, caller, true
}
