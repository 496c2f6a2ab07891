package handlers

import (
	"net/http"
	"strconv"

	"pcg_compliance/internal/adapter/http/dto/request"
	"pcg_compliance/internal/adapter/http/dto/response"
	"pcg_compliance/internal/usecase"

	"github.com/gin-gonic/gin"
)

type RequirementHandler struct {
	usecase usecase.IRequirementUseCase
}

func NewRequirementHandler(uc usecase.IRequirementUseCase) *RequirementHandler {
	return &RequirementHandler{usecase: uc}
}

func (h *RequirementHandler) Create(c *gin.Context) {
	companyID := c.Param("company_id")
	if _, ok := principalFor(c, companyID); !ok {
		abortWith(c, errForbidden)
		return
	}

	var payload request.CreateRequirementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	r, err := h.usecase.Create(c.Request.Context(), companyID, payload.Nombre, payload.Descripcion, payload.ResolveObligatorio())
	if err != nil {
		abortWith(c, mapComplianceError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromRequirement(r))
}

// List accepts ?activos=true to hide deactivated requirements.
func (h *RequirementHandler) List(c *gin.Context) {
	companyID := c.Param("company_id")
	if _, ok := principalFor(c, companyID); !ok {
		abortWith(c, errForbidden)
		return
	}
	onlyActive, _ := strconv.ParseBool(c.Query("activos"))

	list, err := h.usecase.ListByCompany(c.Request.Context(), companyID, onlyActive)
	if err != nil {
		abortWith(c, mapComplianceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRequirements(list))
}

func (h *RequirementHandler) SetActive(c *gin.Context) {
	companyID := c.Param("company_id")
	if _, ok := principalFor(c, companyID); !ok {
		abortWith(c, errForbidden)
		return
	}

	var payload request.SetRequirementActiveRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	r, err := h.usecase.SetActive(c.Request.Context(), companyID, c.Param("requirement_id"), *payload.Activo)
	if err != nil {
		abortWith(c, mapComplianceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRequirement(r))
}
