package handlers

import (
	"net/http"
	"strconv"

	"pcg_compliance/internal/adapter/http/dto/request"
	"pcg_compliance/internal/adapter/http/dto/response"
	"pcg_compliance/internal/domain/entities"
	"pcg_compliance/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	usecase usecase.ICalendarUseCase
}

func NewCalendarHandler(uc usecase.ICalendarUseCase) *CalendarHandler {
	return &CalendarHandler{usecase: uc}
}

func (h *CalendarHandler) UpsertMonth(c *gin.Context) {
	companyID := c.Param("company_id")
	if _, ok := principalFor(c, companyID); !ok {
		abortWith(c, errForbidden)
		return
	}

	var payload request.CalendarMonthRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	corte, limite, pago, err := payload.ResolveDates()
	if err != nil {
		abortWith(c, mapComplianceError(usecase.ErrInvalidCalendarMonth))
		return
	}

	month, err := h.usecase.UpsertMonth(c.Request.Context(), companyID, entities.CalendarMonth{
		Periodo:        c.Param("period_key"),
		CorteCarga:     corte,
		LimiteRevision: limite,
		FechaPago:      pago,
	})
	if err != nil {
		abortWith(c, mapComplianceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCalendarMonth(month))
}

func (h *CalendarHandler) GetYear(c *gin.Context) {
	companyID := c.Param("company_id")
	if _, ok := principalFor(c, companyID); !ok {
		abortWith(c, errForbidden)
		return
	}
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	cal, err := h.usecase.GetYear(c.Request.Context(), companyID, year)
	if err != nil {
		abortWith(c, mapComplianceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCalendar(cal))
}
