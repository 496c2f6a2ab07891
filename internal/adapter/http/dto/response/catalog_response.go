package response

import (
	"sort"
	"time"

	"pcg_compliance/internal/domain/entities"
)

type CalendarMonthResponse struct {
	Periodo        string    `json:"periodo"`
	CorteCarga     time.Time `json:"corteCarga"`
	LimiteRevision time.Time `json:"limiteRevision"`
	FechaPago      time.Time `json:"fechaPago"`
	Editable       bool      `json:"editable"`
}

func FromCalendarMonth(m entities.CalendarMonth) CalendarMonthResponse {
	return CalendarMonthResponse{
		Periodo:        m.Periodo,
		CorteCarga:     m.CorteCarga,
		LimiteRevision: m.LimiteRevision,
		FechaPago:      m.FechaPago,
		Editable:       m.Editable,
	}
}

type CalendarResponse struct {
	ID        string                  `json:"id"`
	CompanyID string                  `json:"companyId"`
	Year      int                     `json:"year"`
	Months    []CalendarMonthResponse `json:"months"`
}

// FromCalendar lists the months in period order.
func FromCalendar(c entities.ComplianceCalendar) CalendarResponse {
	months := make([]CalendarMonthResponse, 0, len(c.Months))
	for _, m := range c.Months {
		months = append(months, FromCalendarMonth(m))
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Periodo < months[j].Periodo })
	return CalendarResponse{ID: c.ID, CompanyID: c.CompanyID, Year: c.Year, Months: months}
}

type RequirementResponse struct {
	ID            string    `json:"id"`
	CompanyID     string    `json:"companyId"`
	Nombre        string    `json:"nombre"`
	Descripcion   string    `json:"descripcion"`
	Activo        bool      `json:"activo"`
	EsObligatorio bool      `json:"esObligatorio"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func FromRequirement(r entities.Requirement) RequirementResponse {
	return RequirementResponse{
		ID:            r.ID,
		CompanyID:     r.CompanyID,
		Nombre:        r.Nombre,
		Descripcion:   r.Descripcion,
		Activo:        r.Activo,
		EsObligatorio: r.EsObligatorio,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func FromRequirements(list []entities.Requirement) []RequirementResponse {
	out := make([]RequirementResponse, 0, len(list))
	for _, r := range list {
		out = append(out, FromRequirement(r))
	}
	return out
}
