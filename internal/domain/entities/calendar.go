package entities

import (
	"fmt"
	"strconv"
	"time"
)

const periodKeyLayout = "2006-01"

// CalendarMonth holds the authored boundary dates of one compliance month.
// Once a period is materialized from it, Editable is false and the dates are
// no longer touched by the scheduler.
type CalendarMonth struct {
	Periodo        string    `json:"periodo"`
	CorteCarga     time.Time `json:"corte_carga"`
	LimiteRevision time.Time `json:"limite_revision"`
	FechaPago      time.Time `json:"fecha_pago"`
	Editable       bool      `json:"editable"`
}

// ComplianceCalendar groups the months of one company-year.
//
// Storage model (DynamoDB):
//   - PK: id (companyId_year)
//   - months: map keyed by periodKey
type ComplianceCalendar struct {
	ID        string                   `json:"id"`
	CompanyID string                   `json:"company_id"`
	Year      int                      `json:"year"`
	Months    map[string]CalendarMonth `json:"months"`
	UpdatedAt time.Time                `json:"updated_at"`
}

func CalendarID(companyID string, year int) string {
	return companyID + "_" + strconv.Itoa(year)
}

// PeriodKey formats the UTC year-month of t as YYYY-MM.
func PeriodKey(t time.Time) string {
	return t.UTC().Format(periodKeyLayout)
}

// ParsePeriodKey returns the year of a YYYY-MM key.
func ParsePeriodKey(key string) (int, time.Month, error) {
	t, err := time.Parse(periodKeyLayout, key)
	if err != nil || t.Format(periodKeyLayout) != key {
		return 0, 0, fmt.Errorf("invalid period key %q", key)
	}
	return t.Year(), t.Month(), nil
}

// ValidateDates checks corteCarga <= limiteRevision <= fechaPago.
func (m CalendarMonth) ValidateDates() error {
	if m.CorteCarga.IsZero() || m.LimiteRevision.IsZero() || m.FechaPago.IsZero() {
		return fmt.Errorf("calendar month %s: all dates are required", m.Periodo)
	}
	if m.LimiteRevision.Before(m.CorteCarga) {
		return fmt.Errorf("calendar month %s: limite_revision before corte_carga", m.Periodo)
	}
	if m.FechaPago.Before(m.LimiteRevision) {
		return fmt.Errorf("calendar month %s: fecha_pago before limite_revision", m.Periodo)
	}
	return nil
}
