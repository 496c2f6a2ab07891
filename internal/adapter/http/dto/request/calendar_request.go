package request

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("invalid date")

const dateLayout = "2006-01-02"

// CalendarMonthRequest accepts either YYYY-MM-DD or RFC3339 dates.
type CalendarMonthRequest struct {
	CorteCarga     string `json:"corteCarga" binding:"required"`
	LimiteRevision string `json:"limiteRevision" binding:"required"`
	FechaPago      string `json:"fechaPago" binding:"required"`
}

func (r CalendarMonthRequest) ResolveDates() (corte, limite, pago time.Time, err error) {
	if corte, err = parseDate(r.CorteCarga); err != nil {
		return
	}
	if limite, err = parseDate(r.LimiteRevision); err != nil {
		return
	}
	pago, err = parseDate(r.FechaPago)
	return
}

func parseDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if t, err := time.Parse(dateLayout, v); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, ErrInvalidDate
}
