package request

import (
	"strings"
	"time"
)

// ProcessRequest lets an operator replay a day. An empty At means now.
type ProcessRequest struct {
	At string `json:"at"`
}

func (r ProcessRequest) ResolveAt(now time.Time) (time.Time, error) {
	v := strings.TrimSpace(r.At)
	if v == "" {
		return now.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t.UTC(), nil
}
