package response

import (
	"testing"
	"time"

	"pcg_compliance/internal/domain/entities"
	"pcg_compliance/internal/usecase"
)

func TestFromSubmission(t *testing.T) {
	now := time.Date(2025, 1, 12, 10, 0, 0, 0, time.UTC)
	s := entities.Submission{
		ID:       "ACME_2025-01_SUB-1_REQ-1",
		Estado:   entities.SubmissionStatusObservado,
		FileName: "f30.pdf",
		Revision: &entities.SubmissionReview{Comentario: "Falta firma", RevisadoPorUID: "rev-1", FechaRevision: now},
	}

	got := FromSubmission(s)
	if got.Estado != "Observado" {
		t.Fatalf("unexpected estado: %s", got.Estado)
	}
	if got.Revision == nil || got.Revision.Comentario != "Falta firma" {
		t.Fatalf("expected revision to be mapped: %+v", got.Revision)
	}

	s.Revision = nil
	if FromSubmission(s).Revision != nil {
		t.Fatalf("expected nil revision")
	}

	env := NewSubmissionResult(s)
	if !env.OK || env.Submission.ID != s.ID {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestFromCalendar_SortsMonths(t *testing.T) {
	c := entities.ComplianceCalendar{
		ID:   "ACME_2025",
		Year: 2025,
		Months: map[string]entities.CalendarMonth{
			"2025-03": {Periodo: "2025-03"},
			"2025-01": {Periodo: "2025-01"},
			"2025-02": {Periodo: "2025-02"},
		},
	}
	got := FromCalendar(c)
	if len(got.Months) != 3 || got.Months[0].Periodo != "2025-01" || got.Months[2].Periodo != "2025-03" {
		t.Fatalf("unexpected months order: %+v", got.Months)
	}
}

func TestFromProcessResult(t *testing.T) {
	r := usecase.ProcessResult{
		CompanyID:   "ACME",
		PeriodKey:   "2025-01",
		PeriodID:    "ACME_2025-01",
		Estado:      entities.PeriodStatusCerrado,
		Transitions: []entities.PeriodStatus{entities.PeriodStatusEnRevision, entities.PeriodStatusCerrado},
		Forced:      2,
	}
	got := FromProcessResult(r)
	if got.Estado != "Cerrado" || len(got.Transitions) != 2 || got.Transitions[0] != "En Revisión" {
		t.Fatalf("unexpected response: %+v", got)
	}
	if got.CaughtUp == nil {
		t.Fatalf("caughtUp should serialize as an empty list")
	}
}
