package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"pcg_compliance/internal/adapter/persistence/memory"
	"pcg_compliance/internal/domain/entities"
	"pcg_compliance/internal/usecase/interfaces"
	mock_interfaces "pcg_compliance/internal/usecase/interfaces/mocks"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

var pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<< >>\nendobj\n")

type submissionFixture struct {
	periods      *memory.PeriodRepository
	submissions  *memory.SubmissionRepository
	requirements *memory.RequirementRepository
	blobs        *mock_interfaces.MockIBlobStore
	inspector    *mock_interfaces.MockIDocumentInspector
	uc           *SubmissionUseCase
	periodID     string
}

func newSubmissionFixture(t *testing.T, ctrl *gomock.Controller, estado entities.PeriodStatus) submissionFixture {
	t.Helper()
	f := submissionFixture{
		periods:      memory.NewPeriodRepository(),
		submissions:  memory.NewSubmissionRepository(),
		requirements: memory.NewRequirementRepository(),
		blobs:        mock_interfaces.NewMockIBlobStore(ctrl),
		inspector:    mock_interfaces.NewMockIDocumentInspector(ctrl),
	}
	p := entities.NewPeriodFromCalendar("ACME", march2024(), day(2024, 3, 1))
	p.Estado = estado
	if _, err := f.periods.Create(context.Background(), p); err != nil {
		t.Fatalf("seed period: %v", err)
	}
	f.periodID = p.ID
	for _, r := range []entities.Requirement{
		{ID: "REQ-F30", CompanyID: "ACME", Nombre: "F30", Activo: true, EsObligatorio: true},
		{ID: "REQ-OLD", CompanyID: "ACME", Nombre: "Retired", Activo: false, EsObligatorio: true},
		{ID: "REQ-1", CompanyID: "OTHERCO", Nombre: "F30", Activo: true, EsObligatorio: true},
	} {
		if _, err := f.requirements.Create(context.Background(), r); err != nil {
			t.Fatalf("seed requirement: %v", err)
		}
	}
	f.uc = NewSubmissionUseCase(f.submissions, f.periods, f.requirements, f.blobs, f.inspector,
		SubmissionPolicy{MaxBytes: 1024, AllowedTypes: []string{"application/pdf", "image/png"}}, zerolog.Nop())
	return f
}

func (f submissionFixture) cmd() SubmitCommand {
	return SubmitCommand{
		CompanyID:       "ACME",
		PeriodID:        f.periodID,
		SubcontractorID: "SUB-1",
		RequirementID:   "REQ-F30",
		FileName:        "f30.pdf",
		ContentType:     "application/pdf",
		Content:         pdfBytes,
		Comentario:      "marzo",
		UploadedByUID:   "user-sub-1",
	}
}

func (f submissionFixture) expectUpload() {
	f.inspector.EXPECT().PageCount(pdfBytes).Return(2, nil).AnyTimes()
	f.blobs.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), int64(len(pdfBytes)), "application/pdf").
		DoAndReturn(func(_ context.Context, _ string, body io.Reader, _ int64, _ string) error {
			_, err := io.ReadAll(body)
			return err
		}).AnyTimes()
	f.blobs.EXPECT().DownloadURL(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, path string) (string, error) {
			return "https://blobs.local/" + path, nil
		}).AnyTimes()
}

func TestSubmissionUseCase_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("stores file and writes Cargado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSubmissionFixture(t, ctrl, entities.PeriodStatusAbiertoParaCarga)
		wantPath := "cumplimiento/ACME/ACME_2024-03/SUB-1/REQ-F30/f30.pdf"

		f.inspector.EXPECT().PageCount(pdfBytes).Return(2, nil)
		f.blobs.EXPECT().Put(gomock.Any(), wantPath, gomock.Any(), int64(len(pdfBytes)), "application/pdf").Return(nil)
		f.blobs.EXPECT().DownloadURL(gomock.Any(), wantPath).Return("https://blobs.local/signed", nil)

		s, err := f.uc.Submit(ctx, f.cmd())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.ID != "ACME_2024-03_SUB-1_REQ-F30" || s.Estado != entities.SubmissionStatusCargado {
			t.Fatalf("unexpected submission: %+v", s)
		}
		if s.FileURL != "https://blobs.local/signed" || s.StoragePath != wantPath || s.Paginas != 2 || s.Revision != nil {
			t.Fatalf("unexpected file fields: %+v", s)
		}
		if s.FechaCarga.IsZero() || s.UploadedByUID != "user-sub-1" {
			t.Fatalf("unexpected audit fields: %+v", s)
		}
	})

	t.Run("validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSubmissionFixture(t, ctrl, entities.PeriodStatusAbiertoParaCarga)

		tests := []struct {
			name   string
			mutate func(*SubmitCommand)
			want   error
		}{
			{"missing subcontractor", func(c *SubmitCommand) { c.SubcontractorID = " " }, ErrInvalidSubmission},
			{"missing requirement", func(c *SubmitCommand) { c.RequirementID = "" }, ErrInvalidSubmission},
			{"bad file name", func(c *SubmitCommand) { c.FileName = ".." }, ErrInvalidSubmission},
			{"empty file", func(c *SubmitCommand) { c.Content = nil }, ErrInvalidSubmission},
			{"too large", func(c *SubmitCommand) { c.Content = make([]byte, 2048) }, ErrSubmissionTooLarge},
			{"content type", func(c *SubmitCommand) { c.ContentType = "application/zip" }, ErrUnsupportedContentType},
			{"subcontractor with separator", func(c *SubmitCommand) { c.SubcontractorID = "SUB_A" }, ErrInvalidSubmission},
			{"requirement with separator", func(c *SubmitCommand) { c.RequirementID = "A_REQ" }, ErrInvalidSubmission},
			{"unknown requirement", func(c *SubmitCommand) { c.RequirementID = "REQ-NOPE" }, ErrRequirementNotFound},
			{"requirement of another company", func(c *SubmitCommand) { c.RequirementID = "REQ-1" }, ErrRequirementNotFound},
			{"other company", func(c *SubmitCommand) { c.CompanyID = "BETA" }, ErrPeriodNotFound},
			{"unknown period", func(c *SubmitCommand) { c.PeriodID = "ACME_2030-01" }, ErrPeriodNotFound},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				c := f.cmd()
				tt.mutate(&c)
				if _, err := f.uc.Submit(ctx, c); !errors.Is(err, tt.want) {
					t.Fatalf("expected %v, got %v", tt.want, err)
				}
			})
		}
	})

	t.Run("path traversal is stripped from the file name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSubmissionFixture(t, ctrl, entities.PeriodStatusAbiertoParaCarga)
		f.expectUpload()

		c := f.cmd()
		c.FileName = `..\..\etc\f30.pdf`
		s, err := f.uc.Submit(ctx, c)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.FileName != "f30.pdf" || strings.Contains(s.StoragePath, "..") {
			t.Fatalf("unexpected path: %s", s.StoragePath)
		}
	})

	t.Run("ids cannot escape the period prefix", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSubmissionFixture(t, ctrl, entities.PeriodStatusAbiertoParaCarga)

		for _, c := range []SubmitCommand{
			func() SubmitCommand {
				c := f.cmd()
				c.RequirementID = "../../../../cumplimiento/OTHERCO/OTHERCO_2024-03/SUB-9/REQ-1"
				return c
			}(),
			func() SubmitCommand {
				c := f.cmd()
				c.SubcontractorID = `..\OTHERCO`
				return c
			}(),
			func() SubmitCommand {
				c := f.cmd()
				c.SubcontractorID = "SUB-1/../../../OTHERCO"
				return c
			}(),
		} {
			if _, err := f.uc.Submit(ctx, c); !errors.Is(err, ErrInvalidSubmission) {
				t.Fatalf("expected ErrInvalidSubmission for %q/%q, got %v", c.SubcontractorID, c.RequirementID, err)
			}
		}
		list, _ := f.submissions.ListByPeriod(ctx, f.periodID)
		if len(list) != 0 {
			t.Fatalf("nothing should be stored: %+v", list)
		}
	})

	t.Run("inactive requirement still accepts uploads", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSubmissionFixture(t, ctrl, entities.PeriodStatusAbiertoParaCarga)
		f.expectUpload()

		c := f.cmd()
		c.RequirementID = "REQ-OLD"
		s, err := f.uc.Submit(ctx, c)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.StoragePath != "cumplimiento/ACME/ACME_2024-03/SUB-1/REQ-OLD/f30.pdf" {
			t.Fatalf("unexpected path: %s", s.StoragePath)
		}
	})

	t.Run("distinct subcontractors keep distinct records", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSubmissionFixture(t, ctrl, entities.PeriodStatusAbiertoParaCarga)
		f.expectUpload()

		a := f.cmd()
		a.SubcontractorID = "SUB-A"
		b := f.cmd()
		b.SubcontractorID = "SUB"
		first, err := f.uc.Submit(ctx, a)
		if err != nil {
			t.Fatalf("submit a: %v", err)
		}
		second, err := f.uc.Submit(ctx, b)
		if err != nil {
			t.Fatalf("submit b: %v", err)
		}
		if first.ID == second.ID {
			t.Fatalf("ids collide: %s", first.ID)
		}
		stored, _ := f.submissions.GetByID(ctx, first.ID)
		if stored.SubcontractorID != "SUB-A" {
			t.Fatalf("record of SUB-A was replaced: %+v", stored)
		}
	})

	t.Run("content type is sniffed when not declared", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSubmissionFixture(t, ctrl, entities.PeriodStatusAbiertoParaCarga)
		f.expectUpload()

		c := f.cmd()
		c.ContentType = "application/octet-stream"
		s, err := f.uc.Submit(ctx, c)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.ContentType != "application/pdf" {
			t.Fatalf("expected sniffed pdf, got %s", s.ContentType)
		}
	})

	t.Run("closed period is rejected before upload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSubmissionFixture(t, ctrl, entities.PeriodStatusCerrado)

		if _, err := f.uc.Submit(ctx, f.cmd()); !errors.Is(err, ErrPeriodClosed) {
			t.Fatalf("expected ErrPeriodClosed, got %v", err)
		}
	})

	t.Run("uploads are accepted during review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSubmissionFixture(t, ctrl, entities.PeriodStatusEnRevision)
		f.expectUpload()

		if _, err := f.uc.Submit(ctx, f.cmd()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unreadable pdf", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSubmissionFixture(t, ctrl, entities.PeriodStatusAbiertoParaCarga)
		f.inspector.EXPECT().PageCount(pdfBytes).Return(0, errors.New("malformed xref"))

		if _, err := f.uc.Submit(ctx, f.cmd()); !errors.Is(err, ErrInvalidDocument) {
			t.Fatalf("expected ErrInvalidDocument, got %v", err)
		}
	})

	t.Run("blob failure leaves no submission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSubmissionFixture(t, ctrl, entities.PeriodStatusAbiertoParaCarga)
		f.inspector.EXPECT().PageCount(pdfBytes).Return(1, nil)
		f.blobs.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("s3 down"))

		if _, err := f.uc.Submit(ctx, f.cmd()); err == nil {
			t.Fatalf("expected error")
		}
		s, _ := f.submissions.GetByID(ctx, "ACME_2024-03_SUB-1_REQ-F30")
		if s.ID != "" {
			t.Fatalf("submission should not be written: %+v", s)
		}
	})
}

func TestSubmissionUseCase_ReviewCycle(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newSubmissionFixture(t, ctrl, entities.PeriodStatusAbiertoParaCarga)
	f.expectUpload()

	first, err := f.uc.Submit(ctx, f.cmd())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	review := ReviewCommand{
		SubmissionID: first.ID,
		PeriodID:     f.periodID,
		CompanyID:    "ACME",
		Decision:     entities.SubmissionStatusObservado,
		Comentario:   "Falta firma",
		ReviewerUID:  "rev-1",
	}

	t.Run("observado requires a comment", func(t *testing.T) {
		r := review
		r.Comentario = "  "
		if _, err := f.uc.Review(ctx, r); !errors.Is(err, ErrReviewCommentRequired) {
			t.Fatalf("expected ErrReviewCommentRequired, got %v", err)
		}
	})

	t.Run("decision must be a review outcome", func(t *testing.T) {
		r := review
		r.Decision = entities.SubmissionStatusCargado
		if _, err := f.uc.Review(ctx, r); !errors.Is(err, ErrInvalidDecision) {
			t.Fatalf("expected ErrInvalidDecision, got %v", err)
		}
	})

	t.Run("submission of another period is not found", func(t *testing.T) {
		r := review
		r.PeriodID = "ACME_2024-04"
		if _, err := f.uc.Review(ctx, r); !errors.Is(err, ErrSubmissionNotFound) {
			t.Fatalf("expected ErrSubmissionNotFound, got %v", err)
		}
	})

	t.Run("observe stores the review", func(t *testing.T) {
		s, err := f.uc.Review(ctx, review)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Estado != entities.SubmissionStatusObservado || s.Revision == nil || s.Revision.Comentario != "Falta firma" || s.Revision.RevisadoPorUID != "rev-1" {
			t.Fatalf("unexpected review result: %+v", s)
		}
	})

	t.Run("second decision on the same upload is rejected", func(t *testing.T) {
		r := review
		r.Decision = entities.SubmissionStatusAprobado
		if _, err := f.uc.Review(ctx, r); !errors.Is(err, ErrInvalidSubmissionTransition) {
			t.Fatalf("expected ErrInvalidSubmissionTransition, got %v", err)
		}
	})

	t.Run("re-upload resets to Cargado", func(t *testing.T) {
		s, err := f.uc.Submit(ctx, f.cmd())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.ID != first.ID || s.Estado != entities.SubmissionStatusCargado || s.Revision != nil {
			t.Fatalf("unexpected resubmission: %+v", s)
		}
	})

	t.Run("approve then upload is rejected", func(t *testing.T) {
		r := review
		r.Decision = entities.SubmissionStatusAprobado
		r.Comentario = ""
		if _, err := f.uc.Review(ctx, r); err != nil {
			t.Fatalf("approve: %v", err)
		}
		if _, err := f.uc.Submit(ctx, f.cmd()); !errors.Is(err, ErrSubmissionAlreadyApproved) {
			t.Fatalf("expected ErrSubmissionAlreadyApproved, got %v", err)
		}
	})

	t.Run("listing", func(t *testing.T) {
		list, err := f.uc.ListByPeriod(ctx, f.periodID)
		if err != nil || len(list) != 1 {
			t.Fatalf("expected one submission, got %v %v", list, err)
		}
		got, err := f.uc.GetByID(ctx, first.ID)
		if err != nil || got.Estado != entities.SubmissionStatusAprobado {
			t.Fatalf("unexpected get: %+v %v", got, err)
		}
		if _, err := f.uc.GetByID(ctx, "nope"); !errors.Is(err, ErrSubmissionNotFound) {
			t.Fatalf("expected ErrSubmissionNotFound, got %v", err)
		}
	})
}

func TestSubmissionUseCase_ReviewOnClosedPeriod(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	periods := mock_interfaces.NewMockIPeriodRepository(ctrl)
	submissions := mock_interfaces.NewMockISubmissionRepository(ctrl)
	uc := NewSubmissionUseCase(submissions, periods, nil, nil, nil, SubmissionPolicy{}, zerolog.Nop())

	s := entities.Submission{ID: "ACME_2024-03_SUB-1_REQ-F30", CompanyID: "ACME", PeriodID: "ACME_2024-03", Estado: entities.SubmissionStatusCargado}
	submissions.EXPECT().GetByID(gomock.Any(), s.ID).Return(s, nil)
	periods.EXPECT().GetByID(gomock.Any(), "ACME_2024-03").Return(entities.CompliancePeriod{ID: "ACME_2024-03", Estado: entities.PeriodStatusCerrado}, nil)

	_, err := uc.Review(ctx, ReviewCommand{
		SubmissionID: s.ID,
		PeriodID:     s.PeriodID,
		CompanyID:    "ACME",
		Decision:     entities.SubmissionStatusAprobado,
	})
	if !errors.Is(err, ErrPeriodClosed) {
		t.Fatalf("expected ErrPeriodClosed, got %v", err)
	}
}

func TestSubmissionUseCase_ConcurrentApprovalWins(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	periods := mock_interfaces.NewMockIPeriodRepository(ctrl)
	submissions := mock_interfaces.NewMockISubmissionRepository(ctrl)
	requirements := mock_interfaces.NewMockIRequirementRepository(ctrl)
	blobs := mock_interfaces.NewMockIBlobStore(ctrl)
	uc := NewSubmissionUseCase(submissions, periods, requirements, blobs, nil, SubmissionPolicy{}, zerolog.Nop())

	periods.EXPECT().GetByID(gomock.Any(), "ACME_2024-03").Return(entities.CompliancePeriod{ID: "ACME_2024-03", CompanyID: "ACME", Estado: entities.PeriodStatusEnRevision}, nil)
	requirements.EXPECT().GetByID(gomock.Any(), "REQ-F30").Return(entities.Requirement{ID: "REQ-F30", CompanyID: "ACME"}, nil)
	submissions.EXPECT().GetByID(gomock.Any(), "ACME_2024-03_SUB-1_REQ-F30").Return(entities.Submission{}, nil)
	blobs.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	blobs.EXPECT().DownloadURL(gomock.Any(), gomock.Any()).Return("https://blobs.local/x", nil)
	submissions.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Submission{})).Return(entities.Submission{}, interfaces.ErrConflict)

	_, err := uc.Submit(ctx, SubmitCommand{
		CompanyID:       "ACME",
		PeriodID:        "ACME_2024-03",
		SubcontractorID: "SUB-1",
		RequirementID:   "REQ-F30",
		FileName:        "foto.png",
		ContentType:     "image/png",
		Content:         []byte("\x89PNG\r\n\x1a\n"),
	})
	if !errors.Is(err, ErrSubmissionAlreadyApproved) {
		t.Fatalf("expected ErrSubmissionAlreadyApproved, got %v", err)
	}
}
