package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"pcg_compliance/internal/adapter/http/handlers/mocks"
	"pcg_compliance/internal/adapter/http/middleware"
	"pcg_compliance/internal/domain/entities"
	"pcg_compliance/internal/infrastructure/auth"
	"pcg_compliance/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

var (
	acmeAdmin    = auth.Principal{UID: "u-admin", CompanyID: "ACME", Role: auth.RoleAdmin}
	acmeRevisor  = auth.Principal{UID: "u-rev", CompanyID: "ACME", Role: auth.RoleRevisor}
	acmeSub1     = auth.Principal{UID: "u-sub1", CompanyID: "ACME", Role: auth.RoleSubcontratista, SubcontractorID: "SUB-1"}
	betaAdmin    = auth.Principal{UID: "u-beta", CompanyID: "BETA", Role: auth.RoleAdmin}
	marchPeriod  = entities.CompliancePeriod{ID: "ACME_2024-03", CompanyID: "ACME", Periodo: "2024-03", Estado: entities.PeriodStatusEnRevision}
	fixedHandler = time.Date(2024, 3, 21, 6, 0, 0, 0, time.UTC)
)

func as(p auth.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetPrincipal(c, p)
		c.Next()
	}
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v (%s)", err, w.Body.String())
	}
	return body.Code
}

func uploadRequest(t *testing.T, fields map[string]string, fileName, contentType string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if fileName != "" {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="file"; filename="`+fileName+`"`)
		h.Set("Content-Type", contentType)
		part, err := mw.CreatePart(h)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		_, _ = part.Write(content)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/v1/compliance/submissions", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestMapComplianceError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{usecase.ErrInvalidCompanyID, http.StatusBadRequest, "INVALID_REQUEST"},
		{usecase.ErrInvalidDecision, http.StatusBadRequest, "INVALID_DECISION"},
		{usecase.ErrReviewCommentRequired, http.StatusBadRequest, "COMMENT_REQUIRED"},
		{usecase.ErrSubmissionTooLarge, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE"},
		{usecase.ErrUnsupportedContentType, http.StatusUnsupportedMediaType, "UNSUPPORTED_CONTENT_TYPE"},
		{usecase.ErrInvalidDocument, http.StatusUnprocessableEntity, "INVALID_DOCUMENT"},
		{usecase.ErrPeriodNotFound, http.StatusNotFound, "PERIOD_NOT_FOUND"},
		{usecase.ErrPeriodClosed, http.StatusConflict, "PERIOD_CLOSED"},
		{usecase.ErrSubmissionAlreadyApproved, http.StatusConflict, "SUBMISSION_APPROVED"},
		{usecase.ErrCalendarMonthLocked, http.StatusConflict, "CALENDAR_MONTH_LOCKED"},
		{&entities.InvalidFieldError{Entity: "CompliancePeriod", Field: "estado", Value: "x"}, http.StatusInternalServerError, "CORRUPT_RECORD"},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			appErr := mapComplianceError(tt.err)
			if appErr.HTTPStatus != tt.status || appErr.Code != tt.code {
				t.Fatalf("expected %d %s, got %d %s", tt.status, tt.code, appErr.HTTPStatus, appErr.Code)
			}
		})
	}
}

func TestPeriodHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *PeriodHandler, p auth.Principal) *gin.Engine {
		r := gin.New()
		r.Use(as(p))
		r.GET("/v1/compliance/periods/:period_id", h.GetPeriod)
		r.GET("/v1/compliance/periods/:period_id/statuses", h.ListStatuses)
		r.POST("/v1/compliance/periods/:period_id/statuses/:subcontractor_id/evaluate", h.EvaluateStatus)
		r.POST("/v1/compliance/companies/:company_id/process", h.ProcessCompany)
		return r
	}

	t.Run("get period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		periods := mocks.NewMockIPeriodUseCase(ctrl)
		h := NewPeriodHandler(periods, mocks.NewMockIComplianceStatusUseCase(ctrl))
		periods.EXPECT().GetPeriod(gomock.Any(), "ACME_2024-03").Return(marchPeriod, nil)

		w := serve(newRouter(h, acmeRevisor), httptest.NewRequest(http.MethodGet, "/v1/compliance/periods/ACME_2024-03", nil))
		if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte(`"estado":"En Revisión"`)) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("period of another company is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		periods := mocks.NewMockIPeriodUseCase(ctrl)
		h := NewPeriodHandler(periods, mocks.NewMockIComplianceStatusUseCase(ctrl))
		periods.EXPECT().GetPeriod(gomock.Any(), "ACME_2024-03").Return(marchPeriod, nil)

		w := serve(newRouter(h, betaAdmin), httptest.NewRequest(http.MethodGet, "/v1/compliance/periods/ACME_2024-03", nil))
		if w.Code != http.StatusNotFound || errorCode(t, w) != "PERIOD_NOT_FOUND" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("subcontractor sees only its status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		periods := mocks.NewMockIPeriodUseCase(ctrl)
		h := NewPeriodHandler(periods, mocks.NewMockIComplianceStatusUseCase(ctrl))
		periods.EXPECT().GetPeriod(gomock.Any(), "ACME_2024-03").Return(marchPeriod, nil)
		periods.EXPECT().ListStatuses(gomock.Any(), "ACME_2024-03").Return([]entities.ComplianceStatus{
			{PeriodID: "ACME_2024-03", SubcontractorID: "SUB-1", Estado: entities.ComplianceVerdictPendiente},
			{PeriodID: "ACME_2024-03", SubcontractorID: "SUB-2", Estado: entities.ComplianceVerdictCumple},
		}, nil)

		w := serve(newRouter(h, acmeSub1), httptest.NewRequest(http.MethodGet, "/v1/compliance/periods/ACME_2024-03/statuses", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("unexpected status %d", w.Code)
		}
		if bytes.Contains(w.Body.Bytes(), []byte("SUB-2")) || !bytes.Contains(w.Body.Bytes(), []byte("SUB-1")) {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("evaluate passes the caller uid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		periods := mocks.NewMockIPeriodUseCase(ctrl)
		statuses := mocks.NewMockIComplianceStatusUseCase(ctrl)
		h := NewPeriodHandler(periods, statuses)
		periods.EXPECT().GetPeriod(gomock.Any(), "ACME_2024-03").Return(marchPeriod, nil)
		statuses.EXPECT().Evaluate(gomock.Any(), "ACME_2024-03", "SUB-1", "u-rev").Return(usecase.Evaluation{
			Status:  entities.ComplianceStatus{PeriodID: "ACME_2024-03", SubcontractorID: "SUB-1", Estado: entities.ComplianceVerdictPendiente},
			Missing: []string{"F30"},
		}, nil)

		w := serve(newRouter(h, acmeRevisor), httptest.NewRequest(http.MethodPost, "/v1/compliance/periods/ACME_2024-03/statuses/SUB-1/evaluate", nil))
		if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte(`"missingRequirements":["F30"]`)) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("evaluate on closed period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		periods := mocks.NewMockIPeriodUseCase(ctrl)
		statuses := mocks.NewMockIComplianceStatusUseCase(ctrl)
		h := NewPeriodHandler(periods, statuses)
		periods.EXPECT().GetPeriod(gomock.Any(), "ACME_2024-03").Return(marchPeriod, nil)
		statuses.EXPECT().Evaluate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.Evaluation{}, usecase.ErrPeriodClosed)

		w := serve(newRouter(h, acmeRevisor), httptest.NewRequest(http.MethodPost, "/v1/compliance/periods/ACME_2024-03/statuses/SUB-1/evaluate", nil))
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("process uses body instant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		periods := mocks.NewMockIPeriodUseCase(ctrl)
		h := NewPeriodHandler(periods, mocks.NewMockIComplianceStatusUseCase(ctrl))
		at := time.Date(2024, 3, 26, 6, 0, 0, 0, time.UTC)
		periods.EXPECT().ProcessCompany(gomock.Any(), "ACME", at).Return(usecase.ProcessResult{
			CompanyID:   "ACME",
			PeriodKey:   "2024-03",
			PeriodID:    "ACME_2024-03",
			Estado:      entities.PeriodStatusCerrado,
			Transitions: []entities.PeriodStatus{entities.PeriodStatusCerrado},
			Forced:      2,
		}, nil)

		w := serve(newRouter(h, acmeAdmin), jsonRequest(http.MethodPost, "/v1/compliance/companies/ACME/process", `{"at":"2024-03-26T06:00:00Z"}`))
		if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte(`"forced":2`)) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("process defaults to now", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		periods := mocks.NewMockIPeriodUseCase(ctrl)
		h := NewPeriodHandler(periods, mocks.NewMockIComplianceStatusUseCase(ctrl))
		h.now = func() time.Time { return fixedHandler }
		periods.EXPECT().ProcessCompany(gomock.Any(), "ACME", fixedHandler).Return(usecase.ProcessResult{CompanyID: "ACME", Skipped: true}, nil)

		w := serve(newRouter(h, acmeAdmin), httptest.NewRequest(http.MethodPost, "/v1/compliance/companies/ACME/process", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("unexpected status %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("process rejects bad instant and foreign company", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewPeriodHandler(mocks.NewMockIPeriodUseCase(ctrl), mocks.NewMockIComplianceStatusUseCase(ctrl))

		w := serve(newRouter(h, acmeAdmin), jsonRequest(http.MethodPost, "/v1/compliance/companies/ACME/process", `{"at":"yesterday"}`))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		w = serve(newRouter(h, betaAdmin), httptest.NewRequest(http.MethodPost, "/v1/compliance/companies/ACME/process", nil))
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestSubmissionHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	fields := map[string]string{
		"companyId":       "ACME",
		"periodId":        "ACME_2024-03",
		"subcontractorId": "SUB-1",
		"requirementId":   "F30",
		"comentario":      "marzo",
	}
	pdf := []byte("%PDF-1.4 test")

	newRouter := func(h *SubmissionHandler, p auth.Principal) *gin.Engine {
		r := gin.New()
		r.Use(as(p))
		r.POST("/v1/compliance/submissions", h.Submit)
		return r
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubmissionUseCase(ctrl)
		h := NewSubmissionHandler(uc, mocks.NewMockIPeriodUseCase(ctrl), 1024)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, cmd usecase.SubmitCommand) (entities.Submission, error) {
			if cmd.FileName != "f30.pdf" || cmd.ContentType != "application/pdf" || !bytes.Equal(cmd.Content, pdf) || cmd.UploadedByUID != "u-sub1" {
				t.Fatalf("unexpected command: %+v", cmd)
			}
			return entities.Submission{ID: "ACME_2024-03_SUB-1_F30", Estado: entities.SubmissionStatusCargado, FileURL: "https://blobs/x"}, nil
		})

		w := serve(newRouter(h, acmeSub1), uploadRequest(t, fields, "f30.pdf", "application/pdf", pdf))
		if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte(`"ok":true`)) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("subcontractor cannot upload for another", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewSubmissionHandler(mocks.NewMockISubmissionUseCase(ctrl), mocks.NewMockIPeriodUseCase(ctrl), 1024)

		other := map[string]string{}
		for k, v := range fields {
			other[k] = v
		}
		other["subcontractorId"] = "SUB-2"
		w := serve(newRouter(h, acmeSub1), uploadRequest(t, other, "f30.pdf", "application/pdf", pdf))
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewSubmissionHandler(mocks.NewMockISubmissionUseCase(ctrl), mocks.NewMockIPeriodUseCase(ctrl), 1024)

		w := serve(newRouter(h, acmeSub1), uploadRequest(t, fields, "", "", nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewSubmissionHandler(mocks.NewMockISubmissionUseCase(ctrl), mocks.NewMockIPeriodUseCase(ctrl), 1024)

		w := serve(newRouter(h, acmeSub1), uploadRequest(t, map[string]string{"companyId": "ACME"}, "f30.pdf", "application/pdf", pdf))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("oversized body is truncated to limit plus one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubmissionUseCase(ctrl)
		h := NewSubmissionHandler(uc, mocks.NewMockIPeriodUseCase(ctrl), 8)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, cmd usecase.SubmitCommand) (entities.Submission, error) {
			if len(cmd.Content) != 9 {
				t.Fatalf("expected 9 bytes, got %d", len(cmd.Content))
			}
			return entities.Submission{}, usecase.ErrSubmissionTooLarge
		})

		w := serve(newRouter(h, acmeSub1), uploadRequest(t, fields, "f30.pdf", "application/pdf", bytes.Repeat([]byte("a"), 64)))
		if w.Code != http.StatusRequestEntityTooLarge {
			t.Fatalf("expected 413, got %d", w.Code)
		}
	})

	t.Run("closed period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubmissionUseCase(ctrl)
		h := NewSubmissionHandler(uc, mocks.NewMockIPeriodUseCase(ctrl), 1024)
		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(entities.Submission{}, usecase.ErrPeriodClosed)

		w := serve(newRouter(h, acmeAdmin), uploadRequest(t, fields, "f30.pdf", "application/pdf", pdf))
		if w.Code != http.StatusConflict || errorCode(t, w) != "PERIOD_CLOSED" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

func TestSubmissionHandler_Review(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *SubmissionHandler, p auth.Principal) *gin.Engine {
		r := gin.New()
		r.Use(as(p))
		r.POST("/v1/compliance/submissions/review", h.Review)
		return r
	}
	body := `{"companyId":"ACME","periodId":"ACME_2024-03","submissionId":"ACME_2024-03_SUB-1_F30","decision":"%s","comentario":"Falta firma"}`

	t.Run("observe", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubmissionUseCase(ctrl)
		h := NewSubmissionHandler(uc, mocks.NewMockIPeriodUseCase(ctrl), 0)
		uc.EXPECT().Review(gomock.Any(), usecase.ReviewCommand{
			SubmissionID: "ACME_2024-03_SUB-1_F30",
			PeriodID:     "ACME_2024-03",
			CompanyID:    "ACME",
			Decision:     entities.SubmissionStatusObservado,
			Comentario:   "Falta firma",
			ReviewerUID:  "u-rev",
		}).Return(entities.Submission{ID: "ACME_2024-03_SUB-1_F30", Estado: entities.SubmissionStatusObservado}, nil)

		w := serve(newRouter(h, acmeRevisor), jsonRequest(http.MethodPost, "/v1/compliance/submissions/review", fmtBody(body, "Observado")))
		if w.Code != http.StatusOK {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("unknown decision", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewSubmissionHandler(mocks.NewMockISubmissionUseCase(ctrl), mocks.NewMockIPeriodUseCase(ctrl), 0)

		for _, d := range []string{"Cargado", "Rechazado"} {
			w := serve(newRouter(h, acmeRevisor), jsonRequest(http.MethodPost, "/v1/compliance/submissions/review", fmtBody(body, d)))
			if w.Code != http.StatusBadRequest || errorCode(t, w) != "INVALID_DECISION" {
				t.Fatalf("%s: unexpected response %d %s", d, w.Code, w.Body.String())
			}
		}
	})

	t.Run("foreign company", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewSubmissionHandler(mocks.NewMockISubmissionUseCase(ctrl), mocks.NewMockIPeriodUseCase(ctrl), 0)

		w := serve(newRouter(h, betaAdmin), jsonRequest(http.MethodPost, "/v1/compliance/submissions/review", fmtBody(body, "Aprobado")))
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestSubmissionHandler_ListByPeriod(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockISubmissionUseCase(ctrl)
	periods := mocks.NewMockIPeriodUseCase(ctrl)
	h := NewSubmissionHandler(uc, periods, 0)

	periods.EXPECT().GetPeriod(gomock.Any(), "ACME_2024-03").Return(marchPeriod, nil)
	uc.EXPECT().ListByPeriod(gomock.Any(), "ACME_2024-03").Return([]entities.Submission{
		{ID: "a", SubcontractorID: "SUB-1", Estado: entities.SubmissionStatusCargado},
		{ID: "b", SubcontractorID: "SUB-2", Estado: entities.SubmissionStatusAprobado},
	}, nil)

	r := gin.New()
	r.Use(as(acmeSub1))
	r.GET("/v1/compliance/periods/:period_id/submissions", h.ListByPeriod)
	w := serve(r, httptest.NewRequest(http.MethodGet, "/v1/compliance/periods/ACME_2024-03/submissions", nil))

	var list []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if w.Code != http.StatusOK || len(list) != 1 || list[0]["id"] != "a" {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}

func TestCalendarHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *CalendarHandler, p auth.Principal) *gin.Engine {
		r := gin.New()
		r.Use(as(p))
		r.PUT("/v1/compliance/companies/:company_id/calendar/:period_key", h.UpsertMonth)
		r.GET("/v1/compliance/companies/:company_id/calendar/:year", h.GetYear)
		return r
	}

	t.Run("upsert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICalendarUseCase(ctrl)
		h := NewCalendarHandler(uc)
		want := entities.CalendarMonth{
			Periodo:        "2024-03",
			CorteCarga:     time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
			LimiteRevision: time.Date(2024, 3, 25, 0, 0, 0, 0, time.UTC),
			FechaPago:      time.Date(2024, 3, 28, 0, 0, 0, 0, time.UTC),
		}
		uc.EXPECT().UpsertMonth(gomock.Any(), "ACME", want).Return(want, nil)

		w := serve(newRouter(h, acmeAdmin), jsonRequest(http.MethodPut, "/v1/compliance/companies/ACME/calendar/2024-03",
			`{"corteCarga":"2024-03-20","limiteRevision":"2024-03-25","fechaPago":"2024-03-28"}`))
		if w.Code != http.StatusOK {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("upsert rejects bad date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewCalendarHandler(mocks.NewMockICalendarUseCase(ctrl))

		w := serve(newRouter(h, acmeAdmin), jsonRequest(http.MethodPut, "/v1/compliance/companies/ACME/calendar/2024-03",
			`{"corteCarga":"20/03/2024","limiteRevision":"2024-03-25","fechaPago":"2024-03-28"}`))
		if w.Code != http.StatusBadRequest || errorCode(t, w) != "INVALID_CALENDAR_MONTH" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("locked month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICalendarUseCase(ctrl)
		h := NewCalendarHandler(uc)
		uc.EXPECT().UpsertMonth(gomock.Any(), "ACME", gomock.Any()).Return(entities.CalendarMonth{}, usecase.ErrCalendarMonthLocked)

		w := serve(newRouter(h, acmeAdmin), jsonRequest(http.MethodPut, "/v1/compliance/companies/ACME/calendar/2024-03",
			`{"corteCarga":"2024-03-20","limiteRevision":"2024-03-25","fechaPago":"2024-03-28"}`))
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("get year", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICalendarUseCase(ctrl)
		h := NewCalendarHandler(uc)
		uc.EXPECT().GetYear(gomock.Any(), "ACME", 2024).Return(entities.ComplianceCalendar{ID: "ACME_2024", CompanyID: "ACME", Year: 2024}, nil)

		w := serve(newRouter(h, acmeRevisor), httptest.NewRequest(http.MethodGet, "/v1/compliance/companies/ACME/calendar/2024", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
		w = serve(newRouter(h, acmeRevisor), httptest.NewRequest(http.MethodGet, "/v1/compliance/companies/ACME/calendar/abc", nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestRequirementHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *RequirementHandler, p auth.Principal) *gin.Engine {
		r := gin.New()
		r.Use(as(p))
		r.POST("/v1/compliance/companies/:company_id/requirements", h.Create)
		r.GET("/v1/compliance/companies/:company_id/requirements", h.List)
		r.PATCH("/v1/compliance/companies/:company_id/requirements/:requirement_id", h.SetActive)
		return r
	}

	t.Run("create defaults to mandatory", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequirementUseCase(ctrl)
		h := NewRequirementHandler(uc)
		uc.EXPECT().Create(gomock.Any(), "ACME", "F30", "", true).Return(entities.Requirement{ID: "r1", CompanyID: "ACME", Nombre: "F30", Activo: true, EsObligatorio: true}, nil)

		w := serve(newRouter(h, acmeAdmin), jsonRequest(http.MethodPost, "/v1/compliance/companies/ACME/requirements", `{"nombre":"F30"}`))
		if w.Code != http.StatusCreated {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("list active only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequirementUseCase(ctrl)
		h := NewRequirementHandler(uc)
		uc.EXPECT().ListByCompany(gomock.Any(), "ACME", true).Return([]entities.Requirement{}, nil)

		w := serve(newRouter(h, acmeSub1), httptest.NewRequest(http.MethodGet, "/v1/compliance/companies/ACME/requirements?activos=true", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("set active requires the flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequirementUseCase(ctrl)
		h := NewRequirementHandler(uc)

		w := serve(newRouter(h, acmeAdmin), jsonRequest(http.MethodPatch, "/v1/compliance/companies/ACME/requirements/r1", `{}`))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}

		uc.EXPECT().SetActive(gomock.Any(), "ACME", "r1", false).Return(entities.Requirement{}, usecase.ErrRequirementNotFound)
		w = serve(newRouter(h, acmeAdmin), jsonRequest(http.MethodPatch, "/v1/compliance/companies/ACME/requirements/r1", `{"activo":false}`))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func fmtBody(template, decision string) string {
	return fmt.Sprintf(template, decision)
}
