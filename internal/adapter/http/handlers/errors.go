package handlers

import (
	"errors"
	"net/http"

	"pcg_compliance/internal/adapter/http/middleware"
	"pcg_compliance/internal/domain/entities"
	"pcg_compliance/internal/infrastructure/auth"
	"pcg_compliance/internal/usecase"
	"pcg_compliance/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errForbidden      = pkg.NewDomainErrorSimple("FORBIDDEN", "Not allowed for this company or subcontractor", http.StatusForbidden)
	errPeriodNotFound = pkg.NewDomainErrorSimple("PERIOD_NOT_FOUND", "Compliance period not found", http.StatusNotFound)
)

func abortWith(c *gin.Context, appErr *pkg.AppError) {
	if appErr.Err != nil {
		_ = c.Error(appErr.Err)
	}
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapComplianceError translates use case errors for every compliance route.
func mapComplianceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCompanyID),
		errors.Is(err, usecase.ErrInvalidPeriodID),
		errors.Is(err, usecase.ErrInvalidSubcontractorID),
		errors.Is(err, usecase.ErrInvalidSubmission),
		errors.Is(err, usecase.ErrInvalidReview),
		errors.Is(err, usecase.ErrInvalidRequirement),
		errors.Is(err, usecase.ErrInvalidRequirementID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCalendarMonth):
		return pkg.NewDomainErrorSimple("INVALID_CALENDAR_MONTH", "Calendar dates must be set and ordered corteCarga <= limiteRevision <= fechaPago", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDecision):
		return pkg.NewDomainErrorSimple("INVALID_DECISION", "Decision must be Aprobado or Observado", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReviewCommentRequired):
		return pkg.NewDomainErrorSimple("COMMENT_REQUIRED", "A comment is required to observe a submission", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSubmissionTooLarge):
		return pkg.NewDomainErrorSimple("FILE_TOO_LARGE", "File exceeds the upload limit", http.StatusRequestEntityTooLarge)
	case errors.Is(err, usecase.ErrUnsupportedContentType):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_CONTENT_TYPE", "File type not allowed", http.StatusUnsupportedMediaType)
	case errors.Is(err, usecase.ErrInvalidDocument):
		return pkg.NewDomainErrorSimple("INVALID_DOCUMENT", "Document could not be read", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPeriodNotFound):
		return errPeriodNotFound
	case errors.Is(err, usecase.ErrSubmissionNotFound):
		return pkg.NewDomainErrorSimple("SUBMISSION_NOT_FOUND", "Submission not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRequirementNotFound):
		return pkg.NewDomainErrorSimple("REQUIREMENT_NOT_FOUND", "Requirement not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCalendarNotFound):
		return pkg.NewDomainErrorSimple("CALENDAR_NOT_FOUND", "Calendar not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPeriodClosed):
		return pkg.NewDomainErrorSimple("PERIOD_CLOSED", "Compliance period is closed", http.StatusConflict)
	case errors.Is(err, usecase.ErrSubmissionAlreadyApproved):
		return pkg.NewDomainErrorSimple("SUBMISSION_APPROVED", "Submission is already approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidSubmissionTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Submission is not awaiting review", http.StatusConflict)
	case errors.Is(err, usecase.ErrCalendarMonthLocked):
		return pkg.NewDomainErrorSimple("CALENDAR_MONTH_LOCKED", "Calendar month already has a period", http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidField):
		return pkg.NewDomainError("CORRUPT_RECORD", "Stored record is invalid", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// principalFor returns the caller when it belongs to companyID.
func principalFor(c *gin.Context, companyID string) (auth.Principal, bool) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok || companyID == "" || p.CompanyID != companyID {
		return auth.Principal{}, false
	}
	return p, true
}
