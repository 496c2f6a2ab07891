package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"pcg_compliance/internal/domain/entities"
	"pcg_compliance/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

var (
	ErrInvalidSubmission           = errors.New("invalid submission")
	ErrSubmissionTooLarge          = errors.New("submission file too large")
	ErrUnsupportedContentType      = errors.New("unsupported content type")
	ErrInvalidDocument             = errors.New("invalid document")
	ErrSubmissionNotFound          = errors.New("submission not found")
	ErrSubmissionAlreadyApproved   = errors.New("submission already approved")
	ErrInvalidReview               = errors.New("invalid review")
	ErrInvalidDecision             = errors.New("invalid review decision")
	ErrReviewCommentRequired       = errors.New("review comment required")
	ErrInvalidSubmissionTransition = errors.New("invalid submission transition")
)

const (
	contentTypePDF   = "application/pdf"
	blobPathRoot     = "cumplimiento"
	maxFileNameBytes = 200
)

// SubmitCommand is one upload of a subcontractor document.
type SubmitCommand struct {
	CompanyID       string
	PeriodID        string
	SubcontractorID string
	RequirementID   string
	FileName        string
	ContentType     string
	Content         []byte
	Comentario      string
	UploadedByUID   string
}

// ReviewCommand is a reviewer decision over a Cargado submission.
type ReviewCommand struct {
	SubmissionID string
	PeriodID     string
	CompanyID    string
	Decision     entities.SubmissionStatus
	Comentario   string
	ReviewerUID  string
}

// SubmissionPolicy bounds what intake accepts. Zero values disable the check.
type SubmissionPolicy struct {
	MaxBytes     int64
	AllowedTypes []string
}

// ISubmissionUseCase covers document intake and the review decision.

type ISubmissionUseCase interface {
	Submit(ctx context.Context, cmd SubmitCommand) (entities.Submission, error)
	Review(ctx context.Context, cmd ReviewCommand) (entities.Submission, error)
	GetByID(ctx context.Context, id string) (entities.Submission, error)
	ListByPeriod(ctx context.Context, periodID string) ([]entities.Submission, error)
}

type SubmissionUseCase struct {
	submissions  interfaces.ISubmissionRepository
	periods      interfaces.IPeriodRepository
	requirements interfaces.IRequirementRepository
	blobs        interfaces.IBlobStore
	inspector    interfaces.IDocumentInspector
	policy       SubmissionPolicy
	log          zerolog.Logger
}

var _ ISubmissionUseCase = (*SubmissionUseCase)(nil)

func NewSubmissionUseCase(
	submissions interfaces.ISubmissionRepository,
	periods interfaces.IPeriodRepository,
	requirements interfaces.IRequirementRepository,
	blobs interfaces.IBlobStore,
	inspector interfaces.IDocumentInspector,
	policy SubmissionPolicy,
	log zerolog.Logger,
) *SubmissionUseCase {
	return &SubmissionUseCase{
		submissions:  submissions,
		periods:      periods,
		requirements: requirements,
		blobs:        blobs,
		inspector:    inspector,
		policy:       policy,
		log:          log.With().Str("component", "submission-usecase").Logger(),
	}
}

// Submit stores the file at its deterministic path and writes the submission
// as Cargado, overwriting a previous Cargado or Observado upload.
func (u *SubmissionUseCase) Submit(ctx context.Context, cmd SubmitCommand) (entities.Submission, error) {
	cmd.CompanyID = strings.TrimSpace(cmd.CompanyID)
	cmd.PeriodID = strings.TrimSpace(cmd.PeriodID)
	cmd.SubcontractorID = strings.TrimSpace(cmd.SubcontractorID)
	cmd.RequirementID = strings.TrimSpace(cmd.RequirementID)
	fileName, ok := cleanFileName(cmd.FileName)
	if cmd.CompanyID == "" || cmd.PeriodID == "" || !ok {
		return entities.Submission{}, ErrInvalidSubmission
	}
	// Both ids become path segments and parts of the submission id.
	if !entities.ValidIDSegment(cmd.SubcontractorID) || !entities.ValidIDSegment(cmd.RequirementID) {
		return entities.Submission{}, ErrInvalidSubmission
	}
	if len(cmd.Content) == 0 {
		return entities.Submission{}, ErrInvalidSubmission
	}
	if u.policy.MaxBytes > 0 && int64(len(cmd.Content)) > u.policy.MaxBytes {
		return entities.Submission{}, ErrSubmissionTooLarge
	}

	contentType := resolveContentType(cmd.ContentType, cmd.Content)
	if !u.allowed(contentType) {
		return entities.Submission{}, ErrUnsupportedContentType
	}

	log := u.log.With().
		Str("period_id", cmd.PeriodID).
		Str("subcontractor_id", cmd.SubcontractorID).
		Str("requirement_id", cmd.RequirementID).
		Logger()
	log.Info().Int("size", len(cmd.Content)).Str("content_type", contentType).Msg("submit start")

	period, err := u.periods.GetByID(ctx, cmd.PeriodID)
	if err != nil {
		return entities.Submission{}, err
	}
	if period.ID == "" || period.CompanyID != cmd.CompanyID {
		return entities.Submission{}, ErrPeriodNotFound
	}
	if period.IsClosed() {
		log.Warn().Msg("upload rejected, period closed")
		return entities.Submission{}, ErrPeriodClosed
	}

	// Activo is not checked here; inactive requirements are ignored at evaluation.
	req, err := u.requirements.GetByID(ctx, cmd.RequirementID)
	if err != nil {
		return entities.Submission{}, err
	}
	if req.ID == "" || req.CompanyID != period.CompanyID {
		log.Warn().Msg("upload rejected, unknown requirement")
		return entities.Submission{}, ErrRequirementNotFound
	}

	id := entities.SubmissionID(period.ID, cmd.SubcontractorID, cmd.RequirementID)
	existing, err := u.submissions.GetByID(ctx, id)
	if err != nil {
		return entities.Submission{}, err
	}
	if existing.Estado == entities.SubmissionStatusAprobado {
		return entities.Submission{}, ErrSubmissionAlreadyApproved
	}

	pages := 0
	if contentType == contentTypePDF && u.inspector != nil {
		pages, err = u.inspector.PageCount(cmd.Content)
		if err != nil {
			log.Warn().Err(err).Msg("pdf rejected")
			return entities.Submission{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
	}

	storagePath := SubmissionBlobPath(period.CompanyID, period.ID, cmd.SubcontractorID, cmd.RequirementID, fileName)
	if err := u.blobs.Put(ctx, storagePath, bytes.NewReader(cmd.Content), int64(len(cmd.Content)), contentType); err != nil {
		log.Error().Err(err).Str("path", storagePath).Msg("blob upload failed")
		return entities.Submission{}, fmt.Errorf("upload %s: %w", storagePath, err)
	}
	fileURL, err := u.blobs.DownloadURL(ctx, storagePath)
	if err != nil {
		return entities.Submission{}, fmt.Errorf("download url %s: %w", storagePath, err)
	}

	now := time.Now().UTC()
	s := entities.Submission{
		ID:              id,
		CompanyID:       period.CompanyID,
		PeriodID:        period.ID,
		SubcontractorID: cmd.SubcontractorID,
		RequirementID:   cmd.RequirementID,
		Estado:          entities.SubmissionStatusCargado,
		FileURL:         fileURL,
		StoragePath:     storagePath,
		FileName:        fileName,
		ContentType:     contentType,
		Size:            int64(len(cmd.Content)),
		Paginas:         pages,
		FechaCarga:      now,
		Comentario:      strings.TrimSpace(cmd.Comentario),
		UploadedByUID:   strings.TrimSpace(cmd.UploadedByUID),
		UpdatedAt:       now,
	}
	saved, err := u.submissions.Save(ctx, s)
	if errors.Is(err, interfaces.ErrConflict) {
		return entities.Submission{}, ErrSubmissionAlreadyApproved
	}
	if err != nil {
		log.Error().Err(err).Msg("submission save failed")
		return entities.Submission{}, err
	}
	log.Info().Str("submission_id", id).Bool("resubmission", existing.ID != "").Msg("submit done")
	return saved, nil
}

// Review applies Aprobado or Observado to a Cargado submission. It does not
// touch the subcontractor's compliance status.
func (u *SubmissionUseCase) Review(ctx context.Context, cmd ReviewCommand) (entities.Submission, error) {
	cmd.SubmissionID = strings.TrimSpace(cmd.SubmissionID)
	cmd.PeriodID = strings.TrimSpace(cmd.PeriodID)
	cmd.CompanyID = strings.TrimSpace(cmd.CompanyID)
	cmd.Comentario = strings.TrimSpace(cmd.Comentario)
	if cmd.SubmissionID == "" || cmd.PeriodID == "" || cmd.CompanyID == "" {
		return entities.Submission{}, ErrInvalidReview
	}
	if !cmd.Decision.IsReviewDecision() {
		return entities.Submission{}, ErrInvalidDecision
	}
	if cmd.Decision == entities.SubmissionStatusObservado && cmd.Comentario == "" {
		return entities.Submission{}, ErrReviewCommentRequired
	}

	s, err := u.submissions.GetByID(ctx, cmd.SubmissionID)
	if err != nil {
		return entities.Submission{}, err
	}
	if s.ID == "" || s.PeriodID != cmd.PeriodID || s.CompanyID != cmd.CompanyID {
		return entities.Submission{}, ErrSubmissionNotFound
	}

	period, err := u.periods.GetByID(ctx, s.PeriodID)
	if err != nil {
		return entities.Submission{}, err
	}
	if period.IsClosed() {
		return entities.Submission{}, ErrPeriodClosed
	}
	if s.Estado != entities.SubmissionStatusCargado {
		return entities.Submission{}, ErrInvalidSubmissionTransition
	}

	review := entities.SubmissionReview{
		Comentario:     cmd.Comentario,
		RevisadoPorUID: strings.TrimSpace(cmd.ReviewerUID),
		FechaRevision:  time.Now().UTC(),
	}
	updated, err := u.submissions.UpdateReview(ctx, s.ID, cmd.Decision, review)
	if errors.Is(err, interfaces.ErrConflict) {
		return entities.Submission{}, ErrInvalidSubmissionTransition
	}
	if err != nil {
		return entities.Submission{}, err
	}
	if updated.ID == "" {
		return entities.Submission{}, ErrSubmissionNotFound
	}

	u.log.Info().
		Str("submission_id", s.ID).
		Str("decision", string(cmd.Decision)).
		Str("reviewer_uid", review.RevisadoPorUID).
		Msg("submission reviewed")
	return updated, nil
}

func (u *SubmissionUseCase) GetByID(ctx context.Context, id string) (entities.Submission, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Submission{}, ErrInvalidSubmission
	}

	s, err := u.submissions.GetByID(ctx, id)
	if err != nil {
		return entities.Submission{}, err
	}
	if s.ID == "" {
		return entities.Submission{}, ErrSubmissionNotFound
	}
	return s, nil
}

func (u *SubmissionUseCase) ListByPeriod(ctx context.Context, periodID string) ([]entities.Submission, error) {
	periodID = strings.TrimSpace(periodID)
	if periodID == "" {
		return nil, ErrInvalidPeriodID
	}
	return u.submissions.ListByPeriod(ctx, periodID)
}

func (u *SubmissionUseCase) allowed(contentType string) bool {
	if len(u.policy.AllowedTypes) == 0 {
		return true
	}
	for _, t := range u.policy.AllowedTypes {
		if strings.EqualFold(t, contentType) {
			return true
		}
	}
	return false
}

// SubmissionBlobPath is the deterministic object path of an upload.
func SubmissionBlobPath(companyID, periodID, subcontractorID, requirementID, fileName string) string {
	return path.Join(blobPathRoot, companyID, periodID, subcontractorID, requirementID, fileName)
}

func cleanFileName(name string) (string, bool) {
	name = strings.TrimSpace(strings.ReplaceAll(name, "\\", "/"))
	name = path.Base(name)
	if name == "" || name == "." || name == "/" || name == ".." || len(name) > maxFileNameBytes {
		return "", false
	}
	return name, true
}

func resolveContentType(declared string, content []byte) string {
	declared = strings.ToLower(strings.TrimSpace(declared))
	if i := strings.Index(declared, ";"); i >= 0 {
		declared = strings.TrimSpace(declared[:i])
	}
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	detected := http.DetectContentType(content)
	if i := strings.Index(detected, ";"); i >= 0 {
		detected = detected[:i]
	}
	return detected
}
