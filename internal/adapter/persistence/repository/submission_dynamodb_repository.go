package repository

import (
	"context"
	"fmt"

	"pcg_compliance/internal/domain/entities"
	"pcg_compliance/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSubmissionsTableName   = "compliance_submissions"
	defaultSubmissionsPeriodIndex = "period_id-index"
)

type submissionReviewItem struct {
	Comentario     string `dynamodbav:"comentario"`
	RevisadoPorUID string `dynamodbav:"revisado_por_uid"`
	FechaRevision  string `dynamodbav:"fecha_revision"`
}

type submissionItem struct {
	ID              string                `dynamodbav:"id"`
	CompanyID       string                `dynamodbav:"company_id"`
	PeriodID        string                `dynamodbav:"period_id"`
	SubcontractorID string                `dynamodbav:"subcontractor_id"`
	RequirementID   string                `dynamodbav:"requirement_id"`
	Estado          string                `dynamodbav:"estado"`
	FileURL         string                `dynamodbav:"file_url"`
	StoragePath     string                `dynamodbav:"storage_path"`
	FileName        string                `dynamodbav:"file_name"`
	ContentType     string                `dynamodbav:"content_type"`
	Size            int64                 `dynamodbav:"size"`
	Paginas         int                   `dynamodbav:"paginas"`
	FechaCarga      string                `dynamodbav:"fecha_carga"`
	Comentario      string                `dynamodbav:"comentario"`
	Revision        *submissionReviewItem `dynamodbav:"revision,omitempty"`
	UploadedByUID   string                `dynamodbav:"uploaded_by_uid"`
	UpdatedAt       string                `dynamodbav:"updated_at"`
}

// SubmissionDynamoRepository persists Submission entities.
//
// Table requirements:
//   - PK: id (periodId_subcontractorId_requirementId)
//   - GSI period_id-index on period_id

type SubmissionDynamoRepository struct {
	ddb         DynamoAPI
	tableName   string
	periodIndex string
}

var _ interfaces.ISubmissionRepository = (*SubmissionDynamoRepository)(nil)

func NewSubmissionDynamoRepository(ddb DynamoAPI) *SubmissionDynamoRepository {
	return &SubmissionDynamoRepository{
		ddb:         ddb,
		tableName:   getenvDefault("SUBMISSIONS_TABLE", defaultSubmissionsTableName),
		periodIndex: getenvDefault("SUBMISSIONS_PERIOD_INDEX", defaultSubmissionsPeriodIndex),
	}
}

func (r *SubmissionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Submission, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": strAttr(id),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Submission{}, err
	}
	if len(out.Item) == 0 {
		return entities.Submission{}, nil
	}
	return unmarshalSubmission(out.Item)
}

// Save overwrites the submission unless the stored one is already approved.
func (r *SubmissionDynamoRepository) Save(ctx context.Context, s entities.Submission) (entities.Submission, error) {
	av, err := attributevalue.MarshalMap(toSubmissionItem(s))
	if err != nil {
		return entities.Submission{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id) OR #estado <> :aprobado"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#estado": "estado",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":aprobado": strAttr(string(entities.SubmissionStatusAprobado)),
		},
	})
	if err != nil {
		return entities.Submission{}, asConflict(err)
	}
	return s, nil
}

func (r *SubmissionDynamoRepository) UpdateReview(ctx context.Context, id string, to entities.SubmissionStatus, review entities.SubmissionReview) (entities.Submission, error) {
	rv, err := attributevalue.Marshal(submissionReviewItem{
		Comentario:     review.Comentario,
		RevisadoPorUID: review.RevisadoPorUID,
		FechaRevision:  formatTime(review.FechaRevision),
	})
	if err != nil {
		return entities.Submission{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": strAttr(id),
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #estado = :cargado"),
		UpdateExpression:    aws.String("SET #estado = :to, #revision = :revision, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#estado":     "estado",
			"#revision":   "revision",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cargado":    strAttr(string(entities.SubmissionStatusCargado)),
			":to":         strAttr(string(to)),
			":revision":   rv,
			":updated_at": strAttr(formatTime(review.FechaRevision)),
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Submission{}, asConflict(err)
	}
	return unmarshalSubmission(out.Attributes)
}

func (r *SubmissionDynamoRepository) ListByPeriod(ctx context.Context, periodID string) ([]entities.Submission, error) {
	return r.queryByPeriod(ctx, periodID, "")
}

func (r *SubmissionDynamoRepository) ListByPeriodAndSubcontractor(ctx context.Context, periodID, subcontractorID string) ([]entities.Submission, error) {
	return r.queryByPeriod(ctx, periodID, subcontractorID)
}

func (r *SubmissionDynamoRepository) queryByPeriod(ctx context.Context, periodID, subcontractorID string) ([]entities.Submission, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(r.periodIndex),
		KeyConditionExpression: aws.String("#period_id = :period_id"),
		ExpressionAttributeNames: map[string]string{
			"#period_id": "period_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":period_id": strAttr(periodID),
		},
	}
	if subcontractorID != "" {
		in.FilterExpression = aws.String("#subcontractor_id = :subcontractor_id")
		in.ExpressionAttributeNames["#subcontractor_id"] = "subcontractor_id"
		in.ExpressionAttributeValues[":subcontractor_id"] = strAttr(subcontractorID)
	}

	res := []entities.Submission{}
	p := dynamodb.NewQueryPaginator(r.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			s, err := unmarshalSubmission(item)
			if err != nil {
				return nil, err
			}
			res = append(res, s)
		}
	}
	return res, nil
}

func toSubmissionItem(s entities.Submission) submissionItem {
	it := submissionItem{
		ID:              s.ID,
		CompanyID:       s.CompanyID,
		PeriodID:        s.PeriodID,
		SubcontractorID: s.SubcontractorID,
		RequirementID:   s.RequirementID,
		Estado:          string(s.Estado),
		FileURL:         s.FileURL,
		StoragePath:     s.StoragePath,
		FileName:        s.FileName,
		ContentType:     s.ContentType,
		Size:            s.Size,
		Paginas:         s.Paginas,
		FechaCarga:      formatTime(s.FechaCarga),
		Comentario:      s.Comentario,
		UploadedByUID:   s.UploadedByUID,
		UpdatedAt:       formatTime(s.UpdatedAt),
	}
	if s.Revision != nil {
		it.Revision = &submissionReviewItem{
			Comentario:     s.Revision.Comentario,
			RevisadoPorUID: s.Revision.RevisadoPorUID,
			FechaRevision:  formatTime(s.Revision.FechaRevision),
		}
	}
	return it
}

func unmarshalSubmission(item map[string]types.AttributeValue) (entities.Submission, error) {
	var it submissionItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.Submission{}, err
	}
	return fromSubmissionItem(it)
}

func fromSubmissionItem(it submissionItem) (entities.Submission, error) {
	estado, err := entities.ParseSubmissionStatus(it.Estado)
	if err != nil {
		return entities.Submission{}, fmt.Errorf("submission %s: %w", it.ID, err)
	}
	s := entities.Submission{
		ID:              it.ID,
		CompanyID:       it.CompanyID,
		PeriodID:        it.PeriodID,
		SubcontractorID: it.SubcontractorID,
		RequirementID:   it.RequirementID,
		Estado:          estado,
		FileURL:         it.FileURL,
		StoragePath:     it.StoragePath,
		FileName:        it.FileName,
		ContentType:     it.ContentType,
		Size:            it.Size,
		Paginas:         it.Paginas,
		Comentario:      it.Comentario,
		UploadedByUID:   it.UploadedByUID,
	}
	if s.FechaCarga, err = parseTime("fecha_carga", it.FechaCarga); err != nil {
		return entities.Submission{}, err
	}
	if s.UpdatedAt, err = parseTime("updated_at", it.UpdatedAt); err != nil {
		return entities.Submission{}, err
	}
	if it.Revision != nil {
		fecha, err := parseTime("revision.fecha_revision", it.Revision.FechaRevision)
		if err != nil {
			return entities.Submission{}, err
		}
		s.Revision = &entities.SubmissionReview{
			Comentario:     it.Revision.Comentario,
			RevisadoPorUID: it.Revision.RevisadoPorUID,
			FechaRevision:  fecha,
		}
	}
	return s, nil
}
