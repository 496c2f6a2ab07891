package repository

import (
	"context"
	"errors"
	"time"

	"pcg_compliance/internal/domain/entities"
	"pcg_compliance/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRequirementsTableName    = "compliance_requirements"
	defaultRequirementsCompanyIndex = "company_id-index"
)

type requirementItem struct {
	ID            string `dynamodbav:"id"`
	CompanyID     string `dynamodbav:"company_id"`
	Nombre        string `dynamodbav:"nombre"`
	Descripcion   string `dynamodbav:"descripcion"`
	Activo        bool   `dynamodbav:"activo"`
	EsObligatorio bool   `dynamodbav:"es_obligatorio"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// RequirementDynamoRepository persists the requirement catalog.
//
// Table requirements:
//   - PK: id (string)
//   - GSI company_id-index on company_id

type RequirementDynamoRepository struct {
	ddb          DynamoAPI
	tableName    string
	companyIndex string
}

var _ interfaces.IRequirementRepository = (*RequirementDynamoRepository)(nil)

func NewRequirementDynamoRepository(ddb DynamoAPI) *RequirementDynamoRepository {
	return &RequirementDynamoRepository{
		ddb:          ddb,
		tableName:    getenvDefault("REQUIREMENTS_TABLE", defaultRequirementsTableName),
		companyIndex: getenvDefault("REQUIREMENTS_COMPANY_INDEX", defaultRequirementsCompanyIndex),
	}
}

func (r *RequirementDynamoRepository) Create(ctx context.Context, req entities.Requirement) (entities.Requirement, error) {
	av, err := attributevalue.MarshalMap(toRequirementItem(req))
	if err != nil {
		return entities.Requirement{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Requirement{}, asConflict(err)
	}
	return req, nil
}

func (r *RequirementDynamoRepository) GetByID(ctx context.Context, id string) (entities.Requirement, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": strAttr(id),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Requirement{}, err
	}
	if len(out.Item) == 0 {
		return entities.Requirement{}, nil
	}

	var it requirementItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Requirement{}, err
	}
	return fromRequirementItem(it)
}

func (r *RequirementDynamoRepository) ListByCompany(ctx context.Context, companyID string, onlyActive bool) ([]entities.Requirement, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(r.companyIndex),
		KeyConditionExpression: aws.String("#company_id = :company_id"),
		ExpressionAttributeNames: map[string]string{
			"#company_id": "company_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":company_id": strAttr(companyID),
		},
	}
	if onlyActive {
		in.FilterExpression = aws.String("#activo = :activo")
		in.ExpressionAttributeNames["#activo"] = "activo"
		in.ExpressionAttributeValues[":activo"] = boolAttr(true)
	}

	res := []entities.Requirement{}
	p := dynamodb.NewQueryPaginator(r.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []requirementItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			req, err := fromRequirementItem(it)
			if err != nil {
				return nil, err
			}
			res = append(res, req)
		}
	}
	return res, nil
}

func (r *RequirementDynamoRepository) SetActive(ctx context.Context, id string, active bool) (entities.Requirement, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": strAttr(id),
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #activo = :activo, #updated_at = :updated_at"),
		ExpressionAttributeNames: mergeNames(
			map[string]string{"#activo": "activo", "#updated_at": "updated_at"},
			map[string]string{"#id": "id"},
		),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":activo":     boolAttr(active),
			":updated_at": strAttr(formatTime(time.Now())),
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if errors.Is(asConflict(err), interfaces.ErrConflict) {
			return entities.Requirement{}, nil
		}
		return entities.Requirement{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Requirement{}, nil
	}

	var it requirementItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Requirement{}, err
	}
	return fromRequirementItem(it)
}

func toRequirementItem(r entities.Requirement) requirementItem {
	return requirementItem{
		ID:            r.ID,
		CompanyID:     r.CompanyID,
		Nombre:        r.Nombre,
		Descripcion:   r.Descripcion,
		Activo:        r.Activo,
		EsObligatorio: r.EsObligatorio,
		CreatedAt:     formatTime(r.CreatedAt),
		UpdatedAt:     formatTime(r.UpdatedAt),
	}
}

func fromRequirementItem(it requirementItem) (entities.Requirement, error) {
	createdAt, err := parseTime("created_at", it.CreatedAt)
	if err != nil {
		return entities.Requirement{}, err
	}
	updatedAt, err := parseTime("updated_at", it.UpdatedAt)
	if err != nil {
		return entities.Requirement{}, err
	}
	return entities.Requirement{
		ID:            it.ID,
		CompanyID:     it.CompanyID,
		Nombre:        it.Nombre,
		Descripcion:   it.Descripcion,
		Activo:        it.Activo,
		EsObligatorio: it.EsObligatorio,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}, nil
}
