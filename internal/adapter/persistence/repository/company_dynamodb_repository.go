package repository

import (
	"context"

	"pcg_compliance/internal/domain/entities"
	"pcg_compliance/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCompaniesTableName = "companies"

type companyItem struct {
	ID                      string `dynamodbav:"id"`
	Nombre                  string `dynamodbav:"nombre"`
	ComplianceModuleEnabled bool   `dynamodbav:"feature_compliance_module_enabled"`
}

// CompanyDynamoRepository reads the tenants table owned by the platform.
//
// Table requirements:
//   - PK: id (string)
//
// The companies table is small, so the enabled flag is resolved with a
// filtered scan.

type CompanyDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICompanyRepository = (*CompanyDynamoRepository)(nil)

func NewCompanyDynamoRepository(ddb DynamoAPI) *CompanyDynamoRepository {
	return &CompanyDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COMPANIES_TABLE", defaultCompaniesTableName),
	}
}

func (r *CompanyDynamoRepository) GetByID(ctx context.Context, id string) (entities.Company, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": strAttr(id),
		},
	})
	if err != nil {
		return entities.Company{}, err
	}
	if len(out.Item) == 0 {
		return entities.Company{}, nil
	}

	var it companyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Company{}, err
	}
	return entities.Company(it), nil
}

func (r *CompanyDynamoRepository) ListComplianceEnabled(ctx context.Context) ([]entities.Company, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#flag = :enabled"),
		ExpressionAttributeNames: map[string]string{
			"#flag": "feature_compliance_module_enabled",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":enabled": boolAttr(true),
		},
	})

	var res []entities.Company
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []companyItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			res = append(res, entities.Company(it))
		}
	}
	return res, nil
}
