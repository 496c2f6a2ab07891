package repository

import (
	"context"
	"fmt"
	"time"

	"pcg_compliance/internal/domain/entities"
	"pcg_compliance/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPeriodsTableName    = "compliance_periods"
	defaultPeriodsCompanyIndex = "company_id-index"
	defaultStatusesTableName   = "compliance_statuses"
)

type periodItem struct {
	ID             string `dynamodbav:"id"`
	CompanyID      string `dynamodbav:"company_id"`
	Periodo        string `dynamodbav:"periodo"`
	CorteCarga     string `dynamodbav:"corte_carga"`
	LimiteRevision string `dynamodbav:"limite_revision"`
	FechaPago      string `dynamodbav:"fecha_pago"`
	Estado         string `dynamodbav:"estado"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
	ClosedAt       string `dynamodbav:"closed_at,omitempty"`
}

type statusItem struct {
	PeriodID        string `dynamodbav:"period_id"`
	SubcontractorID string `dynamodbav:"subcontractor_id"`
	Estado          string `dynamodbav:"estado"`
	FechaAsignacion string `dynamodbav:"fecha_asignacion"`
	AsignadoPorUID  string `dynamodbav:"asignado_por_uid"`
}

// PeriodDynamoRepository persists CompliancePeriod and ComplianceStatus.
//
// Table requirements:
//   - periods: PK id (string), GSI company_id-index on company_id
//   - statuses: PK period_id (string), SK subcontractor_id (string)
//
// Closing writes the forced statuses and the period in one transaction when
// they fit in a single TransactWriteItems call. Larger fan-outs are written
// in transactional chunks with the period last; a failed run is completed by
// the next idempotent run.

type PeriodDynamoRepository struct {
	ddb           DynamoAPI
	tableName     string
	companyIndex  string
	statusesTable string
}

var _ interfaces.IPeriodRepository = (*PeriodDynamoRepository)(nil)

func NewPeriodDynamoRepository(ddb DynamoAPI) *PeriodDynamoRepository {
	return &PeriodDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("PERIODS_TABLE", defaultPeriodsTableName),
		companyIndex:  getenvDefault("PERIODS_COMPANY_INDEX", defaultPeriodsCompanyIndex),
		statusesTable: getenvDefault("STATUSES_TABLE", defaultStatusesTableName),
	}
}

func (r *PeriodDynamoRepository) GetByID(ctx context.Context, id string) (entities.CompliancePeriod, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": strAttr(id),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CompliancePeriod{}, err
	}
	if len(out.Item) == 0 {
		return entities.CompliancePeriod{}, nil
	}
	return unmarshalPeriod(out.Item)
}

func (r *PeriodDynamoRepository) Create(ctx context.Context, p entities.CompliancePeriod) (entities.CompliancePeriod, error) {
	av, err := attributevalue.MarshalMap(toPeriodItem(p))
	if err != nil {
		return entities.CompliancePeriod{}, err
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
		return entities.CompliancePeriod{}, asConflict(err)
	}
	return p, nil
}

func (r *PeriodDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.PeriodStatus, now time.Time) (entities.CompliancePeriod, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": strAttr(id),
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #estado = :from"),
		UpdateExpression:    aws.String("SET #estado = :to, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#estado":     "estado",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from":       strAttr(string(from)),
			":to":         strAttr(string(to)),
			":updated_at": strAttr(formatTime(now)),
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.CompliancePeriod{}, asConflict(err)
	}
	return unmarshalPeriod(out.Attributes)
}

func (r *PeriodDynamoRepository) ListOpenByCompany(ctx context.Context, companyID string) ([]entities.CompliancePeriod, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(r.companyIndex),
		KeyConditionExpression: aws.String("#company_id = :company_id"),
		FilterExpression:       aws.String("#estado <> :cerrado"),
		ExpressionAttributeNames: map[string]string{
			"#company_id": "company_id",
			"#estado":     "estado",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":company_id": strAttr(companyID),
			":cerrado":    strAttr(string(entities.PeriodStatusCerrado)),
		},
	})

	var res []entities.CompliancePeriod
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			period, err := unmarshalPeriod(item)
			if err != nil {
				return nil, err
			}
			res = append(res, period)
		}
	}
	return res, nil
}

func (r *PeriodDynamoRepository) Close(ctx context.Context, id string, forced []entities.ComplianceStatus, now time.Time) (entities.CompliancePeriod, error) {
	writes := make([]types.TransactWriteItem, 0, len(forced)+1)
	for _, st := range forced {
		writes = append(writes, r.forcedStatusWrite(st))
	}
	closeWrite := r.closePeriodWrite(id, now)

	if len(writes)+1 <= maxTransactItems {
		if err := r.transact(ctx, append(writes, closeWrite)); err != nil {
			return entities.CompliancePeriod{}, err
		}
	} else {
		for start := 0; start < len(writes); start += maxTransactItems {
			end := min(start+maxTransactItems, len(writes))
			if err := r.transact(ctx, writes[start:end]); err != nil {
				return entities.CompliancePeriod{}, fmt.Errorf("statuses %d-%d: %w", start, end, err)
			}
		}
		if err := r.transact(ctx, []types.TransactWriteItem{closeWrite}); err != nil {
			return entities.CompliancePeriod{}, err
		}
	}
	return r.GetByID(ctx, id)
}

func (r *PeriodDynamoRepository) forcedStatusWrite(st entities.ComplianceStatus) types.TransactWriteItem {
	return types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(r.statusesTable),
			Key: map[string]types.AttributeValue{
				"period_id":        strAttr(st.PeriodID),
				"subcontractor_id": strAttr(st.SubcontractorID),
			},
			ConditionExpression: aws.String("attribute_exists(#period_id) AND #estado <> :cumple"),
			UpdateExpression:    aws.String("SET #estado = :estado, #fecha = :fecha, #uid = :uid"),
			ExpressionAttributeNames: map[string]string{
				"#period_id": "period_id",
				"#estado":    "estado",
				"#fecha":     "fecha_asignacion",
				"#uid":       "asignado_por_uid",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":cumple": strAttr(string(entities.ComplianceVerdictCumple)),
				":estado": strAttr(string(st.Estado)),
				":fecha":  strAttr(formatTime(st.FechaAsignacion)),
				":uid":    strAttr(st.AsignadoPorUID),
			},
		},
	}
}

func (r *PeriodDynamoRepository) closePeriodWrite(id string, now time.Time) types.TransactWriteItem {
	ts := formatTime(now)
	return types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": strAttr(id),
			},
			ConditionExpression: aws.String("attribute_exists(#id) AND #estado <> :cerrado"),
			UpdateExpression:    aws.String("SET #estado = :cerrado, #closed_at = :now, #updated_at = :now"),
			ExpressionAttributeNames: map[string]string{
				"#id":         "id",
				"#estado":     "estado",
				"#closed_at":  "closed_at",
				"#updated_at": "updated_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":cerrado": strAttr(string(entities.PeriodStatusCerrado)),
				":now":     strAttr(ts),
			},
		},
	}
}

func (r *PeriodDynamoRepository) transact(ctx context.Context, items []types.TransactWriteItem) error {
	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	return asConflict(err)
}

func (r *PeriodDynamoRepository) GetStatus(ctx context.Context, periodID, subcontractorID string) (entities.ComplianceStatus, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.statusesTable),
		Key: map[string]types.AttributeValue{
			"period_id":        strAttr(periodID),
			"subcontractor_id": strAttr(subcontractorID),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ComplianceStatus{}, err
	}
	if len(out.Item) == 0 {
		return entities.ComplianceStatus{}, nil
	}
	return unmarshalStatus(out.Item)
}

func (r *PeriodDynamoRepository) ListStatuses(ctx context.Context, periodID string) ([]entities.ComplianceStatus, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.statusesTable),
		KeyConditionExpression: aws.String("#period_id = :period_id"),
		ExpressionAttributeNames: map[string]string{
			"#period_id": "period_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":period_id": strAttr(periodID),
		},
		ConsistentRead: aws.Bool(true),
	})

	res := []entities.ComplianceStatus{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			st, err := unmarshalStatus(item)
			if err != nil {
				return nil, err
			}
			res = append(res, st)
		}
	}
	return res, nil
}

// SaveStatus writes the status only while the parent period is not closed.
func (r *PeriodDynamoRepository) SaveStatus(ctx context.Context, st entities.ComplianceStatus) error {
	av, err := attributevalue.MarshalMap(toStatusItem(st))
	if err != nil {
		return err
	}

	return r.transact(ctx, []types.TransactWriteItem{
		{
			ConditionCheck: &types.ConditionCheck{
				TableName: aws.String(r.tableName),
				Key: map[string]types.AttributeValue{
					"id": strAttr(st.PeriodID),
				},
				ConditionExpression: aws.String("attribute_exists(#id) AND #estado <> :cerrado"),
				ExpressionAttributeNames: map[string]string{
					"#id":     "id",
					"#estado": "estado",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":cerrado": strAttr(string(entities.PeriodStatusCerrado)),
				},
			},
		},
		{
			Put: &types.Put{
				TableName: aws.String(r.statusesTable),
				Item:      av,
			},
		},
	})
}

func toPeriodItem(p entities.CompliancePeriod) periodItem {
	it := periodItem{
		ID:             p.ID,
		CompanyID:      p.CompanyID,
		Periodo:        p.Periodo,
		CorteCarga:     formatTime(p.CorteCarga),
		LimiteRevision: formatTime(p.LimiteRevision),
		FechaPago:      formatTime(p.FechaPago),
		Estado:         string(p.Estado),
		CreatedAt:      formatTime(p.CreatedAt),
		UpdatedAt:      formatTime(p.UpdatedAt),
	}
	if p.ClosedAt != nil {
		it.ClosedAt = formatTime(*p.ClosedAt)
	}
	return it
}

func unmarshalPeriod(item map[string]types.AttributeValue) (entities.CompliancePeriod, error) {
	var it periodItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.CompliancePeriod{}, err
	}
	return fromPeriodItem(it)
}

func fromPeriodItem(it periodItem) (entities.CompliancePeriod, error) {
	estado, err := entities.ParsePeriodStatus(it.Estado)
	if err != nil {
		return entities.CompliancePeriod{}, fmt.Errorf("period %s: %w", it.ID, err)
	}
	p := entities.CompliancePeriod{
		ID:        it.ID,
		CompanyID: it.CompanyID,
		Periodo:   it.Periodo,
		Estado:    estado,
	}
	if p.CorteCarga, err = parseTime("corte_carga", it.CorteCarga); err != nil {
		return entities.CompliancePeriod{}, err
	}
	if p.LimiteRevision, err = parseTime("limite_revision", it.LimiteRevision); err != nil {
		return entities.CompliancePeriod{}, err
	}
	if p.FechaPago, err = parseTime("fecha_pago", it.FechaPago); err != nil {
		return entities.CompliancePeriod{}, err
	}
	if p.CreatedAt, err = parseTime("created_at", it.CreatedAt); err != nil {
		return entities.CompliancePeriod{}, err
	}
	if p.UpdatedAt, err = parseTime("updated_at", it.UpdatedAt); err != nil {
		return entities.CompliancePeriod{}, err
	}
	if it.ClosedAt != "" {
		closedAt, err := parseTime("closed_at", it.ClosedAt)
		if err != nil {
			return entities.CompliancePeriod{}, err
		}
		p.ClosedAt = &closedAt
	}
	return p, nil
}

func toStatusItem(st entities.ComplianceStatus) statusItem {
	return statusItem{
		PeriodID:        st.PeriodID,
		SubcontractorID: st.SubcontractorID,
		Estado:          string(st.Estado),
		FechaAsignacion: formatTime(st.FechaAsignacion),
		AsignadoPorUID:  st.AsignadoPorUID,
	}
}

func unmarshalStatus(item map[string]types.AttributeValue) (entities.ComplianceStatus, error) {
	var it statusItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.ComplianceStatus{}, err
	}
	estado, err := entities.ParseComplianceVerdict(it.Estado)
	if err != nil {
		return entities.ComplianceStatus{}, fmt.Errorf("status %s/%s: %w", it.PeriodID, it.SubcontractorID, err)
	}
	fecha, err := parseTime("fecha_asignacion", it.FechaAsignacion)
	if err != nil {
		return entities.ComplianceStatus{}, err
	}
	return entities.ComplianceStatus{
		PeriodID:        it.PeriodID,
		SubcontractorID: it.SubcontractorID,
		Estado:          estado,
		FechaAsignacion: fecha,
		AsignadoPorUID:  it.AsignadoPorUID,
	}, nil
}
