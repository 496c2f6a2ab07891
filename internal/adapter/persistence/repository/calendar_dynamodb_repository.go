package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pcg_compliance/internal/domain/entities"
	"pcg_compliance/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCalendarsTableName = "compliance_calendars"

type calendarMonthItem struct {
	CorteCarga     string `dynamodbav:"corte_carga"`
	LimiteRevision string `dynamodbav:"limite_revision"`
	FechaPago      string `dynamodbav:"fecha_pago"`
	Editable       bool   `dynamodbav:"editable"`
}

type calendarItem struct {
	ID        string                       `dynamodbav:"id"`
	CompanyID string                       `dynamodbav:"company_id"`
	Year      int                          `dynamodbav:"year"`
	Months    map[string]calendarMonthItem `dynamodbav:"months"`
	UpdatedAt string                       `dynamodbav:"updated_at"`
}

// CalendarDynamoRepository stores one item per company-year with the
// months nested in a map keyed by periodKey.
//
// Table requirements:
//   - PK: id (companyId_year)

type CalendarDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICalendarRepository = (*CalendarDynamoRepository)(nil)

func NewCalendarDynamoRepository(ddb DynamoAPI) *CalendarDynamoRepository {
	return &CalendarDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CALENDARS_TABLE", defaultCalendarsTableName),
	}
}

func (r *CalendarDynamoRepository) GetYear(ctx context.Context, companyID string, year int) (entities.ComplianceCalendar, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": strAttr(entities.CalendarID(companyID, year)),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ComplianceCalendar{}, err
	}
	if len(out.Item) == 0 {
		return entities.ComplianceCalendar{}, nil
	}

	var it calendarItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ComplianceCalendar{}, err
	}
	return fromCalendarItem(it)
}

func (r *CalendarDynamoRepository) GetMonth(ctx context.Context, companyID, periodKey string) (entities.CalendarMonth, bool, error) {
	year, _, err := entities.ParsePeriodKey(periodKey)
	if err != nil {
		return entities.CalendarMonth{}, false, err
	}
	cal, err := r.GetYear(ctx, companyID, year)
	if err != nil {
		return entities.CalendarMonth{}, false, err
	}
	m, ok := cal.Months[periodKey]
	return m, ok, nil
}

// UpsertMonth creates the year document when missing, then writes the month
// unless it already exists with editable=false.
func (r *CalendarDynamoRepository) UpsertMonth(ctx context.Context, companyID string, month entities.CalendarMonth) error {
	year, _, err := entities.ParsePeriodKey(month.Periodo)
	if err != nil {
		return err
	}
	key := map[string]types.AttributeValue{
		"id": strAttr(entities.CalendarID(companyID, year)),
	}
	now := formatTime(time.Now())

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(r.tableName),
		Key:              key,
		UpdateExpression: aws.String("SET #company_id = :company_id, #year = :year, #months = if_not_exists(#months, :empty), #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#company_id": "company_id",
			"#year":       "year",
			"#months":     "months",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":company_id": strAttr(companyID),
			":year":       &types.AttributeValueMemberN{Value: fmt.Sprint(year)},
			":empty":      &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{}},
			":updated_at": strAttr(now),
		},
	})
	if err != nil {
		return err
	}

	mv, err := attributevalue.Marshal(toCalendarMonthItem(month))
	if err != nil {
		return err
	}
	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 key,
		ConditionExpression: aws.String("attribute_not_exists(#months.#pk) OR #months.#pk.#editable = :true"),
		UpdateExpression:    aws.String("SET #months.#pk = :month, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#months":     "months",
			"#pk":         month.Periodo,
			"#editable":   "editable",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":month":      mv,
			":true":       boolAttr(true),
			":updated_at": strAttr(now),
		},
	})
	return asConflict(err)
}

func (r *CalendarDynamoRepository) LockMonth(ctx context.Context, companyID, periodKey string) error {
	year, _, err := entities.ParsePeriodKey(periodKey)
	if err != nil {
		return err
	}

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": strAttr(entities.CalendarID(companyID, year)),
		},
		ConditionExpression: aws.String("attribute_exists(#months.#pk)"),
		UpdateExpression:    aws.String("SET #months.#pk.#editable = :false, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#months":     "months",
			"#pk":         periodKey,
			"#editable":   "editable",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":false":      boolAttr(false),
			":updated_at": strAttr(formatTime(time.Now())),
		},
	})
	// Nothing to lock when the month is gone.
	if errors.Is(asConflict(err), interfaces.ErrConflict) {
		return nil
	}
	return err
}

func toCalendarMonthItem(m entities.CalendarMonth) calendarMonthItem {
	return calendarMonthItem{
		CorteCarga:     formatTime(m.CorteCarga),
		LimiteRevision: formatTime(m.LimiteRevision),
		FechaPago:      formatTime(m.FechaPago),
		Editable:       m.Editable,
	}
}

func fromCalendarItem(it calendarItem) (entities.ComplianceCalendar, error) {
	updatedAt, err := parseTime("updated_at", it.UpdatedAt)
	if err != nil {
		return entities.ComplianceCalendar{}, err
	}
	cal := entities.ComplianceCalendar{
		ID:        it.ID,
		CompanyID: it.CompanyID,
		Year:      it.Year,
		Months:    make(map[string]entities.CalendarMonth, len(it.Months)),
		UpdatedAt: updatedAt,
	}
	for key, m := range it.Months {
		month := entities.CalendarMonth{Periodo: key, Editable: m.Editable}
		if month.CorteCarga, err = parseTime("corte_carga", m.CorteCarga); err != nil {
			return entities.ComplianceCalendar{}, fmt.Errorf("calendar %s month %s: %w", it.ID, key, err)
		}
		if month.LimiteRevision, err = parseTime("limite_revision", m.LimiteRevision); err != nil {
			return entities.ComplianceCalendar{}, fmt.Errorf("calendar %s month %s: %w", it.ID, key, err)
		}
		if month.FechaPago, err = parseTime("fecha_pago", m.FechaPago); err != nil {
			return entities.ComplianceCalendar{}, fmt.Errorf("calendar %s month %s: %w", it.ID, key, err)
		}
		cal.Months[key] = month
	}
	return cal, nil
}
