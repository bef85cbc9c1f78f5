package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/domain/lifecycle"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrdersTableName = "service_orders"

type serviceItemRecord struct {
	Description string `dynamodbav:"description"`
	Quantity    any    `dynamodbav:"quantity"`
	UnitValue   any    `dynamodbav:"unit_value"`
	Discount    any    `dynamodbav:"discount"`
	Addition    any    `dynamodbav:"addition"`
}

type serviceOrderItem struct {
	OrderNumber string              `dynamodbav:"order_number"`
	CustomerID  string              `dynamodbav:"customer_id"`
	Status      string              `dynamodbav:"status"`
	Financial   string              `dynamodbav:"financial"`
	Equipment   string              `dynamodbav:"equipment"`
	Brand       string              `dynamodbav:"brand,omitempty"`
	Model       string              `dynamodbav:"model,omitempty"`
	Serial      string              `dynamodbav:"serial_number,omitempty"`
	Defect      string              `dynamodbav:"defect,omitempty"`
	Notes       string              `dynamodbav:"notes,omitempty"`
	Services    []serviceItemRecord `dynamodbav:"services"`
	DiscountPct string              `dynamodbav:"discount_percentage"`
	AdditionPct string              `dynamodbav:"addition_percentage"`
	Payment     string              `dynamodbav:"payment_method,omitempty"`
	EntryDate   string              `dynamodbav:"entry_date"`
	Approval    string              `dynamodbav:"approval_date,omitempty"`
	Expected    string              `dynamodbav:"expected_delivery_date,omitempty"`
	Delivery    string              `dynamodbav:"delivery_date,omitempty"`
	CreatedAt   string              `dynamodbav:"created_at"`
	UpdatedAt   string              `dynamodbav:"updated_at"`
}

// ServiceOrderDynamoRepository persists ServiceOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: order_number (string-encoded integer)
//
// Status transitions are written as a single UpdateItem so the status and its
// date side effects land together or not at all; a failed update leaves the
// stored record untouched and the error is returned to the caller.

type ServiceOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderDynamoRepository)(nil)

func NewServiceOrderDynamoRepository(ddb *dynamodb.Client) *ServiceOrderDynamoRepository {
	return &ServiceOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *ServiceOrderDynamoRepository) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	it := toServiceOrderItem(o)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#n)"),
		ExpressionAttributeNames: map[string]string{
			"#n": "order_number",
		},
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderDynamoRepository) GetByNumber(ctx context.Context, orderNumber int) (entities.ServiceOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_number": &types.AttributeValueMemberS{Value: strconv.Itoa(orderNumber)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

func (r *ServiceOrderDynamoRepository) List(ctx context.Context) ([]entities.ServiceOrder, error) {
	orders := make([]entities.ServiceOrder, 0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it serviceOrderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromServiceOrderItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return orders, nil
}

func (r *ServiceOrderDynamoRepository) Save(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	it := toServiceOrderItem(o)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#n)"),
		ExpressionAttributeNames: map[string]string{
			"#n": "order_number",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceOrder{}, nil
		}
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderDynamoRepository) ApplyStatusPatch(ctx context.Context, orderNumber int, p lifecycle.Patch) (entities.ServiceOrder, error) {
	return r.update(ctx, orderNumber, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		setExpr := "SET #status = :status, #updated_at = :updated_at"
		removeExpr := ""
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(p.Status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}

		dates := []struct {
			name   string
			attr   string
			change lifecycle.DateChange
		}{
			{"#approval", "approval_date", p.ApprovalDate},
			{"#delivery", "delivery_date", p.DeliveryDate},
			{"#expected", "expected_delivery_date", p.ExpectedDeliveryDate},
		}
		for _, d := range dates {
			if !d.change.Set {
				continue
			}
			names[d.name] = d.attr
			if d.change.Value != nil {
				placeholder := ":" + d.attr
				setExpr += ", " + d.name + " = " + placeholder
				vals[placeholder] = &types.AttributeValueMemberS{Value: d.change.Value.UTC().Format(time.RFC3339Nano)}
				continue
			}
			if removeExpr == "" {
				removeExpr = " REMOVE " + d.name
			} else {
				removeExpr += ", " + d.name
			}
		}

		return setExpr + removeExpr, vals, names
	})
}

func (r *ServiceOrderDynamoRepository) UpdateFinancial(ctx context.Context, orderNumber int, f entities.FinancialStatus) (entities.ServiceOrder, error) {
	return r.update(ctx, orderNumber, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #financial = :financial, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":financial":  &types.AttributeValueMemberS{Value: string(f)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#financial":  "financial",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ServiceOrderDynamoRepository) Delete(ctx context.Context, orderNumber int) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_number": &types.AttributeValueMemberS{Value: strconv.Itoa(orderNumber)},
		},
	})
	return err
}

func (r *ServiceOrderDynamoRepository) update(
	ctx context.Context,
	orderNumber int,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.ServiceOrder, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_number": &types.AttributeValueMemberS{Value: strconv.Itoa(orderNumber)},
		},
		ConditionExpression:       aws.String("attribute_exists(#n)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#n": "order_number"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceOrder{}, nil
		}
		return entities.ServiceOrder{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ServiceOrder{}, nil
	}
	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

func toServiceOrderItem(o entities.ServiceOrder) serviceOrderItem {
	services := make([]serviceItemRecord, 0, len(o.Services))
	for _, s := range o.Services {
		services = append(services, serviceItemRecord{
			Description: s.Description,
			Quantity:    s.Quantity,
			UnitValue:   s.UnitValue,
			Discount:    s.Discount,
			Addition:    s.Addition,
		})
	}

	return serviceOrderItem{
		OrderNumber: strconv.Itoa(o.OrderNumber),
		CustomerID:  o.CustomerID,
		Status:      string(o.Status),
		Financial:   string(o.Financial),
		Equipment:   o.Equipment,
		Brand:       o.Brand,
		Model:       o.Model,
		Serial:      o.SerialNumber,
		Defect:      o.Defect,
		Notes:       o.Notes,
		Services:    services,
		DiscountPct: floatToString(o.DiscountPercentage),
		AdditionPct: floatToString(o.AdditionPercentage),
		Payment:     o.PaymentMethod,
		EntryDate:   o.EntryDate.UTC().Format(time.RFC3339Nano),
		Approval:    optionalDateToString(o.ApprovalDate),
		Expected:    optionalDateToString(o.ExpectedDeliveryDate),
		Delivery:    optionalDateToString(o.DeliveryDate),
		CreatedAt:   o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromServiceOrderItem(it serviceOrderItem) entities.ServiceOrder {
	number, _ := strconv.Atoi(it.OrderNumber)
	entryDate, _ := time.Parse(time.RFC3339Nano, it.EntryDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	discountPct, _ := strconv.ParseFloat(it.DiscountPct, 64)
	additionPct, _ := strconv.ParseFloat(it.AdditionPct, 64)

	services := make([]entities.ServiceItem, 0, len(it.Services))
	for _, s := range it.Services {
		services = append(services, entities.ServiceItem{
			Description: s.Description,
			Quantity:    s.Quantity,
			UnitValue:   s.UnitValue,
			Discount:    s.Discount,
			Addition:    s.Addition,
		})
	}

	return entities.ServiceOrder{
		OrderNumber:          number,
		CustomerID:           it.CustomerID,
		Status:               entities.OrderStatus(it.Status),
		Financial:            entities.FinancialStatus(it.Financial),
		Equipment:            it.Equipment,
		Brand:                it.Brand,
		Model:                it.Model,
		SerialNumber:         it.Serial,
		Defect:               it.Defect,
		Notes:                it.Notes,
		Services:             services,
		DiscountPercentage:   discountPct,
		AdditionPercentage:   additionPct,
		PaymentMethod:        it.Payment,
		EntryDate:            entryDate,
		ApprovalDate:         optionalDateFromString(it.Approval),
		ExpectedDeliveryDate: optionalDateFromString(it.Expected),
		DeliveryDate:         optionalDateFromString(it.Delivery),
		CreatedAt:            createdAt,
		UpdatedAt:            updatedAt,
	}
}

func optionalDateToString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func optionalDateFromString(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	return &t
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
