package repository

import (
	"context"
	"strconv"

	"oficina_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCountersTableName = "counters"
	orderNumberCounterKey    = "order_number"
)

// SequenceDynamoRepository hands out sequential order numbers from an atomic
// DynamoDB counter.
//
// Table requirements:
//   - PK: name (string)
//   - attribute: value (number)
//
// ADD is atomic on the server side, so concurrent creates each get a distinct
// number. Numbers start at 1 (ADD on a missing item initializes it to 0 first).

type SequenceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISequenceRepository = (*SequenceDynamoRepository)(nil)

func NewSequenceDynamoRepository(ddb *dynamodb.Client) *SequenceDynamoRepository {
	return &SequenceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
	}
}

func (r *SequenceDynamoRepository) NextOrderNumber(ctx context.Context) (int, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: orderNumberCounterKey},
		},
		UpdateExpression: aws.String("ADD #v :one"),
		ExpressionAttributeNames: map[string]string{
			"#v": "value",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}

	raw, ok := out.Attributes["value"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, errMissingCounterValue
	}
	n, err := strconv.Atoi(raw.Value)
	if err != nil {
		return 0, err
	}
	return n, nil
}
