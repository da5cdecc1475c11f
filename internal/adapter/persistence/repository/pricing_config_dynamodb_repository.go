package repository

import (
	"context"

	"buffet_pizzas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultConfigTableName = "pricing_config"

type configItem struct {
	Key   string `dynamodbav:"key"`
	Value string `dynamodbav:"value"`
}

// PricingConfigDynamoRepository stores the pricing configuration as key/value
// pairs in DynamoDB.
//
// Table requirements:
//   - PK: key (string)
//
// The table is tiny (three known keys today) so Values reads it with a single
// Scan. Unknown keys are returned as-is and ignored by the domain.

type PricingConfigDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPricingConfigRepository = (*PricingConfigDynamoRepository)(nil)

func NewPricingConfigDynamoRepository(ddb *dynamodb.Client) *PricingConfigDynamoRepository {
	return &PricingConfigDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONFIG_TABLE", defaultConfigTableName),
	}
}

func (r *PricingConfigDynamoRepository) Values(ctx context.Context) (map[string]string, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	values := make(map[string]string, len(out.Items))
	for _, raw := range out.Items {
		var it configItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		values[it.Key] = it.Value
	}
	return values, nil
}

func (r *PricingConfigDynamoRepository) Set(ctx context.Context, key, value string) error {
	_, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item: map[string]types.AttributeValue{
			"key":   &types.AttributeValueMemberS{Value: key},
			"value": &types.AttributeValueMemberS{Value: value},
		},
	})
	return err
}
