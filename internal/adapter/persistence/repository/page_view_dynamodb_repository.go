package repository

import (
	"context"
	"strconv"

	"buffet_pizzas/internal/domain/entities"
	"buffet_pizzas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPageViewsTableName = "page_views"

type pageViewItem struct {
	Path  string `dynamodbav:"path"`
	Day   string `dynamodbav:"day"`
	Count int64  `dynamodbav:"count"`
}

// PageViewDynamoRepository keeps one visit counter per page path per day.
//
// Table requirements:
//   - PK: path (string)
//   - SK: day (string, YYYY-MM-DD)
//
// Increment relies on the ADD update action, which initializes the counter on
// first write, so concurrent hits never lose a count.

type PageViewDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPageViewRepository = (*PageViewDynamoRepository)(nil)

func NewPageViewDynamoRepository(ddb *dynamodb.Client) *PageViewDynamoRepository {
	return &PageViewDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAGE_VIEWS_TABLE", defaultPageViewsTableName),
	}
}

func (r *PageViewDynamoRepository) Increment(ctx context.Context, path, day string) (entities.PageView, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"path": &types.AttributeValueMemberS{Value: path},
			"day":  &types.AttributeValueMemberS{Value: day},
		},
		UpdateExpression: aws.String("ADD #count :one"),
		ExpressionAttributeNames: map[string]string{
			"#count": "count",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: strconv.Itoa(1)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.PageView{}, err
	}

	var it pageViewItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PageView{}, err
	}
	return entities.PageView{Path: it.Path, Day: it.Day, Count: it.Count}, nil
}

func (r *PageViewDynamoRepository) Summary(ctx context.Context) ([]entities.PageView, error) {
	items := make([]entities.PageView, 0)

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
			var it pageViewItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, entities.PageView{Path: it.Path, Day: it.Day, Count: it.Count})
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return items, nil
}
