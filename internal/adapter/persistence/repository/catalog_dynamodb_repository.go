package repository

import (
	"context"
	"errors"

	"oneflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// CatalogDynamoRepository persists one record collection in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Conditional expressions give the same absence semantics as the memory
// store: Update of a missing id yields the zero value, Delete reports
// absence via the bool. Scan order is storage order, not insertion
// order; the console sorts client-side.
type CatalogDynamoRepository[T interfaces.Keyed] struct {
	ddb       *dynamodb.Client
	tableName string
}

func NewCatalogDynamoRepository[T interfaces.Keyed](ddb *dynamodb.Client, tableName string) *CatalogDynamoRepository[T] {
	return &CatalogDynamoRepository[T]{ddb: ddb, tableName: tableName}
}

func (r *CatalogDynamoRepository[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			var rec T
			if err := unmarshalRecord(item, &rec); err != nil {
				return nil, err
			}
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *CatalogDynamoRepository[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return zero, err
	}
	if len(out.Item) == 0 {
		return zero, nil
	}

	var rec T
	if err := unmarshalRecord(out.Item, &rec); err != nil {
		return zero, err
	}
	return rec, nil
}

func (r *CatalogDynamoRepository[T]) Create(ctx context.Context, rec T) (T, error) {
	var zero T
	av, err := marshalRecord(rec)
	if err != nil {
		return zero, err
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
		return zero, err
	}
	return rec, nil
}

func (r *CatalogDynamoRepository[T]) Update(ctx context.Context, rec T) (T, error) {
	var zero T
	av, err := marshalRecord(rec)
	if err != nil {
		return zero, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return zero, nil
		}
		return zero, err
	}
	return rec, nil
}

func (r *CatalogDynamoRepository[T]) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}
