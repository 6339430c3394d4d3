package repository

import (
	"context"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	commonErrors "github.com/prashobhdevopsarch/serverless-labs/internal/domain/errors"
	"github.com/prashobhdevopsarch/serverless-labs/internal/domain/item"
	"github.com/prashobhdevopsarch/serverless-labs/internal/platform/dynamodb/client"
)

// DynamoDBItemRepository implements the item.Repository interface
type DynamoDBItemRepository struct {
	client client.Client
	table  string
}

// NewDynamoDBItemRepository creates a new DynamoDBItemRepository
func NewDynamoDBItemRepository(client client.Client, table string) *DynamoDBItemRepository {
	return &DynamoDBItemRepository{
		client: client,
		table:  table,
	}
}

// List scans the table and returns at most limit items (first page only)
func (r *DynamoDBItemRepository) List(ctx context.Context, limit int32) ([]item.Item, int, error) {
	result, err := r.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.table),
		Limit:     aws.Int32(limit),
	})
	if err != nil {
		return nil, 0, commonErrors.NewStorageError("DynamoDB error", err)
	}

	items := make([]item.Item, 0, len(result.Items))
	for _, attrs := range result.Items {
		items = append(items, decodeItem(attrs))
	}
	return items, int(result.Count), nil
}

// Get retrieves an item by id
func (r *DynamoDBItemRepository) Get(ctx context.Context, id string) (item.Item, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key:       itemKey(id),
	})
	if err != nil {
		return nil, commonErrors.NewStorageError("DynamoDB error", err)
	}
	if len(result.Item) == 0 {
		return nil, commonErrors.NewNotFoundError("Not found")
	}
	return decodeItem(result.Item), nil
}

// Put writes an item with full-overwrite upsert semantics. No condition
// expression: an existing item under the same id is replaced.
func (r *DynamoDBItemRepository) Put(ctx context.Context, it item.Item) error {
	attrs, err := attributevalue.MarshalMap(map[string]any(it))
	if err != nil {
		return commonErrors.NewInternalError("failed to marshal item", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      attrs,
	})
	if err != nil {
		return commonErrors.NewStorageError("DynamoDB error", err)
	}
	return nil
}

// Delete removes an item by id. DynamoDB deletes are idempotent; a missing
// id is not an error.
func (r *DynamoDBItemRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key:       itemKey(id),
	})
	if err != nil {
		return commonErrors.NewStorageError("DynamoDB error", err)
	}
	return nil
}

func itemKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		item.IDField: &types.AttributeValueMemberS{Value: id},
	}
}

// decodeItem converts a stored attribute map into an Item. Number attributes
// become int64 when they have no fractional part, float64 otherwise, so
// integral values round-trip as JSON integers.
func decodeItem(attrs map[string]types.AttributeValue) item.Item {
	it := make(item.Item, len(attrs))
	for k, v := range attrs {
		it[k] = decodeAttr(v)
	}
	return it
}

func decodeAttr(attr types.AttributeValue) any {
	switch v := attr.(type) {
	case *types.AttributeValueMemberS:
		return v.Value
	case *types.AttributeValueMemberN:
		return decodeNumber(v.Value)
	case *types.AttributeValueMemberBOOL:
		return v.Value
	case *types.AttributeValueMemberNULL:
		return nil
	case *types.AttributeValueMemberM:
		m := make(map[string]any, len(v.Value))
		for k, e := range v.Value {
			m[k] = decodeAttr(e)
		}
		return m
	case *types.AttributeValueMemberL:
		l := make([]any, 0, len(v.Value))
		for _, e := range v.Value {
			l = append(l, decodeAttr(e))
		}
		return l
	case *types.AttributeValueMemberSS:
		l := make([]any, 0, len(v.Value))
		for _, s := range v.Value {
			l = append(l, s)
		}
		return l
	case *types.AttributeValueMemberNS:
		l := make([]any, 0, len(v.Value))
		for _, n := range v.Value {
			l = append(l, decodeNumber(n))
		}
		return l
	case *types.AttributeValueMemberB:
		return v.Value
	default:
		return nil
	}
}

func decodeNumber(n string) any {
	if i, err := strconv.ParseInt(n, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(n, 64); err == nil {
		return f
	}
	return n
}
