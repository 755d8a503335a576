package item

import (
	"context"
	"sort"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// dynamoAPI is the subset of *dynamodb.Client the repository uses.
type dynamoAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// DynamoRepository stores items in a DynamoDB table with a string "id"
// partition key. Searches are table scans with a filter expression.
type DynamoRepository struct {
	client dynamoAPI
	table  string
}

func NewDynamoRepository(client *dynamodb.Client, table string) *DynamoRepository {
	return &DynamoRepository{client: client, table: table}
}

func (r *DynamoRepository) List(ctx context.Context) ([]Item, error) {
	return r.scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.table)})
}

func (r *DynamoRepository) FindByID(ctx context.Context, id string) (Item, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key:       key(id),
	})
	if err != nil {
		return Item{}, err
	}
	if out.Item == nil {
		return Item{}, ErrNotFound
	}

	var it Item
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return Item{}, err
	}
	return it, nil
}

func (r *DynamoRepository) FindByNameContaining(ctx context.Context, keyword string) ([]Item, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		TableName:                aws.String(r.table),
		FilterExpression:         aws.String("contains(#name, :kw)"),
		ExpressionAttributeNames: map[string]string{"#name": "name"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":kw": &types.AttributeValueMemberS{Value: keyword},
		},
	})
}

func (r *DynamoRepository) FindByPriceLessThanEqual(ctx context.Context, price float64) ([]Item, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		TableName:                aws.String(r.table),
		FilterExpression:         aws.String("#price <= :price"),
		ExpressionAttributeNames: map[string]string{"#price": "price"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":price": &types.AttributeValueMemberN{Value: strconv.FormatFloat(price, 'f', -1, 64)},
		},
	})
}

func (r *DynamoRepository) Save(ctx context.Context, it Item) (Item, error) {
	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return Item{}, err
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      av,
	})
	if err != nil {
		return Item{}, err
	}
	return it, nil
}

func (r *DynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key:       key(id),
	})
	return err
}

func (r *DynamoRepository) scan(ctx context.Context, in *dynamodb.ScanInput) ([]Item, error) {
	items := make([]Item, 0)
	paginator := dynamodb.NewScanPaginator(r.client, in)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var batch []Item
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, err
		}
		items = append(items, batch...)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func key(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}
