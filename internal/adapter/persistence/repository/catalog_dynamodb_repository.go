package repository

import (
	"context"
	"fmt"

	"garden_manager/internal/domain/entities"
	"garden_manager/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	defaultProductsTableName = "products"
	defaultStockTableName    = "stock_items"
)

type productRecord struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Price       string `dynamodbav:"price"`
	Description string `dynamodbav:"description"`
	Status      string `dynamodbav:"status"`
}

type stockItemRecord struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description"`
	Quantity    int    `dynamodbav:"quantity"`
}

// CatalogDynamoRepository persists products and stock items in DynamoDB.
//
// Table requirements (both tables):
//   - PK: id (string)
//
// Products and stock items are independent aggregates; nothing in this
// repository links the two.

type CatalogDynamoRepository struct {
	ddb           *dynamodb.Client
	productsTable string
	stockTable    string
}

var _ interfaces.ICatalogGateway = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:           ddb,
		productsTable: getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
		stockTable:    getenvDefault("STOCK_TABLE", defaultStockTableName),
	}
}

func (r *CatalogDynamoRepository) ListProducts(ctx context.Context) ([]entities.Product, error) {
	var products []entities.Product
	err := r.scan(ctx, r.productsTable, func(raw map[string]types.AttributeValue) error {
		var rec productRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return err
		}
		products = append(products, fromProductRecord(rec))
		return nil
	})
	return products, err
}

func (r *CatalogDynamoRepository) AddProduct(ctx context.Context, p entities.Product) (entities.Product, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = entities.ProductStatusInStock
	}
	if err := r.put(ctx, r.productsTable, toProductRecord(p), true); err != nil {
		return entities.Product{}, err
	}
	return p, nil
}

func (r *CatalogDynamoRepository) UpdateProduct(ctx context.Context, p entities.Product) error {
	return r.put(ctx, r.productsTable, toProductRecord(p), false)
}

func (r *CatalogDynamoRepository) DeleteProduct(ctx context.Context, id string) error {
	return r.delete(ctx, r.productsTable, id, "product")
}

func (r *CatalogDynamoRepository) ListStockItems(ctx context.Context) ([]entities.StockItem, error) {
	var items []entities.StockItem
	err := r.scan(ctx, r.stockTable, func(raw map[string]types.AttributeValue) error {
		var rec stockItemRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return err
		}
		items = append(items, entities.StockItem(rec))
		return nil
	})
	return items, err
}

func (r *CatalogDynamoRepository) AddStockItem(ctx context.Context, it entities.StockItem) (entities.StockItem, error) {
	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	if err := r.put(ctx, r.stockTable, stockItemRecord(it), true); err != nil {
		return entities.StockItem{}, err
	}
	return it, nil
}

func (r *CatalogDynamoRepository) UpdateStockItem(ctx context.Context, it entities.StockItem) error {
	return r.put(ctx, r.stockTable, stockItemRecord(it), false)
}

func (r *CatalogDynamoRepository) DeleteStockItem(ctx context.Context, id string) error {
	return r.delete(ctx, r.stockTable, id, "stock item")
}

func (r *CatalogDynamoRepository) scan(ctx context.Context, table string, each func(map[string]types.AttributeValue) error) error {
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(table),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return err
		}
		for _, raw := range out.Items {
			if err := each(raw); err != nil {
				return err
			}
		}
		if out.LastEvaluatedKey == nil {
			return nil
		}
		startKey = out.LastEvaluatedKey
	}
}

// put writes a full record. create=true refuses to overwrite an existing
// id; create=false refuses to write a missing one, so updates cannot
// resurrect a deleted record.
func (r *CatalogDynamoRepository) put(ctx context.Context, table string, rec any, create bool) error {
	av, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return err
	}

	cond := "attribute_exists(#id)"
	if create {
		cond = "attribute_not_exists(#id)"
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String(cond),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func (r *CatalogDynamoRepository) delete(ctx context.Context, table, id, kind string) error {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return err
	}
	if len(out.Attributes) == 0 {
		return fmt.Errorf("no %s found with ID: %s", kind, id)
	}
	return nil
}

func toProductRecord(p entities.Product) productRecord {
	return productRecord{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price.String(),
		Description: p.Description,
		Status:      string(p.Status),
	}
}

func fromProductRecord(rec productRecord) entities.Product {
	status := entities.ProductStatus(rec.Status)
	if status == "" {
		status = entities.ProductStatusInStock
	}
	return entities.Product{
		ID:          rec.ID,
		Name:        rec.Name,
		Price:       decimalFromRecord(rec.Price),
		Description: rec.Description,
		Status:      status,
	}
}
