package repository

import (
	"context"
	"fmt"
	"time"

	"garden_manager/internal/domain/entities"
	"garden_manager/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultOrdersTableName = "orders"

type orderLineRecord struct {
	ProductID   string `dynamodbav:"product_id"`
	ProductName string `dynamodbav:"name"`
	Price       string `dynamodbav:"price"`
	Quantity    int    `dynamodbav:"quantity"`
}

type orderRecord struct {
	ID          string            `dynamodbav:"id"`
	Date        string            `dynamodbav:"date"`
	Name        string            `dynamodbav:"name"`
	Description string            `dynamodbav:"description"`
	Items       []orderLineRecord `dynamodbav:"items"`
	Total       string            `dynamodbav:"total"`
	Status      string            `dynamodbav:"status"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Line items are embedded in the order record; they share the order's
// lifetime and are never queried on their own. Prices and totals are
// stored as decimal strings so they round-trip exactly.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderGateway = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

// CreateOrder assigns the id and creation timestamp, computes the total from
// the snapshotted items and stores the order as Pending.
func (r *OrderDynamoRepository) CreateOrder(ctx context.Context, name, description string, items []entities.OrderLineItem) (entities.Order, error) {
	total := decimal.Zero
	for _, li := range items {
		total = total.Add(li.Subtotal())
	}

	order := entities.Order{
		ID:          uuid.NewString(),
		Date:        time.Now().UTC(),
		Name:        name,
		Description: description,
		Items:       entities.CloneLineItems(items),
		Total:       total,
		Status:      entities.OrderStatusPending,
	}

	av, err := attributevalue.MarshalMap(toOrderRecord(order))
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return order, nil
}

func (r *OrderDynamoRepository) ListOrders(ctx context.Context) ([]entities.Order, error) {
	var orders []entities.Order
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
			var rec orderRecord
			if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
				return nil, err
			}
			orders = append(orders, fromOrderRecord(rec))
		}
		if out.LastEvaluatedKey == nil {
			return orders, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *OrderDynamoRepository) UpdateOrderStatus(ctx context.Context, orderID string, status entities.OrderStatus) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: orderID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ExpressionAttributeNames: mergeNames(
			map[string]string{"#status": "status"},
			map[string]string{"#id": "id"},
		),
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return fmt.Errorf("no order found with ID: %s", orderID)
		}
		return err
	}
	return nil
}

func (r *OrderDynamoRepository) DeleteOrder(ctx context.Context, orderID string) error {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: orderID},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return err
	}
	if len(out.Attributes) == 0 {
		return fmt.Errorf("no order found with ID: %s", orderID)
	}
	return nil
}

func toOrderRecord(o entities.Order) orderRecord {
	items := make([]orderLineRecord, 0, len(o.Items))
	for _, li := range o.Items {
		items = append(items, orderLineRecord{
			ProductID:   li.ProductID,
			ProductName: li.ProductName,
			Price:       li.Price.String(),
			Quantity:    li.Quantity,
		})
	}
	return orderRecord{
		ID:          o.ID,
		Date:        o.Date.UTC().Format(time.RFC3339Nano),
		Name:        o.Name,
		Description: o.Description,
		Items:       items,
		Total:       o.Total.String(),
		Status:      string(o.Status),
	}
}

func fromOrderRecord(rec orderRecord) entities.Order {
	date, _ := time.Parse(time.RFC3339Nano, rec.Date)
	items := make([]entities.OrderLineItem, 0, len(rec.Items))
	for _, li := range rec.Items {
		items = append(items, entities.OrderLineItem{
			ProductID:   li.ProductID,
			ProductName: li.ProductName,
			Price:       decimalFromRecord(li.Price),
			Quantity:    li.Quantity,
		})
	}
	return entities.Order{
		ID:          rec.ID,
		Date:        date,
		Name:        rec.Name,
		Description: rec.Description,
		Items:       items,
		Total:       decimalFromRecord(rec.Total),
		Status:      entities.OrderStatus(rec.Status),
	}
}
