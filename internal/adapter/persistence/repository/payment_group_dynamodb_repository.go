package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"pagove/internal/domain/entities"
	"pagove/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultGroupsTableName = "payment_groups"

type paymentGroupItem struct {
	ID              string `dynamodbav:"id"`
	UserID          string `dynamodbav:"user_id"`
	ServiceType     string `dynamodbav:"service_type"`
	ServiceID       string `dynamodbav:"service_id"`
	TotalAmount     string `dynamodbav:"total_amount"`
	PaidAmount      string `dynamodbav:"paid_amount"`
	RemainingAmount string `dynamodbav:"remaining_amount"`
	CashAmount      string `dynamodbav:"cash_amount"`
	Currency        string `dynamodbav:"currency"`
	Status          string `dynamodbav:"status"`
	ExpiresAt       string `dynamodbav:"expires_at"`
	CompletedAt     string `dynamodbav:"completed_at,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
	Version         int64  `dynamodbav:"version"`
}

// PaymentGroupDynamoRepository persists PaymentGroup entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The version attribute serializes aggregate recomputation: Update writes
// only when the stored version equals the version the caller read, then
// bumps it. Losers get a zero-value entity and must re-read.

type PaymentGroupDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentGroupRepository = (*PaymentGroupDynamoRepository)(nil)

func NewPaymentGroupDynamoRepository(ddb *dynamodb.Client) *PaymentGroupDynamoRepository {
	return &PaymentGroupDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("GROUPS_TABLE", defaultGroupsTableName),
	}
}

func (r *PaymentGroupDynamoRepository) Create(ctx context.Context, g entities.PaymentGroup) (entities.PaymentGroup, error) {
	it := toPaymentGroupItem(g)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PaymentGroup{}, err
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
		return entities.PaymentGroup{}, err
	}
	return g, nil
}

func (r *PaymentGroupDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentGroup, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentGroup{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentGroup{}, nil
	}

	var it paymentGroupItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentGroup{}, err
	}
	return fromPaymentGroupItem(it), nil
}

func (r *PaymentGroupDynamoRepository) Update(ctx context.Context, g entities.PaymentGroup) (entities.PaymentGroup, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	updateExpr := "SET #paid = :paid, #remaining = :remaining, #status = :status, #updated_at = :now, #version = :next"
	names := map[string]string{
		"#id":         "id",
		"#paid":       "paid_amount",
		"#remaining":  "remaining_amount",
		"#status":     "status",
		"#updated_at": "updated_at",
		"#version":    "version",
	}
	values := map[string]types.AttributeValue{
		":paid":      &types.AttributeValueMemberS{Value: floatToString(g.PaidAmount)},
		":remaining": &types.AttributeValueMemberS{Value: floatToString(g.RemainingAmount)},
		":status":    &types.AttributeValueMemberS{Value: string(g.Status)},
		":now":       &types.AttributeValueMemberS{Value: now},
		":expected":  &types.AttributeValueMemberN{Value: strconv.FormatInt(g.Version, 10)},
		":next":      &types.AttributeValueMemberN{Value: strconv.FormatInt(g.Version+1, 10)},
	}
	if g.CompletedAt != nil {
		updateExpr += ", #completed_at = :completed_at"
		names["#completed_at"] = "completed_at"
		values[":completed_at"] = &types.AttributeValueMemberS{Value: g.CompletedAt.UTC().Format(time.RFC3339Nano)}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: g.ID},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #version = :expected"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PaymentGroup{}, nil
		}
		return entities.PaymentGroup{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.PaymentGroup{}, nil
	}

	var it paymentGroupItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PaymentGroup{}, err
	}
	return fromPaymentGroupItem(it), nil
}

func toPaymentGroupItem(g entities.PaymentGroup) paymentGroupItem {
	it := paymentGroupItem{
		ID:              g.ID,
		UserID:          g.UserID,
		ServiceType:     string(g.ServiceType),
		ServiceID:       g.ServiceID,
		TotalAmount:     floatToString(g.TotalAmount),
		PaidAmount:      floatToString(g.PaidAmount),
		RemainingAmount: floatToString(g.RemainingAmount),
		CashAmount:      floatToString(g.CashAmount),
		Currency:        g.Currency,
		Status:          string(g.Status),
		ExpiresAt:       g.ExpiresAt.UTC().Format(time.RFC3339Nano),
		CreatedAt:       g.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       g.UpdatedAt.UTC().Format(time.RFC3339Nano),
		Version:         g.Version,
	}
	if g.CompletedAt != nil {
		it.CompletedAt = g.CompletedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromPaymentGroupItem(it paymentGroupItem) entities.PaymentGroup {
	g := entities.PaymentGroup{
		ID:              it.ID,
		UserID:          it.UserID,
		ServiceType:     entities.ServiceType(it.ServiceType),
		ServiceID:       it.ServiceID,
		TotalAmount:     stringToFloat(it.TotalAmount),
		PaidAmount:      stringToFloat(it.PaidAmount),
		RemainingAmount: stringToFloat(it.RemainingAmount),
		CashAmount:      stringToFloat(it.CashAmount),
		Currency:        it.Currency,
		Status:          entities.GroupStatus(it.Status),
		Version:         it.Version,
	}
	g.ExpiresAt, _ = time.Parse(time.RFC3339Nano, it.ExpiresAt)
	g.CreatedAt, _ = time.Parse(time.RFC3339Nano, it.CreatedAt)
	g.UpdatedAt, _ = time.Parse(time.RFC3339Nano, it.UpdatedAt)
	if it.CompletedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.CompletedAt); err == nil {
			g.CompletedAt = &t
		}
	}
	return g
}
