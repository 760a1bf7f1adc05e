package repository

import (
	"context"
	"errors"
	"time"

	"pagove/internal/domain/entities"
	"pagove/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultReferencesTableName = "payment_references"
	referencesGroupIDIndex     = "group_id-index"
)

type paymentReferenceItem struct {
	ReferenceNumber string `dynamodbav:"reference_number"`
	BankCode        string `dynamodbav:"bank_code"`
	Amount          string `dynamodbav:"amount"`
	Currency        string `dynamodbav:"currency"`
	UserID          string `dynamodbav:"user_id"`
	ServiceType     string `dynamodbav:"service_type"`
	ServiceID       string `dynamodbav:"service_id"`
	PaymentMethod   string `dynamodbav:"payment_method"`
	IsPartial       bool   `dynamodbav:"is_partial"`
	GroupID         string `dynamodbav:"group_id,omitempty"`
	Status          string `dynamodbav:"status"`
	ExpiresAt       string `dynamodbav:"expires_at"`
	ConfirmedAt     string `dynamodbav:"confirmed_at,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// PaymentReferenceDynamoRepository persists PaymentReference entities in DynamoDB.
//
// Table requirements:
//   - PK: reference_number (string)
//   - GSI: group_id-index (PK: group_id)
//
// Status transitions use conditional expressions keyed on the previously
// observed status, so two concurrent confirm calls cannot both win.

type PaymentReferenceDynamoRepository struct {
	ddb                  *dynamodb.Client
	tableName            string
	transactionTableName string
}

var _ interfaces.IPaymentReferenceRepository = (*PaymentReferenceDynamoRepository)(nil)

func NewPaymentReferenceDynamoRepository(ddb *dynamodb.Client) *PaymentReferenceDynamoRepository {
	return &PaymentReferenceDynamoRepository{
		ddb:                  ddb,
		tableName:            getenvDefault("REFERENCES_TABLE", defaultReferencesTableName),
		transactionTableName: getenvDefault("BANK_TRANSACTIONS_TABLE", defaultBankTransactionsTableName),
	}
}

func (r *PaymentReferenceDynamoRepository) Create(ctx context.Context, ref entities.PaymentReference) (entities.PaymentReference, error) {
	it := toPaymentReferenceItem(ref)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PaymentReference{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#rn)"),
		ExpressionAttributeNames: map[string]string{
			"#rn": "reference_number",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// Reference number already taken; caller retries with a new one.
			return entities.PaymentReference{}, nil
		}
		return entities.PaymentReference{}, err
	}
	return ref, nil
}

func (r *PaymentReferenceDynamoRepository) GetByReferenceNumber(ctx context.Context, referenceNumber string) (entities.PaymentReference, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"reference_number": &types.AttributeValueMemberS{Value: referenceNumber},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentReference{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentReference{}, nil
	}

	var it paymentReferenceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentReference{}, err
	}
	return fromPaymentReferenceItem(it), nil
}

func (r *PaymentReferenceDynamoRepository) ListByGroupID(ctx context.Context, groupID string) ([]entities.PaymentReference, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(referencesGroupIDIndex),
		KeyConditionExpression: aws.String("group_id = :gid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":gid": &types.AttributeValueMemberS{Value: groupID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.PaymentReference, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentReferenceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentReferenceItem(it))
	}
	return items, nil
}

func (r *PaymentReferenceDynamoRepository) TransitionStatus(ctx context.Context, referenceNumber string, from, to entities.ReferenceStatus, at time.Time) (entities.PaymentReference, error) {
	now := at.UTC().Format(time.RFC3339Nano)

	updateExpr := "SET #status = :to, #updated_at = :now"
	names := map[string]string{
		"#rn":         "reference_number",
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":from": &types.AttributeValueMemberS{Value: string(from)},
		":to":   &types.AttributeValueMemberS{Value: string(to)},
		":now":  &types.AttributeValueMemberS{Value: now},
	}
	if to == entities.ReferenceStatusConfirmed {
		updateExpr += ", #confirmed_at = :now"
		names["#confirmed_at"] = "confirmed_at"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"reference_number": &types.AttributeValueMemberS{Value: referenceNumber},
		},
		ConditionExpression:       aws.String("attribute_exists(#rn) AND #status = :from"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PaymentReference{}, nil
		}
		return entities.PaymentReference{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.PaymentReference{}, nil
	}

	var it paymentReferenceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PaymentReference{}, err
	}
	return fromPaymentReferenceItem(it), nil
}

// ConfirmWithBankTransaction commits the pending -> confirmed transition and
// the BankTransaction record in one TransactWriteItems call. Either both
// writes land or neither does.
func (r *PaymentReferenceDynamoRepository) ConfirmWithBankTransaction(ctx context.Context, referenceNumber string, tx entities.BankTransaction) (entities.PaymentReference, error) {
	now := tx.ConfirmedAt.UTC().Format(time.RFC3339Nano)

	txItem, err := attributevalue.MarshalMap(toBankTransactionItem(tx))
	if err != nil {
		return entities.PaymentReference{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"reference_number": &types.AttributeValueMemberS{Value: referenceNumber},
					},
					ConditionExpression: aws.String("attribute_exists(#rn) AND #status = :pending"),
					UpdateExpression:    aws.String("SET #status = :confirmed, #confirmed_at = :now, #updated_at = :now"),
					ExpressionAttributeNames: map[string]string{
						"#rn":           "reference_number",
						"#status":       "status",
						"#confirmed_at": "confirmed_at",
						"#updated_at":   "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":pending":   &types.AttributeValueMemberS{Value: string(entities.ReferenceStatusPending)},
						":confirmed": &types.AttributeValueMemberS{Value: string(entities.ReferenceStatusConfirmed)},
						":now":       &types.AttributeValueMemberS{Value: now},
					},
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.transactionTableName),
					Item:                txItem,
					ConditionExpression: aws.String("attribute_not_exists(#rn)"),
					ExpressionAttributeNames: map[string]string{
						"#rn": "reference_number",
					},
				},
			},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			// Another confirm won the race (or the bank transaction already
			// exists). Callers re-read and resolve idempotently.
			return entities.PaymentReference{}, nil
		}
		return entities.PaymentReference{}, err
	}

	return r.GetByReferenceNumber(ctx, referenceNumber)
}

func toPaymentReferenceItem(ref entities.PaymentReference) paymentReferenceItem {
	it := paymentReferenceItem{
		ReferenceNumber: ref.ReferenceNumber,
		BankCode:        ref.BankCode,
		Amount:          floatToString(ref.Amount),
		Currency:        ref.Currency,
		UserID:          ref.UserID,
		ServiceType:     string(ref.ServiceType),
		ServiceID:       ref.ServiceID,
		PaymentMethod:   string(ref.PaymentMethod),
		IsPartial:       ref.IsPartial,
		GroupID:         ref.GroupID,
		Status:          string(ref.Status),
		ExpiresAt:       ref.ExpiresAt.UTC().Format(time.RFC3339Nano),
		CreatedAt:       ref.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       ref.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if ref.ConfirmedAt != nil {
		it.ConfirmedAt = ref.ConfirmedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromPaymentReferenceItem(it paymentReferenceItem) entities.PaymentReference {
	ref := entities.PaymentReference{
		ReferenceNumber: it.ReferenceNumber,
		BankCode:        it.BankCode,
		Amount:          stringToFloat(it.Amount),
		Currency:        it.Currency,
		UserID:          it.UserID,
		ServiceType:     entities.ServiceType(it.ServiceType),
		ServiceID:       it.ServiceID,
		PaymentMethod:   entities.PaymentMethod(it.PaymentMethod),
		IsPartial:       it.IsPartial,
		GroupID:         it.GroupID,
		Status:          entities.ReferenceStatus(it.Status),
	}
	ref.ExpiresAt, _ = time.Parse(time.RFC3339Nano, it.ExpiresAt)
	ref.CreatedAt, _ = time.Parse(time.RFC3339Nano, it.CreatedAt)
	ref.UpdatedAt, _ = time.Parse(time.RFC3339Nano, it.UpdatedAt)
	if it.ConfirmedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.ConfirmedAt); err == nil {
			ref.ConfirmedAt = &t
		}
	}
	return ref
}
