package repository

import (
	"context"
	"time"

	"pagove/internal/domain/entities"
	"pagove/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultBankTransactionsTableName = "bank_transactions"

type bankTransactionItem struct {
	ReferenceNumber   string `dynamodbav:"reference_number"`
	ID                string `dynamodbav:"id"`
	BankCode          string `dynamodbav:"bank_code"`
	BankTransactionID string `dynamodbav:"bank_transaction_id"`
	ConfirmedAmount   string `dynamodbav:"confirmed_amount"`
	RawResponse       string `dynamodbav:"raw_response,omitempty"`
	ConfirmedAt       string `dynamodbav:"confirmed_at"`
	CreatedAt         string `dynamodbav:"created_at"`
}

// BankTransactionDynamoRepository persists BankTransaction records in DynamoDB.
//
// Table requirements:
//   - PK: reference_number (string)
//
// The PK enforces the one-to-one relation with a confirmed reference: the
// conditional put makes a second transaction for the same reference
// impossible, even across concurrent confirmations.

type BankTransactionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBankTransactionRepository = (*BankTransactionDynamoRepository)(nil)

func NewBankTransactionDynamoRepository(ddb *dynamodb.Client) *BankTransactionDynamoRepository {
	return &BankTransactionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BANK_TRANSACTIONS_TABLE", defaultBankTransactionsTableName),
	}
}

func (r *BankTransactionDynamoRepository) Create(ctx context.Context, tx entities.BankTransaction) (entities.BankTransaction, error) {
	it := toBankTransactionItem(tx)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.BankTransaction{}, err
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
		return entities.BankTransaction{}, err
	}
	return tx, nil
}

func (r *BankTransactionDynamoRepository) GetByReferenceNumber(ctx context.Context, referenceNumber string) (entities.BankTransaction, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"reference_number": &types.AttributeValueMemberS{Value: referenceNumber},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BankTransaction{}, err
	}
	if len(out.Item) == 0 {
		return entities.BankTransaction{}, nil
	}

	var it bankTransactionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BankTransaction{}, err
	}
	return fromBankTransactionItem(it), nil
}

func toBankTransactionItem(tx entities.BankTransaction) bankTransactionItem {
	return bankTransactionItem{
		ReferenceNumber:   tx.ReferenceNumber,
		ID:                tx.ID,
		BankCode:          tx.BankCode,
		BankTransactionID: tx.BankTransactionID,
		ConfirmedAmount:   floatToString(tx.ConfirmedAmount),
		RawResponse:       string(tx.RawResponse),
		ConfirmedAt:       tx.ConfirmedAt.UTC().Format(time.RFC3339Nano),
		CreatedAt:         tx.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromBankTransactionItem(it bankTransactionItem) entities.BankTransaction {
	tx := entities.BankTransaction{
		ReferenceNumber:   it.ReferenceNumber,
		ID:                it.ID,
		BankCode:          it.BankCode,
		BankTransactionID: it.BankTransactionID,
		ConfirmedAmount:   stringToFloat(it.ConfirmedAmount),
		RawResponse:       []byte(it.RawResponse),
	}
	tx.ConfirmedAt, _ = time.Parse(time.RFC3339Nano, it.ConfirmedAt)
	tx.CreatedAt, _ = time.Parse(time.RFC3339Nano, it.CreatedAt)
	return tx
}
