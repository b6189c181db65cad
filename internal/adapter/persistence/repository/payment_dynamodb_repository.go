package repository

import (
	"context"
	"errors"
	"time"

	"mbg_backend/internal/domain/entities"
	"mbg_backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEventPaymentsTable   = "event_payments"
	defaultProgramPaymentsTable = "program_payments"
	paymentsRegistrationIDIndex = "registration_id-index"
	paymentsTrackingIDIndex     = "order_tracking_id-index"
)

type paymentItem struct {
	ID                string  `dynamodbav:"id"`
	RegistrationID    string  `dynamodbav:"registration_id"`
	Amount            float64 `dynamodbav:"amount"`
	Currency          string  `dynamodbav:"currency"`
	PaymentMethod     string  `dynamodbav:"payment_method"`
	Status            string  `dynamodbav:"payment_status"`
	OrderTrackingID   string  `dynamodbav:"order_tracking_id,omitempty"`
	TransactionID     string  `dynamodbav:"transaction_id,omitempty"`
	MerchantReference string  `dynamodbav:"merchant_reference,omitempty"`
	PaymentURL        string  `dynamodbav:"payment_url,omitempty"`
	CustomerEmail     string  `dynamodbav:"customer_email,omitempty"`
	CustomerPhone     string  `dynamodbav:"customer_phone,omitempty"`
	InitiatedAt       string  `dynamodbav:"initiated_at,omitempty"`
	CompletedAt       string  `dynamodbav:"completed_at,omitempty"`
	CreatedAt         string  `dynamodbav:"created_at"`
	UpdatedAt         string  `dynamodbav:"updated_at"`
}

// PaymentDynamoRepository persists Payment entities. The event and program
// payment tables are separate but structurally identical, so one implementation
// serves both, parameterized by table name.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: registration_id-index (PK: registration_id)
//   - GSI: order_tracking_id-index (PK: order_tracking_id)

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewEventPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EVENT_PAYMENTS_TABLE", defaultEventPaymentsTable),
	}
}

func NewProgramPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROGRAM_PAYMENTS_TABLE", defaultProgramPaymentsTable),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
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
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) GetByRegistrationID(ctx context.Context, registrationID string) (entities.Payment, error) {
	return r.queryOne(ctx, paymentsRegistrationIDIndex, "registration_id = :v", registrationID)
}

func (r *PaymentDynamoRepository) GetByTrackingID(ctx context.Context, orderTrackingID string) (entities.Payment, error) {
	return r.queryOne(ctx, paymentsTrackingIDIndex, "order_tracking_id = :v", orderTrackingID)
}

func (r *PaymentDynamoRepository) queryOne(ctx context.Context, index, keyCond, value string) (entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(keyCond),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Items) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

// SaveSubmission records a successful order submission. The not-terminal
// condition keeps a concurrent completion (IPN racing the submit) from being
// downgraded; in that case the write is skipped and the current row returned.
func (r *PaymentDynamoRepository) SaveSubmission(ctx context.Context, id, merchantReference, orderTrackingID, paymentURL string) (entities.Payment, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression: aws.String("SET payment_status = :st, merchant_reference = :mr, order_tracking_id = :tid, payment_url = :url, initiated_at = :now, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(id) AND NOT (payment_status IN (:completed, :cancelled, :refunded))"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":st":        &types.AttributeValueMemberS{Value: string(entities.PaymentStatusInitiated)},
			":mr":        &types.AttributeValueMemberS{Value: merchantReference},
			":tid":       &types.AttributeValueMemberS{Value: orderTrackingID},
			":url":       &types.AttributeValueMemberS{Value: paymentURL},
			":now":       &types.AttributeValueMemberS{Value: now},
			":completed": &types.AttributeValueMemberS{Value: string(entities.PaymentStatusCompleted)},
			":cancelled": &types.AttributeValueMemberS{Value: string(entities.PaymentStatusCancelled)},
			":refunded":  &types.AttributeValueMemberS{Value: string(entities.PaymentStatusRefunded)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return r.GetByID(ctx, id)
		}
		return entities.Payment{}, err
	}
	return unmarshalPayment(out.Attributes)
}

// SaveFailure records a failed submission attempt: status failed, tracking
// fields cleared, the merchant reference of the attempt preserved for audit.
func (r *PaymentDynamoRepository) SaveFailure(ctx context.Context, id, merchantReference string) (entities.Payment, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression: aws.String("SET payment_status = :st, merchant_reference = :mr, initiated_at = :now, updated_at = :now REMOVE order_tracking_id, payment_url"),
		ConditionExpression: aws.String("attribute_exists(id) AND NOT (payment_status IN (:completed, :cancelled, :refunded))"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":st":        &types.AttributeValueMemberS{Value: string(entities.PaymentStatusFailed)},
			":mr":        &types.AttributeValueMemberS{Value: merchantReference},
			":now":       &types.AttributeValueMemberS{Value: now},
			":completed": &types.AttributeValueMemberS{Value: string(entities.PaymentStatusCompleted)},
			":cancelled": &types.AttributeValueMemberS{Value: string(entities.PaymentStatusCancelled)},
			":refunded":  &types.AttributeValueMemberS{Value: string(entities.PaymentStatusRefunded)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return r.GetByID(ctx, id)
		}
		return entities.Payment{}, err
	}
	return unmarshalPayment(out.Attributes)
}

// TransitionStatus is the compare-then-set at the heart of reconciliation:
// the write is refused once the stored status is terminal, so a replayed
// notification can never downgrade a completed payment, and completed_at is
// written exactly once.
func (r *PaymentDynamoRepository) TransitionStatus(ctx context.Context, id string, to entities.PaymentStatus, transactionID, paymentMethod string) (entities.Payment, bool, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	update := "SET payment_status = :st, updated_at = :now"
	values := map[string]types.AttributeValue{
		":st":        &types.AttributeValueMemberS{Value: string(to)},
		":now":       &types.AttributeValueMemberS{Value: now},
		":completed": &types.AttributeValueMemberS{Value: string(entities.PaymentStatusCompleted)},
		":cancelled": &types.AttributeValueMemberS{Value: string(entities.PaymentStatusCancelled)},
		":refunded":  &types.AttributeValueMemberS{Value: string(entities.PaymentStatusRefunded)},
	}
	if transactionID != "" {
		update += ", transaction_id = :tx"
		values[":tx"] = &types.AttributeValueMemberS{Value: transactionID}
	}
	if paymentMethod != "" {
		update += ", payment_method = :pm"
		values[":pm"] = &types.AttributeValueMemberS{Value: paymentMethod}
	}
	if to == entities.PaymentStatusCompleted {
		update += ", completed_at = :now"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:          aws.String(update),
		ConditionExpression:       aws.String("attribute_exists(id) AND NOT (payment_status IN (:completed, :cancelled, :refunded))"),
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			current, getErr := r.GetByID(ctx, id)
			if getErr != nil {
				return entities.Payment{}, false, getErr
			}
			return current, false, nil
		}
		return entities.Payment{}, false, err
	}

	updated, err := unmarshalPayment(out.Attributes)
	return updated, err == nil, err
}

func unmarshalPayment(attrs map[string]types.AttributeValue) (entities.Payment, error) {
	var it paymentItem
	if err := attributevalue.UnmarshalMap(attrs, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:                p.ID,
		RegistrationID:    p.RegistrationID,
		Amount:            p.Amount,
		Currency:          p.Currency,
		PaymentMethod:     p.PaymentMethod,
		Status:            string(p.Status),
		OrderTrackingID:   p.OrderTrackingID,
		TransactionID:     p.TransactionID,
		MerchantReference: p.MerchantReference,
		PaymentURL:        p.PaymentURL,
		CustomerEmail:     p.CustomerEmail,
		CustomerPhone:     p.CustomerPhone,
		InitiatedAt:       formatOptionalTime(p.InitiatedAt),
		CompletedAt:       formatOptionalTime(p.CompletedAt),
		CreatedAt:         p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Payment{
		ID:                it.ID,
		RegistrationID:    it.RegistrationID,
		Amount:            it.Amount,
		Currency:          it.Currency,
		PaymentMethod:     it.PaymentMethod,
		Status:            entities.PaymentStatus(it.Status),
		OrderTrackingID:   it.OrderTrackingID,
		TransactionID:     it.TransactionID,
		MerchantReference: it.MerchantReference,
		PaymentURL:        it.PaymentURL,
		CustomerEmail:     it.CustomerEmail,
		CustomerPhone:     it.CustomerPhone,
		InitiatedAt:       parseOptionalTime(it.InitiatedAt),
		CompletedAt:       parseOptionalTime(it.CompletedAt),
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseOptionalTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	return &t
}
