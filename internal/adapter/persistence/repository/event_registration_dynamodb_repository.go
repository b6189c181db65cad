package repository

import (
	"context"
	"time"

	"mbg_backend/internal/domain/entities"
	"mbg_backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEventRegistrationsTable = "event_registrations"
	registrationsEventIDIndex      = "event_id-index"
)

type eventRegistrationItem struct {
	ID              string `dynamodbav:"id"`
	EventID         string `dynamodbav:"event_id"`
	FullName        string `dynamodbav:"full_name"`
	Email           string `dynamodbav:"email"`
	Phone           string `dynamodbav:"phone"`
	Company         string `dynamodbav:"company,omitempty"`
	JobTitle        string `dynamodbav:"job_title,omitempty"`
	Industry        string `dynamodbav:"industry,omitempty"`
	ExperienceLevel string `dynamodbav:"experience_level,omitempty"`
	Goals           string `dynamodbav:"goals,omitempty"`
	HeardAbout      string `dynamodbav:"heard_about,omitempty"`
	Status          string `dynamodbav:"registration_status"`
	RegisteredAt    string `dynamodbav:"registered_at"`
}

// EventRegistrationDynamoRepository persists EventRegistration entities.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: event_id-index (PK: event_id)

type EventRegistrationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEventRegistrationRepository = (*EventRegistrationDynamoRepository)(nil)

func NewEventRegistrationDynamoRepository(ddb *dynamodb.Client) *EventRegistrationDynamoRepository {
	return &EventRegistrationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EVENT_REGISTRATIONS_TABLE", defaultEventRegistrationsTable),
	}
}

func (r *EventRegistrationDynamoRepository) Create(ctx context.Context, reg entities.EventRegistration) (entities.EventRegistration, error) {
	av, err := attributevalue.MarshalMap(toEventRegistrationItem(reg))
	if err != nil {
		return entities.EventRegistration{}, err
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
		return entities.EventRegistration{}, err
	}
	return reg, nil
}

func (r *EventRegistrationDynamoRepository) GetByID(ctx context.Context, id string) (entities.EventRegistration, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.EventRegistration{}, err
	}
	if len(out.Item) == 0 {
		return entities.EventRegistration{}, nil
	}

	var it eventRegistrationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.EventRegistration{}, err
	}
	return fromEventRegistrationItem(it), nil
}

func (r *EventRegistrationDynamoRepository) ListByEventID(ctx context.Context, eventID string) ([]entities.EventRegistration, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(registrationsEventIDIndex),
		KeyConditionExpression: aws.String("event_id = :eid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eid": &types.AttributeValueMemberS{Value: eventID},
		},
	})
	if err != nil {
		return nil, err
	}

	regs := make([]entities.EventRegistration, 0, len(out.Items))
	for _, raw := range out.Items {
		var it eventRegistrationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		regs = append(regs, fromEventRegistrationItem(it))
	}
	return regs, nil
}

func (r *EventRegistrationDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.RegistrationStatus) (entities.EventRegistration, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET registration_status = :st"),
		ConditionExpression: aws.String("attribute_exists(id)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":st": &types.AttributeValueMemberS{Value: string(status)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.EventRegistration{}, err
	}

	var it eventRegistrationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.EventRegistration{}, err
	}
	return fromEventRegistrationItem(it), nil
}

func toEventRegistrationItem(reg entities.EventRegistration) eventRegistrationItem {
	return eventRegistrationItem{
		ID:              reg.ID,
		EventID:         reg.EventID,
		FullName:        reg.FullName,
		Email:           reg.Email,
		Phone:           reg.Phone,
		Company:         reg.Company,
		JobTitle:        reg.JobTitle,
		Industry:        reg.Industry,
		ExperienceLevel: reg.ExperienceLevel,
		Goals:           reg.Goals,
		HeardAbout:      reg.HeardAbout,
		Status:          string(reg.Status),
		RegisteredAt:    reg.RegisteredAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromEventRegistrationItem(it eventRegistrationItem) entities.EventRegistration {
	registeredAt, _ := time.Parse(time.RFC3339Nano, it.RegisteredAt)
	return entities.EventRegistration{
		ID:              it.ID,
		EventID:         it.EventID,
		FullName:        it.FullName,
		Email:           it.Email,
		Phone:           it.Phone,
		Company:         it.Company,
		JobTitle:        it.JobTitle,
		Industry:        it.Industry,
		ExperienceLevel: it.ExperienceLevel,
		Goals:           it.Goals,
		HeardAbout:      it.HeardAbout,
		Status:          entities.RegistrationStatus(it.Status),
		RegisteredAt:    registeredAt,
	}
}
