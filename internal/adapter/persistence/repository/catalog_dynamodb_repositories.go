package repository

import (
	"context"
	"sort"
	"time"

	"mbg_backend/internal/domain/entities"
	"mbg_backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEventsTable   = "events"
	defaultProgramsTable = "programs"
	defaultContactTable  = "contact_messages"
)

// EventDynamoRepository reads Event entities. Events are written by the content
// pipeline; this service only lists and fetches them.
//
// Table requirements:
//   - PK: id (string)

type eventItem struct {
	ID                string  `dynamodbav:"id"`
	Title             string  `dynamodbav:"title"`
	Category          string  `dynamodbav:"category,omitempty"`
	StartDate         string  `dynamodbav:"start_date"`
	EndDate           string  `dynamodbav:"end_date,omitempty"`
	Location          string  `dynamodbav:"location"`
	ParticipantsLimit int     `dynamodbav:"participants_limit"`
	Duration          string  `dynamodbav:"duration,omitempty"`
	Description       string  `dynamodbav:"description"`
	InvestmentAmount  float64 `dynamodbav:"investment_amount"`
	Currency          string  `dynamodbav:"currency"`
	IsFree            bool    `dynamodbav:"is_free"`
	Status            string  `dynamodbav:"status"`
	RegistrationOpen  bool    `dynamodbav:"registration_open"`
	CreatedAt         string  `dynamodbav:"created_at"`
	UpdatedAt         string  `dynamodbav:"updated_at"`
}

func fromEventItem(it eventItem) entities.Event {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Event{
		ID:                it.ID,
		Title:             it.Title,
		Category:          it.Category,
		StartDate:         it.StartDate,
		EndDate:           it.EndDate,
		Location:          it.Location,
		ParticipantsLimit: it.ParticipantsLimit,
		Duration:          it.Duration,
		Description:       it.Description,
		InvestmentAmount:  it.InvestmentAmount,
		Currency:          it.Currency,
		IsFree:            it.IsFree,
		Status:            entities.EventStatus(it.Status),
		RegistrationOpen:  it.RegistrationOpen,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
}

type EventDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEventRepository = (*EventDynamoRepository)(nil)

func NewEventDynamoRepository(ddb *dynamodb.Client) *EventDynamoRepository {
	return &EventDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EVENTS_TABLE", defaultEventsTable),
	}
}

func (r *EventDynamoRepository) GetByID(ctx context.Context, id string) (entities.Event, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Event{}, err
	}
	if len(out.Item) == 0 {
		return entities.Event{}, nil
	}

	var it eventItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Event{}, err
	}
	return fromEventItem(it), nil
}

func (r *EventDynamoRepository) List(ctx context.Context) ([]entities.Event, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}

	events := make([]entities.Event, 0, len(out.Items))
	for _, raw := range out.Items {
		var it eventItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		events = append(events, fromEventItem(it))
	}
	sort.Slice(events, func(i, j int) bool { return events[i].StartDate < events[j].StartDate })
	return events, nil
}

// ProgramDynamoRepository reads Program entities.
//
// Table requirements:
//   - PK: id (string)

type programItem struct {
	ID          string `dynamodbav:"id"`
	Title       string `dynamodbav:"title"`
	Description string `dynamodbav:"description"`
	Duration    string `dynamodbav:"duration,omitempty"`
	Price       string `dynamodbav:"price"`
	Currency    string `dynamodbav:"currency"`
	Active      bool   `dynamodbav:"active"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

func fromProgramItem(it programItem) entities.Program {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Program{
		ID:          it.ID,
		Title:       it.Title,
		Description: it.Description,
		Duration:    it.Duration,
		Price:       it.Price,
		Currency:    it.Currency,
		Active:      it.Active,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

type ProgramDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProgramRepository = (*ProgramDynamoRepository)(nil)

func NewProgramDynamoRepository(ddb *dynamodb.Client) *ProgramDynamoRepository {
	return &ProgramDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROGRAMS_TABLE", defaultProgramsTable),
	}
}

func (r *ProgramDynamoRepository) GetByID(ctx context.Context, id string) (entities.Program, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Program{}, err
	}
	if len(out.Item) == 0 {
		return entities.Program{}, nil
	}

	var it programItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Program{}, err
	}
	return fromProgramItem(it), nil
}

func (r *ProgramDynamoRepository) List(ctx context.Context) ([]entities.Program, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}

	programs := make([]entities.Program, 0, len(out.Items))
	for _, raw := range out.Items {
		var it programItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		programs = append(programs, fromProgramItem(it))
	}
	sort.Slice(programs, func(i, j int) bool { return programs[i].Title < programs[j].Title })
	return programs, nil
}

// ContactMessageDynamoRepository persists contact-form submissions.
//
// Table requirements:
//   - PK: id (string)

type ContactMessageDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IContactMessageRepository = (*ContactMessageDynamoRepository)(nil)

func NewContactMessageDynamoRepository(ddb *dynamodb.Client) *ContactMessageDynamoRepository {
	return &ContactMessageDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONTACT_MESSAGES_TABLE", defaultContactTable),
	}
}

type contactMessageItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Email     string `dynamodbav:"email"`
	Phone     string `dynamodbav:"phone,omitempty"`
	Subject   string `dynamodbav:"subject"`
	Message   string `dynamodbav:"message"`
	CreatedAt string `dynamodbav:"created_at"`
}

func (r *ContactMessageDynamoRepository) Create(ctx context.Context, m entities.ContactMessage) (entities.ContactMessage, error) {
	it := contactMessageItem{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Subject:   m.Subject,
		Message:   m.Message,
		CreatedAt: m.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ContactMessage{}, err
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
		return entities.ContactMessage{}, err
	}
	return m, nil
}
