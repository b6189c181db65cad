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
	defaultProgramRegistrationsTable = "program_registrations"
	registrationsProgramIDIndex      = "program_id-index"
)

type programRegistrationItem struct {
	ID           string `dynamodbav:"id"`
	ProgramID    string `dynamodbav:"program_id"`
	FullName     string `dynamodbav:"full_name"`
	Email        string `dynamodbav:"email"`
	PhoneNumber  string `dynamodbav:"phone_number"`
	Paid         bool   `dynamodbav:"paid"`
	RegisteredAt string `dynamodbav:"registered_at"`
}

// ProgramRegistrationDynamoRepository persists ProgramRegistration entities.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: program_id-index (PK: program_id)

type ProgramRegistrationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProgramRegistrationRepository = (*ProgramRegistrationDynamoRepository)(nil)

func NewProgramRegistrationDynamoRepository(ddb *dynamodb.Client) *ProgramRegistrationDynamoRepository {
	return &ProgramRegistrationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROGRAM_REGISTRATIONS_TABLE", defaultProgramRegistrationsTable),
	}
}

func (r *ProgramRegistrationDynamoRepository) Create(ctx context.Context, reg entities.ProgramRegistration) (entities.ProgramRegistration, error) {
	av, err := attributevalue.MarshalMap(toProgramRegistrationItem(reg))
	if err != nil {
		return entities.ProgramRegistration{}, err
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
		return entities.ProgramRegistration{}, err
	}
	return reg, nil
}

func (r *ProgramRegistrationDynamoRepository) GetByID(ctx context.Context, id string) (entities.ProgramRegistration, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ProgramRegistration{}, err
	}
	if len(out.Item) == 0 {
		return entities.ProgramRegistration{}, nil
	}

	var it programRegistrationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ProgramRegistration{}, err
	}
	return fromProgramRegistrationItem(it), nil
}

func (r *ProgramRegistrationDynamoRepository) ListByProgramID(ctx context.Context, programID string) ([]entities.ProgramRegistration, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(registrationsProgramIDIndex),
		KeyConditionExpression: aws.String("program_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: programID},
		},
	})
	if err != nil {
		return nil, err
	}

	regs := make([]entities.ProgramRegistration, 0, len(out.Items))
	for _, raw := range out.Items {
		var it programRegistrationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		regs = append(regs, fromProgramRegistrationItem(it))
	}
	return regs, nil
}

func (r *ProgramRegistrationDynamoRepository) SetPaid(ctx context.Context, id string, paid bool) (entities.ProgramRegistration, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET paid = :p"),
		ConditionExpression: aws.String("attribute_exists(id)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":p": &types.AttributeValueMemberBOOL{Value: paid},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.ProgramRegistration{}, err
	}

	var it programRegistrationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ProgramRegistration{}, err
	}
	return fromProgramRegistrationItem(it), nil
}

func toProgramRegistrationItem(reg entities.ProgramRegistration) programRegistrationItem {
	return programRegistrationItem{
		ID:           reg.ID,
		ProgramID:    reg.ProgramID,
		FullName:     reg.FullName,
		Email:        reg.Email,
		PhoneNumber:  reg.PhoneNumber,
		Paid:         reg.Paid,
		RegisteredAt: reg.RegisteredAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromProgramRegistrationItem(it programRegistrationItem) entities.ProgramRegistration {
	registeredAt, _ := time.Parse(time.RFC3339Nano, it.RegisteredAt)
	return entities.ProgramRegistration{
		ID:           it.ID,
		ProgramID:    it.ProgramID,
		FullName:     it.FullName,
		Email:        it.Email,
		PhoneNumber:  it.PhoneNumber,
		Paid:         it.Paid,
		RegisteredAt: registeredAt,
	}
}
