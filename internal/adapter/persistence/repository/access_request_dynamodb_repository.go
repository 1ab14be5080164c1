package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"boq_service/internal/domain/entities"
	"boq_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAccessRequestsTableName = "access_requests"

type accessRequestItem struct {
	Email       string `dynamodbav:"email"`
	Status      string `dynamodbav:"status"`
	RequestedAt string `dynamodbav:"requested_at"`
	ApprovedAt  string `dynamodbav:"approved_at,omitempty"`
}

// AccessRequestDynamoRepository persists AccessRequest records in DynamoDB.
//
// Table requirements:
//   - PK: email (string)
//
// Email is the PK, which guarantees the one-record-per-identity invariant
// without any secondary lookup.

type AccessRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAccessRequestRepository = (*AccessRequestDynamoRepository)(nil)

func NewAccessRequestDynamoRepository(ddb *dynamodb.Client) *AccessRequestDynamoRepository {
	return &AccessRequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ACCESS_REQUESTS_TABLE", defaultAccessRequestsTableName),
	}
}

func (r *AccessRequestDynamoRepository) Create(ctx context.Context, req entities.AccessRequest) (entities.AccessRequest, error) {
	av, err := attributevalue.MarshalMap(toAccessRequestItem(req))
	if err != nil {
		return entities.AccessRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#email)"),
		ExpressionAttributeNames: map[string]string{
			"#email": "email",
		},
	})
	if err != nil {
		// Two gates racing on the first visit of the same identity: the
		// record already exists, adopt it.
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return r.GetByEmail(ctx, req.Email)
		}
		return entities.AccessRequest{}, err
	}
	return req, nil
}

func (r *AccessRequestDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.AccessRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"email": &types.AttributeValueMemberS{Value: email},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.AccessRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.AccessRequest{}, nil
	}

	var it accessRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.AccessRequest{}, err
	}
	return fromAccessRequestItem(it)
}

func (r *AccessRequestDynamoRepository) UpdateStatus(ctx context.Context, email string, status entities.AccessStatus, approvedAt *time.Time) (entities.AccessRequest, error) {
	updateExpr := "SET #status = :status REMOVE #approved_at"
	values := map[string]types.AttributeValue{
		":status": &types.AttributeValueMemberS{Value: string(status)},
	}
	if approvedAt != nil {
		updateExpr = "SET #status = :status, #approved_at = :approved_at"
		values[":approved_at"] = &types.AttributeValueMemberS{Value: approvedAt.UTC().Format(time.RFC3339Nano)}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"email": &types.AttributeValueMemberS{Value: email},
		},
		ConditionExpression:       aws.String("attribute_exists(#email)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames: map[string]string{
			"#email":       "email",
			"#status":      "status",
			"#approved_at": "approved_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.AccessRequest{}, nil
		}
		return entities.AccessRequest{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.AccessRequest{}, nil
	}

	var it accessRequestItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.AccessRequest{}, err
	}
	return fromAccessRequestItem(it)
}

func (r *AccessRequestDynamoRepository) List(ctx context.Context) ([]entities.AccessRequest, error) {
	var requests []entities.AccessRequest
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []accessRequestItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			req, err := fromAccessRequestItem(it)
			if err != nil {
				return nil, err
			}
			requests = append(requests, req)
		}

		if len(out.LastEvaluatedKey) == 0 {
			return requests, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func toAccessRequestItem(r entities.AccessRequest) accessRequestItem {
	it := accessRequestItem{
		Email:       r.Email,
		Status:      string(r.Status),
		RequestedAt: r.RequestedAt.UTC().Format(time.RFC3339Nano),
	}
	if r.ApprovedAt != nil {
		it.ApprovedAt = r.ApprovedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

// fromAccessRequestItem decodes a stored document into the typed record,
// failing loudly on malformed data instead of trusting field presence.
func fromAccessRequestItem(it accessRequestItem) (entities.AccessRequest, error) {
	if it.Email == "" {
		return entities.AccessRequest{}, fmt.Errorf("access request item missing email")
	}
	status, err := entities.ParseAccessStatus(it.Status)
	if err != nil {
		return entities.AccessRequest{}, fmt.Errorf("access request %s: %w", it.Email, err)
	}
	requestedAt, err := time.Parse(time.RFC3339Nano, it.RequestedAt)
	if err != nil {
		return entities.AccessRequest{}, fmt.Errorf("access request %s: bad requested_at: %w", it.Email, err)
	}

	req := entities.AccessRequest{
		Email:       it.Email,
		Status:      status,
		RequestedAt: requestedAt,
	}
	if it.ApprovedAt != "" {
		approvedAt, err := time.Parse(time.RFC3339Nano, it.ApprovedAt)
		if err != nil {
			return entities.AccessRequest{}, fmt.Errorf("access request %s: bad approved_at: %w", it.Email, err)
		}
		req.ApprovedAt = &approvedAt
	}
	return req, nil
}
