package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"storefront_tracking/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSessionFlagsTableName = "session_flags"
	defaultSessionFlagTTL        = 24 * time.Hour
)

var ErrInvalidSessionFlagKey = errors.New("invalid session flag key")

type sessionFlagItem struct {
	SessionID string `dynamodbav:"session_id"`
	Flag      string `dynamodbav:"flag"`
	CreatedAt string `dynamodbav:"created_at"`
	ExpiresAt int64  `dynamodbav:"expires_at"`
}

// SessionFlagDynamoRepository keeps session-scoped flags in DynamoDB.
//
// Table requirements:
//   - PK: session_id (string)
//   - SK: flag (string)
//   - TTL attribute: expires_at (epoch seconds)
//
// DynamoDB removes expired items lazily, so reads also compare expires_at
// with the current time.
type SessionFlagDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
	ttl       time.Duration
	now       func() time.Time
}

var _ interfaces.ISessionFlagStore = (*SessionFlagDynamoRepository)(nil)

func NewSessionFlagDynamoRepository(ddb DynamoDBAPI, table string, ttl time.Duration) *SessionFlagDynamoRepository {
	if ttl <= 0 {
		ttl = defaultSessionFlagTTL
	}
	return &SessionFlagDynamoRepository{
		ddb:       ddb,
		tableName: tableName(table, "SESSION_FLAGS_TABLE", defaultSessionFlagsTableName),
		ttl:       ttl,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (r *SessionFlagDynamoRepository) IsSet(ctx context.Context, sessionID, flag string) (bool, error) {
	key, err := sessionFlagKey(sessionID, flag)
	if err != nil {
		return false, err
	}

	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            key,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if len(out.Item) == 0 {
		return false, nil
	}

	var it sessionFlagItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return false, err
	}
	return it.ExpiresAt == 0 || it.ExpiresAt > r.now().Unix(), nil
}

// Set writes the flag once. An existing flag keeps its original expiry.
func (r *SessionFlagDynamoRepository) Set(ctx context.Context, sessionID, flag string) error {
	if _, err := sessionFlagKey(sessionID, flag); err != nil {
		return err
	}

	now := r.now()
	av, err := attributevalue.MarshalMap(sessionFlagItem{
		SessionID: strings.TrimSpace(sessionID),
		Flag:      strings.TrimSpace(flag),
		CreatedAt: now.Format(time.RFC3339Nano),
		ExpiresAt: now.Add(r.ttl).Unix(),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#sid) OR #exp < :now"),
		ExpressionAttributeNames: map[string]string{
			"#sid": "session_id",
			"#exp": "expires_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":now": &types.AttributeValueMemberN{Value: strconv.FormatInt(now.Unix(), 10)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil
		}
		return err
	}
	return nil
}

func sessionFlagKey(sessionID, flag string) (map[string]types.AttributeValue, error) {
	sessionID = strings.TrimSpace(sessionID)
	flag = strings.TrimSpace(flag)
	if sessionID == "" || flag == "" {
		return nil, ErrInvalidSessionFlagKey
	}
	return map[string]types.AttributeValue{
		"session_id": &types.AttributeValueMemberS{Value: sessionID},
		"flag":       &types.AttributeValueMemberS{Value: flag},
	}, nil
}
