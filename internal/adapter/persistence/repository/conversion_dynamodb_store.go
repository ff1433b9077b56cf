package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"constructhub/internal/domain/entities"
	"constructhub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ConversionDynamoStore executes the estimate-to-project conversion as a
// single TransactWriteItems call spanning the estimates and projects tables:
//
//  1. Update estimates: allowed only while the row exists, has no projectid
//     yet, and its status is still in the convertible set. Sets
//     status=converted, projectid, approveddate (kept if already set) and
//     updatedat.
//  2. Put projects: allowed only if the project id is unused.
//
// Either both writes commit or neither does: a cancelled transaction leaves
// no orphaned project and no half-transitioned estimate, and the projectid
// condition makes a concurrent second conversion lose cleanly.
type ConversionDynamoStore struct {
	ddb            *dynamodb.Client
	estimatesTable string
	projectsTable  string
}

var _ interfaces.IConversionStore = (*ConversionDynamoStore)(nil)

func NewConversionDynamoStore(ddb *dynamodb.Client) *ConversionDynamoStore {
	return &ConversionDynamoStore{
		ddb:            ddb,
		estimatesTable: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
		projectsTable:  getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
	}
}

func (s *ConversionDynamoStore) Convert(ctx context.Context, estimateID string, p entities.Project, now time.Time) (bool, error) {
	projectAV, err := attributevalue.MarshalMap(toProjectItem(p))
	if err != nil {
		return false, err
	}

	nowStr := timeToString(now)
	estimateUpdate := &types.Update{
		TableName: aws.String(s.estimatesTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: estimateID},
		},
		UpdateExpression: aws.String(
			"SET #status = :converted, #projectid = :projectid, " +
				"#approveddate = if_not_exists(#approveddate, :now), #updatedat = :now",
		),
		ConditionExpression: aws.String(
			"attribute_exists(#id) AND attribute_not_exists(#projectid) " +
				"AND #status IN (:draft, :pending, :sent, :approved)",
		),
		ExpressionAttributeNames: map[string]string{
			"#id":           "id",
			"#status":       "status",
			"#projectid":    "projectid",
			"#approveddate": "approveddate",
			"#updatedat":    "updatedat",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":converted": &types.AttributeValueMemberS{Value: string(entities.EstimateStatusConverted)},
			":projectid": &types.AttributeValueMemberS{Value: p.ID},
			":now":       &types.AttributeValueMemberS{Value: nowStr},
			":draft":     &types.AttributeValueMemberS{Value: string(entities.EstimateStatusDraft)},
			":pending":   &types.AttributeValueMemberS{Value: string(entities.EstimateStatusPending)},
			":sent":      &types.AttributeValueMemberS{Value: string(entities.EstimateStatusSent)},
			":approved":  &types.AttributeValueMemberS{Value: string(entities.EstimateStatusApproved)},
		},
	}
	projectPut := &types.Put{
		TableName:           aws.String(s.projectsTable),
		Item:                projectAV,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	}

	_, err = s.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Update: estimateUpdate},
			{Put: projectPut},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) && hasConditionalCancellation(tce) {
			log.Printf("[convert][store] transaction cancelled on condition estimate_id=%s project_id=%s", estimateID, p.ID)
			return false, nil
		}
		return false, err
	}
	log.Printf("[convert][store] transaction committed estimate_id=%s project_id=%s", estimateID, p.ID)
	return true, nil
}

func hasConditionalCancellation(tce *types.TransactionCanceledException) bool {
	for _, reason := range tce.CancellationReasons {
		if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}
