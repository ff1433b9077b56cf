package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"constructhub/internal/domain/entities"
	"constructhub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEstimatesTableName = "estimates"

type estimateItem struct {
	ID                 string `dynamodbav:"id"`
	CustomerID         string `dynamodbav:"customerid,omitempty"`
	CustomerName       string `dynamodbav:"customername,omitempty"`
	ProjectName        string `dynamodbav:"projectname,omitempty"`
	JobDescription     string `dynamodbav:"jobdescription,omitempty"`
	Description        string `dynamodbav:"description,omitempty"`
	EstimateAmount     string `dynamodbav:"estimateamount"`
	ContingencyPercent string `dynamodbav:"contingencypercent,omitempty"`
	ContingencyAmount  string `dynamodbav:"contingencyamount,omitempty"`
	SiteAddress        string `dynamodbav:"siteaddress,omitempty"`
	SiteCity           string `dynamodbav:"sitecity,omitempty"`
	SiteState          string `dynamodbav:"sitestate,omitempty"`
	SiteZip            string `dynamodbav:"sitezip,omitempty"`
	Status             string `dynamodbav:"status"`
	ProjectID          string `dynamodbav:"projectid,omitempty"`
	CreatedAt          string `dynamodbav:"createddate"`
	SentAt             string `dynamodbav:"sentdate,omitempty"`
	ApprovedAt         string `dynamodbav:"approveddate,omitempty"`
	UpdatedAt          string `dynamodbav:"updatedat"`
}

// EstimateDynamoRepository persists Estimate entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// projectid, sentdate and approveddate are written omitempty on purpose:
// attribute_not_exists(projectid) is the conversion transaction's idempotency
// condition, so an unconverted estimate must genuinely lack the attribute.
type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	av, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		return entities.Estimate{}, err
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
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func (r *EstimateDynamoRepository) List(ctx context.Context, status entities.EstimateStatus) ([]entities.Estimate, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	if status != "" {
		input.FilterExpression = aws.String("#status = :status")
		input.ExpressionAttributeNames = map[string]string{"#status": "status"}
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		}
	}

	var estimates []entities.Estimate
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		var items []estimateItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			estimates = append(estimates, fromEstimateItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return estimates, nil
}

// UpdateStatus is the transition validator's enforcement point. The write
// only succeeds when the stored status is one of the valid sources for
// target, so writers that bypass the usecase allow-list are still held to
// the transition graph. A failed condition with the old row attached becomes
// an InvalidTransitionError naming the offending pair; a failed condition
// with no row means the estimate does not exist.
func (r *EstimateDynamoRepository) UpdateStatus(ctx context.Context, id string, target entities.EstimateStatus, now time.Time) (entities.Estimate, error) {
	sources := entities.TransitionSourcesFor(target)
	if len(sources) == 0 {
		return entities.Estimate{}, &entities.InvalidTransitionError{To: target}
	}

	nowStr := timeToString(now)
	updateExpr := "SET #status = :status, #updatedat = :now"
	names := map[string]string{
		"#id":        "id",
		"#status":    "status",
		"#updatedat": "updatedat",
	}
	values := map[string]types.AttributeValue{
		":status": &types.AttributeValueMemberS{Value: string(target)},
		":now":    &types.AttributeValueMemberS{Value: nowStr},
	}

	// Status-specific derived timestamps.
	switch target {
	case entities.EstimateStatusSent:
		updateExpr += ", #sentdate = :now"
		names["#sentdate"] = "sentdate"
	case entities.EstimateStatusApproved:
		updateExpr += ", #approveddate = :now"
		names["#approveddate"] = "approveddate"
	}

	var condParts []string
	for i, src := range sources {
		key := fmt.Sprintf(":src%d", i)
		values[key] = &types.AttributeValueMemberS{Value: string(src)}
		condParts = append(condParts, key)
	}
	condition := fmt.Sprintf("attribute_exists(#id) AND #status IN (%s)", strings.Join(condParts, ", "))

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                           aws.String(r.tableName),
		Key:                                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}},
		ConditionExpression:                 aws.String(condition),
		UpdateExpression:                    aws.String(updateExpr),
		ExpressionAttributeNames:            names,
		ExpressionAttributeValues:           values,
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			if len(cfe.Item) == 0 {
				return entities.Estimate{}, nil
			}
			var old estimateItem
			if uerr := attributevalue.UnmarshalMap(cfe.Item, &old); uerr != nil {
				return entities.Estimate{}, uerr
			}
			return entities.Estimate{}, &entities.InvalidTransitionError{
				From: entities.EstimateStatus(old.Status),
				To:   target,
			}
		}
		return entities.Estimate{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func toEstimateItem(e entities.Estimate) estimateItem {
	return estimateItem{
		ID:                 e.ID,
		CustomerID:         e.CustomerID,
		CustomerName:       e.CustomerName,
		ProjectName:        e.ProjectName,
		JobDescription:     e.JobDescription,
		Description:        e.Description,
		EstimateAmount:     floatToString(e.EstimateAmount),
		ContingencyPercent: floatToString(e.ContingencyPercent),
		ContingencyAmount:  floatToString(e.ContingencyAmount),
		SiteAddress:        e.SiteAddress,
		SiteCity:           e.SiteCity,
		SiteState:          e.SiteState,
		SiteZip:            e.SiteZip,
		Status:             string(e.Status),
		ProjectID:          e.ProjectID,
		CreatedAt:          timeToString(e.CreatedAt),
		SentAt:             timeToString(e.SentAt),
		ApprovedAt:         timeToString(e.ApprovedAt),
		UpdatedAt:          timeToString(e.UpdatedAt),
	}
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	return entities.Estimate{
		ID:                 it.ID,
		CustomerID:         it.CustomerID,
		CustomerName:       it.CustomerName,
		ProjectName:        it.ProjectName,
		JobDescription:     it.JobDescription,
		Description:        it.Description,
		EstimateAmount:     stringToFloat(it.EstimateAmount),
		ContingencyPercent: stringToFloat(it.ContingencyPercent),
		ContingencyAmount:  stringToFloat(it.ContingencyAmount),
		SiteAddress:        it.SiteAddress,
		SiteCity:           it.SiteCity,
		SiteState:          it.SiteState,
		SiteZip:            it.SiteZip,
		Status:             entities.EstimateStatus(it.Status),
		ProjectID:          it.ProjectID,
		CreatedAt:          stringToTime(it.CreatedAt),
		SentAt:             stringToTime(it.SentAt),
		ApprovedAt:         stringToTime(it.ApprovedAt),
		UpdatedAt:          stringToTime(it.UpdatedAt),
	}
}
