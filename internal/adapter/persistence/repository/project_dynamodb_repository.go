package repository

import (
	"context"

	"constructhub/internal/domain/entities"
	"constructhub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProjectsTableName = "projects"

type projectItem struct {
	ID             string `dynamodbav:"id"`
	CustomerID     string `dynamodbav:"customerid,omitempty"`
	CustomerName   string `dynamodbav:"customername,omitempty"`
	ProjectName    string `dynamodbav:"projectname"`
	JobDescription string `dynamodbav:"jobdescription"`
	Status         string `dynamodbav:"status"`
	SiteAddress    string `dynamodbav:"siteaddress,omitempty"`
	SiteCity       string `dynamodbav:"sitecity,omitempty"`
	SiteState      string `dynamodbav:"sitestate,omitempty"`
	SiteZip        string `dynamodbav:"sitezip,omitempty"`
	TotalBudget    string `dynamodbav:"total_budget"`
	CreatedAt      string `dynamodbav:"createddate"`
}

// ProjectDynamoRepository reads Project entities from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Writes go exclusively through the conversion store's transaction; this
// repository deliberately has no Create or Update.
type ProjectDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb *dynamodb.Client) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
	}
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) List(ctx context.Context) ([]entities.Project, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}

	var projects []entities.Project
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		var items []projectItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			projects = append(projects, fromProjectItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return projects, nil
}

func toProjectItem(p entities.Project) projectItem {
	return projectItem{
		ID:             p.ID,
		CustomerID:     p.CustomerID,
		CustomerName:   p.CustomerName,
		ProjectName:    p.ProjectName,
		JobDescription: p.JobDescription,
		Status:         string(p.Status),
		SiteAddress:    p.SiteAddress,
		SiteCity:       p.SiteCity,
		SiteState:      p.SiteState,
		SiteZip:        p.SiteZip,
		TotalBudget:    floatToString(p.TotalBudget),
		CreatedAt:      timeToString(p.CreatedAt),
	}
}

func fromProjectItem(it projectItem) entities.Project {
	return entities.Project{
		ID:             it.ID,
		CustomerID:     it.CustomerID,
		CustomerName:   it.CustomerName,
		ProjectName:    it.ProjectName,
		JobDescription: it.JobDescription,
		Status:         entities.ProjectStatus(it.Status),
		SiteAddress:    it.SiteAddress,
		SiteCity:       it.SiteCity,
		SiteState:      it.SiteState,
		SiteZip:        it.SiteZip,
		TotalBudget:    stringToFloat(it.TotalBudget),
		CreatedAt:      stringToTime(it.CreatedAt),
	}
}
