package repository

import (
	"testing"
	"time"

	"constructhub/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

// The conversion transaction's idempotency guard is
// attribute_not_exists(projectid): an unconverted estimate must marshal
// without the attribute at all, not with an empty string.
func TestEstimateItem_UnsetAttributesAreAbsent(t *testing.T) {
	e := entities.Estimate{
		ID:             "est-1",
		CustomerName:   "Acme",
		EstimateAmount: 1000,
		Status:         entities.EstimateStatusDraft,
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}

	av, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, attr := range []string{"projectid", "sentdate", "approveddate"} {
		if _, ok := av[attr]; ok {
			t.Fatalf("attribute %q must be absent on an unconverted draft", attr)
		}
	}
	if _, ok := av["status"]; !ok {
		t.Fatalf("status attribute must always be present")
	}
}

func TestEstimateItem_RoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	e := entities.Estimate{
		ID:                 "est-1",
		CustomerID:         "cust-1",
		CustomerName:       "Acme",
		ProjectName:        "Roof",
		JobDescription:     "Replace the roof",
		EstimateAmount:     1000.5,
		ContingencyPercent: 10,
		ContingencyAmount:  100.05,
		SiteAddress:        "1 Main St",
		Status:             entities.EstimateStatusConverted,
		ProjectID:          "proj-1",
		CreatedAt:          now,
		SentAt:             now,
		ApprovedAt:         now,
		UpdatedAt:          now,
	}

	got := fromEstimateItem(toEstimateItem(e))
	if got != e {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, e)
	}
}

func TestProjectItem_RoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	p := entities.Project{
		ID:             "proj-1",
		CustomerName:   "Acme",
		ProjectName:    "Roof",
		JobDescription: "Replace the roof",
		Status:         entities.ProjectStatusActive,
		TotalBudget:    1000,
		CreatedAt:      now,
	}

	got := fromProjectItem(toProjectItem(p))
	if got != p {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, p)
	}
}
