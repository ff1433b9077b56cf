package response

import (
	"testing"
	"time"

	"constructhub/internal/domain/entities"
)

func TestFromEstimate(t *testing.T) {
	now := time.Now().UTC()
	e := entities.Estimate{
		ID:             "est-1",
		CustomerName:   "Acme",
		ProjectName:    "Roof",
		EstimateAmount: 1000,
		Status:         entities.EstimateStatusConverted,
		ProjectID:      "proj-1",
		CreatedAt:      now,
		ApprovedAt:     now,
		UpdatedAt:      now,
	}

	res := FromEstimate(e)
	if res.ID != "est-1" || res.Status != "converted" || res.ProjectID != "proj-1" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.EstimateAmount != 1000 {
		t.Fatalf("unexpected amount: %v", res.EstimateAmount)
	}
	if res.ApprovedAt == nil || !res.ApprovedAt.Equal(now) {
		t.Fatalf("unexpected approveddate: %v", res.ApprovedAt)
	}
	if res.SentAt != nil {
		t.Fatalf("sentdate must be omitted when never sent, got %v", res.SentAt)
	}
}

func TestFromNextStatuses(t *testing.T) {
	res := FromNextStatuses(entities.EstimateStatusSent.NextStatuses())
	if len(res.NextStatuses) != 2 || res.NextStatuses[0] != "approved" || res.NextStatuses[1] != "rejected" {
		t.Fatalf("unexpected next statuses: %+v", res)
	}

	empty := FromNextStatuses(nil)
	if empty.NextStatuses == nil || len(empty.NextStatuses) != 0 {
		t.Fatalf("expected empty non-nil slice, got %+v", empty)
	}
}
