package response

import (
	"testing"
	"time"

	"constructhub/internal/domain/entities"
)

func TestFromConversion(t *testing.T) {
	now := time.Now().UTC()
	p := entities.Project{
		ID:           "proj-1",
		ProjectName:  "Roof",
		CustomerName: "Acme",
		Status:       entities.ProjectStatusActive,
		TotalBudget:  1000,
		CreatedAt:    now,
	}

	res := FromConversion(p)
	if res.ProjectID != "proj-1" {
		t.Fatalf("unexpected project id: %q", res.ProjectID)
	}
	if res.Project.ProjectName != "Roof" || res.Project.Status != "active" || res.Project.TotalBudget != 1000 {
		t.Fatalf("unexpected project payload: %+v", res.Project)
	}
	if !res.Project.CreatedAt.Equal(now) {
		t.Fatalf("unexpected created at: %v", res.Project.CreatedAt)
	}
}
