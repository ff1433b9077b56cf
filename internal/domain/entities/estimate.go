package entities

import (
	"fmt"
	"strings"
	"time"
)

// EstimateStatus represents the lifecycle of a construction estimate.
//
// Domain notes:
//   - Estimates start in draft and end either converted (linked to a project)
//     or parked in rejected, which can only be reopened back to draft.
//   - pending is a legacy label equivalent to sent ("awaiting decision");
//     this service never produces it but accepts it as a transition source.
type EstimateStatus string

const (
	EstimateStatusDraft     EstimateStatus = "draft"
	EstimateStatusPending   EstimateStatus = "pending"
	EstimateStatusSent      EstimateStatus = "sent"
	EstimateStatusApproved  EstimateStatus = "approved"
	EstimateStatusRejected  EstimateStatus = "rejected"
	EstimateStatusConverted EstimateStatus = "converted"
)

// estimateTransitions is the directed edge set of the status graph. A status
// write is legal only if the target appears in the current status entry.
// converted has no outgoing edges.
var estimateTransitions = map[EstimateStatus][]EstimateStatus{
	EstimateStatusDraft:     {EstimateStatusSent},
	EstimateStatusPending:   {EstimateStatusApproved, EstimateStatusRejected},
	EstimateStatusSent:      {EstimateStatusApproved, EstimateStatusRejected},
	EstimateStatusApproved:  {EstimateStatusConverted},
	EstimateStatusRejected:  {EstimateStatusDraft},
	EstimateStatusConverted: {},
}

// Valid reports whether s is a member of the status vocabulary.
func (s EstimateStatus) Valid() bool {
	_, ok := estimateTransitions[s]
	return ok
}

// NextStatuses returns the statuses reachable from s in one transition.
func (s EstimateStatus) NextStatuses() []EstimateStatus {
	next := estimateTransitions[s]
	out := make([]EstimateStatus, len(next))
	copy(out, next)
	return out
}

// CanTransitionTo reports whether the edge s -> target exists.
func (s EstimateStatus) CanTransitionTo(target EstimateStatus) bool {
	for _, next := range estimateTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// Terminal reports whether s has no outgoing edges.
func (s EstimateStatus) Terminal() bool {
	return s.Valid() && len(estimateTransitions[s]) == 0
}

// Convertible reports whether an estimate in status s may enter the
// conversion procedure. rejected and converted estimates may not.
func (s EstimateStatus) Convertible() bool {
	switch s {
	case EstimateStatusDraft, EstimateStatusPending, EstimateStatusSent, EstimateStatusApproved:
		return true
	}
	return false
}

// TransitionSourcesFor returns every status from which target is reachable
// in one transition. The persistence layer uses this to build the condition
// that guards direct status writes.
func TransitionSourcesFor(target EstimateStatus) []EstimateStatus {
	var sources []EstimateStatus
	for _, from := range []EstimateStatus{
		EstimateStatusDraft,
		EstimateStatusPending,
		EstimateStatusSent,
		EstimateStatusApproved,
		EstimateStatusRejected,
		EstimateStatusConverted,
	} {
		if from.CanTransitionTo(target) {
			sources = append(sources, from)
		}
	}
	return sources
}

// ParseEstimateStatus canonicalizes a user-supplied status label.
func ParseEstimateStatus(value string) (EstimateStatus, bool) {
	s := EstimateStatus(strings.ToLower(strings.TrimSpace(value)))
	if !s.Valid() {
		return "", false
	}
	return s, true
}

// InvalidTransitionError reports a status write whose (current, target) pair
// is not an edge of the transition graph.
type InvalidTransitionError struct {
	From EstimateStatus
	To   EstimateStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

// Estimate is a construction estimate persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Invariants:
//   - ProjectID is non-empty if and only if Status == converted.
//   - Status only ever changes along the edges in estimateTransitions;
//     the repository enforces this with conditional writes.
type Estimate struct {
	ID                 string         `json:"id"`
	CustomerID         string         `json:"customerid"`
	CustomerName       string         `json:"customername"`
	ProjectName        string         `json:"projectname"`
	JobDescription     string         `json:"jobdescription"`
	Description        string         `json:"description"`
	EstimateAmount     float64        `json:"estimateamount"`
	ContingencyPercent float64        `json:"contingencypercent"`
	ContingencyAmount  float64        `json:"contingencyamount"`
	SiteAddress        string         `json:"siteaddress"`
	SiteCity           string         `json:"sitecity"`
	SiteState          string         `json:"sitestate"`
	SiteZip            string         `json:"sitezip"`
	Status             EstimateStatus `json:"status"`
	ProjectID          string         `json:"projectid"`
	CreatedAt          time.Time      `json:"createddate"`
	SentAt             time.Time      `json:"sentdate"`
	ApprovedAt         time.Time      `json:"approveddate"`
	UpdatedAt          time.Time      `json:"updatedat"`
}

// ResolveJobDescription returns the text a project created from this
// estimate should carry: the explicit job description, else the free-text
// description, else a generated default naming the estimate.
func (e Estimate) ResolveJobDescription() string {
	if v := strings.TrimSpace(e.JobDescription); v != "" {
		return v
	}
	if v := strings.TrimSpace(e.Description); v != "" {
		return v
	}
	return fmt.Sprintf("Work converted from estimate %s", e.ID)
}

// ResolveProjectName returns the project name to use at conversion time,
// falling back to a generated name referencing the estimate.
func (e Estimate) ResolveProjectName() string {
	if v := strings.TrimSpace(e.ProjectName); v != "" {
		return v
	}
	return fmt.Sprintf("Project from estimate %s", e.ID)
}
