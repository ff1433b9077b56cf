package response

import (
	"time"

	"constructhub/internal/domain/entities"
)

type EstimateResponse struct {
	ID                 string     `json:"id"`
	CustomerID         string     `json:"customerid,omitempty"`
	CustomerName       string     `json:"customername,omitempty"`
	ProjectName        string     `json:"projectname,omitempty"`
	JobDescription     string     `json:"jobdescription,omitempty"`
	Description        string     `json:"description,omitempty"`
	EstimateAmount     float64    `json:"estimateamount"`
	ContingencyPercent float64    `json:"contingencypercent"`
	ContingencyAmount  float64    `json:"contingencyamount"`
	SiteAddress        string     `json:"siteaddress,omitempty"`
	SiteCity           string     `json:"sitecity,omitempty"`
	SiteState          string     `json:"sitestate,omitempty"`
	SiteZip            string     `json:"sitezip,omitempty"`
	Status             string     `json:"status"`
	ProjectID          string     `json:"projectid,omitempty"`
	CreatedAt          time.Time  `json:"createddate"`
	SentAt             *time.Time `json:"sentdate,omitempty"`
	ApprovedAt         *time.Time `json:"approveddate,omitempty"`
	UpdatedAt          time.Time  `json:"updatedat"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	return EstimateResponse{
		ID:                 e.ID,
		CustomerID:         e.CustomerID,
		CustomerName:       e.CustomerName,
		ProjectName:        e.ProjectName,
		JobDescription:     e.JobDescription,
		Description:        e.Description,
		EstimateAmount:     e.EstimateAmount,
		ContingencyPercent: e.ContingencyPercent,
		ContingencyAmount:  e.ContingencyAmount,
		SiteAddress:        e.SiteAddress,
		SiteCity:           e.SiteCity,
		SiteState:          e.SiteState,
		SiteZip:            e.SiteZip,
		Status:             string(e.Status),
		ProjectID:          e.ProjectID,
		CreatedAt:          e.CreatedAt,
		SentAt:             optionalTime(e.SentAt),
		ApprovedAt:         optionalTime(e.ApprovedAt),
		UpdatedAt:          e.UpdatedAt,
	}
}

func FromEstimates(estimates []entities.Estimate) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(estimates))
	for _, e := range estimates {
		out = append(out, FromEstimate(e))
	}
	return out
}

// TransitionsResponse lists the statuses an estimate may move to next.
type TransitionsResponse struct {
	Status       string   `json:"status,omitempty"`
	NextStatuses []string `json:"next_statuses"`
}

func FromNextStatuses(statuses []entities.EstimateStatus) TransitionsResponse {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, string(s))
	}
	return TransitionsResponse{NextStatuses: out}
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
