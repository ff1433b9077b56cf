package response

import (
	"time"

	"constructhub/internal/domain/entities"
)

type ProjectResponse struct {
	ID             string    `json:"id"`
	CustomerID     string    `json:"customerid,omitempty"`
	CustomerName   string    `json:"customername,omitempty"`
	ProjectName    string    `json:"projectname"`
	JobDescription string    `json:"jobdescription"`
	Status         string    `json:"status"`
	SiteAddress    string    `json:"siteaddress,omitempty"`
	SiteCity       string    `json:"sitecity,omitempty"`
	SiteState      string    `json:"sitestate,omitempty"`
	SiteZip        string    `json:"sitezip,omitempty"`
	TotalBudget    float64   `json:"total_budget"`
	CreatedAt      time.Time `json:"createddate"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
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
		TotalBudget:    p.TotalBudget,
		CreatedAt:      p.CreatedAt,
	}
}

func FromProjects(projects []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, FromProject(p))
	}
	return out
}

// ConversionResponse reports the outcome of converting an estimate.
type ConversionResponse struct {
	ProjectID string          `json:"project_id"`
	Project   ProjectResponse `json:"project"`
}

func FromConversion(p entities.Project) ConversionResponse {
	return ConversionResponse{
		ProjectID: p.ID,
		Project:   FromProject(p),
	}
}
