package entities

import "time"

// ProjectStatus is the (much simpler) project lifecycle label. Projects come
// out of conversion active; later lifecycle stages belong to other services.
type ProjectStatus string

const (
	ProjectStatusActive ProjectStatus = "active"
)

// Project is a construction project persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Projects are created exactly once, by the estimate conversion procedure.
// The originating estimate references the project via its projectid field;
// no back-reference is stored here.
type Project struct {
	ID             string        `json:"id"`
	CustomerID     string        `json:"customerid"`
	CustomerName   string        `json:"customername"`
	ProjectName    string        `json:"projectname"`
	JobDescription string        `json:"jobdescription"`
	Status         ProjectStatus `json:"status"`
	SiteAddress    string        `json:"siteaddress"`
	SiteCity       string        `json:"sitecity"`
	SiteState      string        `json:"sitestate"`
	SiteZip        string        `json:"sitezip"`
	TotalBudget    float64       `json:"total_budget"`
	CreatedAt      time.Time     `json:"createddate"`
}

// NewProjectFromEstimate projects an estimate snapshot into the project row
// the conversion procedure will create. The id is server-assigned by the
// caller; the budget is the estimate amount.
func NewProjectFromEstimate(e Estimate, id string, now time.Time) Project {
	return Project{
		ID:             id,
		CustomerID:     e.CustomerID,
		CustomerName:   e.CustomerName,
		ProjectName:    e.ResolveProjectName(),
		JobDescription: e.ResolveJobDescription(),
		Status:         ProjectStatusActive,
		SiteAddress:    e.SiteAddress,
		SiteCity:       e.SiteCity,
		SiteState:      e.SiteState,
		SiteZip:        e.SiteZip,
		TotalBudget:    e.EstimateAmount,
		CreatedAt:      now,
	}
}
