package request

import "strings"

// CreateEstimateRequest is the payload for opening a new estimate. The
// estimate always starts in draft; status, id and timestamps are
// server-assigned.
type CreateEstimateRequest struct {
	CustomerID         string  `json:"customerid"`
	CustomerName       string  `json:"customername"`
	ProjectName        string  `json:"projectname"`
	JobDescription     string  `json:"jobdescription"`
	Description        string  `json:"description"`
	EstimateAmount     float64 `json:"estimateamount" binding:"required"`
	ContingencyPercent float64 `json:"contingencypercent"`
	SiteAddress        string  `json:"siteaddress"`
	SiteCity           string  `json:"sitecity"`
	SiteState          string  `json:"sitestate"`
	SiteZip            string  `json:"sitezip"`
}

// HasCustomer reports whether the payload carries any customer reference.
func (r CreateEstimateRequest) HasCustomer() bool {
	return strings.TrimSpace(r.CustomerID) != "" || strings.TrimSpace(r.CustomerName) != ""
}

// UpdateStatusRequest asks for a single transition of the status graph.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdateStatusRequest) ResolveStatus() string {
	return strings.TrimSpace(r.Status)
}
