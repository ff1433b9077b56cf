package request

import "testing"

func TestCreateEstimateRequest_HasCustomer(t *testing.T) {
	if (CreateEstimateRequest{}).HasCustomer() {
		t.Fatalf("expected no customer")
	}
	if !(CreateEstimateRequest{CustomerID: " cust-1 "}).HasCustomer() {
		t.Fatalf("expected customer by id")
	}
	if !(CreateEstimateRequest{CustomerName: "Acme"}).HasCustomer() {
		t.Fatalf("expected customer by name")
	}
	if (CreateEstimateRequest{CustomerName: "   "}).HasCustomer() {
		t.Fatalf("whitespace name must not count as a customer")
	}
}

func TestUpdateStatusRequest_ResolveStatus(t *testing.T) {
	r := UpdateStatusRequest{Status: "  sent  "}
	if got := r.ResolveStatus(); got != "sent" {
		t.Fatalf("expected sent, got %q", got)
	}
}
