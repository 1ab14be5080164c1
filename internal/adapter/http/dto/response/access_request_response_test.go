package response

import (
	"testing"
	"time"

	"boq_service/internal/domain/entities"
)

func TestFromAccessRequest(t *testing.T) {
	requested := time.Date(2025, 3, 7, 14, 5, 9, 0, time.UTC)
	approved := requested.Add(time.Hour)

	res := FromAccessRequest(entities.AccessRequest{
		Email:       "bob@outside.org",
		Status:      entities.AccessStatusApproved,
		RequestedAt: requested,
		ApprovedAt:  &approved,
	})

	if res.Email != "bob@outside.org" || res.Status != "approved" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if !res.RequestedAt.Equal(requested) {
		t.Fatalf("unexpected requested_at: %v", res.RequestedAt)
	}
	if res.RequestedAtLocal != "07/03/2025, 2:05:09 pm" {
		t.Fatalf("unexpected display timestamp: %q", res.RequestedAtLocal)
	}
	if res.ApprovedAt == nil || !res.ApprovedAt.Equal(approved) {
		t.Fatalf("unexpected approved_at: %v", res.ApprovedAt)
	}
}

func TestFromAccessRequests(t *testing.T) {
	out := FromAccessRequests([]entities.AccessRequest{
		{Email: "a@outside.org", Status: entities.AccessStatusPending, RequestedAt: time.Now().UTC()},
		{Email: "b@outside.org", Status: entities.AccessStatusRejected, RequestedAt: time.Now().UTC()},
	})
	if len(out) != 2 || out[0].Email != "a@outside.org" || out[1].Status != "rejected" {
		t.Fatalf("unexpected mapping: %+v", out)
	}

	if got := FromAccessRequests(nil); len(got) != 0 {
		t.Fatalf("expected empty slice, got %+v", got)
	}
}
