package response

import (
	"time"

	"boq_service/internal/domain/entities"
)

// requestedAtDisplay matches the admin table's human-readable timestamp.
const requestedAtDisplay = "02/01/2006, 3:04:05 pm"

type AccessRequestResponse struct {
	Email            string     `json:"email"`
	Status           string     `json:"status"`
	RequestedAt      time.Time  `json:"requested_at"`
	RequestedAtLocal string     `json:"requested_at_display"`
	ApprovedAt       *time.Time `json:"approved_at,omitempty"`
}

func FromAccessRequest(r entities.AccessRequest) AccessRequestResponse {
	return AccessRequestResponse{
		Email:            r.Email,
		Status:           string(r.Status),
		RequestedAt:      r.RequestedAt,
		RequestedAtLocal: r.RequestedAt.Format(requestedAtDisplay),
		ApprovedAt:       r.ApprovedAt,
	}
}

func FromAccessRequests(requests []entities.AccessRequest) []AccessRequestResponse {
	out := make([]AccessRequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, FromAccessRequest(r))
	}
	return out
}
