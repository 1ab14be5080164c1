package request

import (
	"strings"

	"boq_service/internal/domain/entities"
)

// SetStatusRequest is the admin console's single operator action: move one
// record to a new status.
type SetStatusRequest struct {
	Email  string `json:"email" binding:"required"`
	Status string `json:"status" binding:"required"`
}

func (r SetStatusRequest) ResolveEmail() string {
	return strings.ToLower(strings.TrimSpace(r.Email))
}

func (r SetStatusRequest) ResolveStatus() (entities.AccessStatus, error) {
	return entities.ParseAccessStatus(r.Status)
}
