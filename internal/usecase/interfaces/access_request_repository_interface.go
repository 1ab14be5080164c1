package interfaces

import (
	"context"
	"time"

	"boq_service/internal/domain/entities"
)

// IAccessRequestRepository abstracts DynamoDB persistence for AccessRequest.
//
// Absent records come back as the zero value, not an error; callers decide
// whether absence is a lazy-create trigger or a not-found condition.

type IAccessRequestRepository interface {
	Create(ctx context.Context, r entities.AccessRequest) (entities.AccessRequest, error)
	GetByEmail(ctx context.Context, email string) (entities.AccessRequest, error)
	// UpdateStatus sets the status of an existing record. approvedAt is
	// stamped when non-nil and removed from the record when nil.
	UpdateStatus(ctx context.Context, email string, status entities.AccessStatus, approvedAt *time.Time) (entities.AccessRequest, error)
	List(ctx context.Context) ([]entities.AccessRequest, error)
}
