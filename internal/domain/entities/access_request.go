package entities

import (
	"fmt"
	"strings"
	"time"
)

// AccessStatus represents the approval lifecycle of an external identity.
//
// Domain notes:
//   - Records are created lazily, always as pending, on the first protected
//     visit by an unrecognized external email.
//   - Only the admin console transitions the status afterwards.

type AccessStatus string

const (
	AccessStatusPending  AccessStatus = "pending"
	AccessStatusApproved AccessStatus = "approved"
	AccessStatusRejected AccessStatus = "rejected"
)

// ParseAccessStatus decodes a status value coming from an untrusted boundary
// (HTTP payload or a stored document). Anything outside the three known
// values is rejected instead of being carried along loosely typed.
func ParseAccessStatus(s string) (AccessStatus, error) {
	switch AccessStatus(strings.ToLower(strings.TrimSpace(s))) {
	case AccessStatusPending:
		return AccessStatusPending, nil
	case AccessStatusApproved:
		return AccessStatusApproved, nil
	case AccessStatusRejected:
		return AccessStatusRejected, nil
	default:
		return "", fmt.Errorf("unknown access status %q", s)
	}
}

// AccessRequest is the access ledger record persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: email
//
// Exactly one record exists per email. ApprovedAt is present iff the last
// transition was into approved; every other transition clears it.

type AccessRequest struct {
	Email       string       `json:"email"`
	Status      AccessStatus `json:"status"`
	RequestedAt time.Time    `json:"requested_at"`
	ApprovedAt  *time.Time   `json:"approved_at,omitempty"`
}

func (r AccessRequest) IsPending() bool {
	return r.Status == AccessStatusPending
}

func (r AccessRequest) IsApproved() bool {
	return r.Status == AccessStatusApproved
}

func (r AccessRequest) IsRejected() bool {
	return r.Status == AccessStatusRejected
}
