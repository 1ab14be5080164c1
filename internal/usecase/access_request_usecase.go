package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"boq_service/internal/domain/entities"
	"boq_service/internal/usecase/interfaces"
)

var (
	ErrInvalidEmail    = errors.New("invalid email")
	ErrInvalidStatus   = errors.New("invalid access status")
	ErrRequestNotFound = errors.New("access request not found")
	ErrUpdateInFlight  = errors.New("status update already in flight for this email")
)

// AccessDecision is the gate's verdict for one identity. The default posture
// is "not authorized": a decision other than DecisionApproved must never let
// protected content through.

type AccessDecision string

const (
	DecisionUnauthenticated AccessDecision = "unauthenticated"
	DecisionApproved        AccessDecision = "approved"
	DecisionPending         AccessDecision = "pending"
	DecisionRejected        AccessDecision = "rejected"
)

// IAccessRequestUseCase exposes the access-control operations:
//   - Evaluate() is the gate's state machine (login redirect, trusted-domain
//     bypass, lazy pending creation, status adoption).
//   - SetStatus() is the admin console's single operator action.
//   - Watch/WatchAll() hand out live subscriptions whose teardown is owned
//     by the caller.

type IAccessRequestUseCase interface {
	Evaluate(ctx context.Context, email string) (AccessDecision, error)
	EnsureRequest(ctx context.Context, email string) (entities.AccessRequest, error)
	GetByEmail(ctx context.Context, email string) (entities.AccessRequest, error)
	List(ctx context.Context) ([]entities.AccessRequest, error)
	SetStatus(ctx context.Context, email string, status entities.AccessStatus) (entities.AccessRequest, error)
	IsTrusted(email string) bool
	IsAdmin(email string) bool
	Watch(email string) (<-chan entities.AccessRequest, func())
	WatchAll() (<-chan entities.AccessRequest, func())
}

type AccessRequestUseCase struct {
	repo          interfaces.IAccessRequestRepository
	bus           interfaces.IAccessEventBus
	trustedDomain string
	adminEmail    string

	// Guards against duplicate concurrent transitions on the same record
	// from the same service instance. Cross-instance writes stay
	// last-write-wins.
	mu       sync.Mutex
	inflight map[string]struct{}
}

var _ IAccessRequestUseCase = (*AccessRequestUseCase)(nil)

func NewAccessRequestUseCase(repo interfaces.IAccessRequestRepository, bus interfaces.IAccessEventBus, trustedDomain, adminEmail string) *AccessRequestUseCase {
	return &AccessRequestUseCase{
		repo:          repo,
		bus:           bus,
		trustedDomain: strings.ToLower(strings.TrimSpace(trustedDomain)),
		adminEmail:    normalizeEmail(adminEmail),
		inflight:      make(map[string]struct{}),
	}
}

// IsTrusted reports whether the email belongs to the trusted organization
// domain. Trusted identities are approved with zero ledger reads.
func (u *AccessRequestUseCase) IsTrusted(email string) bool {
	email = normalizeEmail(email)
	return email != "" && strings.HasSuffix(email, "@"+u.trustedDomain)
}

// IsAdmin reports whether the email is the single privileged operator
// identity. The admin gate consults only this, never the ledger.
func (u *AccessRequestUseCase) IsAdmin(email string) bool {
	return normalizeEmail(email) == u.adminEmail
}

func (u *AccessRequestUseCase) Evaluate(ctx context.Context, email string) (AccessDecision, error) {
	email = normalizeEmail(email)
	if email == "" {
		return DecisionUnauthenticated, nil
	}
	if u.IsTrusted(email) {
		return DecisionApproved, nil
	}

	r, err := u.EnsureRequest(ctx, email)
	if err != nil {
		return "", err
	}

	switch r.Status {
	case entities.AccessStatusApproved:
		return DecisionApproved, nil
	case entities.AccessStatusRejected:
		return DecisionRejected, nil
	default:
		return DecisionPending, nil
	}
}

// EnsureRequest returns the ledger record for an external email, creating it
// with status pending on the identity's first protected visit.
func (u *AccessRequestUseCase) EnsureRequest(ctx context.Context, email string) (entities.AccessRequest, error) {
	email = normalizeEmail(email)
	if email == "" {
		return entities.AccessRequest{}, ErrInvalidEmail
	}

	existing, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return entities.AccessRequest{}, err
	}
	if existing.Email != "" {
		return existing, nil
	}

	created, err := u.repo.Create(ctx, entities.AccessRequest{
		Email:       email,
		Status:      entities.AccessStatusPending,
		RequestedAt: time.Now().UTC(),
	})
	if err != nil {
		return entities.AccessRequest{}, err
	}
	u.bus.Publish(created)
	return created, nil
}

func (u *AccessRequestUseCase) GetByEmail(ctx context.Context, email string) (entities.AccessRequest, error) {
	email = normalizeEmail(email)
	if email == "" {
		return entities.AccessRequest{}, ErrInvalidEmail
	}
	r, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return entities.AccessRequest{}, err
	}
	if r.Email == "" {
		return entities.AccessRequest{}, ErrRequestNotFound
	}
	return r, nil
}

func (u *AccessRequestUseCase) List(ctx context.Context) ([]entities.AccessRequest, error) {
	return u.repo.List(ctx)
}

// SetStatus transitions one record. ApprovedAt is stamped only on the
// transition into approved and removed on every other transition.
func (u *AccessRequestUseCase) SetStatus(ctx context.Context, email string, status entities.AccessStatus) (entities.AccessRequest, error) {
	email = normalizeEmail(email)
	if email == "" {
		return entities.AccessRequest{}, ErrInvalidEmail
	}
	if _, err := entities.ParseAccessStatus(string(status)); err != nil {
		return entities.AccessRequest{}, ErrInvalidStatus
	}

	if !u.beginUpdate(email) {
		return entities.AccessRequest{}, ErrUpdateInFlight
	}
	defer u.endUpdate(email)

	var approvedAt *time.Time
	if status == entities.AccessStatusApproved {
		now := time.Now().UTC()
		approvedAt = &now
	}

	updated, err := u.repo.UpdateStatus(ctx, email, status, approvedAt)
	if err != nil {
		return entities.AccessRequest{}, err
	}
	if updated.Email == "" {
		return entities.AccessRequest{}, ErrRequestNotFound
	}
	u.bus.Publish(updated)
	return updated, nil
}

func (u *AccessRequestUseCase) Watch(email string) (<-chan entities.AccessRequest, func()) {
	return u.bus.Subscribe(normalizeEmail(email))
}

func (u *AccessRequestUseCase) WatchAll() (<-chan entities.AccessRequest, func()) {
	return u.bus.SubscribeAll()
}

func (u *AccessRequestUseCase) beginUpdate(email string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, busy := u.inflight[email]; busy {
		return false
	}
	u.inflight[email] = struct{}{}
	return true
}

func (u *AccessRequestUseCase) endUpdate(email string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.inflight, email)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
