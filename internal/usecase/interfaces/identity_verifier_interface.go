package interfaces

import "context"

// IIdentityVerifier abstracts the external identity provider: it exchanges
// an opaque sign-in token for the stable email identity it represents.
type IIdentityVerifier interface {
	Verify(ctx context.Context, idToken string) (email string, err error)
}
