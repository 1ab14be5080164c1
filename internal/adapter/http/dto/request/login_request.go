package request

import "strings"

// LoginRequest carries the opaque sign-in token issued by the external
// identity provider.
type LoginRequest struct {
	IDToken string `json:"id_token" binding:"required"`
}

func (r LoginRequest) ResolveToken() string {
	return strings.TrimSpace(r.IDToken)
}
