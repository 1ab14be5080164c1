package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"boq_service/internal/usecase/interfaces"
)

var (
	ErrTokenRequired       = errors.New("sign-in token is required")
	ErrIdentityUnavailable = errors.New("identity provider unavailable")
	ErrIdentityRejected    = errors.New("identity provider rejected the token")
)

// HTTPVerifier exchanges an opaque sign-in token for the email it
// represents by posting it to the configured identity provider endpoint.
// The provider's wire protocol beyond {token in, email out} is not this
// service's concern.

type HTTPVerifier struct {
	verifyURL string
	client    *http.Client
}

var _ interfaces.IIdentityVerifier = (*HTTPVerifier)(nil)

func NewHTTPVerifier(verifyURL string, timeout time.Duration) *HTTPVerifier {
	return &HTTPVerifier{
		verifyURL: strings.TrimSpace(verifyURL),
		client:    &http.Client{Timeout: timeout},
	}
}

type verifyRequest struct {
	IDToken string `json:"id_token"`
}

type verifyResponse struct {
	Email string `json:"email"`
	Error string `json:"error"`
}

func (v *HTTPVerifier) Verify(ctx context.Context, idToken string) (string, error) {
	idToken = strings.TrimSpace(idToken)
	if idToken == "" {
		return "", ErrTokenRequired
	}

	body, err := json.Marshal(verifyRequest{IDToken: idToken})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrIdentityUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrIdentityUnavailable, err)
	}
	defer resp.Body.Close()

	var out verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrIdentityUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusOK && out.Email != "":
		return strings.ToLower(strings.TrimSpace(out.Email)), nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", ErrIdentityRejected
	default:
		return "", fmt.Errorf("%w: status %d %s", ErrIdentityUnavailable, resp.StatusCode, out.Error)
	}
}
