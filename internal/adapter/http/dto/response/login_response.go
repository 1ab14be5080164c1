package response

// LoginResponse tells the client where to navigate after sign-in: straight
// to the BOQ screen for trusted-domain identities, to the request-access
// waiting view for everyone else.
type LoginResponse struct {
	Email    string `json:"email"`
	Redirect string `json:"redirect"`
}
