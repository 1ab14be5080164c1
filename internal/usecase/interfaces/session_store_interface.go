package interfaces

// ISessionStore tracks signed-in identities by opaque bearer token. Lookup
// replays the current identity for a request; Delete is sign-out.
type ISessionStore interface {
	Create(email string) (token string)
	Lookup(token string) (email string, ok bool)
	Delete(token string)
}
