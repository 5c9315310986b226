package domain

import "github.com/google/uuid"

// Actor is the identity an operation runs on behalf of. It is built once at
// the transport boundary (session middleware, seed CLI) and passed explicitly
// into every write call; services never reach into request globals.
type Actor struct {
	ID            uuid.UUID
	Username      string
	Authenticated bool
}

// Anonymous returns the unauthenticated actor.
func Anonymous() Actor {
	return Actor{}
}

// UserActor returns an authenticated actor for the given user identity.
func UserActor(id uuid.UUID, username string) Actor {
	return Actor{ID: id, Username: username, Authenticated: true}
}
