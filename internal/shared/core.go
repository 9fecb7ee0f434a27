package shared

import (
	"context"
)

// Principal is the authenticated identity derived from a verified bearer
// token. UID is the stable subject id; Email and DisplayName are optional
// claims and may be empty.
type Principal struct {
	UID         string
	Email       string
	DisplayName string
}

// TokenVerifier verifies a raw ID token and resolves the principal it belongs
// to. firebase.FirebaseService is the production implementation; tests
// substitute stubs so handlers can be exercised without the Admin SDK.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*Principal, error)
}
