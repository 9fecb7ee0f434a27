// File: internal/common/context_keys.go
package common

const (
	// AuthorizationHeader is the header name for authorization token
	AuthorizationHeader = "Authorization"
	// AuthorizationTypeBearer is the prefix for Bearer tokens
	AuthorizationTypeBearer = "Bearer"
	// FirebaseUIDKey is the context key for storing the authenticated Firebase UID
	FirebaseUIDKey = "firebaseUID"
	// PrincipalKey is the context key for storing the full authenticated principal
	PrincipalKey = "principal"
)
