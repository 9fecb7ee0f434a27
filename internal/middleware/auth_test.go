package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"quotes_backend/internal/common"
	"quotes_backend/internal/shared"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// stubVerifier accepts a single known token and rejects everything else.
type stubVerifier struct {
	token     string
	principal *shared.Principal
}

func (v *stubVerifier) VerifyIDToken(ctx context.Context, idToken string) (*shared.Principal, error) {
	if idToken == v.token {
		return v.principal, nil
	}
	return nil, fmt.Errorf("stub verifier: invalid token")
}

func newAuthTestRouter(verifier shared.TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(verifier, zap.NewNop()), func(c *gin.Context) {
		principal := common.GetPrincipalFromContext(c)
		c.JSON(http.StatusOK, gin.H{
			"uid":   common.GetFirebaseUIDFromContext(c),
			"email": principal.Email,
		})
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	verifier := &stubVerifier{
		token:     "good-token",
		principal: &shared.Principal{UID: "uid-1", Email: "user@example.com", DisplayName: "User"},
	}
	router := newAuthTestRouter(verifier)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{name: "missing header", authHeader: "", wantStatus: http.StatusUnauthorized},
		{name: "not a bearer scheme", authHeader: "Basic abc123", wantStatus: http.StatusUnauthorized},
		{name: "bearer with no token", authHeader: "Bearer", wantStatus: http.StatusUnauthorized},
		{name: "invalid token", authHeader: "Bearer bad-token", wantStatus: http.StatusUnauthorized},
		{name: "valid token", authHeader: "Bearer good-token", wantStatus: http.StatusOK},
		{name: "case-insensitive scheme", authHeader: "bearer good-token", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set(common.AuthorizationHeader, tt.authHeader)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, rec.Body.String(), `"uid":"uid-1"`)
				assert.Contains(t, rec.Body.String(), `"email":"user@example.com"`)
			} else {
				assert.Contains(t, rec.Body.String(), `"code":"UNAUTHORIZED"`)
			}
		})
	}
}
