package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainUser "austay/internal/domain/user"
	"austay/internal/middleware"
)

// newUserRouter registers the protected user routes behind a stub auth
// layer that injects the given account, mirroring what AuthMiddleware
// does after validating a token.
func newUserRouter(current *domainUser.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")
	v1.Use(func(c *gin.Context) {
		if current != nil {
			c.Set(middleware.CurrentUserKey, current)
		}
		c.Next()
	})

	NewUserHandler(nil).RegisterProtectedRoutes(v1)
	return router
}

func TestMeReturnsAuthenticatedUser(t *testing.T) {
	current := &domainUser.User{
		ID:    uuid.New(),
		Name:  "Ana Souza",
		Email: "ana@example.com",
	}
	router := newUserRouter(current)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /users/me status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			ID    uuid.UUID `json:"id"`
			Email string    `json:"email"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if !envelope.Success {
		t.Error("success = false, want true")
	}
	if envelope.Data.ID != current.ID || envelope.Data.Email != current.Email {
		t.Errorf("data = %+v, want the authenticated user", envelope.Data)
	}
}

func TestMeWithoutAuthenticatedUser(t *testing.T) {
	router := newUserRouter(nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("GET /users/me status = %d, want 401", rec.Code)
	}
}
