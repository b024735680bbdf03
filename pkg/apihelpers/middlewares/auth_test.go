package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	jwthandling "github.com/Furquan712/geo-survey/pkg/jwt-handling"
)

const testSignKey = "test-sign-key"

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin-only",
		GetAndValidateUserJWT(testSignKey),
		IsAdminUser(),
		func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) },
	)
	r.GET("/agent-only",
		GetAndValidateUserJWT(testSignKey),
		IsAgentUser(),
		func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) },
	)
	return r
}

func performRequest(r *gin.Engine, path string, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set(HeaderAuthorization, "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewares(t *testing.T) {
	r := newTestRouter()

	adminToken, err := jwthandling.GenerateNewUserToken(time.Minute, "admin-1", "ADMIN", "A", "a@t.com", "", testSignKey)
	if err != nil {
		t.Fatal(err)
	}
	agentToken, err := jwthandling.GenerateNewUserToken(time.Minute, "agent-1", "AGENT", "B", "b@t.com", "admin-1", testSignKey)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("without token", func(t *testing.T) {
		w := performRequest(r, "/admin-only", "")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("unexpected status: %d", w.Code)
		}
	})

	t.Run("with invalid token", func(t *testing.T) {
		w := performRequest(r, "/admin-only", "garbage")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("unexpected status: %d", w.Code)
		}
	})

	t.Run("admin endpoint with admin token", func(t *testing.T) {
		w := performRequest(r, "/admin-only", adminToken)
		if w.Code != http.StatusOK {
			t.Errorf("unexpected status: %d", w.Code)
		}
	})

	t.Run("admin endpoint with agent token", func(t *testing.T) {
		w := performRequest(r, "/admin-only", agentToken)
		if w.Code != http.StatusForbidden {
			t.Errorf("unexpected status: %d", w.Code)
		}
	})

	t.Run("agent endpoint with admin token", func(t *testing.T) {
		w := performRequest(r, "/agent-only", adminToken)
		if w.Code != http.StatusForbidden {
			t.Errorf("unexpected status: %d", w.Code)
		}
	})

	t.Run("agent endpoint with agent token", func(t *testing.T) {
		w := performRequest(r, "/agent-only", agentToken)
		if w.Code != http.StatusOK {
			t.Errorf("unexpected status: %d", w.Code)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		expired, err := jwthandling.GenerateNewUserToken(-time.Minute, "admin-1", "ADMIN", "", "", "", testSignKey)
		if err != nil {
			t.Fatal(err)
		}
		w := performRequest(r, "/admin-only", expired)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("unexpected status: %d", w.Code)
		}
	})
}

func TestRequirePayload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/payload", RequirePayload(), func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	t.Run("with empty body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/payload", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("unexpected status: %d", w.Code)
		}
	})
}
