package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gameatlas/backend/internal/config"
	"gameatlas/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	gojwt "github.com/golang-jwt/jwt/v5"
)

func newRouter(t *testing.T, middleware gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	previous := config.AppConfig
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}
	t.Cleanup(func() { config.AppConfig = previous })

	r := gin.New()
	r.GET("/whoami", middleware, func(c *gin.Context) {
		userID, ok := c.Get("userID")
		if !ok {
			c.JSON(http.StatusOK, gin.H{"user_id": 0})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return r
}

func request(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := newRouter(t, AuthMiddleware())
	token, err := jwt.GenerateToken(5)
	if err != nil {
		t.Fatal(err)
	}

	tt := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"Missing header", "", http.StatusUnauthorized, ""},
		{"Wrong scheme", "Basic " + token, http.StatusUnauthorized, ""},
		{"Garbage token", "Bearer not-a-token", http.StatusUnauthorized, ""},
		{"Valid token", "Bearer " + token, http.StatusOK, `{"user_id":5}`},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			w := request(r, tc.header)
			if w.Code != tc.status {
				t.Fatalf("Expected status %d but got %d", tc.status, w.Code)
			}
			if tc.body != "" && w.Body.String() != tc.body {
				t.Errorf("Expected body %s but got %s", tc.body, w.Body.String())
			}
		})
	}
}

func TestOptionalAuthMiddleware(t *testing.T) {
	r := newRouter(t, OptionalAuthMiddleware())
	token, err := jwt.GenerateToken(9)
	if err != nil {
		t.Fatal(err)
	}

	if w := request(r, ""); w.Code != http.StatusOK || w.Body.String() != `{"user_id":0}` {
		t.Errorf("Anonymous: got %d %s", w.Code, w.Body.String())
	}
	if w := request(r, "Bearer broken"); w.Code != http.StatusOK || w.Body.String() != `{"user_id":0}` {
		t.Errorf("Invalid token: got %d %s", w.Code, w.Body.String())
	}
	if w := request(r, "Bearer "+token); w.Code != http.StatusOK || w.Body.String() != `{"user_id":9}` {
		t.Errorf("Valid token: got %d %s", w.Code, w.Body.String())
	}
}

func TestAuthMiddlewareRejectsUnsignedSecret(t *testing.T) {
	r := newRouter(t, AuthMiddleware())
	config.AppConfig = &config.Config{JWTSecret: ""}

	forged, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.MapClaims{
		"sub": 1,
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte{})
	if err != nil {
		t.Fatal(err)
	}

	if w := request(r, "Bearer "+forged); w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 for a token signed with an empty key but got %d", w.Code)
	}
}
