package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"gameatlas/backend/internal/database/dbtest"
	"gameatlas/backend/internal/models"

	"github.com/gin-gonic/gin"
)

func TestAdminMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := dbtest.Open(t)

	admin := models.User{Nickname: "root", Email: "root@gameatlas.test", Role: models.RoleAdmin}
	member := models.User{Nickname: "dev", Email: "dev@gameatlas.test", Role: "user"}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&member).Error; err != nil {
		t.Fatal(err)
	}

	tt := []struct {
		name   string
		userID any
		status int
	}{
		{"Not authenticated", nil, http.StatusUnauthorized},
		{"Wrong id type", "1", http.StatusUnauthorized},
		{"Unknown user", uint(999), http.StatusNotFound},
		{"Regular user", member.ID, http.StatusForbidden},
		{"Admin", admin.ID, http.StatusOK},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/admin", func(c *gin.Context) {
				if tc.userID != nil {
					c.Set(userIDKey, tc.userID)
				}
			}, AdminMiddleware(), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
			if w.Code != tc.status {
				t.Errorf("Expected %d but got %d", tc.status, w.Code)
			}
		})
	}
}
