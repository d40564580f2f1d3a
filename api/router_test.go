package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/beka-birhanu/vinom-mazegen/api/i"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type pingController struct{}

func (pingController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
}

func (pingController) RegisterProtected(route *gin.RouterGroup) {
	route.GET("/secret", func(c *gin.Context) { c.String(http.StatusOK, "secret") })
}

func TestRouter(t *testing.T) {
	r := NewRouter(Config{
		Addr:        ":0",
		BaseURL:     "/api",
		GinMode:     gin.TestMode,
		Controllers: []i.Controller{pingController{}},
		AuthorizationMiddleware: func(c *gin.Context) {
			if c.GetHeader("Authorization") != "Bearer ok" {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.Next()
		},
	})
	h := r.Handler()

	tests := []struct {
		name   string
		path   string
		auth   string
		status int
	}{
		{"public", "/api/v1/ping", "", http.StatusOK},
		{"public ignores a bad token", "/api/v1/ping", "Bearer bad", http.StatusOK},
		{"protected without token", "/api/v1/secret", "", http.StatusUnauthorized},
		{"protected with token", "/api/v1/secret", "Bearer ok", http.StatusOK},
		{"outside base url", "/v1/ping", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}
